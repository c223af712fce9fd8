package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestFormatLineWithIndent(t *testing.T) {
	var output strings.Builder

	output.Reset()
	indent := "  "
	format_line_with_indent(&output, "testing \x1b[31mstyled\x1b[m", indent, 11)
	expected := indent + "testing \n" + indent + "\x1b[31mstyled\x1b[m\n"
	if output.String() != expected {
		t.Fatalf("%#v != %#v", expected, output.String())
	}
}

type test_command struct {
	cmd    *cobra.Command
	mode   *string
	files  *[]string
	debug  *bool
	ran    bool
	out    strings.Builder
	errout strings.Builder
}

func new_test_command(t *testing.T) *test_command {
	t.Setenv("UNICODE_ANALYZE_CONFIG_DIRECTORY", t.TempDir())
	ans := &test_command{}
	ans.cmd = CreateCommand(&cobra.Command{
		Use: "test-cmd [options]",
		RunE: func(cmd *cobra.Command, args []string) error {
			ans.ran = true
			return nil
		},
	})
	ans.mode = Choices(ans.cmd, "mode", "The mode", "one", "two", "three")
	ans.files = new([]string)
	ans.cmd.Flags().StringArrayVarP(ans.files, "file", "f", nil, "Files")
	ans.cmd.SetOut(&ans.out)
	ans.debug = ans.cmd.Flags().Bool("debug", false, "Debug logging")
	ans.cmd.SetErr(&ans.errout)
	return ans
}

func (self *test_command) run(args ...string) error {
	if args == nil {
		args = []string{}
	}
	self.cmd.SetArgs(args)
	return self.cmd.Execute()
}

func TestChoices(t *testing.T) {
	tc := new_test_command(t)
	require.NoError(t, tc.run())
	require.True(t, tc.ran)
	require.Equal(t, "one", *tc.mode)

	tc = new_test_command(t)
	require.NoError(t, tc.run("--mode", "three"))
	require.Equal(t, "three", *tc.mode)

	tc = new_test_command(t)
	err := tc.run("--mode=four")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid value")
	require.False(t, tc.ran)
}

func TestConfigPrecedence(t *testing.T) {
	tc := new_test_command(t)
	t.Setenv("UNICODE_ANALYZE_MODE", "two")
	require.NoError(t, tc.run())
	require.Equal(t, "two", *tc.mode)

	tc = new_test_command(t)
	t.Setenv("UNICODE_ANALYZE_MODE", "two")
	require.NoError(t, tc.run("--mode", "three"))
	require.Equal(t, "three", *tc.mode)

	tc = new_test_command(t)
	t.Setenv("UNICODE_ANALYZE_MODE", "")
	os.Unsetenv("UNICODE_ANALYZE_MODE")
	conf_dir := os.Getenv("UNICODE_ANALYZE_CONFIG_DIRECTORY")
	require.NoError(t, os.WriteFile(filepath.Join(conf_dir, "unicode-analyze.yaml"), []byte("mode: three\nfile:\n  - a.txt\n  - b.txt\n"), 0o600))
	require.NoError(t, tc.run())
	require.Equal(t, "three", *tc.mode)
	require.Equal(t, []string{"a.txt", "b.txt"}, *tc.files)

	tc = new_test_command(t)
	conf_dir = os.Getenv("UNICODE_ANALYZE_CONFIG_DIRECTORY")
	require.NoError(t, os.WriteFile(filepath.Join(conf_dir, "unicode-analyze.yaml"), []byte("mode: four\n"), 0o600))
	err := tc.run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid value")

	tc = new_test_command(t)
	conf_dir = os.Getenv("UNICODE_ANALYZE_CONFIG_DIRECTORY")
	require.NoError(t, os.WriteFile(filepath.Join(conf_dir, "unicode-analyze.yaml"), []byte("mode: [unclosed\n"), 0o600))
	err = tc.run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to read config file")
}

func TestPrettify(t *testing.T) {
	require.Equal(t, "plain text", prettify("plain text"))
	require.NotContains(t, prettify("use :opt:`--format` here"), ":opt:")
	require.Contains(t, prettify("use :opt:`--format` here"), "--format")
}

func TestUsage(t *testing.T) {
	tc := new_test_command(t)
	Init(tc.cmd)
	require.NoError(t, tc.run("-h"))
	require.False(t, tc.ran)
	out := tc.out.String()
	require.Contains(t, out, "Usage: test-cmd [options]")
	require.Contains(t, out, "--mode [=one]")
	require.Contains(t, out, "Choices: one, two, three")
	require.Contains(t, out, "--file, -f")
	require.Contains(t, out, "--version")
}

func TestConfigFileIsLogged(t *testing.T) {
	tc := new_test_command(t)
	conf_dir := os.Getenv("UNICODE_ANALYZE_CONFIG_DIRECTORY")
	require.NoError(t, os.WriteFile(filepath.Join(conf_dir, "unicode-analyze.yaml"), []byte("mode: two\n"), 0o600))
	require.NoError(t, tc.run("--debug"))
	require.True(t, *tc.debug)
	require.Contains(t, tc.errout.String(), "loaded config file")
	require.Contains(t, tc.errout.String(), "unicode-analyze.yaml")

	tc = new_test_command(t)
	conf_dir = os.Getenv("UNICODE_ANALYZE_CONFIG_DIRECTORY")
	require.NoError(t, os.WriteFile(filepath.Join(conf_dir, "unicode-analyze.yaml"), []byte("debug: true\n"), 0o600))
	require.NoError(t, tc.run())
	require.True(t, *tc.debug)
	require.Contains(t, tc.errout.String(), "loaded config file")

	tc = new_test_command(t)
	conf_dir = os.Getenv("UNICODE_ANALYZE_CONFIG_DIRECTORY")
	require.NoError(t, os.WriteFile(filepath.Join(conf_dir, "unicode-analyze.yaml"), []byte("mode: two\n"), 0o600))
	require.NoError(t, tc.run())
	require.Empty(t, tc.errout.String())
}
