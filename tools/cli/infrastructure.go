// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/unicode-analyze/unicode_analyze"
)

func add_choices(cmd *cobra.Command, flags *pflag.FlagSet, choices []string, name string, usage string) *string {
	cmd.Annotations["choices-"+name] = strings.Join(choices, "\000")
	return flags.String(name, choices[0], usage)
}

// Choices adds a string flag whose value must be one of choices, the first
// choice is the default.
func Choices(cmd *cobra.Command, name string, usage string, choices ...string) *string {
	return add_choices(cmd, cmd.Flags(), choices, name, usage)
}

func PersistentChoices(cmd *cobra.Command, name string, usage string, choices ...string) *string {
	return add_choices(cmd, cmd.PersistentFlags(), choices, name, usage)
}

func choices_for(cmd *cobra.Command, name string) (ans []string) {
	for c := cmd; c != nil; c = c.Parent() {
		if val, found := c.Annotations["choices-"+name]; found {
			return strings.Split(val, "\000")
		}
	}
	return nil
}

func ValidateChoices(cmd *cobra.Command, args []string) (err error) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		allowed := choices_for(cmd, flag.Name)
		if err == nil && allowed != nil && !slices.Contains(allowed, flag.Value.String()) {
			err = fmt.Errorf("%s: Invalid value: %s. Allowed values are: %s", color.YellowString("--"+flag.Name), color.RedString(flag.Value.String()), strings.Join(allowed, ", "))
		}
	})
	return
}

var stdout_is_terminal = false
var title_fmt = color.New(color.FgBlue, color.Bold).SprintFunc()
var exe_fmt = color.New(color.FgYellow, color.Bold).SprintFunc()
var opt_fmt = color.New(color.FgGreen).SprintFunc()
var italic_fmt = color.New(color.Italic).SprintFunc()
var err_fmt = color.New(color.FgHiRed).SprintFunc()
var bold_fmt = color.New(color.Bold).SprintFunc()
var code_fmt = color.New(color.FgCyan).SprintFunc()

// IsTerminal reports whether w is a terminal that should get colored output.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func format_line_with_indent(output io.Writer, text string, indent string, screen_width int) {
	x := len(indent)
	fmt.Fprint(output, indent)
	in_escape := 0
	var current_word strings.Builder
	var escapes strings.Builder

	print_word := func(r rune) {
		w := runewidth.StringWidth(current_word.String())
		if x+w > screen_width {
			fmt.Fprintln(output)
			fmt.Fprint(output, indent)
			x = len(indent)
			s := strings.TrimSpace(current_word.String())
			current_word.Reset()
			current_word.WriteString(s)
		}
		if escapes.Len() > 0 {
			io.WriteString(output, escapes.String())
			escapes.Reset()
		}
		if current_word.Len() > 0 {
			io.WriteString(output, current_word.String())
			current_word.Reset()
		}
		if r > 0 {
			current_word.WriteRune(r)
		}
		x += w
	}

	for i, r := range text {
		if in_escape > 0 {
			if in_escape == 1 && (r == ']' || r == '[') {
				in_escape = 2
				if r == ']' {
					in_escape = 3
				}
			}
			if (in_escape == 2 && r == 'm') || (in_escape == 3 && r == '\\' && text[i-1] == 0x1b) {
				in_escape = 0
			}
			escapes.WriteRune(r)
			continue
		}
		if r == 0x1b {
			in_escape = 1
			if current_word.Len() != 0 {
				print_word(0)
			}
			escapes.WriteRune(r)
			continue
		}
		if current_word.Len() != 0 && r != 0xa0 && unicode.IsSpace(r) {
			print_word(r)
		} else {
			current_word.WriteRune(r)
		}
	}
	if current_word.Len() != 0 || escapes.Len() != 0 {
		print_word(0)
	}
	if len(text) > 0 {
		fmt.Fprintln(output)
	}
}

var prettify_pat = regexp.MustCompile(":([a-z]+):`([^`]+)`")

func prettify(text string) string {
	return prettify_pat.ReplaceAllStringFunc(text, func(match string) string {
		groups := prettify_pat.FindStringSubmatch(match)
		val := groups[2]
		switch groups[1] {
		case "env", "envvar", "emph", "file":
			return italic_fmt(val)
		case "code":
			return code_fmt(val)
		case "opt", "option":
			return bold_fmt(val)
		default:
			return val
		}
	})
}

func format_with_indent(output io.Writer, text string, indent string, screen_width int) {
	for _, line := range strings.Split(prettify(text), "\n") {
		format_line_with_indent(output, line, indent, screen_width)
	}
}

func full_command_name(cmd *cobra.Command) string {
	return cmd.CommandPath()
}

func show_usage(cmd *cobra.Command) error {
	var output strings.Builder
	screen_width := 80
	if cols, err := GetTTYColumns(); err == nil && cols > 0 && cols < 80 {
		screen_width = cols
	}
	use := cmd.Use
	idx := strings.Index(use, " ")
	if idx > -1 {
		use = use[idx+1:]
	} else {
		use = ""
	}
	fmt.Fprintln(&output, title_fmt("Usage")+":", exe_fmt(full_command_name(cmd)), use)
	fmt.Fprintln(&output)
	if len(cmd.Long) > 0 {
		format_with_indent(&output, cmd.Long, "", screen_width)
	} else if len(cmd.Short) > 0 {
		format_with_indent(&output, cmd.Short, "", screen_width)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(&output)
		fmt.Fprintln(&output, title_fmt("Commands")+":")
		for _, child := range cmd.Commands() {
			if child.Hidden {
				continue
			}
			fmt.Fprintln(&output, " ", opt_fmt(child.Name()))
			format_with_indent(&output, child.Short, "    ", screen_width)
		}
		fmt.Fprintln(&output)
		format_with_indent(&output, "Get help for an individual command by running:", "", screen_width)
		fmt.Fprintln(&output, "   ", full_command_name(cmd), italic_fmt("command"), "-h")
	}
	if cmd.HasAvailableFlags() {
		fmt.Fprintln(&output)
		fmt.Fprintln(&output, title_fmt("Options")+":")
		cmd.Flags().VisitAll(func(flag *pflag.Flag) {
			if flag.Hidden {
				return
			}
			fmt.Fprint(&output, opt_fmt("  --"+flag.Name))
			if flag.Shorthand != "" {
				fmt.Fprint(&output, ", ", opt_fmt("-"+flag.Shorthand))
			}
			switch flag.Value.Type() {
			case "bool", "count":
			default:
				if flag.DefValue != "" && flag.DefValue != "[]" {
					fmt.Fprintf(&output, " [=%s]", italic_fmt(flag.DefValue))
				}
			}
			fmt.Fprintln(&output)
			msg := flag.Usage
			switch flag.Name {
			case "help":
				msg = "Print this help message"
			case "version":
				msg = "Print the version of " + cmd.Root().Name() + ": " + italic_fmt(cmd.Root().Version)
			}
			format_with_indent(&output, msg, "    ", screen_width)
			if choices := choices_for(cmd, flag.Name); choices != nil {
				fmt.Fprintln(&output, "    Choices:", strings.Join(choices, ", "))
			}
			fmt.Fprintln(&output)
		})
	}
	fmt.Fprintln(&output, italic_fmt(cmd.Root().Name()), opt_fmt(unicode_analyze.VersionString))
	_, err := io.WriteString(cmd.OutOrStdout(), output.String())
	return err
}

// CreateCommand prepares cmd the way all commands are run: configuration
// from the environment and config file is applied, choices are validated and
// logging is set up from a --debug flag, if any, before the command runs.
// Errors are returned rather than printed.
func CreateCommand(cmd *cobra.Command) *cobra.Command {
	cmd.Annotations = make(map[string]string)
	if cmd.Run == nil && cmd.RunE == nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			if len(cmd.Commands()) > 0 {
				if len(args) == 0 {
					return fmt.Errorf("%s. Use %s -h to get a list of available sub-commands", err_fmt("No sub-command specified"), full_command_name(cmd))
				}
				return fmt.Errorf("Not a valid subcommand: %s. Use %s -h to get a list of available sub-commands", err_fmt(args[0]), full_command_name(cmd))
			}
			return nil
		}
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	orig_pre_run := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		config_file, err := ApplyConfig(cmd)
		if err != nil {
			return err
		}
		if err = ValidateChoices(cmd, args); err != nil {
			return err
		}
		if debug := cmd.Flags().Lookup("debug"); debug != nil {
			SetupLogging(cmd.ErrOrStderr(), debug.Value.String() == "true")
		}
		if config_file != "" {
			slog.Debug("loaded config file", "path", config_file)
		}
		if orig_pre_run == nil {
			return nil
		}
		return orig_pre_run(cmd, args)
	}

	cmd.PersistentFlags().SortFlags = false
	cmd.Flags().SortFlags = false
	return cmd
}

func show_help(cmd *cobra.Command, args []string) {
	show_usage(cmd)
}

func Init(root *cobra.Command) {
	vs := unicode_analyze.VersionString
	if unicode_analyze.VCSRevision != "" {
		vs = vs + " (" + unicode_analyze.VCSRevision + ")"
	}
	stdout_is_terminal = IsTerminal(os.Stdout)
	color.NoColor = !stdout_is_terminal
	root.Version = vs
	root.SetUsageFunc(show_usage)
	root.SetHelpFunc(show_help)
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true
}

// Exec runs root and exits the process with a non-zero status on error.
func Exec(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err_fmt("Error")+":", err)
		os.Exit(1)
	}
}
