// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/kovidgoyal/go-parallel"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/unicode-analyze/unicode_analyze/tools/analyze"
	"github.com/unicode-analyze/unicode_analyze/tools/cli"
	"github.com/unicode-analyze/unicode_analyze/tools/unicode_names"
)

var _ = fmt.Print

type Options struct {
	Files  []string
	Format *string
	Color  *string
	Debug  bool
}

type json_codepoint struct {
	Value     string `json:"value"`
	Character string `json:"character"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
}

type json_text struct {
	Input     string             `json:"input"`
	Graphemes [][]json_codepoint `json:"graphemes"`
}

func to_json(c analyze.Codepoint) json_codepoint {
	return json_codepoint{Value: c.DisplayValue(), Character: c.DisplayCharacter(), Name: c.DisplayName(), Kind: c.Kind().String()}
}

type output struct {
	w         io.Writer
	json      *json.Encoder
	value_fmt func(...any) string
	kind_fmt  map[analyze.Kind]func(...any) string
}

func color_enabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return cli.IsTerminal(w)
}

func new_output(w io.Writer, opts *Options) *output {
	ans := &output{w: w, kind_fmt: make(map[analyze.Kind]func(...any) string)}
	if *opts.Format == "json" {
		ans.json = json.NewEncoder(w)
		ans.json.SetEscapeHTML(false)
		return ans
	}
	enabled := color_enabled(*opts.Color, w)
	colored := func(attrs ...color.Attribute) func(...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	ans.value_fmt = colored(color.FgYellow)
	ans.kind_fmt[analyze.Character] = fmt.Sprint
	ans.kind_fmt[analyze.ControlCode] = colored(color.FgCyan)
	ans.kind_fmt[analyze.NonCharacter] = colored(color.FgMagenta)
	ans.kind_fmt[analyze.PrivateUse] = colored(color.FgMagenta)
	ans.kind_fmt[analyze.Unknown] = colored(color.FgRed)
	ans.kind_fmt[analyze.Invalid] = colored(color.FgHiRed, color.Bold)
	return ans
}

func (self *output) codepoint_line(c analyze.Codepoint) (err error) {
	f := self.kind_fmt[c.Kind()]
	_, err = fmt.Fprintln(self.w, self.value_fmt(c.DisplayValue()), c.DisplayCharacter(), f(c.DisplayName()))
	return
}

func (self *output) text(input string, text analyze.Text) (err error) {
	if self.json != nil {
		jt := json_text{Input: strings.ToValidUTF8(input, "\ufffd"), Graphemes: make([][]json_codepoint, 0, text.Len())}
		for g := range text.Graphemes() {
			jg := make([]json_codepoint, 0, g.Len())
			for c := range g.Codepoints() {
				jg = append(jg, to_json(c))
			}
			jt.Graphemes = append(jt.Graphemes, jg)
		}
		return self.json.Encode(jt)
	}
	if _, err = fmt.Fprintln(self.w, text); err != nil {
		return
	}
	for c := range text.Codepoints() {
		if err = self.codepoint_line(c); err != nil {
			return
		}
	}
	return
}

func (self *output) codepoints(items []analyze.Codepoint) error {
	if self.json != nil {
		ans := make([]json_codepoint, len(items))
		for i, c := range items {
			ans[i] = to_json(c)
		}
		return self.json.Encode(ans)
	}
	for _, c := range items {
		if err := self.codepoint_line(c); err != nil {
			return err
		}
	}
	return nil
}

func read_file(path string) (analyze.Text, error) {
	f, err := os.Open(path)
	if err != nil {
		return analyze.Text{}, fmt.Errorf("Failed to open %s with error: %w", path, err)
	}
	defer f.Close()
	return analyze.ParseReader(f)
}

func log_parsed(source string, text analyze.Text) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		count := 0
		for range text.Codepoints() {
			count++
		}
		slog.Debug("parsed input", "source", source, "graphemes", text.Len(), "codepoints", count)
	}
}

func main(cmd *cobra.Command, opts *Options, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = parallel.Format_stacktrace_on_panic(r, 1)
		}
	}()
	if len(args) == 0 && len(opts.Files) == 0 {
		return fmt.Errorf("No text specified. Use %s -h for help", cmd.CommandPath())
	}
	out := new_output(cmd.OutOrStdout(), opts)
	for i, arg := range args {
		text := analyze.ParseOSString(arg)
		log_parsed(fmt.Sprintf("argument %d", i+1), text)
		if err = out.text(arg, text); err != nil {
			return err
		}
	}
	texts, err := read_files(cmd, opts.Files)
	if err != nil {
		return err
	}
	for i, path := range opts.Files {
		log_parsed(path, texts[i])
		if err = out.text(path, texts[i]); err != nil {
			return err
		}
	}
	return nil
}

// read_files parses the files concurrently, STDIN is read only by the first -
// and later ones are empty.
func read_files(cmd *cobra.Command, paths []string) ([]analyze.Text, error) {
	texts := make([]analyze.Text, len(paths))
	if idx := slices.Index(paths, "-"); idx > -1 {
		text, err := analyze.ParseReader(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		texts[idx] = text
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		if path == "-" {
			continue
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = parallel.Format_stacktrace_on_panic(r, 1)
				}
			}()
			texts[i], err = read_file(path)
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

func parse_hex(word string) (rune, error) {
	q := strings.ToLower(word)
	q = strings.TrimPrefix(strings.TrimPrefix(q, "u+"), "0x")
	code, err := strconv.ParseUint(q, 16, 32)
	if err != nil || code > unicode.MaxRune || !utf8.ValidRune(rune(code)) {
		return 0, fmt.Errorf("Not a valid codepoint: %s", word)
	}
	return rune(code), nil
}

func search(cmd *cobra.Command, opts *Options, mode string, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = parallel.Format_stacktrace_on_panic(r, 1)
		}
	}()
	if len(args) == 0 {
		return fmt.Errorf("No query specified. Use %s -h for help", cmd.CommandPath())
	}
	var items []analyze.Codepoint
	switch mode {
	case "hex":
		for _, word := range args {
			ch, err := parse_hex(word)
			if err != nil {
				return err
			}
			items = append(items, analyze.Classify(ch))
		}
	default:
		query := strings.Join(args, " ")
		matches := unicode_names.CodePointsForQuery(query)
		slog.Debug("searched character names", "query", query, "matches", len(matches))
		if len(matches) == 0 {
			return fmt.Errorf("No characters match the query: %s", query)
		}
		items = make([]analyze.Codepoint, len(matches))
		for i, ch := range matches {
			items[i] = analyze.Classify(ch)
		}
	}
	return new_output(cmd.OutOrStdout(), opts).codepoints(items)
}

// NewCommand returns the unicode-analyze command along with its sub-commands.
func NewCommand() *cobra.Command {
	opts := Options{}
	root := cli.CreateCommand(&cobra.Command{
		Use:   "unicode-analyze [options] [text ...]",
		Args:  cobra.ArbitraryArgs,
		Short: "Break text into graphemes and codepoints and describe each codepoint",
		Long: "Break text into graphemes and codepoints and describe each codepoint. " +
			"Each argument and each :opt:`--file` is analyzed separately. Bytes that are not valid UTF-8 are reported individually.\n\n" +
			"Options can also be set with :envvar:`UNICODE_ANALYZE_<OPTION>` environment variables or in :file:`unicode-analyze.yaml` in the config directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return main(cmd, &opts, args)
		},
	})
	root.Flags().StringArrayVarP(&opts.Files, "file", "f", nil, "Analyze the contents of the specified file, use - for STDIN. Can be specified multiple times.")
	opts.Format = cli.PersistentChoices(root, "format", "The output format. The json format writes one JSON document per input.", "text", "json")
	opts.Color = cli.PersistentChoices(root, "color", "Whether to color the output.", "auto", "always", "never")
	root.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Log debug information to STDERR")

	sc := cli.CreateCommand(&cobra.Command{
		Use:   "search [options] QUERY ...",
		Short: "Find characters by name or by codepoint value and describe them",
		Long: "Find characters whose names contain words starting with every word of the query, " +
			"or with :opt:`--mode`=hex, describe the characters with the specified hexadecimal values, such as :code:`U+1F600`.",
	})
	mode := cli.Choices(sc, "mode", "How to interpret the query.", "name", "hex")
	sc.RunE = func(cmd *cobra.Command, args []string) error {
		return search(cmd, &opts, *mode, args)
	}
	root.AddCommand(sc)
	return root
}

func EntryPoint() *cobra.Command {
	root := NewCommand()
	cli.Init(root)
	return root
}
