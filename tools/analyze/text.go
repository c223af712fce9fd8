// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package analyze

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/unicode-analyze/unicode_analyze/tools/wcswidth"
)

var _ = fmt.Print

// Grapheme is one user perceived character: a non-empty sequence of
// codepoints.
type Grapheme struct {
	codepoints []Codepoint
}

// GraphemeFromValid classifies every codepoint of a single grapheme cluster.
// cluster must be valid UTF-8.
func GraphemeFromValid(cluster string) Grapheme {
	ans := Grapheme{codepoints: make([]Codepoint, 0, utf8.RuneCountInString(cluster))}
	for _, ch := range cluster {
		ans.codepoints = append(ans.codepoints, Classify(ch))
	}
	return ans
}

func GraphemeFromInvalid(b byte) Grapheme {
	return Grapheme{codepoints: []Codepoint{ClassifyByte(b)}}
}

func (self Grapheme) Len() int { return len(self.codepoints) }

func (self Grapheme) At(i int) Codepoint { return self.codepoints[i] }

func (self Grapheme) Codepoints() iter.Seq[Codepoint] { return slices.Values(self.codepoints) }

// CodepointList returns a copy of the codepoints, owned by the caller.
func (self Grapheme) CodepointList() []Codepoint { return slices.Clone(self.codepoints) }

// Text is an input decomposed into graphemes, in input order. It holds no
// references to the input.
type Text struct {
	graphemes []Grapheme
}

func (self *Text) add_valid(text string) {
	for cluster := range wcswidth.IteratorOverGraphemes(text) {
		self.graphemes = append(self.graphemes, GraphemeFromValid(cluster))
	}
}

func (self *Text) add_invalid(data []byte) {
	for _, b := range data {
		self.graphemes = append(self.graphemes, GraphemeFromInvalid(b))
	}
}

// ParseString parses text that is known to be valid UTF-8. Go strings can
// hold arbitrary bytes, so invalid text falls back to ParseBytes.
func ParseString(text string) Text {
	if !utf8.ValidString(text) {
		return ParseBytes([]byte(text))
	}
	ans := Text{}
	ans.add_valid(text)
	return ans
}

// ParseOSString parses a string as supplied by the operating system, such as
// a command line argument, environment variable or file name, which may not
// be valid UTF-8.
func ParseOSString(text string) Text {
	return ParseBytes([]byte(text))
}

func ParseBytes(data []byte) Text {
	ans := Text{}
	for chunk := range Chunks(data) {
		if chunk.Valid {
			ans.add_valid(string(chunk.Bytes))
		} else {
			ans.add_invalid(chunk.Bytes)
		}
	}
	return ans
}

// ParseReader parses everything in r, the only errors are read errors.
func ParseReader(r io.Reader) (Text, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Text{}, fmt.Errorf("failed to read text: %w", err)
	}
	return ParseBytes(data), nil
}

func (self Text) Len() int { return len(self.graphemes) }

func (self Text) At(i int) Grapheme { return self.graphemes[i] }

func (self Text) Graphemes() iter.Seq[Grapheme] { return slices.Values(self.graphemes) }

func (self Text) Codepoints() iter.Seq[Codepoint] {
	return func(yield func(Codepoint) bool) {
		for _, g := range self.graphemes {
			for _, c := range g.codepoints {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// GraphemeList returns a copy of the graphemes, owned by the caller.
func (self Text) GraphemeList() []Grapheme {
	ans := make([]Grapheme, len(self.graphemes))
	for i, g := range self.graphemes {
		ans[i] = Grapheme{codepoints: g.CodepointList()}
	}
	return ans
}

// CodepointList returns all codepoints of all graphemes in order, owned by
// the caller.
func (self Text) CodepointList() []Codepoint {
	return slices.Collect(self.Codepoints())
}
