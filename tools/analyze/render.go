// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package analyze

import (
	"fmt"
	"strings"

	"github.com/unicode-analyze/unicode_analyze/tools/char_props"
)

var _ = fmt.Print

const (
	LRM         = "\u200e"
	RLM         = "\u200f"
	PLACEHOLDER = "◌"
)

// DisplayValue is U+XXXX for the BMP, U+XXXXXX above it and 0xXX for an
// undecodable byte.
func (self Codepoint) DisplayValue() string {
	switch {
	case self.kind == Invalid:
		return fmt.Sprintf("0x%02X", self.value)
	case self.value <= 0xffff:
		return fmt.Sprintf("U+%04X", self.value)
	}
	return fmt.Sprintf("U+%06X", self.value)
}

// DisplayCharacter is a rendering of the codepoint that is safe to write to a
// terminal: it never emits control codes, never lets a combining mark attach
// to surrounding text and never lets right-to-left text reorder its
// surroundings.
func (self Codepoint) DisplayCharacter() string {
	switch self.kind {
	case Character:
		return self.quoted_glyph()
	case ControlCode:
		return self.abbr
	case NonCharacter:
		return "∅"
	case PrivateUse:
		return "▨"
	case Unknown:
		return "?"
	case Invalid:
		return "�"
	}
	panic(fmt.Sprintf("unhandled codepoint kind: %s", self.kind))
}

func (self Codepoint) quoted_glyph() string {
	if self.width == 0 {
		return "''"
	}
	glyph := string(self.value)
	switch self.diacritic {
	case char_props.SingleDiacritic:
		glyph = PLACEHOLDER + glyph
	case char_props.DoubleDiacritic:
		glyph = PLACEHOLDER + glyph + PLACEHOLDER
	}
	if self.direction == char_props.RightToLeft {
		if self.diacritic != char_props.NoDiacritic {
			glyph = RLM + glyph + RLM
		}
		glyph = LRM + glyph + LRM
	}
	return "'" + glyph + "'"
}

func (self Codepoint) DisplayName() string {
	switch self.kind {
	case Character, ControlCode:
		return self.name
	case NonCharacter:
		return "NOT A CHARACTER"
	case PrivateUse:
		return "RESERVED FOR PRIVATE USE"
	case Unknown:
		return "UNKNOWN CHARACTER"
	case Invalid:
		return "INVALID UTF-8"
	}
	panic(fmt.Sprintf("unhandled codepoint kind: %s", self.kind))
}

// String is the form used inside grapheme and text renderings: the character
// for characters and control codes, the value for everything else.
func (self Codepoint) String() string {
	switch self.kind {
	case Character, ControlCode:
		return self.DisplayCharacter()
	case NonCharacter, PrivateUse, Unknown, Invalid:
		return self.DisplayValue()
	}
	panic(fmt.Sprintf("unhandled codepoint kind: %s", self.kind))
}

func (self Grapheme) write_to(b *strings.Builder) {
	if len(self.codepoints) == 1 {
		b.WriteString(self.codepoints[0].String())
		return
	}
	b.WriteByte('[')
	for i, c := range self.codepoints {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
}

// String renders a single codepoint grapheme as the codepoint and larger
// graphemes as [a + b + ...].
func (self Grapheme) String() string {
	var b strings.Builder
	self.write_to(&b)
	return b.String()
}

// String renders the text as [g1, g2, ...], skipping empty graphemes.
func (self Text) String() string {
	var b strings.Builder
	b.Grow(8 * len(self.graphemes))
	b.WriteByte('[')
	first := true
	for _, g := range self.graphemes {
		if g.Len() == 0 {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		g.write_to(&b)
	}
	b.WriteByte(']')
	return b.String()
}
