// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

// Package char_props holds the per-codepoint properties used to classify and
// render codepoints: control code abbreviations, reserved ranges, diacritic
// class and text direction.
package char_props

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

var _ = fmt.Print

type Diacritic uint8

const (
	// Not a grapheme extending mark
	NoDiacritic Diacritic = iota
	// Rendered with one placeholder base before it
	SingleDiacritic
	// Rendered with a placeholder base on each side
	DoubleDiacritic
)

func (self Diacritic) String() string {
	switch self {
	case SingleDiacritic:
		return "Single"
	case DoubleDiacritic:
		return "Double"
	default:
		return "No"
	}
}

type Direction uint8

const (
	Neutral Direction = iota
	LeftToRight
	RightToLeft
)

func (self Direction) String() string {
	switch self {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	default:
		return "Neutral"
	}
}

// IsNonCharacter reports whether ch is one of the 66 permanently reserved
// noncharacters.
func IsNonCharacter(ch rune) bool {
	if 0xfdd0 <= ch && ch <= 0xfdef {
		return true
	}
	return ch >= 0 && ch&0xfffe == 0xfffe
}

// IsPrivateUse reports whether ch is in the BMP private use area or in one of
// the two supplementary private use planes.
func IsPrivateUse(ch rune) bool {
	return (0xe000 <= ch && ch <= 0xf8ff) || (0xf0000 <= ch && ch <= unicode.MaxRune)
}

func is_grapheme_extend(ch rune) bool {
	return unicode.In(ch, unicode.Mn, unicode.Me, unicode.Other_Grapheme_Extend)
}

func DiacriticFor(ch rune) Diacritic {
	switch {
	case !is_grapheme_extend(ch):
		return NoDiacritic
	case double_diacritics[ch]:
		return DoubleDiacritic
	}
	return SingleDiacritic
}

// DirectionFor collapses the bidi class of ch. Only the right-to-left
// embedding, override and isolate controls are treated as directional
// controls, the left-to-right ones are neutral.
func DirectionFor(ch rune) Direction {
	p, sz := bidi.LookupRune(ch)
	if sz == 0 {
		return Neutral
	}
	switch p.Class() {
	case bidi.L:
		return LeftToRight
	case bidi.R, bidi.AL, bidi.RLE, bidi.RLO, bidi.RLI:
		return RightToLeft
	}
	return Neutral
}
