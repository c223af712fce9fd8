// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package analyze

import (
	"cmp"
	"fmt"
	"unicode"

	"github.com/unicode-analyze/unicode_analyze/tools/char_props"
	"github.com/unicode-analyze/unicode_analyze/tools/unicode_names"
	"github.com/unicode-analyze/unicode_analyze/tools/wcswidth"
)

var _ = fmt.Print

type Kind uint8

const (
	Character Kind = iota
	ControlCode
	NonCharacter
	PrivateUse
	Unknown
	Invalid
)

func (self Kind) String() string {
	switch self {
	case Character:
		return "Character"
	case ControlCode:
		return "ControlCode"
	case NonCharacter:
		return "NonCharacter"
	case PrivateUse:
		return "PrivateUse"
	case Unknown:
		return "Unknown"
	case Invalid:
		return "Invalid"
	}
	return fmt.Sprintf("Kind(%d)", uint8(self))
}

// Key identifies a codepoint by its scalar value or, for undecodable bytes,
// by the byte. Every scalar value sorts before every byte.
type Key uint32

const invalid_key_base = unicode.MaxRune + 1

// Codepoint is an immutable classified scalar value or undecodable byte. The
// zero value is U+0000 classified as a Character and is not meaningful, use
// Classify or ClassifyByte.
type Codepoint struct {
	kind  Kind
	value rune // the scalar value or the undecodable byte

	width     uint8
	name      string
	abbr      string
	diacritic char_props.Diacritic
	direction char_props.Direction
}

// Classify returns the classification of the scalar value ch. The result
// depends only on ch.
func Classify(ch rune) Codepoint {
	ans := Codepoint{value: ch}
	switch {
	case char_props.IsNonCharacter(ch):
		ans.kind = NonCharacter
	case char_props.IsPrivateUse(ch):
		ans.kind = PrivateUse
	default:
		if cc, found := char_props.ControlCodeFor(ch); found {
			ans.kind, ans.abbr, ans.name = ControlCode, cc.Abbreviation, cc.Name
		} else if name := unicode_names.NameForCodePoint(ch); name != "" {
			ans.kind, ans.name = Character, name
			ans.diacritic = char_props.DiacriticFor(ch)
			ans.direction = char_props.DirectionFor(ch)
			ans.width = uint8(width_of(ch, ans.diacritic))
		} else {
			ans.kind = Unknown
		}
	}
	return ans
}

// Marks are always shown on placeholder bases so their width is that of the
// placeholders.
func width_of(ch rune, d char_props.Diacritic) int {
	switch d {
	case char_props.SingleDiacritic:
		return 1
	case char_props.DoubleDiacritic:
		return 2
	}
	return wcswidth.Runewidth(ch)
}

func ClassifyByte(b byte) Codepoint {
	return Codepoint{kind: Invalid, value: rune(b)}
}

func (self Codepoint) Kind() Kind { return self.kind }

// Value returns the scalar value, ok is false for undecodable bytes.
func (self Codepoint) Value() (ch rune, ok bool) {
	if self.kind == Invalid {
		return 0, false
	}
	return self.value, true
}

// Byte returns the undecodable byte, ok is false for decoded scalar values.
func (self Codepoint) Byte() (b byte, ok bool) {
	if self.kind != Invalid {
		return 0, false
	}
	return byte(self.value), true
}

func (self Codepoint) Key() Key {
	if self.kind == Invalid {
		return Key(invalid_key_base + self.value)
	}
	return Key(self.value)
}

func (self Codepoint) Equal(other Codepoint) bool { return self.Key() == other.Key() }

func (self Codepoint) Compare(other Codepoint) int { return cmp.Compare(self.Key(), other.Key()) }

// Width is the number of terminal cells of a Character, zero for all other
// kinds.
func (self Codepoint) Width() int { return int(self.width) }

func (self Codepoint) Diacritic() char_props.Diacritic { return self.diacritic }

func (self Codepoint) Direction() char_props.Direction { return self.direction }

// Abbreviation is the short form of a ControlCode, empty for all other kinds.
func (self Codepoint) Abbreviation() string { return self.abbr }
