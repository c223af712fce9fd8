// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package char_props

import (
	"fmt"
	"testing"
)

var _ = fmt.Print

func TestReservedRanges(t *testing.T) {
	nc := func(expected bool, chars ...rune) {
		for _, ch := range chars {
			if actual := IsNonCharacter(ch); actual != expected {
				t.Fatalf("IsNonCharacter(U+%04X) = %v expected %v", ch, actual, expected)
			}
		}
	}
	nc(true, 0xfdd0, 0xfdef, 0xfffe, 0xffff, 0x1fffe, 0x1ffff, 0x10fffe, 0x10ffff)
	nc(false, 'a', 0xfdcf, 0xfdf0, 0xfffd, 0x10000, 0x1fffd, 0x10fffd, 0xefffd)

	pu := func(expected bool, chars ...rune) {
		for _, ch := range chars {
			if actual := IsPrivateUse(ch); actual != expected {
				t.Fatalf("IsPrivateUse(U+%04X) = %v expected %v", ch, actual, expected)
			}
		}
	}
	pu(true, 0xe000, 0xf8ff, 0xf0000, 0xffffd, 0x100000, 0x10fffd)
	pu(false, 0xdfff, 0xf900, 0xeffff, 'z')
}

func TestControlCodes(t *testing.T) {
	cc := func(ch rune, abbr, name string) {
		q, found := ControlCodeFor(ch)
		if !found {
			t.Fatalf("No control code for U+%04X", ch)
		}
		if q.Abbreviation != abbr || q.Name != name {
			t.Fatalf("Control code for U+%04X was %#v", ch, q)
		}
	}
	cc('\n', "LF", "LINE FEED")
	cc(0x0b, "VT", "LINE TABULATION")
	cc(0x9b, "CSI", "CONTROL SEQUENCE INTRODUCER")
	cc(0x200d, "ZWJ", "ZERO WIDTH JOINER")
	cc(0xfe0f, "VS16", "VARIATION SELECTOR-16")
	cc(0xfeff, "BOM", "BYTE ORDER MARK")
	for _, ch := range []rune{' ', 'a', 0x2000, 0x202f, 0xfffc} {
		if _, found := ControlCodeFor(ch); found {
			t.Fatalf("Unexpected control code for U+%04X", ch)
		}
	}
}

func TestDiacriticAndDirection(t *testing.T) {
	d := func(ch rune, expected Diacritic) {
		if actual := DiacriticFor(ch); actual != expected {
			t.Fatalf("Diacritic for U+%04X was %s instead of %s", ch, actual, expected)
		}
	}
	d('a', NoDiacritic)
	d(0x0301, SingleDiacritic)
	d(0x064e, SingleDiacritic)
	d(0x20dd, SingleDiacritic)
	d(0x035d, DoubleDiacritic)
	d(0x1dfc, DoubleDiacritic)

	dir := func(ch rune, expected Direction) {
		if actual := DirectionFor(ch); actual != expected {
			t.Fatalf("Direction for U+%04X was %s instead of %s", ch, actual, expected)
		}
	}
	dir('H', LeftToRight)
	dir(0x05d0, RightToLeft)
	dir(0x0627, RightToLeft)
	dir(0x202b, RightToLeft)
	dir(0x202e, RightToLeft)
	dir(0x2067, RightToLeft)
	dir(0x202a, Neutral)
	dir(0x202d, Neutral)
	dir(0x2066, Neutral)
	dir('1', Neutral)
	dir(',', Neutral)
	dir(0x064e, Neutral)
}
