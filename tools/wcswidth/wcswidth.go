// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"unicode"

	runewidth "github.com/mattn/go-runewidth"
)

// Ambiguous width characters are narrow regardless of the locale in the
// environment, so that widths are the same everywhere.
var condition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Runewidth returns the number of cells code occupies in a terminal: 0, 1 or 2.
// Invisible format characters take no cells.
func Runewidth(code rune) int {
	if unicode.In(code, unicode.Cf, unicode.Other_Default_Ignorable_Code_Point) {
		return 0
	}
	return min(max(condition.RuneWidth(code), 0), 2)
}
