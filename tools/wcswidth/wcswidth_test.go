// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWCWidth(t *testing.T) {
	wcwidth := func(text string, widths ...int) {
		for i, q := range []rune(text) {
			if w := Runewidth(q); w != widths[i] {
				t.Fatalf("The width of the char: U+%x was %d instead of %d", q, w, widths[i])
			}
		}
	}

	wcwidth("a1\000コニ✔", 1, 1, 0, 2, 2, 1)
	wcwidth("́​", 0, 0)
	wcwidth("\U0001f469一", 2, 2)
	// Format characters
	wcwidth("\u2061\u2062\U000e0001\U000e007f\U0001d173\u0600\U00013430\U0001bca0", 0, 0, 0, 0, 0, 0, 0, 0)
	// Ambiguous width is narrow
	wcwidth("§①", 1, 1)
}

func TestSplitIntoGraphemes(t *testing.T) {
	var m = map[string][]string{
		" ̈ ":                        {" ̈", " "},
		"abc":                             {"a", "b", "c"},
		"\v\t\r\n":                        {"\v", "\t", "\r\n"},
		"e̵͂o":                  {"e̵͂", "o"},
		"\U0001F635‍\U0001F4AB ":     {"\U0001F635‍\U0001F4AB", " "},
		"\U0001F1EE\U0001F1F3\U0001F1EE": {"\U0001F1EE\U0001F1F3", "\U0001F1EE"},
		"":                                {},
	}
	for text, expected := range m {
		if diff := cmp.Diff(expected, SplitIntoGraphemes(text)); diff != "" {
			t.Fatalf("Failed to split %#v into graphemes: %s", text, diff)
		}
	}
	n := 0
	for range IteratorOverGraphemes("abcdef") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("Iteration did not stop early")
	}
}
