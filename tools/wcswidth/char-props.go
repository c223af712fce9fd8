// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"fmt"
	"iter"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

var _ = fmt.Print

// IteratorOverGraphemes yields the extended grapheme clusters of text, as
// defined by UAX #29. text must be valid UTF-8.
func IteratorOverGraphemes(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		tokens := graphemes.FromString(text)
		for tokens.Next() {
			if !yield(tokens.Value()) {
				return
			}
		}
	}
}

func SplitIntoGraphemes(text string) []string {
	ans := make([]string, 0, len(text))
	for t := range IteratorOverGraphemes(text) {
		ans = append(ans, t)
	}
	return ans
}
