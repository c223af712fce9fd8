// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package analyze

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

var _ = fmt.Print

// Chunk is a maximal run of either valid UTF-8 or of bytes that are not part
// of any valid UTF-8 sequence. Bytes aliases the input buffer.
type Chunk struct {
	Valid bool
	Bytes []byte
}

// Chunks splits data into alternating valid and invalid runs, in order. The
// runs are never empty and together cover every byte of data exactly once.
func Chunks(data []byte) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		start, valid := 0, true
		for pos := 0; pos < len(data); {
			r, sz := utf8.DecodeRune(data[pos:])
			ok := r != utf8.RuneError || sz > 1
			if ok != valid {
				if pos > start && !yield(Chunk{Valid: valid, Bytes: data[start:pos]}) {
					return
				}
				start, valid = pos, ok
			}
			pos += sz
		}
		if start < len(data) {
			yield(Chunk{Valid: valid, Bytes: data[start:]})
		}
	}
}
