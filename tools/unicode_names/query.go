// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package unicode_names

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"github.com/unicode-analyze/unicode_analyze/tools/utils"
)

type mark_set = *utils.Set[rune]

var _ = fmt.Print
var word_map map[string][]rune

func add_word(codepoint rune, word string) {
	if codepoint <= 32 || codepoint == 127 || (128 <= codepoint && codepoint <= 159) || len(word) < 2 {
		return
	}
	word_map[word] = append(word_map[word], codepoint)
}

func add_words(codepoint rune, name string) {
	for len(name) > 0 {
		idx := strings.IndexByte(name, ' ')
		if idx < 0 {
			add_word(codepoint, name)
			break
		}
		if idx > 0 {
			add_word(codepoint, name[:idx])
		}
		name = name[idx+1:]
	}
}

var parse_once sync.Once

// Only explicitly named codepoints are indexed, the algorithmically named
// ideographs and syllables would swamp every query.
func build_index() {
	word_map = make(map[string][]rune, 32768)
	for cp := rune(0); cp <= unicode.MaxRune; cp++ {
		if 0xd800 <= cp && cp <= 0xdfff {
			continue
		}
		name := runenames.Name(cp)
		if name == "" || name[0] == '<' || strings.HasPrefix(name, "CJK COMPATIBILITY IDEOGRAPH-") {
			continue
		}
		add_words(cp, strings.ToLower(name))
	}
}

func Initialize() {
	parse_once.Do(build_index)
}

func find_matching_codepoints(prefix string) (ans mark_set) {
	ans = utils.NewSet[rune]()
	for q, marks := range word_map {
		if strings.HasPrefix(q, prefix) {
			ans.AddItems(marks...)
		}
	}
	return ans
}

func marks_for_query(query string) (ans mark_set) {
	Initialize()
	prefixes := strings.Fields(strings.ToLower(query))
	results := make([]mark_set, len(prefixes))
	var wg sync.WaitGroup
	for i, prefix := range prefixes {
		wg.Go(func() {
			results[i] = find_matching_codepoints(prefix)
		})
	}
	wg.Wait()
	for _, x := range results {
		if ans == nil {
			ans = x
		} else {
			ans = ans.Intersect(x)
		}
	}
	if ans == nil {
		ans = utils.NewSet[rune](0)
	}
	return
}

// CodePointsForQuery returns, in ascending order, the codepoints that have,
// for every word in query, a word in their name starting with it.
func CodePointsForQuery(query string) (ans []rune) {
	ans = marks_for_query(query).AsSlice()
	slices.Sort(ans)
	return
}
