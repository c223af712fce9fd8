// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package unicode_names

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

const (
	hangul_base   = 0xac00
	hangul_count  = 11172
	jamo_v_count  = 21
	jamo_t_count  = 28
	jamo_n_count  = jamo_v_count * jamo_t_count
	ideograph_fmt = "%s IDEOGRAPH-%04X"
)

var jamo_l = [...]string{"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H"}
var jamo_v = [...]string{"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I"}
var jamo_t = [...]string{"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG", "LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S", "SS", "NG", "J", "C", "K", "T", "P", "H"}

func hangul_syllable_name(cp rune) string {
	idx := int(cp - hangul_base)
	if idx < 0 || idx >= hangul_count {
		return ""
	}
	l, v, t := idx/jamo_n_count, (idx%jamo_n_count)/jamo_t_count, idx%jamo_t_count
	return "HANGUL SYLLABLE " + jamo_l[l] + jamo_v[v] + jamo_t[t]
}

// The name table only stores a placeholder for the large ranges whose
// names are derived from the codepoint value.
func derived_name(cp rune, placeholder string) string {
	switch {
	case strings.HasPrefix(placeholder, "<CJK Ideograph"):
		return fmt.Sprintf(ideograph_fmt, "CJK UNIFIED", cp)
	case strings.HasPrefix(placeholder, "<Tangut Ideograph"):
		return fmt.Sprintf(ideograph_fmt, "TANGUT", cp)
	case strings.HasPrefix(placeholder, "<Hangul Syllable"):
		return hangul_syllable_name(cp)
	}
	return ""
}

// NameForCodePoint returns the Unicode name of cp or the empty string if cp
// has no name. Controls, surrogates and private use characters have no name.
func NameForCodePoint(cp rune) string {
	ans := runenames.Name(cp)
	if strings.HasPrefix(ans, "<") {
		ans = derived_name(cp, ans)
	}
	return ans
}
