// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package char_props

type ControlCode struct {
	Abbreviation, Name string
}

// ControlCodeFor returns the abbreviation and name used in place of ch, for
// the invisible characters that would otherwise corrupt or hide output.
func ControlCodeFor(ch rune) (ans ControlCode, found bool) {
	ans, found = control_codes[ch]
	return
}

var control_codes = map[rune]ControlCode{
	// Basic Latin
	0x00: {"NUL", "NULL"},
	0x01: {"SOH", "START OF HEADING"},
	0x02: {"STX", "START OF TEXT"},
	0x03: {"ETX", "END OF TEXT"},
	0x04: {"EOT", "END OF TRANSMISSION"},
	0x05: {"ENQ", "ENQUIRY"},
	0x06: {"ACK", "ACKNOWLEDGE"},
	0x07: {"BEL", "ALERT"},
	0x08: {"BS", "BACKSPACE"},
	0x09: {"HT", "CHARACTER TABULATION"},
	0x0a: {"LF", "LINE FEED"},
	0x0b: {"VT", "LINE TABULATION"},
	0x0c: {"FF", "FORM FEED"},
	0x0d: {"CR", "CARRIAGE RETURN"},
	0x0e: {"SO", "SHIFT OUT"},
	0x0f: {"SI", "SHIFT IN"},
	0x10: {"DLE", "DATA LINK ESCAPE"},
	0x11: {"DC1", "DEVICE CONTROL 1"},
	0x12: {"DC2", "DEVICE CONTROL 2"},
	0x13: {"DC3", "DEVICE CONTROL 3"},
	0x14: {"DC4", "DEVICE CONTROL 4"},
	0x15: {"NAK", "NEGATIVE ACKNOWLEDGE"},
	0x16: {"SYN", "SYNCHRONOUS IDLE"},
	0x17: {"ETB", "END OF TRANSMISSION BLOCK"},
	0x18: {"CAN", "CANCEL"},
	0x19: {"EM", "END OF MEDIUM"},
	0x1a: {"SUB", "SUBSTITUTE"},
	0x1b: {"ESC", "ESCAPE"},
	0x1c: {"FS", "INFORMATION SEPARATOR FOUR"},
	0x1d: {"GS", "INFORMATION SEPARATOR THREE"},
	0x1e: {"RS", "INFORMATION SEPARATOR TWO"},
	0x1f: {"US", "INFORMATION SEPARATOR ONE"},
	0x7f: {"DEL", "DELETE"},

	// Latin-1 Supplement
	0x80: {"PAD", "PADDING CHARACTER"},
	0x81: {"HOP", "HIGH OCTET PRESET"},
	0x82: {"BPH", "BREAK PERMITTED HERE"},
	0x83: {"NBH", "NO BREAK HERE"},
	0x84: {"IND", "INDEX"},
	0x85: {"NEL", "NEXT LINE"},
	0x86: {"SSA", "START OF SELECTED AREA"},
	0x87: {"ESA", "END OF SELECTED AREA"},
	0x88: {"HTS", "CHARACTER TABULATION SET"},
	0x89: {"HTJ", "CHARACTER TABULATION WITH JUSTIFICATION"},
	0x8a: {"VTS", "VERTICAL TABULATION SET"},
	0x8b: {"PLD", "PARTIAL LINE FORWARD"},
	0x8c: {"PLU", "PARTIAL LINE BACKWARD"},
	0x8d: {"RI", "REVERSE LINE FEED"},
	0x8e: {"SS2", "SINGLE SHIFT TWO"},
	0x8f: {"SS3", "SINGLE SHIFT THREE"},
	0x90: {"DCS", "DEVICE CONTROL STRING"},
	0x91: {"PU1", "PRIVATE USE ONE"},
	0x92: {"PU2", "PRIVATE USE TWO"},
	0x93: {"STS", "SET TRANSMIT STATE"},
	0x94: {"CCH", "CANCEL CHARACTER"},
	0x95: {"MW", "MESSAGE WAITING"},
	0x96: {"SPA", "START OF GUARDED AREA"},
	0x97: {"EPA", "END OF GUARDED AREA"},
	0x98: {"SOS", "START OF STRING"},
	0x99: {"SGC", "SINGLE GRAPHIC CHARACTER INTRODUCER"},
	0x9a: {"SCI", "SINGLE CHARACTER INTRODUCER"},
	0x9b: {"CSI", "CONTROL SEQUENCE INTRODUCER"},
	0x9c: {"ST", "STRING TERMINATOR"},
	0x9d: {"OSC", "OPERATING SYSTEM COMMAND"},
	0x9e: {"PM", "PRIVACY MESSAGE"},
	0x9f: {"APC", "APPLICATION PROGRAM COMMAND"},
	0xad: {"SHY", "SOFT HYPHEN"},

	// Combining Diacritical Marks
	0x034f: {"CGJ", "COMBINING GRAPHEME JOINER"},

	// Arabic
	0x061c: {"ALM", "ARABIC LETTER MARK"},

	// General Punctuation
	0x200b: {"ZWSP", "ZERO WIDTH SPACE"},
	0x200c: {"ZWNJ", "ZERO WIDTH NON-JOINER"},
	0x200d: {"ZWJ", "ZERO WIDTH JOINER"},
	0x200e: {"LRM", "LEFT-TO-RIGHT MARK"},
	0x200f: {"RLM", "RIGHT-TO-LEFT MARK"},
	0x2028: {"LS", "LINE SEPARATOR"},
	0x2029: {"PS", "PARAGRAPH SEPARATOR"},
	0x202a: {"LRE", "LEFT-TO-RIGHT EMBEDDING"},
	0x202b: {"RLE", "RIGHT-TO-LEFT EMBEDDING"},
	0x202c: {"PDF", "POP DIRECTIONAL FORMATTING"},
	0x202d: {"LRO", "LEFT-TO-RIGHT OVERRIDE"},
	0x202e: {"RLO", "RIGHT-TO-LEFT OVERRIDE"},
	0x2060: {"WJ", "WORD JOINER"},
	0x2066: {"LRI", "LEFT-TO-RIGHT ISOLATE"},
	0x2067: {"RLI", "RIGHT-TO-LEFT ISOLATE"},
	0x2068: {"FSI", "FIRST STRONG ISOLATE"},
	0x2069: {"PDI", "POP DIRECTIONAL ISOLATE"},

	// Variation Selectors
	0xfe00: {"VS1", "VARIATION SELECTOR-1"},
	0xfe01: {"VS2", "VARIATION SELECTOR-2"},
	0xfe02: {"VS3", "VARIATION SELECTOR-3"},
	0xfe03: {"VS4", "VARIATION SELECTOR-4"},
	0xfe04: {"VS5", "VARIATION SELECTOR-5"},
	0xfe05: {"VS6", "VARIATION SELECTOR-6"},
	0xfe06: {"VS7", "VARIATION SELECTOR-7"},
	0xfe07: {"VS8", "VARIATION SELECTOR-8"},
	0xfe08: {"VS9", "VARIATION SELECTOR-9"},
	0xfe09: {"VS10", "VARIATION SELECTOR-10"},
	0xfe0a: {"VS11", "VARIATION SELECTOR-11"},
	0xfe0b: {"VS12", "VARIATION SELECTOR-12"},
	0xfe0c: {"VS13", "VARIATION SELECTOR-13"},
	0xfe0d: {"VS14", "VARIATION SELECTOR-14"},
	0xfe0e: {"VS15", "VARIATION SELECTOR-15"},
	0xfe0f: {"VS16", "VARIATION SELECTOR-16"},

	// Arabic Presentation Forms-B
	0xfeff: {"BOM", "BYTE ORDER MARK"},

	// Specials
	0xfff9: {"IAA", "INTERLINEAR ANNOTATION ANCHOR"},
	0xfffa: {"IAS", "INTERLINEAR ANNOTATION SEPARATOR"},
	0xfffb: {"IAT", "INTERLINEAR ANNOTATION TERMINATOR"},
}

// Combining marks that span two bases
var double_diacritics = map[rune]bool{
	0x035c: true, // COMBINING DOUBLE BREVE BELOW
	0x035d: true, // COMBINING DOUBLE BREVE
	0x035e: true, // COMBINING DOUBLE MACRON
	0x035f: true, // COMBINING DOUBLE MACRON BELOW
	0x0360: true, // COMBINING DOUBLE TILDE
	0x0361: true, // COMBINING DOUBLE INVERTED BREVE
	0x0362: true, // COMBINING DOUBLE RIGHTWARDS ARROW BELOW
	0x1dcd: true, // COMBINING DOUBLE CIRCUMFLEX ABOVE
	0x1dfc: true, // COMBINING DOUBLE INVERTED BREVE BELOW
}
