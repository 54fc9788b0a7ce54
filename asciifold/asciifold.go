// Package asciifold provides the small set of character-level predicates
// and transliterations shared by the lexicon, tokenizer and tally
// packages: apostrophe/boundary/vowel tests, the tokenizer's apostrophe
// canonicalization, and the lexicon's diacritic-folding variant-spelling
// table.
package asciifold

import "unicode"

// Apostrophe is the canonical apostrophe all variant apostrophes fold to:
// U+2019 RIGHT SINGLE QUOTATION MARK.
const Apostrophe = '\u2019'

// IsApostrophe reports whether r is one of the four apostrophe-like runes
// that text in the wild uses interchangeably: ASCII apostrophe, modifier
// letter apostrophe, right single quotation mark, and fullwidth apostrophe.
func IsApostrophe(r rune) bool {
	switch r {
	case '\u0027', '\u02BC', '\u2019', '\uFF07':
		return true
	}
	return false
}

// IsBoundary reports whether r separates words: whitespace, a control
// character, a zero-width space (U+200B), or a byte-order mark (U+FEFF).
func IsBoundary(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || r == '\u200B' || r == '\uFEFF'
}

// IsVowel reports whether r is a lowercase ASCII vowel, treating y as a
// vowel as the morphology rules require.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// CanonicalChar maps any of the four apostrophe runes to the canonical
// U+2019 form. It reports ok=false for every other rune; callers append
// the rune unchanged in that case.
func CanonicalChar(r rune) (s string, ok bool) {
	if IsApostrophe(r) {
		return string(Apostrophe), true
	}
	return "", false
}

// FoldKey produces the case-folded lookup key for a word: Unicode
// lowercase for letters, with every apostrophe variant normalized to
// ASCII '\''. Normalizing to ASCII (rather than U+2019) keeps tally keys
// stable regardless of which apostrophe a source text happened to use,
// and matches comparisons done against literal ASCII rule tables.
func FoldKey(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if IsApostrophe(r) {
			runes[i] = '\''
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

// transliterations maps a non-ASCII letter to its possible ASCII
// spellings. Most letters have exactly one; ae-ligature and oe-ligature
// have two, since a variant spelling may either expand the ligature
// (ligature -> "ae") or drop it entirely (ligature -> "e"), both attested
// in English borrowings (encyclopaedia / encyclopedia).
var transliterations = map[rune][]string{
	'\u00E1': {"a"}, '\u00E0': {"a"}, '\u00E2': {"a"}, '\u00E4': {"a"}, '\u00E3': {"a"}, '\u00E5': {"a"},
	'\u00C1': {"A"}, '\u00C0': {"A"}, '\u00C2': {"A"}, '\u00C4': {"A"}, '\u00C3': {"A"}, '\u00C5': {"A"},
	'\u00E9': {"e"}, '\u00E8': {"e"}, '\u00EA': {"e"}, '\u00EB': {"e"},
	'\u00C9': {"E"}, '\u00C8': {"E"}, '\u00CA': {"E"}, '\u00CB': {"E"},
	'\u00ED': {"i"}, '\u00EC': {"i"}, '\u00EE': {"i"}, '\u00EF': {"i"},
	'\u00CD': {"I"}, '\u00CC': {"I"}, '\u00CE': {"I"}, '\u00CF': {"I"},
	'\u00F3': {"o"}, '\u00F2': {"o"}, '\u00F4': {"o"}, '\u00F6': {"o"}, '\u00F5': {"o"},
	'\u00D3': {"O"}, '\u00D2': {"O"}, '\u00D4': {"O"}, '\u00D6': {"O"}, '\u00D5': {"O"},
	'\u00FA': {"u"}, '\u00F9': {"u"}, '\u00FB': {"u"}, '\u00FC': {"u"},
	'\u00DA': {"U"}, '\u00D9': {"U"}, '\u00DB': {"U"}, '\u00DC': {"U"},
	'\u00FD': {"y"}, '\u00FF': {"y"},
	'\u00DD': {"Y"},
	'\u00F1': {"n"}, '\u00D1': {"N"},
	'\u00E7': {"c"}, '\u00C7': {"C"},
	'\u00E6': {"ae", "e"}, '\u00C6': {"Ae", "E"},
	'\u0153': {"oe", "e"}, '\u0152': {"Oe", "E"},
}

// Transliterations returns the possible ASCII replacement spellings for
// r. The returned slice is empty when r is already ASCII or has no
// registered folding (an identity mapping -- no variant branch).
func Transliterations(r rune) []string {
	return transliterations[r]
}

// HasTransliteration reports whether r has a registered non-identity
// ASCII spelling.
func HasTransliteration(r rune) bool {
	_, ok := transliterations[r]
	return ok
}

// ASCIIFold returns the first (primary) ASCII transliteration of r, or r
// itself when r has no registered folding. It is used by the irregular
// -form codec to match a suffix's leading letter against an unaccented
// lemma (e.g. matching an accented e in a suffix against a bare e in the
// lemma).
func ASCIIFold(r rune) rune {
	if forms, ok := transliterations[r]; ok && len(forms) > 0 {
		if first := []rune(forms[0]); len(first) > 0 {
			return first[0]
		}
	}
	return r
}
