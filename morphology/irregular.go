package morphology

import (
	"strings"

	"github.com/go-prose/wordtally/asciifold"
)

// minSharedPrefix is the shortest lemma/form common prefix
// EncodeIrregular will exploit: i >= 3.
const minSharedPrefix = 3

// DecodeIrregular expands a stored irregular form against its lemma. A
// form that does not start with "-" is already literal and is returned
// unchanged. Otherwise the leading "-" is stripped to get a suffix, and
// the result is lemma cut just before the last occurrence of the
// suffix's first rune, with the suffix appended -- e.g. lemma "child",
// form "-dren" decodes to "chil"+"dren" = "children", because the last
// "d" in "child" is at index 4.
//
// When the suffix's first rune never occurs in lemma, DecodeIrregular
// also tries the rune's primary ASCII transliteration (so a suffix
// beginning with an accented letter can still anchor against the plain
// letter in the lemma). Failing that, it falls back to lemma+suffix
// concatenation.
func DecodeIrregular(lemma, form string) string {
	if !strings.HasPrefix(form, "-") {
		return form
	}
	suffix := form[1:]
	if suffix == "" {
		return lemma
	}
	target := []rune(suffix)[0]

	lemmaRunes := []rune(lemma)
	idx := lastIndexRune(lemmaRunes, target)
	if idx < 0 {
		folded := asciifold.ASCIIFold(target)
		if folded != target {
			idx = lastIndexRune(lemmaRunes, folded)
		}
	}
	if idx < 0 {
		return lemma + suffix
	}
	return string(lemmaRunes[:idx]) + suffix
}

func lastIndexRune(runes []rune, target rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

// EncodeIrregular computes the compressed "-<suffix>" representation of
// an irregular form relative to its lemma, for storage. It finds the
// longest common prefix of lemma and form, then walks backward from the
// end of that prefix looking for the longest shared-prefix length whose
// anchoring rune does not recur later in lemma -- that position anchors
// an unambiguous decode. If no such position exists with at least
// minSharedPrefix runes shared, form is returned unchanged (stored
// literally): the saving would be zero or negative, or the decode would
// be ambiguous.
func EncodeIrregular(lemma, form string) string {
	lemmaRunes := []rune(lemma)
	formRunes := []rune(form)

	prefixLen := 0
	for prefixLen < len(lemmaRunes) && prefixLen < len(formRunes) && lemmaRunes[prefixLen] == formRunes[prefixLen] {
		prefixLen++
	}

	for i := prefixLen - 1; i >= minSharedPrefix; i-- {
		if !runeRecursAfter(lemmaRunes, i) {
			return "-" + string(formRunes[i:])
		}
	}
	return form
}

func runeRecursAfter(runes []rune, i int) bool {
	target := runes[i]
	for j := i + 1; j < len(runes); j++ {
		if runes[j] == target {
			return true
		}
	}
	return false
}
