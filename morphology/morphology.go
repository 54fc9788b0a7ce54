// Package morphology implements the regular English inflection rules --
// noun pluralization, verb conjugation, adjective comparison -- and the
// compressed suffix-delta codec used to store irregular forms compactly
// in the lexicon. The rules are deliberate approximations (consonant
// doubling and syllable counting do not model stress), pinned by tests
// rather than aspiring to full correctness.
package morphology

import (
	"strings"

	"github.com/go-prose/wordtally/asciifold"
)

// endsInY reports whether word ends with y but not ay/ey/iy/oy/uy/yy --
// i.e. y preceded by a consonant (carry, but not day or toy).
func endsInY(word string) bool {
	r := []rune(strings.ToLower(word))
	n := len(r)
	if n < 2 || r[n-1] != 'y' {
		return false
	}
	return !asciifold.IsVowel(r[n-2])
}

// endsInE reports whether word ends with e but not ae/ee/ie/oe/ye.
func endsInE(word string) bool {
	w := strings.ToLower(word)
	if !strings.HasSuffix(w, "e") {
		return false
	}
	for _, pair := range []string{"ae", "ee", "ie", "oe", "ye"} {
		if strings.HasSuffix(w, pair) {
			return false
		}
	}
	return true
}

var doublingExceptionPairs = []string{"ed", "en", "er", "on"}

// consonantEndRepeat decides whether word's final consonant should be
// doubled before a vowel-initial suffix is appended. It slides a
// 3-character window over the final letters: the last character must be
// a consonant other than w or x, preceded by a vowel, preceded in turn
// by a consonant -- treating a "qu" pair as a single consonant unit, so
// a word like "quit" still qualifies. The trailing two characters must
// not be one of the exception pairs ed/en/er/on. When doubling applies,
// it returns the character to double and true.
func consonantEndRepeat(word string) (rune, bool) {
	r := []rune(strings.ToLower(word))
	n := len(r)
	if n < 3 {
		return 0, false
	}
	c := r[n-1]
	if asciifold.IsVowel(c) || c == 'w' || c == 'x' {
		return 0, false
	}
	v := r[n-2]
	if !asciifold.IsVowel(v) {
		return 0, false
	}
	x := r[n-3]
	xIsConsonant := !asciifold.IsVowel(x)
	if x == 'u' && n >= 4 && r[n-4] == 'q' {
		xIsConsonant = true
	}
	if !xIsConsonant {
		return 0, false
	}
	last2 := string(v) + string(c)
	for _, ex := range doublingExceptionPairs {
		if last2 == ex {
			return 0, false
		}
	}
	return c, true
}

// NounPlural returns the regular plural of a singular noun.
func NounPlural(lemma string) string {
	w := strings.ToLower(lemma)
	switch {
	case strings.HasSuffix(w, "sis") && len(lemma) > len("sis"):
		return lemma[:len(lemma)-len("sis")] + "ses"
	case endsInY(lemma):
		return lemma[:len(lemma)-1] + "ies"
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "sh"), strings.HasSuffix(w, "ch"),
		strings.HasSuffix(w, "x"), strings.HasSuffix(w, "z"):
		return lemma + "es"
	default:
		return lemma + "s"
	}
}

// VerbPresent returns the third-person singular present form.
func VerbPresent(lemma string) string {
	w := strings.ToLower(lemma)
	switch {
	case endsInY(lemma):
		return lemma[:len(lemma)-1] + "ies"
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "z"):
		if c, ok := consonantEndRepeat(lemma); ok {
			return lemma + string(c) + "es"
		}
		return lemma + "es"
	case strings.HasSuffix(w, "sh"), strings.HasSuffix(w, "ch"), strings.HasSuffix(w, "x"):
		return lemma + "es"
	default:
		return lemma + "s"
	}
}

// VerbPresentParticiple returns the -ing form.
func VerbPresentParticiple(lemma string) string {
	if c, ok := consonantEndRepeat(lemma); ok {
		return lemma + string(c) + "ing"
	}
	if endsInE(lemma) {
		return lemma[:len(lemma)-1] + "ing"
	}
	return lemma + "ing"
}

// VerbPast returns the regular past tense / past participle form.
func VerbPast(lemma string) string {
	if c, ok := consonantEndRepeat(lemma); ok {
		return lemma + string(c) + "ed"
	}
	w := strings.ToLower(lemma)
	switch {
	case strings.HasSuffix(w, "e"):
		return lemma + "d"
	case endsInY(lemma):
		return lemma[:len(lemma)-1] + "ied"
	default:
		return lemma + "ed"
	}
}

// countSyllables counts vowel runs in word, after stripping a single
// trailing silent e.
func countSyllables(word string) int {
	r := []rune(strings.ToLower(word))
	n := len(r)
	if n > 1 && r[n-1] == 'e' {
		r = r[:n-1]
	}
	count := 0
	inVowel := false
	for _, c := range r {
		if asciifold.IsVowel(c) {
			if !inVowel {
				count++
			}
			inVowel = true
		} else {
			inVowel = false
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

// Syllables returns the approximate syllable count of word, per
// countSyllables.
func Syllables(word string) int {
	return countSyllables(word)
}

// maxComparativeSyllables is the syllable ceiling below which
// AdjectiveComparative/AdjectiveSuperlative build a suffixed form; at or
// above it, callers should use "more"/"most" instead.
const maxComparativeSyllables = 4

// AdjectiveComparative returns the regular comparative form, or "" when
// the lemma has too many syllables and "more" should be used instead.
func AdjectiveComparative(lemma string) string {
	if countSyllables(lemma) >= maxComparativeSyllables {
		return ""
	}
	switch {
	case endsInE(lemma):
		return lemma + "r"
	case endsInY(lemma):
		return lemma[:len(lemma)-1] + "ier"
	default:
		if c, ok := consonantEndRepeat(lemma); ok {
			return lemma + string(c) + "er"
		}
		return lemma + "er"
	}
}

// AdjectiveSuperlative returns the regular superlative form, mirroring
// AdjectiveComparative's eligibility rule.
func AdjectiveSuperlative(lemma string) string {
	if countSyllables(lemma) >= maxComparativeSyllables {
		return ""
	}
	switch {
	case endsInE(lemma):
		return lemma + "st"
	case endsInY(lemma):
		return lemma[:len(lemma)-1] + "iest"
	default:
		if c, ok := consonantEndRepeat(lemma); ok {
			return lemma + string(c) + "est"
		}
		return lemma + "est"
	}
}
