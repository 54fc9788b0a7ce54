// Package classifier assigns a Kind to a tokenized word: a pure,
// total function of the word's text with no lexicon lookup involved.
// The lexicon package layers its own Kind (Lexicon) on top of this one
// when a word is recognized.
package classifier

import (
	"strings"
	"unicode"

	"github.com/go-prose/wordtally/asciifold"
)

// Kind categorizes a word by its surface form.
type Kind int

const (
	// Lexicon marks a word found in the dictionary. KindOf never
	// returns this value itself -- callers that have a dictionary hit
	// assign it directly, ahead of everything KindOf would otherwise
	// compute.
	Lexicon Kind = iota
	Foreign
	Ordinal
	Roman
	Number
	Acronym
	Proper
	Symbol
	Unknown
)

var kindNames = [...]string{
	Lexicon: "lexicon",
	Foreign: "foreign",
	Ordinal: "ordinal",
	Roman:   "roman",
	Number:  "number",
	Acronym: "acronym",
	Proper:  "proper",
	Symbol:  "symbol",
	Unknown: "unknown",
}

// Code returns the short lowercase name used in reports and the JSON
// API.
func (k Kind) Code() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func (k Kind) String() string { return k.Code() }

// All returns every Kind in the order KindOf tests them.
func All() []Kind {
	return []Kind{Lexicon, Foreign, Ordinal, Roman, Number, Acronym, Proper, Symbol, Unknown}
}

// KindOf classifies word, trying each predicate in a fixed order and
// returning the first match. It never returns Lexicon; a caller with
// access to a dictionary should check that first and only fall back to
// KindOf on a miss.
func KindOf(word string) Kind {
	switch {
	case isForeign(word):
		return Foreign
	case isOrdinalNumber(word):
		return Ordinal
	case isRomanNumeral(word):
		return Roman
	case isNumber(word):
		return Number
	case isAcronym(word):
		return Acronym
	case isProbablyProper(word):
		return Proper
	case isSymbol(word):
		return Symbol
	default:
		return Unknown
	}
}

func isForeign(word string) bool {
	for _, r := range word {
		if asciifold.IsApostrophe(r) {
			continue
		}
		if unicode.IsLetter(r) && r > unicode.MaxASCII {
			return true
		}
	}
	return false
}

// digitOrdSuffixes carry their own leading digit (1st, 2nd, 3rd), so the
// digits remaining before the match may be empty: "3rd" alone is already
// a complete ordinal.
var digitOrdSuffixes = []string{"1st", "1ST", "2nd", "2ND", "3rd", "3RD"}

// genericOrdSuffixes (th/TH) carry no digit of their own, so at least
// one digit must precede them: "4th" qualifies, bare "th" does not.
var genericOrdSuffixes = []string{"th", "TH"}

func isOrdinalNumber(word string) bool {
	for _, suf := range digitOrdSuffixes {
		if !strings.HasSuffix(word, suf) {
			continue
		}
		digits := word[:len(word)-len(suf)]
		if digits == "" || isAllDigits(digits) {
			return true
		}
	}
	for _, suf := range genericOrdSuffixes {
		if !strings.HasSuffix(word, suf) {
			continue
		}
		digits := word[:len(word)-len(suf)]
		if digits != "" && isAllDigits(digits) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

const romanUpper = "IVXLCDM"
const romanLower = "ivxlcdm"

func isRomanNumeral(word string) bool {
	if word == "" {
		return false
	}
	upper := strings.ContainsAny(word, romanUpper)
	lower := strings.ContainsAny(word, romanLower)
	if upper && lower {
		return false
	}
	valid := romanUpper
	if lower {
		valid = romanLower
	}
	for _, r := range word {
		if !strings.ContainsRune(valid, r) {
			return false
		}
	}
	return true
}

func isNumber(word string) bool {
	if word == "" {
		return false
	}
	sawDigit := false
	for i, r := range word {
		switch {
		case r >= '0' && r <= '9':
			sawDigit = true
		case r == '-' && i == 0:
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return sawDigit
}

func isAcronym(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if r == '.' {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isProbablyProper(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) && !asciifold.IsApostrophe(r) {
			return false
		}
	}
	return true
}

func isSymbol(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
