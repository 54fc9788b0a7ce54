// Package lexicon parses the compact CSV-like lemma dictionary into
// Lexeme entries, materializes every inflected and variant-spelled
// surface form, and indexes them for lookup. The builtin dictionary is
// a lazily constructed, process-wide read-only singleton; construction
// is fatal on any malformed line, matching the strict parsing policy a
// dictionary compiler needs at startup.
package lexicon

import (
	"github.com/go-prose/wordtally/morphology"
)

// WordClass is the closed set of parts of speech a Lexeme may carry.
type WordClass int

const (
	Noun WordClass = iota // default class when unspecified
	Adjective
	Adverb
	Conjunction
	Determiner
	Interjection
	Preposition
	Pronoun
	Verb
)

var classCodes = map[string]WordClass{
	"N":  Noun,
	"A":  Adjective,
	"Av": Adverb,
	"C":  Conjunction,
	"D":  Determiner,
	"I":  Interjection,
	"P":  Preposition,
	"Pn": Pronoun,
	"V":  Verb,
}

var classNames = map[WordClass]string{
	Noun:        "N",
	Adjective:   "A",
	Adverb:      "Av",
	Conjunction: "C",
	Determiner:  "D",
	Interjection: "I",
	Preposition: "P",
	Pronoun:     "Pn",
	Verb:        "V",
}

// ParseWordClass decodes a class code (N, V, A, Av, P, Pn, C, D, I). An
// unrecognized code is rejected -- the caller treats this as a malformed
// line.
func ParseWordClass(code string) (WordClass, bool) {
	wc, ok := classCodes[code]
	return wc, ok
}

// Code returns the class's short code.
func (wc WordClass) Code() string {
	if name, ok := classNames[wc]; ok {
		return name
	}
	return "N"
}

func (wc WordClass) String() string { return wc.Code() }

// WordAttr is a single-character lemma flag.
type WordAttr rune

const (
	SingulareTantum WordAttr = 's'
	PluraleTantum   WordAttr = 'p'
	Proper          WordAttr = 'n'
	Auxiliary       WordAttr = 'a'
	Intransitive    WordAttr = 'i'
	Transitive      WordAttr = 't'
	AlternateZ      WordAttr = 'z'
)

// AttrSet is a small set of WordAttr flags, backed by a map since the
// alphabet is tiny and set membership is the only operation needed.
type AttrSet map[WordAttr]bool

// ParseAttrs decodes a raw attribute-character string into an AttrSet.
// Unrecognized characters are ignored rather than rejected: only the
// class code is load-bearing enough to fail the line.
func ParseAttrs(raw string) AttrSet {
	set := make(AttrSet, len(raw))
	for _, r := range raw {
		set[WordAttr(r)] = true
	}
	return set
}

// Has reports whether the set contains attr.
func (s AttrSet) Has(attr WordAttr) bool {
	return s[attr]
}

// Lexeme is one dictionary entry: a lemma, its class and attributes,
// and every surface form it materializes.
type Lexeme struct {
	Lemma_         string
	Class          WordClass
	Attrs          AttrSet
	IrregularForms []string
	Forms_         []string
}

// Lemma returns the citation form.
func (l *Lexeme) Lemma() string { return l.Lemma_ }

// WordClass returns the lexeme's part of speech.
func (l *Lexeme) WordClass() WordClass { return l.Class }

// Forms returns every materialized surface form, lemma first.
func (l *Lexeme) Forms() []string { return l.Forms_ }

// Syllables returns the lemma's approximate syllable count, exposed
// here since a consumer inspecting a Lexeme directly -- a highlighter,
// a spell-checker -- plausibly wants it without reaching into
// morphology itself.
func (l *Lexeme) Syllables() int {
	return morphology.Syllables(l.Lemma_)
}

// HasPlural reports whether the lemma inflects for number at all: false
// for a SingulareTantum noun like "information" or a PluraleTantum noun
// like "scissors" (both fixed-number nouns), true otherwise.
func (l *Lexeme) HasPlural() bool {
	return !l.Attrs.Has(SingulareTantum) && !l.Attrs.Has(PluraleTantum)
}
