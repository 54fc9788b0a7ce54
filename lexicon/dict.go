// Lexicon: the indexed, read-only collection of Lexemes built from the
// embedded dictionary. Grounded on the teacher's Lemmatizer, which
// likewise wraps its loaded tables behind a handful of read-only lookup
// methods once construction finishes.
package lexicon

import (
	"bytes"
	_ "embed"
	"iter"
	"sort"
	"strings"
	"sync"
)

//go:embed data/english.csv
var builtinCSV []byte

// Lexicon is an append-only collection of Lexeme, indexed by every
// lowercased surface form each one materializes. It is built once and
// never mutated afterward.
type Lexicon struct {
	lexemes    []*Lexeme
	formsIndex map[string][]int
}

// NewLexicon indexes lexemes by their materialized forms.
func NewLexicon(lexemes []*Lexeme) *Lexicon {
	lx := &Lexicon{
		lexemes:    lexemes,
		formsIndex: make(map[string][]int),
	}
	for i, lex := range lexemes {
		for _, f := range lex.Forms_ {
			key := strings.ToLower(f)
			if !containsInt(lx.formsIndex[key], i) {
				lx.formsIndex[key] = append(lx.formsIndex[key], i)
			}
		}
	}
	return lx
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// Contains reports whether word, lowercased, names a materialized form
// of some Lexeme. Apostrophe variants are not normalized: a form stored
// with one apostrophe rune does not match a word spelled with another.
func (lx *Lexicon) Contains(word string) bool {
	_, ok := lx.formsIndex[strings.ToLower(word)]
	return ok
}

// WordEntries returns every Lexeme that materializes word as a form.
// Multiple lexemes may share a surface form, e.g. "bear" as noun and
// verb.
func (lx *Lexicon) WordEntries(word string) []*Lexeme {
	idxs := lx.formsIndex[strings.ToLower(word)]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]*Lexeme, len(idxs))
	for i, idx := range idxs {
		out[i] = lx.lexemes[idx]
	}
	return out
}

// Iter enumerates every Lexeme in construction order.
func (lx *Lexicon) Iter() iter.Seq[*Lexeme] {
	return func(yield func(*Lexeme) bool) {
		for _, lex := range lx.lexemes {
			if !yield(lex) {
				return
			}
		}
	}
}

// Forms lazily enumerates every distinct surface form across all
// lexemes, each yielded once in its first-seen spelling.
func (lx *Lexicon) Forms() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]bool)
		for _, lex := range lx.lexemes {
			for _, f := range lex.Forms_ {
				key := strings.ToLower(f)
				if seen[key] {
					continue
				}
				seen[key] = true
				if !yield(f) {
					return
				}
			}
		}
	}
}

// IntoSorted returns every Lexeme sorted by (lemma, class).
func (lx *Lexicon) IntoSorted() []*Lexeme {
	out := append([]*Lexeme(nil), lx.lexemes...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lemma_ != out[j].Lemma_ {
			return out[i].Lemma_ < out[j].Lemma_
		}
		return out[i].Class < out[j].Class
	})
	return out
}

// Len returns the number of indexed lexemes.
func (lx *Lexicon) Len() int { return len(lx.lexemes) }

// builtin lazily parses the embedded dictionary exactly once, safe
// under concurrent first access. A malformed embedded line is a build
// defect, not a runtime condition a caller can recover from, so
// construction panics rather than threading an error through every
// caller of Builtin.
var builtin = sync.OnceValue(func() *Lexicon {
	lexemes, err := Parse(bytes.NewReader(builtinCSV))
	if err != nil {
		panic(err)
	}
	return NewLexicon(lexemes)
})

// Builtin returns the process-wide singleton Lexicon parsed from the
// embedded dictionary.
func Builtin() *Lexicon {
	return builtin()
}
