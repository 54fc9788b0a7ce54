// Package engine bundles the lexicon, tokenizer, and tally packages
// into the single façade an outer collaborator (a CLI, an HTTP
// handler, a browser-based highlighter) calls against, mirroring the
// shape the teacher's Lemmatizer provides over its own
// loader/lemmatize/flexion internals.
package engine

import (
	"io"
	"iter"

	"github.com/pkg/errors"

	"github.com/go-prose/wordtally/lexicon"
	"github.com/go-prose/wordtally/tally"
	"github.com/go-prose/wordtally/tokenizer"
)

// Engine bundles a *lexicon.Lexicon with the operations that consume
// it.
type Engine struct {
	dict *lexicon.Lexicon
}

// New returns an Engine backed by the embedded builtin lexicon.
// Construction cannot fail: the builtin CSV is parsed once, on first
// use, by lexicon.Builtin, which panics on a malformed line rather
// than returning an error here.
func New() *Engine {
	return &Engine{dict: lexicon.Builtin()}
}

// NewFromReader builds an Engine from an alternate or supplementary
// lemma file (e.g. a domain glossary) instead of the embedded builtin.
func NewFromReader(r io.Reader) (*Engine, error) {
	lexemes, err := lexicon.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "engine: load lexicon")
	}
	return &Engine{dict: lexicon.NewLexicon(lexemes)}, nil
}

// Dict returns the lexicon backing this Engine.
func (e *Engine) Dict() *lexicon.Lexicon { return e.dict }

// Tokenize returns a lazy sequence of (chunk, text, kind) triples over
// r, classified against the Engine's lexicon.
func (e *Engine) Tokenize(r io.Reader) iter.Seq[tokenizer.Triple] {
	tk := tokenizer.New(r, e.dict)
	return tk.All()
}

// Tally builds a word-frequency table from r, running every post-pass
// (compound split, contraction split, dictionary check) before
// returning.
func (e *Engine) Tally(r io.Reader) (*tally.WordTally, error) {
	wt := tally.New()
	if err := wt.ParseText(r, e.dict); err != nil {
		return nil, err
	}
	wt.SplitUnknownCompounds(e.dict)
	wt.SplitUnknownContractions(e.dict)
	wt.CheckDict(e.dict)
	return wt, nil
}

// Lookup returns every Lexeme whose forms include word.
func (e *Engine) Lookup(word string) []*lexicon.Lexeme {
	return e.dict.WordEntries(word)
}
