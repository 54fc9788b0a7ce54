// Package tokenizer consumes a byte stream, decodes UTF-8, and produces
// a lazy sequence of (chunk, text, kind) triples: text runs, standalone
// symbols, and boundary characters, with compound-hyphen and acronym-dot
// accumulation and a contraction-aware compound splitter at emit time.
package tokenizer

import "github.com/go-prose/wordtally/classifier"

// Chunk categorizes an emitted triple's origin.
type Chunk int

const (
	Text Chunk = iota
	Symbol
	Boundary
)

var chunkNames = [...]string{Text: "text", Symbol: "symbol", Boundary: "boundary"}

func (c Chunk) String() string {
	if int(c) < 0 || int(c) >= len(chunkNames) {
		return "text"
	}
	return chunkNames[c]
}

// Triple is one emitted (chunk, text, word-kind) unit.
type Triple struct {
	Chunk Chunk
	Text  string
	Kind  classifier.Kind
}

// Dict is the membership test the tokenizer consults: to decide whether
// a run is already a known compound or contraction, and to classify an
// emitted word as classifier.Lexicon ahead of the generic classifier.
type Dict interface {
	Contains(word string) bool
}
