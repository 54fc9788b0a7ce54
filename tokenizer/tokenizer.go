package tokenizer

import (
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/go-prose/wordtally/asciifold"
	"github.com/go-prose/wordtally/classifier"
	"github.com/go-prose/wordtally/contractions"
)

// Tokenizer holds the running accumulation state for one input stream.
// It is not safe for concurrent use; a single goroutine drives it via
// All.
type Tokenizer struct {
	cs   *charSplitter
	dict Dict

	text  []rune
	queue []Triple

	err  error
	done bool
}

// New returns a Tokenizer reading from r. dict may be nil, in which
// case every word is classified with classifier.KindOf and no compound
// or contraction is ever treated as already-known.
func New(r io.Reader, dict Dict) *Tokenizer {
	return &Tokenizer{cs: newCharSplitter(r), dict: dict}
}

// Err returns the error, if any, that halted iteration before the input
// was exhausted. Call it only after the sequence returned by All has
// been fully drained.
func (tk *Tokenizer) Err() error {
	if tk.err == io.EOF {
		return nil
	}
	return tk.err
}

// All returns a lazy pull iterator over the token stream. Each pull
// reads exactly enough bytes to produce one queued triple, or drains
// silently at end of input or at the first error (inspect Err after the
// sequence ends to tell the two apart).
func (tk *Tokenizer) All() iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for {
			t, ok := tk.next()
			if !ok {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

func (tk *Tokenizer) next() (Triple, bool) {
	for len(tk.queue) == 0 {
		if tk.done {
			return Triple{}, false
		}
		r, err := tk.cs.next()
		if err != nil {
			tk.pushText()
			tk.done = true
			tk.err = err
			if len(tk.queue) == 0 {
				return Triple{}, false
			}
			break
		}
		tk.consume(r)
	}
	t := tk.queue[0]
	tk.queue = tk.queue[1:]
	return t, true
}

func (tk *Tokenizer) consume(r rune) {
	switch {
	case asciifold.IsBoundary(r):
		tk.pushText()
		tk.queue = append(tk.queue, Triple{Chunk: Boundary, Text: string(r), Kind: classifier.Symbol})
	case isTextRune(r):
		if canon, ok := asciifold.CanonicalChar(r); ok {
			tk.text = append(tk.text, []rune(canon)...)
		} else {
			tk.text = append(tk.text, r)
		}
	case r == '-':
		if len(tk.text) > 0 && tk.text[len(tk.text)-1] != '-' {
			tk.text = append(tk.text, r)
			return
		}
		tk.pushText()
		tk.queue = append(tk.queue, Triple{Chunk: Symbol, Text: "-", Kind: classifier.Symbol})
	case r == '.':
		if isDotAppendable(tk.text) {
			tk.text = append(tk.text, r)
			return
		}
		tk.pushText()
		tk.queue = append(tk.queue, Triple{Chunk: Symbol, Text: ".", Kind: classifier.Symbol})
	default:
		tk.pushText()
		tk.queue = append(tk.queue, Triple{Chunk: Symbol, Text: string(r), Kind: classifier.Symbol})
	}
}

func isTextRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || asciifold.IsApostrophe(r)
}

// isDotAppendable reports whether a trailing "." may extend text as
// acronym accumulation: every rune so far is an uppercase letter or a
// dot, and text does not already end in one.
func isDotAppendable(text []rune) bool {
	if len(text) == 0 {
		return false
	}
	if text[len(text)-1] == '.' {
		return false
	}
	for _, r := range text {
		if r != '.' && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// pushText flushes the pending text buffer. A sentence-final dot (text
// ends in ".", contains exactly one, and is longer than two characters)
// is split off as its own Symbol triple; otherwise text flushes as a
// single word, subject to compound splitting.
func (tk *Tokenizer) pushText() {
	if len(tk.text) == 0 {
		return
	}
	text := tk.text
	tk.text = nil

	dots := 0
	for _, r := range text {
		if r == '.' {
			dots++
		}
	}
	if text[len(text)-1] == '.' && dots == 1 && len(text) > 2 {
		tk.emitWord(string(text[:len(text)-1]))
		tk.queue = append(tk.queue, Triple{Chunk: Symbol, Text: ".", Kind: classifier.Symbol})
		return
	}
	tk.emitWord(string(text))
}

// emitWord applies compound splitting to a flushed text run and queues
// the resulting Text/Symbol triples.
func (tk *Tokenizer) emitWord(word string) {
	runes := []rune(word)
	if len(runes) <= 1 || tk.contains(word) || !containsHyphenOrApostrophe(word) {
		tk.queue = append(tk.queue, Triple{Chunk: Text, Text: word, Kind: tk.kindOf(word)})
		return
	}

	pieces := strings.Split(word, "-")
	for i, piece := range pieces {
		if i > 0 {
			tk.queue = append(tk.queue, Triple{Chunk: Symbol, Text: "-", Kind: classifier.Symbol})
		}
		if piece == "" {
			continue
		}
		if strings.ContainsFunc(piece, asciifold.IsApostrophe) && !tk.contains(piece) {
			for _, sub := range contractions.Split(piece) {
				tk.queue = append(tk.queue, Triple{Chunk: Text, Text: sub, Kind: tk.kindOf(sub)})
			}
			continue
		}
		tk.queue = append(tk.queue, Triple{Chunk: Text, Text: piece, Kind: tk.kindOf(piece)})
	}
}

func (tk *Tokenizer) contains(word string) bool {
	return tk.dict != nil && tk.dict.Contains(word)
}

func (tk *Tokenizer) kindOf(word string) classifier.Kind {
	if tk.contains(word) {
		return classifier.Lexicon
	}
	return classifier.KindOf(word)
}

func containsHyphenOrApostrophe(s string) bool {
	return strings.ContainsRune(s, '-') || strings.ContainsFunc(s, asciifold.IsApostrophe)
}
