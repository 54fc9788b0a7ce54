package tokenizer

import (
	"strings"
	"testing"

	"github.com/go-prose/wordtally/classifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDict map[string]bool

func (d fakeDict) Contains(word string) bool {
	return d[strings.ToLower(word)]
}

func collect(t *testing.T, tk *Tokenizer) []Triple {
	t.Helper()
	var out []Triple
	for tr := range tk.All() {
		out = append(out, tr)
	}
	require.NoError(t, tk.Err())
	return out
}

func TestBoundaryAndTextSplit(t *testing.T) {
	tk := New(strings.NewReader("hello world"), nil)
	triples := collect(t, tk)
	require.Len(t, triples, 3)
	assert.Equal(t, Triple{Chunk: Text, Text: "hello", Kind: classifier.Unknown}, triples[0])
	assert.Equal(t, Boundary, triples[1].Chunk)
	assert.Equal(t, " ", triples[1].Text)
	assert.Equal(t, Triple{Chunk: Text, Text: "world", Kind: classifier.Unknown}, triples[2])
}

func TestSentenceFinalDotSplits(t *testing.T) {
	tk := New(strings.NewReader("cat."), fakeDict{"cat": true})
	triples := collect(t, tk)
	require.Len(t, triples, 2)
	assert.Equal(t, Triple{Chunk: Text, Text: "cat", Kind: classifier.Lexicon}, triples[0])
	assert.Equal(t, Triple{Chunk: Symbol, Text: ".", Kind: classifier.Symbol}, triples[1])
}

func TestAcronymDotsDoNotSplit(t *testing.T) {
	// Concrete scenario: "U.S.A. went to NATO" -- U.S.A. emits as a single
	// Acronym token, NATO as a single Acronym token.
	tk := New(strings.NewReader("U.S.A. went to NATO"), fakeDict{"went": true, "to": true})
	triples := collect(t, tk)

	var words []Triple
	for _, tr := range triples {
		if tr.Chunk == Text {
			words = append(words, tr)
		}
	}
	require.Len(t, words, 4)
	assert.Equal(t, "U.S.A.", words[0].Text)
	assert.Equal(t, classifier.Acronym, words[0].Kind)
	assert.Equal(t, "went", words[1].Text)
	assert.Equal(t, classifier.Lexicon, words[1].Kind)
	assert.Equal(t, "NATO", words[3].Text)
	assert.Equal(t, classifier.Acronym, words[3].Kind)
}

func TestContractionAndCompoundSplitting(t *testing.T) {
	// Concrete scenario: "it's a test-case." tokenized against a lexicon
	// containing it, is, a, test, case -> words: it, is, a, test, -, case, .;
	// each in-lexicon word has kind Lexicon; - and . have kind Symbol.
	// (lowercased here to sidestep contraction case-matching, which
	// capitalizes the split's first word to match a capitalized original --
	// orthogonal to the word-sequence/kind assertions this test makes.)
	dict := fakeDict{"it": true, "is": true, "a": true, "test": true, "case": true}
	tk := New(strings.NewReader("it's a test-case."), dict)
	triples := collect(t, tk)

	var got []string
	for _, tr := range triples {
		if tr.Chunk == Boundary {
			continue
		}
		got = append(got, tr.Text)
	}
	assert.Equal(t, []string{"it", "is", "a", "test", "-", "case", "."}, got)

	for _, tr := range triples {
		switch tr.Text {
		case "it", "is", "a", "test", "case":
			assert.Equal(t, classifier.Lexicon, tr.Kind, tr.Text)
		case "-", ".":
			assert.Equal(t, classifier.Symbol, tr.Kind, tr.Text)
		}
	}
}

func TestWordKindClassification(t *testing.T) {
	// Concrete scenario: "3rd, IV, 42, naïve" -> Ordinal, Roman, Number,
	// Foreign.
	tk := New(strings.NewReader("3rd, IV, 42, naïve"), nil)
	triples := collect(t, tk)

	var words []Triple
	for _, tr := range triples {
		if tr.Chunk == Text {
			words = append(words, tr)
		}
	}
	require.Len(t, words, 4)
	assert.Equal(t, classifier.Ordinal, words[0].Kind)
	assert.Equal(t, classifier.Roman, words[1].Kind)
	assert.Equal(t, classifier.Number, words[2].Kind)
	assert.Equal(t, classifier.Foreign, words[3].Kind)
}

func TestUnknownCompoundNotSplitWhenInDict(t *testing.T) {
	dict := fakeDict{"well-known": true}
	tk := New(strings.NewReader("well-known"), dict)
	triples := collect(t, tk)
	require.Len(t, triples, 1)
	assert.Equal(t, Triple{Chunk: Text, Text: "well-known", Kind: classifier.Lexicon}, triples[0])
}

func TestInvalidUTF8(t *testing.T) {
	tk := New(strings.NewReader("ab\xff\xfecd"), nil)
	for range tk.All() {
	}
	assert.ErrorIs(t, tk.Err(), ErrInvalidUTF8)
}

func TestApostropheCanonicalization(t *testing.T) {
	// A straight ASCII apostrophe and a right single quotation mark both
	// canonicalize the same way before contraction splitting.
	dict := fakeDict{"do": true, "not": true}
	tk := New(strings.NewReader("don\u2019t"), dict)
	triples := collect(t, tk)
	var words []string
	for _, tr := range triples {
		if tr.Chunk == Text {
			words = append(words, tr.Text)
		}
	}
	assert.Equal(t, []string{"do", "not"}, words)
}
