// Package contractions splits an English contraction into its component
// words: "don't" -> ["do", "not"], "I'm" -> ["I", "am"]. Split drives a
// work stack against an ordered rule table -- most specific whole words
// first, then trailing suffixes, then bare-apostrophe fallbacks -- so a
// multi-step contraction like "wouldn't've" re-expands every piece it
// produces, not just the original word.
package contractions

import (
	"strings"

	"github.com/go-prose/wordtally/asciifold"
)

type ruleKind int

const (
	// full matches and replaces the entire word with two literal words.
	full ruleKind = iota
	// prefix matches a leading substring; the remainder is the base.
	prefix
	// suffix matches a trailing substring; the remainder is the base.
	suffix
)

type rule struct {
	kind ruleKind
	key  string
	// left, right hold the two literal output words for a full rule.
	left, right string
	// expansion holds the companion word emitted alongside the base for
	// a prefix or suffix rule; empty means the matched pattern is
	// stripped and nothing is emitted in its place.
	expansion string
}

// rules is evaluated top to bottom; the first matching entry wins.
var rules = []rule{
	{kind: full, key: "ain't", left: "am", right: "not"},
	{kind: full, key: "can't", left: "can", right: "not"},
	{kind: full, key: "shan't", left: "shall", right: "not"},
	{kind: full, key: "won't", left: "will", right: "not"},
	{kind: full, key: "i'm", left: "I", right: "am"},
	{kind: full, key: "he's", left: "he", right: "is"},
	{kind: full, key: "it's", left: "it", right: "is"},
	{kind: full, key: "she's", left: "she", right: "is"},
	{kind: full, key: "that's", left: "that", right: "is"},
	{kind: full, key: "there's", left: "there", right: "is"},
	{kind: full, key: "what's", left: "what", right: "is"},
	{kind: full, key: "who's", left: "who", right: "is"},
	{kind: full, key: "'tis", left: "it", right: "is"},
	{kind: full, key: "'twas", left: "it", right: "was"},
	{kind: full, key: "'twill", left: "it", right: "will"},
	{kind: suffix, key: "n't", expansion: "not"},
	{kind: suffix, key: "'ve", expansion: "have"},
	{kind: suffix, key: "'ll", expansion: "will"},
	{kind: suffix, key: "'d", expansion: "would"},
	{kind: suffix, key: "'re", expansion: "are"},
	// possessive: the trailing "'s" is dropped, nothing emitted.
	{kind: suffix, key: "'s"},
	// bare trailing apostrophe: plural possessive ("dogs'"), also dropped.
	{kind: suffix, key: "'"},
	// nested quote: a leading apostrophe re-emitted as its own token.
	{kind: prefix, key: "'", expansion: "'"},
}

// Split breaks word into its contraction components by driving a work
// stack over the rule table: push the input, repeatedly pop and try the
// table top to bottom, push both outputs of a match for further
// splitting, and emit a token with no match as final output. A word with
// no matching rule at all comes back as a single-element slice
// unchanged.
func Split(word string) []string {
	stack := []string{word}
	var out []string
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parts, ok := tryExpand(w)
		if !ok {
			out = append(out, w)
			continue
		}
		// Push in reverse so the first part pops (and fully resolves)
		// before the second, keeping final output in declared order.
		for i := len(parts) - 1; i >= 0; i-- {
			stack = append(stack, parts[i])
		}
	}
	return out
}

// tryExpand applies the first matching rule to word, returning its one
// or two output pieces.
func tryExpand(word string) ([]string, bool) {
	folded := asciifold.FoldKey(word)
	wordRunes := []rune(word)
	for _, r := range rules {
		keyRunes := []rune(r.key)
		switch r.kind {
		case full:
			if folded == r.key {
				return []string{matchCase(word, r.left), r.right}, true
			}
		case prefix:
			if len(wordRunes) > len(keyRunes) && strings.HasPrefix(folded, r.key) {
				base := string(wordRunes[len(keyRunes):])
				return withExpansion(base, r.expansion), true
			}
		case suffix:
			if len(wordRunes) > len(keyRunes) && strings.HasSuffix(folded, r.key) {
				base := string(wordRunes[:len(wordRunes)-len(keyRunes)])
				return withExpansion(base, r.expansion), true
			}
		}
	}
	return nil, false
}

// withExpansion pairs base with its companion word, dropping the
// companion when expansion is empty.
func withExpansion(base, expansion string) []string {
	if expansion == "" {
		return []string{base}
	}
	return []string{base, expansion}
}

// matchCase returns replacement unchanged unless the original contraction
// fragment started with an uppercase ASCII letter, in which case the
// first letter of replacement is capitalized to match. "I" is always
// returned as is.
func matchCase(original, replacement string) string {
	r := []rune(original)
	if len(r) == 0 || replacement == "I" {
		return replacement
	}
	if r[0] >= 'A' && r[0] <= 'Z' {
		rr := []rune(replacement)
		if len(rr) > 0 {
			rr[0] = []rune(strings.ToUpper(string(rr[0])))[0]
		}
		return string(rr)
	}
	return replacement
}
