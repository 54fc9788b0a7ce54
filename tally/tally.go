// Package tally builds a case-folded word-frequency table from a token
// stream, with post-passes that split unknown hyphenated compounds and
// unknown contractions back into their known components and reclassify
// anything a dictionary later recognizes.
package tally

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/go-prose/wordtally/asciifold"
	"github.com/go-prose/wordtally/classifier"
	"github.com/go-prose/wordtally/contractions"
	"github.com/go-prose/wordtally/tokenizer"
)

// WordEntry is one tallied surface form.
type WordEntry struct {
	Seen uint64
	Word string
	Kind classifier.Kind
}

// String formats an entry as "<seen> <kind-code> <word>", escaping any
// control character in word.
func (e WordEntry) String() string {
	return fmt.Sprintf("%5d %s %s", e.Seen, e.Kind.Code(), escapeControl(e.Word))
}

func escapeControl(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WordTally is a case-folded frequency table keyed by each word's
// case-folded key.
type WordTally struct {
	entries map[string]*WordEntry
}

// New returns an empty WordTally.
func New() *WordTally {
	return &WordTally{entries: make(map[string]*WordEntry)}
}

// ParseText tokenizes r against dict and tallies every non-Boundary
// chunk. dict may be nil.
func (wt *WordTally) ParseText(r io.Reader, dict tokenizer.Dict) error {
	tk := tokenizer.New(r, dict)
	for tr := range tk.All() {
		if tr.Chunk == tokenizer.Boundary {
			continue
		}
		wt.tallyWordN(tr.Text, tr.Kind, 1)
	}
	return tk.Err()
}

// tallyWordN folds word to its key; on a hit, bumps Seen by n and, if
// word has strictly fewer uppercase characters than the stored variant,
// replaces the stored word/kind (fewest-uppercase-wins); on a miss,
// inserts a new entry with Seen = n.
func (wt *WordTally) tallyWordN(word string, kind classifier.Kind, n uint64) {
	key := asciifold.FoldKey(word)
	if e, ok := wt.entries[key]; ok {
		if countUpper(word) < countUpper(e.Word) {
			e.Word = word
			e.Kind = kind
		}
		e.Seen += n
		return
	}
	wt.entries[key] = &WordEntry{Seen: n, Word: word, Kind: kind}
}

func countUpper(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			n++
		}
	}
	return n
}

func kindFor(dict tokenizer.Dict, word string) classifier.Kind {
	if dict != nil && dict.Contains(word) {
		return classifier.Lexicon
	}
	return classifier.KindOf(word)
}

// SplitUnknownCompounds removes every entry whose surface is not in
// dict, contains "-", and whose every hyphen-separated piece is a
// nonempty word, replacing it with a re-tally of each piece carrying
// the removed entry's Seen count. Idempotent: a piece never itself
// contains "-" after one pass.
func (wt *WordTally) SplitUnknownCompounds(dict tokenizer.Dict) {
	type removal struct {
		key    string
		pieces []string
		seen   uint64
	}
	var removals []removal
	for key, e := range wt.entries {
		if dict != nil && dict.Contains(e.Word) {
			continue
		}
		if !strings.Contains(e.Word, "-") {
			continue
		}
		pieces := strings.Split(e.Word, "-")
		if !allNonEmpty(pieces) {
			continue
		}
		removals = append(removals, removal{key: key, pieces: pieces, seen: e.Seen})
	}
	for _, rm := range removals {
		delete(wt.entries, rm.key)
		for _, p := range rm.pieces {
			wt.tallyWordN(p, kindFor(dict, p), rm.seen)
		}
	}
}

func allNonEmpty(ss []string) bool {
	for _, s := range ss {
		if s == "" {
			return false
		}
	}
	return true
}

// SplitUnknownContractions removes every entry whose surface is not in
// dict and contains an apostrophe, replacing it with a re-tally of each
// token contractions.Split produces, carrying the removed entry's Seen
// count. A word with no matching contraction rule is left untouched
// (contractions.Split returns it unchanged -- a pointless
// delete-and-reinsert), keeping the pass idempotent: every produced
// piece is already a token Split leaves unchanged, so a second run
// skips it.
func (wt *WordTally) SplitUnknownContractions(dict tokenizer.Dict) {
	type removal struct {
		key    string
		pieces []string
		seen   uint64
	}
	var removals []removal
	for key, e := range wt.entries {
		if dict != nil && dict.Contains(e.Word) {
			continue
		}
		if !strings.ContainsFunc(e.Word, asciifold.IsApostrophe) {
			continue
		}
		pieces := contractions.Split(e.Word)
		if len(pieces) == 1 && pieces[0] == e.Word {
			continue
		}
		removals = append(removals, removal{key: key, pieces: pieces, seen: e.Seen})
	}
	for _, rm := range removals {
		delete(wt.entries, rm.key)
		for _, p := range rm.pieces {
			wt.tallyWordN(p, kindFor(dict, p), rm.seen)
		}
	}
}

// CheckDict reclassifies, in place, every entry whose surface is in
// dict as classifier.Lexicon.
func (wt *WordTally) CheckDict(dict tokenizer.Dict) {
	if dict == nil {
		return
	}
	for _, e := range wt.entries {
		if dict.Contains(e.Word) {
			e.Kind = classifier.Lexicon
		}
	}
}

// CountKind counts entries currently classified as k.
func (wt *WordTally) CountKind(k classifier.Kind) int {
	n := 0
	for _, e := range wt.entries {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// IntoEntries returns every entry sorted ascending by (Seen, Word,
// Kind).
func (wt *WordTally) IntoEntries() []WordEntry {
	out := make([]WordEntry, 0, len(wt.entries))
	for _, e := range wt.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Seen != out[j].Seen {
			return out[i].Seen < out[j].Seen
		}
		if out[i].Word != out[j].Word {
			return out[i].Word < out[j].Word
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Len returns the number of distinct entries currently tallied.
func (wt *WordTally) Len() int { return len(wt.entries) }
