// Package lexicon: line parsing, variant-spelling enumeration, and form
// materialization. Grounded on the teacher's loader.go line-scanning
// style (bufio.Scanner, colon/comma splitting) adapted to the
// lemma:CLASS[.ATTRS][,form...] grammar.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-prose/wordtally/asciifold"
	"github.com/go-prose/wordtally/morphology"
)

// ErrMalformedLine reports a line that failed to parse while building a
// Lexicon. Construction of the builtin lexicon treats this as fatal.
type ErrMalformedLine struct {
	Line int
	Text string
}

func (e ErrMalformedLine) Error() string {
	return fmt.Sprintf("lexicon: malformed line %d: %q", e.Line, e.Text)
}

// parseLine decodes one CSV-grammar line into a Lexeme, with every
// variant spelling's regular and irregular forms materialized.
//
// Grammar: lemma:CLASS[.ATTRS][,form1[,form2...]]
func parseLine(line string) (*Lexeme, error) {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return nil, fmt.Errorf("missing lemma/class separator")
	}
	lemma := line[:colon]
	rest := line[colon+1:]

	classAndAttrs := rest
	var rawForms []string
	if comma := strings.IndexByte(rest, ','); comma >= 0 {
		classAndAttrs = rest[:comma]
		rawForms = strings.Split(rest[comma+1:], ",")
	}

	classCode := classAndAttrs
	var attrs AttrSet
	if dot := strings.IndexByte(classAndAttrs, '.'); dot >= 0 {
		classCode = classAndAttrs[:dot]
		attrs = ParseAttrs(classAndAttrs[dot+1:])
	}

	wc, ok := ParseWordClass(classCode)
	if !ok {
		return nil, fmt.Errorf("unrecognized word class %q", classCode)
	}

	lex := &Lexeme{
		Lemma_:         lemma,
		Class:          wc,
		Attrs:          attrs,
		IrregularForms: rawForms,
	}
	lex.Forms_ = materializeForms(lex)
	return lex, nil
}

// variants enumerates every variant spelling of lemma: the lemma itself,
// plus one branch per character carrying a non-identity ASCII
// transliteration (accented letters), with ae/oe ligatures additionally
// allowed an "e" alternate expansion, and -- if AlternateZ is set --
// every resulting string duplicated with z replaced by s.
func variants(lemma string, attrs AttrSet) []string {
	forms := []string{lemma}
	lemmaRunes := []rune(lemma)
	for i, r := range lemmaRunes {
		alts := asciifold.Transliterations(r)
		if len(alts) == 0 {
			continue
		}
		var next []string
		for _, base := range forms {
			baseRunes := []rune(base)
			for _, alt := range alts {
				branched := string(baseRunes[:i]) + alt + string(baseRunes[i+1:])
				if !contains(next, branched) {
					next = append(next, branched)
				}
			}
		}
		forms = append(forms, next...)
	}

	if attrs.Has(AlternateZ) {
		var withS []string
		for _, f := range forms {
			if strings.ContainsRune(f, 'z') || strings.ContainsRune(f, 'Z') {
				withS = append(withS, strings.NewReplacer("z", "s", "Z", "S").Replace(f))
			}
		}
		forms = append(forms, withS...)
	}

	return dedupe(forms)
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func dedupe(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if !contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// materializeForms builds lex.Forms_: the lemma first, then every
// variant spelling's regular inflections (per Class) or, when
// IrregularForms is nonempty, each irregular token decoded against
// every variant.
func materializeForms(lex *Lexeme) []string {
	vs := variants(lex.Lemma_, lex.Attrs)
	out := []string{lex.Lemma_}
	for _, v := range vs {
		if v != lex.Lemma_ && !contains(out, v) {
			out = append(out, v)
		}
	}

	if len(lex.IrregularForms) > 0 {
		for _, v := range vs {
			for _, tok := range lex.IrregularForms {
				form := morphology.DecodeIrregular(v, tok)
				if !contains(out, form) {
					out = append(out, form)
				}
			}
		}
		return out
	}

	for _, v := range vs {
		for _, form := range regularInflections(lex.Class, lex.Attrs, v) {
			if form != "" && !contains(out, form) {
				out = append(out, form)
			}
		}
	}
	return out
}

// regularInflections returns the class-appropriate set of inflected
// forms for one variant spelling, honoring SingulareTantum/PluraleTantum
// (no plural materialized either way).
func regularInflections(wc WordClass, attrs AttrSet, v string) []string {
	switch wc {
	case Noun:
		if attrs.Has(SingulareTantum) || attrs.Has(PluraleTantum) {
			return nil
		}
		return []string{morphology.NounPlural(v)}
	case Verb:
		return []string{
			morphology.VerbPresent(v),
			morphology.VerbPresentParticiple(v),
			morphology.VerbPast(v),
		}
	case Adjective:
		return []string{
			morphology.AdjectiveComparative(v),
			morphology.AdjectiveSuperlative(v),
		}
	default:
		return nil
	}
}

// Parse reads CSV-grammar lemma lines from r, one per line, and returns
// the resulting Lexemes. The first malformed line aborts with
// ErrMalformedLine.
func Parse(r io.Reader) ([]*Lexeme, error) {
	var lexemes []*Lexeme
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		lex, err := parseLine(line)
		if err != nil {
			return nil, ErrMalformedLine{Line: lineNo, Text: line}
		}
		lexemes = append(lexemes, lex)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lexemes, nil
}
