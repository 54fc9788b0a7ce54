package lexicon

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) *Lexicon {
	t.Helper()
	lexemes, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return NewLexicon(lexemes)
}

func TestParseWordClass(t *testing.T) {
	cases := map[string]WordClass{
		"N": Noun, "V": Verb, "A": Adjective, "Av": Adverb,
		"P": Preposition, "Pn": Pronoun, "C": Conjunction, "D": Determiner, "I": Interjection,
	}
	for code, want := range cases {
		got, ok := ParseWordClass(code)
		if !ok || got != want {
			t.Errorf("ParseWordClass(%q) = %v, %v, want %v, true", code, got, ok, want)
		}
	}
	if _, ok := ParseWordClass("Zz"); ok {
		t.Errorf("ParseWordClass(Zz) should fail")
	}
}

func TestParseLineMalformed(t *testing.T) {
	cases := []string{
		"noclassseparator",
		"lemma:Zz",
		":V",
	}
	for _, line := range cases {
		if _, err := Parse(strings.NewReader(line)); err == nil {
			t.Errorf("Parse(%q) should have failed", line)
		}
	}
}

func TestParseLineMalformedReportsLine(t *testing.T) {
	src := "a:D\nb:Zz\n"
	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected error")
	}
	merr, ok := err.(ErrMalformedLine)
	if !ok {
		t.Fatalf("error type = %T, want ErrMalformedLine", err)
	}
	if merr.Line != 2 {
		t.Errorf("ErrMalformedLine.Line = %d, want 2", merr.Line)
	}
}

func TestTryConjugationsInLexicon(t *testing.T) {
	// Concrete scenario: "try:V" forms contain try, tries, trying, tried.
	lx := mustParse(t, "try:V")
	want := []string{"try", "tries", "trying", "tried"}
	entries := lx.WordEntries("try")
	if len(entries) != 1 {
		t.Fatalf("WordEntries(try) = %d entries, want 1", len(entries))
	}
	for _, w := range want {
		if !containsStr(entries[0].Forms(), w) {
			t.Errorf("try forms missing %q: %v", w, entries[0].Forms())
		}
	}
}

func TestAnalysisPluralInLexicon(t *testing.T) {
	// Concrete scenario: "analysis:N" forms contain analysis, analyses.
	lx := mustParse(t, "analysis:N")
	entries := lx.WordEntries("analysis")
	if len(entries) != 1 {
		t.Fatalf("WordEntries(analysis) = %d entries, want 1", len(entries))
	}
	if !containsStr(entries[0].Forms(), "analyses") {
		t.Errorf("analysis forms missing analyses: %v", entries[0].Forms())
	}
}

func TestCafeVariantSpellings(t *testing.T) {
	// Concrete scenario: "café:N" variant spellings [café, cafe]; both in forms.
	lx := mustParse(t, "café:N")
	if !lx.Contains("café") {
		t.Errorf("lexicon does not contain café")
	}
	if !lx.Contains("cafe") {
		t.Errorf("lexicon does not contain cafe")
	}
	entries := lx.WordEntries("café")
	if len(entries) != 1 {
		t.Fatalf("WordEntries(café) = %d entries, want 1", len(entries))
	}
	if !containsStr(entries[0].Forms(), "cafe") {
		t.Errorf("café forms missing cafe variant: %v", entries[0].Forms())
	}
}

func TestAlternateZVariant(t *testing.T) {
	lx := mustParse(t, "organize:V.z")
	if !lx.Contains("organize") || !lx.Contains("organise") {
		t.Errorf("AlternateZ should index both organize and organise")
	}
	if !lx.Contains("organizes") || !lx.Contains("organises") {
		t.Errorf("AlternateZ inflections should index both organizes and organises")
	}
}

func TestSingulareTantumNoPlural(t *testing.T) {
	lx := mustParse(t, "information:N.s")
	entries := lx.WordEntries("information")
	if len(entries) != 1 {
		t.Fatalf("WordEntries(information) = %d entries, want 1", len(entries))
	}
	if len(entries[0].Forms()) != 1 {
		t.Errorf("SingulareTantum lemma should have exactly one form, got %v", entries[0].Forms())
	}
}

func TestPluraleTantumNoSingularInflection(t *testing.T) {
	lx := mustParse(t, "scissors:N.p")
	entries := lx.WordEntries("scissors")
	if len(entries) != 1 || len(entries[0].Forms()) != 1 {
		t.Errorf("PluraleTantum lemma should have exactly one form, got %v", entries[0].Forms())
	}
}

func TestIrregularFormIndexed(t *testing.T) {
	lx := mustParse(t, "child:N,-dren")
	if !lx.Contains("children") {
		t.Errorf("lexicon should contain decoded irregular form children")
	}
	entries := lx.WordEntries("children")
	if len(entries) != 1 || entries[0].Lemma() != "child" {
		t.Errorf("WordEntries(children) should resolve back to lemma child, got %v", entries)
	}
}

func TestEveryFormRoundTripsThroughWordEntries(t *testing.T) {
	// Quantified invariant: for every form F in lexicon.Forms(), lexicon
	// Contains(F) and some Lexeme in WordEntries(F) has F in its own forms.
	lx := mustParse(t, "try:V\nanalysis:N\ncafé:N\nchild:N,-dren\norganize:V.z")
	for f := range lx.Forms() {
		if !lx.Contains(f) {
			t.Errorf("Contains(%q) = false, want true", f)
			continue
		}
		found := false
		for _, lex := range lx.WordEntries(f) {
			if containsStrFold(lex.Forms(), f) {
				found = true
			}
		}
		if !found {
			t.Errorf("no WordEntries(%q) lexeme has %q in its own forms", f, f)
		}
	}
}

func TestSharedFormMultipleLexemes(t *testing.T) {
	lx := mustParse(t, "hit:V.t\nhit:N")
	entries := lx.WordEntries("hit")
	if len(entries) != 2 {
		t.Errorf("WordEntries(hit) = %d entries, want 2", len(entries))
	}
}

func TestIntoSortedOrder(t *testing.T) {
	lx := mustParse(t, "dog:N\ncat:N\nbig:A")
	sorted := lx.IntoSorted()
	if len(sorted) != 3 {
		t.Fatalf("IntoSorted length = %d, want 3", len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Lemma() > sorted[i].Lemma() {
			t.Errorf("IntoSorted not ascending at %d: %q > %q", i, sorted[i-1].Lemma(), sorted[i].Lemma())
		}
	}
}

func TestBuiltinLoadsWithoutPanicking(t *testing.T) {
	lx := Builtin()
	if lx.Len() == 0 {
		t.Fatalf("Builtin() returned empty lexicon")
	}
	if !lx.Contains("try") {
		t.Errorf("builtin lexicon should contain try")
	}
	same := Builtin()
	if lx != same {
		t.Errorf("Builtin() should return the same singleton instance")
	}
}

func containsStr(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func containsStrFold(ss []string, s string) bool {
	for _, x := range ss {
		if strings.EqualFold(x, s) {
			return true
		}
	}
	return false
}
