package classifier

import "testing"

func TestKindOfOrdering(t *testing.T) {
	cases := []struct {
		word string
		want Kind
	}{
		{"caf\u00E9", Foreign},
		{"caf\u00E9123", Foreign},
		{"21st", Ordinal},
		{"3RD", Ordinal},
		{"xiv", Roman},
		{"MCMXCIX", Roman},
		{"42", Number},
		{"-17", Number},
		{"3.14", Number},
		{"NASA", Acronym},
		{"U.S.A.", Acronym},
		{"London", Proper},
		{"don\u2019t", Unknown},
		{"...", Acronym},
		{"--", Symbol},
		{"xyz123", Unknown},
		{"hello", Unknown},
	}
	for _, c := range cases {
		if got := KindOf(c.word); got != c.want {
			t.Errorf("KindOf(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestKindCode(t *testing.T) {
	if Lexicon.Code() != "lexicon" {
		t.Errorf("Lexicon.Code() = %q, want lexicon", Lexicon.Code())
	}
	if Unknown.Code() != "unknown" {
		t.Errorf("Unknown.Code() = %q, want unknown", Unknown.Code())
	}
}

func TestAllOrderMatchesKindOf(t *testing.T) {
	all := All()
	if len(all) != 9 {
		t.Fatalf("All() returned %d kinds, want 9", len(all))
	}
	if all[0] != Lexicon {
		t.Errorf("All()[0] = %v, want Lexicon", all[0])
	}
}
