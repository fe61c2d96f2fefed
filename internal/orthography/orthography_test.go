package orthography

import (
	"strings"
	"testing"
)

func TestAddSSuffix(t *testing.T) {
	tbl := &Table{}
	cases := map[string]string{
		"cat":   "cats",
		"box":   "boxes",
		"fizz":  "fizzes",
		"fly":   "flies",
		"play":  "plays", // y preceded by vowel, not consonant
		"buzz":  "buzzes",
	}
	for word, want := range cases {
		if got := tbl.AddS(word); got != want {
			t.Errorf("AddS(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestAddEdSuffix(t *testing.T) {
	tbl := &Table{}
	cases := map[string]string{
		"hope": "hoped",  // drop silent e
		"stop": "stopped", // CVC doubling
		"play": "played",  // y after vowel unchanged
		"cry":  "cried",   // y after consonant becomes i
		"show": "showed",  // w excluded from doubling
		"need": "needed",
	}
	for word, want := range cases {
		if got := tbl.AddEd(word); got != want {
			t.Errorf("AddEd(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestAddIngKeepsTrailingY(t *testing.T) {
	tbl := &Table{}
	if got := tbl.AddIng("cry"); got != "crying" {
		t.Errorf("AddIng(cry) = %q, want crying", got)
	}
	if got := tbl.AddIng("stop"); got != "stopping" {
		t.Errorf("AddIng(stop) = %q, want stopping", got)
	}
}

func TestAddErAddEst(t *testing.T) {
	tbl := &Table{}
	if got := tbl.AddEr("big"); got != "bigger" {
		t.Errorf("AddEr(big) = %q, want bigger", got)
	}
	if got := tbl.AddEst("big"); got != "biggest" {
		t.Errorf("AddEst(big) = %q, want biggest", got)
	}
}

func TestTableOverridesRule(t *testing.T) {
	tbl := &Table{Past: map[string]string{"go": "went"}}
	if got := tbl.AddEd("go"); got != "went" {
		t.Errorf("AddEd(go) with override = %q, want went", got)
	}
}

func TestLoadTableParsesTags(t *testing.T) {
	src := `fez N: fezzes
big A: bigger | biggest
picnic V: picnicked | ~ | picnicking | picnics
malformed line with no colon
bad N
`
	tbl, errs := LoadTable(strings.NewReader(src))
	if len(errs) != 2 {
		t.Fatalf("expected 2 malformed-line errors, got %d: %v", len(errs), errs)
	}
	if tbl.Plural["fez"] != "fezzes" {
		t.Errorf("Plural[fez] = %q, want fezzes", tbl.Plural["fez"])
	}
	if v, ok := tbl.Comparative["big"]; ok {
		t.Errorf("Comparative[big] = %q, should not be registered (rule already agrees)", v)
	}
	if v, ok := tbl.Superlative["big"]; ok {
		t.Errorf("Superlative[big] = %q, should not be registered (rule already agrees)", v)
	}
	if tbl.Past["picnic"] != "picnicked" {
		t.Errorf("Past[picnic] = %q, want picnicked", tbl.Past["picnic"])
	}
	if tbl.PresentPart["picnic"] != "picnicking" {
		t.Errorf("PresentPart[picnic] = %q, want picnicking", tbl.PresentPart["picnic"])
	}
	if _, ok := tbl.Plural["picnic"]; ok {
		t.Errorf("Plural[picnic] should not be registered (rule already agrees)")
	}
}
