package formatter

import (
	"fmt"
	"reflect"
	"testing"

	"stenoengine/internal/action"
	"stenoengine/internal/translator"
)

// instruction mirrors the reference test harness's capture-output tuple:
// a one-letter tag plus its payload.
type instruction struct {
	tag string
	arg string
}

type captureSink struct {
	instructions []instruction
}

func (c *captureSink) SendBackspaces(n int) {
	c.instructions = append(c.instructions, instruction{"b", fmt.Sprintf("%d", n)})
}
func (c *captureSink) SendString(s string) {
	c.instructions = append(c.instructions, instruction{"s", s})
}
func (c *captureSink) SendKeyCombination(combo string) {
	c.instructions = append(c.instructions, instruction{"c", combo})
}
func (c *captureSink) SendEngineCommand(cmd string) {
	c.instructions = append(c.instructions, instruction{"e", cmd})
}

func tr(rtfcre []string, english string, formatting []action.Action) *translator.Translation {
	t := &translator.Translation{RTFCRE: rtfcre, Formatting: formatting}
	if english != "" {
		t.English = &english
	}
	return t
}

func TestFormatterUndoesPureTextAction(t *testing.T) {
	out := &captureSink{}
	f := New()
	f.SetSink(out)

	one := tr(nil, "", []action.Action{{Text: "hello"}})
	f.Format([]*translator.Translation{one}, nil, nil)

	want := []instruction{{"b", "5"}}
	if !reflect.DeepEqual(out.instructions, want) {
		t.Fatalf("instructions = %v, want %v", out.instructions, want)
	}
}

func TestFormatterRendersTranslationAndRecordsFormatting(t *testing.T) {
	out := &captureSink{}
	f := New()
	f.SetSink(out)

	one := tr([]string{"S"}, "hello", nil)
	prev := tr([]string{"T"}, "a", []action.Action{{Text: "f"}})
	f.Format(nil, []*translator.Translation{one}, prev)

	want := []instruction{{"s", " hello"}}
	if !reflect.DeepEqual(out.instructions, want) {
		t.Fatalf("instructions = %v, want %v", out.instructions, want)
	}
	wantFormatting := []action.Action{{Text: " hello", Word: "hello"}}
	if !reflect.DeepEqual(one.Formatting, wantFormatting) {
		t.Fatalf("formatting = %+v, want %+v", one.Formatting, wantFormatting)
	}
}

func TestFormatterRawStrokeWithNoTranslation(t *testing.T) {
	out := &captureSink{}
	f := New()
	f.SetSink(out)

	one := tr([]string{"ST-T"}, "", nil)
	f.Format(nil, []*translator.Translation{one}, nil)

	want := []instruction{{"s", " ST-T"}}
	if !reflect.DeepEqual(out.instructions, want) {
		t.Fatalf("instructions = %v, want %v", out.instructions, want)
	}
	wantFormatting := []action.Action{{Text: " ST-T"}}
	if !reflect.DeepEqual(one.Formatting, wantFormatting) {
		t.Fatalf("formatting = %+v, want %+v", one.Formatting, wantFormatting)
	}
}

func TestFormatterDiffsOnlyTheChangedSuffix(t *testing.T) {
	out := &captureSink{}
	f := New()
	f.SetSink(out)

	undone := tr(nil, "", []action.Action{{Text: "test", Word: "test"}})
	one := tr(nil, "rest", nil)
	prev := tr(nil, "", []action.Action{{Capitalize: true}})

	f.Format([]*translator.Translation{undone}, []*translator.Translation{one}, prev)

	wantFormatting := []action.Action{{Text: " Rest", Word: "Rest"}}
	if !reflect.DeepEqual(one.Formatting, wantFormatting) {
		t.Fatalf("formatting = %+v, want %+v", one.Formatting, wantFormatting)
	}
	want := []instruction{{"b", "4"}, {"s", " Rest"}}
	if !reflect.DeepEqual(out.instructions, want) {
		t.Fatalf("instructions = %v, want %v", out.instructions, want)
	}
}

func TestFormatterUndoesEveryActionWhenFirstActionDiffers(t *testing.T) {
	out := &captureSink{}
	f := New()
	f.SetSink(out)

	undone := tr(nil, "", []action.Action{
		{Text: "test", Word: "test"},
		{Text: "testing", Word: "testing", Replace: "test"},
	})
	one := tr(nil, "rest", nil)
	prev := tr(nil, "", []action.Action{{Capitalize: true}})

	f.Format([]*translator.Translation{undone}, []*translator.Translation{one}, prev)

	wantFormatting := []action.Action{{Text: " Rest", Word: "Rest"}}
	if !reflect.DeepEqual(one.Formatting, wantFormatting) {
		t.Fatalf("formatting = %+v, want %+v", one.Formatting, wantFormatting)
	}
	want := []instruction{{"b", "7"}, {"s", "test"}, {"b", "4"}, {"s", " Rest"}}
	if !reflect.DeepEqual(out.instructions, want) {
		t.Fatalf("instructions = %v, want %v", out.instructions, want)
	}
}

func TestUndoActions(t *testing.T) {
	cases := []struct {
		actions []action.Action
		want    []instruction
	}{
		{[]action.Action{{Text: "hello"}}, []instruction{{"b", "5"}}},
		{[]action.Action{{Text: "ladies", Replace: "lady"}}, []instruction{{"b", "6"}, {"s", "lady"}}},
	}
	for _, c := range cases {
		out := &captureSink{}
		undoActions(c.actions, out)
		if !reflect.DeepEqual(out.instructions, c.want) {
			t.Fatalf("undoActions(%+v) = %v, want %v", c.actions, out.instructions, c.want)
		}
	}
}

func TestRenderActions(t *testing.T) {
	cases := []struct {
		actions []action.Action
		want    []instruction
	}{
		{[]action.Action{{Text: "test"}}, []instruction{{"s", "test"}}},
		{[]action.Action{{Combo: "test"}}, []instruction{{"c", "test"}}},
		{[]action.Action{{Command: "test"}}, []instruction{{"e", "test"}}},
		{[]action.Action{{Replace: "test"}}, []instruction{{"b", "4"}}},
		{[]action.Action{{Replace: "lady", Text: "ladies"}}, []instruction{{"b", "4"}, {"s", "ladies"}}},
	}
	for _, c := range cases {
		out := &captureSink{}
		renderActions(c.actions, out)
		if !reflect.DeepEqual(out.instructions, c.want) {
			t.Fatalf("renderActions(%+v) = %v, want %v", c.actions, out.instructions, c.want)
		}
	}
}

func TestTranslationToActions(t *testing.T) {
	f := New()
	cases := []struct {
		name        string
		translation string
		last        action.Action
		want        []action.Action
	}{
		{"plain word", "test", action.Action{}, []action.Action{{Text: " test", Word: "test"}}},
		{"pure attach toggle", "{^^}", action.Action{}, []action.Action{{Attach: true}}},
		{"dashed non-digit passes through", "1-9", action.Action{}, []action.Action{{Text: " 1-9", Word: "1-9"}}},
		{"all digits glue", "32", action.Action{}, []action.Action{{Text: " 32", Word: "32", Glue: true}}},
		{"empty translation copies state", "", action.Action{Text: " test", Word: "test", Attach: true}, []action.Action{{Word: "test", Attach: true}}},
		{"whitespace-only translation copies state", "  ", action.Action{Text: " test", Word: "test", Attach: true}, []action.Action{{Word: "test", Attach: true}}},
		{
			"suffix chain capitalizes then pluralizes",
			"{-|} equip {^s}",
			action.Action{},
			[]action.Action{
				{Capitalize: true},
				{Text: " Equip", Word: "Equip"},
				{Text: "s", Word: "Equips"},
			},
		},
		{
			"suffix chain capitalizes then past-tenses",
			"{-|} equip {^ed}",
			action.Action{},
			[]action.Action{
				{Capitalize: true},
				{Text: " Equip", Word: "Equip"},
				{Text: "ped", Word: "Equipped"},
			},
		},
		{
			"meta run: attach, stops, word, combo, trailing attach-space",
			"{^} {.} hello {.} {#ALT_L(Grave)}{^ ^}",
			action.Action{},
			[]action.Action{
				{Attach: true},
				{Text: ".", Capitalize: true},
				{Text: " Hello", Word: "Hello"},
				{Text: ".", Capitalize: true},
				{Combo: "ALT_L(Grave)", Capitalize: true},
				{Text: " ", Attach: true},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := f.translationToActions(c.translation, c.last)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("translationToActions(%q) = %+v, want %+v", c.translation, got, c.want)
			}
		})
	}
}

func TestAtomToAction(t *testing.T) {
	f := New()
	cases := []struct {
		name string
		atom string
		last action.Action
		want action.Action
	}{
		{"ed suffix regular", "{^ed}", action.Action{Word: "test"}, action.Action{Text: "ed", Word: "tested"}},
		{"ed suffix y-drop", "{^ed}", action.Action{Word: "carry"}, action.Action{Text: "ied", Replace: "y", Word: "carried"}},
		{"er suffix regular", "{^er}", action.Action{Word: "test"}, action.Action{Text: "er", Word: "tester"}},
		{"er suffix y-drop", "{^er}", action.Action{Word: "carry"}, action.Action{Text: "ier", Replace: "y", Word: "carrier"}},
		{"ing suffix regular", "{^ing}", action.Action{Word: "test"}, action.Action{Text: "ing", Word: "testing"}},
		{"ing suffix doubles consonant", "{^ing}", action.Action{Word: "begin"}, action.Action{Text: "ning", Word: "beginning"}},
		{"ing suffix drops silent e", "{^ing}", action.Action{Word: "parade"}, action.Action{Text: "ing", Replace: "e", Word: "parading"}},
		{"s suffix", "{^s}", action.Action{Word: "test"}, action.Action{Text: "s", Word: "tests"}},
		{"comma", "{,}", action.Action{Word: "test"}, action.Action{Text: ","}},
		{"colon", "{:}", action.Action{Word: "test"}, action.Action{Text: ":"}},
		{"semicolon", "{;}", action.Action{Word: "test"}, action.Action{Text: ";"}},
		{"period capitalizes next", "{.}", action.Action{Word: "test"}, action.Action{Text: ".", Capitalize: true}},
		{"question mark capitalizes next", "{?}", action.Action{Word: "test"}, action.Action{Text: "?", Capitalize: true}},
		{"exclamation capitalizes next", "{!}", action.Action{Word: "test"}, action.Action{Text: "!", Capitalize: true}},
		{"capitalize marker carries state", "{-|}", action.Action{Word: "test"}, action.Action{Capitalize: true, Word: "test"}},
		{"engine command carries state", "{PLOVER:test_command}", action.Action{Word: "test"}, action.Action{Word: "test", Command: "test_command"}},
		{"glue with space", "{&glue_text}", action.Action{Word: "test"}, action.Action{Text: " glue_text", Word: "glue_text", Glue: true}},
		{"glue after glue has no space", "{&glue_text}", action.Action{Word: "test", Glue: true}, action.Action{Text: "glue_text", Word: "testglue_text", Glue: true}},
		{"glue after attach has no space", "{&glue_text}", action.Action{Word: "test", Attach: true}, action.Action{Text: "glue_text", Word: "testglue_text", Glue: true}},
		{"attach prefix only", "{^attach_text}", action.Action{Word: "test"}, action.Action{Text: "attach_text", Word: "testattach_text"}},
		{"attach both sides", "{^attach_text^}", action.Action{Word: "test"}, action.Action{Text: "attach_text", Word: "testattach_text", Attach: true}},
		{"attach suffix only keeps leading space", "{attach_text^}", action.Action{Word: "test"}, action.Action{Text: " attach_text", Word: "attach_text", Attach: true}},
		{"key combination carries state", "{#ALT_L(A)}", action.Action{Word: "test"}, action.Action{Combo: "ALT_L(A)", Word: "test"}},
		{"plain text", "text", action.Action{Word: "test"}, action.Action{Text: " text", Word: "text"}},
		{"plain text after glue gets a space", "text", action.Action{Word: "test", Glue: true}, action.Action{Text: " text", Word: "text"}},
		{"plain text after attach has no space", "text", action.Action{Word: "test", Attach: true}, action.Action{Text: "text", Word: "text"}},
		{"plain text capitalizes", "text", action.Action{Word: "test", Capitalize: true}, action.Action{Text: " Text", Word: "Text"}},
		{"multi-word atom takes rightmost word", "some text", action.Action{Word: "test"}, action.Action{Text: " some text", Word: "text"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := f.atomToAction(c.atom, c.last)
			if got != c.want {
				t.Fatalf("atomToAction(%q, %+v) = %+v, want %+v", c.atom, c.last, got, c.want)
			}
		})
	}
}

func TestGetMeta(t *testing.T) {
	cases := []struct {
		atom    string
		wantOK  bool
		wantVal string
	}{
		{"", false, ""},
		{"{abc}", true, "abc"},
		{"abc", false, ""},
	}
	for _, c := range cases {
		val, ok := getMeta(c.atom)
		if ok != c.wantOK || val != c.wantVal {
			t.Fatalf("getMeta(%q) = %q, %v, want %q, %v", c.atom, val, ok, c.wantVal, c.wantOK)
		}
	}
}

func TestApplyGlue(t *testing.T) {
	if got := applyGlue("abc"); got != "{&abc}" {
		t.Fatalf("applyGlue(abc) = %q", got)
	}
	if got := applyGlue("1"); got != "{&1}" {
		t.Fatalf("applyGlue(1) = %q", got)
	}
}

func TestUnescapeAtom(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"abc":       "abc",
		`\{`:        "{",
		`\}`:        "}",
		`\{abc\}}{`: "{abc}}{",
	}
	for in, want := range cases {
		if got := unescapeAtom(in); got != want {
			t.Fatalf("unescapeAtom(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{"": "", "abc": "Abc", "ABC": "ABC"}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Fatalf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRightmostWord(t *testing.T) {
	cases := map[string]string{"": "", "abc": "abc", "a word": "word", "word.": "word."}
	for in, want := range cases {
		if got := rightmostWord(in); got != want {
			t.Fatalf("rightmostWord(%q) = %q, want %q", in, got, want)
		}
	}
}
