// Package formatter turns a stream of translator translations into
// keystroke instructions: inserted/deleted text, key combinations, and
// engine commands, threading capitalization/attach/glue state from one
// translation to the next.
package formatter

import (
	"regexp"
	"strings"

	"stenoengine/internal/action"
	"stenoengine/internal/orthography"
	"stenoengine/internal/output"
	"stenoengine/internal/translator"
)

// Formatter renders translator undo/do notifications into a Sink,
// recording each translation's resulting actions so later calls can
// resume from the right capitalize/attach/glue/word state and so a
// revised translation can be diffed against what it previously rendered.
type Formatter struct {
	sink  output.Sink
	table *orthography.Table
}

// New returns a Formatter over a NullSink with an empty suffix-override
// table. SetSink and SetTable wire in the real dependencies.
func New() *Formatter {
	return &Formatter{sink: output.NullSink{}, table: orthography.NewTable()}
}

// SetSink replaces the sink future renders are written to.
func (f *Formatter) SetSink(s output.Sink) { f.sink = s }

// SetTable replaces the irregular-inflection override table consulted by
// suffix metas ({^s}, {^ed}, {^er}, {^ing}).
func (f *Formatter) SetTable(t *orthography.Table) { f.table = t }

// Format is the translator.Listener this Formatter registers: it derives
// each new translation's actions from the action left behind by the
// translation preceding it, then emits only the portion of the rendering
// that actually changed between what undo previously produced and what
// do now produces.
func (f *Formatter) Format(undo, do []*translator.Translation, prev *translator.Translation) {
	lastAction := f.lastActionOf(prev)
	for _, t := range do {
		if t.English != nil && *t.English != "" {
			t.Formatting = f.translationToActions(*t.English, lastAction)
		} else {
			t.Formatting = f.rawToActions(t.RTFCRE[0], lastAction)
		}
		lastAction = f.lastActionOf(t)
	}

	var old, new []action.Action
	for _, t := range undo {
		old = append(old, t.Formatting...)
	}
	for _, t := range do {
		new = append(new, t.Formatting...)
	}

	minLength := len(old)
	if len(new) < minLength {
		minLength = len(new)
	}
	i := minLength
	for j := 0; j < minLength; j++ {
		if old[j] != new[j] {
			i = j
			break
		}
	}

	undoActions(old[i:], f.sink)
	renderActions(new[i:], f.sink)
}

func (f *Formatter) lastActionOf(t *translator.Translation) action.Action {
	if t == nil || len(t.Formatting) == 0 {
		return action.Action{}
	}
	return t.Formatting[len(t.Formatting)-1]
}

// undoActions retracts a previously rendered action list in reverse:
// backspace over the text it inserted, then restore whatever it
// overwrote.
func undoActions(actions []action.Action, sink output.Sink) {
	for i := len(actions) - 1; i >= 0; i-- {
		a := actions[i]
		if a.Text != "" {
			sink.SendBackspaces(len([]rune(a.Text)))
		}
		if a.Replace != "" {
			sink.SendString(a.Replace)
		}
	}
}

// renderActions plays an action list forward: erase what it replaces,
// insert its text, then fire any combo/command side effects.
func renderActions(actions []action.Action, sink output.Sink) {
	for _, a := range actions {
		if a.Replace != "" {
			sink.SendBackspaces(len([]rune(a.Replace)))
		}
		if a.Text != "" {
			sink.SendString(a.Text)
		}
		if a.Combo != "" {
			sink.SendKeyCombination(a.Combo)
		}
		if a.Command != "" {
			sink.SendEngineCommand(a.Command)
		}
	}
}

const (
	space   = " "
	noSpace = ""

	metaCapitalize     = "-|"
	metaPluralize      = "^s"
	metaEdSuffix       = "^ed"
	metaErSuffix       = "^er"
	metaIngSuffix      = "^ing"
	metaGlueFlag       = "&"
	metaAttachFlag     = "^"
	metaKeyCombination = "#"
	metaCommand        = "PLOVER:"
)

var metaStops = map[string]bool{".": true, "!": true, "?": true}
var metaCommas = map[string]bool{",": true, ":": true, ";": true}
var metaSuffix = map[string]bool{metaEdSuffix: true, metaErSuffix: true, metaIngSuffix: true, metaPluralize: true}

// metaRE splits a translation into atoms: runs of plain text (which may
// contain escaped braces) or a single fully brace-delimited meta command.
var metaRE = regexp.MustCompile(`(?:\\\{|\\\}|[^{}])+|\{(?:\\\{|\\\}|[^{}])*\}`)

// translationToActions reduces a dictionary translation string to its
// constituent atoms and folds each through atomToAction, threading
// lastAction forward so later atoms see the state the earlier ones left.
func (f *Formatter) translationToActions(translation string, lastAction action.Action) []action.Action {
	var atoms []string
	if isDigits(translation) {
		atoms = []string{applyGlue(translation)}
	} else {
		for _, m := range metaRE.FindAllString(translation, -1) {
			trimmed := strings.TrimSpace(m)
			if trimmed != "" {
				atoms = append(atoms, trimmed)
			}
		}
	}

	if len(atoms) == 0 {
		return []action.Action{lastAction.CopyState()}
	}

	actions := make([]action.Action, 0, len(atoms))
	for _, atom := range atoms {
		a := f.atomToAction(atom, lastAction)
		actions = append(actions, a)
		lastAction = a
	}
	return actions
}

// rawToActions formats a chord that had no dictionary match: digit
// strokes glue together like their translated counterparts, everything
// else is emitted as its literal text.
func (f *Formatter) rawToActions(stroke string, lastAction action.Action) []action.Action {
	noDash := strings.Replace(stroke, "-", "", 1)
	if isDigits(noDash) {
		return f.translationToActions(noDash, lastAction)
	}
	return []action.Action{{Text: space + stroke}}
}

func (f *Formatter) atomToAction(atom string, lastAction action.Action) action.Action {
	a := action.Action{}
	lastWord := lastAction.Word
	lastGlue := lastAction.Glue
	lastAttach := lastAction.Attach
	lastCapitalize := lastAction.Capitalize

	meta, ok := getMeta(atom)
	if !ok {
		text := unescapeAtom(atom)
		if lastCapitalize {
			text = capitalize(text)
		}
		sp := noSpace
		if !lastAttach {
			sp = space
		}
		a.Text = sp + text
		a.Word = rightmostWord(text)
		return a
	}

	meta = unescapeAtom(meta)
	switch {
	case metaSuffix[meta]:
		new := f.applySuffix(meta, lastWord)
		common := commonPrefix(lastWord, new)
		a.Replace = lastWord[len(common):]
		a.Text = new[len(common):]
		a.Word = new
	case metaCommas[meta]:
		a.Text = meta
	case metaStops[meta]:
		a.Text = meta
		a.Capitalize = true
	case meta == metaCapitalize:
		a = lastAction.CopyState()
		a.Capitalize = true
	case strings.HasPrefix(meta, metaCommand):
		a = lastAction.CopyState()
		a.Command = meta[len(metaCommand):]
	case strings.HasPrefix(meta, metaGlueFlag):
		a.Glue = true
		glue := lastGlue || lastAttach
		sp := space
		if glue {
			sp = noSpace
		}
		text := meta[len(metaGlueFlag):]
		if lastCapitalize {
			text = capitalize(text)
		}
		a.Text = sp + text
		a.Word = rightmostWord(lastWord + a.Text)
	case strings.HasPrefix(meta, metaAttachFlag) || strings.HasSuffix(meta, metaAttachFlag):
		begin := strings.HasPrefix(meta, metaAttachFlag)
		end := strings.HasSuffix(meta, metaAttachFlag)
		if begin {
			meta = meta[len(metaAttachFlag):]
		}
		if end && len(meta) >= len(metaAttachFlag) {
			meta = meta[:len(meta)-len(metaAttachFlag)]
		}
		sp := space
		if begin || lastAttach {
			sp = noSpace
		}
		if end {
			a.Attach = true
		}
		if lastCapitalize {
			meta = capitalize(meta)
		}
		a.Text = sp + meta
		a.Word = rightmostWord(lastWord + a.Text)
	case strings.HasPrefix(meta, metaKeyCombination):
		a = lastAction.CopyState()
		a.Combo = meta[len(metaKeyCombination):]
	default:
		// Unrecognized meta: no instruction, and the previous state is
		// carried forward unchanged.
		a = lastAction.CopyState()
	}
	return a
}

func (f *Formatter) applySuffix(meta, word string) string {
	switch meta {
	case metaPluralize:
		return f.table.AddS(word)
	case metaEdSuffix:
		return f.table.AddEd(word)
	case metaErSuffix:
		return f.table.AddEr(word)
	case metaIngSuffix:
		return f.table.AddIng(word)
	}
	return word
}

func getMeta(atom string) (string, bool) {
	if strings.HasPrefix(atom, "{") && strings.HasSuffix(atom, "}") && len(atom) >= 2 {
		return atom[1 : len(atom)-1], true
	}
	return "", false
}

func applyGlue(s string) string {
	return "{" + metaGlueFlag + s + "}"
}

func unescapeAtom(atom string) string {
	atom = strings.ReplaceAll(atom, `\{`, "{")
	atom = strings.ReplaceAll(atom, `\}`, "}")
	return atom
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func rightmostWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
