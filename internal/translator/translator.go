package translator

import (
	"stenoengine/internal/chord"
	"stenoengine/internal/dictionary"
)

// Listener observes every Translate call that changes history (dictionary
// add/remove calls do not notify listeners): undo is the set of
// translations to retract, do is the set of new translations to apply, and
// prev is the translation immediately preceding do in the visible history
// (or the evicted tail, if history is otherwise empty) — context the
// formatter needs to continue capitalization/attach/word state.
type Listener func(undo []*Translation, do []*Translation, prev *Translation)

// State is a restorable snapshot of a Translator's visible history and
// evicted tail, used to swap contexts (e.g. entering a dictionary editor)
// without replaying translation history. Translations are shared by
// pointer with the live translator, matching the reference semantics
// Translation relies on elsewhere.
type State struct {
	Translations []*Translation
	Tail         *Translation
}

// Translator holds translation history and performs the longest-suffix
// rematch on every incoming chord, notifying listeners of the resulting
// undo/do/prev triple.
type Translator struct {
	dict         *dictionary.Dictionary
	translations []*Translation
	tail         *Translation
	undoLength   int
	listeners    []Listener
}

// New returns a Translator over an empty dictionary with the minimum
// undo length of 1 — enough to support a single correction stroke.
// Embedders that want a deeper undo history call SetUndoLength.
func New() *Translator {
	return &Translator{
		dict:       dictionary.New(),
		undoLength: 1,
	}
}

// SetDictionary replaces the dictionary consulted on future translations.
// It does not affect existing history.
func (t *Translator) SetDictionary(d *dictionary.Dictionary) { t.dict = d }

// SetUndoLength bounds how many translations are kept in visible history
// before the oldest is evicted to the tail.
func (t *Translator) SetUndoLength(n int) {
	if n < 1 {
		n = 1
	}
	t.undoLength = n
}

// AddListener registers f to be notified of future Translate events and
// returns a handle for RemoveListener.
func (t *Translator) AddListener(f Listener) int {
	t.listeners = append(t.listeners, f)
	return len(t.listeners) - 1
}

// RemoveListener unregisters the listener previously returned by
// AddListener. Removing an already-removed or unknown handle is a no-op.
func (t *Translator) RemoveListener(handle int) {
	if handle < 0 || handle >= len(t.listeners) {
		return
	}
	t.listeners[handle] = nil
}

func (t *Translator) notify(undo, do []*Translation, prev *Translation) {
	if len(undo) == 0 && len(do) == 0 {
		return
	}
	for _, f := range t.listeners {
		if f != nil {
			f(undo, do, prev)
		}
	}
}

// AddTranslation inserts a single dictionary entry.
func (t *Translator) AddTranslation(key dictionary.Key, value string) {
	t.dict.Set(key, value)
}

// AddTranslations inserts a batch of dictionary entries, keyed by their
// "/"-joined RTFCRE strings (matching the dictionary file format).
func (t *Translator) AddTranslations(m map[string]string) {
	for k, v := range m {
		t.dict.Set(dictionary.Key(splitKey(k)), v)
	}
}

// RemoveTranslations deletes the given dictionary entries.
func (t *Translator) RemoveTranslations(keys []dictionary.Key) {
	for _, k := range keys {
		t.dict.Delete(k)
	}
}

func splitKey(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// GetState returns the current visible history and tail. Translations are
// shared by pointer with the live translator.
func (t *Translator) GetState() State {
	translations := make([]*Translation, len(t.translations))
	copy(translations, t.translations)
	return State{Translations: translations, Tail: t.tail}
}

// SetState restores a previously captured State.
func (t *Translator) SetState(s State) {
	t.translations = make([]*Translation, len(s.Translations))
	copy(t.translations, s.Translations)
	t.tail = s.Tail
}

// ClearState resets history and tail to empty, with no listener
// notification — used when swapping into a temporary context that should
// not be treated as an undo of the prior one.
func (t *Translator) ClearState() {
	t.translations = nil
	t.tail = nil
}

// Translate feeds a single chord through the longest-suffix rematch
// algorithm and notifies listeners of the resulting change, if any.
func (t *Translator) Translate(c chord.Chord) {
	if c.IsCorrection() {
		t.translateCorrection()
		return
	}
	t.translateNormal(c)
}

func (t *Translator) translateCorrection() {
	n := len(t.translations)
	if n == 0 {
		// Nothing to undo: a correction stroke with empty history is a
		// true no-op, not a literal "*" translation.
		return
	}
	popped := t.translations[n-1]
	prior := t.translations[:n-1]
	prev := t.prevIn(prior, len(prior))

	if len(popped.Replaced) > 0 {
		t.translations = append(append([]*Translation{}, prior...), popped.Replaced...)
		t.trim()
		t.notify([]*Translation{popped}, popped.Replaced, prev)
		return
	}

	t.translations = prior
	t.notify([]*Translation{popped}, nil, prev)
}

func (t *Translator) translateNormal(c chord.Chord) {
	h := t.translations
	l := t.dict.LongestKey()

	kmax := l
	if len(h)+1 < kmax {
		kmax = len(h) + 1
	}
	kmax--

	for k := kmax; k >= 0; k-- {
		start := len(h) - k
		candidateStrokes := make([]chord.Chord, 0, k+1)
		candidateRTFCRE := make([]string, 0, k+1)
		for _, tr := range h[start:] {
			candidateStrokes = append(candidateStrokes, tr.Strokes...)
			candidateRTFCRE = append(candidateRTFCRE, tr.RTFCRE...)
		}
		candidateStrokes = append(candidateStrokes, c)
		candidateRTFCRE = append(candidateRTFCRE, c.RTFCRE())

		if v, ok := t.dict.Get(dictionary.Key(candidateRTFCRE)); ok {
			replaced := append([]*Translation{}, h[start:]...)
			english := v
			n := &Translation{
				Strokes:  candidateStrokes,
				RTFCRE:   candidateRTFCRE,
				English:  &english,
				Replaced: replaced,
			}
			prev := t.prevIn(h, start)
			remaining := append([]*Translation{}, h[:start]...)
			remaining = append(remaining, n)
			t.translations = remaining
			t.trim()
			t.notify(replaced, []*Translation{n}, prev)
			return
		}
	}

	r := NewRaw(c)
	prev := t.prevIn(h, len(h))
	t.translations = append(append([]*Translation{}, h...), r)
	t.trim()
	t.notify(nil, []*Translation{r}, prev)
}

// prevIn returns the translation at index remaining-1 in hist, or the
// tail if remaining is 0 (nothing precedes the change in history).
func (t *Translator) prevIn(hist []*Translation, remaining int) *Translation {
	if remaining > 0 {
		return hist[remaining-1]
	}
	return t.tail
}

// trim evicts from the front of translations while it exceeds undoLength,
// keeping the most recently evicted item as the new tail.
func (t *Translator) trim() {
	for len(t.translations) > t.undoLength {
		t.tail = t.translations[0]
		t.translations = t.translations[1:]
	}
}
