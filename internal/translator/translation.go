// Package translator holds the stateful longest-match lookup over a
// chord history: each incoming chord either extends the current
// translation, backtracks over and replaces a run of prior translations,
// or — for the correction stroke — undoes the most recent one.
package translator

import (
	"stenoengine/internal/action"
	"stenoengine/internal/chord"
	"stenoengine/internal/dictionary"
)

// Translation is the result of matching one or more chords against the
// dictionary, or a "raw" fallback when nothing matched. Translations are
// always held and passed by pointer: the formatter mutates Formatting in
// place on the same object the translator keeps in its history, so a
// later lookup of "the previous translation" sees formatting recorded by
// an earlier listener call rather than a stale copy.
type Translation struct {
	Strokes  []chord.Chord
	RTFCRE   []string
	English  *string
	Replaced []*Translation

	// Formatting is populated lazily by the formatter when this
	// translation is first rendered; nil until then.
	Formatting []action.Action
}

// NewRaw builds a single-stroke translation with no dictionary match —
// english is absent and the raw rtfcre string is used as display text by
// convention of the embedder, not by the translator itself.
func NewRaw(c chord.Chord) *Translation {
	return &Translation{
		Strokes: []chord.Chord{c},
		RTFCRE:  []string{c.RTFCRE()},
	}
}

// Undoable reports whether this translation has any strokes — true for
// anything but a zero-value Translation.
func (t *Translation) Undoable() bool {
	return len(t.Strokes) > 0
}

// Key returns the dictionary lookup key for this translation's strokes.
func (t *Translation) Key() dictionary.Key {
	return dictionary.Key(t.RTFCRE)
}
