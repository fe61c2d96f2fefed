// Package machine defines the contract a stenotype driver fulfills: a
// pull-based source of chords an engine can drive its translator with.
// Real hardware drivers (serial, USB HID, Bluetooth) are out of scope —
// Source is deliberately small so embedders can adapt whatever capture
// mechanism they have.
package machine

import (
	"context"
	"errors"

	"stenoengine/internal/chord"
)

// ErrExhausted is returned by NextChord once a finite source has no more
// chords to give — a scripted or file-backed Source, for example.
var ErrExhausted = errors.New("machine: source exhausted")

// Source produces one chord at a time, blocking until one is available,
// ctx is canceled, or the source is exhausted. This mirrors the
// reference driver's callback-subscription model
// (StenotypeBase.add_callback) collapsed into the pull-based shape this
// engine's synchronous Translate call already expects.
type Source interface {
	NextChord(ctx context.Context) (chord.Chord, error)
}
