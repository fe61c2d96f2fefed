// Package fake provides a synthetic machine.Source that plays back a
// fixed script of chords at a steady pace — used by the CLI demo to drive
// the full capture-to-output pipeline without real stenotype hardware.
package fake

import (
	"context"
	"strings"

	"golang.org/x/time/rate"

	"stenoengine/internal/chord"
	"stenoengine/internal/machine"
)

// Source plays back a fixed slice of chords, pacing delivery through a
// token-bucket rate limiter rather than a hardware polling loop.
type Source struct {
	strokes []chord.Chord
	pos     int
	limiter *rate.Limiter
}

// New returns a Source over strokes, releasing one chord per NextChord
// call at up to rps chords per second (burst 1 — each chord is paced
// individually, there is no benefit to bursting a scripted sequence).
func New(strokes []chord.Chord, rps float64) *Source {
	if rps <= 0 {
		rps = 5
	}
	return &Source{strokes: strokes, limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// NewFromScript parses script, one space-separated key-set per line
// (blank lines skipped), into chords and returns a paced Source over
// them — the format the CLI's `run --script` flag reads.
func NewFromScript(script string, rps float64) *Source {
	var strokes []chord.Chord
	for _, line := range strings.Split(script, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		keys := make([]chord.Key, len(fields))
		for i, f := range fields {
			keys[i] = chord.Key(f)
		}
		strokes = append(strokes, chord.New(keys))
	}
	return New(strokes, rps)
}

// NextChord blocks until the limiter releases the next scripted chord,
// ctx is canceled, or the script is exhausted.
func (s *Source) NextChord(ctx context.Context) (chord.Chord, error) {
	if s.pos >= len(s.strokes) {
		return chord.Chord{}, machine.ErrExhausted
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return chord.Chord{}, err
	}
	c := s.strokes[s.pos]
	s.pos++
	return c, nil
}
