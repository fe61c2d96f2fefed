// Package chord parses and canonicalizes raw steno key combinations into
// the RTFCRE string representation used as dictionary lookup keys.
package chord

import (
	"sort"
	"strings"
)

// ErrUnknownChordKey panics are raised through this value when a stroke
// contains a key outside the 24-key alphabet. A machine driver emitting such
// a key is a programming error, not a recoverable runtime condition.
type ErrUnknownChordKey struct {
	Key Key
}

func (e ErrUnknownChordKey) Error() string {
	return "chord: unknown steno key " + string(e.Key)
}

// Chord is a single steno stroke: an ordered, canonicalized set of keys plus
// the RTFCRE string derived from them.
type Chord struct {
	keys         []Key
	rtfcre       string
	isCorrection bool
}

// New canonicalizes the given keys into a Chord. Keys may arrive in any
// order and with numeral substitutions already applied or not; New applies
// the canonical steno ordering and number-bar substitution itself.
//
// New panics with ErrUnknownChordKey if any key is not part of the 24-key
// alphabet — this mirrors the reference machine driver, which treats such
// input as a hardware/protocol bug rather than bad user input.
func New(keys []Key) Chord {
	if len(keys) == 0 {
		return Chord{}
	}

	// Dedupe, then sort by canonical key position, before any number-bar
	// substitution — substitution happens in place afterward and must not
	// disturb the ordering already established.
	seen := make(map[Key]bool, len(keys))
	sorted := make([]Key, 0, len(keys))
	for _, k := range keys {
		if !Valid(k) {
			panic(ErrUnknownChordKey{Key: k})
		}
		if !seen[k] {
			seen[k] = true
			sorted = append(sorted, k)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return order[sorted[i]] < order[sorted[j]] })

	if seen["#"] {
		numeralConverted := false
		for i, k := range sorted {
			if sub, ok := numberSubstitution[k]; ok {
				sorted[i] = sub
				numeralConverted = true
			}
		}
		if numeralConverted {
			out := sorted[:0]
			for _, k := range sorted {
				if k != "#" {
					out = append(out, k)
				}
			}
			sorted = out
		}
	}

	set := make(map[Key]bool, len(sorted))
	for _, k := range sorted {
		set[k] = true
	}

	rc := rtfcre(sorted, set)

	return Chord{
		keys:         sorted,
		rtfcre:       rc,
		isCorrection: rc == "*",
	}
}

// FromRTFCRE parses an already-formed RTFCRE string (e.g. "SKWHRAO-RPL")
// back into a Chord without re-deriving the string, useful for dictionary
// keys read from disk.
func FromRTFCRE(s string) Chord {
	return Chord{rtfcre: s, isCorrection: s == "*"}
}

// Keys returns the canonically ordered keys making up the chord. Empty for
// a Chord built via FromRTFCRE.
func (c Chord) Keys() []Key { return c.keys }

// RTFCRE returns the chord's canonical string form, used as a dictionary
// lookup key.
func (c Chord) RTFCRE() string { return c.rtfcre }

// IsCorrection reports whether this chord is the lone "*" stroke, which the
// translator treats as an undo/correction request rather than a normal
// stroke to translate.
func (c Chord) IsCorrection() bool { return c.isCorrection }

// rtfcre derives the RTFCRE string from canonically sorted keys. If any key
// in the chord is a member of the implicit-hyphen set, the keys are joined
// directly with no separator; otherwise the left-bank keys (plus "#") and
// right-bank keys are joined separately and combined with a medial hyphen,
// omitted entirely if there are no right-bank keys.
func rtfcre(sorted []Key, set map[Key]bool) string {
	for k := range set {
		if implicitHyphen[k] {
			var b strings.Builder
			for _, key := range sorted {
				b.WriteString(strings.Trim(string(key), "-"))
			}
			return b.String()
		}
	}

	var pre, post strings.Builder
	for _, k := range sorted {
		s := string(k)
		if s == "#" || strings.HasSuffix(s, "-") {
			pre.WriteString(strings.Trim(s, "-"))
		} else if strings.HasPrefix(s, "-") {
			post.WriteString(strings.Trim(s, "-"))
		}
	}
	if post.Len() == 0 {
		return pre.String()
	}
	return pre.String() + "-" + post.String()
}
