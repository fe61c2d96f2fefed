// Package dictionary maps ordered tuples of chord RTFCRE strings to
// translation markup strings, tracking the longest key length so the
// translator knows how far back in history it needs to look.
package dictionary

import "strings"

// Key is an ordered tuple of chord RTFCRE strings, e.g. {"TPHO", "STKPWEUG"}.
type Key []string

// rtfcreJoin is the canonical string form of a Key, used as the map key
// internally and as the dictionary file's JSON object key.
func rtfcreJoin(k Key) string { return strings.Join(k, "/") }

// Dictionary is a chord-tuple -> translation markup map with an observable
// longest-key length.
type Dictionary struct {
	entries    map[string]string
	keyLen     map[string]int
	longestKey int
}

// New returns an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries: map[string]string{},
		keyLen:  map[string]int{},
	}
}

// Get looks up the translation for key, reporting whether it was present.
func (d *Dictionary) Get(key Key) (string, bool) {
	v, ok := d.entries[rtfcreJoin(key)]
	return v, ok
}

// Set inserts or overwrites the translation for key.
func (d *Dictionary) Set(key Key, value string) {
	k := rtfcreJoin(key)
	d.entries[k] = value
	d.keyLen[k] = len(key)
	if len(key) > d.longestKey {
		d.longestKey = len(key)
	}
}

// Delete removes key, if present, and recomputes LongestKey if the removed
// entry held the current maximum length.
func (d *Dictionary) Delete(key Key) {
	k := rtfcreJoin(key)
	n, ok := d.keyLen[k]
	if !ok {
		return
	}
	delete(d.entries, k)
	delete(d.keyLen, k)
	if n == d.longestKey {
		d.recomputeLongestKey()
	}
}

// Clear removes every entry.
func (d *Dictionary) Clear() {
	d.entries = map[string]string{}
	d.keyLen = map[string]int{}
	d.longestKey = 0
}

// LongestKey returns the length, in strokes, of the longest key currently
// in the dictionary, or 0 if empty.
func (d *Dictionary) LongestKey() int { return d.longestKey }

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Keys returns every key currently in the dictionary, in no particular
// order — used by CLI tooling that needs to inspect or validate entries
// rather than just look one up.
func (d *Dictionary) Keys() []Key {
	keys := make([]Key, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, Key(strings.Split(k, "/")))
	}
	return keys
}

func (d *Dictionary) recomputeLongestKey() {
	max := 0
	for _, n := range d.keyLen {
		if n > max {
			max = n
		}
	}
	d.longestKey = max
}
