package chord

// Key is one of the 24 keys on the steno keyboard layout, written in its
// canonical hyphenated form (e.g. "S-", "-T", "*", "#").
type Key string

// order assigns every recognized key a sort position. The gap between "*"
// (9) and "-E" (13) reserves room for machines with duplicate star keys, a
// quirk of the physical layout this ordering is modeled on.
var order = map[Key]int{
	"#":  -1,
	"S-": 0,
	"T-": 1,
	"K-": 2,
	"P-": 3,
	"W-": 4,
	"H-": 5,
	"R-": 6,
	"A-": 7,
	"O-": 8,
	"*":  9,
	"-E": 13,
	"-U": 14,
	"-F": 15,
	"-R": 16,
	"-P": 17,
	"-B": 18,
	"-L": 19,
	"-G": 20,
	"-T": 21,
	"-S": 22,
	"-D": 23,
	"-Z": 24,
}

// numberSubstitution maps a left- or right-bank key to its digit form when
// pressed together with the number bar "#".
var numberSubstitution = map[Key]Key{
	"S-": "1-",
	"T-": "2-",
	"P-": "3-",
	"H-": "4-",
	"A-": "5-",
	"O-": "0-",
	"-F": "-6",
	"-P": "-7",
	"-L": "-8",
	"-T": "-9",
}

// implicitHyphen is the set of keys whose presence in a chord suppresses the
// medial hyphen in the chord's rtfcre form.
var implicitHyphen = map[Key]bool{
	"A-": true,
	"O-": true,
	"5-": true,
	"0-": true,
	"-E": true,
	"-U": true,
	"*":  true,
}

// Valid reports whether k is one of the 24 recognized steno keys.
func Valid(k Key) bool {
	_, ok := order[k]
	return ok
}

// rtfcreAlphabet is the set of characters that can legally appear in an
// RTFCRE string: every letter used by a recognized key (stripped of its
// hyphen), every digit a number-bar substitution can produce, plus "#"
// and "-" themselves.
var rtfcreAlphabet = func() map[rune]bool {
	set := map[rune]bool{'#': true, '-': true}
	for k := range order {
		for _, r := range string(k) {
			if r != '-' {
				set[r] = true
			}
		}
	}
	for _, d := range numberSubstitution {
		for _, r := range string(d) {
			if r != '-' {
				set[r] = true
			}
		}
	}
	return set
}()

// ValidateRTFCRE reports whether every character of an already-joined
// RTFCRE stroke string belongs to the closed steno key alphabet,
// returning ErrUnknownChordKey naming the first offending character
// otherwise. This is a character-membership check, not a full positional
// stroke decode — dictionary files loaded from disk are the caller's
// input, not a trusted machine driver, so a corrupted or hand-edited
// entry is reported as a diagnostic instead of reaching Chord.New's panic.
func ValidateRTFCRE(s string) error {
	for _, r := range s {
		if !rtfcreAlphabet[r] {
			return ErrUnknownChordKey{Key: Key(string(r))}
		}
	}
	return nil
}
