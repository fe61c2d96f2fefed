// Package orthography implements English suffix inflection: a small rule
// engine for regular words, overridden by a lookup table of irregulars
// loaded from an asset file.
package orthography

import "strings"

const (
	consonants    = "bcdfghjklmnpqrstvwxzBCDFGHJKLMNPQRSTVWXZ"
	vowels        = "aeiouAEIOU"
	wLetters      = "wW"
	yLetters      = "yY"
	pluralSpecial = "sxzSXZ"
)

func isIn(r byte, set string) bool {
	return strings.IndexByte(set, r) >= 0
}

// Table holds irregular-word overrides keyed by the base word, one map per
// suffix. A Table with nil maps (such as the zero value) falls back to pure
// rule-based inflection everywhere. The methods read t's fields, so t must
// not be a nil pointer.
type Table struct {
	Plural      map[string]string // -s / -es / -ies
	Past        map[string]string // -ed
	Comparative map[string]string // -er
	Superlative map[string]string // -est
	PresentPart map[string]string // -ing
}

// NewTable returns an empty override table — pure rule-based inflection
// until entries are loaded into it (or merged in via LoadTable).
func NewTable() *Table {
	return &Table{
		Plural:      map[string]string{},
		Past:        map[string]string{},
		Comparative: map[string]string{},
		Superlative: map[string]string{},
		PresentPart: map[string]string{},
	}
}

// AddS forms the plural of a noun, or the third-person-singular present of a
// verb, by appending "s" (or "es"/"ies" as the rules dictate), consulting
// the irregular table first.
func (t *Table) AddS(word string) string {
	if s, ok := lookup(t.Plural, word); ok {
		return s
	}
	return addSSuffix(word)
}

// AddEd forms the past tense of a verb by appending "ed".
func (t *Table) AddEd(word string) string {
	if s, ok := lookup(t.Past, word); ok {
		return s
	}
	return prepForSimpleSuffix(word) + "ed"
}

// AddEr forms the comparative of an adjective by appending "er".
func (t *Table) AddEr(word string) string {
	if s, ok := lookup(t.Comparative, word); ok {
		return s
	}
	return prepForSimpleSuffix(word) + "er"
}

// AddEst forms the superlative of an adjective by appending "est".
func (t *Table) AddEst(word string) string {
	if s, ok := lookup(t.Superlative, word); ok {
		return s
	}
	return prepForSimpleSuffix(word) + "est"
}

// AddIng forms the present participle of a verb by appending "ing". Words
// ending in y keep it (the prepare step's y-to-i conversion is specific to
// the other suffixes and would produce the wrong result here).
func (t *Table) AddIng(word string) string {
	if s, ok := lookup(t.PresentPart, word); ok {
		return s
	}
	if word != "" && isIn(word[len(word)-1], yLetters) {
		return word + "ing"
	}
	return prepForSimpleSuffix(word) + "ing"
}

func lookup(m map[string]string, word string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[word]
	return s, ok
}

// addSSuffix applies the plural/present-tense "s" rule directly, with no
// table lookup.
func addSSuffix(word string) string {
	if len(word) < 2 {
		return word + "s"
	}
	a, b := word[len(word)-2], word[len(word)-1]
	switch {
	case isIn(b, pluralSpecial):
		return word + "es"
	case isIn(b, yLetters) && isIn(a, consonants):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

// prepForSimpleSuffix adjusts a word's ending before appending a suffix
// that starts with a vowel-ish letter ("ed", "er", "est", "ing"):
// it drops a trailing silent e, doubles a final consonant in a
// consonant-vowel-consonant word (unless that consonant is w; a "qu" before
// the vowel counts as the leading consonant, as in equip), or turns a
// trailing y after a consonant into i.
func prepForSimpleSuffix(word string) string {
	n := len(word)
	if n < 2 {
		return word
	}

	var thirdToLast byte
	haveThird := n >= 3
	if haveThird {
		thirdToLast = word[n-3]
	}
	secondToLast := word[n-2]
	last := word[n-1]

	if !(isIn(secondToLast, vowels) || isIn(secondToLast, consonants)) {
		return word
	}

	switch {
	case isIn(last, "eE"):
		if haveThird && (isIn(thirdToLast, vowels) || isIn(thirdToLast, consonants)) {
			return word[:n-1]
		}
	case isIn(last, consonants) && !isIn(last, wLetters) &&
		isIn(secondToLast, vowels) && haveThird &&
		(!isIn(thirdToLast, vowels) || (n >= 4 && isIn(thirdToLast, "uU") && isIn(word[n-4], "qQ"))):
		return word + string(last)
	case isIn(last, yLetters) && isIn(secondToLast, consonants):
		return word[:n-1] + "i"
	}
	return word
}
