package orthography

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrBadOrthographyLine reports a single malformed line in an orthography
// table file. LoadTable collects these but does not stop on them — a
// malformed line is skipped, not fatal.
type ErrBadOrthographyLine struct {
	Line int
	Text string
}

func (e ErrBadOrthographyLine) Error() string {
	return fmt.Sprintf("orthography: bad line %d: %q", e.Line, e.Text)
}

// LoadTableFile reads an orthography override table from path, in the
// format documented by LoadTable.
func LoadTableFile(path string) (*Table, []error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, []error{err}
	}
	defer f.Close()
	return LoadTable(f)
}

// LoadTable parses an orthography override table: one entry per line of the
// form
//
//	WORD TAG: slot1 | slot2 | …
//
// where slots are separated by "|" and a slot may itself list several
// comma-separated alternatives, of which only the first is used. TAG is N
// (noun), A (adjective), or V (verb) and selects which slots are read:
//
//	N: slot1 is the plural form.
//	A: exactly 2 slots — comparative, superlative.
//	V: 3 or 4 slots; the first is past tense, the second-to-last is the
//	   present participle, the last is third-person present — mirroring
//	   the reference inflection dictionary's layout.
//
// An inflection is only registered if it differs from what the rule engine
// already produces and actually carries the expected suffix — this keeps
// the table small and limited to genuine irregulars. Malformed lines are
// collected as ErrBadOrthographyLine and skipped; parsing continues.
func LoadTable(r io.Reader) (*Table, []error) {
	t := &Table{
		Plural:      map[string]string{},
		Past:        map[string]string{},
		Comparative: map[string]string{},
		Superlative: map[string]string{},
		PresentPart: map[string]string{},
	}
	var errs []error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parseLine(t, line); err != nil {
			errs = append(errs, ErrBadOrthographyLine{Line: lineNo, Text: line})
		}
	}
	return t, errs
}

func parseLine(t *Table, line string) error {
	first, second, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("missing ':'")
	}
	wordPart := strings.Fields(first)
	if len(wordPart) < 2 || len(wordPart[1]) == 0 {
		return fmt.Errorf("missing word/tag")
	}
	word := wordPart[0]
	tag := wordPart[1][0]

	rawInfl := strings.Split(second, "|")
	inflections := make([]string, 0, len(rawInfl))
	for _, s := range rawInfl {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return fmt.Errorf("empty inflection slot")
		}
		inflections = append(inflections, strings.Trim(fields[0], ",~<!?"))
	}

	switch tag {
	case 'N':
		if len(inflections) < 1 {
			return fmt.Errorf("noun entry missing inflection")
		}
		s := inflections[0]
		if s != word && strings.HasSuffix(s, "s") && s != addSSuffix(word) {
			t.Plural[word] = s
		}
	case 'A':
		if len(inflections) != 2 {
			return fmt.Errorf("adjective entry needs exactly 2 inflections")
		}
		er := inflections[0]
		if er != word && strings.HasSuffix(er, "er") && er != prepForSimpleSuffix(word)+"er" {
			t.Comparative[word] = er
		}
		est := inflections[1]
		if est != word && strings.HasSuffix(est, "est") && est != prepForSimpleSuffix(word)+"est" {
			t.Superlative[word] = est
		}
	case 'V':
		if len(inflections) != 3 && len(inflections) != 4 {
			return fmt.Errorf("verb entry needs 3 or 4 inflections")
		}
		ed := inflections[0]
		if ed != word && strings.HasSuffix(ed, "ed") && ed != prepForSimpleSuffix(word)+"ed" {
			t.Past[word] = ed
		}
		ing := inflections[len(inflections)-2]
		if ing != word && strings.HasSuffix(ing, "ing") {
			want := word + "ing"
			if word == "" || !isIn(word[len(word)-1], yLetters) {
				want = prepForSimpleSuffix(word) + "ing"
			}
			if ing != want {
				t.PresentPart[word] = ing
			}
		}
		s := inflections[len(inflections)-1]
		if s != word && strings.HasSuffix(s, "s") && s != addSSuffix(word) {
			t.Plural[word] = s
		}
	default:
		return fmt.Errorf("unknown tag %q", tag)
	}
	return nil
}
