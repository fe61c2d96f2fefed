package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ErrBadDictionaryFormat wraps a failure to parse a dictionary file, naming
// the offending path.
type ErrBadDictionaryFormat struct {
	Path string
	Err  error
}

func (e ErrBadDictionaryFormat) Error() string {
	return fmt.Sprintf("dictionary: bad format in %s: %v", e.Path, e.Err)
}

func (e ErrBadDictionaryFormat) Unwrap() error { return e.Err }

// LoadFile reads a dictionary file: a JSON object mapping "/"-joined chord
// RTFCRE strings (e.g. "S/T/-R") to a translation string. Every entry is
// set into d.
func LoadFile(d *Dictionary, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return ErrBadDictionaryFormat{Path: path, Err: err}
	}
	for k, v := range raw {
		d.Set(Key(strings.Split(k, "/")), v)
	}
	return nil
}

// LoadStack builds a single Dictionary from multiple files, loaded in
// order. Later files override earlier ones on key collision, so the last
// path in the list wins — the same "more specific overrides less specific"
// convention used for layering user dictionaries over the default one.
func LoadStack(paths ...string) (*Dictionary, error) {
	d := New()
	for _, p := range paths {
		if err := LoadFile(d, p); err != nil {
			return nil, err
		}
	}
	return d, nil
}
