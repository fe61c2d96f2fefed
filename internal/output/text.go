package output

import (
	"fmt"
	"io"
	"strings"
)

// TextSink accumulates rendered text in memory by applying backspaces
// against a running buffer — used by scenario tests and by any embedder
// that wants the net visible text rather than a raw keystroke stream.
// Key combinations and engine commands are recorded separately since they
// have no textual representation.
type TextSink struct {
	buf      []rune
	Combos   []string
	Commands []string
}

func NewTextSink() *TextSink { return &TextSink{} }

func (s *TextSink) SendBackspaces(n int) {
	if n > len(s.buf) {
		n = len(s.buf)
	}
	s.buf = s.buf[:len(s.buf)-n]
}

func (s *TextSink) SendString(str string) {
	s.buf = append(s.buf, []rune(str)...)
}

func (s *TextSink) SendKeyCombination(combo string) {
	s.Combos = append(s.Combos, combo)
}

func (s *TextSink) SendEngineCommand(command string) {
	s.Commands = append(s.Commands, command)
}

// Text returns the net visible buffer.
func (s *TextSink) Text() string { return string(s.buf) }

// StdoutSink prints each instruction as its own line — there's no real
// keyboard-emulation backend behind this sink, so backspaces, text,
// combos, and commands are reported rather than actually typed.
type StdoutSink struct {
	w io.Writer
}

func NewStdoutSink(w io.Writer) *StdoutSink { return &StdoutSink{w: w} }

func (s *StdoutSink) SendBackspaces(n int) {
	fmt.Fprintf(s.w, "BACKSPACE %d\n", n)
}

func (s *StdoutSink) SendString(str string) {
	fmt.Fprintf(s.w, "TEXT %q\n", str)
}

func (s *StdoutSink) SendKeyCombination(combo string) {
	fmt.Fprintf(s.w, "COMBO %s\n", strings.TrimSpace(combo))
}

func (s *StdoutSink) SendEngineCommand(command string) {
	fmt.Fprintf(s.w, "COMMAND %s\n", command)
}
