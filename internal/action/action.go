// Package action defines the Formatter's unit of output: a single edit
// instruction plus the cursor-side text state it leaves behind, used both
// to render keystrokes and to diff against a previous rendering when a
// translation is revised.
package action

// Action carries two kinds of fields: state fields describe the text
// context a future Action will be built from, instruction fields describe
// what to actually emit.
type Action struct {
	// State fields.
	Attach     bool
	Glue       bool
	Word       string
	Capitalize bool

	// Instruction fields.
	Text    string
	Replace string
	Combo   string
	Command string
}

// CopyState returns an Action carrying a's state fields forward with empty
// instruction fields — the starting point for deriving the next Action in
// a sequence.
func (a Action) CopyState() Action {
	return Action{
		Attach:     a.Attach,
		Glue:       a.Glue,
		Word:       a.Word,
		Capitalize: a.Capitalize,
	}
}
