package proof

import "github.com/prooflabs/pcheck/internal/wff"

// Line is a single proof step as ingested from the input.
type Line struct {
	Number        int
	Formula       string      // formula exactly as written, whitespace-free
	Parsed        wff.Formula // parsed tree, populated before checking starts
	Justification string      // trimmed justification text, possibly empty
}

// Table holds an ingested proof. Lines are stored in input order and are
// numbered 1..Len() with no gaps, so Lines[i] always has Number i+1.
type Table struct {
	Lines []Line
}

// Len returns the number of proof lines.
func (t *Table) Len() int {
	return len(t.Lines)
}

// Formula returns the parsed formula of line n, or nil when n is outside
// the table.
func (t *Table) Formula(n int) wff.Formula {
	if n < 1 || n > len(t.Lines) {
		return nil
	}
	return t.Lines[n-1].Parsed
}
