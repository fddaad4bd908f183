package proof

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prooflabs/pcheck/internal/wff"
)

const spaceCutset = " \t\v\f\r"

// Read ingests raw proof text into a Table.
//
// Each proof line has the form
//
//	<line-number> <formula> <justification...>
//
// The formula is the first whitespace-free token after the number and the
// justification is everything after it, trimmed, possibly empty. Blank
// lines and lines whose first non-space character is '#' are skipped.
// Numbering must start at 1 and increase by 1 per proof line.
//
// A failure is reported as a *LineError wrapping one of the sentinel
// classes. Formulas are not parsed here; ParseFormulas does that in a
// second pass so that the whole table is present before checking starts.
func Read(input string) (*Table, error) {
	table := &Table{}
	expected := 1
	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		rest := strings.TrimLeft(line, spaceCutset)
		if rest == "" || rest[0] == '#' {
			continue
		}

		lineno, width, ok := leadingInt(rest)
		if !ok {
			return nil, &LineError{
				Raw: line,
				Err: ErrBadLineNumber,
				Msg: fmt.Sprintf("Bad input line (missing line number): %s", line),
			}
		}
		rest = strings.TrimLeft(rest[width:], spaceCutset)
		if rest == "" {
			return nil, &LineError{
				Line: lineno,
				Raw:  line,
				Err:  ErrMissingFormula,
				Msg:  fmt.Sprintf("Missing formula on line %d", lineno),
			}
		}

		formula := rest
		just := ""
		if end := strings.IndexAny(rest, spaceCutset); end >= 0 {
			formula = rest[:end]
			just = strings.Trim(rest[end:], spaceCutset)
		}

		if lineno != expected {
			return nil, &LineError{
				Line: lineno,
				Raw:  line,
				Err:  ErrNonConsecutive,
				Msg: fmt.Sprintf(
					"Line numbers must be consecutive starting at 1 (expected %d but got %d)",
					expected, lineno),
			}
		}
		expected++

		table.Lines = append(table.Lines, Line{
			Number:        lineno,
			Formula:       formula,
			Justification: just,
		})
	}
	if table.Len() == 0 {
		return nil, &LineError{
			Err: ErrEmptyProof,
			Msg: "No proof lines read.",
		}
	}
	return table, nil
}

// ParseFormulas parses every line's formula, aborting on the first one
// that is not a WFF. The whole table is validated before any
// justification is checked, so a justification may cite any line.
func (t *Table) ParseFormulas() error {
	for i := range t.Lines {
		line := &t.Lines[i]
		f, err := wff.Parse(line.Formula)
		if err != nil {
			return &LineError{
				Line: line.Number,
				Raw:  line.Formula,
				Err:  ErrNotWFF,
				Msg:  fmt.Sprintf("Line %d: formula is not a WFF: \"%s\"", line.Number, line.Formula),
			}
		}
		line.Parsed = f
	}
	return nil
}

// leadingInt parses the decimal integer at the start of s, returning its
// value and the number of bytes it occupies.
func leadingInt(s string) (val, width int, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, 0, false
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, false
	}
	return v, i, true
}
