package proof

import (
	"fmt"
	"strings"

	"github.com/prooflabs/pcheck/internal/wff"
)

// Config controls optional checking behavior.
type Config struct {
	// StrictCitations restricts MP and Substitution to cite only lines
	// strictly earlier than the one being justified. The default permits
	// citing any line of the table, forward references included, which
	// matches the classic whole-table behavior of this checker family.
	StrictCitations bool
}

// DefaultConfig returns the permissive configuration.
func DefaultConfig() Config {
	return Config{}
}

// Checker verifies proofs. Each Verify call builds its own table, so one
// Checker may be shared across goroutines. The zero Checker uses the
// default configuration.
type Checker struct {
	config Config
}

// NewChecker creates a Checker with the given configuration.
func NewChecker(config Config) *Checker {
	return &Checker{config: config}
}

// Verify checks input as a complete proof and reports a verdict for every
// line. Ingestion failures (bad numbering, missing formulas, non-WFF
// formulas, empty input) yield a StatusError report whose transcript
// carries the diagnostic; otherwise every line is checked and the status
// is StatusValid or StatusInvalid.
func (c *Checker) Verify(input string) *Report {
	table, err := Read(input)
	if err != nil {
		return errorReport(err)
	}
	if err := table.ParseFormulas(); err != nil {
		return errorReport(err)
	}
	r := &run{config: c.config, table: table}
	return r.check()
}

func errorReport(err error) *Report {
	return &Report{
		Status:     StatusError,
		Err:        err,
		Transcript: err.Error() + "\n",
	}
}

// run holds the state of checking one proof.
type run struct {
	config Config
	table  *Table
}

func (r *run) check() *Report {
	var sb strings.Builder
	verdicts := make([]Verdict, 0, r.table.Len())
	allOK := true
	for i := range r.table.Lines {
		line := &r.table.Lines[i]
		v := r.checkLine(line)
		if v.Note != "" {
			sb.WriteString(v.Note)
			sb.WriteByte('\n')
		}
		if v.OK {
			fmt.Fprintf(&sb, "Line %d: OK: %s    [%s]\n", line.Number, line.Formula, line.Justification)
		} else {
			fmt.Fprintf(&sb, "Line %d: INVALID: %s    [%s]\n", line.Number, line.Formula, line.Justification)
			allOK = false
		}
		verdicts = append(verdicts, v)
	}

	status := StatusValid
	if !allOK {
		status = StatusInvalid
	}
	return &Report{
		Status:     status,
		Verdicts:   verdicts,
		Transcript: sb.String(),
	}
}

// checkLine dispatches on the justification keyword. Premise and the
// axiom names must match the whole justification; MP and Substitution
// match as prefixes and parse their arguments from the remainder. All
// keywords are case-insensitive.
func (r *run) checkLine(line *Line) Verdict {
	v := Verdict{
		Line:          line.Number,
		Formula:       line.Formula,
		Justification: line.Justification,
	}
	just := line.Justification
	switch {
	case strings.EqualFold(just, "Premise"):
		v.Rule = RulePremise
		v.OK = true
	case strings.EqualFold(just, "AX1"):
		v.Rule = RuleAxiom1
		v.OK = wff.Matches(Axiom1, line.Parsed)
	case strings.EqualFold(just, "AX2"):
		v.Rule = RuleAxiom2
		v.OK = wff.Matches(Axiom2, line.Parsed)
	case strings.EqualFold(just, "AX3"):
		v.Rule = RuleAxiom3
		v.OK = wff.Matches(Axiom3, line.Parsed)
	case hasFoldPrefix(just, "MP"):
		v.Rule = RuleModusPonens
		var i, j int
		if n, _ := fmt.Sscanf(just[len("MP"):], "%d %d", &i, &j); n < 2 {
			v.Note = fmt.Sprintf("Line %d: bad MP justification format: \"%s\"", line.Number, just)
		} else {
			v.OK = r.modusPonens(line.Parsed, line.Number, i, j)
		}
	case hasFoldPrefix(just, "Substitution"):
		v.Rule = RuleSubstitution
		v.OK = r.substitution(line.Parsed, line.Number, just[len("Substitution"):])
	default:
		v.Rule = RuleNone
		v.Note = fmt.Sprintf("Line %d: unknown justification: \"%s\"", line.Number, just)
	}
	return v
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
