package proof

import "fmt"

// Status classifies the outcome of verifying a proof.
type Status int

const (
	// StatusValid means every line was justified.
	StatusValid Status = iota
	// StatusInvalid means at least one line failed its check.
	StatusInvalid
	// StatusError means the input could not be ingested as a proof, so no
	// line-by-line checking happened.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "Valid"
	case StatusInvalid:
		return "Invalid"
	case StatusError:
		return "Error"
	default:
		return "?"
	}
}

// Rule identifies which justification form a line used.
type Rule int

const (
	// RuleNone marks a justification that matched no known form.
	RuleNone Rule = iota
	RulePremise
	RuleAxiom1
	RuleAxiom2
	RuleAxiom3
	RuleModusPonens
	RuleSubstitution
)

func (r Rule) String() string {
	switch r {
	case RulePremise:
		return "Premise"
	case RuleAxiom1:
		return "AX1"
	case RuleAxiom2:
		return "AX2"
	case RuleAxiom3:
		return "AX3"
	case RuleModusPonens:
		return "MP"
	case RuleSubstitution:
		return "Substitution"
	default:
		return "?"
	}
}

// Verdict is the outcome of checking a single proof line.
type Verdict struct {
	Line          int
	Formula       string // formula exactly as written
	Justification string
	Rule          Rule
	OK            bool
	Note          string // diagnostic preceding an INVALID verdict, if any
}

// Report is the complete result of verifying one proof.
//
// For StatusError, Err holds the classified ingestion failure and
// Verdicts is empty. Otherwise every proof line has a verdict, in order,
// and Err is nil. Transcript always carries the canonical checker output,
// one message per line, regardless of status.
type Report struct {
	Status     Status
	Err        error
	Verdicts   []Verdict
	Transcript string
}

// Valid reports whether every line checked out.
func (r *Report) Valid() bool {
	return r.Status == StatusValid
}

// Rejected counts the lines that failed their check.
func (r *Report) Rejected() int {
	n := 0
	for _, v := range r.Verdicts {
		if !v.OK {
			n++
		}
	}
	return n
}

// Summary returns a one-line human-readable summary of the report.
func (r *Report) Summary() string {
	switch r.Status {
	case StatusValid:
		return fmt.Sprintf("proof valid: %d lines", len(r.Verdicts))
	case StatusInvalid:
		return fmt.Sprintf("proof invalid: %d of %d lines rejected", r.Rejected(), len(r.Verdicts))
	case StatusError:
		return "proof not checked: " + r.Err.Error()
	default:
		return "?"
	}
}
