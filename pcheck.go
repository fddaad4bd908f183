// Package pcheck verifies linear Hilbert-style proofs in classical
// propositional logic, using the Lukasiewicz-Church (P2) axiom system.
//
// A proof is plain text with one numbered step per line:
//
//	1 cPcQP AX1
//	2 P Premise
//	3 cQP MP 2 1
//
// Formulas are written in Polish prefix notation ('c' implication, 'n'
// negation, 'A'..'Z' atoms). Verify checks every line against its stated
// justification and returns a Report carrying a per-line verdict, the
// canonical transcript, and an overall status. Verification is purely
// syntactic; nothing is ever derived on the caller's behalf.
package pcheck

import (
	"fmt"
	"io"
	"os"

	"github.com/prooflabs/pcheck/internal/proof"
	"github.com/prooflabs/pcheck/internal/wff"
)

// Result vocabulary, re-exported so that callers need only this package.
type (
	Report  = proof.Report
	Verdict = proof.Verdict
	Status  = proof.Status
	Config  = proof.Config
)

const (
	StatusValid   = proof.StatusValid
	StatusInvalid = proof.StatusInvalid
	StatusError   = proof.StatusError
)

// Ingestion failure classes. A Report with StatusError wraps one of these
// in its Err field.
var (
	ErrEmptyProof     = proof.ErrEmptyProof
	ErrBadLineNumber  = proof.ErrBadLineNumber
	ErrMissingFormula = proof.ErrMissingFormula
	ErrNonConsecutive = proof.ErrNonConsecutive
	ErrNotWFF         = proof.ErrNotWFF
)

// DefaultConfig returns the permissive configuration used by Verify.
func DefaultConfig() Config {
	return proof.DefaultConfig()
}

// Verify checks input as a complete proof using the default
// configuration. It never returns nil.
func Verify(input string) *Report {
	return VerifyWith(DefaultConfig(), input)
}

// VerifyWith checks input as a complete proof with an explicit
// configuration.
func VerifyWith(config Config, input string) *Report {
	return proof.NewChecker(config).Verify(input)
}

// VerifyReader reads all of r and verifies the content as one proof.
func VerifyReader(config Config, r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read proof: %w", err)
	}
	return VerifyWith(config, string(data)), nil
}

// VerifyFile reads the named file and verifies it as one proof.
func VerifyFile(config Config, path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read proof %s: %w", path, err)
	}
	return VerifyWith(config, string(data)), nil
}

// IsWFF reports whether s is a single well-formed formula.
func IsWFF(s string) bool {
	return wff.IsWFF(s)
}

// ExitCode maps a report onto the conventional process exit code:
// 0 for a valid proof, 1 for an invalid one, 2 when the input could not
// be checked at all.
func ExitCode(r *Report) int {
	switch r.Status {
	case StatusValid:
		return 0
	case StatusInvalid:
		return 1
	default:
		return 2
	}
}
