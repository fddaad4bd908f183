package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflabs/pcheck/internal/proof"
)

func init() {
	color.NoColor = true
}

func TestFormatValidProof(t *testing.T) {
	report := proof.NewChecker(proof.DefaultConfig()).Verify("1 cPcQP AX1\n2 P Premise\n3 cQP MP 2 1\n")
	require.Equal(t, proof.StatusValid, report.Status)

	expected := `  --> demo.proof
1 | OK      cPcQP    [AX1]
2 | OK      P    [Premise]
3 | OK      cQP    [MP 2 1]
  = proof valid: 3 lines
`
	assert.Equal(t, expected, Format("demo.proof", report))
}

func TestFormatInvalidProofWithNote(t *testing.T) {
	report := proof.NewChecker(proof.DefaultConfig()).Verify("1 cPcQP AX1\n2 Q MP 1\n")
	require.Equal(t, proof.StatusInvalid, report.Status)

	expected := `1 | OK      cPcQP    [AX1]
2 | INVALID Q    [MP 1]
  = Line 2: bad MP justification format: "MP 1"
  = proof invalid: 1 of 2 lines rejected
`
	assert.Equal(t, expected, Format("", report))
}

func TestFormatIngestionError(t *testing.T) {
	report := proof.NewChecker(proof.DefaultConfig()).Verify("1 cP Premise\n")
	require.Equal(t, proof.StatusError, report.Status)

	expected := `  --> broken.proof
  = Line 1: formula is not a WFF: "cP"
  = proof not checked: Line 1: formula is not a WFF: "cP"
`
	assert.Equal(t, expected, Format("broken.proof", report))
}

func TestFormatAlignsWideLineNumbers(t *testing.T) {
	report := proof.NewChecker(proof.DefaultConfig()).Verify(
		"1 A Premise\n2 A Premise\n3 A Premise\n4 A Premise\n5 A Premise\n" +
			"6 A Premise\n7 A Premise\n8 A Premise\n9 A Premise\n10 A Premise\n")
	require.Equal(t, proof.StatusValid, report.Status)

	out := Format("", report)
	assert.Contains(t, out, " 1 | OK      A    [Premise]\n")
	assert.Contains(t, out, "10 | OK      A    [Premise]\n")
	assert.Contains(t, out, "   = proof valid: 10 lines\n")
}
