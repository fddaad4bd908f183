package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prooflabs/pcheck/internal/proof"
)

// stubGenerator replays canned responses and records every prompt it saw.
// When the responses run out the last one repeats.
type stubGenerator struct {
	responses []string
	err       error
	prompts   []string
}

func (s *stubGenerator) GenerateProof(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	i := len(s.prompts) - 1
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	return s.responses[i], nil
}

func newTestOracle(generator Generator, maxAttempts int) *Oracle {
	checker := proof.NewChecker(proof.DefaultConfig())
	return NewWithGenerator(generator, checker, maxAttempts)
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()
	prompt := BuildPrompt([]string{"cPQ", "P"}, "Q")

	assert.Contains(t, prompt, "AX1: cAcBA")
	assert.Contains(t, prompt, "AX2: ccAcBCccABcAC")
	assert.Contains(t, prompt, "AX3: ccnBnAcAB")
	assert.Contains(t, prompt, "Premises: cPQ, P")
	assert.Contains(t, prompt, "Goal: Q")
}

func TestBuildRetryPrompt(t *testing.T) {
	t.Parallel()
	prompt := BuildRetryPrompt([]string{"P"}, "Q", "1 P Premise", "Line 1: OK: P    [Premise]")

	assert.Contains(t, prompt, "previous attempt was rejected")
	assert.Contains(t, prompt, "1 P Premise")
	assert.Contains(t, prompt, "Line 1: OK: P    [Premise]")
	assert.Contains(t, prompt, "Goal: Q")
}

func TestExtractProof(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		response string
		expected string
	}{
		{
			name:     "bare proof",
			response: "1 P Premise\n2 cPcQP AX1\n3 cQP MP 1 2",
			expected: "1 P Premise\n2 cPcQP AX1\n3 cQP MP 1 2\n",
		},
		{
			name:     "markdown fences",
			response: "```\n1 P Premise\n2 cPcQP AX1\n```",
			expected: "1 P Premise\n2 cPcQP AX1\n",
		},
		{
			name:     "surrounding prose",
			response: "Here is the proof:\n\n1 P Premise\n2 cPcQP AX1\n\nThis uses AX1.",
			expected: "1 P Premise\n2 cPcQP AX1\n",
		},
		{
			name:     "longest block wins",
			response: "1 P Premise\n\n1 P Premise\n2 cPcQP AX1\n3 cQP MP 1 2\n",
			expected: "1 P Premise\n2 cPcQP AX1\n3 cQP MP 1 2\n",
		},
		{
			name:     "indented lines are trimmed",
			response: "  1 P Premise\n  2 cPcQP AX1",
			expected: "1 P Premise\n2 cPcQP AX1\n",
		},
		{
			name:     "no numbered lines",
			response: "I could not find a proof, sorry.",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ExtractProof(tt.response))
		})
	}
}

func TestProveFirstTry(t *testing.T) {
	t.Parallel()
	generator := &stubGenerator{responses: []string{
		"1 cPQ Premise\n2 P Premise\n3 Q MP 2 1\n",
	}}
	oracle := newTestOracle(generator, 3)

	result, err := oracle.Prove(context.Background(), []string{"cPQ", "P"}, "Q")

	require.NoError(t, err)
	assert.True(t, result.Proved)
	assert.Len(t, result.Attempts, 1)
	assert.Equal(t, "1 cPQ Premise\n2 P Premise\n3 Q MP 2 1\n", result.Proof)
	assert.Empty(t, result.Attempts[0].Flaw)
}

func TestProveRetriesWithFeedback(t *testing.T) {
	t.Parallel()
	generator := &stubGenerator{responses: []string{
		"1 cPQ Premise\n2 Q MP 1 1\n",
		"1 cPQ Premise\n2 P Premise\n3 Q MP 2 1\n",
	}}
	oracle := newTestOracle(generator, 3)

	result, err := oracle.Prove(context.Background(), []string{"cPQ", "P"}, "Q")

	require.NoError(t, err)
	assert.True(t, result.Proved)
	assert.Len(t, result.Attempts, 2)
	assert.False(t, result.Attempts[0].Report.Valid())

	require.Len(t, generator.prompts, 2)
	assert.Contains(t, generator.prompts[1], "previous attempt was rejected")
	assert.Contains(t, generator.prompts[1], "Line 2: INVALID: Q    [MP 1 1]")
}

func TestProveGivesUp(t *testing.T) {
	t.Parallel()
	generator := &stubGenerator{responses: []string{
		"1 cPQ Premise\n2 Q MP 1 1\n",
	}}
	oracle := newTestOracle(generator, 2)

	result, err := oracle.Prove(context.Background(), []string{"cPQ", "P"}, "Q")

	require.NoError(t, err)
	assert.False(t, result.Proved)
	assert.Len(t, result.Attempts, 2)
	assert.Empty(t, result.Proof)
}

func TestProveRejectsUndeclaredPremise(t *testing.T) {
	t.Parallel()
	// checker-valid, but cPQ was never given
	generator := &stubGenerator{responses: []string{
		"1 cPQ Premise\n2 P Premise\n3 Q MP 2 1\n",
	}}
	oracle := newTestOracle(generator, 1)

	result, err := oracle.Prove(context.Background(), []string{"P"}, "Q")

	require.NoError(t, err)
	assert.False(t, result.Proved)
	require.Len(t, result.Attempts, 1)
	assert.True(t, result.Attempts[0].Report.Valid())
	assert.Contains(t, result.Attempts[0].Flaw, "not among the given premises")
}

func TestProveRequiresGoal(t *testing.T) {
	t.Parallel()
	generator := &stubGenerator{responses: []string{
		"1 P Premise\n",
	}}
	oracle := newTestOracle(generator, 1)

	result, err := oracle.Prove(context.Background(), []string{"P"}, "Q")

	require.NoError(t, err)
	assert.False(t, result.Proved)
	require.Len(t, result.Attempts, 1)
	assert.Contains(t, result.Attempts[0].Flaw, "ends at P, not at the goal Q")
}

func TestProveHandlesUselessResponse(t *testing.T) {
	t.Parallel()
	generator := &stubGenerator{responses: []string{
		"I could not find a proof, sorry.",
	}}
	oracle := newTestOracle(generator, 1)

	result, err := oracle.Prove(context.Background(), []string{"P"}, "P")

	require.NoError(t, err)
	assert.False(t, result.Proved)
	require.Len(t, result.Attempts, 1)
	assert.Equal(t, proof.StatusError, result.Attempts[0].Report.Status)
}

func TestProveValidatesInputs(t *testing.T) {
	t.Parallel()
	generator := &stubGenerator{responses: []string{"1 P Premise\n"}}
	oracle := newTestOracle(generator, 1)

	_, err := oracle.Prove(context.Background(), []string{"x"}, "P")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "premise 1")

	_, err = oracle.Prove(context.Background(), []string{"P"}, "cP")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "goal")

	// no model calls for malformed inputs
	assert.Empty(t, generator.prompts)
}

func TestProveReturnsGeneratorError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("quota exceeded")
	generator := &stubGenerator{err: wantErr}
	oracle := newTestOracle(generator, 3)

	result, err := oracle.Prove(context.Background(), []string{"P"}, "P")

	assert.ErrorIs(t, err, wantErr)
	require.NotNil(t, result)
	assert.Empty(t, result.Attempts)
}

func TestNewWithGeneratorClampsAttempts(t *testing.T) {
	t.Parallel()
	generator := &stubGenerator{responses: []string{
		"1 cPQ Premise\n2 Q MP 1 1\n",
	}}
	oracle := newTestOracle(generator, 0)

	result, err := oracle.Prove(context.Background(), []string{"cPQ"}, "Q")

	require.NoError(t, err)
	assert.Len(t, result.Attempts, 1)
}
