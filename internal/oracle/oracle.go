// Package oracle asks a generative model for candidate proofs and checks
// every candidate locally. The model is free to answer anything; nothing it
// says is trusted until the checker accepts the proof, the premises match
// the ones given, and the last line is the goal.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/prooflabs/pcheck/internal/proof"
	"github.com/prooflabs/pcheck/internal/wff"
)

const defaultModel = "gemini-2.5-flash"

// Generator produces a raw model response for a prompt.
type Generator interface {
	GenerateProof(ctx context.Context, prompt string) (string, error)
}

// geminiGenerator calls the Gemini API through the genai client.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) GenerateProof(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return result.Text(), nil
}

// Options configures the Gemini-backed oracle.
type Options struct {
	// APIKey overrides the GEMINI_API_KEY environment variable.
	APIKey string
	// Model names the Gemini model; empty selects the default.
	Model string
	// MaxAttempts bounds the generate-verify rounds; values below 1 mean 1.
	MaxAttempts int
}

// Oracle drives the generate-verify loop.
type Oracle struct {
	generator   Generator
	checker     *proof.Checker
	maxAttempts int
}

// New builds an oracle backed by the Gemini API.
func New(ctx context.Context, checker *proof.Checker, opts Options) (*Oracle, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required: set GEMINI_API_KEY")
	}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return NewWithGenerator(&geminiGenerator{client: client, model: model}, checker, opts.MaxAttempts), nil
}

// NewWithGenerator builds an oracle on any Generator implementation.
func NewWithGenerator(generator Generator, checker *proof.Checker, maxAttempts int) *Oracle {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Oracle{
		generator:   generator,
		checker:     checker,
		maxAttempts: maxAttempts,
	}
}

// Attempt records one generate-verify round.
type Attempt struct {
	// Candidate is the proof block extracted from the model response.
	Candidate string
	// Report is the checker's verdict on the candidate.
	Report *proof.Report
	// Flaw explains a rejection the checker cannot see, such as a premise
	// the model invented or a proof that stops short of the goal.
	Flaw string
}

// Result collects every attempt of a prove run.
type Result struct {
	Premises []string
	Goal     string
	Attempts []Attempt
	// Proof holds the accepted candidate when Proved is true.
	Proof  string
	Proved bool
}

// Prove asks the model for a proof of goal from premises, at most
// maxAttempts times. Each rejected candidate's transcript is fed back so
// the model can correct itself. A run that exhausts its attempts is not an
// error; the caller inspects Proved.
func (o *Oracle) Prove(ctx context.Context, premises []string, goal string) (*Result, error) {
	given := make([]wff.Formula, len(premises))
	for i, premise := range premises {
		f, err := wff.Parse(premise)
		if err != nil {
			return nil, fmt.Errorf("premise %d: %w", i+1, err)
		}
		given[i] = f
	}
	goalFormula, err := wff.Parse(goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	result := &Result{Premises: premises, Goal: goal}
	prompt := BuildPrompt(premises, goal)

	for len(result.Attempts) < o.maxAttempts {
		raw, err := o.generator.GenerateProof(ctx, prompt)
		if err != nil {
			return result, err
		}

		candidate := ExtractProof(raw)
		report := o.checker.Verify(candidate)
		flaw := ""
		if report.Valid() {
			flaw = vet(report, given, goalFormula)
		}
		result.Attempts = append(result.Attempts, Attempt{
			Candidate: candidate,
			Report:    report,
			Flaw:      flaw,
		})

		if report.Valid() && flaw == "" {
			result.Proof = candidate
			result.Proved = true
			return result, nil
		}

		prompt = BuildRetryPrompt(premises, goal, candidate, rejection(report, flaw))
	}

	return result, nil
}

// vet checks what the line checker cannot: every Premise line must be one
// of the given premises, and the proof must end at the goal.
func vet(report *proof.Report, given []wff.Formula, goal wff.Formula) string {
	for _, verdict := range report.Verdicts {
		if verdict.Rule != proof.RulePremise {
			continue
		}
		f, err := wff.Parse(verdict.Formula)
		if err != nil {
			continue
		}
		declared := false
		for _, g := range given {
			if wff.Equal(f, g) {
				declared = true
				break
			}
		}
		if !declared {
			return fmt.Sprintf("line %d cites %s as a premise, but it is not among the given premises", verdict.Line, verdict.Formula)
		}
	}

	if len(report.Verdicts) == 0 {
		return "the proof is empty"
	}
	last := report.Verdicts[len(report.Verdicts)-1]
	lastFormula, err := wff.Parse(last.Formula)
	if err != nil || !wff.Equal(lastFormula, goal) {
		return fmt.Sprintf("the proof ends at %s, not at the goal %s", last.Formula, goal.String())
	}

	return ""
}

// rejection renders the feedback sent back to the model after a failed
// attempt.
func rejection(report *proof.Report, flaw string) string {
	if flaw != "" {
		return report.Transcript + flaw + "\n"
	}
	return report.Transcript
}
