package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prooflabs/pcheck/internal/oracle"
	"github.com/prooflabs/pcheck/internal/proof"
	"github.com/prooflabs/pcheck/verify"
)

var (
	premisesFlag string
	goalFlag     string
	modelFlag    string
	maxAttempts  int
)

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Ask a Gemini model for a proof and verify it locally",
	Long: `Sends the premises and goal to a Gemini model, extracts the candidate
proof from the response, and verifies it with the local checker. Rejected
candidates are sent back with the checker transcript, up to the attempt
limit. Requires GEMINI_API_KEY.

Example) pcheck prove --premises cPQ,P --goal Q`,
	Run: func(cmd *cobra.Command, args []string) {
		if goalFlag == "" {
			fmt.Println("error: Please provide a goal formula with --goal")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		config, err := verify.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if cmd.Flags().Changed("model") {
			config.Prove.Model = modelFlag
		}
		if cmd.Flags().Changed("max-attempts") {
			config.Prove.MaxAttempts = maxAttempts
		}

		checker := proof.NewChecker(proof.Config{StrictCitations: config.Strict})
		o, err := oracle.New(ctx, checker, oracle.Options{
			Model:       config.Prove.Model,
			MaxAttempts: config.Prove.MaxAttempts,
		})
		if err != nil {
			logger.Fatal("Failed to initialize the oracle", zap.Error(err))
		}

		result, err := o.Prove(ctx, splitPremises(premisesFlag), goalFlag)
		if err != nil {
			logger.Error("Proof generation failed", zap.Error(err))
			os.Exit(2)
		}

		printProveResult(result)
		if !result.Proved {
			os.Exit(1)
		}
	},
}

func init() {
	proveCmd.Flags().StringVar(&premisesFlag, "premises", "", "Comma-separated list of premise formulas")
	proveCmd.Flags().StringVar(&goalFlag, "goal", "", "Goal formula to prove")
	proveCmd.Flags().StringVar(&modelFlag, "model", "", "Gemini model (default from config)")
	proveCmd.Flags().IntVar(&maxAttempts, "max-attempts", 3, "Number of generate-verify rounds")
}

func splitPremises(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	premises := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			premises = append(premises, p)
		}
	}
	return premises
}

func printProveResult(result *oracle.Result) {
	for i, attempt := range result.Attempts {
		fmt.Printf("Attempt %d:\n", i+1)
		if attempt.Candidate == "" {
			fmt.Println("(no proof block in the model response)")
		} else {
			fmt.Print(attempt.Candidate)
		}
		fmt.Print(attempt.Report.Transcript)
		if attempt.Flaw != "" {
			fmt.Println(attempt.Flaw)
		}
		fmt.Println()
	}

	if result.Proved {
		fmt.Printf("Proved %s in %d attempt(s).\n", result.Goal, len(result.Attempts))
	} else {
		fmt.Printf("Could not prove %s after %d attempt(s).\n", result.Goal, len(result.Attempts))
	}
}
