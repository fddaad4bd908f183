package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prooflabs/pcheck"
	"github.com/prooflabs/pcheck/formatter"
	"github.com/prooflabs/pcheck/internal/proof"
	"github.com/prooflabs/pcheck/verify"
)

var (
	strictCitations  bool
	verifyJsonOutput bool
	outPath          string
	plainOutput      bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [paths...]",
	Short: "Verify proof files, or a proof read from stdin",
	Long: `Checks every line of a proof against the axiom schemas, Modus Ponens,
and Substitution. With no paths (or with "-") the proof is read from stdin.
Directories are searched for .proof files.

Exit codes: 0 valid, 1 at least one proof invalid, 2 input could not be
read as a proof.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		checker, err := newChecker(cmd)
		if err != nil {
			logger.Fatal("Failed to initialize proof checker", zap.Error(err))
		}

		if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
			runStdinVerify(checker)
			return
		}

		runFileVerify(ctx, logger, checker, args)
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&strictCitations, "strict", false, "Reject citations of the current or later lines")
	verifyCmd.Flags().BoolVar(&verifyJsonOutput, "json", false, "Output reports in JSON format")
	verifyCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	verifyCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the raw checker transcript")
}

// newChecker builds a checker from the configuration file, with flags
// taking precedence over file settings.
func newChecker(cmd *cobra.Command) (*proof.Checker, error) {
	config, err := verify.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("strict") {
		config.Strict = strictCitations
	}

	return proof.NewChecker(proof.Config{StrictCitations: config.Strict}), nil
}

func runStdinVerify(checker *proof.Checker) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Error("Error reading stdin", zap.Error(err))
		os.Exit(2)
	}

	report := verify.ProcessSource(checker, data)
	reports := []verify.FileReport{{Path: "<stdin>", Report: report}}

	printReports(logger, reports, verifyJsonOutput, plainOutput, outPath)
	exitByStatus(reports)
}

func runFileVerify(ctx context.Context, logger *zap.Logger, checker *proof.Checker, paths []string) {
	reports, err := verify.ProcessFiles(ctx, logger, checker, paths, verify.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(2)
	}

	printReports(logger, reports, verifyJsonOutput, plainOutput, outPath)
	exitByStatus(reports)
}

// reportView is the JSON shape of a verified file.
type reportView struct {
	Path       string
	Status     string
	Error      string
	Verdicts   []proof.Verdict
	Transcript string
}

func printReports(logger *zap.Logger, reports []verify.FileReport, isJson, isPlain bool, jsonOutput string) {
	if isJson {
		views := make([]reportView, 0, len(reports))
		for _, r := range reports {
			view := reportView{
				Path:       r.Path,
				Status:     r.Report.Status.String(),
				Verdicts:   r.Report.Verdicts,
				Transcript: r.Report.Transcript,
			}
			if r.Report.Err != nil {
				view.Error = r.Report.Err.Error()
			}
			views = append(views, view)
		}

		d, err := json.Marshal(views)
		if err != nil {
			logger.Error("Error marshalling reports to JSON", zap.Error(err))
			return
		}
		if jsonOutput == "" {
			fmt.Println(string(d))
			return
		}
		f, err := os.Create(jsonOutput)
		if err != nil {
			logger.Error("Error creating JSON output file", zap.Error(err))
			return
		}
		defer f.Close()
		if _, err := f.Write(d); err != nil {
			logger.Error("Error writing JSON output file", zap.Error(err))
		}
		return
	}

	if isPlain {
		// the raw transcript, byte for byte; path headers only when
		// several files were checked
		for _, r := range reports {
			if len(reports) > 1 {
				fmt.Printf("%s:\n", r.Path)
			}
			fmt.Print(r.Report.Transcript)
		}
		return
	}

	for _, r := range reports {
		fmt.Println(formatter.Format(r.Path, r.Report))
	}
}

// exitByStatus exits with the worst status across all reports: errors win
// over invalid proofs, invalid proofs over valid ones.
func exitByStatus(reports []verify.FileReport) {
	code := 0
	for _, r := range reports {
		if c := pcheck.ExitCode(r.Report); c > code {
			code = c
		}
	}
	if code != 0 {
		os.Exit(code)
	}
}
