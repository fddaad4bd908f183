package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	noColor bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "pcheck [paths...]",
	Short:            "pcheck - a checker for Hilbert-style propositional proofs",
	TraverseChildren: true, // Prioritize subcommands
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'pcheck' is entered
			_ = cmd.Help()
			return
		}
		// Format: pcheck [path1 path2 ...] => behaves like the verify subcommand
		verifyCmd.Run(verifyCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".pcheck.yaml", "Configuration file path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the checker")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(wffCmd)
	rootCmd.AddCommand(axiomsCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(watchCmd)
}
