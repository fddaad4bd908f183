package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prooflabs/pcheck/formatter"
	"github.com/prooflabs/pcheck/verify"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-verify proof files whenever they change",
	Long: `Watches the given directories recursively and re-checks a .proof file
every time it is written, printing the fresh report. Stops on Ctrl-C.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directory paths to watch")
			os.Exit(1)
		}

		checker, err := newChecker(cmd)
		if err != nil {
			logger.Fatal("Failed to initialize proof checker", zap.Error(err))
		}

		watcher, err := verify.NewWatcher(logger, checker, func(r verify.FileReport) {
			fmt.Println(formatter.Format(r.Path, r.Report))
		})
		if err != nil {
			logger.Fatal("Failed to initialize watcher", zap.Error(err))
		}
		if err := watcher.Watch(args...); err != nil {
			logger.Fatal("Failed to watch paths", zap.Error(err))
		}
		defer watcher.Stop()

		fmt.Printf("Watching %s for changes. Ctrl-C to stop.\n", strings.Join(args, ", "))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}
