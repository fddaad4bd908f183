package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prooflabs/pcheck/internal/wff"
)

var wffCmd = &cobra.Command{
	Use:   "wff [formulas...]",
	Short: "Check whether formulas are well-formed",
	Long: `Parses each argument as a prefix-notation formula and prints its
infix rendering. Example) pcheck wff cPcQP ccnPnQcQP`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide formulas to check")
			os.Exit(1)
		}

		bad := 0
		for _, arg := range args {
			f, err := wff.Parse(arg)
			if err != nil {
				fmt.Println(err)
				bad++
				continue
			}
			fmt.Printf("%s: %s\n", arg, f.Pretty())
		}

		if bad > 0 {
			os.Exit(1)
		}
	},
}
