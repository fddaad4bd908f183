package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prooflabs/pcheck/internal/proof"
)

var axiomsCmd = &cobra.Command{
	Use:   "axioms",
	Short: "Print the axiom schemas",
	Run: func(cmd *cobra.Command, args []string) {
		for _, axiom := range proof.Axioms() {
			fmt.Printf("%s: %s = %s\n", axiom.Name, axiom.Schema.String(), axiom.Schema.Pretty())
		}
	},
}
