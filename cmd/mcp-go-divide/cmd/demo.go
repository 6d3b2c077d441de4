package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/sunfmin/mcp-go-divide/pkg/calculator"
)

// demoInputs are the sample (dividend, divisor) pairs shown by the demo command
var demoInputs = []calculator.DivisionRequest{
	calculator.NewDivisionRequest(10, 2),
	calculator.NewDivisionRequest(10, 0),
	calculator.NewDivisionRequest(-10, 2),
	calculator.NewDivisionRequest(10, 3),
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the sample divisions",
	Long:  `Divide 10 by 2, 10 by 0, -10 by 2 and 10 by 3, printing each outcome.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), jsonOutput, displayPrecision(cmd))
	},
}

func init() {
	addOutputFlags(demoCmd)
	rootCmd.AddCommand(demoCmd)
}

func runDemo(w io.Writer, asJSON bool, precision int) error {
	for _, req := range demoInputs {
		if !asJSON {
			fmt.Fprintf(w, "%g / %g => ", req.Dividend(), req.Divisor())
		}
		if err := printOutcome(w, calculator.Divide(req), asJSON, precision); err != nil {
			return err
		}
	}
	return nil
}
