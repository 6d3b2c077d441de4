package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/sunfmin/mcp-go-divide/pkg/calculator"
	"github.com/sunfmin/mcp-go-divide/pkg/types"
)

var (
	jsonOutput bool
	precision  int
)

var divideCmd = &cobra.Command{
	Use:   "divide <dividend> <divisor>",
	Short: "Divide two numbers",
	Long: `Divide two numbers and print the outcome.

Exits with status 1 when the input is not numeric or the divisor is zero.
Negative numbers need a "--" separator: mcp-go-divide divide -- -10 2`,
	Args: cobra.ExactArgs(2),
	RunE: runDivide,
}

func init() {
	addOutputFlags(divideCmd)
	rootCmd.AddCommand(divideCmd)
}

func addOutputFlags(c *cobra.Command) {
	c.Flags().BoolVar(&jsonOutput, "json", false, "Print outcomes as JSON")
	c.Flags().IntVar(&precision, "precision", -1, "Decimal places for printed numbers (-1 for shortest, default from config)")
}

// displayPrecision prefers an explicit --precision over the config value
func displayPrecision(c *cobra.Command) int {
	if c.Flags().Changed("precision") {
		return precision
	}
	return cfg.PrecisionOrDefault()
}

func runDivide(cmd *cobra.Command, args []string) error {
	var outcome types.Outcome

	req, err := calculator.ParseDivisionRequest(args[0], args[1])
	if err != nil {
		outcome = types.Failure(types.ErrorDetails{
			Code:    types.CodeInvalidInput,
			Message: err.Error(),
		})
	} else {
		outcome = calculator.Divide(req)
	}

	if err := printOutcome(cmd.OutOrStdout(), outcome, jsonOutput, displayPrecision(cmd)); err != nil {
		return err
	}
	if !outcome.OK() {
		return errFailedOutcome
	}
	return nil
}

func printOutcome(w io.Writer, outcome types.Outcome, asJSON bool, precision int) error {
	if asJSON {
		b, err := outcome.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding outcome: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	_, err := fmt.Fprintln(w, outcome.Format(precision))
	return err
}
