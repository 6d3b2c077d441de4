package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sunfmin/mcp-go-divide/pkg/config"
	"github.com/sunfmin/mcp-go-divide/pkg/logger"
)

// errFailedOutcome marks a command that already printed a failure outcome
var errFailedOutcome = errors.New("operation failed")

var (
	cfgFile string
	verbose bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "mcp-go-divide",
	Short: "Divide two numbers with structured division-by-zero errors",
	Long: `mcp-go-divide divides two numbers and reports division by zero as a
structured failure instead of crashing.

Commands:
  divide   - divide two numbers and print the outcome
  demo     - run the sample divisions
  serve    - expose the divide tool over MCP stdio`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFailedOutcome) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (.toml or .yaml, default: $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var (
		loaded *config.Config
		err    error
	)
	if cfgFile != "" {
		loaded, err = config.Load(cfgFile)
	} else {
		loaded, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = *loaded

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logger.Configure(level, os.Stderr)
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
