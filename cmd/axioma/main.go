package main

import (
	"fmt"
	"os"

	"github.com/rosatisoft/axioma-criterion-engine/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "axioma",
	Short: "Axioma - guided decision discernment engine",
	Long: `Axioma turns a free-form statement about a pending decision into a
normalized record scored across three axes: Foundation (what is factually
true), Context (constraints and alternatives), and Principle (purpose and
values). Detected tensions and curated risk patterns feed a deterministic,
explainable evaluation.

Subcommands:
  interview - run the full guided interview and print the scored record
  criterion - run the short guided yes/no check
  evaluate  - score an externally supplied discernment object (JSON)
  serve     - expose the non-interactive operations over HTTP`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		if verbose || config.LogLevel() == "debug" {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(criterionCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
