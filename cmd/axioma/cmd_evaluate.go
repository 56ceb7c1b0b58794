package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"github.com/rosatisoft/axioma-criterion-engine/internal/service"
	"github.com/spf13/cobra"
)

var evaluateFile string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score an externally supplied discernment object",
	Long: `Reads a discernment object as JSON (from --file or stdin) and prints its
deterministic evaluation. Missing enum fields default to the values a fresh
session starts with.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateFile, "file", "f", "", "Path to the discernment object JSON (default: stdin)")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if evaluateFile != "" {
		f, err := os.Open(evaluateFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var obj domain.DiscernmentObject
	if err := json.NewDecoder(in).Decode(&obj); err != nil {
		return fmt.Errorf("decode discernment object: %w", err)
	}
	if strings.TrimSpace(obj.OriginalStatement) == "" {
		return service.ErrStatementEmpty
	}

	obj.EnsureEvaluationDefaults()

	engine := service.NewScoringEngine(service.DefaultScoringConfig())
	return printJSON(engine.Evaluate(&obj))
}
