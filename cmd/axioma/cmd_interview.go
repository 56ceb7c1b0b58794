package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview [statement]",
	Short: "Run the full guided interview and print the scored record",
	Long: `Runs the guided discernment interview: the statement is classified into a
dominant theme, axis questions are asked in order with per-axis and total
caps, and the finalized record is scored. Output is the discernment object
plus its evaluation, as JSON.`,
	Args: cobra.ArbitraryArgs,
	RunE: runInterview,
}

func runInterview(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(logger)
	if err != nil {
		return err
	}

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	statement := strings.TrimSpace(strings.Join(args, " "))
	if statement == "" {
		statement = p.text("Escribe la afirmacion o decision que quieres evaluar:")
	}

	obj, err := eng.interview.Run(cmd.Context(), statement, func(questionID, prompt string) string {
		return p.text(prompt)
	})
	if err != nil {
		return err
	}

	evaluation := eng.scoring.Evaluate(obj)

	return printJSON(struct {
		Object     *domain.DiscernmentObject `json:"object"`
		Evaluation domain.Evaluation         `json:"evaluation"`
	}{obj, evaluation})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
