package main

import (
	"github.com/rosatisoft/axioma-criterion-engine/internal/service"
	"github.com/spf13/cobra"
)

var criterionCmd = &cobra.Command{
	Use:   "criterion",
	Short: "Run the short guided yes/no criterion check",
	Long: `Walks the quick criterion session: clarity, verifiability, declared
risks, reasons, value alignment, and inner peace. Prints the verdict
(no, postpone, proceed_gradual, proceed) with a short note.`,
	RunE: runCriterion,
}

func runCriterion(cmd *cobra.Command, args []string) error {
	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	result := service.RunCriterionSession(p.yesNo, p.level, p.text)

	return printJSON(result)
}
