package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent extraction and validation runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "maximum runs of each kind to list (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := loadServices()
	if err != nil {
		return err
	}

	extractions, err := s.History.Extractions(cmd.Context(), limit)
	if errors.Is(err, domain.ErrHistoryDisabled) {
		cmd.Println("Run history is disabled (history.enabled = false).")
		return nil
	}
	if err != nil {
		return err
	}

	validations, err := s.History.Validations(cmd.Context(), limit)
	if err != nil {
		return err
	}

	cmd.Println("Extractions")
	cmd.Println("===========")
	if len(extractions) == 0 {
		cmd.Println("  (none)")
	}
	for i := range extractions {
		run := &extractions[i]
		status := "written"
		if !run.Written {
			status = "not written"
		}
		cmd.Printf("  %s  %s  %d questions, %d discarded, %s [%s]\n",
			run.StartedAt.Local().Format(time.DateTime), shortID(run.ID),
			run.Questions, run.DiscardedLines, run.Encoding, status)
		cmd.Printf("      %s -> %s\n", run.InputPath, run.OutputPath)
	}
	cmd.Println()

	cmd.Println("Validations")
	cmd.Println("===========")
	if len(validations) == 0 {
		cmd.Println("  (none)")
	}
	for i := range validations {
		run := &validations[i]
		cmd.Printf("  %s  %s  %d total, %d critical, %d image, %d content, %d to hide\n",
			run.CreatedAt.Local().Format(time.DateTime), shortID(run.ID),
			run.Total, run.CriticalCount, run.ImageWarningCount, run.ContentWarningCount,
			len(run.HideSuggestions))
		cmd.Printf("      %s\n", run.BankPath)
	}

	return nil
}

// shortID returns the first eight characters of a run ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
