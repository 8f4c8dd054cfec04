package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a question bank for structural problems",
	Long: `Check every question in a JSON question bank and print a report.

Critical issues: question text empty or too short, no options, no answer,
or an answer that is neither an option key nor an option text. Warnings:
too many images, a question referring to a figure that has no image, or
unusually long text.

The bank is never modified. Use --write-hidden to save the suggested hide
list to a separate file. The command exits with status 2 when critical
issues are found.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringP("file", "f", domain.DefaultBankFile, "question bank name or path")
	validateCmd.Flags().String("write-hidden", "", "write the suggested hide list to this file")
	validateCmd.Flags().Bool("json", false, "print the report as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("file")
	hidden, _ := cmd.Flags().GetString("write-hidden")
	asJSON, _ := cmd.Flags().GetBool("json")

	s, err := loadServices()
	if err != nil {
		return err
	}

	settings := s.Settings.Get()
	path := settings.ResolveBank(file)

	report, err := s.Validation.ValidateFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		printReport(out, path, report, newReportStyles(isTerminal(out)))
	}

	if hidden != "" {
		hiddenPath := settings.ResolveBank(hidden)
		if err := s.Validation.WriteHidden(cmd.Context(), hiddenPath, report.HideSuggestions); err != nil {
			return err
		}
		const msg = "Wrote %d hidden ids to %s\n"
		if asJSON {
			cmd.PrintErrf(msg, len(report.HideSuggestions), hiddenPath)
		} else {
			cmd.Printf(msg, len(report.HideSuggestions), hiddenPath)
		}
	}

	if report.HasCritical() {
		return domain.ErrCriticalIssues
	}
	return nil
}
