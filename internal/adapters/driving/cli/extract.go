package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/quizbank/internal/adapters/driving/watch"
	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract questions from an exported document",
	Long: `Parse a Word document exported as HTML (or a .docx file or plain text
dump) and write the recognised questions to a JSON question bank.

Relative input paths resolve against paths.project_root. The output name
resolves against paths.data_dir. Nothing is written when no question is
recognised, so an existing bank is never replaced by an empty one.

Examples:
  quizbank extract -i exports/full_output.html
  quizbank extract -i exports/sample_output.html -o sample.json --dry-run
  quizbank extract -i exports/full_output.html --watch`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringP("input", "i", "", "input document path (required)")
	extractCmd.Flags().StringP("output", "o", domain.DefaultBankFile, "output question bank name")
	extractCmd.Flags().Bool("dry-run", false, "parse and report without writing the bank")
	extractCmd.Flags().Bool("watch", false, "re-extract whenever the input changes")
	_ = extractCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	watchInput, _ := cmd.Flags().GetBool("watch")

	s, err := loadServices()
	if err != nil {
		return err
	}

	settings := s.Settings.Get()
	inputPath := settings.ResolveInput(input)
	outputPath := settings.ResolveBank(output)

	cmd.Printf("Working Directory: %s\n", settings.ProjectRoot)
	cmd.Printf("Input: %s\n", inputPath)
	cmd.Printf("Output: %s\n", outputPath)

	opts := driving.ExtractOptions{DryRun: dryRun}
	err = extractOnce(cmd, s.Extraction, inputPath, outputPath, opts)
	if !watchInput {
		return err
	}
	if err != nil {
		cmd.PrintErrf("Extraction failed: %v\n", err)
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", inputPath)
	return watch.New(inputPath).Run(cmd.Context(), func(ctx context.Context) error {
		cmd.Println()
		return extractOnce(cmd, s.Extraction, inputPath, outputPath, opts)
	})
}

// extractOnce runs one extraction and prints its summary.
func extractOnce(
	cmd *cobra.Command,
	extraction driving.ExtractionService,
	inputPath, outputPath string,
	opts driving.ExtractOptions,
) error {
	result, err := extraction.Extract(cmd.Context(), inputPath, outputPath, opts)
	if err != nil {
		return err
	}

	encoding := result.Decoding.Encoding
	if result.Decoding.Fallback {
		encoding += " (lossy fallback)"
	}
	cmd.Printf("Encoding: %s\n", encoding)
	cmd.Printf("Parsed %d questions.\n", len(result.Questions))
	if result.DiscardedLines > 0 {
		cmd.Printf("Discarded %d unrecognised lines.\n", result.DiscardedLines)
	}

	switch {
	case len(result.Questions) == 0:
		return fmt.Errorf("%w from %s", domain.ErrNoQuestions, inputPath)
	case result.Written:
		cmd.Printf("Successfully saved to %s\n", result.OutputPath)
	default:
		cmd.Println("Dry run: nothing written.")
	}
	return nil
}
