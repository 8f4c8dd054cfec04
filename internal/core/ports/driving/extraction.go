package driving

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// ExtractionService turns exported documents into question banks.
type ExtractionService interface {
	// Parse extracts questions from document bytes without writing anything.
	// The name selects the document format by extension.
	Parse(ctx context.Context, name string, data []byte) (*domain.Extraction, error)

	// Extract reads inputPath, extracts its questions and writes them to
	// outputPath unless opts.DryRun is set or no question was found.
	Extract(ctx context.Context, inputPath, outputPath string, opts ExtractOptions) (*ExtractResult, error)
}

// ExtractOptions tunes a single extraction.
type ExtractOptions struct {
	// DryRun parses without writing the bank.
	DryRun bool
}

// ExtractResult reports the outcome of Extract.
type ExtractResult struct {
	domain.Extraction

	// RunID identifies the history record, empty when history is disabled.
	RunID string

	// Written is true when the bank was saved to OutputPath.
	Written bool

	// OutputPath is where the bank was (or would have been) written.
	OutputPath string
}
