package driven

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// RunStore persists the history of extraction and validation runs.
type RunStore interface {
	// SaveExtraction records an extraction run.
	SaveExtraction(ctx context.Context, run domain.ExtractionRun) error

	// ListExtractions returns the most recent extraction runs, newest first.
	// A limit of zero or less returns all runs.
	ListExtractions(ctx context.Context, limit int) ([]domain.ExtractionRun, error)

	// SaveValidation records a validation run.
	SaveValidation(ctx context.Context, run domain.ValidationRun) error

	// ListValidations returns the most recent validation runs, newest first.
	ListValidations(ctx context.Context, limit int) ([]domain.ValidationRun, error)
}
