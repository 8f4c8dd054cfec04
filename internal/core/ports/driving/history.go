package driving

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// HistoryService reads recorded runs.
type HistoryService interface {
	// Extractions returns recent extraction runs, newest first.
	Extractions(ctx context.Context, limit int) ([]domain.ExtractionRun, error)

	// Validations returns recent validation runs, newest first.
	Validations(ctx context.Context, limit int) ([]domain.ValidationRun, error)
}
