package driving

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// ValidationService inspects question banks without modifying them.
type ValidationService interface {
	// Validate checks the questions and returns a report.
	Validate(questions []domain.Question) domain.ValidationReport

	// ValidateFile loads the bank at path and validates it.
	ValidateFile(ctx context.Context, path string) (*domain.ValidationReport, error)

	// WriteHidden writes a hide list to path, separate from any bank.
	WriteHidden(ctx context.Context, path string, ids []string) error
}
