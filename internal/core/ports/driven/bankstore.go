package driven

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// BankStore persists question banks.
type BankStore interface {
	// Save writes the questions to path, creating parent directories.
	// Returns domain.ErrEmptyBank without touching path when questions is empty.
	Save(ctx context.Context, path string, questions []domain.Question) error

	// Load reads the questions stored at path.
	// Returns domain.ErrNotFound if the file does not exist.
	Load(ctx context.Context, path string) ([]domain.Question, error)

	// SaveIDs writes a list of question ids to path.
	SaveIDs(ctx context.Context, path string, ids []string) error
}
