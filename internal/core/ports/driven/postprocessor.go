package driven

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// QuestionProcessor is one finalisation step for a closed draft.
// Processors are chained in a pipeline (e.g., classification, image capping).
type QuestionProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process modifies the question in place.
	Process(ctx context.Context, q *domain.Question) error
}

// Finalizer turns a closed draft into a finalised question.
type Finalizer interface {
	// Finalize runs every step on a copy of the draft and returns it.
	// A nil draft yields nil and must not be appended by the caller.
	Finalize(ctx context.Context, draft *domain.Question) (*domain.Question, error)
}
