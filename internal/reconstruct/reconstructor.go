package reconstruct

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// Result is the output of a reconstruction run.
type Result struct {
	// Questions are the finalised questions in document order.
	Questions []*domain.Question

	// DiscardedLines counts non-empty lines treated as noise.
	DiscardedLines int
}

// Reconstructor folds paragraphs into question drafts.
type Reconstructor struct {
	classifier *Classifier
}

// New creates a reconstructor with the default classifier.
func New() *Reconstructor {
	return &Reconstructor{classifier: NewClassifier()}
}

// Fold runs every line of every paragraph through Step and closes the input.
func (r *Reconstructor) Fold(paragraphs []domain.Paragraph) State {
	var s State
	for _, p := range paragraphs {
		for _, raw := range strings.Split(p.Text, "\n") {
			line := r.classifier.Classify(raw)
			if line.Kind == domain.LineQuestionStart {
				line.Images = p.Images
			}
			s = Step(s, line)
		}
		s = EndParagraph(s, p, StartsQuestion(p.Text))
	}
	return Close(s)
}

// Run folds the paragraphs and finalises each closed draft in order.
func (r *Reconstructor) Run(ctx context.Context, paragraphs []domain.Paragraph, finalizer driven.Finalizer) (*Result, error) {
	s := r.Fold(paragraphs)

	result := &Result{
		Questions:      make([]*domain.Question, 0, len(s.Closed)),
		DiscardedLines: s.Discarded,
	}
	for _, draft := range s.Closed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q, err := finalizer.Finalize(ctx, draft)
		if err != nil {
			return nil, fmt.Errorf("finalize question %s: %w", draft.ID, err)
		}
		if q != nil {
			result.Questions = append(result.Questions, q)
		}
	}
	return result, nil
}
