// Package postprocessors provides question finalisation steps.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// Ensure Pipeline implements the Finalizer interface.
var _ driven.Finalizer = (*Pipeline)(nil)

// Pipeline chains multiple QuestionProcessors and runs them in order.
// It implements the Finalizer interface.
type Pipeline struct {
	processors []driven.QuestionProcessor
}

// NewPipeline creates a new finalisation pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.QuestionProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Finalize runs a copy of the draft through all processors in order.
// The draft itself is left untouched. A nil draft yields nil.
func (p *Pipeline) Finalize(ctx context.Context, draft *domain.Question) (*domain.Question, error) {
	if draft == nil {
		return nil, nil
	}

	q := draft.Clone()

	for _, processor := range p.processors {
		if err := processor.Process(ctx, q); err != nil {
			return nil, fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}

	return q, nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.QuestionProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Names returns the processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.processors))
	for i, processor := range p.processors {
		names[i] = processor.Name()
	}
	return names
}
