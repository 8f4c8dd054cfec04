// Package imagecap provides a processor that trims runaway image lists.
package imagecap

import (
	"context"
	"slices"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// Name is the processor name.
const Name = "imagecap"

// DefaultLimit is the longest image list left untouched.
const DefaultLimit = domain.DefaultMaxImages

// DefaultKeep is the number of images kept from a longer list.
const DefaultKeep = domain.DefaultKeepImages

// Processor truncates image lists longer than the limit.
// A long list usually means a summary page was grouped with the question.
type Processor struct {
	limit int
	keep  int
}

// Option configures the image cap processor.
type Option func(*Processor)

// WithLimit sets the longest image list left untouched.
func WithLimit(limit int) Option {
	return func(p *Processor) {
		if limit > 0 {
			p.limit = limit
		}
	}
}

// WithKeep sets how many leading images survive truncation.
func WithKeep(keep int) Option {
	return func(p *Processor) {
		if keep >= 0 {
			p.keep = keep
		}
	}
}

// New creates a new image cap processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		limit: DefaultLimit,
		keep:  DefaultKeep,
	}

	for _, opt := range opts {
		opt(p)
	}

	// Ensure keep doesn't exceed limit
	if p.keep > p.limit {
		p.keep = p.limit
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process keeps the first images when the list exceeds the limit.
func (p *Processor) Process(_ context.Context, q *domain.Question) error {
	if len(q.Images) > p.limit {
		q.Images = slices.Clone(q.Images[:p.keep])
	}
	return nil
}

// Limit returns the configured limit.
func (p *Processor) Limit() int {
	return p.limit
}

// Keep returns the configured number of kept images.
func (p *Processor) Keep() int {
	return p.keep
}
