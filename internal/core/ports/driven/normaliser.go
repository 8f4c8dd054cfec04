package driven

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// Normaliser flattens a decoded document into ordered paragraphs.
// Each normaliser handles specific MIME types (e.g., HTML, plain text).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Normalise produces the paragraph sequence of a document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Paragraphs in document order.
	Paragraphs []domain.Paragraph
}

// NormaliserRegistry selects the appropriate normaliser for a document.
type NormaliserRegistry interface {
	// Normalise transforms a raw document using the normaliser registered
	// for its MIME type.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)

	// SupportedMIMETypes returns all MIME types that can be normalised.
	SupportedMIMETypes() []string

	// DetectMIMEType returns the MIME type for a document name.
	// Returns domain.ErrUnsupportedType for formats no normaliser reads.
	DetectMIMEType(name string) (string, error)
}
