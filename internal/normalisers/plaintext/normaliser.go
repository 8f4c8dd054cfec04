// Package plaintext provides a Normaliser for plain-text question dumps.
// Paragraphs are runs of non-blank lines; plain text carries no images.
package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// Normalise splits the text into blank-line separated paragraphs.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	return &driven.NormaliseResult{Paragraphs: Paragraphs(raw.Text)}, nil
}

// Paragraphs returns the blank-line separated paragraphs of text.
func Paragraphs(text string) []domain.Paragraph {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\u00a0", " ")

	var paragraphs []domain.Paragraph
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		if p := strings.TrimSpace(strings.Join(block, "\n")); p != "" {
			paragraphs = append(paragraphs, domain.Paragraph{Text: p})
		}
		block = block[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	return paragraphs
}
