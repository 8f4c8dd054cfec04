package normalisers

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
	"github.com/custodia-labs/quizbank/internal/normalisers/docx"
	"github.com/custodia-labs/quizbank/internal/normalisers/html"
	"github.com/custodia-labs/quizbank/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// extensionTypes maps supported file extensions to MIME types.
var extensionTypes = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".xhtml": "application/xhtml+xml",
	".txt":   "text/plain",
	".text":  "text/plain",
	".docx":  domain.MIMETypeDOCX,
}

// rejectedExtensions are binary formats with no normaliser.
var rejectedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".rtf":  true,
	".xls":  true,
	".xlsx": true,
	".ppt":  true,
	".pptx": true,
	".zip":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// DefaultMIMEType is assumed for unlisted extensions. Word saves web pages
// under several names (.mht, .mhtml, renamed exports) that all hold markup.
const DefaultMIMEType = "text/html"

// DetectMIMEType returns the MIME type for a document path based on its
// extension. Known binary formats are rejected; anything else is HTML.
func DetectMIMEType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if mimeType, ok := extensionTypes[ext]; ok {
		return mimeType, nil
	}
	if rejectedExtensions[ext] {
		return "", fmt.Errorf("%w: extension %q", domain.ErrUnsupportedType, ext)
	}
	return DefaultMIMEType, nil
}

// Registry dispatches documents to normalisers by MIME type.
// A later registration for the same MIME type replaces the earlier one.
type Registry struct {
	byType map[string]driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[string]driven.Normaliser)}
}

// NewDefaultRegistry creates a registry with the HTML, plain-text and DOCX
// normalisers, using imageMarkers to filter HTML images.
func NewDefaultRegistry(imageMarkers []string) *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(html.New(html.WithImageMarkers(imageMarkers...)))
	r.Register(docx.New())
	return r
}

// Register adds a normaliser for each MIME type it supports.
func (r *Registry) Register(n driven.Normaliser) {
	for _, mimeType := range n.SupportedMIMETypes() {
		r.byType[mimeType] = n
	}
}

// Normalise transforms a raw document with the normaliser for its MIME type.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	n, ok := r.byType[raw.MIMEType]
	if !ok {
		return nil, fmt.Errorf("%w: no normaliser for %q", domain.ErrUnsupportedType, raw.MIMEType)
	}
	return n.Normalise(ctx, raw)
}

// DetectMIMEType returns the MIME type for a document name.
func (r *Registry) DetectMIMEType(name string) (string, error) {
	return DetectMIMEType(name)
}

// SupportedMIMETypes returns all registered MIME types, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
