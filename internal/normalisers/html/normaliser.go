package html

import (
	"context"
	"errors"
	"io"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// blockTags open and close a paragraph.
var blockTags = map[string]bool{
	"p":   true,
	"div": true,
	"h1":  true,
	"h2":  true,
	"h3":  true,
}

// commentSrc finds src attributes inside comment markup, e.g. the
// <v:imagedata src="..."> of a "[if gte vml 1]" section.
var commentSrc = regexp.MustCompile(`src=["'](.*?)["']`)

// Normaliser handles HTML documents.
type Normaliser struct {
	imageMarkers []string
}

// Option configures the normaliser.
type Option func(*Normaliser)

// WithImageMarkers sets the path substrings an image reference must contain.
func WithImageMarkers(markers ...string) Option {
	return func(n *Normaliser) {
		if len(markers) > 0 {
			n.imageMarkers = markers
		}
	}
}

// New creates a new HTML normaliser.
func New(opts ...Option) *Normaliser {
	n := &Normaliser{imageMarkers: domain.DefaultImageMarkers}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Normalise converts an HTML document into paragraphs.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	paragraphs, err := n.Paragraphs(raw.Text)
	if err != nil {
		return nil, err
	}
	return &driven.NormaliseResult{Paragraphs: paragraphs}, nil
}

// Paragraphs tokenizes markup and returns its paragraphs in document order.
func (n *Normaliser) Paragraphs(markup string) ([]domain.Paragraph, error) {
	f := &flattener{markers: n.imageMarkers}
	z := html.NewTokenizer(strings.NewReader(markup))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return f.paragraphs, nil

		case html.StartTagToken:
			f.start(z)

		case html.SelfClosingTagToken:
			name := f.start(z)
			f.end(name)

		case html.EndTagToken:
			name, _ := z.TagName()
			f.end(string(name))

		case html.TextToken:
			f.text.Write(z.Text())

		case html.CommentToken:
			f.comment(string(z.Text()))
		}
	}
}

// flattener accumulates pending text and images between block boundaries.
// Text outside tracked blocks keeps accumulating and is emitted with the
// next block that closes.
type flattener struct {
	markers    []string
	text       strings.Builder
	images     []string
	paragraphs []domain.Paragraph
}

// start handles an opening tag and returns its name.
func (f *flattener) start(z *html.Tokenizer) string {
	nameBytes, hasAttr := z.TagName()
	name := string(nameBytes)

	switch {
	case blockTags[name]:
		f.text.Reset()
		f.images = nil
	case name == "br":
		f.text.WriteByte('\n')
	}

	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) == "src" {
			f.addImage(string(val))
		}
	}
	return name
}

func (f *flattener) end(name string) {
	if !blockTags[name] {
		return
	}
	text := strings.TrimSpace(f.text.String())
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "\r", "")

	p := domain.Paragraph{Text: text, Images: slices.Clone(f.images)}
	if p.HasContent() {
		f.paragraphs = append(f.paragraphs, p)
	}
	f.text.Reset()
	f.images = nil
}

func (f *flattener) comment(data string) {
	for _, m := range commentSrc.FindAllStringSubmatch(data, -1) {
		f.addImage(m[1])
	}
}

// addImage keeps references under an image marker, deduplicated.
func (f *flattener) addImage(src string) {
	if !f.isQuestionImage(src) || slices.Contains(f.images, src) {
		return
	}
	f.images = append(f.images, src)
}

func (f *flattener) isQuestionImage(src string) bool {
	for _, m := range f.markers {
		if strings.Contains(src, m) {
			return true
		}
	}
	return false
}
