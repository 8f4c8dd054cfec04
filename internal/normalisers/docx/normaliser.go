// Package docx flattens Word .docx documents into paragraphs.
//
// Paragraph text comes from the w:t runs of word/document.xml; w:br and
// w:cr become line breaks. Embedded pictures (DrawingML a:blip and VML
// v:imagedata) are resolved through the document relationships to their
// package paths, e.g. "word/media/image1.png". Image markers do not apply:
// every picture in the package belongs to the document.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const (
	documentPart      = "word/document.xml"
	relationshipsPart = "word/_rels/document.xml.rels"
)

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{domain.MIMETypeDOCX}
}

// Normalise converts a DOCX document into paragraphs.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a docx archive", domain.ErrInvalidInput)
	}

	content, err := readPart(reader, documentPart)
	if err != nil {
		return nil, err
	}

	// A package without relationships has no resolvable images.
	rels := map[string]string{}
	if relsPart, err := readPart(reader, relationshipsPart); err == nil {
		rels = parseRelationships(relsPart)
	}

	paragraphs, err := parseDocument(content, rels)
	if err != nil {
		return nil, err
	}
	return &driven.NormaliseResult{Paragraphs: paragraphs}, nil
}

// readPart returns the bytes of a named package part.
func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s", domain.ErrInvalidInput, name)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s", domain.ErrInvalidInput, name)
		}
		return content, nil
	}
	return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, name)
}

// relationshipsXML represents word/_rels/document.xml.rels.
type relationshipsXML struct {
	Items []relationship `xml:"Relationship"`
}

type relationship struct {
	ID         string `xml:"Id,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// parseRelationships maps relationship ids to image paths. Internal
// targets are relative to the word/ directory.
func parseRelationships(content []byte) map[string]string {
	var rels relationshipsXML
	if err := xml.Unmarshal(content, &rels); err != nil {
		return map[string]string{}
	}

	targets := make(map[string]string, len(rels.Items))
	for _, rel := range rels.Items {
		target := rel.Target
		if rel.TargetMode != "External" {
			target = path.Join("word", target)
		}
		targets[rel.ID] = target
	}
	return targets
}

// paragraphBuilder collects one w:p.
type paragraphBuilder struct {
	text   strings.Builder
	images []string
}

func (b *paragraphBuilder) flush(out []domain.Paragraph) []domain.Paragraph {
	p := domain.Paragraph{
		Text:   strings.TrimSpace(b.text.String()),
		Images: b.images,
	}
	b.text.Reset()
	b.images = nil
	if !p.HasContent() {
		return out
	}
	return append(out, p)
}

// parseDocument walks document.xml tokens and returns its paragraphs.
func parseDocument(content []byte, rels map[string]string) ([]domain.Paragraph, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var (
		paragraphs []domain.Paragraph
		current    paragraphBuilder
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document.xml: %v", domain.ErrInvalidInput, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				// Nested paragraphs (text boxes) split the outer one.
				paragraphs = current.flush(paragraphs)
			case "t":
				var text string
				if err := decoder.DecodeElement(&text, &el); err != nil {
					return nil, fmt.Errorf("%w: document.xml: %v", domain.ErrInvalidInput, err)
				}
				current.text.WriteString(text)
			case "br", "cr":
				current.text.WriteString("\n")
			case "tab":
				current.text.WriteString(" ")
			case "blip":
				current.images = appendImage(current.images, rels, attr(el, "embed"))
			case "imagedata":
				current.images = appendImage(current.images, rels, attr(el, "id"))
			}
		case xml.EndElement:
			if el.Name.Local == "p" {
				paragraphs = current.flush(paragraphs)
			}
		}
	}

	return current.flush(paragraphs), nil
}

// attr returns the value of the attribute with the given local name.
func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// appendImage resolves a relationship id and appends its target once.
func appendImage(images []string, rels map[string]string, id string) []string {
	target, ok := rels[id]
	if !ok || id == "" {
		return images
	}
	for _, existing := range images {
		if existing == target {
			return images
		}
	}
	return append(images, target)
}
