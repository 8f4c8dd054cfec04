package domain

// Paragraph is a normalised block of a document: trimmed text plus the
// image references discovered inside the block, in document order.
// Order between paragraphs is the only positional signal the
// reconstructor has.
type Paragraph struct {
	Text   string
	Images []string
}

// HasContent reports whether the paragraph carries text or images.
func (p Paragraph) HasContent() bool {
	return p.Text != "" || len(p.Images) > 0
}
