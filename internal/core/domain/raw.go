package domain

// RawDocument is an exported document after decoding, before normalisation.
type RawDocument struct {
	// URI is the original location (file path or client-supplied name).
	URI string

	// MIMEType is the content type (e.g., "text/html").
	MIMEType string

	// Text is the decoded document text. Empty for binary formats.
	Text string

	// Content is the undecoded document bytes.
	Content []byte

	// Encoding is the name of the encoding the text was decoded with.
	Encoding string
}

// MIMETypeDOCX is the Office Open XML word-processing document type.
const MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// IsBinaryMIMEType reports whether documents of the type are read from
// their raw bytes instead of decoded text.
func IsBinaryMIMEType(mimeType string) bool {
	return mimeType == MIMETypeDOCX
}

// Decoding is the outcome of resolving the encoding of raw document bytes.
type Decoding struct {
	// Text is the decoded text.
	Text string

	// Encoding is the candidate that was accepted, or the fallback name.
	Encoding string

	// Fallback is true when no candidate was accepted and undecodable
	// bytes were dropped.
	Fallback bool
}
