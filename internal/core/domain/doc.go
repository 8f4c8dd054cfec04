// Package domain defines the core business entities for quizbank.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: An exported document, decoded or as raw bytes
//   - Paragraph: A block of text plus the images found inside it
//   - Line: A classified line of paragraph text
//   - Question: A question record, as a draft or finalised
//   - ValidationReport: Diagnostics produced for a question bank
//   - ExtractionRun, ValidationRun: History records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
