package domain

import "time"

// Extraction is the in-memory result of parsing one document.
type Extraction struct {
	// Questions are the finalised questions in document order.
	Questions []Question

	// Decoding records how the bytes were decoded.
	Decoding Decoding

	// Paragraphs is the number of paragraphs the normaliser produced.
	Paragraphs int

	// DiscardedLines counts non-empty lines dropped as noise.
	DiscardedLines int
}

// ExtractionRun is the history record of one extraction.
type ExtractionRun struct {
	ID             string `json:"id"`
	InputPath      string `json:"input_path"`
	OutputPath     string `json:"output_path"`
	Encoding       string `json:"encoding"`
	Fallback       bool   `json:"fallback"`
	Paragraphs     int    `json:"paragraphs"`
	Questions      int    `json:"questions"`
	DiscardedLines int    `json:"discarded_lines"`

	// Written is false when nothing was saved (dry run or no questions).
	Written bool `json:"written"`

	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// ValidationRun is the history record of one validation.
type ValidationRun struct {
	ID                  string    `json:"id"`
	BankPath            string    `json:"bank_path"`
	Total               int       `json:"total"`
	CriticalCount       int       `json:"critical_count"`
	ImageWarningCount   int       `json:"image_warning_count"`
	ContentWarningCount int       `json:"content_warning_count"`
	HideSuggestions     []string  `json:"hide_suggestions"`
	CreatedAt           time.Time `json:"created_at"`
}
