package mcp

import (
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extraction turns documents into question banks.
	Extraction driving.ExtractionService

	// Validation checks question banks.
	Validation driving.ValidationService

	// History lists recorded runs. Optional.
	History driving.HistoryService

	// Settings resolves relative paths. Optional; without it paths are used as given.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	if p.Validation == nil {
		return ErrMissingValidationService
	}
	return nil
}

// resolveInput resolves a document path against the project root.
func (p *Ports) resolveInput(path string) string {
	if p.Settings == nil {
		return path
	}
	return p.Settings.Get().ResolveInput(path)
}

// resolveBank resolves a bank name against the data directory.
func (p *Ports) resolveBank(name string) string {
	if p.Settings == nil {
		return name
	}
	return p.Settings.Get().ResolveBank(name)
}
