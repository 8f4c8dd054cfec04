// Package mcp provides an MCP (Model Context Protocol) server adapter for quizbank.
// It lets AI assistants extract question banks from exported documents and validate them.
package mcp

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("mcp: extraction service is required")

// ErrMissingValidationService is returned when the validation service is not provided.
var ErrMissingValidationService = errors.New("mcp: validation service is required")
