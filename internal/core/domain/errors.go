package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown document format or processor.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownEncoding indicates a configured encoding name has no decoder.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrHistoryDisabled indicates run history was turned off in configuration.
	ErrHistoryDisabled = errors.New("run history is disabled")

	// Pipeline Errors.

	// ErrInputNotFound indicates the document to extract does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrNoQuestions indicates extraction recognised no question and nothing was written.
	ErrNoQuestions = errors.New("no questions extracted")

	// ErrEmptyBank indicates an attempt to persist an empty question bank.
	// Writers refuse it so a previously good bank is never replaced by an empty one.
	ErrEmptyBank = errors.New("empty question bank")

	// ErrCriticalIssues indicates validation found at least one critical issue.
	ErrCriticalIssues = errors.New("question bank has critical issues")
)
