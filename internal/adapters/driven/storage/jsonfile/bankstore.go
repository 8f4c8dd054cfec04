// Package jsonfile stores question banks as JSON files.
//
// Files are UTF-8 with non-ASCII characters left unescaped and two-space
// indentation, the format the study application reads.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// Ensure BankStore implements the interface.
var _ driven.BankStore = (*BankStore)(nil)

// BankStore reads and writes question bank files.
type BankStore struct{}

// NewBankStore creates a new JSON bank store.
func NewBankStore() *BankStore {
	return &BankStore{}
}

// Save writes the questions to path. An empty list is refused so an
// existing bank is never overwritten by an empty one.
func (s *BankStore) Save(_ context.Context, path string, questions []domain.Question) error {
	if len(questions) == 0 {
		return domain.ErrEmptyBank
	}
	return writeJSON(path, questions)
}

// Load reads the questions stored at path.
func (s *BankStore) Load(_ context.Context, path string) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read bank: %w", err)
	}

	var questions []domain.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidInput, path, err)
	}
	return questions, nil
}

// SaveIDs writes a JSON array of question ids to path.
func (s *BankStore) SaveIDs(_ context.Context, path string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return writeJSON(path, ids)
}

func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Encode appends a newline; the bank has none.
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
