package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// Ensure BankStore implements the interface.
var _ driven.BankStore = (*BankStore)(nil)

// BankStore is an in-memory implementation of driven.BankStore keyed by path.
type BankStore struct {
	mu    sync.RWMutex
	banks map[string][]domain.Question
	ids   map[string][]string
}

// NewBankStore creates a new in-memory bank store.
func NewBankStore() *BankStore {
	return &BankStore{
		banks: make(map[string][]domain.Question),
		ids:   make(map[string][]string),
	}
}

// Save stores a copy of the questions under path.
func (s *BankStore) Save(_ context.Context, path string, questions []domain.Question) error {
	if len(questions) == 0 {
		return domain.ErrEmptyBank
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banks[path] = cloneQuestions(questions)
	return nil
}

// Load returns a copy of the questions stored under path.
func (s *BankStore) Load(_ context.Context, path string) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	questions, ok := s.banks[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneQuestions(questions), nil
}

// SaveIDs stores a copy of the ids under path.
func (s *BankStore) SaveIDs(_ context.Context, path string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[path] = slices.Clone(ids)
	return nil
}

// IDs returns the ids stored under path.
func (s *BankStore) IDs(path string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids, ok := s.ids[path]
	return slices.Clone(ids), ok
}

func cloneQuestions(questions []domain.Question) []domain.Question {
	result := make([]domain.Question, len(questions))
	for i := range questions {
		result[i] = *questions[i].Clone()
	}
	return result
}
