package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu          sync.RWMutex
	extractions []domain.ExtractionRun
	validations []domain.ValidationRun
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// SaveExtraction records an extraction run.
func (s *RunStore) SaveExtraction(_ context.Context, run domain.ExtractionRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extractions = append(s.extractions, run)
	return nil
}

// ListExtractions returns the most recent extraction runs, newest first.
func (s *RunStore) ListExtractions(_ context.Context, limit int) ([]domain.ExtractionRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := slices.Clone(s.extractions)
	slices.Reverse(result)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	return truncate(result, limit), nil
}

// SaveValidation records a validation run.
func (s *RunStore) SaveValidation(_ context.Context, run domain.ValidationRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run.HideSuggestions = slices.Clone(run.HideSuggestions)
	s.validations = append(s.validations, run)
	return nil
}

// ListValidations returns the most recent validation runs, newest first.
func (s *RunStore) ListValidations(_ context.Context, limit int) ([]domain.ValidationRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := slices.Clone(s.validations)
	slices.Reverse(result)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return truncate(result, limit), nil
}

func truncate[T any](runs []T, limit int) []T {
	if runs == nil {
		return []T{}
	}
	if limit > 0 && len(runs) > limit {
		return runs[:limit]
	}
	return runs
}
