package services

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads recorded runs.
type HistoryService struct {
	runStore driven.RunStore
}

// NewHistoryService creates a new history service.
// A nil runStore means history is disabled.
func NewHistoryService(runStore driven.RunStore) *HistoryService {
	return &HistoryService{runStore: runStore}
}

// Extractions returns recent extraction runs, newest first.
func (s *HistoryService) Extractions(ctx context.Context, limit int) ([]domain.ExtractionRun, error) {
	if s.runStore == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.runStore.ListExtractions(ctx, limit)
}

// Validations returns recent validation runs, newest first.
func (s *HistoryService) Validations(ctx context.Context, limit int) ([]domain.ValidationRun, error) {
	if s.runStore == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.runStore.ListValidations(ctx, limit)
}
