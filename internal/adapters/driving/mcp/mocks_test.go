package mcp

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	result     *driving.ExtractResult
	err        error
	inputPath  string
	outputPath string
	opts       driving.ExtractOptions
}

func (m *mockExtractionService) Parse(_ context.Context, _ string, _ []byte) (*domain.Extraction, error) {
	if m.result == nil {
		return nil, m.err
	}
	return &m.result.Extraction, m.err
}

func (m *mockExtractionService) Extract(
	_ context.Context,
	inputPath, outputPath string,
	opts driving.ExtractOptions,
) (*driving.ExtractResult, error) {
	m.inputPath = inputPath
	m.outputPath = outputPath
	m.opts = opts
	return m.result, m.err
}

// mockValidationService is a mock implementation of driving.ValidationService.
type mockValidationService struct {
	report      *domain.ValidationReport
	err         error
	writeErr    error
	path        string
	hiddenPath  string
	hiddenIDs   []string
	writeCalled bool
}

func (m *mockValidationService) Validate(_ []domain.Question) domain.ValidationReport {
	if m.report == nil {
		return domain.ValidationReport{}
	}
	return *m.report
}

func (m *mockValidationService) ValidateFile(_ context.Context, path string) (*domain.ValidationReport, error) {
	m.path = path
	return m.report, m.err
}

func (m *mockValidationService) WriteHidden(_ context.Context, path string, ids []string) error {
	m.writeCalled = true
	m.hiddenPath = path
	m.hiddenIDs = ids
	return m.writeErr
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	extractions []domain.ExtractionRun
	validations []domain.ValidationRun
	err         error
}

func (m *mockHistoryService) Extractions(_ context.Context, _ int) ([]domain.ExtractionRun, error) {
	return m.extractions, m.err
}

func (m *mockHistoryService) Validations(_ context.Context, _ int) ([]domain.ValidationRun, error) {
	return m.validations, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
}

func (m *mockSettingsService) Get() domain.Settings {
	return m.settings
}

func (m *mockSettingsService) Set(_, _ string) error {
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

// validPorts returns ports with both required services set.
func validPorts() *Ports {
	return &Ports{
		Extraction: &mockExtractionService{},
		Validation: &mockValidationService{},
	}
}
