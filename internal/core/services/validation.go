package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
	"github.com/custodia-labs/quizbank/internal/logger"
)

// Ensure ValidationService implements the interface.
var _ driving.ValidationService = (*ValidationService)(nil)

// Validation thresholds.
const (
	minQuestionRunes = 2
	maxQuestionRunes = 500
	maxImages        = domain.DefaultMaxImages
	previewRunes     = 30
)

// figureKeywords suggest that a question refers to an image.
var figureKeywords = []string{"如图", "图中", "图片", "标志", "标线", "手势"}

// asShownKeywords ("as shown", "in the figure") make the image reference explicit.
var asShownKeywords = []string{"如图", "图中"}

// ValidationService checks question banks and reports issues.
// It never modifies a bank.
type ValidationService struct {
	bankStore driven.BankStore
	runStore  driven.RunStore
}

// NewValidationService creates a new validation service.
// runStore may be nil to disable history.
func NewValidationService(bankStore driven.BankStore, runStore driven.RunStore) *ValidationService {
	return &ValidationService{
		bankStore: bankStore,
		runStore:  runStore,
	}
}

// Validate checks every question and aggregates the issues.
func (s *ValidationService) Validate(questions []domain.Question) domain.ValidationReport {
	report := domain.ValidationReport{
		Total:             len(questions),
		PerQuestionIssues: []domain.QuestionIssues{},
		HideSuggestions:   []string{},
	}

	for i := range questions {
		q := &questions[i]
		text := strings.TrimSpace(q.Question)
		issues := checkQuestion(q, text)
		if len(issues) == 0 {
			continue
		}

		for _, issue := range issues {
			switch {
			case issue.Severity == domain.SeverityCritical:
				report.CriticalCount++
			case issue.Code.IsImageIssue():
				report.ImageWarningCount++
			default:
				report.ContentWarningCount++
			}
		}

		entry := domain.QuestionIssues{
			QuestionID: q.ID,
			Preview:    preview(text),
			Issues:     issues,
		}
		report.PerQuestionIssues = append(report.PerQuestionIssues, entry)

		if entry.HasCritical() || entry.Has(domain.IssueTooManyImages) {
			report.HideSuggestions = append(report.HideSuggestions, q.ID)
		}
	}

	return report
}

// ValidateFile loads the bank at path, validates it and records the run.
func (s *ValidationService) ValidateFile(ctx context.Context, path string) (*domain.ValidationReport, error) {
	questions, err := s.bankStore.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded %d questions from %s", len(questions), path)

	report := s.Validate(questions)

	if s.runStore != nil {
		run := domain.ValidationRun{
			ID:                  uuid.New().String(),
			BankPath:            path,
			Total:               report.Total,
			CriticalCount:       report.CriticalCount,
			ImageWarningCount:   report.ImageWarningCount,
			ContentWarningCount: report.ContentWarningCount,
			HideSuggestions:     report.HideSuggestions,
			CreatedAt:           time.Now(),
		}
		if err := s.runStore.SaveValidation(ctx, run); err != nil {
			logger.Warn("failed to record validation run: %v", err)
		}
	}

	return &report, nil
}

// WriteHidden writes the ids to path as a JSON array.
func (s *ValidationService) WriteHidden(ctx context.Context, path string, ids []string) error {
	if err := s.bankStore.SaveIDs(ctx, path, ids); err != nil {
		return fmt.Errorf("write hide list: %w", err)
	}
	return nil
}

// checkQuestion runs every check against one question. text is the
// trimmed question text.
func checkQuestion(q *domain.Question, text string) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	add := func(severity domain.Severity, code domain.IssueCode, format string, args ...any) {
		issues = append(issues, domain.ValidationIssue{
			Severity:   severity,
			Code:       code,
			Message:    fmt.Sprintf(format, args...),
			QuestionID: q.ID,
		})
	}

	textRunes := utf8.RuneCountInString(text)

	if textRunes < minQuestionRunes {
		add(domain.SeverityCritical, domain.IssueTextTooShort, "Question text empty or too short")
	}

	if len(q.Options) == 0 {
		add(domain.SeverityCritical, domain.IssueNoOptions, "No options found")
	}

	if q.Answer == "" {
		add(domain.SeverityCritical, domain.IssueNoAnswer, "No answer defined")
	} else if !answerInOptions(q.Answer, q.Options) {
		add(domain.SeverityCritical, domain.IssueAnswerNotInOptions,
			"Answer '%s' not found in options keys %v", q.Answer, optionKeys(q.Options))
	}

	if len(q.Images) > maxImages {
		add(domain.SeverityWarning, domain.IssueTooManyImages,
			"Too many images: %d detected (Likely parsing junk)", len(q.Images))
	}

	if len(q.Images) == 0 && containsAny(text, figureKeywords) && containsAny(text, asShownKeywords) {
		add(domain.SeverityWarning, domain.IssueMissingFigure, "Text says 'As Shown' but NO image found")
	}

	if q.Type != "" && !q.Type.IsValid() {
		add(domain.SeverityWarning, domain.IssueUnknownType, "Unknown question type '%s'", q.Type)
	}

	if textRunes > maxQuestionRunes {
		add(domain.SeverityWarning, domain.IssueTextTooLong,
			"Text unusually long (%d chars). Possible merge error.", textRunes)
	}

	return issues
}

// answerInOptions reports whether the answer is an option key or,
// failing that, exactly equal to an option value.
func answerInOptions(answer string, options map[string]string) bool {
	if _, ok := options[answer]; ok {
		return true
	}
	for _, v := range options {
		if v == answer {
			return true
		}
	}
	return false
}

func optionKeys(options map[string]string) []string {
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// preview returns the first runes of text followed by an ellipsis.
func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewRunes {
		return text + "..."
	}
	return string([]rune(text)[:previewRunes]) + "..."
}
