package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quizbank/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/quizbank/internal/core/domain"
)

func validChoice(id string) domain.Question {
	return domain.Question{
		ID:       id,
		Question: "What is the speed limit?",
		Options:  map[string]string{"A": "30", "B": "60"},
		Answer:   "B",
		Type:     domain.QuestionTypeChoice,
	}
}

func codes(issues []domain.ValidationIssue) []domain.IssueCode {
	result := make([]domain.IssueCode, len(issues))
	for i, issue := range issues {
		result[i] = issue.Code
	}
	return result
}

func TestValidate_CleanBank(t *testing.T) {
	service := NewValidationService(memory.NewBankStore(), nil)

	report := service.Validate([]domain.Question{validChoice("1"), validChoice("2")})

	assert.Equal(t, 2, report.Total)
	assert.Zero(t, report.CriticalCount)
	assert.Zero(t, report.ImageWarningCount)
	assert.Zero(t, report.ContentWarningCount)
	assert.Empty(t, report.PerQuestionIssues)
	assert.Empty(t, report.HideSuggestions)
	assert.False(t, report.HasCritical())
}

func TestValidate_ShortTextNoOptionsNoAnswer(t *testing.T) {
	service := NewValidationService(memory.NewBankStore(), nil)

	report := service.Validate([]domain.Question{{ID: "9", Question: "A", Options: map[string]string{}}})

	assert.Equal(t, 3, report.CriticalCount)
	require.Len(t, report.PerQuestionIssues, 1)
	entry := report.PerQuestionIssues[0]
	assert.Equal(t, "9", entry.QuestionID)
	assert.Equal(t, "A...", entry.Preview)
	assert.Equal(t, []domain.IssueCode{
		domain.IssueTextTooShort,
		domain.IssueNoOptions,
		domain.IssueNoAnswer,
	}, codes(entry.Issues))
	for _, issue := range entry.Issues {
		assert.Equal(t, domain.SeverityCritical, issue.Severity)
		assert.Equal(t, "9", issue.QuestionID)
	}
	assert.Equal(t, []string{"9"}, report.HideSuggestions)
}

func TestValidate_AnswerMatching(t *testing.T) {
	service := NewValidationService(memory.NewBankStore(), nil)

	byValue := validChoice("1")
	byValue.Answer = "60"

	missing := validChoice("2")
	missing.Answer = "D"

	report := service.Validate([]domain.Question{byValue, missing})

	require.Len(t, report.PerQuestionIssues, 1)
	entry := report.PerQuestionIssues[0]
	assert.Equal(t, "2", entry.QuestionID)
	require.Len(t, entry.Issues, 1)
	assert.Equal(t, domain.IssueAnswerNotInOptions, entry.Issues[0].Code)
	assert.Equal(t, "Answer 'D' not found in options keys [A B]", entry.Issues[0].Message)
}

func TestValidate_ImageWarnings(t *testing.T) {
	service := NewValidationService(memory.NewBankStore(), nil)

	tooMany := validChoice("1")
	tooMany.Images = []string{"a", "b", "c", "d"}

	asShown := validChoice("2")
	asShown.Question = "如图所示，应当怎样做？"

	signOnly := validChoice("3")
	signOnly.Question = "这个标志是什么意思？"

	asShownWithImage := validChoice("4")
	asShownWithImage.Question = "图中车辆应当怎样行驶？"
	asShownWithImage.Images = []string{"x.png"}

	report := service.Validate([]domain.Question{tooMany, asShown, signOnly, asShownWithImage})

	assert.Zero(t, report.CriticalCount)
	assert.Equal(t, 2, report.ImageWarningCount)
	require.Len(t, report.PerQuestionIssues, 2)
	assert.Equal(t, []domain.IssueCode{domain.IssueTooManyImages}, codes(report.PerQuestionIssues[0].Issues))
	assert.Equal(t, "Too many images: 4 detected (Likely parsing junk)", report.PerQuestionIssues[0].Issues[0].Message)
	assert.Equal(t, []domain.IssueCode{domain.IssueMissingFigure}, codes(report.PerQuestionIssues[1].Issues))
	assert.Equal(t, domain.SeverityWarning, report.PerQuestionIssues[1].Issues[0].Severity)

	// Only critical issues and too many images are suggested for hiding
	assert.Equal(t, []string{"1"}, report.HideSuggestions)
}

func TestValidate_LongText(t *testing.T) {
	service := NewValidationService(memory.NewBankStore(), nil)

	long := validChoice("1")
	long.Question = strings.Repeat("字", 501)

	boundary := validChoice("2")
	boundary.Question = strings.Repeat("字", 500)

	report := service.Validate([]domain.Question{long, boundary})

	assert.Equal(t, 1, report.ContentWarningCount)
	require.Len(t, report.PerQuestionIssues, 1)
	entry := report.PerQuestionIssues[0]
	assert.Equal(t, "Text unusually long (501 chars). Possible merge error.", entry.Issues[0].Message)
	assert.Equal(t, strings.Repeat("字", 30)+"...", entry.Preview)
	assert.Empty(t, report.HideSuggestions)
}

func TestValidate_QuestionType(t *testing.T) {
	tests := []struct {
		name     string
		qType    domain.QuestionType
		expected []domain.IssueCode
	}{
		{"choice", domain.QuestionTypeChoice, nil},
		{"judgment", domain.QuestionTypeJudgment, nil},
		{"absent", "", nil},
		{"draft marker", domain.QuestionTypeUnknown, []domain.IssueCode{domain.IssueUnknownType}},
		{"foreign type", "essay", []domain.IssueCode{domain.IssueUnknownType}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewValidationService(memory.NewBankStore(), nil)
			q := validChoice("1")
			q.Type = tt.qType

			report := service.Validate([]domain.Question{q})

			if tt.expected == nil {
				assert.Empty(t, report.PerQuestionIssues)
				return
			}
			require.Len(t, report.PerQuestionIssues, 1)
			assert.Equal(t, tt.expected, codes(report.PerQuestionIssues[0].Issues))
			assert.Equal(t, 1, report.ContentWarningCount)
			assert.Zero(t, report.CriticalCount)
			assert.Empty(t, report.HideSuggestions)
		})
	}
}

func TestValidate_TrimsTextBeforeChecks(t *testing.T) {
	service := NewValidationService(memory.NewBankStore(), nil)

	q := validChoice("1")
	q.Question = "  x \n"

	report := service.Validate([]domain.Question{q})

	require.Len(t, report.PerQuestionIssues, 1)
	assert.Equal(t, domain.IssueTextTooShort, report.PerQuestionIssues[0].Issues[0].Code)
	assert.Equal(t, "x...", report.PerQuestionIssues[0].Preview)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	service := NewValidationService(memory.NewBankStore(), nil)

	q := validChoice("1")
	q.Answer = "Z"
	q.Images = []string{"a", "b", "c", "d", "e"}
	questions := []domain.Question{q}

	service.Validate(questions)

	assert.Equal(t, "Z", questions[0].Answer)
	assert.Len(t, questions[0].Images, 5)
}

func TestValidateFile_RecordsRun(t *testing.T) {
	ctx := context.Background()
	banks := memory.NewBankStore()
	runs := memory.NewRunStore()
	require.NoError(t, banks.Save(ctx, "bank.json", []domain.Question{validChoice("1"), {ID: "2", Question: "短"}}))

	service := NewValidationService(banks, runs)
	report, err := service.ValidateFile(ctx, "bank.json")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.True(t, report.HasCritical())

	recorded, err := runs.ListValidations(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, "bank.json", recorded[0].BankPath)
	assert.Equal(t, report.CriticalCount, recorded[0].CriticalCount)
	assert.Equal(t, []string{"2"}, recorded[0].HideSuggestions)
	assert.NotEmpty(t, recorded[0].ID)
}

func TestValidateFile_NotFound(t *testing.T) {
	service := NewValidationService(memory.NewBankStore(), nil)

	_, err := service.ValidateFile(context.Background(), "missing.json")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWriteHidden(t *testing.T) {
	banks := memory.NewBankStore()
	service := NewValidationService(banks, nil)

	require.NoError(t, service.WriteHidden(context.Background(), "hidden.json", []string{"4", "8"}))

	ids, ok := banks.IDs("hidden.json")
	assert.True(t, ok)
	assert.Equal(t, []string{"4", "8"}, ids)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "...", preview(""))
	assert.Equal(t, "abc...", preview("abc"))
	assert.Equal(t, strings.Repeat("a", 30)+"...", preview(strings.Repeat("a", 31)))
}
