package domain

// Severity grades a validation issue.
type Severity string

// Severities.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// IssueCode identifies the check that raised an issue.
type IssueCode string

// Issue codes.
const (
	IssueTextTooShort       IssueCode = "text_too_short"
	IssueNoOptions          IssueCode = "no_options"
	IssueNoAnswer           IssueCode = "no_answer"
	IssueAnswerNotInOptions IssueCode = "answer_not_in_options"
	IssueTooManyImages      IssueCode = "too_many_images"
	IssueMissingFigure      IssueCode = "missing_figure"
	IssueTextTooLong        IssueCode = "text_too_long"
	IssueUnknownType        IssueCode = "unknown_type"
)

// IsImageIssue reports whether the code counts as an image warning.
func (c IssueCode) IsImageIssue() bool {
	return c == IssueTooManyImages || c == IssueMissingFigure
}

// ValidationIssue is a single diagnostic for one question.
type ValidationIssue struct {
	Severity   Severity  `json:"severity"`
	Code       IssueCode `json:"code"`
	Message    string    `json:"message"`
	QuestionID string    `json:"question_id"`
}

// QuestionIssues groups the issues raised for one question.
type QuestionIssues struct {
	QuestionID string            `json:"question_id"`
	Preview    string            `json:"preview"`
	Issues     []ValidationIssue `json:"issues"`
}

// HasCritical reports whether any issue is critical.
func (q QuestionIssues) HasCritical() bool {
	for _, issue := range q.Issues {
		if issue.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Has reports whether an issue with the given code was raised.
func (q QuestionIssues) Has(code IssueCode) bool {
	for _, issue := range q.Issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// ValidationReport aggregates the diagnostics for a question bank.
// It is read-only output and is never written back into the bank.
type ValidationReport struct {
	Total               int              `json:"total"`
	CriticalCount       int              `json:"critical_count"`
	ImageWarningCount   int              `json:"image_warning_count"`
	ContentWarningCount int              `json:"content_warning_count"`
	PerQuestionIssues   []QuestionIssues `json:"per_question_issues"`

	// HideSuggestions lists ids with a critical issue or too many images.
	HideSuggestions []string `json:"hide_suggestions"`
}

// HasCritical reports whether the report contains critical issues.
func (r *ValidationReport) HasCritical() bool {
	return r.CriticalCount > 0
}
