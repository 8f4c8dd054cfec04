// Package judgment provides the question type classifier.
package judgment

import (
	"context"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// Name is the processor name.
const Name = "judgment"

// answerKeys maps the accepted true/false answer forms to option keys.
var answerKeys = map[string]string{
	domain.JudgmentTrueText:  domain.JudgmentTrueKey,
	"√":                      domain.JudgmentTrueKey,
	"Y":                      domain.JudgmentTrueKey,
	"TRUE":                   domain.JudgmentTrueKey,
	domain.JudgmentFalseText: domain.JudgmentFalseKey,
	"×":                      domain.JudgmentFalseKey,
	"N":                      domain.JudgmentFalseKey,
	"FALSE":                  domain.JudgmentFalseKey,
}

// Processor classifies questions as choice or judgment.
// A question without options becomes a judgment question with the two
// implicit options and a normalised answer.
type Processor struct{}

// New creates a new classifier.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process sets the question type. Choice questions keep their answer as extracted.
func (p *Processor) Process(_ context.Context, q *domain.Question) error {
	if len(q.Options) > 0 {
		q.Type = domain.QuestionTypeChoice
		return nil
	}

	q.Type = domain.QuestionTypeJudgment
	q.Options = map[string]string{
		domain.JudgmentTrueKey:  domain.JudgmentTrueText,
		domain.JudgmentFalseKey: domain.JudgmentFalseText,
	}
	q.Answer = NormaliseAnswer(q.Answer)
	return nil
}

// NormaliseAnswer maps a true/false answer form to its option key.
// Unrecognised values are returned unchanged.
func NormaliseAnswer(answer string) string {
	if key, ok := answerKeys[answer]; ok {
		return key
	}
	return answer
}
