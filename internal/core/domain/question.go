package domain

import (
	"bytes"
	"encoding/json"
	"slices"
)

// QuestionType classifies a question.
type QuestionType string

// Question types.
const (
	// QuestionTypeUnknown marks a draft that has not been finalised.
	QuestionTypeUnknown QuestionType = "unknown"

	// QuestionTypeChoice is a multiple-choice question with authored options.
	QuestionTypeChoice QuestionType = "choice"

	// QuestionTypeJudgment is a true/false question with two implicit options.
	QuestionTypeJudgment QuestionType = "judgment"
)

// IsValid reports whether t may appear in a finished bank.
// QuestionTypeUnknown only marks drafts and is not valid.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeChoice, QuestionTypeJudgment:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t QuestionType) String() string {
	return string(t)
}

// Judgment option texts and keys.
const (
	JudgmentTrueText  = "正确"
	JudgmentFalseText = "错误"
	JudgmentTrueKey   = "A"
	JudgmentFalseKey  = "B"
)

// Question is a question record. While it is being assembled it is a draft
// (Type is QuestionTypeUnknown); after finalisation it is never mutated.
type Question struct {
	// ID is the number the document gave the question.
	ID string

	// Question is the question text; continuation lines are joined by "\n".
	Question string

	// Options maps a single-letter key to the option text.
	Options map[string]string

	// Answer is the extracted answer, empty when absent.
	Answer string

	// Type is the classification.
	Type QuestionType

	// Images are unique image references in document order.
	Images []string
}

// NewDraft starts a draft with the given id and text.
func NewDraft(id, text string) *Question {
	return &Question{
		ID:       id,
		Question: text,
		Options:  make(map[string]string),
		Type:     QuestionTypeUnknown,
	}
}

// HasAnswer reports whether an answer was recorded.
func (q *Question) HasAnswer() bool {
	return q.Answer != ""
}

// HasImage reports whether the image reference is already attached.
func (q *Question) HasImage(src string) bool {
	return slices.Contains(q.Images, src)
}

// Clone returns a deep copy of the question.
func (q *Question) Clone() *Question {
	c := *q
	if q.Options != nil {
		c.Options = make(map[string]string, len(q.Options))
		for k, v := range q.Options {
			c.Options[k] = v
		}
	}
	c.Images = slices.Clone(q.Images)
	return &c
}

// questionJSON is the question bank wire format.
type questionJSON struct {
	ID       string            `json:"id"`
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
	Answer   *string           `json:"answer"`
	Type     QuestionType      `json:"type"`
	Images   []string          `json:"images"`
}

// MarshalJSON encodes an absent answer as null and empty collections as {} and [].
// HTML characters are left unescaped.
func (q Question) MarshalJSON() ([]byte, error) {
	w := questionJSON{
		ID:       q.ID,
		Question: q.Question,
		Options:  q.Options,
		Type:     q.Type,
		Images:   q.Images,
	}
	if w.Options == nil {
		w.Options = map[string]string{}
	}
	if w.Images == nil {
		w.Images = []string{}
	}
	if q.Answer != "" {
		answer := q.Answer
		w.Answer = &answer
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes the question bank wire format.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*q = Question{
		ID:       w.ID,
		Question: w.Question,
		Options:  w.Options,
		Type:     w.Type,
		Images:   w.Images,
	}
	if w.Answer != nil {
		q.Answer = *w.Answer
	}
	return nil
}
