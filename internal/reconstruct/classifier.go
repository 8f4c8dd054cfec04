package reconstruct

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// separator matches the characters allowed between a number or option letter
// and its text: ASCII or full-width period, ideographic comma or full stop,
// or any whitespace.
const separator = `[.、．。\s\p{Zs}]`

// space matches any run of whitespace, including ideographic and
// no-break spaces that RE2's \s leaves out.
const space = `[\s\p{Zs}]*`

var (
	questionStartPattern = regexp.MustCompile(`^(\p{Nd}+)` + separator + space + `(.*)`)
	answerPattern        = regexp.MustCompile(`^(?:答案|Answer)[:：]` + space + `([A-Z×√]+|正确|错误)`)
	optionPattern        = regexp.MustCompile(`^([A-D])` + separator + space + `(.*)`)
)

// minContinuationRunes is the shortest line accepted as question text.
const minContinuationRunes = 2

// matcher recognises one line kind.
type matcher struct {
	kind  domain.LineKind
	match func(line string) (key, value string, ok bool)
}

// Classifier tags lines with their kind.
type Classifier struct {
	matchers []matcher
}

// NewClassifier returns a classifier trying question start, answer and
// option patterns in that order.
func NewClassifier() *Classifier {
	return &Classifier{
		matchers: []matcher{
			{kind: domain.LineQuestionStart, match: matchQuestionStart},
			{kind: domain.LineAnswer, match: matchAnswer},
			{kind: domain.LineOption, match: matchOption},
		},
	}
}

// Classify strips the line and tags it. Lines matching no pattern are
// continuations unless they are shorter than two characters.
func (c *Classifier) Classify(line string) domain.Line {
	text := strings.TrimSpace(line)

	for _, m := range c.matchers {
		if key, value, ok := m.match(text); ok {
			return domain.Line{Kind: m.kind, Text: text, Key: key, Value: value}
		}
	}

	if utf8.RuneCountInString(text) < minContinuationRunes {
		return domain.Line{Kind: domain.LineNoise, Text: text}
	}
	return domain.Line{Kind: domain.LineContinuation, Text: text, Value: text}
}

// StartsQuestion reports whether a whole paragraph text opens a question.
func StartsQuestion(text string) bool {
	return questionStartPattern.MatchString(text)
}

func matchQuestionStart(line string) (string, string, bool) {
	m := questionStartPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func matchAnswer(line string) (string, string, bool) {
	m := answerPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return "", m[1], true
}

func matchOption(line string) (string, string, bool) {
	m := optionPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
