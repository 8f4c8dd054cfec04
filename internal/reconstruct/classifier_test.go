package reconstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected domain.Line
	}{
		{
			name:     "question start with period",
			line:     "5. What is the speed limit?",
			expected: domain.Line{Kind: domain.LineQuestionStart, Text: "5. What is the speed limit?", Key: "5", Value: "What is the speed limit?"},
		},
		{
			name:     "question start with ideographic comma",
			line:     "12、遇到这种情况应当减速慢行",
			expected: domain.Line{Kind: domain.LineQuestionStart, Text: "12、遇到这种情况应当减速慢行", Key: "12", Value: "遇到这种情况应当减速慢行"},
		},
		{
			name:     "question start with full-width period",
			line:     "3．驾驶机动车",
			expected: domain.Line{Kind: domain.LineQuestionStart, Text: "3．驾驶机动车", Key: "3", Value: "驾驶机动车"},
		},
		{
			name:     "question start with whitespace",
			line:     "  7   text  ",
			expected: domain.Line{Kind: domain.LineQuestionStart, Text: "7   text", Key: "7", Value: "text"},
		},
		{
			name:     "question start with empty text",
			line:     "8.",
			expected: domain.Line{Kind: domain.LineQuestionStart, Text: "8.", Key: "8"},
		},
		{
			name:     "question start with ideographic space",
			line:     "1.\u3000题目",
			expected: domain.Line{Kind: domain.LineQuestionStart, Text: "1.\u3000题目", Key: "1", Value: "题目"},
		},
		{
			name:     "answer after ideographic space",
			line:     "答案：\u3000错误",
			expected: domain.Line{Kind: domain.LineAnswer, Text: "答案：\u3000错误", Value: "错误"},
		},
		{
			name:     "answer after no-break space",
			line:     "Answer:\u00a0C",
			expected: domain.Line{Kind: domain.LineAnswer, Text: "Answer:\u00a0C", Value: "C"},
		},
		{
			name:     "option with ideographic space",
			line:     "B、\u3000\u3000左转",
			expected: domain.Line{Kind: domain.LineOption, Text: "B、\u3000\u3000左转", Key: "B", Value: "左转"},
		},
		{
			name:     "answer with full-width colon",
			line:     "答案：B",
			expected: domain.Line{Kind: domain.LineAnswer, Text: "答案：B", Value: "B"},
		},
		{
			name:     "answer in English",
			line:     "Answer: ABD",
			expected: domain.Line{Kind: domain.LineAnswer, Text: "Answer: ABD", Value: "ABD"},
		},
		{
			name:     "answer word",
			line:     "答案:正确",
			expected: domain.Line{Kind: domain.LineAnswer, Text: "答案:正确", Value: "正确"},
		},
		{
			name:     "answer symbol",
			line:     "答案：×",
			expected: domain.Line{Kind: domain.LineAnswer, Text: "答案：×", Value: "×"},
		},
		{
			name:     "option",
			line:     "A. 30",
			expected: domain.Line{Kind: domain.LineOption, Text: "A. 30", Key: "A", Value: "30"},
		},
		{
			name:     "option with ideographic comma",
			line:     "D、减速",
			expected: domain.Line{Kind: domain.LineOption, Text: "D、减速", Key: "D", Value: "减速"},
		},
		{
			name:     "letter beyond D is continuation",
			line:     "E. something",
			expected: domain.Line{Kind: domain.LineContinuation, Text: "E. something", Value: "E. something"},
		},
		{
			name:     "lowercase answer value does not match",
			line:     "答案：b",
			expected: domain.Line{Kind: domain.LineContinuation, Text: "答案：b", Value: "答案：b"},
		},
		{
			name:     "plain text",
			line:     "继续的题目文字",
			expected: domain.Line{Kind: domain.LineContinuation, Text: "继续的题目文字", Value: "继续的题目文字"},
		},
		{
			name:     "single character is noise",
			line:     " x ",
			expected: domain.Line{Kind: domain.LineNoise, Text: "x"},
		},
		{
			name:     "empty line is noise",
			line:     "   ",
			expected: domain.Line{Kind: domain.LineNoise},
		},
		{
			name:     "number without separator",
			line:     "12abc",
			expected: domain.Line{Kind: domain.LineContinuation, Text: "12abc", Value: "12abc"},
		},
	}

	c := NewClassifier()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.line))
		})
	}
}

func TestClassifier_Precedence(t *testing.T) {
	c := NewClassifier()

	// An option-shaped answer line is an answer.
	assert.Equal(t, domain.LineAnswer, c.Classify("Answer: A").Kind)

	// Digits win over everything else.
	assert.Equal(t, domain.LineQuestionStart, c.Classify("1 A. option-like").Kind)
}

func TestStartsQuestion(t *testing.T) {
	assert.True(t, StartsQuestion("5. What is the speed limit?\nA. 30"))
	assert.True(t, StartsQuestion("12、题目"))
	assert.False(t, StartsQuestion("A. 30"))
	assert.False(t, StartsQuestion(""))
	assert.False(t, StartsQuestion(" 5. leading space"))
}
