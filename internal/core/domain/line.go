package domain

// LineKind tags a classified line of paragraph text.
type LineKind int

// Line kinds, in the order the classifier tries them.
const (
	// LineNoise is a line too short to carry text.
	LineNoise LineKind = iota

	// LineQuestionStart opens a new question ("12. text").
	LineQuestionStart

	// LineAnswer records the answer ("答案：B").
	LineAnswer

	// LineOption records an option ("A. text").
	LineOption

	// LineContinuation is plain text that may extend the question text.
	LineContinuation
)

// String returns the kind name.
func (k LineKind) String() string {
	switch k {
	case LineNoise:
		return "noise"
	case LineQuestionStart:
		return "question_start"
	case LineAnswer:
		return "answer"
	case LineOption:
		return "option"
	case LineContinuation:
		return "continuation"
	default:
		return "unknown"
	}
}

// Line is one stripped line of paragraph text with its classification.
type Line struct {
	Kind LineKind

	// Text is the stripped line.
	Text string

	// Key is the question id for LineQuestionStart and the option letter for LineOption.
	Key string

	// Value is the question text, option text or answer value.
	Value string

	// Images are the images of the paragraph the line came from.
	// Only a question start claims them.
	Images []string
}
