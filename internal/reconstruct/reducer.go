package reconstruct

import (
	"slices"

	"github.com/custodia-labs/quizbank/internal/core/domain"
)

// State is the reconstruction accumulator. A State value is never mutated
// by the reducer functions; each returns a new State that may share
// unchanged drafts with its input.
type State struct {
	// Current is the draft being assembled, nil before the first question start.
	Current *domain.Question

	// Closed are drafts ended by a later question start or by Close, in order.
	Closed []*domain.Question

	// Discarded counts non-empty lines that contributed nothing.
	Discarded int
}

// Step folds one classified line into the state.
func Step(s State, line domain.Line) State {
	switch line.Kind {
	case domain.LineQuestionStart:
		s = closeCurrent(s)
		draft := domain.NewDraft(line.Key, line.Value)
		addImages(draft, line.Images)
		s.Current = draft
		return s

	case domain.LineAnswer:
		if s.Current == nil {
			return discard(s, line)
		}
		draft := s.Current.Clone()
		draft.Answer = line.Value
		s.Current = draft
		return s

	case domain.LineOption:
		if s.Current == nil {
			return discard(s, line)
		}
		draft := s.Current.Clone()
		draft.Options[line.Key] = line.Value
		s.Current = draft
		return s

	case domain.LineContinuation:
		if !acceptsContinuation(s.Current) {
			return discard(s, line)
		}
		draft := s.Current.Clone()
		draft.Question += "\n" + line.Value
		s.Current = draft
		return s

	case domain.LineNoise:
		return discard(s, line)

	default:
		return discard(s, line)
	}
}

// EndParagraph attaches the paragraph's images to the current draft unless
// the paragraph itself starts a question, whose images were already claimed
// by its start line.
func EndParagraph(s State, p domain.Paragraph, startsQuestion bool) State {
	if s.Current == nil || startsQuestion || len(p.Images) == 0 {
		return s
	}
	draft := s.Current.Clone()
	addImages(draft, p.Images)
	s.Current = draft
	return s
}

// Close ends the input, moving the current draft to Closed.
func Close(s State) State {
	return closeCurrent(s)
}

func closeCurrent(s State) State {
	if s.Current == nil {
		return s
	}
	s.Closed = append(slices.Clip(s.Closed), s.Current)
	s.Current = nil
	return s
}

// acceptsContinuation reports whether plain text still extends the question.
// Text stops being accepted once any option or answer was recorded.
func acceptsContinuation(q *domain.Question) bool {
	return q != nil && len(q.Options) == 0 && !q.HasAnswer()
}

func discard(s State, line domain.Line) State {
	if line.Text != "" {
		s.Discarded++
	}
	return s
}

func addImages(q *domain.Question, images []string) {
	for _, src := range images {
		if !q.HasImage(src) {
			q.Images = append(q.Images, src)
		}
	}
}
