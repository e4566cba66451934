package domain

// OptionCount is the number of answer options every question carries.
// Option order is significant: the index identifies an option and is
// preserved verbatim from generation through scoring.
const OptionCount = 4

// Question represents one multiple-choice item. CorrectIndex must be a
// valid index into Options; payloads that violate this are tolerated by
// the evaluator, which falls back to index 0 rather than rejecting the
// whole quiz.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Quiz is an ordered sequence of questions. Sequence order is the
// canonical question numbering used by scoring and display.
type Quiz struct {
	ID        string
	Topic     string
	Questions []Question
}

// HasCorrectOption reports whether the question's correct index actually
// resolves to one of its options.
func (q *Question) HasCorrectOption() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

// FeedbackItem is the per-question scoring result.
type FeedbackItem struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	Explanation   string
}

// ScoreReport summarizes an answer set scored against a quiz. It is
// derived per evaluation call and never stored.
type ScoreReport struct {
	Score    int
	Total    int
	Feedback []FeedbackItem
}
