package service

import (
	"quizcraft/internal/domain"
)

// Placeholder texts substituted when an index cannot be resolved against a
// question's options. Substitution is always preferred over failure for
// anomalies confined to a single question entry.
const (
	noAnswerText      = "No answer provided"
	missingAnswerText = "Correct answer missing"
)

// Evaluator scores an answer set against a quiz. It performs no I/O, holds
// no state and is fully deterministic given its two inputs, so any number
// of evaluations may run concurrently.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate computes a score report for answers against quiz. The two
// sequences are correlated strictly by position. It fails only when quiz
// or answers is entirely absent; shape problems inside individual entries
// are absorbed: an absent correct index scores as index 0 (the decoded form
// does not distinguish the two), an unanswered or out-of-range
// selection simply never matches, and unresolvable option texts are
// replaced with fixed placeholders.
func (e *Evaluator) Evaluate(quiz *domain.Quiz, answers []*int) (*domain.ScoreReport, error) {
	if quiz == nil || answers == nil {
		return nil, domain.NewInvalidInputError("quiz data and user answers are required")
	}

	feedback := make([]domain.FeedbackItem, 0, len(quiz.Questions))
	score := 0

	for i, q := range quiz.Questions {
		correctIdx := q.CorrectIndex

		var userIdx *int
		if i < len(answers) {
			userIdx = answers[i]
		}

		isCorrect := userIdx != nil && *userIdx == correctIdx
		if isCorrect {
			score++
		}

		userText := noAnswerText
		if userIdx != nil && *userIdx >= 0 && *userIdx < len(q.Options) {
			userText = q.Options[*userIdx]
		}

		correctText := missingAnswerText
		if correctIdx >= 0 && correctIdx < len(q.Options) {
			correctText = q.Options[correctIdx]
		}

		feedback = append(feedback, domain.FeedbackItem{
			Question:      q.Text,
			UserAnswer:    userText,
			CorrectAnswer: correctText,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		})
	}

	return &domain.ScoreReport{
		Score:    score,
		Total:    len(quiz.Questions),
		Feedback: feedback,
	}, nil
}
