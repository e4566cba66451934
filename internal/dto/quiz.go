package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"quizcraft/internal/domain"
)

// GenerateQuizRequest is the body of POST /api/quiz/generate
// @Description Request body for generating a quiz
type GenerateQuizRequest struct {
	Topic string `json:"topic"`
}

// Question represents one multiple-choice question on the wire
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateQuizResponse is the success body of POST /api/quiz/generate
// @Description Generated quiz
type GenerateQuizResponse struct {
	ID        string     `json:"id"`
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

// QuizPayload accepts a quiz either as a bare question array or wrapped in
// an object under "questions". The union is resolved once here, at the
// input boundary, so no downstream code shape-sniffs.
type QuizPayload struct {
	Questions []Question
}

func (p *QuizPayload) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &p.Questions)
	}

	var wrapped struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Questions == nil {
		return errors.New("quiz payload must be a question array or an object with a questions field")
	}
	p.Questions = wrapped.Questions
	return nil
}

// MarshalJSON writes the wrapped shape, the canonical output form.
func (p QuizPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Questions []Question `json:"questions"`
	}{Questions: p.Questions})
}

// SubmitQuizRequest is the body of POST /api/quiz/submit. UserAnswers is
// positionally correlated with the quiz questions; a null element means
// the learner left that question unanswered.
// @Description Request body for scoring submitted answers
type SubmitQuizRequest struct {
	QuizData    *QuizPayload `json:"quizData"`
	UserAnswers []*int       `json:"userAnswers"`
}

// FeedbackItem is the per-question scoring result on the wire
type FeedbackItem struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

// SubmitQuizResponse is the success body of POST /api/quiz/submit
// @Description Score report for a submitted answer set
type SubmitQuizResponse struct {
	Score    int            `json:"score"`
	Total    int            `json:"total"`
	Feedback []FeedbackItem `json:"feedback"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToDomain converts the wire payload into domain questions.
func (p *QuizPayload) ToDomain() []domain.Question {
	questions := make([]domain.Question, len(p.Questions))
	for i, q := range p.Questions {
		questions[i] = domain.Question{
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectAnswer,
			Explanation:  q.Explanation,
		}
	}
	return questions
}

// NewGenerateQuizResponse converts a domain quiz into its wire form.
func NewGenerateQuizResponse(quiz *domain.Quiz) *GenerateQuizResponse {
	questions := make([]Question, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = Question{
			Question:      q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectIndex,
			Explanation:   q.Explanation,
		}
	}
	return &GenerateQuizResponse{
		ID:        quiz.ID,
		Topic:     quiz.Topic,
		Questions: questions,
	}
}

// NewSubmitQuizResponse converts a domain score report into its wire form.
func NewSubmitQuizResponse(report *domain.ScoreReport) *SubmitQuizResponse {
	feedback := make([]FeedbackItem, len(report.Feedback))
	for i, f := range report.Feedback {
		feedback[i] = FeedbackItem{
			Question:      f.Question,
			UserAnswer:    f.UserAnswer,
			CorrectAnswer: f.CorrectAnswer,
			IsCorrect:     f.IsCorrect,
			Explanation:   f.Explanation,
		}
	}
	return &SubmitQuizResponse{
		Score:    report.Score,
		Total:    report.Total,
		Feedback: feedback,
	}
}
