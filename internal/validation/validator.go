package validation

import (
	"strings"

	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
)

// maxTopicLength caps the topic solely to bound prompt size. The topic's
// content is never inspected; it is opaque text.
const maxTopicLength = 300

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the quiz generation request
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Topic) == "" {
		errs = append(errs, domain.NewMissingFieldError("topic"))
	} else if len(req.Topic) > maxTopicLength {
		errs = append(errs, domain.NewOutOfRangeError("topic", len(req.Topic), 1, maxTopicLength))
	}

	return errs
}

// ValidateSubmitQuizRequest validates the quiz submission request. Only
// the presence of the two top-level fields is enforced; anomalies inside
// individual entries are the evaluator's concern and are absorbed there.
func (v *Validator) ValidateSubmitQuizRequest(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if req.QuizData == nil {
		errs = append(errs, domain.NewMissingFieldError("quizData"))
	}
	if req.UserAnswers == nil {
		errs = append(errs, domain.NewMissingFieldError("userAnswers"))
	}

	return errs
}
