package service

import (
	"context"

	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
	"quizcraft/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the two operations exposed at the service boundary.
type QuizService interface {
	// GenerateQuiz authors a new quiz on the requested topic.
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)

	// SubmitQuiz scores an answer set against a quiz supplied by the caller.
	SubmitQuiz(req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

type quizService struct {
	generator domain.QuizGenerator
	evaluator *Evaluator
}

// NewQuizService creates a stateless quiz service. Nothing is retained
// between calls: generated quizzes are handed to the caller by value and
// submitted back in full for scoring.
func NewQuizService(generator domain.QuizGenerator) QuizService {
	return &quizService{
		generator: generator,
		evaluator: NewEvaluator(),
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	quiz, err := s.generator.Generate(ctx, req.Topic)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Generated quiz",
		zap.String("quiz_id", quiz.ID),
		zap.String("topic", quiz.Topic),
		zap.Int("questions", len(quiz.Questions)),
	)

	return dto.NewGenerateQuizResponse(quiz), nil
}

func (s *quizService) SubmitQuiz(req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if req.QuizData == nil || req.UserAnswers == nil {
		return nil, domain.NewInvalidInputError("quizData and userAnswers are required")
	}

	quiz := &domain.Quiz{Questions: req.QuizData.ToDomain()}
	report, err := s.evaluator.Evaluate(quiz, req.UserAnswers)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Scored quiz submission",
		zap.Int("score", report.Score),
		zap.Int("total", report.Total),
	)

	return dto.NewSubmitQuizResponse(report), nil
}
