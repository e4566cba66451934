package quizgen

import (
	"context"
	"errors"
	"fmt"

	"quizcraft/internal/domain"
	"quizcraft/internal/llm"
	"quizcraft/internal/logger"
	"quizcraft/internal/util"

	"go.uber.org/zap"
)

// systemPrompt is the static instruction payload sent on every generation
// request. It is a fixed template: only the requested question count is
// substituted, never caller input.
const systemPrompt = `You are a quiz generator. Respond with JSON only: no prose, no markdown fencing.
Your entire response must be a single JSON object with one top-level field "questions",
holding an array of exactly %d question objects. Each question object must have:
1. "question": the question text (string).
2. "options": an array of exactly 4 answer option strings.
3. "correctAnswer": the index (integer 0-3) of the correct option.
4. "explanation": a brief explanation of the correct answer (string).`

// userPromptTemplate carries the topic verbatim. The topic is opaque text;
// no escaping is applied beyond the transport's JSON encoding.
const userPromptTemplate = "Generate a multiple-choice quiz with %d questions about the following topic: %s"

// Generator implements domain.QuizGenerator on top of an llm.Provider.
type Generator struct {
	provider      llm.Provider
	questionCount int
}

// NewGenerator creates a quiz generator requesting questionCount questions
// per quiz.
func NewGenerator(provider llm.Provider, questionCount int) *Generator {
	return &Generator{
		provider:      provider,
		questionCount: questionCount,
	}
}

// Generate builds the constrained generation request, invokes the model
// and normalizes its reply into a canonical quiz. The returned quiz is
// owned by the caller; the generator retains no reference to it.
func (g *Generator) Generate(ctx context.Context, topic string) (*domain.Quiz, error) {
	l := logger.Get()

	req := llm.Request{
		System: fmt.Sprintf(systemPrompt, g.questionCount),
		Prompt: fmt.Sprintf(userPromptTemplate, g.questionCount, topic),
	}

	raw, err := g.provider.Generate(ctx, req)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewExternalServiceError("quiz generation request failed", err)
	}

	questions, err := normalizeQuestions(raw)
	if err != nil {
		// Raw payload goes to server-side diagnostics only, never to callers.
		l.Error("Failed to normalize model response",
			zap.Error(err),
			zap.String("model", g.provider.ModelID()),
			zap.String("raw_response", raw),
		)
		return nil, err
	}

	if len(questions) != g.questionCount {
		l.Warn("Model returned unexpected question count",
			zap.Int("requested", g.questionCount),
			zap.Int("returned", len(questions)),
		)
	}

	return &domain.Quiz{
		ID:        util.NewULID(),
		Topic:     topic,
		Questions: questions,
	}, nil
}

var _ domain.QuizGenerator = (*Generator)(nil)
