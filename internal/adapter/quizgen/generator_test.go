package quizgen

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"quizcraft/internal/domain"
	"quizcraft/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider implements llm.Provider with canned behavior.
type stubProvider struct {
	generateFunc func(ctx context.Context, req llm.Request) (string, error)
	lastRequest  llm.Request
}

func (s *stubProvider) Generate(ctx context.Context, req llm.Request) (string, error) {
	s.lastRequest = req
	return s.generateFunc(ctx, req)
}

func (s *stubProvider) ModelID() string { return "stub-model" }

func quizReplyJSON(n int) string {
	out := `{"questions": [`
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["a", "b", "c", "d"],
			"correctAnswer": %d,
			"explanation": "Because."
		}`, i+1, i%4)
	}
	return out + `]}`
}

func TestGenerate_Success(t *testing.T) {
	provider := &stubProvider{
		generateFunc: func(ctx context.Context, req llm.Request) (string, error) {
			return quizReplyJSON(10), nil
		},
	}

	g := NewGenerator(provider, 10)
	quiz, err := g.Generate(context.Background(), "networking basics")
	require.NoError(t, err)

	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, "networking basics", quiz.Topic)
	require.Len(t, quiz.Questions, 10)
	for _, q := range quiz.Questions {
		assert.Len(t, q.Options, domain.OptionCount)
		assert.True(t, q.HasCorrectOption())
	}
}

func TestGenerate_PromptComposition(t *testing.T) {
	provider := &stubProvider{
		generateFunc: func(ctx context.Context, req llm.Request) (string, error) {
			return quizReplyJSON(1), nil
		},
	}

	g := NewGenerator(provider, 10)
	_, err := g.Generate(context.Background(), "the Baroque era")
	require.NoError(t, err)

	// The topic appears verbatim in the user turn and never in the
	// static system instruction.
	assert.Contains(t, provider.lastRequest.Prompt, "the Baroque era")
	assert.NotContains(t, provider.lastRequest.System, "Baroque")
	assert.Contains(t, provider.lastRequest.System, "JSON")
	assert.Contains(t, provider.lastRequest.System, "exactly 10 question objects")
}

func TestGenerate_ToleratesOffCountReply(t *testing.T) {
	provider := &stubProvider{
		generateFunc: func(ctx context.Context, req llm.Request) (string, error) {
			return quizReplyJSON(7), nil
		},
	}

	g := NewGenerator(provider, 10)
	quiz, err := g.Generate(context.Background(), "topic")
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 7)
}

func TestGenerate_MalformedReply(t *testing.T) {
	provider := &stubProvider{
		generateFunc: func(ctx context.Context, req llm.Request) (string, error) {
			return "I am sorry, I cannot do that.", nil
		},
	}

	g := NewGenerator(provider, 10)
	_, err := g.Generate(context.Background(), "topic")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeMalformedResponse, domainErr.Code)
}

func TestGenerate_PassesThroughProviderDomainErrors(t *testing.T) {
	provider := &stubProvider{
		generateFunc: func(ctx context.Context, req llm.Request) (string, error) {
			return "", domain.NewInvalidAPIKeyError(errors.New("API key not valid"))
		},
	}

	g := NewGenerator(provider, 10)
	_, err := g.Generate(context.Background(), "topic")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidAPIKey, domainErr.Code)
}

func TestGenerate_WrapsUnclassifiedProviderErrors(t *testing.T) {
	provider := &stubProvider{
		generateFunc: func(ctx context.Context, req llm.Request) (string, error) {
			return "", errors.New("connection reset by peer")
		},
	}

	g := NewGenerator(provider, 10)
	_, err := g.Generate(context.Background(), "topic")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExternalService, domainErr.Code)
}
