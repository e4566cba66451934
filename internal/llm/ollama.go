package llm

import (
	"context"
	"net/http"
	"time"

	"quizcraft/internal/config"
	"quizcraft/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider implements Provider against a local Ollama server. It is
// the development-time alternative to Gemini and needs no credential.
type OllamaProvider struct {
	llm   *ollama.LLM
	model string
}

func NewOllamaProvider(cfg config.OllamaConfig) (*OllamaProvider, error) {
	httpClient := &http.Client{Timeout: 60 * time.Second}
	llmClient, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, domain.NewExternalServiceError("failed to create Ollama client", err)
	}
	return &OllamaProvider{
		llm:   llmClient,
		model: cfg.Model,
	}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, req.System),
		llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt),
	}

	resp, err := p.llm.GenerateContent(ctx, messages, llms.WithJSONMode())
	if err != nil {
		return "", domain.NewExternalServiceError("Ollama request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewMalformedResponseError("Ollama returned a response with no choices", nil)
	}
	return resp.Choices[0].Content, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

var _ Provider = (*OllamaProvider)(nil)
