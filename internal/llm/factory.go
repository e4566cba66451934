package llm

import (
	"context"
	"fmt"

	"quizcraft/internal/config"
	"quizcraft/internal/domain"
)

// NewProvider creates a Provider from configuration.
func NewProvider(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "ollama":
		return NewOllamaProvider(cfg.Ollama)
	default:
		return nil, domain.NewConfigurationError(
			fmt.Sprintf("unknown LLM provider %q: expected gemini or ollama", cfg.Provider))
	}
}
