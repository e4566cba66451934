package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"quizcraft/internal/config"
	"quizcraft/internal/domain"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider using the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed provider. The credential is
// checked before the client is built so a missing or sample key surfaces
// as a configuration error instead of an upstream rejection.
func NewGeminiProvider(ctx context.Context, cfg config.GeminiConfig) (*GeminiProvider, error) {
	if config.IsPlaceholderAPIKey(cfg.APIKey) {
		return nil, domain.NewConfigurationError(
			"Gemini API key is missing or still set to a placeholder; set GEMINI_API_KEY or llm.gemini.api_key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, domain.NewExternalServiceError("failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Generate sends the request with JSON output enforced at request time.
func (p *GeminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if req.System != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return "", mapGeminiError(err)
	}

	text := result.Text()
	if text == "" {
		return "", domain.NewMalformedResponseError("Gemini returned a response with no text candidates", nil)
	}
	return text, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

// mapGeminiError translates SDK errors into the domain taxonomy. A 400
// carrying Gemini's "API key not valid" message, or any 401/403, is the
// invalid-credential variant; everything else is a generic upstream failure.
func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "API key not valid"):
			return domain.NewInvalidAPIKeyError(err)
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return domain.NewInvalidAPIKeyError(err)
		default:
			return domain.NewExternalServiceError(
				fmt.Sprintf("Gemini request failed with status %d", apiErr.Code), err)
		}
	}
	return domain.NewExternalServiceError("Gemini request failed", err)
}

var _ Provider = (*GeminiProvider)(nil)
