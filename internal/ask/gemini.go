package ask

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider is the secondary provider, backed by the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// NewGeminiProvider builds the secondary provider. Construction failures are
// wrapped by the caller with NewBrokenProvider, so an unconfigured secondary
// degrades to a terminal-classified failure at call time.
func NewGeminiProvider(ctx context.Context, apiKey, model string, log *slog.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  model,
		log:    log,
	}, nil
}

func (p *GeminiProvider) Name() ProviderName { return ProviderSecondary }

func (p *GeminiProvider) GenerateSQL(ctx context.Context, question string) (string, error) {
	return p.complete(ctx, BuildGenerationPrompt(question))
}

func (p *GeminiProvider) ExplainResults(ctx context.Context, prompt string) (string, error) {
	return p.complete(ctx, prompt)
}

func (p *GeminiProvider) complete(ctx context.Context, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		class := classifyFailure(err)
		if p.log != nil {
			p.log.Error("Gemini API call failed", "error", err, "model", p.model, "failure_class", class)
		}
		return "", &ProviderError{Provider: p.Name(), Class: class, Err: err}
	}

	responseText := result.Text()
	if responseText == "" {
		if p.log != nil {
			p.log.Error("No text content in Gemini response", "model", p.model)
		}
		return "", &ProviderError{
			Provider: p.Name(),
			Class:    FailureTerminal,
			Err:      fmt.Errorf("no text response from Gemini"),
		}
	}

	return responseText, nil
}
