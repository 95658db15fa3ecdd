package ask

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-haiku-4-5-20251001"

// AnthropicProvider is the primary provider, backed by the Claude Messages API.
type AnthropicProvider struct {
	client *anthropic.Client
	model  anthropic.Model
	log    *slog.Logger
}

// NewAnthropicProvider builds the primary provider. A missing API key is a
// construction error; the caller wraps it with NewBrokenProvider so it
// surfaces as a terminal classification, never a crash.
func NewAnthropicProvider(apiKey, model string, log *slog.Logger) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}
	if model == "" {
		model = defaultAnthropicModel
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &AnthropicProvider{
		client: &client,
		model:  anthropic.Model(model),
		log:    log,
	}, nil
}

func (p *AnthropicProvider) Name() ProviderName { return ProviderPrimary }

// GenerateSQL asks Claude for a raw SQL candidate. The returned text is the
// provider's freeform output; extraction happens in the pipeline.
func (p *AnthropicProvider) GenerateSQL(ctx context.Context, question string) (string, error) {
	return p.complete(ctx, BuildGenerationPrompt(question))
}

func (p *AnthropicProvider) ExplainResults(ctx context.Context, prompt string) (string, error) {
	return p.complete(ctx, prompt)
}

func (p *AnthropicProvider) complete(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: 2000,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		class := classifyFailure(err)
		if p.log != nil {
			p.log.Error("Claude API call failed", "error", err, "model", p.model, "failure_class", class)
		}
		return "", &ProviderError{Provider: p.Name(), Class: class, Err: err}
	}

	responseText := ""
	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			responseText += textBlock.Text
		}
	}

	if responseText == "" {
		if p.log != nil {
			p.log.Error("No text content in Claude response", "model", p.model, "content_blocks", len(message.Content))
		}
		return "", &ProviderError{
			Provider: p.Name(),
			Class:    FailureTerminal,
			Err:      fmt.Errorf("no text response from Claude"),
		}
	}

	return responseText, nil
}
