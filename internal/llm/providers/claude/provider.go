package claude

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/riffcut/riffcut-server/internal/llm"
	"github.com/riffcut/riffcut-server/internal/plan"
	"github.com/riffcut/riffcut-server/pkg/types"
)

// Provider implements plan.Generator for Anthropic Claude
type Provider struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	enabled bool
}

// NewProvider creates a new Claude provider. An empty API key yields a
// disabled provider, not an error.
func NewProvider(config types.AnthropicConfig) (*Provider, error) {
	if config.APIKey == "" {
		return &Provider{enabled: false}, nil
	}

	return &Provider{
		client:  anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		model:   config.Model,
		timeout: config.Timeout,
		enabled: true,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "anthropic"
}

// IsEnabled returns whether the provider is configured
func (p *Provider) IsEnabled() bool {
	return p.enabled
}

// GeneratePlan executes a single completion. The Messages API has no native
// response-schema parameter, so the schema rides in the system block.
func (p *Provider) GeneratePlan(ctx context.Context, req plan.Request) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	schemaText, err := llm.SchemaInstruction(req.Schema)
	if err != nil {
		return "", err
	}

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: req.System + "\n\n" + schemaText},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Claude API error: %w", err)
	}

	var result string
	for _, content := range response.Content {
		if content.Type == "text" {
			result += content.Text
		}
	}
	return result, nil
}
