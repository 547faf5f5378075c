package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/riffcut/riffcut-server/internal/plan"
	"github.com/riffcut/riffcut-server/pkg/types"
)

// Provider implements plan.Generator for Google Gemini
type Provider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	enabled bool
}

// NewProvider creates a new Gemini provider. An empty API key yields a
// disabled provider, not an error.
func NewProvider(config types.GoogleConfig) (*Provider, error) {
	if config.APIKey == "" {
		return &Provider{enabled: false}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.APIKey,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		client:  client,
		model:   config.Model,
		timeout: config.Timeout,
		enabled: true,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "gemini"
}

// IsEnabled returns whether the provider is configured
func (p *Provider) IsEnabled() bool {
	return p.enabled
}

// GeneratePlan executes a single structured-output completion. Gemini
// enforces the schema natively via ResponseSchema.
func (p *Provider) GeneratePlan(ctx context.Context, req plan.Request) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(req.System)},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   convertSchema(req.Schema),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.User), config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates in response")
	}

	var result string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			result += part.Text
		}
	}
	return result, nil
}
