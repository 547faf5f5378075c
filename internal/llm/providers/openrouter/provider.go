package openrouter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/riffcut/riffcut-server/internal/llm"
	"github.com/riffcut/riffcut-server/internal/plan"
	"github.com/riffcut/riffcut-server/pkg/types"
)

const (
	// OpenRouter API base URL
	openRouterBaseURL = "https://openrouter.ai/api/v1"

	// OpenRouter headers
	httpReferer = "https://github.com/riffcut/riffcut-server"
	appTitle    = "riffcut-server"
)

// Provider implements plan.Generator for OpenRouter
type Provider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	enabled bool
}

// NewProvider creates a new OpenRouter provider.
// OpenRouter uses the OpenAI-compatible API with a custom base URL.
func NewProvider(config types.OpenRouterConfig) (*Provider, error) {
	if config.APIKey == "" {
		return &Provider{enabled: false}, nil
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = openRouterBaseURL
	clientConfig.HTTPClient = &http.Client{
		Transport: &headerTransport{
			Base: http.DefaultTransport,
			Headers: map[string]string{
				"HTTP-Referer": httpReferer,
				"X-Title":      appTitle,
			},
		},
	}

	return &Provider{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   config.Model,
		timeout: config.Timeout,
		enabled: true,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "openrouter"
}

// IsEnabled returns whether the provider is configured
func (p *Provider) IsEnabled() bool {
	return p.enabled
}

// GeneratePlan executes a single chat completion with the schema inlined as
// an instruction. JSON mode is not requested because support varies by
// routed model.
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

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System + "\n\n" + schemaText},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenRouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// headerTransport adds custom headers to HTTP requests
type headerTransport struct {
	Base    http.RoundTripper
	Headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}
	return t.Base.RoundTrip(req)
}
