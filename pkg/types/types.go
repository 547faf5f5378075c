package types

import "time"

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	LLM    LLMConfig    `yaml:"llm"`
}

// ServerConfig defines the HTTP listener parameters
type ServerConfig struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// LLMConfig defines the generative provider configuration
type LLMConfig struct {
	Provider string `yaml:"provider"` // "anthropic", "google", "openai", "openrouter"

	// Provider-specific configurations
	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	Google     GoogleConfig     `yaml:"google"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
}

// AnthropicConfig for Claude
type AnthropicConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"` // e.g., "claude-3-5-sonnet-20241022"
	Timeout time.Duration `yaml:"timeout"`
}

// GoogleConfig for Gemini
type GoogleConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"` // e.g., "gemini-2.0-flash-exp"
	Timeout time.Duration `yaml:"timeout"`
}

// OpenAIConfig for GPT models
type OpenAIConfig struct {
	APIKey       string        `yaml:"api_key"`
	Model        string        `yaml:"model"`        // e.g., "gpt-4o"
	Organization string        `yaml:"organization"` // Optional
	Timeout      time.Duration `yaml:"timeout"`
}

// OpenRouterConfig for OpenRouter-hosted models
type OpenRouterConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"` // e.g., "anthropic/claude-3.5-sonnet"
	Timeout time.Duration `yaml:"timeout"`
}
