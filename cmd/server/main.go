package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/riffcut/riffcut-server/internal/api"
	"github.com/riffcut/riffcut-server/internal/llm/providers/claude"
	"github.com/riffcut/riffcut-server/internal/llm/providers/gemini"
	"github.com/riffcut/riffcut-server/internal/llm/providers/openai"
	"github.com/riffcut/riffcut-server/internal/llm/providers/openrouter"
	"github.com/riffcut/riffcut-server/internal/logging"
	"github.com/riffcut/riffcut-server/internal/plan"
	"github.com/riffcut/riffcut-server/pkg/types"
)

const defaultPort = 8686

// createGenerator creates the appropriate provider based on configuration
func createGenerator(config types.LLMConfig) (plan.Generator, error) {
	switch config.Provider {
	case "anthropic", "claude":
		return claude.NewProvider(config.Anthropic)

	case "google", "gemini":
		return gemini.NewProvider(config.Google)

	case "openai":
		return openai.NewProvider(config.OpenAI)

	case "openrouter":
		return openrouter.NewProvider(config.OpenRouter)

	case "":
		return nil, fmt.Errorf("llm.provider not specified in config")

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: anthropic, google, openai, openrouter)", config.Provider)
	}
}

func main() {
	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var (
		configPath = flag.String("config", "configs/server.yaml", "Path to configuration file")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
	)
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		config.Server.Port = *port
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaultPort
	}

	logger := logging.NewLogger(config.Server.LogLevel)

	generator, err := createGenerator(config.LLM)
	if err != nil {
		log.Fatalf("Failed to create provider: %v", err)
	}
	if generator.IsEnabled() {
		logger.Info("generative provider enabled", "provider", generator.Name())
	} else {
		logger.Warn("generative provider disabled, every plan will use the fallback", "provider", generator.Name())
	}

	planner := plan.NewPlanner(generator, logging.WithComponent(logger, "planner"))

	server := api.NewServer(api.ServerConfig{
		Port:      config.Server.Port,
		Planner:   planner,
		Logger:    logging.WithComponent(logger, "api"),
		StartTime: time.Now(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

// loadConfig reads and parses the YAML configuration file
func loadConfig(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the config file
	expandedData := os.ExpandEnv(string(data))

	var config types.Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}
