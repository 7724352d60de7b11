package nl2sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Annany2002/querygate/config"
)

var (
	ErrEmptyCompletion   = errors.New("generation returned no completion")
	ErrBlockedCompletion = errors.New("generation stopped without a usable completion")
)

// Generator sends one prompt and returns the completion text unchanged.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator builds the provider selected in cfg.
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIConfig{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
		})
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", cfg.Provider)
	}
}
