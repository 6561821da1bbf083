package llm

import (
	"fmt"
)

// combines an Embedder and a TextGenerator into a single LLM
type CompositeLLM struct {
	Embedder
	TextGenerator
}

// creates a new LLM with auto-configuration from environment variables
func NewLLM() (LLM, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewLLMWithConfig(config)
}

// creates a new LLM with explicit configuration
func NewLLMWithConfig(config *Config) (LLM, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// create generator based on provider
	var generator TextGenerator

	switch config.GeneratorProvider {
	case ProviderOpenAI:
		generator = NewOpenAIGenerator(OpenAIConfig{
			APIKey:      config.GeneratorAPIKey,
			Model:       config.GeneratorModel,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		})
	case ProviderAnthropic:
		generator = NewAnthropicGenerator(AnthropicConfig{
			APIKey:      config.GeneratorAPIKey,
			Model:       config.GeneratorModel,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		})
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", config.GeneratorProvider)
	}

	embedder := NewOpenAIEmbedder(OpenAIConfig{
		APIKey: config.EmbedderAPIKey,
		Model:  config.EmbedderModel,
	})

	return &CompositeLLM{
		Embedder:      embedder,
		TextGenerator: generator,
	}, nil
}
