package llm

import (
	"fmt"
	"os"
	"strconv"
)

// loadConfig loads LLM configuration from environment variables
func loadConfig() (*Config, error) {
	generatorProvider := Provider(os.Getenv("GENERATOR_PROVIDER"))
	if generatorProvider == "" {
		generatorProvider = ProviderOpenAI // default
	}

	generatorModel := os.Getenv("GENERATOR_MODEL")
	if generatorModel == "" {
		generatorModel = "gpt-3.5-turbo" // default
	}

	var generatorAPIKey string

	switch generatorProvider {
	case ProviderOpenAI:
		generatorAPIKey = os.Getenv("OPENAI_API_KEY")
		if generatorAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	case ProviderAnthropic:
		generatorAPIKey = os.Getenv("ANTHROPIC_API_KEY")
		if generatorAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", generatorProvider)
	}

	// embedder is always OpenAI - the stored index was built with its embeddings
	embedderAPIKey := os.Getenv("OPENAI_API_KEY")
	if embedderAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	embedderModel := os.Getenv("EMBEDDER_MODEL")
	if embedderModel == "" {
		embedderModel = "text-embedding-3-small" // default
	}

	maxTokens := 1024 // default
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			maxTokens = val
		}
	}

	temperature := float32(0.0) // default: deterministic answers about a fixed document
	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature = float32(val)
		}
	}

	return &Config{
		GeneratorProvider: generatorProvider,
		GeneratorAPIKey:   generatorAPIKey,
		GeneratorModel:    generatorModel,
		EmbedderAPIKey:    embedderAPIKey,
		EmbedderModel:     embedderModel,
		MaxTokens:         maxTokens,
		Temperature:       temperature,
	}, nil
}
