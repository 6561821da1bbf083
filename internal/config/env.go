package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultQuestionLogPath = "askl.db"
	defaultAgreementPath   = "docs/Evergreen-Contract-2022-2024.pdf"
	defaultCostTablePath   = "openai_costs.json"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	// .env file is optional in production
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	questionLogPath := os.Getenv("QUESTION_LOG_PATH")
	if questionLogPath == "" {
		questionLogPath = defaultQuestionLogPath
	}

	agreementPath := os.Getenv("AGREEMENT_PATH")
	if agreementPath == "" {
		agreementPath = defaultAgreementPath
	}

	costTablePath := os.Getenv("COST_TABLE_PATH")
	if costTablePath == "" {
		costTablePath = defaultCostTablePath
	}

	return &Config{
		DatabaseURL:     databaseURL,
		OpenAIKey:       openaiKey,
		AnthropicKey:    anthropicKey,
		QuestionLogPath: questionLogPath,
		AgreementPath:   agreementPath,
		CostTablePath:   costTablePath,
		Environment:     environment,
	}, nil
}
