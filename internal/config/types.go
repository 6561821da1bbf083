package config

type Config struct {
	DatabaseURL     string
	OpenAIKey       string
	AnthropicKey    string
	QuestionLogPath string
	AgreementPath   string
	CostTablePath   string
	Environment     string
}

type IngestFlags struct {
	Path  string
	Clear bool
}
