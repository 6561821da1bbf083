package llm

import "context"

// combines embedding generation and answer generation
type LLM interface {
	Embedder
	TextGenerator
}

// represents different LLM providers
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// generates embeddings from text
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// generates answer text from a prompt, reporting token usage
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// conversation message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int // 0 means use the generator's configured default
}

// token usage split into prompt and completion counts, as required by the
// cost estimate
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

// holds configuration for LLM initialization
type Config struct {
	// generator configuration
	GeneratorProvider Provider
	GeneratorAPIKey   string
	GeneratorModel    string // e.g., "gpt-3.5-turbo"

	// embedder configuration
	EmbedderAPIKey string
	EmbedderModel  string // e.g., "text-embedding-3-small"

	// optional generator parameters
	MaxTokens   int
	Temperature float32
}
