package agent

import (
	"context"

	"codeberg.org/asklavinia/server/internal/retriever"
)

// retrieval dependency, satisfied by retriever.Client
type Retriever interface {
	VectorSearch(ctx context.Context, queryText string, topK int) ([]retriever.SearchResult, error)
	TopK() int
}

// answer to a single question, with the token usage needed for costing
type Answer struct {
	Text              string
	Model             string
	PromptTokens      int
	CompletionTokens  int
	PassagesRetrieved int
}
