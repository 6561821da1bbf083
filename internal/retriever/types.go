package retriever

import (
	"codeberg.org/asklavinia/server/internal/llm"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Client struct {
	pool     *pgxpool.Pool
	embedder llm.Embedder
	topK     int
}

type SearchResult struct {
	ID           string
	DocumentName string
	ArticleTitle string
	Page         int
	Content      string
	Similarity   float32
}

type RetrieverConfig struct {
	TopK int
}
