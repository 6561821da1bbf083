package retriever

import (
	"context"
	"fmt"

	"codeberg.org/asklavinia/server/internal/llm"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// creates a retriever over an existing pool and embedder,
// with top-K read from the environment
func New(pool *pgxpool.Pool, embedder llm.Embedder) *Client {
	config := loadRetrieverConfig()

	return &Client{
		pool:     pool,
		embedder: embedder,
		topK:     config.TopK,
	}
}

// returns the configured number of passages to retrieve per question
func (c *Client) TopK() int {
	return c.topK
}

// embeds the question and runs a cosine nearest-neighbor search
// over the stored agreement chunks
func (c *Client) VectorSearch(ctx context.Context, queryText string, topK int) ([]SearchResult, error) {
	if topK <= 0 {
		topK = c.topK
	}

	embedding, err := c.embedder.GenerateEmbedding(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	rows, err := c.pool.Query(ctx, vectorSearchQuery, pgvector.NewVector(embedding), topK)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}

	defer rows.Close()

	var results []SearchResult

	for rows.Next() {
		var result SearchResult

		err := rows.Scan(
			&result.ID,
			&result.DocumentName,
			&result.ArticleTitle,
			&result.Page,
			&result.Content,
			&result.Similarity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}
