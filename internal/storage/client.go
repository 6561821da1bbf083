package storage

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/asklavinia/server/internal/chunker"
	"codeberg.org/asklavinia/server/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

type Client struct {
	pool *pgxpool.Pool
}

func NewClient(ctx context.Context, connString string) (*Client, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{pool: pool}, nil
}

// wraps an existing pool
func NewClientWithPool(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

func (c *Client) Close() {
	c.pool.Close()
}

// creates the vector extension, chunk table and similarity index if missing
func (c *Client) EnsureSchema(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, createVectorExtensionQuery); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	if _, err := c.pool.Exec(ctx, createSchemaQuery); err != nil {
		return fmt.Errorf("failed to create agreement_chunks table: %w", err)
	}

	if _, err := c.pool.Exec(ctx, createIndexQuery); err != nil {
		return fmt.Errorf("failed to create embedding index: %w", err)
	}

	return nil
}

// deletes all existing chunks from the database
func (c *Client) ClearAllChunks(ctx context.Context) error {
	_, err := c.pool.Exec(ctx, deleteAllChunksQuery)
	if err != nil {
		return fmt.Errorf("failed to clear chunks: %w", err)
	}

	return nil
}

// inserts multiple chunks with their embeddings in a single transaction
func (c *Client) InsertChunksBatch(ctx context.Context, chunks []chunker.Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunks and embeddings length mismatch")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// defer rollback - will be no-op if commit succeeds
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	batch := &pgx.Batch{}

	for i, chunk := range chunks {
		batch.Queue(insertChunkQuery,
			chunk.DocumentName,
			chunk.ArticleTitle,
			chunk.Page,
			chunk.Content,
			pgvector.NewVector(embeddings[i]),
		)
	}

	br := tx.SendBatch(ctx, batch)

	for i := range len(chunks) {
		_, err := br.Exec()
		if err != nil {
			br.Close() //nolint:errcheck,gosec // error path cleanup
			return fmt.Errorf("failed to insert chunk %d: %w", i, err)
		}
	}

	// must close batch results before committing, otherwise connection is still "busy"
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// returns the total number of chunks in the database
func (c *Client) GetChunkCount(ctx context.Context) (int, error) {
	var count int

	err := c.pool.QueryRow(ctx, getChunkCountQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get chunk count: %w", err)
	}

	return count, nil
}
