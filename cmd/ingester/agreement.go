package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/asklavinia/server/internal/chunker"
	"codeberg.org/asklavinia/server/internal/config"
	"codeberg.org/asklavinia/server/internal/llm"
	"codeberg.org/asklavinia/server/internal/logger"
	"codeberg.org/asklavinia/server/internal/pdftext"
	"codeberg.org/asklavinia/server/internal/storage"
)

// extracts, chunks and embeds the agreement PDF into the vector store
func IngestAgreement(cfg *config.Config, db *pgxpool.Pool, flags config.IngestFlags) error {
	ctx := context.Background()

	logger.Info("starting agreement ingestion", "path", flags.Path, "clear", flags.Clear)

	// use shared connection pool
	storageClient := storage.NewClientWithPool(db)

	if err := storageClient.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	// clear existing chunks if requested
	if flags.Clear {
		logger.Info("clearing existing agreement chunks")

		if err := storageClient.ClearAllChunks(ctx); err != nil {
			return fmt.Errorf("failed to clear existing chunks: %w", err)
		}

		logger.Info("cleared existing chunks")
	}

	// extract page text from the PDF
	logger.Info("extracting text", "path", flags.Path)
	pages, err := pdftext.ExtractPages(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to extract pdf text: %w", err)
	}

	logger.Info("extracted pages", "count", len(pages))

	// split into article-aligned chunks
	documentName := filepath.Base(flags.Path)
	chunks := chunker.ChunkAgreement(documentName, pages, chunker.DefaultOptions())

	if len(chunks) == 0 {
		return fmt.Errorf("no chunks generated from agreement")
	}

	logger.Info("generated chunks", "count", len(chunks))

	// create OpenAI embedder
	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
	})

	// generate embeddings for all chunks
	logger.Info("generating embeddings for chunks")
	texts := make([]string, len(chunks))

	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	embeddings, err := embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	logger.Info("generated embeddings", "count", len(embeddings))

	// insert chunks with embeddings into database
	logger.Info("inserting chunks into database")
	if err := storageClient.InsertChunksBatch(ctx, chunks, embeddings); err != nil {
		return fmt.Errorf("failed to insert chunks: %w", err)
	}

	// verify insertion
	count, err := storageClient.GetChunkCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify chunk count: %w", err)
	}

	logger.Info("successfully ingested agreement",
		"chunks_inserted", len(chunks),
		"total_chunks", count,
	)

	return nil
}
