package storage

const (
	createSchemaQuery = `
		CREATE TABLE IF NOT EXISTS agreement_chunks (
			id BIGSERIAL PRIMARY KEY,
			document_name TEXT NOT NULL,
			article_title TEXT NOT NULL,
			page INTEGER NOT NULL,
			content TEXT NOT NULL,
			embedding vector(1536) NOT NULL
		)
	`

	createVectorExtensionQuery = "CREATE EXTENSION IF NOT EXISTS vector"

	createIndexQuery = `
		CREATE INDEX IF NOT EXISTS agreement_chunks_embedding_idx
		ON agreement_chunks
		USING ivfflat (embedding vector_cosine_ops)
	`

	deleteAllChunksQuery = "DELETE FROM agreement_chunks"

	getChunkCountQuery = "SELECT COUNT(*) FROM agreement_chunks"

	insertChunkQuery = `
		INSERT INTO agreement_chunks (document_name, article_title, page, content, embedding)
		VALUES ($1, $2, $3, $4, $5)
	`
)
