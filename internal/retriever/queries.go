package retriever

const (
	vectorSearchQuery = `
		SELECT
			id::text,
			document_name,
			article_title,
			page,
			content,
			1 - (embedding <=> $1) AS similarity
		FROM agreement_chunks
		ORDER BY embedding <=> $1
		LIMIT $2
	`
)
