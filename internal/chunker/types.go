package chunker

// one indexable passage of the agreement
type Chunk struct {
	DocumentName string
	ArticleTitle string
	Page         int
	Content      string
}

// a contiguous stretch of text under one article heading
type Section struct {
	Title   string
	Page    int
	Content string
}

type ChunkOptions struct {
	MaxTokens       int
	OverlapTokens   int
	PreserveHeaders bool
}
