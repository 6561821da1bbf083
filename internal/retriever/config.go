package retriever

import (
	"os"
	"strconv"
)

const defaultTopK = 4

// loads retriever configuration from environment variables
func loadRetrieverConfig() *RetrieverConfig {
	topK := defaultTopK

	if topKStr := os.Getenv("RETRIEVER_TOP_K"); topKStr != "" {
		if val, err := strconv.Atoi(topKStr); err == nil && val > 0 {
			topK = val
		}
	}

	return &RetrieverConfig{TopK: topK}
}
