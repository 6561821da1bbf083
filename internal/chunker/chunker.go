package chunker

import (
	"strings"

	"codeberg.org/asklavinia/server/internal/logger"
	"codeberg.org/asklavinia/server/internal/pdftext"
)

func DefaultOptions() ChunkOptions {
	return ChunkOptions{
		MaxTokens:       800,
		OverlapTokens:   100,
		PreserveHeaders: true,
	}
}

// splits extracted agreement pages into article-scoped chunks.
// the QA prompt asks the model to cite article numbers, so chunks carry
// the article heading they fall under.
func ChunkAgreement(documentName string, pages []pdftext.Page, opts ChunkOptions) []Chunk {
	sections := splitByArticles(pages)

	var chunks []Chunk

	for _, section := range sections {
		if strings.TrimSpace(section.Content) == "" {
			continue
		}

		if estimateTokens(section.Content) <= opts.MaxTokens {
			chunks = append(chunks, Chunk{
				DocumentName: documentName,
				ArticleTitle: section.Title,
				Page:         section.Page,
				Content:      strings.TrimSpace(section.Content),
			})

			continue
		}

		for _, sub := range splitLargeSection(section, opts) {
			chunks = append(chunks, Chunk{
				DocumentName: documentName,
				ArticleTitle: section.Title,
				Page:         section.Page,
				Content:      strings.TrimSpace(sub),
			})
		}
	}

	logger.Info("chunked agreement",
		"document", documentName,
		"pages", len(pages),
		"sections", len(sections),
		"chunks_generated", len(chunks),
	)

	return chunks
}
