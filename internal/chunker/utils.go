package chunker

import (
	"fmt"
	"regexp"
	"strings"

	"codeberg.org/asklavinia/server/internal/pdftext"
)

// matches contract article headings such as "ARTICLE 7 - HOURS OF WORK",
// "ARTICLE 12: SICK LEAVE" or "ARTICLE IV SENIORITY"
var articleHeadingRegex = regexp.MustCompile(`(?m)^\s*(ARTICLE\s+(?:[0-9]+|[IVXLC]+)\b[^\n]*)$`)

// carves the page stream into sections, one per article heading.
// text before the first heading becomes a PREAMBLE section.
func splitByArticles(pages []pdftext.Page) []Section {
	var sections []Section
	var currentSection *Section

	for _, page := range pages {
		for _, line := range strings.Split(page.Text, "\n") {
			matches := articleHeadingRegex.FindStringSubmatch(line)

			if len(matches) > 0 {
				if currentSection != nil && strings.TrimSpace(currentSection.Content) != "" {
					sections = append(sections, *currentSection)
				}

				currentSection = &Section{
					Title:   strings.TrimSpace(matches[1]),
					Page:    page.Number,
					Content: line + "\n",
				}
			} else if currentSection != nil {
				currentSection.Content += line + "\n"
			} else {
				// content before any article heading
				currentSection = &Section{
					Title:   "PREAMBLE",
					Page:    page.Number,
					Content: line + "\n",
				}
			}
		}
	}

	if currentSection != nil && strings.TrimSpace(currentSection.Content) != "" {
		sections = append(sections, *currentSection)
	}

	return sections
}

// splits an oversized section on paragraph boundaries, repeating the
// article heading at the top of each piece so every chunk stays citable
func splitLargeSection(section Section, opts ChunkOptions) []string {
	var chunks []string
	paragraphs := strings.Split(section.Content, "\n\n")

	var currentChunk strings.Builder
	headerWritten := false

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)

		if para == "" {
			continue
		}

		testContent := currentChunk.String() + "\n\n" + para

		if estimateTokens(testContent) > opts.MaxTokens && currentChunk.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(currentChunk.String()))
			currentChunk.Reset()
			headerWritten = false
		}

		if !headerWritten && opts.PreserveHeaders && section.Title != "" {
			currentChunk.WriteString(fmt.Sprintf("%s\n\n", section.Title))
			headerWritten = true
		}

		if currentChunk.Len() > 0 {
			currentChunk.WriteString("\n\n")
		}

		currentChunk.WriteString(para)
	}

	if currentChunk.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(currentChunk.String()))
	}

	return chunks
}

func estimateTokens(text string) int {
	return len(text) / 4
}
