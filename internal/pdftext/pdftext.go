// Package pdftext extracts plain text from the agreement PDF for indexing.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// text content of a single PDF page
type Page struct {
	Number int
	Text   string
}

// extracts per-page text from a PDF file
func ExtractPages(path string) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}

	defer f.Close() //nolint:errcheck

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		text = normalizeWhitespace(text)
		if text == "" {
			continue
		}

		pages = append(pages, Page{Number: i, Text: text})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from %s", path)
	}

	return pages, nil
}

// extracts the full document text with pages joined by blank lines
func ExtractText(path string) (string, error) {
	pages, err := ExtractPages(path)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		parts = append(parts, page.Text)
	}

	return strings.Join(parts, "\n\n"), nil
}

// collapses runs of spaces and trims each line. PDF extraction tends to
// produce ragged spacing that hurts both chunking and embeddings.
func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
