package chunker

import (
	"strings"
	"testing"

	"codeberg.org/asklavinia/server/internal/pdftext"
)

// verifies sections are carved at article headings with a preamble
func TestSplitByArticles(t *testing.T) {
	pages := []pdftext.Page{
		{Number: 1, Text: "AGREEMENT\nbetween the hospital and the association.\nARTICLE 1 - MEMBERSHIP\nAll nurses shall be eligible for membership."},
		{Number: 2, Text: "Dues are deducted monthly.\nARTICLE 2: SENIORITY\nSeniority is based on continuous service."},
	}

	sections := splitByArticles(pages)

	if len(sections) != 3 {
		t.Fatalf("Expected 3 sections, got %d", len(sections))
	}

	if sections[0].Title != "PREAMBLE" {
		t.Errorf("Expected PREAMBLE first, got %q", sections[0].Title)
	}

	if sections[1].Title != "ARTICLE 1 - MEMBERSHIP" {
		t.Errorf("Unexpected second title %q", sections[1].Title)
	}

	// article 1 content spans the page boundary
	if !strings.Contains(sections[1].Content, "Dues are deducted monthly.") {
		t.Errorf("Expected article 1 to include content from page 2, got %q", sections[1].Content)
	}

	if sections[2].Title != "ARTICLE 2: SENIORITY" {
		t.Errorf("Unexpected third title %q", sections[2].Title)
	}

	if sections[1].Page != 1 || sections[2].Page != 2 {
		t.Errorf("Unexpected page numbers: %d, %d", sections[1].Page, sections[2].Page)
	}
}

// roman numeral headings are also recognized
func TestSplitByArticlesRomanNumerals(t *testing.T) {
	pages := []pdftext.Page{
		{Number: 1, Text: "ARTICLE IV SENIORITY\nSeniority provisions."},
	}

	sections := splitByArticles(pages)

	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}

	if sections[0].Title != "ARTICLE IV SENIORITY" {
		t.Errorf("Unexpected title %q", sections[0].Title)
	}
}

// verifies small sections become single chunks and metadata is carried
func TestChunkAgreement(t *testing.T) {
	pages := []pdftext.Page{
		{Number: 1, Text: "ARTICLE 1 - MEMBERSHIP\nAll nurses shall be eligible for membership."},
		{Number: 2, Text: "ARTICLE 2: SENIORITY\nSeniority is based on continuous service."},
	}

	chunks := ChunkAgreement("evergreen-2022-2024", pages, DefaultOptions())

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}

	for _, chunk := range chunks {
		if chunk.DocumentName != "evergreen-2022-2024" {
			t.Errorf("Unexpected document name %q", chunk.DocumentName)
		}

		if chunk.ArticleTitle == "" {
			t.Error("Expected article title on every chunk")
		}
	}
}

// verifies oversized sections split and repeat the article heading
func TestSplitLargeSection(t *testing.T) {
	paragraph := strings.Repeat("Nurses shall receive overtime compensation for all approved hours. ", 20)
	section := Section{
		Title:   "ARTICLE 7 - HOURS OF WORK",
		Page:    10,
		Content: paragraph + "\n\n" + paragraph + "\n\n" + paragraph,
	}

	opts := ChunkOptions{MaxTokens: 400, OverlapTokens: 50, PreserveHeaders: true}
	pieces := splitLargeSection(section, opts)

	if len(pieces) < 2 {
		t.Fatalf("Expected section to split, got %d piece(s)", len(pieces))
	}

	for i, piece := range pieces {
		if !strings.HasPrefix(piece, "ARTICLE 7 - HOURS OF WORK") {
			t.Errorf("Piece %d missing repeated heading: %q", i, piece[:40])
		}
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := estimateTokens("abcdefgh"); got != 2 {
		t.Errorf("Expected 2 tokens for 8 chars, got %d", got)
	}
}
