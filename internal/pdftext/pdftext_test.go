package pdftext

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses runs of spaces",
			input:    "ARTICLE  1    MEMBERSHIP",
			expected: "ARTICLE 1 MEMBERSHIP",
		},
		{
			name:     "trims surrounding blank lines",
			input:    "\n\n  wages and hours  \n",
			expected: "wages and hours",
		},
		{
			name:     "preserves line structure",
			input:    "ARTICLE 2\nSeniority   rules apply.",
			expected: "ARTICLE 2\nSeniority rules apply.",
		},
		{
			name:     "empty input",
			input:    "   \n  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeWhitespace(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
