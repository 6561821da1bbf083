package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codeberg.org/asklavinia/server/internal/llm"
	"codeberg.org/asklavinia/server/internal/retriever"
)

type fakeRetriever struct {
	results []retriever.SearchResult
	err     error
	queries []string
}

func (f *fakeRetriever) VectorSearch(_ context.Context, queryText string, _ int) ([]retriever.SearchResult, error) {
	f.queries = append(f.queries, queryText)
	return f.results, f.err
}

func (f *fakeRetriever) TopK() int { return 4 }

type fakeGenerator struct {
	response *llm.TextGenerationResponse
	err      error
	requests []llm.TextGenerationRequest
}

func (f *fakeGenerator) GenerateText(_ context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	f.requests = append(f.requests, req)

	if f.err != nil {
		return nil, f.err
	}

	return f.response, nil
}

func (f *fakeGenerator) Model() string { return "gpt-3.5-turbo" }

func TestAnswer(t *testing.T) {
	ret := &fakeRetriever{
		results: []retriever.SearchResult{
			{ArticleTitle: "ARTICLE 7 - HOURS OF WORK", Content: "Overtime is paid at time and one half.", Similarity: 0.91},
			{ArticleTitle: "ARTICLE 8 - COMPENSATION", Content: "Base rates are listed in Appendix A.", Similarity: 0.84},
		},
	}
	gen := &fakeGenerator{
		response: &llm.TextGenerationResponse{
			Text:  "- Overtime is paid at time and one half (Article 7).",
			Usage: llm.Usage{PromptTokens: 120, CompletionTokens: 40},
		},
	}

	answer, err := New(ret, gen).Answer(context.Background(), "What is the overtime rate?")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	if answer.Model != "gpt-3.5-turbo" {
		t.Errorf("Unexpected model %q", answer.Model)
	}

	if answer.PromptTokens != 120 || answer.CompletionTokens != 40 {
		t.Errorf("Unexpected usage: %d/%d", answer.PromptTokens, answer.CompletionTokens)
	}

	if answer.PassagesRetrieved != 2 {
		t.Errorf("Expected 2 passages retrieved, got %d", answer.PassagesRetrieved)
	}

	if len(ret.queries) != 1 || ret.queries[0] != "What is the overtime rate?" {
		t.Errorf("Retriever queried with %v", ret.queries)
	}

	// the prompt carries both passages and the literal question
	if len(gen.requests) != 1 {
		t.Fatalf("Expected 1 generation request, got %d", len(gen.requests))
	}

	prompt := gen.requests[0].Messages[0].Content

	for _, want := range []string{
		"ARTICLE 7 - HOURS OF WORK",
		"Base rates are listed in Appendix A.",
		"What is the overtime rate?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q", want)
		}
	}
}

func TestAnswerRetrieverFailure(t *testing.T) {
	ret := &fakeRetriever{err: errors.New("connection refused")}
	gen := &fakeGenerator{}

	_, err := New(ret, gen).Answer(context.Background(), "anything")
	if err == nil {
		t.Fatal("Expected error when retrieval fails")
	}

	if len(gen.requests) != 0 {
		t.Error("Generator must not be called when retrieval fails")
	}
}

func TestAnswerGeneratorFailure(t *testing.T) {
	ret := &fakeRetriever{}
	gen := &fakeGenerator{err: errors.New("rate limited")}

	_, err := New(ret, gen).Answer(context.Background(), "anything")
	if err == nil {
		t.Fatal("Expected error when generation fails")
	}
}

func TestFormatPassagesEmpty(t *testing.T) {
	out := formatPassages(nil)
	if !strings.Contains(out, "no relevant passages") {
		t.Errorf("Unexpected placeholder %q", out)
	}
}
