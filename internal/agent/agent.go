package agent

import (
	"context"
	"fmt"

	"codeberg.org/asklavinia/server/internal/llm"
	"codeberg.org/asklavinia/server/internal/logger"
)

// turns a question and the stored agreement index into an answer.
// retrieval and generation failures propagate to the caller untouched;
// retry policy belongs to whoever calls Answer.
type Agent struct {
	retriever Retriever
	generator llm.TextGenerator
}

func New(ret Retriever, generator llm.TextGenerator) *Agent {
	return &Agent{
		retriever: ret,
		generator: generator,
	}
}

func (a *Agent) Answer(ctx context.Context, question string) (*Answer, error) {
	passages, err := a.retriever.VectorSearch(ctx, question, a.retriever.TopK())
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve passages: %w", err)
	}

	prompt := buildQAPrompt(passages, question)

	response, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{
		Messages: []llm.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	logger.Debug("generated answer",
		"model", a.generator.Model(),
		"passages", len(passages),
		"prompt_tokens", response.Usage.PromptTokens,
		"completion_tokens", response.Usage.CompletionTokens,
	)

	return &Answer{
		Text:              response.Text,
		Model:             a.generator.Model(),
		PromptTokens:      response.Usage.PromptTokens,
		CompletionTokens:  response.Usage.CompletionTokens,
		PassagesRetrieved: len(passages),
	}, nil
}
