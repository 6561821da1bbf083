package session

import (
	"context"

	"codeberg.org/asklavinia/server/internal/agent"
	"codeberg.org/asklavinia/server/internal/qalog"
)

// the external QA engine, satisfied by agent.Agent
type Engine interface {
	Answer(ctx context.Context, question string) (*agent.Answer, error)
}

// durable question log, satisfied by qalog.Store
type Recorder interface {
	Record(ctx context.Context, visible bool, cost float64, question, response string) (qalog.RecordOutcome, error)
}

// outcome of a single Ask call.
// Skipped means the question was empty or already asked this session:
// no engine call was made and nothing was written.
type AskResult struct {
	Skipped          bool    `json:"skipped"`
	Answer           string  `json:"answer,omitempty"`
	Cost             float64 `json:"cost"`
	CostKnown        bool    `json:"cost_known"`
	Model            string  `json:"model,omitempty"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
}
