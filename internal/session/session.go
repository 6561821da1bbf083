package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"codeberg.org/asklavinia/server/internal/costs"
	"codeberg.org/asklavinia/server/internal/logger"
)

// one interactive UI lifetime. holds the transient asked-question set and
// handles to the QA engine, cost table and durable log. the set only
// suppresses repeat engine calls within this session; the durable dedup
// check lives in the log store and covers all sessions.
type Session struct {
	mu     sync.Mutex
	asked  map[string]struct{}
	engine Engine
	costs  *costs.Table
	log    Recorder
}

func NewSession(engine Engine, table *costs.Table, log Recorder) *Session {
	return &Session{
		asked:  make(map[string]struct{}),
		engine: engine,
		costs:  table,
		log:    log,
	}
}

// answers a question once per session.
//
// a question is marked asked before the engine call and stays marked even if
// the call fails, so a failed question is used up for the session and is not
// retried on resubmission. engine and log-write failures propagate; the log's
// AlreadyExists outcome is benign (another session got there first).
func (s *Session) Ask(ctx context.Context, question string, visible bool) (*AskResult, error) {
	if !s.markAsked(question) {
		return &AskResult{Skipped: true}, nil
	}

	answer, err := s.engine.Answer(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("qa engine failed: %w", err)
	}

	cost := 0.0
	costKnown := true

	cost, err = s.costs.ComputeCost(answer.Model, answer.PromptTokens, answer.CompletionTokens)
	if err != nil {
		if !errors.Is(err, costs.ErrUnknownModel) {
			return nil, fmt.Errorf("failed to compute cost: %w", err)
		}

		// record with a zero sentinel and flag it, rather than losing the answer
		logger.Warn("cost unknown for model, recording sentinel cost",
			"model", answer.Model,
		)

		cost = 0
		costKnown = false
	}

	outcome, err := s.log.Record(ctx, visible, cost, question, answer.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to record question: %w", err)
	}

	if !outcome.Inserted {
		logger.Debug("question already logged", "question", question)
	}

	return &AskResult{
		Answer:           answer.Text,
		Cost:             cost,
		CostKnown:        costKnown,
		Model:            answer.Model,
		PromptTokens:     answer.PromptTokens,
		CompletionTokens: answer.CompletionTokens,
	}, nil
}

// adds the question to the session set. returns false when the question is
// empty or was already asked, in which case the caller must skip.
func (s *Session) markAsked(question string) bool {
	if question == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.asked[question]; ok {
		return false
	}

	s.asked[question] = struct{}{}

	return true
}

// reports whether the question has been asked this session
func (s *Session) Asked(question string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.asked[question]

	return ok
}
