package session

import (
	"context"
	"errors"
	"testing"

	"codeberg.org/asklavinia/server/internal/agent"
	"codeberg.org/asklavinia/server/internal/costs"
	"codeberg.org/asklavinia/server/internal/qalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	answer *agent.Answer
	err    error
	calls  int
}

func (f *fakeEngine) Answer(_ context.Context, _ string) (*agent.Answer, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.answer, nil
}

type recordedCall struct {
	visible  bool
	cost     float64
	question string
	response string
}

type fakeRecorder struct {
	calls   []recordedCall
	err     error
	nextID  int64
	existed bool
}

func (f *fakeRecorder) Record(_ context.Context, visible bool, cost float64, question, response string) (qalog.RecordOutcome, error) {
	f.calls = append(f.calls, recordedCall{visible: visible, cost: cost, question: question, response: response})

	if f.err != nil {
		return qalog.RecordOutcome{}, f.err
	}

	if f.existed {
		return qalog.RecordOutcome{Inserted: false, ID: f.nextID}, nil
	}

	f.nextID++

	return qalog.RecordOutcome{Inserted: true, ID: f.nextID}, nil
}

func testCostTable() *costs.Table {
	return costs.NewTable(map[string]costs.ModelRates{
		"gpt-3.5-turbo": {Prompt: 0.0000015, Completion: 0.000002},
	})
}

func testAnswer() *agent.Answer {
	return &agent.Answer{
		Text:             "- Notice is two weeks (Article 5).",
		Model:            "gpt-3.5-turbo",
		PromptTokens:     100,
		CompletionTokens: 50,
	}
}

// asking the same question twice calls the engine exactly once;
// the second call is skipped
func TestAskSessionSkip(t *testing.T) {
	engine := &fakeEngine{answer: testAnswer()}
	recorder := &fakeRecorder{}
	sess := NewSession(engine, testCostTable(), recorder)

	first, err := sess.Ask(context.Background(), "What is the notice period?", true)
	require.NoError(t, err)
	assert.False(t, first.Skipped)
	assert.Equal(t, "- Notice is two weeks (Article 5).", first.Answer)
	assert.InDelta(t, 0.00025, first.Cost, 1e-12)
	assert.True(t, first.CostKnown)

	second, err := sess.Ask(context.Background(), "What is the notice period?", true)
	require.NoError(t, err)
	assert.True(t, second.Skipped)

	assert.Equal(t, 1, engine.calls, "engine must be invoked exactly once")
	assert.Len(t, recorder.calls, 1, "store must be written exactly once")
}

// an empty question is skipped without touching engine or store
func TestAskEmptyQuestion(t *testing.T) {
	engine := &fakeEngine{answer: testAnswer()}
	recorder := &fakeRecorder{}
	sess := NewSession(engine, testCostTable(), recorder)

	result, err := sess.Ask(context.Background(), "", true)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Zero(t, engine.calls)
	assert.Empty(t, recorder.calls)
}

// the recorded entry carries the visibility flag, cost and literal texts
func TestAskRecordsEntry(t *testing.T) {
	engine := &fakeEngine{answer: testAnswer()}
	recorder := &fakeRecorder{}
	sess := NewSession(engine, testCostTable(), recorder)

	_, err := sess.Ask(context.Background(), "What is the notice period?", false)
	require.NoError(t, err)

	require.Len(t, recorder.calls, 1)
	call := recorder.calls[0]
	assert.False(t, call.visible)
	assert.InDelta(t, 0.00025, call.cost, 1e-12)
	assert.Equal(t, "What is the notice period?", call.question)
	assert.Equal(t, "- Notice is two weeks (Article 5).", call.response)
}

// an engine failure propagates and uses the question up for the session
func TestAskEngineFailure(t *testing.T) {
	engine := &fakeEngine{err: errors.New("upstream timeout")}
	recorder := &fakeRecorder{}
	sess := NewSession(engine, testCostTable(), recorder)

	_, err := sess.Ask(context.Background(), "What are the wages?", true)
	require.Error(t, err)
	assert.Empty(t, recorder.calls, "failed questions are not logged")
	assert.True(t, sess.Asked("What are the wages?"), "failed question stays in the session set")

	// resubmission in the same session is skipped, not retried
	result, err := sess.Ask(context.Background(), "What are the wages?", true)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, 1, engine.calls)
}

// an unknown model records a zero sentinel cost and flags it,
// rather than failing or silently pricing the answer
func TestAskUnknownModelSentinelCost(t *testing.T) {
	answer := testAnswer()
	answer.Model = "not-a-real-model"
	engine := &fakeEngine{answer: answer}
	recorder := &fakeRecorder{}
	sess := NewSession(engine, testCostTable(), recorder)

	result, err := sess.Ask(context.Background(), "What is the notice period?", true)
	require.NoError(t, err)
	assert.False(t, result.CostKnown)
	assert.Zero(t, result.Cost)

	require.Len(t, recorder.calls, 1)
	assert.Zero(t, recorder.calls[0].cost)
}

// a store-write failure surfaces; writes never silently no-op
func TestAskStoreFailure(t *testing.T) {
	engine := &fakeEngine{answer: testAnswer()}
	recorder := &fakeRecorder{err: qalog.ErrStorageUnavailable}
	sess := NewSession(engine, testCostTable(), recorder)

	_, err := sess.Ask(context.Background(), "What is the notice period?", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, qalog.ErrStorageUnavailable)
}

// a duplicate in the durable log (raced by another session) is benign
func TestAskAlreadyLoggedElsewhere(t *testing.T) {
	engine := &fakeEngine{answer: testAnswer()}
	recorder := &fakeRecorder{existed: true, nextID: 7}
	sess := NewSession(engine, testCostTable(), recorder)

	result, err := sess.Ask(context.Background(), "What is the notice period?", true)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, "- Notice is two weeks (Article 5).", result.Answer)
}

func TestManagerSessionLifecycle(t *testing.T) {
	engine := &fakeEngine{answer: testAnswer()}
	manager := NewManager(engine, testCostTable(), &fakeRecorder{})

	defer manager.Stop()

	id, created := manager.CreateSession()
	require.NotEmpty(t, id)
	require.NotNil(t, created)

	got, ok := manager.GetSession(id)
	require.True(t, ok)
	assert.Same(t, created, got)

	_, ok = manager.GetSession("unknown-session")
	assert.False(t, ok)

	assert.Equal(t, 1, manager.SessionCount())

	// sessions are isolated: asking in one does not mark the other
	_, err := created.Ask(context.Background(), "q", true)
	require.NoError(t, err)

	otherID, other := manager.CreateSession()
	require.NotEqual(t, id, otherID)
	assert.False(t, other.Asked("q"))
}
