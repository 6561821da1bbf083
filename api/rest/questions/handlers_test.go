package questions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/asklavinia/server/internal/qalog"
)

type fakeLister struct {
	entries     []qalog.QuestionAnswer
	err         error
	visibleOnly []bool
}

func (f *fakeLister) ListQuestions(_ context.Context, visibleOnly bool) ([]qalog.QuestionAnswer, error) {
	f.visibleOnly = append(f.visibleOnly, visibleOnly)
	return f.entries, f.err
}

func newTestRouter(log Lister) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), log)

	return router
}

func TestListQuestions(t *testing.T) {
	lister := &fakeLister{
		entries: []qalog.QuestionAnswer{
			{Question: "What is the notice period?", Response: "- Two weeks (Article 5)."},
			{Question: "What is the overtime rate?", Response: "- Time and one half (Article 7)."},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
	newTestRouter(lister).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "What is the notice period?", resp.Questions[0].Question)

	require.Len(t, lister.visibleOnly, 1)
	assert.True(t, lister.visibleOnly[0], "hidden entries excluded by default")
}

// an empty or never-written log is an empty list, not an error
func TestListQuestionsEmptyLog(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
	newTestRouter(&fakeLister{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"questions":[],"count":0}`, w.Body.String())
}

func TestListQuestionsIncludeHidden(t *testing.T) {
	lister := &fakeLister{}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions?include_hidden=1", nil)
	newTestRouter(lister).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, lister.visibleOnly, 1)
	assert.False(t, lister.visibleOnly[0])
}

func TestListQuestionsStoreError(t *testing.T) {
	lister := &fakeLister{err: errors.New("disk gone")}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
	newTestRouter(lister).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
