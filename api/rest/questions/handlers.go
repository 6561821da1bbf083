package questions

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/asklavinia/server/internal/errors"
	"codeberg.org/asklavinia/server/internal/qalog"
)

// durable question log, satisfied by qalog.Store
type Lister interface {
	ListQuestions(ctx context.Context, visibleOnly bool) ([]qalog.QuestionAnswer, error)
}

// ListHandler godoc
// @Summary List previously asked questions
// @Description Returns all logged question/answer pairs in insertion order
// @Tags questions
// @Produce json
// @Param include_hidden query string false "Include hidden entries when set to 1"
// @Success 200 {object} ListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/questions [get]
func ListHandler(log Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		visibleOnly := c.Query("include_hidden") != "1"

		entries, err := log.ListQuestions(c.Request.Context(), visibleOnly)
		if err != nil {
			errors.InternalError(c, "failed to list questions", err)
			return
		}

		if entries == nil {
			entries = []qalog.QuestionAnswer{}
		}

		c.JSON(http.StatusOK, ListResponse{
			Questions: entries,
			Count:     len(entries),
		})
	}
}
