package ask

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/asklavinia/server/internal/errors"
	"codeberg.org/asklavinia/server/internal/session"
)

const (
	// cookie carrying the anonymous session ID
	SessionCookieName = "lavinia_session"
	// cookie lifetime matches the session expiry
	sessionCookieMaxAge = 24 * 60 * 60
)

// AskHandler godoc
// @Summary Ask a question about the employment agreement
// @Description Answers a question using retrieved agreement passages, logs it, and returns the estimated cost
// @Tags ask
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question request"
// @Success 200 {object} AskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/ask [post]
func AskHandler(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		visible := true
		if req.Visible != nil {
			visible = *req.Visible
		}

		sess := resolveSession(c, manager)

		result, err := sess.Ask(c.Request.Context(), req.Question, visible)
		if err != nil {
			errors.InternalError(c, "failed to answer question", err)
			return
		}

		c.JSON(http.StatusOK, AskResponse{
			Skipped:          result.Skipped,
			Answer:           result.Answer,
			Cost:             result.Cost,
			CostKnown:        result.CostKnown,
			Model:            result.Model,
			PromptTokens:     result.PromptTokens,
			CompletionTokens: result.CompletionTokens,
		})
	}
}

// looks up the caller's session from the cookie, issuing a fresh session
// and cookie when missing or expired
func resolveSession(c *gin.Context, manager *session.Manager) *session.Session {
	if id, err := c.Cookie(SessionCookieName); err == nil {
		if sess, ok := manager.GetSession(id); ok {
			return sess
		}
	}

	id, sess := manager.CreateSession()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, id, sessionCookieMaxAge, "/", "", false, true)

	return sess
}
