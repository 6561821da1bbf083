package ask

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/asklavinia/server/internal/session"
)

func RegisterRoutes(router *gin.RouterGroup, manager *session.Manager, rateLimit gin.HandlerFunc) {
	router.POST("/ask", rateLimit, AskHandler(manager))
}
