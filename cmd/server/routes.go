package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"codeberg.org/asklavinia/server/api/rest/ask"
	"codeberg.org/asklavinia/server/api/rest/document"
	"codeberg.org/asklavinia/server/api/rest/health"
	"codeberg.org/asklavinia/server/api/rest/questions"
	"codeberg.org/asklavinia/server/internal/ratelimit"
)

const defaultAskRate = "10-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	askRate := os.Getenv("ASK_RATE_LIMIT")
	if askRate == "" {
		askRate = defaultAskRate
	}

	askLimiter, err := ratelimit.Middleware(askRate)
	if err != nil {
		return err
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		ask.RegisterRoutes(v1, server.sessionMgr, askLimiter)
		questions.RegisterRoutes(v1, server.questionLog)
		document.RegisterRoutes(v1, server.config.AgreementPath)
	}

	return nil
}
