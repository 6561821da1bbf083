package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/asklavinia/server/internal/agent"
	"codeberg.org/asklavinia/server/internal/config"
	"codeberg.org/asklavinia/server/internal/costs"
	"codeberg.org/asklavinia/server/internal/llm"
	"codeberg.org/asklavinia/server/internal/qalog"
	"codeberg.org/asklavinia/server/internal/retriever"
	"codeberg.org/asklavinia/server/internal/session"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	questionLog *qalog.Store
	sessionMgr  *session.Manager
	services    *Services
	router      *gin.Engine
}

// holds all external service clients (LLM, retriever, agent, cost table)
type Services struct {
	Agent     *agent.Agent
	LLM       llm.LLM
	Retriever *retriever.Client
	Costs     *costs.Table
}
