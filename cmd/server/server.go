package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/asklavinia/server/internal/config"
	"codeberg.org/asklavinia/server/internal/qalog"
	"codeberg.org/asklavinia/server/internal/session"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// use simple protocol for pooler (PgBouncer) compatibility.
	// pgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	questionLog, err := qalog.Open(cfg.QuestionLogPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open question log: %w", err)
	}

	if err := questionLog.EnsureSchema(ctx); err != nil {
		questionLog.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to prepare question log: %w", err)
	}

	services, err := InitializeServices(cfg, db)
	if err != nil {
		questionLog.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	sessionMgr := session.NewManager(services.Agent, services.Costs, questionLog)

	router := gin.Default()

	server := &Server{
		db:          db,
		config:      cfg,
		questionLog: questionLog,
		sessionMgr:  sessionMgr,
		services:    services,
		router:      router,
	}

	if err := RegisterRoutes(router, server); err != nil {
		sessionMgr.Stop()
		questionLog.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	return server, nil
}
