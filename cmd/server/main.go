package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/asklavinia/server/internal/config"
	"codeberg.org/asklavinia/server/internal/logger"
)

// @title Ask Lavinia API
// @version 1.0
// @description Question answering over a collective employment agreement
// @description
// @description Features:
// @description - Answers grounded in retrieved agreement passages
// @description - Durable deduplicated question/answer log
// @description - Per-session duplicate suppression via anonymous cookies
// @description - OpenAI cost estimate per answered question

// @license.name GPL-3.0
// @license.url https://www.gnu.org/licenses/gpl-3.0.html

func main() {
	logger.Info("starting asklavinia server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// stop session expiry sweeps
	srv.sessionMgr.Stop()

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close question log
	if err := srv.questionLog.Close(); err != nil {
		logger.Error("failed to close question log", "error", err)
	}

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}
