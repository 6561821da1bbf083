package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/asklavinia/server/internal/config"
	"codeberg.org/asklavinia/server/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ingester <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  agreement - ingest the employment agreement PDF")
		fmt.Println("\nOptions:")
		fmt.Println("  --path <path>  - Custom path to the agreement PDF")
		fmt.Println("  --clear        - Clear existing chunks before ingesting")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// connect to database
	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	switch command {
	case "agreement":
		flags := config.ParseIngestFlags()
		if flags.Path == "" {
			flags.Path = cfg.AgreementPath
		}

		if err := IngestAgreement(cfg, db, flags); err != nil {
			logger.Fatal("failed to ingest agreement", "error", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
