package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/asklavinia/server/internal/agent"
	"codeberg.org/asklavinia/server/internal/config"
	"codeberg.org/asklavinia/server/internal/costs"
	"codeberg.org/asklavinia/server/internal/llm"
	"codeberg.org/asklavinia/server/internal/retriever"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, db *pgxpool.Pool) (*Services, error) {
	llmClient, err := llm.NewLLM()
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	costTable, err := costs.LoadTable(cfg.CostTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost table: %w", err)
	}

	retrieverClient := retriever.New(db, llmClient)
	agentClient := agent.New(retrieverClient, llmClient)

	return &Services{
		Agent:     agentClient,
		LLM:       llmClient,
		Retriever: retrieverClient,
		Costs:     costTable,
	}, nil
}
