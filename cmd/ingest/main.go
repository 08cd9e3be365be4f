package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/DeafMist/sentiment-ingest/internal/config"
	"github.com/DeafMist/sentiment-ingest/internal/logger"
	"github.com/DeafMist/sentiment-ingest/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ingest:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadIngestion(".env")
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	log := logger.New("ingest", logFile).With(slog.String("run_id", uuid.NewString()))

	return pipeline.Run(context.Background(), log, nil, cfg)
}
