package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DeafMist/sentiment-ingest/internal/config"
	"github.com/DeafMist/sentiment-ingest/internal/dataset"
	"github.com/DeafMist/sentiment-ingest/internal/processing"
	"github.com/DeafMist/sentiment-ingest/internal/split"
)

// Run executes one ingestion: params, dataset, preprocessing, split.
// The test size is resolved before the dataset is fetched.
func Run(ctx context.Context, log *slog.Logger, client *http.Client, cfg *config.Ingestion) error {
	params, err := config.LoadParams(cfg.ParamsFile)
	if err != nil {
		return err
	}
	testSize, err := params.TestSize()
	if err != nil {
		return err
	}

	raw, err := dataset.NewLoader(client, log).Load(ctx, cfg.DatasetURL)
	if err != nil {
		return err
	}

	processed, err := processing.Preprocess(log, raw)
	if err != nil {
		return fmt.Errorf("preprocess: %w", err)
	}

	return split.SplitAndSave(log, processed, testSize, cfg.Seed, cfg.TrainPath, cfg.TestPath)
}
