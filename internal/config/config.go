package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/subosito/gotenv"
)

// ErrConfig marks a missing, unreadable or malformed configuration.
var ErrConfig = errors.New("config")

const (
	defaultDatasetURL = "https://raw.githubusercontent.com/campusx-official/jupyter-masterclass/main/tweet_emotions.csv"
	defaultSeed       = 42
)

// Ingestion holds the runtime settings of one ingestion run.
type Ingestion struct {
	ParamsFile string
	DatasetURL string
	TrainPath  string
	TestPath   string
	LogFile    string
	Seed       uint64
}

// LoadIngestion builds an Ingestion config from environment variables.
// Values from envFile are applied first when the file exists; variables
// already set in the process environment win.
func LoadIngestion(envFile string) (*Ingestion, error) {
	if envFile != "" {
		if err := gotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: load %s: %v", ErrConfig, envFile, err)
		}
	}

	c := &Ingestion{
		ParamsFile: getEnv("INGEST_PARAMS_FILE", "params.yaml"),
		DatasetURL: getEnv("INGEST_DATASET_URL", defaultDatasetURL),
		TrainPath:  getEnv("INGEST_TRAIN_PATH", "data/raw/train.csv"),
		TestPath:   getEnv("INGEST_TEST_PATH", "data/raw/test.csv"),
		LogFile:    getEnv("INGEST_LOG_FILE", "ingestion.log"),
		Seed:       getUint("INGEST_SEED", defaultSeed),
	}

	if c.TrainPath == c.TestPath {
		return nil, fmt.Errorf("%w: INGEST_TRAIN_PATH and INGEST_TEST_PATH must differ", ErrConfig)
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getUint(key string, fallback uint64) uint64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
