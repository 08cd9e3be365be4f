package split

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"

	"github.com/DeafMist/sentiment-ingest/internal/dataset"
)

// DefaultSeed keeps partitions reproducible across runs.
const DefaultSeed uint64 = 42

// ErrInvalidSize is returned when the test fraction cannot produce two
// non-empty partitions.
var ErrInvalidSize = errors.New("invalid test size")

// Split shuffles row positions with a generator seeded by seed and assigns
// the first ceil(testSize*n) of them to test, the rest to train.
func Split(t *dataset.Table, testSize float64, seed uint64) (train, test *dataset.Table, err error) {
	if math.IsNaN(testSize) || testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("%w: %v not in (0, 1)", ErrInvalidSize, testSize)
	}

	n := t.Len()
	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if n > 0 && nTrain == 0 {
		return nil, nil, fmt.Errorf("%w: %v of %d rows leaves an empty train set", ErrInvalidSize, testSize, n)
	}

	rng := rand.New(rand.NewPCG(seed, 0))
	perm := rng.Perm(n)

	return t.Subset(perm[nTest:]), t.Subset(perm[:nTest]), nil
}

// WriteCSV writes t to path. Parent directories are not created.
func WriteCSV(path string, t *dataset.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := t.WriteCSV(w); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// SplitAndSave partitions t and writes train then test.
func SplitAndSave(log *slog.Logger, t *dataset.Table, testSize float64, seed uint64, trainPath, testPath string) error {
	train, test, err := Split(t, testSize, seed)
	if err != nil {
		return err
	}

	if err := WriteCSV(trainPath, train); err != nil {
		return fmt.Errorf("save train: %w", err)
	}
	if err := WriteCSV(testPath, test); err != nil {
		return fmt.Errorf("save test: %w", err)
	}

	log.Info("data split and saved successfully",
		slog.String("train_path", trainPath),
		slog.Int("train_rows", train.Len()),
		slog.String("test_path", testPath),
		slog.Int("test_rows", test.Len()),
	)
	return nil
}
