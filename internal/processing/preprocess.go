package processing

import (
	"log/slog"

	"github.com/DeafMist/sentiment-ingest/internal/dataset"
)

const (
	IDColumn        = "tweet_id"
	SentimentColumn = "sentiment"
)

// Labels maps the two accepted sentiment literals to their binary codes.
// Rows with any other sentiment are discarded.
var Labels = map[string]string{
	"happiness": "1",
	"sadness":   "0",
}

// Preprocess drops the identifier column, keeps only rows with an accepted
// sentiment and replaces that sentiment with its label. The input table is
// left untouched.
func Preprocess(log *slog.Logger, raw *dataset.Table) (*dataset.Table, error) {
	dropped, err := raw.DropColumn(IDColumn)
	if err != nil {
		return nil, err
	}

	idx, err := dropped.ColumnIndex(SentimentColumn)
	if err != nil {
		return nil, err
	}

	out := &dataset.Table{
		Columns: dropped.Columns,
		Rows:    make([][]string, 0, dropped.Len()),
	}
	for _, row := range dropped.Rows {
		label, ok := Labels[row[idx]]
		if !ok {
			continue
		}
		row[idx] = label
		out.Rows = append(out.Rows, row)
	}

	log.Info("preprocessing completed",
		slog.Int("kept", out.Len()),
		slog.Int("dropped", raw.Len()-out.Len()),
	)
	return out, nil
}
