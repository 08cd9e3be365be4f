package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Loader fetches CSV datasets from HTTP(S) URLs or the local filesystem.
type Loader struct {
	client *http.Client
	log    *slog.Logger
}

// NewLoader creates a Loader. A nil client falls back to http.DefaultClient.
func NewLoader(client *http.Client, log *slog.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client, log: log}
}

// Load reads the dataset at source. Failures are logged and returned
// wrapped in ErrDataSource; there is no retry.
func (l *Loader) Load(ctx context.Context, source string) (*Table, error) {
	t, err := l.load(ctx, source)
	if err != nil {
		l.log.Error("failed to load dataset", slog.String("source", source), slog.Any("err", err))
		return nil, err
	}

	l.log.Info("dataset loaded successfully",
		slog.String("source", source),
		slog.Int("rows", t.Len()),
		slog.Int("columns", len(t.Columns)),
	)
	return t, nil
}

func (l *Loader) load(ctx context.Context, source string) (*Table, error) {
	body, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return ReadCSV(body)
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "file") {
		f, ferr := os.Open(source)
		if ferr != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataSource, ferr)
		}
		return f, nil
	}

	if u.Scheme == "file" {
		f, err := os.Open(u.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrDataSource, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: status %d: %s", ErrDataSource, source, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return resp.Body, nil
}
