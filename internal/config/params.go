package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Params is the nested mapping decoded from the parameters file.
type Params map[string]any

// LoadParams reads and decodes a YAML parameters file.
func LoadParams(path string) (Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read params: %v", ErrConfig, err)
	}

	var p Params
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrConfig, path, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s is empty", ErrConfig, path)
	}
	return p, nil
}

// Float resolves a nested key path to a number.
func (p Params) Float(path ...string) (float64, error) {
	var cur any = map[string]any(p)
	for i, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0, fmt.Errorf("%w: %s is not a mapping", ErrConfig, strings.Join(path[:i], "."))
		}
		cur, ok = m[key]
		if !ok {
			return 0, fmt.Errorf("%w: missing key %s", ErrConfig, strings.Join(path[:i+1], "."))
		}
	}

	switch v := cur.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrConfig, strings.Join(path, "."), cur)
	}
}

// TestSize returns data_ingestion.test_size, which must lie in (0, 1).
func (p Params) TestSize() (float64, error) {
	f, err := p.Float("data_ingestion", "test_size")
	if err != nil {
		return 0, err
	}
	if f <= 0 || f >= 1 {
		return 0, fmt.Errorf("%w: data_ingestion.test_size must be in (0, 1), got %v", ErrConfig, f)
	}
	return f, nil
}
