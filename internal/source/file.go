package source

import (
	"context"
	"fmt"
	"os"

	"github.com/sornchai/winnow/internal/model"
)

func init() {
	Register("file", func(cfg Config) (Source, error) {
		if cfg.Path == "" {
			return nil, fmt.Errorf("file source: path required")
		}
		return &fileSource{path: cfg.Path}, nil
	})
}

// fileSource reads a JSON array or NDJSON item batch from disk.
type fileSource struct {
	path string
}

func (s *fileSource) Items(_ context.Context) ([]model.Item, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("file source: %w", err)
	}
	defer f.Close()
	return decodeItems(f)
}
