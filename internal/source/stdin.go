package source

import (
	"context"
	"os"

	"github.com/sornchai/winnow/internal/model"
)

func init() {
	Register("stdin", func(Config) (Source, error) {
		return &stdinSource{}, nil
	})
}

// stdinSource reads an item batch from standard input.
type stdinSource struct{}

func (s *stdinSource) Items(_ context.Context) ([]model.Item, error) {
	return decodeItems(os.Stdin)
}
