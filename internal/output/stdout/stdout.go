// Package stdout writes reports as JSON to standard output.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sornchai/winnow/internal/model"
)

// Output writes a JSON-encoded report to stdout.
type Output struct {
	w      io.Writer
	pretty bool
}

// New creates a stdout Output, optionally pretty-printed.
func New(pretty bool) *Output {
	return &Output{w: os.Stdout, pretty: pretty}
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	enc := json.NewEncoder(o.w)
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
