// Package file writes reports as JSON documents on disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sornchai/winnow/internal/model"
)

// Option configures a file Output.
type Option func(*Output)

// WithPretty enables indented JSON.
func WithPretty(pretty bool) Option {
	return func(o *Output) { o.pretty = pretty }
}

// Output writes one report document per Write call, replacing the file.
// A report is a complete batch result, so append semantics would only
// interleave unrelated runs.
type Output struct {
	path   string
	pretty bool
}

// New creates a file output targeting path.
func New(path string, opts ...Option) *Output {
	o := &Output{path: path}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	var data []byte
	var err error
	if o.pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(o.path, data, 0o644); err != nil {
		return fmt.Errorf("file output: write %s: %w", o.path, err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
