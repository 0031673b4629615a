// Package source loads raw item batches for the pipeline. Sources register
// themselves by name so the CLI can resolve them from configuration.
package source

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sornchai/winnow/internal/model"
)

// Source produces one ordered batch of items.
type Source interface {
	Items(ctx context.Context) ([]model.Item, error)
}

// Config carries source-specific settings.
type Config struct {
	// Path is the input location for file-backed sources.
	Path string
}

// Constructor builds a Source from its config.
type Constructor func(cfg Config) (Source, error)

var registry = map[string]Constructor{}

// Register adds a source constructor under the given name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the source constructor for the given name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown source: %s", name)
	}
	return ctor, nil
}

// Names returns the registered source names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// decodeItems reads items from r as either a JSON array of objects or
// newline-delimited JSON objects. Blank lines are skipped.
func decodeItems(r io.Reader) ([]model.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []model.Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("source: parse array: %w", err)
		}
		return items, nil
	}

	var items []model.Item
	sc := bufio.NewScanner(bytes.NewReader(trimmed))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var item model.Item
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			return nil, fmt.Errorf("source: parse line %d: %w", line, err)
		}
		items = append(items, item)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("source: scan: %w", err)
	}
	return items, nil
}
