// Package extract pulls classifiable text out of arbitrarily shaped scraped
// items.
package extract

import (
	"encoding/json"
	"fmt"

	"github.com/sornchai/winnow/internal/model"
)

// probeFields are candidate field names checked in priority order. Scrapers
// disagree on where post text lives; this list covers the shapes seen in
// Facebook group and page exports.
var probeFields = []string{"text", "content", "message", "description", "caption", "postText", "body"}

// Text returns the first non-empty string field from the probe list, falling
// back to a canonical JSON serialization of the whole item so the classifier
// always has something to work on. json.Marshal sorts map keys, which keeps
// the fallback stable across runs.
func Text(item model.Item) string {
	for _, field := range probeFields {
		if s, ok := item[field].(string); ok && s != "" {
			return s
		}
	}

	data, err := json.Marshal(item)
	if err != nil {
		// Unmarshalable values (channels, funcs) should not reach us,
		// but totality matters more than fidelity here.
		return fmt.Sprint(item)
	}
	return string(data)
}
