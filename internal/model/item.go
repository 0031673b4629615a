package model

// Item is one raw scraped record as delivered by a source. Shapes vary per
// scraper, so items stay untyped; the extract package probes them for text.
type Item map[string]any
