package winnow

import (
	"context"
	"fmt"

	"github.com/sornchai/winnow/internal/engine"
	"github.com/sornchai/winnow/internal/model"
	"github.com/sornchai/winnow/internal/pipeline"
	"github.com/sornchai/winnow/internal/summary"
	"github.com/sornchai/winnow/internal/taxonomy"
)

// Winnow is a keyword-dictionary text classifier.
// It matches folded substrings against a fixed taxonomy snapshot and is
// safe for concurrent use.
type Winnow struct {
	engine   *engine.Engine
	pipeline *pipeline.Pipeline
	topN     int
}

// New creates a Winnow instance from a built-in or custom taxonomy.
func New(opts ...Option) (*Winnow, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		cats []taxonomy.Category
		err  error
	)
	if len(o.categories) > 0 {
		cats, err = categoriesToInternal(o.categories)
		if err != nil {
			return nil, fmt.Errorf("winnow: %w", err)
		}
	} else {
		switch o.taxonomy {
		case "", "general":
			cats = taxonomy.GeneralCategories()
		case "brandpage":
			cats = taxonomy.BrandPageCategories()
		default:
			return nil, fmt.Errorf("winnow: unknown taxonomy %q (want general or brandpage)", o.taxonomy)
		}
	}

	reg, err := taxonomy.NewRegistry(cats)
	if err != nil {
		return nil, fmt.Errorf("winnow: %w", err)
	}
	eng := engine.New(reg, rulesToInternal(o.rules))

	popts := []pipeline.Option{pipeline.WithWorkers(o.workers)}
	if o.limit > 0 {
		popts = append(popts, pipeline.WithLimit(o.limit))
	}

	return &Winnow{
		engine:   eng,
		pipeline: pipeline.New(eng, popts...),
		topN:     o.topN,
	}, nil
}

// Classify classifies a single text and returns its record.
func (w *Winnow) Classify(text string) Record {
	return recordFromInternal(w.engine.Classify(text))
}

// ClassifyItems classifies a batch of scraped items and aggregates
// per-category frequency summaries.
func (w *Winnow) ClassifyItems(ctx context.Context, items []Item) (Report, error) {
	raws := make([]model.Item, len(items))
	for i, it := range items {
		raws[i] = model.Item(it)
	}

	res, err := w.pipeline.Run(ctx, raws)
	if err != nil {
		return Report{}, err
	}

	sum := summary.Summarize(res.Items, w.engine.Registry(), w.topN)

	out := Report{
		TotalItems: res.TotalItems,
		Items:      make([]ClassifiedItem, len(res.Items)),
		Summary:    summaryFromInternal(sum),
	}
	for i, ci := range res.Items {
		out.Items[i] = itemFromInternal(ci)
	}
	return out, nil
}

// Categories returns the taxonomy snapshot this instance classifies
// against. Read-only: consumers can inspect columns and dictionaries
// but not modify them.
func (w *Winnow) Categories() []Category {
	cats := w.engine.Registry().Categories()
	out := make([]Category, len(cats))
	for i, c := range cats {
		tags := make([]Tag, len(c.Tags))
		for j, t := range c.Tags {
			tags[j] = Tag{
				Name:    t.Name,
				Phrases: append([]string(nil), t.Phrases...),
				Value:   t.Value,
				Desc:    t.Desc,
				Weight:  t.Weight,
			}
		}
		out[i] = Category{
			Name:    c.Name,
			Primary: c.Primary,
			Kind:    kindToString(c.Kind),
			Options: append([]string(nil), c.Options...),
			Tags:    tags,
		}
	}
	return out
}

func kindToString(k model.ColumnKind) string {
	switch k {
	case model.KindText:
		return "text"
	case model.KindEnum:
		return "enum"
	default:
		return "list"
	}
}
