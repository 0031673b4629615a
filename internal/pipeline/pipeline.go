// Package pipeline applies the classification engine to an ordered batch of
// scraped items.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sornchai/winnow/internal/engine"
	"github.com/sornchai/winnow/internal/extract"
	"github.com/sornchai/winnow/internal/model"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLimit caps the number of items classified per run. 0 (default)
// means unbounded.
func WithLimit(n int) Option {
	return func(p *Pipeline) { p.limit = n }
}

// WithWorkers sets the number of concurrent classification workers.
// Values below 2 keep the pipeline sequential.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// Pipeline classifies item batches. Classification is pure CPU work over
// shared read-only dictionaries, so items can fan out across workers; the
// output slice is always in input order regardless of completion order.
type Pipeline struct {
	engine  *engine.Engine
	limit   int
	workers int
}

// New creates a Pipeline around the given engine.
func New(eng *engine.Engine, opts ...Option) *Pipeline {
	p := &Pipeline{engine: eng, workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the output of one batch run. TotalItems counts the items
// actually classified, after the limit is applied.
type Result struct {
	TotalItems int
	Items      []model.ClassifiedItem
}

// Run classifies every item in order. An empty batch yields an empty
// result, not an error; the only error source is context cancellation.
func (p *Pipeline) Run(ctx context.Context, items []model.Item) (Result, error) {
	if p.limit > 0 && len(items) > p.limit {
		items = items[:p.limit]
	}

	out := make([]model.ClassifiedItem, len(items))
	if p.workers > 1 && len(items) > 1 {
		if err := p.runParallel(ctx, items, out); err != nil {
			return Result{}, err
		}
	} else {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			out[i] = p.classify(item)
		}
	}

	return Result{TotalItems: len(out), Items: out}, nil
}

// runParallel fans items out over a bounded worker group. Each worker
// writes to its own index, so results land pre-sequenced in input order.
func (p *Pipeline) runParallel(ctx context.Context, items []model.Item, out []model.ClassifiedItem) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = p.classify(item)
			return nil
		})
	}
	return g.Wait()
}

func (p *Pipeline) classify(item model.Item) model.ClassifiedItem {
	text := extract.Text(item)
	return model.ClassifiedItem{
		OriginalText:   text,
		Classification: p.engine.Classify(text),
	}
}
