package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sornchai/winnow/internal/engine"
	"github.com/sornchai/winnow/internal/model"
	"github.com/sornchai/winnow/internal/taxonomy"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	reg, err := taxonomy.NewRegistry([]taxonomy.Category{
		{
			Name: "painPoints",
			Tags: []taxonomy.Tag{
				{Name: "HEAT", Phrases: []string{"hot"}},
				{Name: "NOISE", Phrases: []string{"noisy"}},
			},
		},
	})
	require.NoError(t, err)
	return engine.New(reg, nil)
}

func TestRunEmptyBatch(t *testing.T) {
	p := New(testEngine(t))

	res, err := p.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalItems)
	assert.Empty(t, res.Items)
}

func TestRunPreservesOrder(t *testing.T) {
	p := New(testEngine(t))
	items := []model.Item{
		{"text": "so hot in here"},
		{"text": "nothing wrong"},
		{"text": "noisy neighbours"},
	}

	res, err := p.Run(context.Background(), items)
	require.NoError(t, err)
	require.Equal(t, 3, res.TotalItems)

	assert.Equal(t, "so hot in here", res.Items[0].OriginalText)
	assert.Equal(t, []string{"HEAT"}, res.Items[0].Classification["painPoints"].Values)
	assert.Empty(t, res.Items[1].Classification["painPoints"].Values)
	assert.Equal(t, []string{"NOISE"}, res.Items[2].Classification["painPoints"].Values)
}

func TestRunLimit(t *testing.T) {
	p := New(testEngine(t), WithLimit(2))
	items := []model.Item{
		{"text": "one"}, {"text": "two"}, {"text": "three"},
	}

	res, err := p.Run(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalItems)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "one", res.Items[0].OriginalText)
	assert.Equal(t, "two", res.Items[1].OriginalText)
}

func TestRunLimitLargerThanBatch(t *testing.T) {
	p := New(testEngine(t), WithLimit(100))

	res, err := p.Run(context.Background(), []model.Item{{"text": "one"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalItems)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	eng := testEngine(t)
	items := make([]model.Item, 50)
	for i := range items {
		items[i] = model.Item{"text": fmt.Sprintf("post %d is hot and noisy", i)}
	}

	seq, err := New(eng).Run(context.Background(), items)
	require.NoError(t, err)
	par, err := New(eng, WithWorkers(8)).Run(context.Background(), items)
	require.NoError(t, err)

	require.Equal(t, seq.TotalItems, par.TotalItems)
	for i := range seq.Items {
		assert.Equal(t, seq.Items[i].OriginalText, par.Items[i].OriginalText)
		want, err := json.Marshal(seq.Items[i].Classification)
		require.NoError(t, err)
		got, err := json.Marshal(par.Items[i].Classification)
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(got), "item %d", i)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(testEngine(t))
	_, err := p.Run(ctx, []model.Item{{"text": "hot"}})
	assert.ErrorIs(t, err, context.Canceled)

	p = New(testEngine(t), WithWorkers(4))
	_, err = p.Run(ctx, []model.Item{{"text": "hot"}, {"text": "noisy"}})
	assert.ErrorIs(t, err, context.Canceled)
}
