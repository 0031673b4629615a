package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sornchai/winnow/internal/engine/rules"
	"github.com/sornchai/winnow/internal/model"
	"github.com/sornchai/winnow/internal/taxonomy"
)

func generalEngine(t *testing.T) *Engine {
	t.Helper()
	reg, err := taxonomy.NewRegistry(taxonomy.GeneralCategories())
	require.NoError(t, err)
	return New(reg, nil)
}

func TestClassifyThaiPost(t *testing.T) {
	eng := generalEngine(t)

	rec := eng.Classify("พื้นห้องครัวลื่นมาก ขอคำแนะนำหน่อยครับ")

	assert.Equal(t, []string{"ASK_ADVICE"}, rec["intents"].Values)
	assert.Equal(t, []string{"KITCHEN"}, rec["houseZones"].Values)
	assert.Equal(t, []string{"SLIPPERY"}, rec["painPoints"].Values)
	require.True(t, rec["primaryIntent"].Set)
	assert.Equal(t, "ASK_ADVICE", rec["primaryIntent"].Value)
}

func TestClassifyPrimaryIsDeclaredOrder(t *testing.T) {
	eng := generalEngine(t)

	// COMPLAIN's phrase occurs first in the text, but ASK_ADVICE is
	// declared first in the intents dictionary.
	rec := eng.Classify("กระเบื้องมีปัญหา ขอคำแนะนำหน่อย")

	assert.Equal(t, []string{"ASK_ADVICE", "COMPLAIN"}, rec["intents"].Values)
	assert.Equal(t, "ASK_ADVICE", rec["primaryIntent"].Value)
}

func TestClassifyEmptyText(t *testing.T) {
	eng := generalEngine(t)

	rec := eng.Classify("")

	reg := eng.Registry()
	for _, cat := range reg.Categories() {
		col := rec[cat.Name]
		require.NotNil(t, col, "column %s missing", cat.Name)
		if !cat.Kind.Scalar() {
			assert.NotNil(t, col.Values, "column %s should be [], not null", cat.Name)
			assert.Empty(t, col.Values)
		}
		if cat.Primary != "" {
			require.NotNil(t, rec[cat.Primary])
			assert.False(t, rec[cat.Primary].Set)
		}
	}
}

func TestClassifyRuleWithoutDictionaryHit(t *testing.T) {
	reg, err := taxonomy.NewRegistry([]taxonomy.Category{
		{
			Name:    "intents",
			Primary: "primaryIntent",
			Tags:    []taxonomy.Tag{{Name: "ASK_ADVICE", Phrases: []string{"แนะนำหน่อย"}}},
		},
	})
	require.NoError(t, err)
	eng := New(reg, []rules.Rule{
		{Column: "intents", Contains: "flash sale", SetValue: "PROMOTION"},
	})

	rec := eng.Classify("FLASH SALE วันนี้วันเดียว")

	// The rule fills the list column, but primaries come only from
	// dictionary matches.
	assert.Equal(t, []string{"PROMOTION"}, rec["intents"].Values)
	assert.False(t, rec["primaryIntent"].Set)
}

func TestClassifyRuleDedupsAgainstDictionary(t *testing.T) {
	reg, err := taxonomy.NewRegistry([]taxonomy.Category{
		{
			Name: "intents",
			Tags: []taxonomy.Tag{{Name: "PROMOTION", Phrases: []string{"sale"}}},
		},
	})
	require.NoError(t, err)
	eng := New(reg, []rules.Rule{
		{Column: "intents", Contains: "sale", SetValue: "PROMOTION"},
	})

	rec := eng.Classify("big sale today")
	assert.Equal(t, []string{"PROMOTION"}, rec["intents"].Values)
}

func TestClassifyScalarCategoryLastDeclaredWins(t *testing.T) {
	reg, err := taxonomy.NewRegistry([]taxonomy.Category{
		{
			Name: "contentType",
			Kind: model.KindEnum,
			Tags: []taxonomy.Tag{
				{Name: "Image", Phrases: []string{"photo"}},
				{Name: "Video", Phrases: []string{"clip"}},
			},
		},
	})
	require.NoError(t, err)
	eng := New(reg, nil)

	rec := eng.Classify("clip with a photo")
	assert.Equal(t, "Video", rec["contentType"].Value)
}

func TestClassifyTagValueOverridesName(t *testing.T) {
	reg, err := taxonomy.NewRegistry([]taxonomy.Category{
		{
			Name: "intents",
			Tags: []taxonomy.Tag{
				{Name: "ask for price", Value: "ASK_PRICE", Phrases: []string{"ราคา"}},
			},
		},
	})
	require.NoError(t, err)
	eng := New(reg, nil)

	rec := eng.Classify("ราคาเท่าไหร่ครับ")
	assert.Equal(t, []string{"ASK_PRICE"}, rec["intents"].Values)
}

func TestClassifyDeterministic(t *testing.T) {
	eng := generalEngine(t)
	const text = "ห้องน้ำรั่ว กลิ่นอับ หาช่างมาซ่อม งบประมาณไม่เยอะ"

	first, err := json.Marshal(eng.Classify(text))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(eng.Classify(text))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}
