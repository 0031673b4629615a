package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sornchai/winnow/internal/model"
)

func testProfile() *Profile {
	return &Profile{
		Name: "community-posts",
		Columns: []Column{
			{Name: "intents", Type: "list", Primary: "primaryIntent"},
			{Name: "pain_points"},
			{Name: "contentType", Type: "enum", Options: []string{"Image", "Video"}},
		},
		Keywords: map[string][]Keyword{
			"intents": {
				{Keyword: "ask", Value: "CONTACT"},
				{Keyword: "promotion", Value: "PROMOTION"},
			},
			"pain_points": {
				{Keyword: "hot", Value: "HEAT"},
				{Keyword: "heat", Value: "HEAT"},
				{Keyword: "noise", Value: "NOISE", Weight: 2},
			},
		},
	}
}

func TestCompile(t *testing.T) {
	reg, rs, err := testProfile().Compile()
	require.NoError(t, err)
	assert.Empty(t, rs)

	cats := reg.Categories()
	require.Len(t, cats, 3)

	intents := cats[0]
	assert.Equal(t, "intents", intents.Name)
	assert.Equal(t, "primaryIntent", intents.Primary)
	assert.Equal(t, model.KindList, intents.Kind)
	require.Len(t, intents.Tags, 2)
	assert.Equal(t, "CONTACT", intents.Tags[0].Name)
	assert.Equal(t, []string{"ask"}, intents.Tags[0].Phrases)

	// Untyped columns default to list.
	assert.Equal(t, model.KindList, cats[1].Kind)

	assert.Equal(t, model.KindEnum, cats[2].Kind)
	assert.Equal(t, []string{"Image", "Video"}, cats[2].Options)
}

func TestCompileGroupsKeywordsByValue(t *testing.T) {
	reg, _, err := testProfile().Compile()
	require.NoError(t, err)

	pain, ok := reg.Lookup("pain_points")
	require.True(t, ok)
	require.Len(t, pain.Tags, 2, "hot and heat collapse into one HEAT tag")

	assert.Equal(t, "HEAT", pain.Tags[0].Name)
	assert.Equal(t, []string{"hot", "heat"}, pain.Tags[0].Phrases)
	assert.Equal(t, "NOISE", pain.Tags[1].Name)
	assert.Equal(t, float64(2), pain.Tags[1].Weight)
}

func TestCompileBadColumnType(t *testing.T) {
	p := &Profile{
		Name:    "bad",
		Columns: []Column{{Name: "intents", Type: "vector"}},
	}
	_, _, err := p.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "intents"`)
	assert.Contains(t, err.Error(), "vector")
}

func TestCompileInvalidSchema(t *testing.T) {
	p := &Profile{
		Name: "bad",
		Columns: []Column{
			{Name: "intents"},
			{Name: "intents"},
		},
	}
	_, _, err := p.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `profile "bad"`)
}

func TestGroupKeywordsDefaultsToKeyword(t *testing.T) {
	tags := groupKeywords([]Keyword{
		{Keyword: "flash sale"},
		{Keyword: ""},
	})
	require.Len(t, tags, 1)
	assert.Equal(t, "flash sale", tags[0].Name)
}

func TestPrompt(t *testing.T) {
	p := testProfile()
	p.Columns[1].Description = "physical problems mentioned in the post"

	got := p.Prompt()

	assert.Contains(t, got, "You are a text classification assistant.")
	assert.Contains(t, got, "- intents: list of strings")
	assert.Contains(t, got, "- contentType: one of [Image, Video]")
	assert.Contains(t, got, "Guidance for pain_points: physical problems mentioned in the post")
	assert.Contains(t, got, "- intents: ask, promotion")
	assert.Contains(t, got, "- pain_points: hot, heat, noise")
	assert.Contains(t, got, `- intents: "ask" => CONTACT`)
	assert.Contains(t, got, `- pain_points: "noise" => NOISE [weight=2]`)
	assert.True(t, len(got) > 0 && got[len(got)-1] != '\n')
	assert.Contains(t, got, "Return JSON with keys matching the schema.")
}

func TestPromptWithoutDetails(t *testing.T) {
	p := &Profile{
		Name:    "plain",
		Columns: []Column{{Name: "topics"}},
		Keywords: map[string][]Keyword{
			"topics": {{Keyword: "billing"}},
		},
	}

	got := p.Prompt()
	assert.Contains(t, got, "- topics: billing")
	assert.NotContains(t, got, "Keyword details:")
}

func TestPromptDeterministic(t *testing.T) {
	p := testProfile()
	first := p.Prompt()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Prompt())
	}
}
