package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sornchai/winnow/internal/taxonomy"
)

func painCategory() taxonomy.Category {
	return taxonomy.Category{
		Name: "painPoints",
		Tags: []taxonomy.Tag{
			{Name: "HEAT", Phrases: []string{"ร้อนมาก", "บ้านร้อน"}},
			{Name: "NOISE", Phrases: []string{"เสียงดัง"}},
			{Name: "SLIPPERY", Phrases: []string{"ลื่นมาก", "slippery"}},
		},
	}
}

func names(tags []taxonomy.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Name
	}
	return out
}

func TestMatchSubstring(t *testing.T) {
	got := Match("วันนี้บ้านร้อนมากเลย", painCategory())
	assert.Equal(t, []string{"HEAT"}, names(got))
}

func TestMatchInsideWord(t *testing.T) {
	// Containment is raw substring, not word-boundary.
	got := Match("unslipperyish floor", painCategory())
	assert.Equal(t, []string{"SLIPPERY"}, names(got))
}

func TestMatchCaseInsensitive(t *testing.T) {
	got := Match("SLIPPERY when wet", painCategory())
	assert.Equal(t, []string{"SLIPPERY"}, names(got))
}

func TestMatchDeclaredOrder(t *testing.T) {
	// Text mentions noise before heat; declared order still wins.
	got := Match("เสียงดังทั้งคืน แถมบ้านร้อนอีก", painCategory())
	assert.Equal(t, []string{"HEAT", "NOISE"}, names(got))
}

func TestMatchNoHits(t *testing.T) {
	assert.Nil(t, Match("ทุกอย่างเรียบร้อยดี", painCategory()))
}

func TestMatchEmptyInputs(t *testing.T) {
	assert.Nil(t, Match("", painCategory()))
	assert.Nil(t, Match("บ้านร้อนมาก", taxonomy.Category{Name: "empty"}))

	// Empty phrases never match, even though strings.Contains(s, "") is true.
	cat := taxonomy.Category{
		Name: "c",
		Tags: []taxonomy.Tag{{Name: "BLANK", Phrases: []string{""}}},
	}
	assert.Nil(t, Match("anything", cat))
}

func TestMatchOnePhraseIsEnough(t *testing.T) {
	got := Match("ร้อนมาก และ บ้านร้อน", painCategory())
	assert.Equal(t, []string{"HEAT"}, names(got), "multiple phrase hits yield the tag once")
}

func TestFold(t *testing.T) {
	assert.Equal(t, "shopee", Fold("SHOPEE"))
	assert.Equal(t, "ห้องครัว", Fold("ห้องครัว"))
}
