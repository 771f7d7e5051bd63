package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"Int", "Int", 0},
		{"kitten", "sitting", 3},
		{"Float", "Flaot", 2},
		{"Multilines", "Multiline", 1},
		{"héros", "heros", 1}, // rune-wise, not byte-wise
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "level0", Fold("Level_0"))
	assert.Equal(t, "level0", Fold("level-0"))
	assert.Equal(t, "localenumitem", Fold("LocalEnum.Item"))
	assert.Equal(t, "", Fold(""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("Level_0", "level0"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestClosest(t *testing.T) {
	primitives := []string{"Int", "Float", "String", "Multilines", "Bool", "Color", "Point", "Tile", "FilePath", "EntityRef"}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"Flaot", 3, []string{"Float"}},
		{"Strin", 3, []string{"String"}},
		{"Entityref", 3, []string{"EntityRef"}},
		{"Multiline", 1, []string{"Multilines"}},
		{"Quaternion", 3, []string{}},
		{"Int", 3, []string{"Point"}}, // the exact name itself is skipped
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Closest(tt.name, primitives, tt.limit))
		})
	}
}

func TestClosest_RanksBestFirst(t *testing.T) {
	got := Closest("Level_1", []string{"Lvl", "Level_10", "Level_1x", "Level_2"}, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "Level_10", got[0])
	assert.Equal(t, "Level_1x", got[1])
}

func BenchmarkClosest(b *testing.B) {
	names := []string{"Player", "Enemy", "Door", "Key", "Chest", "Spawn", "Trigger"}
	for i := 0; i < b.N; i++ {
		Closest("Triger", names, 3)
	}
}
