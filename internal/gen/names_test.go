package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wall", "Wall"},
		{"Spike-Trap", "Spike_Trap"},
		{"0Start", "X0Start"},
		{"", "X"},
		{"func", "Xfunc"},
		{"Größe", "Größe"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.in))
		})
	}
}

func TestNamer(t *testing.T) {
	n := newNamer(false)

	assert.Equal(t, "ItemSword", n.name("Item", "Sword"))
	assert.Equal(t, "ItemSword2", n.name("Item_Sword"))
	assert.Equal(t, "Load2", n.name("load"))

	p := newNamer(true)
	assert.Equal(t, "Item_Sword", p.name("Item", "Sword"))
	assert.Equal(t, "level_0", p.name("level_0"))
}

func TestValueLit(t *testing.T) {
	tests := []struct {
		name string
		in   model.Value
		want string
	}{
		{"none", model.None(), "model.None()"},
		{"int", model.IntValue(-3), "model.IntValue(-3)"},
		{"float literal", model.FloatValue(1, "1.0"), `model.FloatValue(1.0, "1.0")`},
		{"float without literal", model.FloatValue(2.25, ""), `model.FloatValue(2.25, "2.25")`},
		{"string", model.StringValue("a \"b\""), `model.StringValue("a \"b\"")`},
		{"bool", model.BoolValue(true), "model.BoolValue(true)"},
		{"color", model.ColorValue(model.ColorFromRGB(0x102030)), "model.ColorValue(model.ColorFromHex(0x102030FF))"},
		{"point", model.PointValue(model.V2(3, -4)), "model.PointValue(model.V2(3, -4))"},
		{"tile", model.TileValue(model.TileRef{Tileset: 7, Cell: model.V2[uint32](1, 2)}),
			"model.TileValue(model.TileRef{Tileset: 7, Cell: model.V2[uint32](1, 2)})"},
		{"path", model.FilePathValue("maps/a.png"), `model.FilePathValue("maps/a.png")`},
		{"empty array", model.ArrayValue(), "model.ArrayValue()"},
		{"nested", model.ArrayValue(model.IntValue(1), model.None()), "model.ArrayValue(model.IntValue(1), model.None())"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := valueLit(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := valueLit(model.Value{Kind: model.ValueKind(99)})
	assert.Error(t, err)
}

func TestLayerLit_Unsupported(t *testing.T) {
	_, err := layerLit(nil)
	assert.ErrorContains(t, err, "unsupported layer type")
}
