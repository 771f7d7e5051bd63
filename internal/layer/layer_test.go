package layer

import (
	"encoding/json"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/field"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/registry"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

func ptr[T any](v T) *T { return &v }

const (
	uidAtlas    = 1
	uidGrid     = 10
	uidAuto     = 11
	uidTiles    = 12
	uidEntities = 13
	uidStandalo = 14
)

func testProject() *ldtk.Project {
	return &ldtk.Project{
		Defs: ldtk.Definitions{
			Tilesets: []ldtk.TilesetDef{{UID: uidAtlas, Identifier: "Atlas", TileGridSize: 8}},
			Enums: []ldtk.EnumDef{{UID: 2, Identifier: "Item", Values: []ldtk.EnumValueDef{
				{ID: "Sword", Color: -1}, {ID: "Shield", Color: -1},
			}}},
			Entities: []ldtk.EntityDef{{
				UID: 3, Identifier: "Door", Width: 16, Height: 32, PivotX: 0.5, PivotY: 1,
				FieldDefs: []ldtk.FieldDef{
					{Identifier: "target", Type: "EntityRef", CanBeNull: true},
					{Identifier: "loot", Type: "Array<LocalEnum.Item>"},
					{Identifier: "hp", Type: "Int", CanBeNull: true},
				},
			}},
			Layers: []ldtk.LayerDef{
				{UID: uidGrid, Identifier: "Collisions", TypeName: ldtk.LayerIntGrid, GridSize: 16,
					IntGridValues: []ldtk.IntGridValueDef{{Value: 1, Identifier: ptr("Wall")}}},
				{UID: uidAuto, Identifier: "Terrain", TypeName: ldtk.LayerIntGrid, GridSize: 16,
					IntGridValues:  []ldtk.IntGridValueDef{{Value: 1}},
					AutoRuleGroups: []json.RawMessage{json.RawMessage(`{}`)},
					TilesetDefUID:  ptr(uidAtlas)},
				{UID: uidTiles, Identifier: "Ground", TypeName: ldtk.LayerTiles, GridSize: 16,
					TilesetDefUID: ptr(uidAtlas), Doc: ptr("floor")},
				{UID: uidEntities, Identifier: "Entities", TypeName: ldtk.LayerEntities, GridSize: 16},
				{UID: uidStandalo, Identifier: "Decor", TypeName: ldtk.LayerAutoLayer, GridSize: 16},
			},
		},
		Levels: []ldtk.Level{{
			Identifier: "Level_0",
			LayerInstances: []ldtk.LayerInstance{
				{Identifier: "Collisions", CWid: 2, CHei: 2},
				{Identifier: "Terrain", CWid: 2, CHei: 2},
				{Identifier: "Ground", CWid: 2, CHei: 2},
				{Identifier: "Entities", CWid: 2, CHei: 2, EntityInstances: []ldtk.EntityInstance{
					{Identifier: "Door", IID: "door-0", Px: [2]int{8, 32}, Width: 16, Height: 32},
					{Identifier: "Door", IID: "door-1", Px: [2]int{24, 32}, Width: 16, Height: 32},
				}},
				{Identifier: "Decor", CWid: 2, CHei: 2},
			},
		}},
	}
}

type fixture struct {
	project *ldtk.Project
	builder *Builder
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()

	p := testProject()

	defs, err := registry.BuildDefinitions(&p.Defs)
	require.NoError(t, err)

	idx, err := registry.BuildEntityIndex(p)
	require.NoError(t, err)

	coercer, err := field.NewCoercer(defs.Tilesets, idx)
	require.NoError(t, err)

	return fixture{project: p, builder: NewBuilder(defs, coercer, opts, "levels[Level_0]")}
}

func (f fixture) layer(i int) (*ldtk.LayerDef, *ldtk.LayerInstance) {
	return &f.project.Defs.Layers[i], &f.project.Levels[0].LayerInstances[i]
}

func TestBuild_IntGrid(t *testing.T) {
	f := newFixture(t, Options{})
	def, inst := f.layer(0)
	inst.IntGridCsv = []int{0, 1, 1, 0}

	l, err := f.builder.Build(def, inst)
	require.NoError(t, err)

	grid, ok := l.(*model.IntGridLayer)
	require.True(t, ok)

	want := map[model.IVec2]string{
		{X: 0, Y: 0}: "Empty",
		{X: 1, Y: 0}: "Wall",
		{X: 0, Y: 1}: "Wall",
		{X: 1, Y: 1}: "Empty",
	}
	for p, name := range want {
		v, ok := grid.Get(p)
		require.True(t, ok)
		assert.Equal(t, name, v.Name, "%v", p)
	}

	_, ok = grid.Get(model.V2(2, 0))
	assert.False(t, ok)

	_, auto := grid.AutoLayer()
	assert.False(t, auto)
}

func TestBuild_IntGridErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  []int
		kind error
	}{
		{"short csv", []int{0, 1, 1}, diagnostic.ErrSchema},
		{"long csv", []int{0, 1, 1, 0, 0}, diagnostic.ErrSchema},
		{"undeclared value", []int{0, 1, 7, 0}, diagnostic.ErrMissingDefinition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			def, inst := f.layer(0)
			inst.IntGridCsv = tt.csv

			_, err := f.builder.Build(def, inst)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), "layers[Collisions]")
		})
	}
}

func TestBuild_Autotiles(t *testing.T) {
	f := newFixture(t, Options{})
	def, inst := f.layer(1)
	inst.IntGridCsv = []int{1, 1, 0, 0}
	inst.AutoLayerTiles = []ldtk.TileInstance{
		{Px: [2]int{0, 0}, Src: [2]int{8, 0}, F: 0},
		{Px: [2]int{16, 0}, Src: [2]int{0, 8}, F: 1},
		{Px: [2]int{0, 0}, Src: [2]int{16, 16}, F: 3},
		{Px: [2]int{31, 31}, Src: [2]int{8, 8}, F: 2},
	}

	l, err := f.builder.Build(def, inst)
	require.NoError(t, err)

	at, ok := l.(*model.IntGridLayer).AutoLayer()
	require.True(t, ok)
	assert.Equal(t, uidAtlas, at.TilesetID())

	assert.Equal(t, []model.Tile{
		{Position: model.V2[uint32](1, 0), Flip: model.FlipNone},
		{Position: model.V2[uint32](2, 2), Flip: model.FlipBoth},
	}, at.Autotiles(model.V2(0, 0)), "input order kept per bucket")
	assert.Equal(t, []model.Tile{{Position: model.V2[uint32](0, 1), Flip: model.FlipHorizontal}},
		at.Autotiles(model.V2(1, 0)))
	assert.Empty(t, at.Autotiles(model.V2(0, 1)))
	assert.Equal(t, []model.Tile{{Position: model.V2[uint32](1, 1), Flip: model.FlipVertical}},
		at.Autotiles(model.V2(1, 1)))

	// Every stamp lands in exactly one bucket.
	total := 0
	for _, tiles := range at.AutotileRect(model.V2(0, 0), model.V2[uint32](2, 2)) {
		total += len(tiles)
	}

	assert.Equal(t, len(inst.AutoLayerTiles), total)
}

func TestBuild_AutotileErrors(t *testing.T) {
	tests := []struct {
		name  string
		tiles []ldtk.TileInstance
		kind  error
		where string
	}{
		{"bad flip", []ldtk.TileInstance{{F: 4}}, diagnostic.ErrInvalidEncoding, "autoLayerTiles[0]"},
		{"outside layer", []ldtk.TileInstance{{}, {Px: [2]int{32, 0}}}, diagnostic.ErrValidation, "autoLayerTiles[1]"},
		{"negative pixel", []ldtk.TileInstance{{Px: [2]int{-1, 0}}}, diagnostic.ErrValidation, "autoLayerTiles[0]"},
		{"negative source", []ldtk.TileInstance{{Src: [2]int{-8, 0}}}, diagnostic.ErrValidation, "autoLayerTiles[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			def, inst := f.layer(1)
			inst.IntGridCsv = []int{0, 0, 0, 0}
			inst.AutoLayerTiles = tt.tiles

			_, err := f.builder.Build(def, inst)
			require.ErrorIs(t, err, tt.kind)

			var e *diagnostic.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, "layers[Terrain]."+tt.where, e.Location())
		})
	}
}

func TestBuild_AutotileNeedsTileset(t *testing.T) {
	f := newFixture(t, Options{})
	def, inst := f.layer(1)
	def.TilesetDefUID = nil
	inst.IntGridCsv = []int{0, 0, 0, 0}

	_, err := f.builder.Build(def, inst)
	assert.ErrorIs(t, err, diagnostic.ErrSchema)

	inst.TilesetDefUID = ptr(42)
	_, err = f.builder.Build(def, inst)
	assert.ErrorIs(t, err, diagnostic.ErrMissingDefinition)
}

func TestBuild_Tiles(t *testing.T) {
	f := newFixture(t, Options{})
	def, inst := f.layer(2)
	inst.GridTiles = []ldtk.TileInstance{
		{Px: [2]int{16, 0}, Src: [2]int{8, 0}},
		{Px: [2]int{16, 0}, Src: [2]int{16, 8}, F: 2},
		{Px: [2]int{0, 16}, Src: [2]int{0, 0}},
	}

	l, err := f.builder.Build(def, inst)
	require.NoError(t, err)

	tiles := l.(*model.TileLayer)
	assert.Equal(t, uidAtlas, tiles.Tileset)
	assert.Equal(t, "floor", tiles.Doc)

	_, ok := tiles.Get(model.V2(0, 0))
	assert.False(t, ok)

	got, ok := tiles.Get(model.V2(1, 0))
	require.True(t, ok)
	assert.Equal(t, model.Tile{Position: model.V2[uint32](2, 1), Flip: model.FlipVertical}, got, "last write wins")

	got, ok = tiles.Get(model.V2(0, 1))
	require.True(t, ok)
	assert.Equal(t, model.FlipNone, got.Flip)

	diags := f.builder.Diagnostics()
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "levels[Level_0].layers[Ground]", diags.Infos[0].Path)
}

func rawFields(t *testing.T, kv map[string]string) []ldtk.FieldInstance {
	t.Helper()

	var out []ldtk.FieldInstance
	for _, name := range []string{"target", "loot", "hp", "bogus"} {
		if v, ok := kv[name]; ok {
			out = append(out, ldtk.FieldInstance{Identifier: name, Value: json.RawMessage(v)})
		}
	}

	return out
}

func TestBuild_Entities(t *testing.T) {
	f := newFixture(t, Options{})
	def, inst := f.layer(3)
	inst.EntityInstances[0].FieldInstances = rawFields(t, map[string]string{
		"target": `{"entityIid": "door-1"}`,
		"loot":   `["Sword", "Shield"]`,
		"hp":     `null`,
	})
	inst.EntityInstances[1].FieldInstances = rawFields(t, map[string]string{
		"loot": `[]`,
	})

	l, err := f.builder.Build(def, inst)
	require.NoError(t, err)

	ents := l.(*model.EntityLayer)
	require.Len(t, ents.Entities(), 2)

	door, ok := ents.Entity(0)
	require.True(t, ok)
	assert.Equal(t, "Door", door.Type)
	assert.Equal(t, model.V2(0.0, 0.0), door.TopLeft())

	target, ok := door.Fields.Get("target")
	require.True(t, ok)
	assert.Equal(t, model.RefValue(model.EntityRef{Level: 0, Layer: 3, Entity: 1}), target)

	hp, ok := door.Fields.Get("hp")
	require.True(t, ok)
	assert.True(t, hp.IsNone())

	second, _ := ents.Entity(1)
	target, _ = second.Fields.Get("target")
	assert.True(t, target.IsNone(), "missing optional instance coerces as absent")

	if t.Failed() {
		t.Log(spew.Sdump(ents.Entities()))
	}
}

func TestBuild_EntityErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		kind   error
		where  string
	}{
		{"mandatory missing", map[string]string{}, diagnostic.ErrValidation, "fields[loot]"},
		{"dangling ref", map[string]string{"loot": `[]`, "target": `{"entityIid": "gone"}`},
			diagnostic.ErrMissingDefinition, "fields[target]"},
		{"undefined field", map[string]string{"loot": `[]`, "bogus": `1`},
			diagnostic.ErrMissingDefinition, "fields[bogus]"},
		{"wrong kind", map[string]string{"loot": `[]`, "hp": `"ten"`}, diagnostic.ErrValidation, "fields[hp]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			def, inst := f.layer(3)
			inst.EntityInstances[0].FieldInstances = rawFields(t, tt.fields)

			_, err := f.builder.Build(def, inst)
			require.ErrorIs(t, err, tt.kind)

			var e *diagnostic.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, "layers[Entities].entities[Door#0]."+tt.where, e.Location())
		})
	}
}

func TestBuild_UnknownEntity(t *testing.T) {
	f := newFixture(t, Options{})
	def, inst := f.layer(3)
	inst.EntityInstances[0].FieldInstances = rawFields(t, map[string]string{"loot": `[]`})
	inst.EntityInstances[1].Identifier = "Dor"

	_, err := f.builder.Build(def, inst)
	require.ErrorIs(t, err, diagnostic.ErrMissingDefinition)
	assert.Contains(t, err.Error(), "did you mean Door?")
}

func TestBuild_UnknownEnumCase(t *testing.T) {
	t.Run("warning", func(t *testing.T) {
		f := newFixture(t, Options{})
		def, inst := f.layer(3)
		inst.EntityInstances[0].FieldInstances = rawFields(t, map[string]string{"loot": `["Swrod"]`})
		inst.EntityInstances[1].FieldInstances = rawFields(t, map[string]string{"loot": `[]`})

		_, err := f.builder.Build(def, inst)
		require.NoError(t, err)

		diags := f.builder.Diagnostics()
		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, "levels[Level_0].layers[Entities].entities[Door#0].fields[loot]", diags.Warnings[0].Path)
		assert.Equal(t, []string{"Sword"}, diags.Warnings[0].Suggestions)
	})

	t.Run("strict", func(t *testing.T) {
		f := newFixture(t, Options{StrictEnums: true})
		def, inst := f.layer(3)
		inst.EntityInstances[0].FieldInstances = rawFields(t, map[string]string{"loot": `["Swrod"]`})

		_, err := f.builder.Build(def, inst)
		assert.ErrorIs(t, err, diagnostic.ErrValidation)
	})
}

func TestBuild_StandaloneAutoLayer(t *testing.T) {
	f := newFixture(t, Options{})
	def, inst := f.layer(4)

	_, err := f.builder.Build(def, inst)
	assert.ErrorIs(t, err, diagnostic.ErrUnsupported)
}

func TestBuild_InstanceMismatch(t *testing.T) {
	f := newFixture(t, Options{})
	def, inst := f.layer(2)

	inst.Type = ldtk.LayerIntGrid
	_, err := f.builder.Build(def, inst)
	assert.ErrorIs(t, err, diagnostic.ErrSchema)

	inst.Type = ""
	inst.GridSize = 8
	_, err = f.builder.Build(def, inst)
	assert.ErrorIs(t, err, diagnostic.ErrSchema)
}

func TestDecodeFlip(t *testing.T) {
	for code, want := range []model.FlipMode{model.FlipNone, model.FlipHorizontal, model.FlipVertical, model.FlipBoth} {
		got, err := DecodeFlip(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, bad := range []int{-1, 4, 255} {
		_, err := DecodeFlip(bad)
		assert.ErrorIs(t, err, diagnostic.ErrInvalidEncoding)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "%d/%d", tt.a, tt.b)
	}
}
