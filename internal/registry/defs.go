package registry

import (
	"fmt"
	"strconv"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/field"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/match"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// FieldSpec is a custom field definition with its resolved type.
type FieldSpec struct {
	Name string
	Type field.Type
}

// EntityType is an entity definition ready for instance compilation.
type EntityType struct {
	model.EntityType
	UID    int
	Fields []FieldSpec
}

// Definitions is the result of the definition pass.
type Definitions struct {
	Tilesets    *Tilesets
	Enums       []model.Enum
	EntityTypes []EntityType
	LevelFields []FieldSpec

	enums    map[string]int
	entities map[string]int
	palettes map[int]model.Palette
}

// BuildDefinitions validates every definition in the project and resolves
// field types, enum icons, render modes and int-grid palettes.
func BuildDefinitions(defs *ldtk.Definitions) (*Definitions, error) {
	tilesets, err := NewTilesets(defs.Tilesets)
	if err != nil {
		return nil, diagnostic.Within("defs", err)
	}

	d := &Definitions{
		Tilesets: tilesets,
		enums:    make(map[string]int, len(defs.Enums)),
		entities: make(map[string]int, len(defs.Entities)),
		palettes: make(map[int]model.Palette),
	}

	steps := []func(*ldtk.Definitions) error{
		d.addEnums,
		d.addLayers,
		d.addEntities,
		d.addLevelFields,
	}

	for _, step := range steps {
		if err := step(defs); err != nil {
			return nil, diagnostic.Within("defs", err)
		}
	}

	return d, nil
}

func (d *Definitions) addEnums(defs *ldtk.Definitions) error {
	for _, def := range defs.Enums {
		at := diagnostic.Seg("enums", def.Identifier)

		if _, dup := d.enums[def.Identifier]; dup {
			return diagnostic.Within(at, diagnostic.Schemaf("duplicate enum"))
		}

		enum := model.Enum{Identifier: def.Identifier, Cases: make([]model.EnumCase, 0, len(def.Values))}
		if def.IconTilesetUID != nil {
			uid := *def.IconTilesetUID
			enum.IconTileset = &uid
		}

		for _, v := range def.Values {
			c, err := d.enumCase(def, v)
			if err != nil {
				return diagnostic.Within(at, diagnostic.Within(diagnostic.Seg("values", v.ID), err))
			}

			enum.Cases = append(enum.Cases, c)
		}

		d.enums[def.Identifier] = len(d.Enums)
		d.Enums = append(d.Enums, enum)
	}

	return nil
}

func (d *Definitions) enumCase(def ldtk.EnumDef, v ldtk.EnumValueDef) (model.EnumCase, error) {
	c := model.EnumCase{ID: v.ID}

	if v.Color >= 0 {
		col := model.ColorFromRGB(uint32(v.Color))
		c.Color = &col
	}

	if v.TileRect == nil {
		return c, nil
	}

	uid := v.TileRect.TilesetUID
	if def.IconTilesetUID != nil {
		uid = *def.IconTilesetUID
	}

	ts, err := d.Tilesets.Lookup(uid)
	if err != nil {
		return c, err
	}

	icon, err := cellOf(v.TileRect.X, v.TileRect.Y, ts.TileSize)
	if err != nil {
		return c, err
	}

	c.Icon = &icon

	return c, nil
}

func (d *Definitions) addLayers(defs *ldtk.Definitions) error {
	seen := make(map[int]bool, len(defs.Layers))

	for i := range defs.Layers {
		def := &defs.Layers[i]
		at := diagnostic.Seg("layers", def.Identifier)

		if seen[def.UID] {
			return diagnostic.Within(at, diagnostic.Schemaf("duplicate layer uid %d", def.UID))
		}

		seen[def.UID] = true

		if def.GridSize <= 0 {
			return diagnostic.Within(at,
				diagnostic.Schemaf("grid size must be positive").WithValue(strconv.Itoa(def.GridSize)))
		}

		switch def.LayerType() {
		case ldtk.LayerIntGrid:
			palette, err := buildPalette(def.IntGridValues)
			if err != nil {
				return diagnostic.Within(at, err)
			}

			d.palettes[def.UID] = palette
		case ldtk.LayerTiles, ldtk.LayerEntities, ldtk.LayerAutoLayer:
		default:
			return diagnostic.Within(at, diagnostic.Schemaf("unknown layer type %q", def.LayerType()).
				WithSuggestions(match.Closest(def.LayerType(), layerTypes, 1)...))
		}
	}

	return nil
}

var layerTypes = []string{ldtk.LayerIntGrid, ldtk.LayerTiles, ldtk.LayerEntities, ldtk.LayerAutoLayer}

// buildPalette names each declared value by its identifier, or Tile<n> after
// its declaration index when it has none.
func buildPalette(values []ldtk.IntGridValueDef) (model.Palette, error) {
	declared := make([]model.IntGridValue, 0, len(values))

	for i, v := range values {
		name := fmt.Sprintf("Tile%d", i)
		if v.Identifier != nil && *v.Identifier != "" {
			name = *v.Identifier
		}

		if v.Value == 0 {
			return nil, diagnostic.Schemaf("int-grid value 0 is reserved for empty cells").WithValue(name)
		}

		declared = append(declared, model.IntGridValue{Value: v.Value, Name: name})
	}

	palette := model.NewPalette(declared...)

	for i, a := range palette {
		for _, b := range palette[i+1:] {
			if a.Value == b.Value {
				return nil, diagnostic.Schemaf("int-grid value %d declared twice", a.Value)
			}

			if a.Name == b.Name {
				return nil, diagnostic.Schemaf("int-grid name %q declared twice", a.Name)
			}
		}
	}

	return palette, nil
}

func (d *Definitions) addEntities(defs *ldtk.Definitions) error {
	for i := range defs.Entities {
		def := &defs.Entities[i]
		at := diagnostic.Seg("entities", def.Identifier)

		if _, dup := d.entities[def.Identifier]; dup {
			return diagnostic.Within(at, diagnostic.Schemaf("duplicate entity definition"))
		}

		et, err := d.entityType(def)
		if err != nil {
			return diagnostic.Within(at, err)
		}

		d.entities[def.Identifier] = len(d.EntityTypes)
		d.EntityTypes = append(d.EntityTypes, et)
	}

	return nil
}

func (d *Definitions) entityType(def *ldtk.EntityDef) (EntityType, error) {
	if def.Width < 0 || def.Height < 0 {
		return EntityType{}, diagnostic.Schemaf("negative entity size %dx%d", def.Width, def.Height)
	}

	render, err := d.renderMode(def)
	if err != nil {
		return EntityType{}, err
	}

	fields, err := d.fieldSpecs(def.FieldDefs)
	if err != nil {
		return EntityType{}, err
	}

	return EntityType{
		EntityType: model.EntityType{
			Identifier: def.Identifier,
			Pivot:      model.V2(def.PivotX, def.PivotY),
			Size:       model.V2(uint32(def.Width), uint32(def.Height)),
			Render:     render,
			Tags:       def.Tags,
		},
		UID:    def.UID,
		Fields: fields,
	}, nil
}

func (d *Definitions) renderMode(def *ldtk.EntityDef) (model.RenderMode, error) {
	switch def.RenderMode {
	case ldtk.RenderRectangle, "":
		return model.RenderMode{Kind: model.RenderRectangle}, nil
	case ldtk.RenderEllipse:
		return model.RenderMode{Kind: model.RenderEllipse}, nil
	case ldtk.RenderCross:
		return model.RenderMode{Kind: model.RenderCross}, nil
	case ldtk.RenderTile:
	default:
		return model.RenderMode{}, diagnostic.Schemaf("unknown render mode %q", def.RenderMode)
	}

	if def.TileRect == nil {
		return model.RenderMode{}, diagnostic.Schemaf("tile render mode has no tile rectangle")
	}

	uid, ok := def.Tileset()
	if !ok {
		return model.RenderMode{}, diagnostic.Schemaf("tile render mode has no tileset")
	}

	ts, err := d.Tilesets.Lookup(uid)
	if err != nil {
		return model.RenderMode{}, err
	}

	r := def.TileRect

	tile, err := cellOf(r.X, r.Y, ts.TileSize)
	if err != nil {
		return model.RenderMode{}, err
	}

	size, err := cellOf(r.W, r.H, ts.TileSize)
	if err != nil {
		return model.RenderMode{}, err
	}

	return model.RenderMode{Kind: model.RenderTile, Tileset: ts.ID, Tile: tile, Size: size}, nil
}

func (d *Definitions) addLevelFields(defs *ldtk.Definitions) error {
	fields, err := d.fieldSpecs(defs.LevelFields)
	if err != nil {
		return diagnostic.Within("levelFields", err)
	}

	d.LevelFields = fields

	return nil
}

// fieldSpecs resolves field definitions and checks that every enum they
// name is declared.
func (d *Definitions) fieldSpecs(defs []ldtk.FieldDef) ([]FieldSpec, error) {
	specs := make([]FieldSpec, 0, len(defs))

	for _, def := range defs {
		t, err := field.ParseDef(def)
		if err != nil {
			return nil, err
		}

		if leaf := t.Leaf(); leaf.Kind == field.KindEnum {
			if _, ok := d.enums[leaf.Enum]; !ok {
				return nil, diagnostic.Within(diagnostic.Seg("fields", def.Identifier),
					diagnostic.Missingf("unknown enum %q", leaf.Enum).
						WithSuggestions(match.Closest(leaf.Enum, d.enumNames(), 3)...))
			}
		}

		specs = append(specs, FieldSpec{Name: def.Identifier, Type: t})
	}

	return specs, nil
}

func (d *Definitions) enumNames() []string {
	names := make([]string, len(d.Enums))
	for i, e := range d.Enums {
		names[i] = e.Identifier
	}

	return names
}

// Enum returns the enum with the given identifier.
func (d *Definitions) Enum(identifier string) (model.Enum, bool) {
	i, ok := d.enums[identifier]
	if !ok {
		return model.Enum{}, false
	}

	return d.Enums[i], true
}

// CheckEnumCase reports whether value is a declared case of the enum, with
// the closest declared cases when it is not.
func (d *Definitions) CheckEnumCase(enum, value string) (bool, []string) {
	e, ok := d.Enum(enum)
	if !ok {
		return false, nil
	}

	if _, ok := e.Case(value); ok {
		return true, nil
	}

	ids := make([]string, len(e.Cases))
	for i, c := range e.Cases {
		ids[i] = c.ID
	}

	return false, match.Closest(value, ids, 3)
}

// EntityType returns the definition for an entity identifier.
func (d *Definitions) EntityType(identifier string) (*EntityType, error) {
	i, ok := d.entities[identifier]
	if !ok {
		names := make([]string, len(d.EntityTypes))
		for j, et := range d.EntityTypes {
			names[j] = et.Identifier
		}

		return nil, diagnostic.Missingf("unknown entity %q", identifier).
			WithSuggestions(match.Closest(identifier, names, 3)...)
	}

	return &d.EntityTypes[i], nil
}

// ModelEntityTypes returns the public form of every entity definition.
func (d *Definitions) ModelEntityTypes() []model.EntityType {
	out := make([]model.EntityType, len(d.EntityTypes))
	for i, et := range d.EntityTypes {
		out[i] = et.EntityType
	}

	return out
}

// Palette returns the palette of an int-grid layer definition.
func (d *Definitions) Palette(layerUID int) (model.Palette, bool) {
	p, ok := d.palettes[layerUID]
	return p, ok
}

// cellOf converts a pixel position in a tileset to a cell.
func cellOf(x, y, tileSize int) (model.UVec2, error) {
	if x < 0 || y < 0 {
		return model.UVec2{}, diagnostic.Validationf("negative tileset position %d,%d", x, y)
	}

	return model.V2(uint32(x/tileSize), uint32(y/tileSize)), nil
}
