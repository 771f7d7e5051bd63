package layer

import (
	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/field"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/registry"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// Options tune layer compilation.
type Options struct {
	// StrictEnums turns enum values that name no declared case into errors
	// instead of warnings.
	StrictEnums bool
}

// Builder compiles the layers of one level. It is not safe for concurrent
// use; build one per level.
type Builder struct {
	defs    *registry.Definitions
	coercer *field.Coercer
	opts    Options
	scope   string
	diags   diagnostic.Diagnostics
}

// NewBuilder returns a Builder reading definitions from defs. Findings are
// located under scope, e.g. levels[Level_0].
func NewBuilder(defs *registry.Definitions, coercer *field.Coercer, opts Options, scope string) *Builder {
	return &Builder{defs: defs, coercer: coercer, opts: opts, scope: scope}
}

// Diagnostics returns the non-fatal findings recorded so far.
func (b *Builder) Diagnostics() diagnostic.Diagnostics {
	return b.diags
}

// Build compiles one layer instance against its definition.
func (b *Builder) Build(def *ldtk.LayerDef, inst *ldtk.LayerInstance) (model.Layer, error) {
	l, err := b.build(def, inst)
	if err != nil {
		return nil, diagnostic.Within(diagnostic.Seg("layers", def.Identifier), err)
	}

	return l, nil
}

func (b *Builder) build(def *ldtk.LayerDef, inst *ldtk.LayerInstance) (model.Layer, error) {
	kind := def.LayerType()

	if inst.Type != "" && inst.Type != kind {
		return nil, diagnostic.Schemaf("instance is a %s layer but its definition is %s", inst.Type, kind)
	}

	if inst.CWid < 0 || inst.CHei < 0 {
		return nil, diagnostic.Schemaf("negative layer size %dx%d", inst.CWid, inst.CHei)
	}

	if inst.GridSize != 0 && inst.GridSize != def.GridSize {
		return nil, diagnostic.Schemaf("instance grid size %d differs from definition grid size %d",
			inst.GridSize, def.GridSize)
	}

	info := model.LayerInfo{
		Identifier:     def.Identifier,
		IID:            inst.IID,
		Size:           model.V2(uint32(inst.CWid), uint32(inst.CHei)),
		GridSize:       def.GridSize,
		PxOffset:       model.V2(def.PxOffsetX, def.PxOffsetY),
		ParallaxFactor: model.V2(def.ParallaxFactorX, def.ParallaxFactorY),
		Opacity:        def.Opacity(),
	}
	if def.Doc != nil {
		info.Doc = *def.Doc
	}

	switch kind {
	case ldtk.LayerIntGrid:
		return b.intGrid(info, def, inst)
	case ldtk.LayerTiles:
		return b.tiles(info, def, inst)
	case ldtk.LayerEntities:
		return b.entities(info, inst)
	case ldtk.LayerAutoLayer:
		return nil, diagnostic.Unsupportedf("standalone auto-layers are not implemented")
	default:
		return nil, diagnostic.Schemaf("unknown layer type %q", kind)
	}
}

// tileset resolves the tileset a layer draws from, preferring the instance
// override.
func (b *Builder) tileset(def *ldtk.LayerDef, inst *ldtk.LayerInstance) (model.Tileset, error) {
	uid := inst.TilesetDefUID
	if uid == nil {
		uid = def.TilesetDefUID
	}

	if uid == nil {
		return model.Tileset{}, diagnostic.Schemaf("layer draws tiles but names no tileset")
	}

	return b.defs.Tilesets.Lookup(*uid)
}

func (b *Builder) at(segments ...string) string {
	path := b.scope
	for _, s := range segments {
		if path != "" && s != "" && s[0] != '[' {
			path += "."
		}

		path += s
	}

	return path
}
