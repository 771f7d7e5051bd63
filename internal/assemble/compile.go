package assemble

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/field"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/layer"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/registry"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// Options configures a compilation.
type Options struct {
	// Workers bounds how many levels are built concurrently. Values below 2
	// build levels one after another.
	Workers int
	// StrictEnums turns unknown enum cases into errors.
	StrictEnums bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Result is a compiled world with the findings that did not stop the build.
type Result struct {
	World       *model.World
	Diagnostics diagnostic.Diagnostics
}

// Compile builds the world for p. The first error aborts compilation; no
// partial world is returned.
func Compile(p *ldtk.Project, opts Options) (*Result, error) {
	defs, err := registry.BuildDefinitions(&p.Defs)
	if err != nil {
		return nil, err
	}

	idx, err := registry.BuildEntityIndex(p)
	if err != nil {
		return nil, err
	}

	coercer, err := field.NewCoercer(defs.Tilesets, idx)
	if err != nil {
		return nil, fmt.Errorf("failed to create coercer: %w", err)
	}

	var bg model.Color
	if p.BgColor != "" {
		bg, err = field.ParseColor(p.BgColor)
		if err != nil {
			return nil, diagnostic.Within("bgColor", err)
		}
	}

	res := &Result{}

	for _, ts := range defs.Tilesets.All() {
		if ts.Path == "" {
			res.Diagnostics.AddInfo("tileset-without-path", "tileset has no image path",
				diagnostic.Seg("defs.tilesets", ts.Identifier))
		}
	}

	c := &compiler{project: p, defs: defs, coercer: coercer, opts: opts, bg: bg}

	levels, diags, err := c.levels()
	if err != nil {
		return nil, err
	}

	for _, d := range diags {
		res.Diagnostics.Merge(d)
	}

	res.World = &model.World{
		BgColor:     bg,
		Tilesets:    defs.Tilesets.All(),
		Enums:       defs.Enums,
		EntityTypes: defs.ModelEntityTypes(),
		Levels:      levels,
	}

	return res, nil
}

type compiler struct {
	project *ldtk.Project
	defs    *registry.Definitions
	coercer *field.Coercer
	opts    Options
	bg      model.Color
}

// levels builds every level. Each worker owns one slot of the output
// slices, and the error of the lowest failing level wins so results do not
// depend on scheduling.
func (c *compiler) levels() ([]*model.Level, []diagnostic.Diagnostics, error) {
	n := len(c.project.Levels)
	levels := make([]*model.Level, n)
	diags := make([]diagnostic.Diagnostics, n)
	errs := make([]error, n)

	if c.opts.Workers < 2 {
		for i := range n {
			levels[i], diags[i], errs[i] = c.level(i)
			if errs[i] != nil {
				return nil, nil, errs[i]
			}
		}

		return levels, diags, nil
	}

	var g errgroup.Group

	g.SetLimit(c.opts.Workers)

	for i := range n {
		g.Go(func() error {
			levels[i], diags[i], errs[i] = c.level(i)
			return errs[i]
		})
	}

	if g.Wait() != nil {
		for _, err := range errs {
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return levels, diags, nil
}

func (c *compiler) level(i int) (*model.Level, diagnostic.Diagnostics, error) {
	lvl := &c.project.Levels[i]
	scope := diagnostic.Seg("levels", lvl.Identifier)

	out, diags, err := c.buildLevel(lvl, scope)
	if err != nil {
		return nil, diags, diagnostic.Within(scope, err)
	}

	return out, diags, nil
}

func (c *compiler) buildLevel(lvl *ldtk.Level, scope string) (*model.Level, diagnostic.Diagnostics, error) {
	b := layer.NewBuilder(c.defs, c.coercer, layer.Options{StrictEnums: c.opts.StrictEnums}, scope)

	if lvl.PxWid < 0 || lvl.PxHei < 0 {
		return nil, b.Diagnostics(), diagnostic.Schemaf("negative level size %dx%d", lvl.PxWid, lvl.PxHei)
	}

	pairs, err := ldtk.PairLayers(c.project.Defs.Layers, lvl)
	if err != nil {
		return nil, b.Diagnostics(), err
	}

	layers := make([]model.Layer, 0, len(pairs))

	for _, pair := range pairs {
		l, err := b.Build(pair.Def, pair.Inst)
		if err != nil {
			return nil, b.Diagnostics(), err
		}

		layers = append(layers, l)
	}

	fields, err := b.Fields(c.defs.LevelFields, lvl.FieldInstances)
	if err != nil {
		return nil, b.Diagnostics(), err
	}

	bg := c.bg
	if lvl.BgColor != "" {
		bg, err = field.ParseColor(lvl.BgColor)
		if err != nil {
			return nil, b.Diagnostics(), diagnostic.Within("bgColor", err)
		}
	}

	return &model.Level{
		Identifier: lvl.Identifier,
		IID:        lvl.IID,
		BgColor:    bg,
		PixelSize:  model.V2(uint32(lvl.PxWid), uint32(lvl.PxHei)),
		WorldX:     lvl.WorldX,
		WorldY:     lvl.WorldY,
		WorldDepth: lvl.WorldDepth,
		Layers:     layers,
		Fields:     fields,
	}, b.Diagnostics(), nil
}
