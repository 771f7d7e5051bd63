package layer

import (
	"strconv"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

func (b *Builder) intGrid(info model.LayerInfo, def *ldtk.LayerDef, inst *ldtk.LayerInstance) (model.Layer, error) {
	palette, ok := b.defs.Palette(def.UID)
	if !ok {
		return nil, diagnostic.Missingf("no palette for int-grid layer uid %d", def.UID)
	}

	if want := inst.CWid * inst.CHei; len(inst.IntGridCsv) != want {
		return nil, diagnostic.Schemaf("intGridCsv has %d cells, layer is %dx%d",
			len(inst.IntGridCsv), inst.CWid, inst.CHei)
	}

	for i, v := range inst.IntGridCsv {
		if _, ok := palette.Lookup(v); !ok {
			return nil, diagnostic.Within(diagnostic.Seg("intGridCsv", strconv.Itoa(i)),
				diagnostic.Missingf("int-grid value is not declared").WithValue(strconv.Itoa(v)))
		}
	}

	var auto *model.Autotiles

	if len(def.AutoRuleGroups) > 0 {
		ts, err := b.tileset(def, inst)
		if err != nil {
			return nil, err
		}

		buckets, err := Stitch(inst.AutoLayerTiles, info.Size, def.GridSize, ts)
		if err != nil {
			return nil, err
		}

		auto, err = model.NewAutotiles(ts.ID, info.Size, buckets)
		if err != nil {
			return nil, diagnostic.Schemaf("autotiles").Wrap(err)
		}
	}

	l, err := model.NewIntGridLayer(info, palette, inst.IntGridCsv, auto)
	if err != nil {
		return nil, diagnostic.Schemaf("int-grid layer").Wrap(err)
	}

	return l, nil
}
