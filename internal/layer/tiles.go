package layer

import (
	"fmt"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

func (b *Builder) tiles(info model.LayerInfo, def *ldtk.LayerDef, inst *ldtk.LayerInstance) (model.Layer, error) {
	ts, err := b.tileset(def, inst)
	if err != nil {
		return nil, err
	}

	shape := model.NewGrid[struct{}](info.Size)
	cells := make([]*model.Tile, len(shape.Cells()))

	err = placements(inst.GridTiles, &shape, def.GridSize, ts, func(i, offset int, tile model.Tile) {
		if cells[offset] != nil {
			b.diags.AddInfo("tile-overwrite",
				fmt.Sprintf("gridTiles[%d] replaces an earlier tile in the same cell", i),
				b.at(diagnostic.Seg("layers", def.Identifier)))
		}

		cells[offset] = &tile
	})
	if err != nil {
		return nil, diagnostic.Within("gridTiles", err)
	}

	l, err := model.NewTileLayer(info, ts.ID, cells)
	if err != nil {
		return nil, diagnostic.Schemaf("tile layer").Wrap(err)
	}

	return l, nil
}
