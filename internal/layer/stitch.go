package layer

import (
	"strconv"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// DecodeFlip maps LDtk flip bits to a FlipMode.
func DecodeFlip(f int) (model.FlipMode, error) {
	switch f {
	case 0:
		return model.FlipNone, nil
	case 1:
		return model.FlipHorizontal, nil
	case 2:
		return model.FlipVertical, nil
	case 3:
		return model.FlipBoth, nil
	default:
		return 0, diagnostic.Encodingf("invalid flip mode").WithValue(strconv.Itoa(f))
	}
}

// stamp resolves one tile placement to the layer cell it occupies and the
// tileset cell it shows.
func stamp(t ldtk.TileInstance, gridSize int, ts model.Tileset) (model.IVec2, model.Tile, error) {
	flip, err := DecodeFlip(t.F)
	if err != nil {
		return model.IVec2{}, model.Tile{}, err
	}

	if t.Src[0] < 0 || t.Src[1] < 0 {
		return model.IVec2{}, model.Tile{}, diagnostic.Validationf("negative tileset source %d,%d", t.Src[0], t.Src[1])
	}

	cell := model.V2(floorDiv(t.Px[0], gridSize), floorDiv(t.Px[1], gridSize))
	src := model.V2(uint32(t.Src[0]/ts.TileSize), uint32(t.Src[1]/ts.TileSize))

	return cell, model.Tile{Position: src, Flip: flip}, nil
}

// placements walks tile stamps in input order, handing each one's row-major
// cell offset and tile to place. Stamps outside the layer are an error.
func placements(tiles []ldtk.TileInstance, grid *model.Grid[struct{}], gridSize int, ts model.Tileset,
	place func(i, offset int, tile model.Tile),
) error {
	for i, t := range tiles {
		cell, tile, err := stamp(t, gridSize, ts)
		if err != nil {
			return diagnostic.Within(diagnostic.Index(i), err)
		}

		offset, ok := grid.Index(cell)
		if !ok {
			return diagnostic.Within(diagnostic.Index(i),
				diagnostic.Validationf("tile at pixel %d,%d lands outside the layer", t.Px[0], t.Px[1]))
		}

		place(i, offset, tile)
	}

	return nil
}

// Stitch groups autotile stamps into per-cell buckets, keeping input order
// within each bucket.
func Stitch(tiles []ldtk.TileInstance, size model.UVec2, gridSize int, ts model.Tileset) ([][]model.Tile, error) {
	shape := model.NewGrid[struct{}](size)
	buckets := make([][]model.Tile, len(shape.Cells()))

	err := placements(tiles, &shape, gridSize, ts, func(_, offset int, tile model.Tile) {
		buckets[offset] = append(buckets[offset], tile)
	})
	if err != nil {
		return nil, diagnostic.Within("autoLayerTiles", err)
	}

	return buckets, nil
}
