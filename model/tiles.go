package model

import (
	"fmt"
	"iter"
)

// TileLayer holds at most one tile per cell.
type TileLayer struct {
	LayerInfo
	Tileset int

	grid Grid[*Tile]
}

// NewTileLayer wraps row-major cells; nil cells are empty.
func NewTileLayer(info LayerInfo, tileset int, cells []*Tile) (*TileLayer, error) {
	grid, err := GridFrom(info.Size, cells)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", info.Identifier, err)
	}

	return &TileLayer{LayerInfo: info, Tileset: tileset, grid: grid}, nil
}

// MustTileLayer is NewTileLayer that panics on error.
func MustTileLayer(info LayerInfo, tileset int, cells []*Tile) *TileLayer {
	l, err := NewTileLayer(info, tileset, cells)
	if err != nil {
		panic(err)
	}

	return l
}

func (l *TileLayer) Kind() LayerKind { return LayerTiles }

// Get returns the tile at p. False when p is outside the layer or the cell is
// empty.
func (l *TileLayer) Get(p IVec2) (Tile, bool) {
	t, ok := l.grid.Get(p)
	if !ok || t == nil {
		return Tile{}, false
	}

	return *t, true
}

// GetMut returns the tile at p, nil when outside the layer or empty.
func (l *TileLayer) GetMut(p IVec2) *Tile {
	t, ok := l.grid.Get(p)
	if !ok {
		return nil
	}

	return t
}

// Rect iterates a region; empty and out-of-layer cells yield nil.
func (l *TileLayer) Rect(start IVec2, size UVec2) iter.Seq2[IVec2, *Tile] {
	return func(yield func(IVec2, *Tile) bool) {
		for p, cell := range l.grid.Rect(start, size) {
			var t *Tile
			if cell != nil {
				t = *cell
			}

			if !yield(p, t) {
				return
			}
		}
	}
}

// Cells exposes the row-major cells.
func (l *TileLayer) Cells() []*Tile {
	return l.grid.cells
}
