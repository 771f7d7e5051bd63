package model

import (
	"fmt"
	"iter"
	"slices"
)

// IntGridValue is one entry of an int-grid palette.
type IntGridValue struct {
	Value int
	Name  string
}

// EmptyCell is palette entry 0, present in every int-grid layer.
var EmptyCell = IntGridValue{Value: 0, Name: "Empty"}

// IsEmpty reports whether v is the reserved empty value.
func (v IntGridValue) IsEmpty() bool {
	return v.Value == 0
}

// Palette lists the values an int-grid layer may hold. Index 0 is always
// EmptyCell.
type Palette []IntGridValue

// NewPalette builds a palette from the declared values, prepending EmptyCell.
func NewPalette(declared ...IntGridValue) Palette {
	return append(Palette{EmptyCell}, declared...)
}

// Lookup finds the entry for a raw cell value.
func (p Palette) Lookup(value int) (IntGridValue, bool) {
	for _, v := range p {
		if v.Value == value {
			return v, true
		}
	}

	return IntGridValue{}, false
}

// ByName finds the entry with the given identifier.
func (p Palette) ByName(name string) (IntGridValue, bool) {
	for _, v := range p {
		if v.Name == name {
			return v, true
		}
	}

	return IntGridValue{}, false
}

// IntGridLayer stores one palette value per cell, optionally augmented with
// autotile stamps.
type IntGridLayer struct {
	LayerInfo
	Palette Palette

	grid Grid[IntGridValue]
	auto *Autotiles
}

// NewIntGridLayer maps raw row-major cell values through the palette. auto may
// be nil; when set it must match the layer size.
func NewIntGridLayer(info LayerInfo, palette Palette, values []int, auto *Autotiles) (*IntGridLayer, error) {
	cells := make([]IntGridValue, len(values))

	for i, raw := range values {
		v, ok := palette.Lookup(raw)
		if !ok {
			return nil, fmt.Errorf("layer %q: cell %d holds %d, which is not in the palette", info.Identifier, i, raw)
		}

		cells[i] = v
	}

	grid, err := GridFrom(info.Size, cells)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", info.Identifier, err)
	}

	if auto != nil && auto.grid.Size() != info.Size {
		return nil, fmt.Errorf("layer %q: autotiles are %v, layer is %v", info.Identifier, auto.grid.Size(), info.Size)
	}

	return &IntGridLayer{LayerInfo: info, Palette: palette, grid: grid, auto: auto}, nil
}

// MustIntGridLayer is NewIntGridLayer for inputs known to be valid, such as
// generated code. It panics on error.
func MustIntGridLayer(info LayerInfo, palette Palette, values []int, auto *Autotiles) *IntGridLayer {
	l, err := NewIntGridLayer(info, palette, values, auto)
	if err != nil {
		panic(err)
	}

	return l
}

func (l *IntGridLayer) Kind() LayerKind { return LayerIntGrid }

// Get returns the value at p; false outside the layer.
func (l *IntGridLayer) Get(p IVec2) (IntGridValue, bool) {
	return l.grid.Get(p)
}

// GetMut returns a pointer to the value at p; nil outside the layer.
func (l *IntGridLayer) GetMut(p IVec2) *IntGridValue {
	return l.grid.GetMut(p)
}

// Rect iterates a region of cells, see Grid.Rect.
func (l *IntGridLayer) Rect(start IVec2, size UVec2) iter.Seq2[IVec2, *IntGridValue] {
	return l.grid.Rect(start, size)
}

// Values returns the raw row-major cell values.
func (l *IntGridLayer) Values() []int {
	out := make([]int, len(l.grid.cells))
	for i, c := range l.grid.cells {
		out[i] = c.Value
	}

	return out
}

// AutoLayer returns the autotile stamps, if the layer declares rule groups.
func (l *IntGridLayer) AutoLayer() (AutoTiled, bool) {
	if l.auto == nil {
		return nil, false
	}

	return l.auto, true
}

// Autotiles is a per-cell stack of tile stamps drawn from a single tileset.
type Autotiles struct {
	tileset int
	grid    Grid[[]Tile]
}

// NewAutotiles wraps row-major stamp buckets.
func NewAutotiles(tileset int, size UVec2, buckets [][]Tile) (*Autotiles, error) {
	grid, err := GridFrom(size, buckets)
	if err != nil {
		return nil, fmt.Errorf("autotiles: %w", err)
	}

	return &Autotiles{tileset: tileset, grid: grid}, nil
}

// MustAutotiles is NewAutotiles that panics on error.
func MustAutotiles(tileset int, size UVec2, buckets [][]Tile) *Autotiles {
	a, err := NewAutotiles(tileset, size, buckets)
	if err != nil {
		panic(err)
	}

	return a
}

func (a *Autotiles) TilesetID() int { return a.tileset }

// Autotiles returns a copy of the stamps at p, bottom first. Empty outside the
// layer.
func (a *Autotiles) Autotiles(p IVec2) []Tile {
	bucket, _ := a.grid.Get(p)

	return slices.Clone(bucket)
}

// AutotileRect iterates the stamp buckets of a region, see Grid.Rect. Buckets
// outside the layer are nil.
func (a *Autotiles) AutotileRect(start IVec2, size UVec2) iter.Seq2[IVec2, []Tile] {
	return func(yield func(IVec2, []Tile) bool) {
		for p, bucket := range a.grid.Rect(start, size) {
			var tiles []Tile
			if bucket != nil {
				tiles = *bucket
			}

			if !yield(p, tiles) {
				return
			}
		}
	}
}

// Buckets exposes the row-major stamp buckets.
func (a *Autotiles) Buckets() [][]Tile {
	return a.grid.cells
}

// Count returns the total number of stamps over all cells.
func (a *Autotiles) Count() int {
	n := 0
	for _, b := range a.grid.cells {
		n += len(b)
	}

	return n
}
