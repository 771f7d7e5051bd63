package model

import "iter"

//go:generate go tool stringer -type=LayerKind -trimprefix=Layer -output=layerkind_string.go

// LayerKind identifies the concrete representation of a layer.
type LayerKind int

const (
	LayerIntGrid LayerKind = iota
	LayerTiles
	LayerEntities
)

// LayerInfo carries the metadata shared by every layer kind.
type LayerInfo struct {
	Identifier     string
	IID            string
	Size           UVec2 // In cells.
	GridSize       int   // Cell side in pixels.
	PxOffset       IVec2
	ParallaxFactor FVec2
	Opacity        float64
	Doc            string
}

// Meta returns the layer metadata. Embedding LayerInfo provides it to every
// layer type.
func (i LayerInfo) Meta() LayerInfo {
	return i
}

// PixelSize returns the layer extent in pixels.
func (i LayerInfo) PixelSize() UVec2 {
	return i.Size.Scale(uint32(i.GridSize))
}

// Layer is implemented by every compiled layer.
type Layer interface {
	Kind() LayerKind
	Meta() LayerInfo
}

// IndexableGrid is a layer addressable by cell position.
type IndexableGrid[T any] interface {
	Layer
	Get(p IVec2) (T, bool)
	GetMut(p IVec2) *T
	Rect(start IVec2, size UVec2) iter.Seq2[IVec2, *T]
}

// AutoTiled exposes the autotile stamps stacked on each cell.
type AutoTiled interface {
	TilesetID() int
	Autotiles(p IVec2) []Tile
	AutotileRect(start IVec2, size UVec2) iter.Seq2[IVec2, []Tile]
}

// EntityContainer is a layer holding entity placements.
type EntityContainer interface {
	Layer
	Entities() []EntityInstance
	Entity(i int) (EntityInstance, bool)
	EntityMut(i int) *EntityInstance
}

var (
	_ IndexableGrid[IntGridValue] = (*IntGridLayer)(nil)
	_ IndexableGrid[Tile]         = (*TileLayer)(nil)
	_ EntityContainer             = (*EntityLayer)(nil)
	_ AutoTiled                   = (*Autotiles)(nil)
)
