package model

//go:generate go tool stringer -type=FlipMode -trimprefix=Flip -output=flipmode_string.go

// FlipMode describes how a placed tile is mirrored.
type FlipMode int

const (
	FlipNone FlipMode = iota
	FlipHorizontal
	FlipVertical
	FlipBoth
)

// Horizontal reports whether the tile is mirrored along the X axis.
func (f FlipMode) Horizontal() bool {
	return f == FlipHorizontal || f == FlipBoth
}

// Vertical reports whether the tile is mirrored along the Y axis.
func (f FlipMode) Vertical() bool {
	return f == FlipVertical || f == FlipBoth
}

// Tileset is an image sliced into square tiles of TileSize pixels.
type Tileset struct {
	ID         int
	Identifier string
	Path       string // Relative to the project file; empty for embedded atlases.
	TileSize   int
}

// Tile is a cell of a tileset placed somewhere, with its mirroring.
type Tile struct {
	Position UVec2 // Cell within the tileset's own grid.
	Flip     FlipMode
}

// TileRef names a tileset cell, as stored in Tile fields.
type TileRef struct {
	Tileset int
	Cell    UVec2
}
