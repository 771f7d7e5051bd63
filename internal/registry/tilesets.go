package registry

import (
	"strconv"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// Tilesets is an immutable uid-keyed tileset table.
type Tilesets struct {
	order []model.Tileset
	byUID map[int]int
}

// NewTilesets validates and indexes the tileset definitions.
func NewTilesets(defs []ldtk.TilesetDef) (*Tilesets, error) {
	ts := &Tilesets{
		order: make([]model.Tileset, 0, len(defs)),
		byUID: make(map[int]int, len(defs)),
	}

	for _, def := range defs {
		at := diagnostic.Seg("tilesets", def.Identifier)

		if def.TileGridSize <= 0 {
			return nil, diagnostic.Within(at,
				diagnostic.Schemaf("tile size must be positive").WithValue(strconv.Itoa(def.TileGridSize)))
		}

		if _, dup := ts.byUID[def.UID]; dup {
			return nil, diagnostic.Within(at, diagnostic.Schemaf("duplicate tileset uid %d", def.UID))
		}

		var path string
		if def.RelPath != nil {
			path = *def.RelPath
		}

		ts.byUID[def.UID] = len(ts.order)
		ts.order = append(ts.order, model.Tileset{
			ID:         def.UID,
			Identifier: def.Identifier,
			Path:       path,
			TileSize:   def.TileGridSize,
		})
	}

	return ts, nil
}

// Lookup returns the tileset with the given uid.
func (t *Tilesets) Lookup(uid int) (model.Tileset, error) {
	i, ok := t.byUID[uid]
	if !ok {
		return model.Tileset{}, diagnostic.Missingf("no tileset with uid %d", uid)
	}

	return t.order[i], nil
}

// All returns the tilesets in declaration order.
func (t *Tilesets) All() []model.Tileset {
	return append([]model.Tileset(nil), t.order...)
}

func (t *Tilesets) Len() int { return len(t.order) }
