package model

// EnumCase is one value of an enum definition.
type EnumCase struct {
	ID    string
	Color *Color // Nil when the editor stores no color.
	Icon  *UVec2 // Cell in the enum's icon tileset.
}

// Enum is a project-local enumeration.
type Enum struct {
	Identifier  string
	IconTileset *int
	Cases       []EnumCase
}

// Case returns the named case.
func (e Enum) Case(id string) (EnumCase, bool) {
	for _, c := range e.Cases {
		if c.ID == id {
			return c, true
		}
	}

	return EnumCase{}, false
}

// World is the compiled project: definitions plus every level in file order.
type World struct {
	BgColor     Color
	Tilesets    []Tileset
	Enums       []Enum
	EntityTypes []EntityType
	Levels      []*Level
}

// Get returns a copy of the i-th level.
func (w *World) Get(i int) (Level, bool) {
	l := w.GetMut(i)
	if l == nil {
		return Level{}, false
	}

	return *l, true
}

// GetMut returns the i-th level, nil when out of range.
func (w *World) GetMut(i int) *Level {
	if i < 0 || i >= len(w.Levels) {
		return nil
	}

	return w.Levels[i]
}

// LevelByName finds a level by identifier.
func (w *World) LevelByName(identifier string) (*Level, bool) {
	for _, l := range w.Levels {
		if l.Identifier == identifier {
			return l, true
		}
	}

	return nil, false
}

// Tileset looks up a tileset by uid.
func (w *World) Tileset(id int) (Tileset, bool) {
	for _, ts := range w.Tilesets {
		if ts.ID == id {
			return ts, true
		}
	}

	return Tileset{}, false
}

// Enum looks up an enum by identifier.
func (w *World) Enum(identifier string) (Enum, bool) {
	for _, e := range w.Enums {
		if e.Identifier == identifier {
			return e, true
		}
	}

	return Enum{}, false
}

// EntityType looks up an entity definition by identifier.
func (w *World) EntityType(identifier string) (EntityType, bool) {
	for _, et := range w.EntityTypes {
		if et.Identifier == identifier {
			return et, true
		}
	}

	return EntityType{}, false
}

// Level is one level of the world with its layers in definition order.
type Level struct {
	Identifier string
	IID        string
	BgColor    Color
	PixelSize  UVec2
	WorldX     int
	WorldY     int
	WorldDepth int
	Layers     []Layer
	Fields     Fields
}

// Layer finds a layer by identifier.
func (l *Level) Layer(identifier string) (Layer, bool) {
	for _, layer := range l.Layers {
		if layer.Meta().Identifier == identifier {
			return layer, true
		}
	}

	return nil, false
}

// IntGrid finds an int-grid layer by identifier.
func (l *Level) IntGrid(identifier string) (*IntGridLayer, bool) {
	return layerAs[*IntGridLayer](l, identifier)
}

// Tiles finds a tile layer by identifier.
func (l *Level) Tiles(identifier string) (*TileLayer, bool) {
	return layerAs[*TileLayer](l, identifier)
}

// Entities finds an entity layer by identifier.
func (l *Level) Entities(identifier string) (*EntityLayer, bool) {
	return layerAs[*EntityLayer](l, identifier)
}

func layerAs[T Layer](l *Level, identifier string) (T, bool) {
	layer, ok := l.Layer(identifier)
	if !ok {
		var zero T
		return zero, false
	}

	typed, ok := layer.(T)

	return typed, ok
}
