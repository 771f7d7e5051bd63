package model

//go:generate go tool stringer -type=RenderKind -trimprefix=Render -output=renderkind_string.go

// RenderKind selects how the editor draws an entity.
type RenderKind int

const (
	RenderRectangle RenderKind = iota
	RenderEllipse
	RenderCross
	RenderTile
)

// RenderMode describes an entity's editor appearance. Tileset, Tile and Size
// are only meaningful for RenderTile and are expressed in tileset cells.
type RenderMode struct {
	Kind    RenderKind
	Tileset int
	Tile    UVec2
	Size    UVec2
}

// EntityType is the definition shared by every placement of an entity.
type EntityType struct {
	Identifier string
	Pivot      FVec2
	Size       UVec2 // Default size in pixels.
	Render     RenderMode
	Tags       []string
}

// Entity is the per-placement payload: its type, look and custom fields.
type Entity struct {
	Type   string
	Pivot  FVec2
	Render RenderMode
	Fields Fields
}

// EntityInstance is an entity placed in a layer.
type EntityInstance struct {
	Entity
	IID      string
	Position FVec2 // Pivot point, in layer pixels.
	Size     UVec2 // In pixels.
}

// TopLeft returns the pixel position of the instance's top-left corner.
func (e EntityInstance) TopLeft() FVec2 {
	return e.Position.Sub(Cast[float64](e.Size).Mul(e.Pivot))
}

// EntityLayer holds entity placements in file order.
type EntityLayer struct {
	LayerInfo

	entities []EntityInstance
}

func NewEntityLayer(info LayerInfo, entities []EntityInstance) *EntityLayer {
	return &EntityLayer{LayerInfo: info, entities: entities}
}

func (l *EntityLayer) Kind() LayerKind { return LayerEntities }

func (l *EntityLayer) Entities() []EntityInstance {
	return l.entities
}

// Entity returns the i-th placement.
func (l *EntityLayer) Entity(i int) (EntityInstance, bool) {
	if i < 0 || i >= len(l.entities) {
		return EntityInstance{}, false
	}

	return l.entities[i], true
}

// EntityMut returns a pointer to the i-th placement, nil when out of range.
func (l *EntityLayer) EntityMut(i int) *EntityInstance {
	if i < 0 || i >= len(l.entities) {
		return nil
	}

	return &l.entities[i]
}

// EntityRef locates an entity by level, layer and position within the layer.
type EntityRef struct {
	Level  int
	Layer  int
	Entity int
}

// Find resolves the reference against w.
func (r EntityRef) Find(w *World) (EntityInstance, bool) {
	e := r.FindMut(w)
	if e == nil {
		return EntityInstance{}, false
	}

	return *e, true
}

// FindMut resolves the reference to a pointer into w, nil when any index is
// out of range or the layer holds no entities.
func (r EntityRef) FindMut(w *World) *EntityInstance {
	lvl := w.GetMut(r.Level)
	if lvl == nil || r.Layer < 0 || r.Layer >= len(lvl.Layers) {
		return nil
	}

	c, ok := lvl.Layers[r.Layer].(EntityContainer)
	if !ok {
		return nil
	}

	return c.EntityMut(r.Entity)
}
