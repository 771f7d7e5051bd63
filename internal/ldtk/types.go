package ldtk

import "encoding/json"

// Project is the root of an .ldtk file.
type Project struct {
	JSONVersion    string      `json:"jsonVersion"`
	BgColor        string      `json:"bgColor"`
	ExternalLevels bool        `json:"externalLevels"`
	Defs           Definitions `json:"defs"`
	Levels         []Level     `json:"levels"`
}

// Definitions holds every definition shared by the levels.
type Definitions struct {
	Tilesets      []TilesetDef `json:"tilesets"`
	Enums         []EnumDef    `json:"enums"`
	ExternalEnums []EnumDef    `json:"externalEnums"`
	Entities      []EntityDef  `json:"entities"`
	Layers        []LayerDef   `json:"layers"`
	LevelFields   []FieldDef   `json:"levelFields"`
}

type TilesetDef struct {
	UID          int     `json:"uid"`
	Identifier   string  `json:"identifier"`
	RelPath      *string `json:"relPath"`
	TileGridSize int     `json:"tileGridSize"`
}

// TileRect is a pixel rectangle inside a tileset.
type TileRect struct {
	TilesetUID int `json:"tilesetUid"`
	X          int `json:"x"`
	Y          int `json:"y"`
	W          int `json:"w"`
	H          int `json:"h"`
}

type EnumDef struct {
	UID            int            `json:"uid"`
	Identifier     string         `json:"identifier"`
	IconTilesetUID *int           `json:"iconTilesetUid"`
	Values         []EnumValueDef `json:"values"`
}

type EnumValueDef struct {
	ID       string    `json:"id"`
	Color    int       `json:"color"` // 0xRRGGBB, negative when unset.
	TileRect *TileRect `json:"tileRect"`
}

// Entity render modes.
const (
	RenderRectangle = "Rectangle"
	RenderEllipse   = "Ellipse"
	RenderTile      = "Tile"
	RenderCross     = "Cross"
)

type EntityDef struct {
	UID        int        `json:"uid"`
	Identifier string     `json:"identifier"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	PivotX     float64    `json:"pivotX"`
	PivotY     float64    `json:"pivotY"`
	RenderMode string     `json:"renderMode"`
	TileRect   *TileRect  `json:"tileRect"`
	TilesetID  *int       `json:"tilesetId"`
	TilesetUID *int       `json:"tilesetUid"`
	Tags       []string   `json:"tags"`
	FieldDefs  []FieldDef `json:"fieldDefs"`
}

// Tileset returns the tileset used by the Tile render mode, accepting both
// key spellings found in LDtk exports.
func (e *EntityDef) Tileset() (int, bool) {
	switch {
	case e.TilesetID != nil:
		return *e.TilesetID, true
	case e.TilesetUID != nil:
		return *e.TilesetUID, true
	case e.TileRect != nil:
		return e.TileRect.TilesetUID, true
	default:
		return 0, false
	}
}

// FieldDef declares a custom field of an entity or level.
type FieldDef struct {
	UID        int    `json:"uid"`
	Identifier string `json:"identifier"`
	Type       string `json:"__type"`
	CanBeNull  bool   `json:"canBeNull"`
}

// Layer types.
const (
	LayerIntGrid   = "IntGrid"
	LayerEntities  = "Entities"
	LayerTiles     = "Tiles"
	LayerAutoLayer = "AutoLayer"
)

type LayerDef struct {
	UID             int               `json:"uid"`
	Identifier      string            `json:"identifier"`
	TypeName        string            `json:"__type"`
	TypeAlt         string            `json:"type"`
	GridSize        int               `json:"gridSize"`
	IntGridValues   []IntGridValueDef `json:"intGridValues"`
	AutoRuleGroups  []json.RawMessage `json:"autoRuleGroups"`
	TilesetDefUID   *int              `json:"tilesetDefUid"`
	PxOffsetX       int               `json:"pxOffsetX"`
	PxOffsetY       int               `json:"pxOffsetY"`
	ParallaxFactorX float64           `json:"parallaxFactorX"`
	ParallaxFactorY float64           `json:"parallaxFactorY"`
	DisplayOpacity  *float64          `json:"displayOpacity"`
	Doc             *string           `json:"doc"`
}

// LayerType returns the layer kind, from either key spelling.
func (l *LayerDef) LayerType() string {
	if l.TypeName != "" {
		return l.TypeName
	}

	return l.TypeAlt
}

// Opacity defaults to fully opaque when the key is absent.
func (l *LayerDef) Opacity() float64 {
	if l.DisplayOpacity == nil {
		return 1
	}

	return *l.DisplayOpacity
}

type IntGridValueDef struct {
	Value      int     `json:"value"`
	Identifier *string `json:"identifier"`
}

type Level struct {
	Identifier      string          `json:"identifier"`
	IID             string          `json:"iid"`
	BgColor         string          `json:"__bgColor"`
	PxWid           int             `json:"pxWid"`
	PxHei           int             `json:"pxHei"`
	WorldX          int             `json:"worldX"`
	WorldY          int             `json:"worldY"`
	WorldDepth      int             `json:"worldDepth"`
	ExternalRelPath *string         `json:"externalRelPath"`
	LayerInstances  []LayerInstance `json:"layerInstances"`
	FieldInstances  []FieldInstance `json:"fieldInstances"`
}

type LayerInstance struct {
	Identifier      string           `json:"__identifier"`
	Type            string           `json:"__type"`
	LayerDefUID     *int             `json:"layerDefUid"`
	IID             string           `json:"iid"`
	CWid            int              `json:"__cWid"`
	CHei            int              `json:"__cHei"`
	GridSize        int              `json:"__gridSize"`
	TilesetDefUID   *int             `json:"__tilesetDefUid"`
	IntGridCsv      []int            `json:"intGridCsv"`
	GridTiles       []TileInstance   `json:"gridTiles"`
	AutoLayerTiles  []TileInstance   `json:"autoLayerTiles"`
	EntityInstances []EntityInstance `json:"entityInstances"`
}

// TileInstance is a tile stamp; Px is its position in the layer, Src the
// pixel corner in the tileset, F the flip bits.
type TileInstance struct {
	Px  [2]int `json:"px"`
	Src [2]int `json:"src"`
	F   int    `json:"f"`
}

type EntityInstance struct {
	Identifier     string          `json:"__identifier"`
	IID            string          `json:"iid"`
	Px             [2]int          `json:"px"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	FieldInstances []FieldInstance `json:"fieldInstances"`
}

type FieldInstance struct {
	Identifier string          `json:"__identifier"`
	Value      json.RawMessage `json:"__value"`
}
