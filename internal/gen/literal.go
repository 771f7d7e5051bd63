package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/field"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// Go expressions for model values. Every function returns source that is
// valid inside the generated file, where the model package is imported as
// "model".

func uvec(v model.UVec2) string {
	return fmt.Sprintf("model.V2[uint32](%d, %d)", v.X, v.Y)
}

func ivec(v model.IVec2) string {
	return fmt.Sprintf("model.V2(%d, %d)", v.X, v.Y)
}

func fvec(v model.FVec2) string {
	return fmt.Sprintf("model.V2(%s, %s)", field.FormatFloat(v.X), field.FormatFloat(v.Y))
}

func colorLit(c model.Color) string {
	return fmt.Sprintf("model.ColorFromHex(0x%08X)", c.Hex())
}

func tileLit(t model.Tile) string {
	return fmt.Sprintf("{Position: %s, Flip: model.Flip%s}", uvec(t.Position), t.Flip)
}

func tilesetLit(ts model.Tileset) string {
	return fmt.Sprintf("model.Tileset{ID: %d, Identifier: %s, Path: %s, TileSize: %d}",
		ts.ID, strconv.Quote(ts.Identifier), strconv.Quote(ts.Path), ts.TileSize)
}

func refLit(r model.EntityRef) string {
	return fmt.Sprintf("model.EntityRef{Level: %d, Layer: %d, Entity: %d}", r.Level, r.Layer, r.Entity)
}

func renderLit(r model.RenderMode) string {
	if r.Kind != model.RenderTile {
		return fmt.Sprintf("model.RenderMode{Kind: model.Render%s}", r.Kind)
	}

	return fmt.Sprintf("model.RenderMode{Kind: model.RenderTile, Tileset: %d, Tile: %s, Size: %s}",
		r.Tileset, uvec(r.Tile), uvec(r.Size))
}

// valueLit renders a coerced field value through the model constructors.
// Floats reuse the literal text kept by the coercer.
func valueLit(v model.Value) (string, error) {
	switch v.Kind {
	case model.ValueNone:
		return "model.None()", nil
	case model.ValueInt:
		return fmt.Sprintf("model.IntValue(%d)", v.Int), nil
	case model.ValueFloat:
		lit := v.Text
		if lit == "" {
			lit = field.FormatFloat(v.Float)
		}

		return fmt.Sprintf("model.FloatValue(%s, %s)", lit, strconv.Quote(lit)), nil
	case model.ValueString:
		return fmt.Sprintf("model.StringValue(%s)", strconv.Quote(v.Text)), nil
	case model.ValueBool:
		return fmt.Sprintf("model.BoolValue(%t)", v.Bool), nil
	case model.ValueEnum:
		return fmt.Sprintf("model.EnumValue(%s)", strconv.Quote(v.Text)), nil
	case model.ValueColor:
		return fmt.Sprintf("model.ColorValue(%s)", colorLit(v.Color)), nil
	case model.ValuePoint:
		return fmt.Sprintf("model.PointValue(%s)", ivec(v.Point)), nil
	case model.ValueTile:
		return fmt.Sprintf("model.TileValue(model.TileRef{Tileset: %d, Cell: %s})", v.Tile.Tileset, uvec(v.Tile.Cell)), nil
	case model.ValueFilePath:
		return fmt.Sprintf("model.FilePathValue(%s)", strconv.Quote(v.Text)), nil
	case model.ValueEntityRef:
		return fmt.Sprintf("model.RefValue(%s)", refLit(v.Ref)), nil
	case model.ValueArray:
		items := make([]string, len(v.Items))
		for i, item := range v.Items {
			lit, err := valueLit(item)
			if err != nil {
				return "", fmt.Errorf("item %d: %w", i, err)
			}

			items[i] = lit
		}

		return "model.ArrayValue(" + strings.Join(items, ", ") + ")", nil
	default:
		return "", fmt.Errorf("unknown value kind %d", v.Kind)
	}
}

func fieldsLit(fields model.Fields) (string, error) {
	if len(fields) == 0 {
		return "nil", nil
	}

	var b strings.Builder

	b.WriteString("model.Fields{\n")

	for _, f := range fields {
		lit, err := valueLit(f.Value)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", f.Name, err)
		}

		fmt.Fprintf(&b, "{Name: %s, Value: %s},\n", strconv.Quote(f.Name), lit)
	}

	b.WriteString("}")

	return b.String(), nil
}

func stringsLit(ss []string) string {
	if len(ss) == 0 {
		return "nil"
	}

	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = strconv.Quote(s)
	}

	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func infoLit(info model.LayerInfo) string {
	return fmt.Sprintf("model.LayerInfo{\nIdentifier: %s,\nIID: %s,\nSize: %s,\nGridSize: %d,\n"+
		"PxOffset: %s,\nParallaxFactor: %s,\nOpacity: %s,\nDoc: %s,\n}",
		strconv.Quote(info.Identifier), strconv.Quote(info.IID), uvec(info.Size), info.GridSize,
		ivec(info.PxOffset), fvec(info.ParallaxFactor), field.FormatFloat(info.Opacity), strconv.Quote(info.Doc))
}

func paletteLit(p model.Palette) string {
	var b strings.Builder

	b.WriteString("model.Palette{")

	for i, v := range p {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "{Value: %d, Name: %s}", v.Value, strconv.Quote(v.Name))
	}

	b.WriteString("}")

	return b.String()
}

func intsLit(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return "[]int{" + strings.Join(parts, ", ") + "}"
}

// layerLit renders one compiled layer as a constructor call.
func layerLit(l model.Layer) (string, error) {
	switch l := l.(type) {
	case *model.IntGridLayer:
		auto := "nil"
		if at, ok := l.AutoLayer(); ok {
			tiles, ok := at.(*model.Autotiles)
			if !ok {
				return "", fmt.Errorf("layer %s: unsupported auto-tile storage %T", l.Identifier, at)
			}

			auto = autotilesLit(tiles, l.Size)
		}

		return fmt.Sprintf("model.MustIntGridLayer(%s, %s, %s, %s)",
			infoLit(l.LayerInfo), paletteLit(l.Palette), intsLit(l.Values()), auto), nil

	case *model.TileLayer:
		cells := l.Cells()
		parts := make([]string, len(cells))

		for i, c := range cells {
			if c == nil {
				parts[i] = "nil"
			} else {
				parts[i] = tileLit(*c)
			}
		}

		return fmt.Sprintf("model.MustTileLayer(%s, %d, []*model.Tile{%s})",
			infoLit(l.LayerInfo), l.Tileset, strings.Join(parts, ", ")), nil

	case *model.EntityLayer:
		var b strings.Builder

		for _, e := range l.Entities() {
			fields, err := fieldsLit(e.Fields)
			if err != nil {
				return "", fmt.Errorf("layer %s: entity %s: %w", l.Identifier, e.IID, err)
			}

			fmt.Fprintf(&b, "{\nEntity: model.Entity{Type: %s, Pivot: %s, Render: %s, Fields: %s},\n"+
				"IID: %s,\nPosition: %s,\nSize: %s,\n},\n",
				strconv.Quote(e.Type), fvec(e.Pivot), renderLit(e.Render), fields,
				strconv.Quote(e.IID), fvec(e.Position), uvec(e.Size))
		}

		return fmt.Sprintf("model.NewEntityLayer(%s, []model.EntityInstance{\n%s})", infoLit(l.LayerInfo), b.String()), nil

	default:
		return "", fmt.Errorf("unsupported layer type %T", l)
	}
}

func autotilesLit(a *model.Autotiles, size model.UVec2) string {
	buckets := a.Buckets()
	parts := make([]string, len(buckets))

	for i, bucket := range buckets {
		if len(bucket) == 0 {
			parts[i] = "nil"
			continue
		}

		tiles := make([]string, len(bucket))
		for j, t := range bucket {
			tiles[j] = tileLit(t)
		}

		parts[i] = "{" + strings.Join(tiles, ", ") + "}"
	}

	return fmt.Sprintf("model.MustAutotiles(%d, %s, [][]model.Tile{%s})", a.TilesetID(), uvec(size), strings.Join(parts, ", "))
}
