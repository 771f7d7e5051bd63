package field

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// TilesetSource looks up tilesets by uid.
type TilesetSource interface {
	Lookup(uid int) (model.Tileset, error)
}

// RefResolver maps entity iids to their location in the compiled world.
// Sealed reports whether every entity has been indexed.
type RefResolver interface {
	Resolve(iid string) (model.EntityRef, error)
	Sealed() bool
}

// Coercer converts raw field values into model values.
type Coercer struct {
	tilesets TilesetSource
	refs     RefResolver
}

// ErrIndexNotSealed is returned when a Coercer is requested before entity
// indexing has finished.
var ErrIndexNotSealed = errors.New("entity index is not sealed")

// NewCoercer builds a Coercer. Entity references can only be resolved once
// the full index exists, so an unsealed index is rejected.
func NewCoercer(tilesets TilesetSource, refs RefResolver) (*Coercer, error) {
	if tilesets == nil {
		return nil, errors.New("coercer needs a tileset source")
	}

	if refs == nil || !refs.Sealed() {
		return nil, ErrIndexNotSealed
	}

	return &Coercer{tilesets: tilesets, refs: refs}, nil
}

// Format coerces raw against t. An empty raw message or JSON null means the
// value is absent.
func (c *Coercer) Format(t Type, raw json.RawMessage) (model.Value, error) {
	var v any

	if len(bytes.TrimSpace(raw)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()

		if err := dec.Decode(&v); err != nil {
			return model.Value{}, diagnostic.Validationf("field value is not valid JSON").Wrap(err)
		}
	}

	return c.format(t, v)
}

func (c *Coercer) format(t Type, v any) (model.Value, error) {
	if t.Kind == KindOptional {
		if v == nil {
			return model.None(), nil
		}

		return c.format(*t.Elem, v)
	}

	if v == nil {
		return model.Value{}, diagnostic.Validationf("mandatory %s value missing", t)
	}

	switch t.Kind {
	case KindArray:
		items, ok := v.([]any)
		if !ok {
			return model.Value{}, mismatch("array", v)
		}

		out := make([]model.Value, 0, len(items))
		for i, item := range items {
			val, err := c.format(*t.Elem, item)
			if err != nil {
				return model.Value{}, diagnostic.Within(diagnostic.Index(i), err)
			}

			out = append(out, val)
		}

		return model.ArrayValue(out...), nil
	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return model.Value{}, mismatch("enum case", v)
		}

		return model.EnumValue(s), nil
	case KindInt:
		n, err := asInt(v)
		if err != nil {
			return model.Value{}, err
		}

		return model.IntValue(n), nil
	case KindFloat:
		num, ok := v.(json.Number)
		if !ok {
			return model.Value{}, mismatch("float", v)
		}

		f, err := num.Float64()
		if err != nil {
			return model.Value{}, mismatch("float", v)
		}

		return model.FloatValue(f, FormatFloat(f)), nil
	case KindString:
		s, ok := v.(string)
		if !ok {
			return model.Value{}, mismatch("string", v)
		}

		return model.StringValue(s), nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return model.Value{}, mismatch("bool", v)
		}

		return model.BoolValue(b), nil
	case KindColor:
		s, ok := v.(string)
		if !ok {
			return model.Value{}, mismatch("color", v)
		}

		col, err := ParseColor(s)
		if err != nil {
			return model.Value{}, err
		}

		return model.ColorValue(col), nil
	case KindPoint:
		return c.point(v)
	case KindTile:
		return c.tile(v)
	case KindFilePath:
		s, ok := v.(string)
		if !ok {
			return model.Value{}, mismatch("file path", v)
		}

		return model.FilePathValue(s), nil
	case KindEntityRef:
		return c.entityRef(v)
	default:
		return model.Value{}, diagnostic.Unsupportedf("field type %s", t)
	}
}

func (c *Coercer) point(v any) (model.Value, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return model.Value{}, mismatch("point", v)
	}

	cx, err := member(obj, "cx")
	if err != nil {
		return model.Value{}, err
	}

	cy, err := member(obj, "cy")
	if err != nil {
		return model.Value{}, err
	}

	return model.PointValue(model.V2(int(cx), int(cy))), nil
}

func (c *Coercer) tile(v any) (model.Value, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return model.Value{}, mismatch("tileset rectangle", v)
	}

	uid, err := member(obj, "tilesetUid")
	if err != nil {
		return model.Value{}, err
	}

	x, err := member(obj, "x")
	if err != nil {
		return model.Value{}, err
	}

	y, err := member(obj, "y")
	if err != nil {
		return model.Value{}, err
	}

	if x < 0 || y < 0 {
		return model.Value{}, diagnostic.Validationf("tile position is negative").WithValue(show(v))
	}

	ts, err := c.tilesets.Lookup(int(uid))
	if err != nil {
		return model.Value{}, err
	}

	cell := model.V2(uint32(x/int64(ts.TileSize)), uint32(y/int64(ts.TileSize)))

	return model.TileValue(model.TileRef{Tileset: ts.ID, Cell: cell}), nil
}

func (c *Coercer) entityRef(v any) (model.Value, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return model.Value{}, mismatch("entity reference", v)
	}

	raw, ok := obj["entityIid"]
	if !ok {
		return model.Value{}, diagnostic.Validationf("entity reference is missing entityIid").WithValue(show(v))
	}

	iid, ok := raw.(string)
	if !ok {
		return model.Value{}, diagnostic.Validationf("entityIid should be a string").WithValue(show(raw))
	}

	ref, err := c.refs.Resolve(iid)
	if err != nil {
		return model.Value{}, diagnostic.Missingf("dangling entity reference").WithValue(strconv.Quote(iid)).Wrap(err)
	}

	return model.RefValue(ref), nil
}

// ParseColor decodes an LDtk "#RRGGBB" string into an opaque color.
func ParseColor(s string) (model.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return model.Color{}, diagnostic.Encodingf("color should start with #").WithValue(strconv.Quote(s))
	}

	if len(hex) != 6 {
		return model.Color{}, diagnostic.Encodingf("color should have six hex digits").WithValue(strconv.Quote(s))
	}

	rgba, err := strconv.ParseUint(hex+"FF", 16, 32)
	if err != nil {
		return model.Color{}, diagnostic.Encodingf("color is not hexadecimal").WithValue(strconv.Quote(s))
	}

	return model.ColorFromHex(uint32(rgba)), nil
}

func asInt(v any) (int64, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, mismatch("integer", v)
	}

	n, err := num.Int64()
	if err != nil {
		return 0, mismatch("integer", v)
	}

	return n, nil
}

func member(obj map[string]any, key string) (int64, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, diagnostic.Validationf("object should contain %s", key).WithValue(show(obj))
	}

	n, err := asInt(raw)
	if err != nil {
		return 0, diagnostic.Within(key, err)
	}

	return n, nil
}

func mismatch(expected string, v any) *diagnostic.Error {
	return diagnostic.Validationf("expected %s", expected).WithValue(show(v))
}

// show renders a decoded value back as compact JSON for messages.
func show(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "?"
	}

	return string(b)
}
