package model

//go:generate go tool stringer -type=ValueKind -trimprefix=Value -output=valuekind_string.go

// ValueKind tags the payload held by a Value.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueArray
	ValueEnum
	ValueInt
	ValueFloat
	ValueString
	ValueBool
	ValueColor
	ValuePoint
	ValueTile
	ValueFilePath
	ValueEntityRef
)

// Value is a coerced field value. Only the member matching Kind is set.
// Text carries the string of String, Enum and FilePath values, and the
// literal form of Float values.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Text  string
	Bool  bool
	Color Color
	Point IVec2
	Tile  TileRef
	Ref   EntityRef
	Items []Value
}

// None is the value of an absent optional field.
func None() Value { return Value{Kind: ValueNone} }

func IntValue(v int64) Value { return Value{Kind: ValueInt, Int: v} }

// FloatValue keeps both the number and its canonical literal text.
func FloatValue(v float64, literal string) Value {
	return Value{Kind: ValueFloat, Float: v, Text: literal}
}

func StringValue(s string) Value   { return Value{Kind: ValueString, Text: s} }
func BoolValue(b bool) Value       { return Value{Kind: ValueBool, Bool: b} }
func EnumValue(c string) Value     { return Value{Kind: ValueEnum, Text: c} }
func ColorValue(c Color) Value     { return Value{Kind: ValueColor, Color: c} }
func PointValue(p IVec2) Value     { return Value{Kind: ValuePoint, Point: p} }
func TileValue(t TileRef) Value    { return Value{Kind: ValueTile, Tile: t} }
func FilePathValue(p string) Value { return Value{Kind: ValueFilePath, Text: p} }
func RefValue(r EntityRef) Value   { return Value{Kind: ValueEntityRef, Ref: r} }

func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{Kind: ValueArray, Items: items}
}

// IsNone reports whether the value is absent.
func (v Value) IsNone() bool {
	return v.Kind == ValueNone
}

// Field is a named value attached to an entity or level.
type Field struct {
	Name  string
	Value Value
}

// Fields keeps field values in definition order.
type Fields []Field

// Get returns the value of the named field.
func (f Fields) Get(name string) (Value, bool) {
	for _, fld := range f {
		if fld.Name == name {
			return fld.Value, true
		}
	}

	return Value{}, false
}
