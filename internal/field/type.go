package field

import (
	"strings"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/match"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind enumerates the field type variants.
type Kind int

const (
	KindOptional Kind = iota
	KindArray
	KindEnum
	KindInt
	KindFloat
	KindString
	KindBool
	KindColor
	KindPoint
	KindTile
	KindFilePath
	KindEntityRef
)

// Type is a resolved field type. Elem is set for Optional and Array, Enum for
// enum types.
type Type struct {
	Kind Kind
	Elem *Type
	Enum string
}

var (
	Int       = Type{Kind: KindInt}
	Float     = Type{Kind: KindFloat}
	String    = Type{Kind: KindString}
	Bool      = Type{Kind: KindBool}
	Color     = Type{Kind: KindColor}
	Point     = Type{Kind: KindPoint}
	Tile      = Type{Kind: KindTile}
	FilePath  = Type{Kind: KindFilePath}
	EntityRef = Type{Kind: KindEntityRef}
)

func Optional(t Type) Type { return Type{Kind: KindOptional, Elem: &t} }
func Array(t Type) Type    { return Type{Kind: KindArray, Elem: &t} }
func Enum(name string) Type {
	return Type{Kind: KindEnum, Enum: name}
}

// primitives maps leaf descriptors to their types.
var primitives = map[string]Type{
	"Int":        Int,
	"Float":      Float,
	"String":     String,
	"Multilines": String,
	"Bool":       Bool,
	"Color":      Color,
	"Point":      Point,
	"Tile":       Tile,
	"FilePath":   FilePath,
	"EntityRef":  EntityRef,
}

var primitiveNames = []string{
	"Int", "Float", "String", "Multilines", "Bool", "Color", "Point", "Tile", "FilePath", "EntityRef",
}

const (
	arrayPrefix  = "Array<"
	localEnum    = "LocalEnum."
	externalEnum = "ExternEnum."
)

// Parse resolves an LDtk __type descriptor. nullable wraps the leaf in
// Optional; for arrays it applies to the elements, not the array.
func Parse(descriptor string, nullable bool) (Type, error) {
	if inner, ok := strings.CutPrefix(descriptor, arrayPrefix); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return Type{}, diagnostic.Unsupportedf("malformed array field type %q", descriptor)
		}

		if strings.HasPrefix(inner, arrayPrefix) {
			return Type{}, diagnostic.Unsupportedf("nested array field type %q", descriptor)
		}

		elem, err := Parse(inner, nullable)
		if err != nil {
			return Type{}, err
		}

		return Array(elem), nil
	}

	leaf, err := parseLeaf(descriptor)
	if err != nil {
		return Type{}, err
	}

	if nullable {
		return Optional(leaf), nil
	}

	return leaf, nil
}

func parseLeaf(descriptor string) (Type, error) {
	if name, ok := strings.CutPrefix(descriptor, localEnum); ok {
		if name == "" {
			return Type{}, diagnostic.Unsupportedf("enum field type %q has no enum name", descriptor)
		}

		return Enum(name), nil
	}

	if strings.HasPrefix(descriptor, externalEnum) {
		return Type{}, diagnostic.Unsupportedf("external enum field type %q", descriptor)
	}

	if t, ok := primitives[descriptor]; ok {
		return t, nil
	}

	return Type{}, diagnostic.Unsupportedf("unknown field type %q", descriptor).
		WithSuggestions(match.Closest(descriptor, primitiveNames, 3)...)
}

// ParseDef resolves the type of a field definition, locating errors at the
// field.
func ParseDef(def ldtk.FieldDef) (Type, error) {
	t, err := Parse(def.Type, def.CanBeNull)
	if err != nil {
		return Type{}, diagnostic.Within(diagnostic.Seg("fields", def.Identifier), err)
	}

	return t, nil
}

// Leaf returns the innermost non-wrapper type.
func (t Type) Leaf() Type {
	for t.Elem != nil {
		t = *t.Elem
	}

	return t
}

// Equal compares two types structurally.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || t.Enum != o.Enum {
		return false
	}

	if t.Elem == nil || o.Elem == nil {
		return t.Elem == o.Elem
	}

	return t.Elem.Equal(*o.Elem)
}

// String renders the type in descriptor form, e.g. Array<Optional<Int>>.
func (t Type) String() string {
	switch t.Kind {
	case KindOptional, KindArray:
		return t.Kind.String() + "<" + t.Elem.String() + ">"
	case KindEnum:
		return localEnum + t.Enum
	default:
		return t.Kind.String()
	}
}
