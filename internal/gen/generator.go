package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"text/template"

	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// ModelImport is the import path of the package generated code builds on.
const ModelImport = "github.com/InfiniteCoder01/ldtk-codegen/model"

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the Go package name for generated code.
	PackageName string
	// OutputDir is the directory where generated files are written. It is
	// also where unformatted debug copies go when formatting fails.
	OutputDir string
	// PreserveCase keeps LDtk identifiers as written instead of converting
	// them to CamelCase.
	PreserveCase bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName: "level",
		OutputDir:   "./level",
	}
}

// Generator renders compiled worlds as Go source.
type Generator struct {
	config Config
}

// NewGenerator creates a new generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

type importSpec struct {
	Alias string
	Path  string
}

type tilesetDecl struct {
	Name       string
	Identifier string
	Expr       string
}

type caseDecl struct {
	Const string
	Type  string
	ID    string
	Color string
	Icon  string
}

type enumDecl struct {
	TypeName   string
	Identifier string
	Cases      []caseDecl
}

type paletteConst struct {
	Const string
	Type  string
	Value int
	Name  string
}

type paletteDecl struct {
	TypeName string
	Layer    string
	Values   []paletteConst
}

type levelDecl struct {
	Func       string
	Identifier string
	Expr       string
}

type defsData struct {
	PackageName string
	Imports     []importSpec
	Tilesets    []tilesetDecl
	Enums       []enumDecl
	Palettes    []paletteDecl
}

type worldData struct {
	PackageName string
	Imports     []importSpec
	World       string
	Levels      []levelDecl
}

// Generate renders w as two files: defs.go with the definition types and
// world.go with Load.
func (g *Generator) Generate(w *model.World) ([]GeneratedFile, error) {
	if w == nil {
		return nil, fmt.Errorf("nil world")
	}

	if !isIdentifier(g.config.PackageName) {
		return nil, fmt.Errorf("invalid package name %q", g.config.PackageName)
	}

	names := newNamer(g.config.PreserveCase)

	defs := g.buildDefs(w, names)

	world, err := g.buildWorld(w, defs, names)
	if err != nil {
		return nil, err
	}

	defsFile, err := g.render(defsTemplate, "defs.go", defs)
	if err != nil {
		return nil, err
	}

	worldFile, err := g.render(worldTemplate, "world.go", world)
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{defsFile, worldFile}, nil
}

func (g *Generator) buildDefs(w *model.World, names *namer) *defsData {
	data := &defsData{PackageName: g.config.PackageName}

	for _, ts := range w.Tilesets {
		data.Tilesets = append(data.Tilesets, tilesetDecl{
			Name:       names.name("Tileset", ts.Identifier),
			Identifier: ts.Identifier,
			Expr:       tilesetLit(ts),
		})
	}

	for _, e := range w.Enums {
		decl := enumDecl{TypeName: names.name(e.Identifier), Identifier: e.Identifier}

		for _, c := range e.Cases {
			cd := caseDecl{Const: names.name(e.Identifier, c.ID), Type: decl.TypeName, ID: c.ID}
			if c.Color != nil {
				cd.Color = colorLit(*c.Color)
			}

			if c.Icon != nil {
				cd.Icon = uvec(*c.Icon)
			}

			decl.Cases = append(decl.Cases, cd)
		}

		data.Enums = append(data.Enums, decl)
	}

	// Every level carries the same palette for a given layer identifier.
	seen := make(map[string]bool)

	for _, lvl := range w.Levels {
		for _, l := range lvl.Layers {
			ig, ok := l.(*model.IntGridLayer)
			if !ok || seen[ig.Identifier] {
				continue
			}

			seen[ig.Identifier] = true

			decl := paletteDecl{TypeName: names.name(ig.Identifier, "Tile"), Layer: ig.Identifier}
			for _, v := range ig.Palette {
				decl.Values = append(decl.Values, paletteConst{
					Const: names.name(ig.Identifier, v.Name),
					Type:  decl.TypeName,
					Value: v.Value,
					Name:  v.Name,
				})
			}

			data.Palettes = append(data.Palettes, decl)
		}
	}

	if len(data.Tilesets) > 0 || len(data.Enums) > 0 {
		data.Imports = append(data.Imports, importSpec{Path: ModelImport})
	}

	if len(data.Palettes) > 0 {
		data.Imports = append(data.Imports, importSpec{Path: "strconv"})
	}

	slices.SortFunc(data.Imports, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return data
}

func (g *Generator) buildWorld(w *model.World, defs *defsData, names *namer) (*worldData, error) {
	data := &worldData{
		PackageName: g.config.PackageName,
		Imports:     []importSpec{{Path: ModelImport}},
	}

	var b strings.Builder

	fmt.Fprintf(&b, "&model.World{\nBgColor: %s,\n", colorLit(w.BgColor))

	b.WriteString("Tilesets: []model.Tileset{")

	for i, ts := range defs.Tilesets {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(ts.Name)
	}

	b.WriteString("},\nEnums: []model.Enum{\n")

	for _, e := range w.Enums {
		b.WriteString(enumLit(e))
		b.WriteString(",\n")
	}

	b.WriteString("},\nEntityTypes: []model.EntityType{\n")

	for _, et := range w.EntityTypes {
		fmt.Fprintf(&b, "{Identifier: %q, Pivot: %s, Size: %s, Render: %s, Tags: %s},\n",
			et.Identifier, fvec(et.Pivot), uvec(et.Size), renderLit(et.Render), stringsLit(et.Tags))
	}

	b.WriteString("},\nLevels: []*model.Level{")

	for i, lvl := range w.Levels {
		expr, err := levelLit(lvl)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", lvl.Identifier, err)
		}

		decl := levelDecl{
			Func:       names.name("Level", lvl.Identifier),
			Identifier: lvl.Identifier,
			Expr:       expr,
		}
		data.Levels = append(data.Levels, decl)

		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(decl.Func + "()")
	}

	b.WriteString("},\n}")

	data.World = b.String()

	return data, nil
}

func enumLit(e model.Enum) string {
	var b strings.Builder

	fmt.Fprintf(&b, "{\nIdentifier: %q,\n", e.Identifier)

	if e.IconTileset != nil {
		fmt.Fprintf(&b, "IconTileset: ptr(%d),\n", *e.IconTileset)
	}

	b.WriteString("Cases: []model.EnumCase{\n")

	for _, c := range e.Cases {
		fmt.Fprintf(&b, "{ID: %q", c.ID)

		if c.Color != nil {
			fmt.Fprintf(&b, ", Color: ptr(%s)", colorLit(*c.Color))
		}

		if c.Icon != nil {
			fmt.Fprintf(&b, ", Icon: ptr(%s)", uvec(*c.Icon))
		}

		b.WriteString("},\n")
	}

	b.WriteString("},\n}")

	return b.String()
}

func levelLit(lvl *model.Level) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "&model.Level{\nIdentifier: %q,\nIID: %q,\nBgColor: %s,\nPixelSize: %s,\n"+
		"WorldX: %d,\nWorldY: %d,\nWorldDepth: %d,\nLayers: []model.Layer{\n",
		lvl.Identifier, lvl.IID, colorLit(lvl.BgColor), uvec(lvl.PixelSize),
		lvl.WorldX, lvl.WorldY, lvl.WorldDepth)

	for _, l := range lvl.Layers {
		lit, err := layerLit(l)
		if err != nil {
			return "", err
		}

		b.WriteString(lit)
		b.WriteString(",\n")
	}

	fields, err := fieldsLit(lvl.Fields)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(&b, "},\nFields: %s,\n}", fields)

	return b.String(), nil
}

// render executes tmpl and formats the result. Source that fails to format
// is returned together with the error and, when an output directory is
// configured, written next to it for inspection.
func (g *Generator) render(tmpl *template.Template, filename string, data any) (GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing template %s: %w", tmpl.Name(), err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return GeneratedFile{Filename: filename, Content: buf.Bytes()}, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return GeneratedFile{Filename: filename, Content: formatted}, nil
}

func isIdentifier(s string) bool {
	return s != "" && sanitize(s) == s
}
