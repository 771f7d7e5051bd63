package gen

import "text/template"

// defsTemplate declares the Go types and variables derived from the
// project definitions.
var defsTemplate = template.Must(template.New("defs").Parse(`// Code generated by ldtkgen. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{range .Tilesets}}
// {{.Name}} is the {{.Identifier}} tileset.
var {{.Name}} = {{.Expr}}
{{end}}
{{range .Enums}}
// {{.TypeName}} is a case of the {{.Identifier}} enum.
type {{.TypeName}} string

const (
{{- range .Cases}}
	{{.Const}} {{.Type}} = {{printf "%q" .ID}}
{{- end}}
)

// Color returns the editor color of the case.
func (e {{.TypeName}}) Color() (model.Color, bool) {
	switch e {
{{- range .Cases}}{{if .Color}}
	case {{.Const}}:
		return {{.Color}}, true
{{- end}}{{end}}
	}

	return model.Color{}, false
}

// Icon returns the tileset cell of the case icon.
func (e {{.TypeName}}) Icon() (model.UVec2, bool) {
	switch e {
{{- range .Cases}}{{if .Icon}}
	case {{.Const}}:
		return {{.Icon}}, true
{{- end}}{{end}}
	}

	return model.UVec2{}, false
}
{{end}}
{{range .Palettes}}
// {{.TypeName}} is a cell value of the {{.Layer}} int-grid layer.
type {{.TypeName}} int

const (
{{- range .Values}}
	{{.Const}} {{.Type}} = {{.Value}}
{{- end}}
)

// String returns the value name.
func (v {{.TypeName}}) String() string {
	switch v {
{{- range .Values}}
	case {{.Const}}:
		return {{printf "%q" .Name}}
{{- end}}
	}

	return "{{.TypeName}}(" + strconv.Itoa(int(v)) + ")"
}
{{end -}}
`))

// worldTemplate rebuilds the compiled world through the model
// constructors.
var worldTemplate = template.Must(template.New("world").Parse(`// Code generated by ldtkgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// Load builds a fresh copy of the world. Callers may mutate the result.
func Load() *model.World {
	return {{.World}}
}
{{range .Levels}}
// {{.Func}} builds the {{.Identifier}} level.
func {{.Func}}() *model.Level {
	return {{.Expr}}
}
{{end}}
func ptr[T any](v T) *T {
	return &v
}
`))
