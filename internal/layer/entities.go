package layer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/field"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/match"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/registry"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

func (b *Builder) entities(info model.LayerInfo, inst *ldtk.LayerInstance) (model.Layer, error) {
	out := make([]model.EntityInstance, 0, len(inst.EntityInstances))

	for i := range inst.EntityInstances {
		ent := &inst.EntityInstances[i]
		seg := diagnostic.Seg("entities", ent.Identifier+"#"+strconv.Itoa(i))

		e, err := b.entity(ent, diagnostic.Seg("layers", info.Identifier), seg)
		if err != nil {
			return nil, diagnostic.Within(seg, err)
		}

		out = append(out, e)
	}

	return model.NewEntityLayer(info, out), nil
}

func (b *Builder) entity(ent *ldtk.EntityInstance, where ...string) (model.EntityInstance, error) {
	et, err := b.defs.EntityType(ent.Identifier)
	if err != nil {
		return model.EntityInstance{}, err
	}

	if ent.Width < 0 || ent.Height < 0 {
		return model.EntityInstance{}, diagnostic.Schemaf("negative entity size %dx%d", ent.Width, ent.Height)
	}

	fields, err := b.Fields(et.Fields, ent.FieldInstances, where...)
	if err != nil {
		return model.EntityInstance{}, err
	}

	return model.EntityInstance{
		Entity: model.Entity{
			Type:   et.Identifier,
			Pivot:  et.Pivot,
			Render: et.Render,
			Fields: fields,
		},
		IID:      ent.IID,
		Position: model.V2(float64(ent.Px[0]), float64(ent.Px[1])),
		Size:     model.V2(uint32(ent.Width), uint32(ent.Height)),
	}, nil
}

// Fields coerces field instances against their definitions, in definition
// order. Definitions without an instance are coerced as absent. where locates
// warnings relative to the builder scope.
func (b *Builder) Fields(specs []registry.FieldSpec, values []ldtk.FieldInstance, where ...string) (model.Fields, error) {
	byName := make(map[string]*ldtk.FieldInstance, len(values))
	names := make([]string, len(specs))

	for i, s := range specs {
		names[i] = s.Name
	}

	for i := range values {
		v := &values[i]
		seg := diagnostic.Seg("fields", v.Identifier)

		if _, dup := byName[v.Identifier]; dup {
			return nil, diagnostic.Within(seg, diagnostic.Schemaf("field given twice"))
		}

		if !hasName(specs, v.Identifier) {
			return nil, diagnostic.Within(seg, diagnostic.Missingf("field has no definition").
				WithSuggestions(match.Closest(v.Identifier, names, 3)...))
		}

		byName[v.Identifier] = v
	}

	out := make(model.Fields, 0, len(specs))

	for _, spec := range specs {
		seg := diagnostic.Seg("fields", spec.Name)

		var raw []byte
		if v, ok := byName[spec.Name]; ok {
			raw = v.Value
		}

		val, err := b.coercer.Format(spec.Type, raw)
		if err != nil {
			return nil, diagnostic.Within(seg, err)
		}

		if err := b.checkEnums(spec.Type, val, b.at(append(where, seg)...)); err != nil {
			return nil, diagnostic.Within(seg, err)
		}

		out = append(out, model.Field{Name: spec.Name, Value: val})
	}

	return out, nil
}

func hasName(specs []registry.FieldSpec, name string) bool {
	for _, s := range specs {
		if s.Name == name {
			return true
		}
	}

	return false
}

// checkEnums verifies that enum values name declared cases. Unknown cases
// pass through with a warning unless StrictEnums is set.
func (b *Builder) checkEnums(t field.Type, v model.Value, path string) error {
	leaf := t.Leaf()
	if leaf.Kind != field.KindEnum {
		return nil
	}

	var cases []string

	switch v.Kind {
	case model.ValueEnum:
		cases = []string{v.Text}
	case model.ValueArray:
		for _, item := range v.Items {
			if item.Kind == model.ValueEnum {
				cases = append(cases, item.Text)
			}
		}
	}

	for _, c := range cases {
		ok, suggestions := b.defs.CheckEnumCase(leaf.Enum, c)
		if ok {
			continue
		}

		if b.opts.StrictEnums {
			return diagnostic.Validationf("enum %s has no case %q", leaf.Enum, c).WithSuggestions(suggestions...)
		}

		b.diags.AddWarning("unknown-enum-case",
			fmt.Sprintf("enum %s has no case %q; passed through", leaf.Enum, c),
			strings.TrimPrefix(path, "."), suggestions...)
	}

	return nil
}
