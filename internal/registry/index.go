package registry

import (
	"maps"
	"slices"
	"strconv"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/match"
	"github.com/InfiniteCoder01/ldtk-codegen/model"
)

// EntityIndex maps every entity iid in the project to its position in the
// compiled world. It is complete and read-only once BuildEntityIndex returns.
type EntityIndex struct {
	refs   map[string]model.EntityRef
	sealed bool
}

// BuildEntityIndex walks level, layer, entity in the order the assembler
// uses, so the recorded positions match the compiled world.
func BuildEntityIndex(p *ldtk.Project) (*EntityIndex, error) {
	idx := &EntityIndex{refs: make(map[string]model.EntityRef)}

	for li := range p.Levels {
		lvl := &p.Levels[li]

		pairs, err := ldtk.PairLayers(p.Defs.Layers, lvl)
		if err != nil {
			return nil, diagnostic.Within(diagnostic.Seg("levels", lvl.Identifier), err)
		}

		for _, pair := range pairs {
			if pair.Def.LayerType() != ldtk.LayerEntities {
				continue
			}

			for ei, ent := range pair.Inst.EntityInstances {
				if prev, dup := idx.refs[ent.IID]; dup {
					err := diagnostic.Schemaf("duplicate entity iid %q, first seen at level %d layer %d entity %d",
						ent.IID, prev.Level, prev.Layer, prev.Entity)

					return nil, diagnostic.Within(diagnostic.Seg("levels", lvl.Identifier),
						diagnostic.Within(diagnostic.Seg("layers", pair.Def.Identifier),
							diagnostic.Within(diagnostic.Seg("entities", ent.Identifier+"#"+strconv.Itoa(ei)), err)))
				}

				idx.refs[ent.IID] = model.EntityRef{Level: li, Layer: pair.Index, Entity: ei}
			}
		}
	}

	idx.sealed = true

	return idx, nil
}

// Resolve looks up an entity by iid.
func (x *EntityIndex) Resolve(iid string) (model.EntityRef, error) {
	ref, ok := x.refs[iid]
	if !ok {
		return model.EntityRef{}, diagnostic.Missingf("no entity with iid %q", iid).
			WithSuggestions(match.Closest(iid, slices.Sorted(maps.Keys(x.refs)), 1)...)
	}

	return ref, nil
}

// Sealed reports whether indexing has completed.
func (x *EntityIndex) Sealed() bool { return x != nil && x.sealed }

func (x *EntityIndex) Len() int { return len(x.refs) }
