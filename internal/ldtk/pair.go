package ldtk

import (
	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
)

// LayerPair joins a layer definition with its instance in one level. Index
// is the position of the definition, which is also the layer's position in
// the compiled level.
type LayerPair struct {
	Index int
	Def   *LayerDef
	Inst  *LayerInstance
}

// PairLayers walks the layer definitions in declared order and finds each
// one's instance in lvl, by layerDefUid first and __identifier second.
func PairLayers(defs []LayerDef, lvl *Level) ([]LayerPair, error) {
	if lvl.LayerInstances == nil {
		return nil, diagnostic.Unsupportedf("level %q stores its layers in an external file", lvl.Identifier)
	}

	byUID := make(map[int]*LayerInstance, len(lvl.LayerInstances))
	byName := make(map[string]*LayerInstance, len(lvl.LayerInstances))

	for i := range lvl.LayerInstances {
		inst := &lvl.LayerInstances[i]
		if inst.LayerDefUID != nil {
			byUID[*inst.LayerDefUID] = inst
		}

		byName[inst.Identifier] = inst
	}

	pairs := make([]LayerPair, 0, len(defs))

	for i := range defs {
		def := &defs[i]

		inst, ok := byUID[def.UID]
		if !ok {
			inst, ok = byName[def.Identifier]
		}

		if !ok {
			return nil, diagnostic.Within(diagnostic.Seg("layers", def.Identifier),
				diagnostic.Schemaf("level %q has no instance of this layer", lvl.Identifier))
		}

		pairs = append(pairs, LayerPair{Index: i, Def: def, Inst: inst})
	}

	return pairs, nil
}
