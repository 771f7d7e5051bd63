// Package model is the compiled, statically structured form of an LDtk
// project: a World of Levels, each owning its layers and level fields.
//
// The model is built once by the compiler and is safe to share between
// readers. Every spatial accessor is bounds-checked and reports absence
// instead of panicking:
//   - Grid lookups (Get, GetMut) return false / nil outside the layer
//   - Rect iterates exactly size.X*size.Y positions, clamping a negative
//     start to zero and yielding nil for cells outside the layer
//   - Cross references are EntityRef index triples, never pointers
//
// Capability interfaces let consumers work with any layer kind generically:
//   - IndexableGrid: per-cell access (int-grid and tile layers)
//   - AutoTiled: stacked autotile stamps per cell
//   - EntityContainer: ordered entity placements
package model
