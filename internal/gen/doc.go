// Package gen renders a compiled world as Go source.
//
// Generation approach uses text/template + go/format for readable,
// deterministic Go code that rebuilds the world through the public model
// package constructors.
//
// Emitted declarations:
//   - One string type per enum, with Color and Icon accessors
//   - One int type per int-grid palette
//   - A variable per tileset
//   - A constructor per level and Load, which returns the whole world
package gen
