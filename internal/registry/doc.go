// Package registry holds the lookup tables built before any level is
// compiled: tilesets, enums, entity types, layer palettes and the entity
// index used to resolve cross references.
package registry
