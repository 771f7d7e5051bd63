// Package ldtk declares the subset of the LDtk project JSON the compiler
// reads, and loads project files from disk.
//
// Field values stay as json.RawMessage; their interpretation depends on the
// field definitions and happens later.
package ldtk
