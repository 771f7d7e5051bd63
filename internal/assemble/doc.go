// Package assemble compiles a whole LDtk project into a model.World.
//
// Compilation runs in three ordered phases: the definition pass, the entity
// index pass, then per-level layer construction. Only the last phase runs in
// parallel, and only after the index is sealed. Any error aborts the build.
package assemble
