// Package layer turns paired LDtk layer definitions and instances into
// compiled model layers.
//
// Int-grid layers map cell values through the layer palette and, when the
// layer has auto rules, stack autotile stamps per cell. Tile layers keep at
// most one tile per cell with the last placement winning. Entity layers
// keep placement order and coerce each custom field.
package layer
