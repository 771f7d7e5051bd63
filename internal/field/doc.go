// Package field resolves LDtk field type descriptors into a closed set of
// types and coerces raw JSON field values against them.
package field
