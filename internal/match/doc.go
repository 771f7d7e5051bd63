// Package match ranks identifiers by similarity so error messages can
// suggest the name the user probably meant.
//
// Key functions:
//   - Fold: normalizes an identifier for fuzzy comparison
//   - Distance: edit distance over runes
//   - Closest: the best candidates for a misspelled name
package match
