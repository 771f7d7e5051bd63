// Package diagnostic provides the structured errors and non-fatal findings
// produced while compiling an LDtk project.
//
// Key capabilities:
//   - A closed set of failure kinds matched with errors.Is
//   - Location paths pointing at the offending record
//   - Nearest-name suggestions for misspelled identifiers
//   - Warning and info collection for findings that do not abort a build
package diagnostic
