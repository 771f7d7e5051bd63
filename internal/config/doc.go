// Package config loads ldtkgen settings from YAML.
//
// A configuration file sits next to the project and may set any of:
//
//	package: level        # Go package name of the generated code
//	output: ./level       # directory for generated files
//	preserve_case: false  # keep LDtk identifiers as written
//	workers: 4            # levels compiled concurrently
//	emit: go              # "go" writes Go source, "none" only validates
//	strict_enums: false   # unknown enum cases become errors
//
// Command-line flags take precedence over file values.
package config
