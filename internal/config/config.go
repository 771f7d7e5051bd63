package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"runtime"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/assemble"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/gen"
)

// Emit selects what a successful compilation produces.
type Emit string

const (
	EmitGo   Emit = "go"
	EmitNone Emit = "none"
)

// Config is the on-disk configuration of ldtkgen.
type Config struct {
	Package      string `yaml:"package,omitempty" json:"package,omitempty" jsonschema:"description=Go package name of the generated code"`
	Output       string `yaml:"output,omitempty" json:"output,omitempty" jsonschema:"description=Directory for generated files"`
	PreserveCase bool   `yaml:"preserve_case,omitempty" json:"preserve_case,omitempty" jsonschema:"description=Keep LDtk identifiers as written"`
	Workers      int    `yaml:"workers,omitempty" json:"workers,omitempty" jsonschema:"minimum=0,description=Levels compiled concurrently (0 uses every CPU)"`
	Emit         Emit   `yaml:"emit,omitempty" json:"emit,omitempty" jsonschema:"enum=go,enum=none,description=Output kind"`
	StrictEnums  bool   `yaml:"strict_enums,omitempty" json:"strict_enums,omitempty" jsonschema:"description=Reject enum cases missing from the enum definition"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	g := gen.DefaultConfig()

	cfg := &Config{
		Package: g.PackageName,
		Output:  g.OutputDir,
	}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	if cfg.Emit == "" {
		cfg.Emit = EmitGo
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Package) || token.IsKeyword(c.Package) {
		return fmt.Errorf("package: %q is not a valid Go package name", c.Package)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers: must not be negative, got %d", c.Workers)
	}

	switch c.Emit {
	case EmitGo:
		if c.Output == "" {
			return fmt.Errorf("output: required when emit is %q", c.Emit)
		}
	case EmitNone:
	default:
		return fmt.Errorf("emit: unknown value %q, expected %q or %q", c.Emit, EmitGo, EmitNone)
	}

	return nil
}

// Generator returns the code generator settings.
func (c *Config) Generator() gen.Config {
	return gen.Config{
		PackageName:  c.Package,
		OutputDir:    c.Output,
		PreserveCase: c.PreserveCase,
	}
}

// CompileOptions returns the compiler settings.
func (c *Config) CompileOptions() assemble.Options {
	opts := assemble.DefaultOptions()
	opts.Workers = c.Workers
	opts.StrictEnums = c.StrictEnums

	return opts
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Schema returns the JSON Schema of the configuration file, for editors
// that validate YAML against one.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	schema := reflector.Reflect(new(Config))
	schema.Title = "ldtkgen configuration"
	schema.Description = "Settings for compiling an LDtk project into Go source"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return append(data, '\n'), nil
}
