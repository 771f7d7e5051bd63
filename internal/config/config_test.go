package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
package: world
output: ./gen/world
preserve_case: true
workers: 3
emit: go
strict_enums: true
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "world", cfg.Package)
	assert.Equal(t, "./gen/world", cfg.Output)
	assert.True(t, cfg.PreserveCase)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, EmitGo, cfg.Emit)
	assert.True(t, cfg.StrictEnums)

	g := cfg.Generator()
	assert.Equal(t, "world", g.PackageName)
	assert.Equal(t, "./gen/world", g.OutputDir)
	assert.True(t, g.PreserveCase)

	opts := cfg.CompileOptions()
	assert.Equal(t, 3, opts.Workers)
	assert.True(t, opts.StrictEnums)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "level", cfg.Package)
	assert.Equal(t, "./level", cfg.Output)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, EmitGo, cfg.Emit)
	assert.False(t, cfg.StrictEnums)

	cfg, err = Parse([]byte("emit: none\noutput: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, EmitNone, cfg.Emit)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "pakage: level\n", "field pakage not found"},
		{"bad package", "package: my-level\n", "not a valid Go package name"},
		{"keyword package", "package: func\n", "not a valid Go package name"},
		{"negative workers", "workers: -2\n", "must not be negative"},
		{"unknown emit", "emit: rust\n", "unknown value"},
		{"go without output", "output: \"\"\n", "required when emit"},
		{"malformed", "package: [\n", "failed to parse config YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ldtkgen.yaml")

	cfg := Default()
	cfg.Package = "maps"
	cfg.Workers = 2
	cfg.StrictEnums = true

	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "ldtkgen configuration", doc["title"])
	assert.Equal(t, false, doc["additionalProperties"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "properties: %v", doc)

	for _, key := range []string{"package", "output", "preserve_case", "workers", "emit", "strict_enums"} {
		assert.Contains(t, props, key)
	}

	emit, ok := props["emit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"go", "none"}, emit["enum"])
}
