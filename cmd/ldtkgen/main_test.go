package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/config"
)

const project = "testdata/world.ldtk"

func TestRun_GeneratesCode(t *testing.T) {
	out := filepath.Join(t.TempDir(), "world")

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-o", out, "-package", "world", "-workers", "2", project}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	defs, err := os.ReadFile(filepath.Join(out, "defs.go"))
	require.NoError(t, err)
	assert.Contains(t, string(defs), "package world")
	assert.Contains(t, string(defs), "type Item string")
	assert.Contains(t, string(defs), "case ItemSword:")
	assert.Contains(t, string(defs), "type CollisionsTile int")
	assert.Contains(t, string(defs), "CollisionsTile1")

	world, err := os.ReadFile(filepath.Join(out, "world.go"))
	require.NoError(t, err)
	assert.Contains(t, string(world), "func LevelLevel0() *model.Level {")
	assert.Contains(t, string(world), `model.FloatValue(12.5, "12.5")`)
	assert.Contains(t, string(world), `model.ArrayValue(model.EnumValue("Sword"), model.EnumValue("Shield"))`)
	assert.Contains(t, string(world), "model.RefValue(model.EntityRef{Level: 0, Layer: 2, Entity: 1})")
	assert.Contains(t, string(world), "Flip: model.FlipBoth")
	assert.Contains(t, string(world), "model.ColorFromHex(0x223344FF)")

	assert.Empty(t, stdout.String())
}

func TestRun_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "ldtkgen.yaml")

	cfg := config.Default()
	cfg.Package = "fromfile"
	cfg.Output = filepath.Join(dir, "fromfile")
	cfg.PreserveCase = true
	require.NoError(t, config.WriteFile(cfg, cfgPath))

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-config", cfgPath, "-package", "flagged", project}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	defs, err := os.ReadFile(filepath.Join(dir, "fromfile", "defs.go"))
	require.NoError(t, err)
	assert.Contains(t, string(defs), "package flagged")
	assert.Contains(t, string(defs), "Item_Sword")
}

func TestRun_CheckOnlyWithDump(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-emit", "none", "-dump", project}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.Contains(t, stdout.String(), `Identifier: (string) (len=7) "Level_0"`)
}

func TestRun_ConfigSchema(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"-config-schema"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), `"strict_enums"`)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.ldtk")
	require.NoError(t, os.WriteFile(broken, []byte(`{"defs": {"levelFields": [{"identifier": "x", "__type": "Vector"}]}}`), 0o644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no project", nil, "expected exactly one project file"},
		{"missing file", []string{filepath.Join(dir, "nope.ldtk")}, "failed to read project file"},
		{"bad package", []string{"-package", "not-a-name", project}, "invalid configuration"},
		{"bad emit", []string{"-emit", "rust", project}, "unknown value"},
		{"compile error", []string{"-emit", "none", broken}, "compiling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-h"}, &stdout, &stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "usage: ldtkgen")
}

func TestRun_WatchStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(t.TempDir(), "level")

	var stdout, stderr bytes.Buffer

	err := run(ctx, []string{"-watch", "-o", out, project}, &stdout, &stderr)
	require.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(filepath.Join(out, "world.go"))
	assert.NoError(t, err, "the first build runs before watching")
}
