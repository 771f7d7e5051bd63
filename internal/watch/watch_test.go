package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWatched(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"world.ldtk", true},
		{"dir/World.LDTK", true},
		{"backup.json", true},
		{"ldtkgen.yaml", true},
		{"ldtkgen.yml", true},
		{"atlas.png", false},
		{"notes", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWatched(tt.path))
		})
	}
}

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()

	select {
	case path := <-w.Events:
		return path
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change")
	}

	return ""
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	project := filepath.Join(dir, "world.ldtk")
	require.NoError(t, os.WriteFile(project, []byte("{}"), 0o644))

	w, err := New(50*time.Millisecond, project)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "atlas.png"), []byte("png"), 0o644))

	for range 3 {
		require.NoError(t, os.WriteFile(project, []byte(`{"levels":[]}`), 0o644))
	}

	assert.Equal(t, project, waitEvent(t, w))

	select {
	case path := <-w.Events:
		t.Fatalf("unexpected second event for %s", path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_Loop(t *testing.T) {
	dir := t.TempDir()

	w, err := New(10*time.Millisecond, dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 1)
	errc := make(chan error, 1)

	go func() {
		errc <- w.Loop(ctx, func(path string) {
			got <- path
			cancel()
		}, nil)
	}()

	cfg := filepath.Join(dir, "ldtkgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("package: level\n"), 0o644))

	select {
	case path := <-got:
		assert.Equal(t, cfg, path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change")
	}

	assert.ErrorIs(t, <-errc, context.Canceled)
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := New(0, t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(0, filepath.Join(t.TempDir(), "missing", "world.ldtk"))
	require.Error(t, err)
}
