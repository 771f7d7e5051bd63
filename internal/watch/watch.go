// Package watch reports changes to LDtk projects and ldtkgen configuration
// files so the command can recompile them.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is the quiet period after the last change before an event is
// delivered. LDtk writes a project in several steps when saving.
const DefaultDelay = 100 * time.Millisecond

// Watcher delivers the path of the most recently changed file once the
// watched directories have been quiet for the configured delay.
type Watcher struct {
	Events chan string
	Errors chan error

	watcher *fsnotify.Watcher
	delay   time.Duration
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New watches the given paths. Files are watched through their parent
// directory, so editors that replace a file on save keep being tracked.
func New(delay time.Duration, paths ...string) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	added := make(map[string]bool)

	for _, p := range paths {
		dir := p
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			dir = filepath.Dir(p)
		}

		if added[dir] {
			continue
		}

		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}

		added[dir] = true
	}

	w := &Watcher{
		Events:  make(chan string, 1),
		Errors:  make(chan error, 1),
		watcher: fw,
		delay:   delay,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()

	return w, nil
}

// Close stops the watcher and closes Events and Errors. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error

	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})

	return err
}

// Loop calls onChange for every delivered event until ctx is done or the
// watcher is closed. Watch errors go to onError when it is not nil.
func (w *Watcher) Loop(ctx context.Context, onChange func(path string), onError func(error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}

			onChange(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			if onError != nil {
				onError(err)
			}
		}
	}
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Events)

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			if !IsWatched(event.Name) {
				continue
			}

			pending = event.Name

			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}

			fire = timer.C

		case <-fire:
			fire = nil

			select {
			case w.Events <- pending:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}

		case <-w.closeCh:
			return
		}
	}
}

// IsWatched reports whether a change to path can affect the generated code.
func IsWatched(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ldtk", ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
