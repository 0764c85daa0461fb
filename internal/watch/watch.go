// Package watch re-extracts the parameters of an OpenSCAD file each time it
// changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/scadparam/scadparam/internal/paramdiff"
	"github.com/scadparam/scadparam/internal/scad"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before reading the file.
const DefaultDebounce = 100 * time.Millisecond

// Snapshot is the state of the watched file after a change.
type Snapshot struct {
	// Path is the watched file.
	Path string

	// Source is the file content.
	Source string

	// Parameters are the parameters extracted from Source.
	Parameters []scad.Parameter

	// Changes compares Parameters with the previous snapshot. It is nil for
	// the first snapshot.
	Changes *paramdiff.Result
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle delay. Zero reads immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher follows a single file. Editors that save by renaming a temporary
// file over the original are handled by watching the parent directory.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	debounce time.Duration
	last     *Snapshot
}

// New starts watching path. The file must exist.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Current reads the file now and records it as the latest snapshot.
func (w *Watcher) Current() (Snapshot, error) {
	return w.read()
}

// Next blocks until the file content changes and returns the new snapshot.
// Events that leave the content identical are ignored. It returns ctx.Err()
// when ctx is done.
func (w *Watcher) Next(ctx context.Context) (Snapshot, error) {
	for {
		if err := w.waitForChange(ctx); err != nil {
			return Snapshot{}, err
		}

		if w.last != nil {
			data, err := os.ReadFile(w.path)
			if errors.Is(err, os.ErrNotExist) {
				// Removed mid-save; the follow-up create triggers the read.
				continue
			}
			if err == nil && string(data) == w.last.Source {
				continue
			}
		}

		snap, err := w.read()
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return snap, err
	}
}

// Run calls fn with the current snapshot and again after every change until
// ctx is done or fn returns an error. Cancellation is not an error.
func (w *Watcher) Run(ctx context.Context, fn func(Snapshot) error) error {
	snap, err := w.Current()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}

	for {
		snap, err := w.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := fn(snap); err != nil {
			return err
		}
	}
}

// waitForChange blocks until an event for the watched file arrives, then
// drains further events until the file has been quiet for the debounce
// period.
func (w *Watcher) waitForChange(ctx context.Context) error {
	if err := w.waitEvent(ctx, nil); err != nil {
		return err
	}
	if w.debounce <= 0 {
		return nil
	}

	for {
		timer := time.NewTimer(w.debounce)
		err := w.waitEvent(ctx, timer.C)
		timer.Stop()
		if errors.Is(err, errQuiet) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errQuiet = errors.New("no further events")

// waitEvent waits for one relevant event. It returns errQuiet when quiet
// fires first.
func (w *Watcher) waitEvent(ctx context.Context, quiet <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quiet:
			return errQuiet
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("file watcher closed")
			}
			return fmt.Errorf("watching %s: %w", w.path, err)
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("file watcher closed")
			}
			if w.relevant(ev) {
				return nil
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) read() (Snapshot, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading %s: %w", w.path, err)
	}

	source := string(data)
	snap := Snapshot{
		Path:       w.path,
		Source:     source,
		Parameters: scad.Extract(source),
	}
	if w.last != nil {
		changes, err := paramdiff.Compare(w.last.Source, source, paramdiff.Options{})
		if err != nil {
			return Snapshot{}, err
		}
		snap.Changes = changes
	}

	w.last = &snap
	return snap, nil
}
