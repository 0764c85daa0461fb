package watch

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scadparam/scadparam/internal/scad"
	"github.com/scadparam/scadparam/internal/testutil"
)

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	path := testutil.WriteSample(t, t.TempDir())

	w, err := New(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w, path
}

func withTimeout(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(t.TempDir() + "/missing.scad")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCurrent(t *testing.T) {
	w, path := newTestWatcher(t)

	snap, err := w.Current()
	require.NoError(t, err)
	assert.Equal(t, w.Path(), snap.Path)
	assert.Equal(t, testutil.SampleSource, snap.Source)
	assert.Equal(t, []string{"width", "height", "wall", "shape", "rounded", "holes"}, scad.Names(snap.Parameters))
	assert.Nil(t, snap.Changes)
	assert.True(t, strings.HasSuffix(w.Path(), "box.scad"), path)
}

func TestNext_ReportsChanges(t *testing.T) {
	w, path := newTestWatcher(t)
	_, err := w.Current()
	require.NoError(t, err)

	updated := strings.Replace(testutil.SampleSource, "width = 20;", "width = 35;", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	snap, err := w.Next(withTimeout(t))
	require.NoError(t, err)

	p, ok := scad.Find(snap.Parameters, "width")
	require.True(t, ok)
	assert.Equal(t, 35.0, p.Value)

	require.NotNil(t, snap.Changes)
	assert.Equal(t, []string{"width"}, snap.Changes.ModifiedNames())
	assert.Empty(t, snap.Changes.Added)
	assert.Empty(t, snap.Changes.Removed)
}

func TestNext_SkipsIdenticalContent(t *testing.T) {
	w, path := newTestWatcher(t)
	_, err := w.Current()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(testutil.SampleSource), 0o644))
	time.Sleep(50 * time.Millisecond)
	updated := testutil.SampleSource + "\ndepth = 4;\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	snap, err := w.Next(withTimeout(t))
	require.NoError(t, err)
	assert.Equal(t, updated, snap.Source)
}

func TestNext_Cancelled(t *testing.T) {
	w, _ := newTestWatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun(t *testing.T) {
	w, path := newTestWatcher(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var seen []float64
	err := w.Run(ctx, func(snap Snapshot) error {
		p, _ := scad.Find(snap.Parameters, "width")
		seen = append(seen, p.Value.(float64))

		if len(seen) == 1 {
			updated := strings.Replace(testutil.SampleSource, "width = 20;", "width = 40;", 1)
			return os.WriteFile(path, []byte(updated), 0o644)
		}
		cancel()
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []float64{20, 40}, seen)
}

func TestRun_CallbackError(t *testing.T) {
	w, _ := newTestWatcher(t)

	err := w.Run(withTimeout(t), func(Snapshot) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
