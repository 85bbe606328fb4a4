package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfparse/internal/logger"
)

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := New(WithDebounce(30*time.Millisecond), WithLogger(logger.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })
	return w
}

func TestWatch_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.nt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w := newTestWatcher(t)
	var calls atomic.Int32
	got := make(chan string, 10)
	require.NoError(t, w.Watch(path, func(p string) {
		calls.Add(1)
		got <- p
	}))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
	}

	select {
	case p := <-got:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst collapses into one callback")
}

func TestWatch_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.nt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w := newTestWatcher(t)
	var calls atomic.Int32
	require.NoError(t, w.Watch(path, func(string) { calls.Add(1) }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.nt"), []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatch_SeesReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.nt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	w := newTestWatcher(t)
	var calls atomic.Int32
	require.NoError(t, w.Watch(path, func(string) { calls.Add(1) }))

	tmp := filepath.Join(dir, ".data.nt.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("new"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool { return calls.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestStop(t *testing.T) {
	w, err := New(WithLogger(logger.Discard()))
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop(), "second stop is a no-op")
	assert.ErrorIs(t, w.Watch(filepath.Join(t.TempDir(), "x"), func(string) {}), ErrStopped)
}
