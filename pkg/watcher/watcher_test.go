package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(onChange func(string)) *FileWatcher {
	fw := New(onChange)
	fw.debounce = 50 * time.Millisecond
	return fw
}

func TestFileWatcher_SignalsOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	var count atomic.Int32
	var last atomic.Value
	fw := newTestWatcher(func(p string) {
		count.Add(1)
		last.Store(p)
	})
	defer fw.Stop()

	require.NoError(t, fw.Watch(path))
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`[{"toolName":"done"}]`), 0o644))

	assert.Eventually(t, func() bool { return count.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
	got, _ := last.Load().(string)
	assert.Equal(t, path, got)
}

func TestFileWatcher_SignalsOnAtomicSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	var count atomic.Int32
	fw := newTestWatcher(func(string) { count.Add(1) })
	defer fw.Stop()

	require.NoError(t, fw.Watch(path))
	time.Sleep(100 * time.Millisecond)

	tmp := filepath.Join(dir, "session.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("[{}]"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	assert.Eventually(t, func() bool { return count.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
}

func TestFileWatcher_IgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	var count atomic.Int32
	fw := newTestWatcher(func(string) { count.Add(1) })
	defer fw.Stop()

	require.NoError(t, fw.Watch(path))
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("[]"), 0o644))
	time.Sleep(300 * time.Millisecond)

	assert.Zero(t, count.Load())
}

func TestFileWatcher_MissingFile(t *testing.T) {
	t.Parallel()

	fw := New(nil)
	err := fw.Watch(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Empty(t, fw.Path())
}

func TestFileWatcher_StopCleansUp(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	fw := New(nil)
	require.NoError(t, fw.Watch(path))
	assert.Equal(t, path, fw.Path())

	fw.Stop()

	fw.mu.Lock()
	active := fw.watcher != nil
	fw.mu.Unlock()
	assert.False(t, active)
	assert.Empty(t, fw.Path())
}

func TestFileWatcher_WatchReplacesPrevious(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(first, []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("[]"), 0o644))

	fw := New(nil)
	defer fw.Stop()

	require.NoError(t, fw.Watch(first))
	require.NoError(t, fw.Watch(second))
	assert.Equal(t, second, fw.Path())
}

func TestAffects(t *testing.T) {
	t.Parallel()

	target := "/tmp/x/session.json"

	assert.True(t, affects(fsnotify.Event{Name: target, Op: fsnotify.Write}, target))
	assert.True(t, affects(fsnotify.Event{Name: target, Op: fsnotify.Remove}, target))
	assert.True(t, affects(fsnotify.Event{Name: "/tmp/y/session.json", Op: fsnotify.Create}, target))
	assert.False(t, affects(fsnotify.Event{Name: "/tmp/y/session.json", Op: fsnotify.Write}, target))
	assert.False(t, affects(fsnotify.Event{Name: target, Op: fsnotify.Chmod}, target))
	assert.False(t, affects(fsnotify.Event{Name: "/tmp/x/other.json", Op: fsnotify.Create}, target))
}
