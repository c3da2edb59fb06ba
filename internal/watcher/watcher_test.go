package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, filepath.Base(path))
	return nil
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestWatcherDeliversMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}

	w, err := New(dir, []string{"intro.txt"}, rec.handle, logger.Nop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intro.txt"), []byte("안녕하세요"), 0644))

	assert.Eventually(t, func() bool {
		return len(rec.seen()) > 0
	}, 3*time.Second, 20*time.Millisecond)

	for _, name := range rec.seen() {
		assert.Equal(t, "intro.txt", name)
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, func(context.Context, string) error { return nil }, logger.Nop())
	assert.Error(t, err)
}

func TestMatches(t *testing.T) {
	w := &implWatcher{accept: map[string]bool{"intro.txt": true, "closing.txt": true}}
	assert.True(t, w.matches("/a/b/intro.txt"))
	assert.True(t, w.matches("closing.txt"))
	assert.False(t, w.matches("/a/b/other.txt"))

	all := &implWatcher{accept: map[string]bool{}}
	assert.True(t, all.matches("/anything"))
}

func TestWatcherDeliversRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "closing.txt")
	require.NoError(t, os.WriteFile(path, []byte("감사합니다"), 0644))

	rec := &recorder{}
	w, err := New(dir, []string{"closing.txt"}, rec.handle, logger.Nop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	require.NoError(t, os.Remove(path))

	assert.Eventually(t, func() bool {
		return len(rec.seen()) > 0
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, "closing.txt", rec.seen()[0])
}

func TestStartAfterStopAndCancelIsClean(t *testing.T) {
	w, err := New(t.TempDir(), nil, func(context.Context, string) error { return nil }, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Stop())

	assert.ErrorIs(t, w.Start(ctx), context.Canceled)
}

func TestClosed(t *testing.T) {
	w := &implWatcher{}

	assert.EqualError(t, w.closed(context.Background(), "events"), "watcher events channel closed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.closed(ctx, "events"), context.Canceled)
}
