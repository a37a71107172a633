package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/logger"
	"go.trai.ch/cachet/internal/adapters/watcher"
)

func TestWatcher_ReportsTrackedFileChanges(t *testing.T) {
	tmpDir := t.TempDir()
	tracked := filepath.Join(tmpDir, "manifest.txt")
	untracked := filepath.Join(tmpDir, "other.txt")
	require.NoError(t, os.WriteFile(tracked, []byte("v1"), 0o644))
	require.NoError(t, os.WriteFile(untracked, []byte("v1"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var changed []string

	w := watcher.New(logger.NewWithWriter(os.Stderr), 20*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, []string{tracked}, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			changed = append(changed, paths...)
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(untracked, []byte("v2"), 0o644))
	require.NoError(t, os.WriteFile(tracked, []byte("v2"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 3*time.Second, 10*time.Millisecond)

	mu.Lock()
	for _, p := range changed {
		require.Equal(t, tracked, filepath.Clean(p))
	}
	mu.Unlock()

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_MissingDirectoryFails(t *testing.T) {
	w := watcher.New(logger.NewWithWriter(os.Stderr), time.Millisecond)

	err := w.Watch(context.Background(), []string{filepath.Join(t.TempDir(), "gone", "file.txt")}, nil)
	require.Error(t, err)
}
