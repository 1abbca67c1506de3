package preview

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchVault_FileChange_TriggersDebouncedRebuild(t *testing.T) {
	root := t.TempDir()
	var rebuilds atomic.Int32

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- WatchVault(ctx, root, 50*time.Millisecond, func() {
			rebuilds.Add(1)
			cancel()
		})
	}()

	// Give the watcher a moment to register before producing events.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "note.md"), []byte("x"), 0o644))

	err := <-done
	require.True(t, errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
	require.Equal(t, int32(1), rebuilds.Load())
}

func TestWatchVault_RapidChanges_CoalescedIntoOneRebuild(t *testing.T) {
	root := t.TempDir()
	var rebuilds atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- WatchVault(ctx, root, 150*time.Millisecond, func() {
			rebuilds.Add(1)
		})
	}()

	time.Sleep(200 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "burst.md"), []byte{byte(i)}, 0o644))
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(500 * time.Millisecond)
	cancel()
	<-done

	require.Equal(t, int32(1), rebuilds.Load())
}

func TestWatchVault_MissingRoot_ReturnsError(t *testing.T) {
	err := WatchVault(context.Background(), filepath.Join(t.TempDir(), "missing"), time.Millisecond, func() {})
	require.Error(t, err)
}
