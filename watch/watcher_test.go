package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cligen/errors"
)

func TestNew_NothingToWatch(t *testing.T) {
	_, err := New(nil, time.Millisecond)
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "gone", "x.yaml")}, time.Millisecond)
	require.Error(t, err)
}

func TestRun_DebouncesAndFilters(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "greet.yaml")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(watched, []byte("name: a\n"), 0o644))

	w, err := New([]string{watched}, 100*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	changed := make(chan string, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, name string) error {
			calls.Add(1)
			changed <- name
			return nil
		})
	}()

	// Give the watcher goroutine a moment to start selecting.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(watched, []byte("name: b\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case name := <-changed:
		abs, _ := filepath.Abs(watched)
		gotAbs, _ := filepath.Abs(name)
		assert.Equal(t, abs, gotAbs)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst should collapse into one callback")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestRun_CallbackErrorKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "greet.yaml")
	require.NoError(t, os.WriteFile(watched, []byte("a"), 0o644))

	w, err := New([]string{watched}, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go func() {
		_ = w.Run(ctx, func(context.Context, string) error {
			calls.Add(1)
			return errors.New("boom")
		})
	}()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(watched, []byte("b"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(watched, []byte("c"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
}
