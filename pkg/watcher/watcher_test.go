package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func awaitChange(t *testing.T, w *Watcher, timeout time.Duration) {
	t.Helper()
	select {
	case <-w.Changed():
	case <-time.After(timeout):
		t.Fatal("timeout waiting for change notification")
	}
}

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var callCount atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() {
			callCount.Add(1)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if count := callCount.Load(); count != 1 {
		t.Errorf("expected 1 callback invocation, got %d", count)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var called atomic.Bool
	d.Trigger(func() {
		called.Store(true)
	})
	d.Cancel()

	time.Sleep(100 * time.Millisecond)

	if called.Load() {
		t.Error("callback should not have been invoked after cancel")
	}
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	d := NewDebouncer(0)
	if d.Duration() != DefaultDebounceDuration {
		t.Errorf("expected default duration %v, got %v", DefaultDebounceDuration, d.Duration())
	}
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	path := writeDeck(t, "initial")

	w, err := NewWatcher(path, WithDebounceDuration(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// Give the directory watch time to establish.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("modified"), 0o644); err != nil {
		t.Fatal(err)
	}

	awaitChange(t, w, time.Second)
}

func TestWatcher_PollingFallback(t *testing.T) {
	path := writeDeck(t, "initial")

	w, err := NewWatcher(path,
		WithDebounceDuration(50*time.Millisecond),
		WithPollInterval(50*time.Millisecond),
		WithForcePoll(true),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Fatal("expected watcher to be in polling mode")
	}

	// A size change guarantees detection even with coarse mtime resolution.
	if err := os.WriteFile(path, []byte("modified via polling"), 0o644); err != nil {
		t.Fatal(err)
	}

	awaitChange(t, w, time.Second)
}

func TestWatcher_EnvForcePolling(t *testing.T) {
	t.Setenv("QV_FORCE_POLLING", "1")

	path := writeDeck(t, "initial")

	w, err := NewWatcher(path, WithPollInterval(25*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Fatal("expected polling mode when QV_FORCE_POLLING is set")
	}
}

func TestWatcher_FileRemoved(t *testing.T) {
	path := writeDeck(t, "initial")

	var (
		errMu    sync.Mutex
		gotError error
	)

	w, err := NewWatcher(path,
		WithPollInterval(50*time.Millisecond),
		WithForcePoll(true),
		WithOnError(func(err error) {
			errMu.Lock()
			gotError = err
			errMu.Unlock()
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)

	errMu.Lock()
	received := gotError
	errMu.Unlock()

	if received != ErrFileRemoved {
		t.Errorf("expected ErrFileRemoved, got %v", received)
	}
}

func TestWatcher_StartStop(t *testing.T) {
	path := writeDeck(t, "initial")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}

	if w.IsStarted() {
		t.Error("watcher should not be started initially")
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	if !w.IsStarted() {
		t.Error("watcher should be started after Start()")
	}
	if err := w.Start(); err != ErrAlreadyStarted {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}

	w.Stop()
	if w.IsStarted() {
		t.Error("watcher should not be started after Stop()")
	}

	// Double stop is safe.
	w.Stop()
}

func TestWatcher_Path(t *testing.T) {
	path := writeDeck(t, "initial")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}

	abs, _ := filepath.Abs(path)
	if w.Path() != abs {
		t.Errorf("expected path %s, got %s", abs, w.Path())
	}
}

func TestWatcher_DebounceDuration(t *testing.T) {
	path := writeDeck(t, "initial")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if w.DebounceDuration() != DefaultDebounceDuration {
		t.Errorf("default debounce = %v", w.DebounceDuration())
	}

	w, err = NewWatcher(path, WithDebounceDuration(80*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if w.DebounceDuration() != 80*time.Millisecond {
		t.Errorf("debounce = %v, want 80ms", w.DebounceDuration())
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
		{"invalid", false},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("TEST_ENV_BOOL", tc.value)
			if got := envBool("TEST_ENV_BOOL"); got != tc.expected {
				t.Errorf("envBool(%q) = %v, expected %v", tc.value, got, tc.expected)
			}
		})
	}
}
