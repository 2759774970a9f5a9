// Package watcher reports on-disk changes to a single deck file so the
// viewer can reload live. fsnotify on the file's directory is the primary
// mechanism (watching the directory survives atomic replace-on-save); stat
// polling covers filesystems where inotify is unreliable and can be forced
// with QV_FORCE_POLLING.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is the stat interval used in polling mode.
const DefaultPollInterval = 2 * time.Second

var (
	ErrFileRemoved    = errors.New("watched file was removed")
	ErrAlreadyStarted = errors.New("watcher already started")
)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounceDuration sets the window during which rapid writes coalesce
// into one change notification.
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) {
		w.debouncer = NewDebouncer(d)
	}
}

// WithPollInterval sets the stat interval for polling mode.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.pollEvery = d
	}
}

// WithForcePoll skips fsnotify and polls unconditionally.
func WithForcePoll(force bool) Option {
	return func(w *Watcher) {
		w.forcePoll = force
	}
}

// WithOnError sets the callback for watch errors such as ErrFileRemoved.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher watches one file and signals debounced changes on a channel.
type Watcher struct {
	path      string
	pollEvery time.Duration
	forcePoll bool
	onError   func(error)

	debouncer *Debouncer
	changes   chan struct{}

	mu       sync.RWMutex
	fw       *fsnotify.Watcher
	polling  bool
	started  bool
	lastMod  time.Time
	lastSize int64
	cancel   context.CancelFunc
}

// NewWatcher creates a watcher for the deck file at path.
func NewWatcher(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:      abs,
		pollEvery: DefaultPollInterval,
		onError:   func(error) {},
		debouncer: NewDebouncer(DefaultDebounceDuration),
		changes:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. The file may not exist yet; its later creation
// counts as a change.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyStarted
	}

	var ctx context.Context
	ctx, w.cancel = context.WithCancel(context.Background())

	w.lastMod = time.Time{}
	w.lastSize = 0
	if info, err := os.Stat(w.path); err == nil {
		w.lastMod = info.ModTime()
		w.lastSize = info.Size()
	}

	w.polling = w.forcePoll || envBool("QV_FORCE_POLLING") || envBool("QV_FORCE_POLL")
	if !w.polling {
		if fw, err := fsnotify.NewWatcher(); err != nil {
			w.polling = true
		} else if err := fw.Add(filepath.Dir(w.path)); err != nil {
			fw.Close()
			w.polling = true
		} else {
			w.fw = fw
			go w.runEvents(ctx, fw.Events, fw.Errors)
		}
	}
	if w.polling {
		go w.runPoll(ctx)
	}

	w.started = true
	return nil
}

// Stop ends watching. The changes channel stays open: closing it would race
// with signal() and make a pending receive spin. The process is about to
// exit when Stop runs, so the blocked reader goroutine goes down with it.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	w.cancel()
	if w.fw != nil {
		w.fw.Close()
		w.fw = nil
	}
	w.debouncer.Cancel()
	w.started = false
}

// Changed returns the channel that receives after each debounced change.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changes
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// IsPolling reports whether the watcher runs in polling mode.
func (w *Watcher) IsPolling() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.polling
}

// IsStarted reports whether the watcher is running.
func (w *Watcher) IsStarted() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.started
}

// DebounceDuration returns the active debounce window.
func (w *Watcher) DebounceDuration() time.Duration {
	return w.debouncer.Duration()
}

// runEvents consumes fsnotify events for the watched file's directory,
// ignoring siblings.
func (w *Watcher) runEvents(ctx context.Context, events chan fsnotify.Event, errs chan error) {
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			switch {
			case ev.Op&fsnotify.Remove != 0:
				w.onError(ErrFileRemoved)
			case ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0:
				w.debouncer.Trigger(w.signal)
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// runPoll stats the file on a ticker and compares mtime and size.
func (w *Watcher) runPoll(ctx context.Context) {
	ticker := time.NewTicker(w.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				if os.IsNotExist(err) {
					w.mu.RLock()
					existed := !w.lastMod.IsZero()
					w.mu.RUnlock()
					if existed {
						w.onError(ErrFileRemoved)
					}
				} else {
					w.onError(err)
				}
				continue
			}

			w.mu.Lock()
			changed := info.ModTime().After(w.lastMod) || info.Size() != w.lastSize
			if changed {
				w.lastMod = info.ModTime()
				w.lastSize = info.Size()
			}
			w.mu.Unlock()

			if changed {
				w.debouncer.Trigger(w.signal)
			}
		}
	}
}

// signal performs a non-blocking send on the changes channel. Skipped once
// the watcher is stopped; the remaining race window is harmless because a
// spurious reload is idempotent.
func (w *Watcher) signal() {
	w.mu.RLock()
	started := w.started
	w.mu.RUnlock()
	if !started {
		return
	}

	select {
	case w.changes <- struct{}{}:
	default:
	}
}

func envBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
