package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single file. It watches the parent directory
// so that editors which save by rename are still seen.
type Watcher struct {
	path      string
	debouncer *Debouncer

	watcher   *fsnotify.Watcher
	closeOnce sync.Once
	closed    chan struct{}
}

type Options struct {
	Debounce time.Duration
	// OnChange runs on the debouncer's goroutine after a burst of events.
	OnChange func()
}

func NewWatcher(path string, opts Options) (*Watcher, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	abs = filepath.Clean(abs)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		debouncer: NewDebouncer(opts.Debounce),
		watcher:   fsw,
		closed:    make(chan struct{}),
	}
	if opts.OnChange != nil {
		onChange := opts.OnChange
		w.debouncer.OnFire(func(int) { onChange() })
	}
	return w, nil
}

func (w *Watcher) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

func (w *Watcher) Debounce() time.Duration {
	if w == nil {
		return 0
	}
	return w.debouncer.Delay()
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}

	w.closeOnce.Do(func() { close(w.closed) })
	w.debouncer.Stop()

	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}

// Run blocks until ctx is done, the watcher is closed, or fsnotify reports
// an error.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.watcher == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.closed:
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.path {
		return
	}
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	w.debouncer.Trigger()
}
