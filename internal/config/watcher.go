// ABOUTME: Polling watcher over the settings files, used by preview -watch
// ABOUTME: Compares mtimes on a ticker and reports when any file appears, changes, or vanishes

package config

import (
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is how often a Watcher stats its files.
const DefaultWatchInterval = time.Second

// Watcher reports changes to a fixed set of settings files by polling mtimes.
// Files that do not exist yet are watched too: creating one counts as a change.
type Watcher struct {
	paths    []string
	onChange func()
	interval time.Duration

	mu      sync.Mutex
	mtimes  map[string]time.Time
	running bool

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher returns a stopped watcher that calls onChange after a change.
func NewWatcher(paths []string, onChange func()) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		interval: DefaultWatchInterval,
		mtimes:   make(map[string]time.Time),
		stopCh:   make(chan struct{}),
	}
}

// WatchSettings watches the global and project settings files under home and projectRoot.
func WatchSettings(projectRoot, home string, onChange func()) *Watcher {
	return NewWatcher([]string{GlobalConfigFileIn(home), ProjectConfigFile(projectRoot)}, onChange)
}

// SetInterval changes the polling interval. It only takes effect before Start.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.interval = d
	}
}

// Start records the current mtimes and begins polling. Extra calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mtimes = w.stat()
	interval := w.interval
	w.mu.Unlock()

	go w.loop(interval)
}

// Stop ends polling. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

// Check compares the files against the last snapshot right now and calls
// onChange synchronously when something differs.
func (w *Watcher) Check() bool {
	if !w.refresh() {
		return false
	}
	w.onChange()
	return true
}

func (w *Watcher) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// refresh takes a new snapshot and reports whether it differs from the old one.
func (w *Watcher) refresh() bool {
	current := w.stat()

	w.mu.Lock()
	defer w.mu.Unlock()
	changed := len(current) != len(w.mtimes)
	if !changed {
		for path, mtime := range current {
			prev, ok := w.mtimes[path]
			if !ok || !prev.Equal(mtime) {
				changed = true
				break
			}
		}
	}
	w.mtimes = current
	return changed
}

func (w *Watcher) stat() map[string]time.Time {
	out := make(map[string]time.Time, len(w.paths))
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		out[path] = info.ModTime()
	}
	return out
}
