package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long events for a file are coalesced before
// OnChange runs.
const DefaultDebounce = 50 * time.Millisecond

// Op is the kind of change observed on a file.
type Op int

const (
	Write Op = iota
	Remove
)

func (o Op) String() string {
	if o == Remove {
		return "remove"
	}
	return "write"
}

// Change is a detected file change.
type Change struct {
	Path string
	Op   Op
}

// Config configures a Watcher.
type Config struct {
	// Paths are the files to watch. Their directories must exist.
	Paths []string

	// Debounce coalesces bursts of events, such as an editor's
	// write-rename save, into one Change per file.
	Debounce time.Duration
}

// Watcher reports changes to a set of files. It watches their parent
// directories so that files replaced by rename keep being tracked.
type Watcher struct {
	config   Config
	files    map[string]string // cleaned absolute path -> configured path
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
}

// New creates a watcher.
func New(config Config) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	files := make(map[string]string, len(config.Paths))
	for _, p := range config.Paths {
		files[absPath(p)] = p
	}
	return &Watcher{config: config, files: files}
}

// OnChange sets the callback for changes. It runs on the watcher goroutine.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start watches until ctx is done or Stop is called. Changes made before
// Start returns from setting up are not reported.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()
	for _, dir := range w.dirs() {
		if err := fw.Add(dir); err != nil {
			w.mu.Unlock()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stop := w.stopCh
	w.mu.Unlock()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.config.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stop:
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				w.Stop()
				return nil
			}
			p, watched := w.files[absPath(ev.Name)]
			if !watched || ev.Op == fsnotify.Chmod {
				continue
			}
			pending[p] = struct{}{}
			timer.Reset(w.config.Debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				w.Stop()
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				// Events were dropped; re-check everything.
				for _, p := range w.config.Paths {
					pending[p] = struct{}{}
				}
				timer.Reset(w.config.Debounce)
				continue
			}
			w.Stop()
			return fmt.Errorf("watch: %w", err)
		case <-timer.C:
			for _, p := range w.config.Paths {
				if _, ok := pending[p]; ok {
					w.emit(resolve(p))
				}
			}
			clear(pending)
		}
	}
}

// Stop stops a running watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning reports whether Start is watching.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// dirs returns the distinct parent directories of the watched files.
func (w *Watcher) dirs() []string {
	seen := make(map[string]bool)
	var out []string
	for abs := range w.files {
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	return out
}

// resolve turns a burst of events into the file's final state.
func resolve(path string) Change {
	if _, err := os.Stat(path); err != nil {
		return Change{Path: path, Op: Remove}
	}
	return Change{Path: path, Op: Write}
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func (w *Watcher) emit(c Change) {
	w.mu.Lock()
	fn := w.onChange
	w.mu.Unlock()
	if fn != nil {
		fn(c)
	}
}
