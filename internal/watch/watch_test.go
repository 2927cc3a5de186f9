package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// startWatcher runs w until the test ends and waits for it to be watching.
func startWatcher(t *testing.T, w *Watcher) <-chan error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	t.Cleanup(cancel)

	deadline := time.Now().Add(2 * time.Second)
	for !w.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("watcher did not start")
		}
		time.Sleep(time.Millisecond)
	}
	return done
}

func nextChange(t *testing.T, changes <-chan Change) Change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
	return Change{}
}

func TestWatcherReportsWriteAndRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("selector: p"), 0644); err != nil {
		t.Fatal(err)
	}

	w := New(Config{Paths: []string{path}, Debounce: 10 * time.Millisecond})
	changes := make(chan Change, 8)
	w.OnChange(func(c Change) { changes <- c })
	startWatcher(t, w)

	if err := os.WriteFile(path, []byte("selector: div"), 0644); err != nil {
		t.Fatal(err)
	}
	if c := nextChange(t, changes); c.Path != path || c.Op != Write {
		t.Errorf("after write: change = %+v", c)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if c := nextChange(t, changes); c.Path != path || c.Op != Remove {
		t.Errorf("after remove: change = %+v", c)
	}
}

func TestWatcherFollowsRenameSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("selector: p"), 0644); err != nil {
		t.Fatal(err)
	}

	w := New(Config{Paths: []string{path}, Debounce: 20 * time.Millisecond})
	changes := make(chan Change, 8)
	w.OnChange(func(c Change) { changes <- c })
	startWatcher(t, w)

	tmp := filepath.Join(dir, ".doc.yaml.swp")
	if err := os.WriteFile(tmp, []byte("selector: span"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	if c := nextChange(t, changes); c.Path != path || c.Op != Write {
		t.Errorf("after rename: change = %+v", c)
	}

	// The replaced file is still watched.
	if err := os.WriteFile(path, []byte("selector: a"), 0644); err != nil {
		t.Fatal(err)
	}
	if c := nextChange(t, changes); c.Path != path || c.Op != Write {
		t.Errorf("after second write: change = %+v", c)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("selector: p"), 0644); err != nil {
		t.Fatal(err)
	}

	w := New(Config{Paths: []string{path}, Debounce: 5 * time.Millisecond})
	changes := make(chan Change, 8)
	w.OnChange(func(c Change) { changes <- c })
	startWatcher(t, w)

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case c := <-changes:
		t.Errorf("unexpected change %+v", c)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("selector: p"), 0644); err != nil {
		t.Fatal(err)
	}

	w := New(Config{Paths: []string{path}, Debounce: 100 * time.Millisecond})
	changes := make(chan Change, 8)
	w.OnChange(func(c Change) { changes <- c })
	startWatcher(t, w)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("selector: div"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	nextChange(t, changes)
	select {
	case c := <-changes:
		t.Errorf("burst reported twice: %+v", c)
	case <-time.After(250 * time.Millisecond):
	}
}

func TestStartCancel(t *testing.T) {
	w := New(Config{Paths: []string{filepath.Join(t.TempDir(), "doc.yaml")}})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !w.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Start() = %v, want context.Canceled", err)
	}
	if w.IsRunning() {
		t.Error("watcher still running after cancel")
	}
}

func TestStop(t *testing.T) {
	w := New(Config{Paths: []string{filepath.Join(t.TempDir(), "doc.yaml")}})
	done := startWatcher(t, w)
	w.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
}

func TestStartMissingDirectory(t *testing.T) {
	w := New(Config{Paths: []string{filepath.Join(t.TempDir(), "missing", "doc.yaml")}})
	if err := w.Start(context.Background()); err == nil {
		t.Error("Start() = nil, want error for a missing directory")
	}
	if w.IsRunning() {
		t.Error("watcher running after failed Start")
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if c := resolve(path); c.Op != Remove {
		t.Errorf("resolve(missing) = %+v", c)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if c := resolve(path); c.Op != Write || c.Path != path {
		t.Errorf("resolve(existing) = %+v", c)
	}
}

func TestOpString(t *testing.T) {
	if Write.String() != "write" || Remove.String() != "remove" {
		t.Errorf("Op strings = %s, %s", Write, Remove)
	}
}
