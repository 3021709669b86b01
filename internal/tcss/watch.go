package tcss

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups bursts of file events, such as an editor's
// write-then-rename, into one run.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changed stylesheets under a set of paths.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	// OnError receives watcher errors. Nil drops them.
	OnError func(error)
}

// NewWatcher watches the directories behind paths: a directory recursively,
// a file through its parent, and a glob through its static prefix.
func NewWatcher(paths []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{watcher: fw, debounce: debounce}

	for _, p := range paths {
		if err := w.addTree(watchRoot(p)); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func watchRoot(arg string) string {
	info, err := os.Stat(arg)
	switch {
	case err == nil && info.IsDir():
		return arg
	case err == nil:
		return filepath.Dir(arg)
	}
	base, _ := doublestar.SplitPattern(filepath.ToSlash(arg))
	return filepath.FromSlash(base)
}

func (w *Watcher) addTree(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}
	return nil
}

// Run blocks until ctx is done, calling fn with the sorted stylesheets that
// changed in each debounce window. fn runs on the Run goroutine.
func (w *Watcher) Run(ctx context.Context, fn func(changed []string)) error {
	defer w.watcher.Close()

	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil && w.OnError != nil {
						w.OnError(err)
					}
					continue
				}
			}
			if !isStylesheetEvent(event) {
				continue
			}
			pending[event.Name] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}

		case <-fire:
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			clear(pending)
			timer, fire = nil, nil
			fn(changed)
		}
	}
}

func isStylesheetEvent(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".css") {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
