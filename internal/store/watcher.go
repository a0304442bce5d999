package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads callers when the store's documents change on disk, e.g.
// after an edit from another terminal. Events are debounced because editors
// and atomic renames produce bursts.
type Watcher struct {
	watcher  *fsnotify.Watcher
	paths    map[string]struct{}
	onChange func(path string)
	mu       sync.RWMutex
	done     chan struct{}
}

// Watch starts watching the store's data directory and invokes onChange
// with the path of each changed document.
func (s *Store) Watch(onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		paths:    make(map[string]struct{}),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	for _, p := range []string{s.EventsPath(), s.AssetsPath()} {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.paths[abs] = struct{}{}
	}

	// Watch the directory rather than the files: rename-over-replace (our
	// own save path) would otherwise drop the watch after the first write.
	if err := fw.Add(s.dir); err != nil {
		fw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	debounce := make(map[string]*time.Timer)
	var debounceMu sync.Mutex

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			name := event.Name
			w.mu.RLock()
			_, watched := w.paths[name]
			w.mu.RUnlock()
			if !watched {
				continue
			}

			debounceMu.Lock()
			if timer, exists := debounce[name]; exists {
				timer.Stop()
			}
			debounce[name] = time.AfterFunc(100*time.Millisecond, func() {
				debounceMu.Lock()
				delete(debounce, name)
				debounceMu.Unlock()
				if w.onChange != nil {
					w.onChange(name)
				}
			})
			debounceMu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; a transient error should not kill refresh.
			_ = err

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
