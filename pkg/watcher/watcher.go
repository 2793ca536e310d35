// Package watcher reloads a model file when it changes on disk, so an
// external tool can re-export a mesh and the viewer picks it up.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches one model file and triggers a callback after a
// debounce window, collapsing bursts of write events into one reload
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	debounce time.Duration
	timer    *time.Timer
	callback func(string)
}

// New creates a watcher for the given file
func New(file string, debounce time.Duration, callback func(string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if err := watcher.Add(absPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &FileWatcher{
		watcher:  watcher,
		debounce: debounce,
		callback: callback,
	}, nil
}

// Start begins delivering change notifications
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.schedule(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// schedule arms the debounce timer, replacing any pending one
func (fw *FileWatcher) schedule(file string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		fw.callback(file)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
