// Package watcher signals changes to a single file on disk.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher watches one file and calls onChange, from its own goroutine,
// after the file was modified. It never reads the file itself; callers load
// it on the goroutine that owns their state.
type FileWatcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	currentPath string
	stopChan    chan struct{}
	onChange    func(path string)

	debounce time.Duration
}

func New(onChange func(path string)) *FileWatcher {
	return &FileWatcher{
		onChange: onChange,
		debounce: DefaultDebounce,
	}
}

// Watch starts watching path, replacing whatever was watched before.
func (fw *FileWatcher) Watch(path string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.stopLocked()

	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory: editors and agents often save by writing a temp
	// file and renaming it over the original.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	fw.watcher = watcher
	fw.currentPath = path
	fw.stopChan = make(chan struct{})

	go fw.watchLoop()

	slog.Debug("Started watching file", "path", path)
	return nil
}

// Path returns the file being watched, empty when stopped.
func (fw *FileWatcher) Path() string {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.currentPath
}

// Stop stops watching.
func (fw *FileWatcher) Stop() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.stopLocked()
}

func (fw *FileWatcher) stopLocked() {
	if fw.stopChan != nil {
		close(fw.stopChan)
		fw.stopChan = nil
	}
	if fw.watcher != nil {
		fw.watcher.Close()
		fw.watcher = nil
	}
	fw.currentPath = ""
}

func (fw *FileWatcher) watchLoop() {
	var debounceTimer *time.Timer

	fw.mu.Lock()
	watcher := fw.watcher
	stopChan := fw.stopChan
	targetPath := filepath.Clean(fw.currentPath)
	fw.mu.Unlock()

	if watcher == nil {
		return
	}

	for {
		select {
		case <-stopChan:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !affects(event, targetPath) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(fw.debounce, func() {
				// The file may be gone for good, or only between the remove
				// and create of a save.
				if _, err := os.Stat(targetPath); err == nil {
					fw.signal(targetPath, stopChan)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", "path", targetPath, "error", err)
		}
	}
}

// affects reports whether event may have changed target. Writes and creates
// on the exact path count, as do renames and creates of a file with the same
// base name, which covers atomic saves.
func affects(event fsnotify.Event, target string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}

	eventPath := filepath.Clean(event.Name)
	if eventPath == target {
		return true
	}
	return filepath.Base(eventPath) == filepath.Base(target) && event.Op&(fsnotify.Rename|fsnotify.Create) != 0
}

func (fw *FileWatcher) signal(path string, stopChan chan struct{}) {
	select {
	case <-stopChan:
		return
	default:
	}

	slog.Debug("Watched file changed", "path", path)
	if fw.onChange != nil {
		fw.onChange(path)
	}
}
