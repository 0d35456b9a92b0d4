// Package watch monitors a portfolio directory and reports image changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/foliotools/folio/internal/domain/interfaces"
)

// debounceDelay is how long a file must stay quiet before it is handled;
// editors and copies emit bursts of write events for a single save.
const debounceDelay = 500 * time.Millisecond

// Handler receives the path of an image that was created or modified
type Handler func(path string)

// Watcher monitors a portfolio directory for new or changed images
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  interfaces.Logger
	isImage func(name string) bool
	handler Handler
}

// NewWatcher creates a new directory watcher. isImage filters events down to
// the supported image extensions; handler runs after events settle.
func NewWatcher(logger interfaces.Logger, isImage func(string) bool, handler Handler) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &Watcher{
		watcher: fsWatcher,
		logger:  logger,
		isImage: isImage,
		handler: handler,
	}, nil
}

// Watch monitors the directory until the context is canceled
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Info("watching directory", interfaces.F("dir", dir))

	// Debounce timers per file to avoid processing rapid successive events
	debounce := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range debounce {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !w.isImage(event.Name) {
				continue
			}
			// Skip hidden/temp files
			if base := filepath.Base(event.Name); base == "" || base[0] == '.' {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			if timer, exists := debounce[event.Name]; exists {
				timer.Stop()
			}

			name := event.Name
			debounce[name] = time.AfterFunc(debounceDelay, func() {
				w.logger.Debug("image settled", interfaces.F("path", name))
				w.handler(name)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", interfaces.F("error", err))
		}
	}
}
