package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

type implWatcher struct {
	dir      string
	accept   map[string]bool
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// Start blocks, delivering matching write, create, remove and rename events
// to the handler until ctx is cancelled. Editors often emit several writes per save; events for
// the same file within the debounce window are coalesced.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.dir)

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.closed(ctx, "events")
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.matches(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			pending[event.Name] = true
			timer.Reset(w.debounce)

		case <-timer.C:
			for path := range pending {
				if err := w.handler(ctx, path); err != nil {
					w.logger.Error(ctx, "Failed to handle %s: %v", path, err)
				}
			}
			clear(pending)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return w.closed(ctx, "errors")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// closed reports a closed fsnotify channel. After cancellation it is part of
// a normal shutdown.
func (w *implWatcher) closed(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("watcher %s channel closed", name)
}

func (w *implWatcher) matches(path string) bool {
	if len(w.accept) == 0 {
		return true
	}
	return w.accept[filepath.Base(path)]
}
