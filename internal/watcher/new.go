package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

// New creates a Watcher on dir. Only files whose base name is listed in
// names reach the handler; an empty list accepts every file.
func New(dir string, names []string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	accept := make(map[string]bool, len(names))
	for _, n := range names {
		accept[n] = true
	}

	return &implWatcher{
		dir:      dir,
		accept:   accept,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		debounce: 200 * time.Millisecond,
	}, nil
}
