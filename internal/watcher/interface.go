package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called with the path of every created or written file
// that passes the filter.
type EventHandler func(ctx context.Context, filePath string) error
