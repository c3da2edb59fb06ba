// Package anchor holds the default intro and closing lines read from the
// anchor script directory.
package anchor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

const (
	IntroFile   = "intro.txt"
	ClosingFile = "closing.txt"
)

// Files lists the names the watcher should deliver to Reload.
var Files = []string{IntroFile, ClosingFile}

// Book is a concurrency-safe pair of default anchor lines.
type Book struct {
	mu      sync.RWMutex
	intro   string
	closing string
	logger  logger.Logger
}

// NewBook returns a book with fixed lines.
func NewBook(intro, closing string) *Book {
	return &Book{intro: intro, closing: closing, logger: logger.Nop()}
}

// Load reads intro.txt and closing.txt from dir. A missing file leaves that
// line empty.
func Load(ctx context.Context, dir string, log logger.Logger) (*Book, error) {
	b := &Book{logger: log}
	for _, name := range Files {
		if err := b.Reload(ctx, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Anchors returns the current intro and closing lines.
func (b *Book) Anchors() (string, string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.intro, b.closing
}

// Reload re-reads one anchor file. Names other than intro.txt and
// closing.txt are ignored.
func (b *Book) Reload(ctx context.Context, path string) error {
	name := filepath.Base(path)
	if name != IntroFile && name != ClosingFile {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read anchor %s: %w", name, err)
	}
	text := strings.TrimSpace(string(data))

	b.mu.Lock()
	if name == IntroFile {
		b.intro = text
	} else {
		b.closing = text
	}
	b.mu.Unlock()

	b.logger.Info(ctx, "Anchor reloaded: %s (%d chars)", name, len([]rune(text)))
	return nil
}
