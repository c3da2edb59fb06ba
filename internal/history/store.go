// Package history keeps the ordered log of saved summaries for one session.
package history

import (
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/briefcast/internal/summary"
)

// TimestampLayout is the wall-clock format stored on each entry.
const TimestampLayout = "2006-01-02 15:04"

// Entry is an immutable point-in-time copy of a saved summary.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

// Store is append-only. Entries are never edited, reordered or removed.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// NewStore returns an empty Store using the local wall clock.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock returns an empty Store reading time from now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Append stamps the current time, truncates title and appends a new entry.
func (s *Store) Append(title, body string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		Timestamp: s.now().Format(TimestampLayout),
		Title:     summary.TruncateTitle(title),
		Body:      body,
	}
	s.entries = append(s.entries, entry)
	return entry
}

// Len returns the number of saved entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Snapshot returns a copy of the entries in save order.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// RenderIndex returns one "timestamp - title" line per entry.
func (s *Store) RenderIndex() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]string, len(s.entries))
	for i, e := range s.entries {
		lines[i] = e.Timestamp + " - " + e.Title
	}
	return strings.Join(lines, "\n")
}
