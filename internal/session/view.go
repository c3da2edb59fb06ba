package session

import (
	"time"

	"github.com/nguyentantai21042004/briefcast/internal/history"
)

// View is a point-in-time copy of a session for display.
type View struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	Phase           Phase           `json:"phase"`
	URL             string          `json:"url,omitempty"`
	Article         string          `json:"article"`
	Category        string          `json:"category,omitempty"`
	RawSummary      string          `json:"raw_summary"`
	Title           string          `json:"title"`
	EditableSummary string          `json:"editable_summary"`
	Intro           string          `json:"intro"`
	Closing         string          `json:"closing"`
	HistoryIndex    string          `json:"history_index"`
	History         []history.Entry `json:"history"`
}

// View snapshots the session. It waits for a running Dispatch, including
// its model and speech calls, to finish.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	intro, closing := s.anchors()
	return View{
		ID:              s.id,
		CreatedAt:       s.createdAt,
		Phase:           s.phase,
		URL:             s.url,
		Article:         s.article,
		Category:        s.category,
		RawSummary:      s.raw,
		Title:           s.title,
		EditableSummary: s.editable,
		Intro:           intro,
		Closing:         closing,
		HistoryIndex:    s.history.RenderIndex(),
		History:         s.history.Snapshot(),
	}
}
