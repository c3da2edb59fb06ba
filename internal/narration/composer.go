// Package narration assembles anchor lines and summaries into text for speech synthesis.
package narration

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/briefcast/internal/history"
)

// Mode selects the narration shape.
type Mode int

const (
	// Single is one continuous plain-prose read.
	Single Mode = iota
	// Batch is markup with a fixed pause after every story.
	Batch
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Batch:
		return "batch"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// DefaultPause is the silence inserted after each story in batch mode.
const DefaultPause = 2000 * time.Millisecond

// Script is built per synthesis request and never stored.
type Script struct {
	Intro    string
	Segments []string
	Closing  string
	Mode     Mode
}

// Narration is the rendered synthesis input.
type Narration struct {
	Text   string
	Markup bool
}

// Composer renders scripts. The zero value uses DefaultPause.
type Composer struct {
	Pause time.Duration
}

// NewComposer returns a Composer with the given pause; non-positive means DefaultPause.
func NewComposer(pause time.Duration) Composer {
	return Composer{Pause: pause}
}

// ComposeSingle reads the current summary between the anchor lines as plain text.
func (c Composer) ComposeSingle(intro, summaryText, closing string) Narration {
	return c.Render(Script{
		Intro:    intro,
		Segments: []string{summaryText},
		Closing:  closing,
		Mode:     Single,
	})
}

// ComposeBatch reads every history entry in order, each followed by a pause.
// An empty history still yields the anchor lines.
func (c Composer) ComposeBatch(intro string, entries []history.Entry, closing string) Narration {
	segments := make([]string, len(entries))
	for i, e := range entries {
		segments[i] = e.Body
	}
	return c.Render(Script{
		Intro:    intro,
		Segments: segments,
		Closing:  closing,
		Mode:     Batch,
	})
}

// Render turns a script into synthesis input.
func (c Composer) Render(s Script) Narration {
	if s.Mode == Batch {
		return Narration{Text: c.renderMarkup(s), Markup: true}
	}
	return Narration{Text: renderPlain(s)}
}

func renderPlain(s Script) string {
	parts := make([]string, 0, len(s.Segments)+2)
	parts = append(parts, s.Intro)
	parts = append(parts, s.Segments...)
	parts = append(parts, s.Closing)
	return strings.Join(parts, "\n\n")
}

func (c Composer) renderMarkup(s Script) string {
	var sb strings.Builder
	sb.WriteString("<speak>")
	sb.WriteString(escape(s.Intro))
	for _, seg := range s.Segments {
		sb.WriteString("\n\n")
		sb.WriteString(escape(seg))
		sb.WriteString("\n\n")
		sb.WriteString(c.breakTag())
	}
	sb.WriteString(escape(s.Closing))
	sb.WriteString("</speak>")
	return sb.String()
}

func (c Composer) breakTag() string {
	pause := c.Pause
	if pause <= 0 {
		pause = DefaultPause
	}
	return fmt.Sprintf("<break time='%dms'/>", pause.Milliseconds())
}

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escape keeps user text from being read as markup. Line breaks are kept.
func escape(s string) string {
	return markupEscaper.Replace(s)
}
