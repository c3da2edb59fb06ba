// Package session owns one user's broadcast-brief state and applies actions
// to it one at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/article"
	"github.com/nguyentantai21042004/briefcast/internal/exporter"
	"github.com/nguyentantai21042004/briefcast/internal/history"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
	"github.com/nguyentantai21042004/briefcast/internal/narration"
	"github.com/nguyentantai21042004/briefcast/internal/summarizer"
	"github.com/nguyentantai21042004/briefcast/internal/summary"
)

// Phase is the session's position in the fetch, summarize, save cycle.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseArticleLoaded Phase = "article_loaded"
	PhaseSummarized    Phase = "summarized"
	PhaseEdited        Phase = "edited"
	PhaseSaved         Phase = "saved"
)

// ArticleUnavailable is shown in place of an article that could not be fetched.
const ArticleUnavailable = "기사를 불러올 수 없습니다."

// Status messages.
const (
	StatusNoHistory = "No history to export."
	StatusNoop      = "Nothing to do."
)

// Deps are the collaborators a session drives. Fetcher, Summarizer,
// Renderer and Exporters are required.
type Deps struct {
	Fetcher    article.Fetcher
	Summarizer summarizer.Summarizer
	// Categories restricts summarize to known labels. Empty accepts any.
	Categories   []string
	Composer     narration.Composer
	Renderer     AudioRenderer
	Exporters    ExporterFactory
	ExportPath   string
	ExportFormat string
	Anchors      AnchorSource
	AssetsURL    string
	Now          func() time.Time
	Logger       logger.Logger
}

// AudioRef points at a rendered audio artifact.
type AudioRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Result is the outcome of one Dispatch. Failures are reported through
// Status and Error; Dispatch itself never fails.
type Result struct {
	Action string         `json:"action"`
	Phase  Phase          `json:"phase"`
	Status string         `json:"status"`
	Error  apperr.Kind    `json:"error,omitempty"`
	Entry  *history.Entry `json:"entry,omitempty"`
	Audio  *AudioRef      `json:"audio,omitempty"`
	Export string         `json:"export,omitempty"`
}

// Session is one user's pipeline state. All methods are safe for concurrent
// use; Dispatch calls are serialized.
type Session struct {
	id        string
	createdAt time.Time
	deps      Deps

	mu         sync.Mutex
	phase      Phase
	url        string
	article    string
	hasArticle bool
	category   string
	raw        string
	title      string
	editable   string
	hasSummary bool
	intro      *string
	closing    *string
	history    *history.Store
}

// New creates an idle session.
func New(id string, deps Deps) *Session {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.Exporters == nil {
		deps.Exporters = exporter.New
	}
	return &Session{
		id:        id,
		createdAt: deps.Now(),
		deps:      deps,
		phase:     PhaseIdle,
		history:   history.NewStoreWithClock(deps.Now),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Dispatch applies a to the session. Collaborator failures become fallback
// values and status messages; History is only ever touched by Save.
func (s *Session) Dispatch(ctx context.Context, a Action) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res Result
	switch act := a.(type) {
	case Fetch:
		res = s.fetch(ctx, act)
	case Summarize:
		res = s.summarize(ctx, act)
	case Edit:
		res = s.edit(act)
	case SetAnchors:
		res = s.setAnchors(act)
	case Save:
		res = s.save(ctx)
	case Listen:
		res = s.listen(ctx)
	case SynthesizeAll:
		res = s.synthesizeAll(ctx)
	case Export:
		res = s.export(ctx, act)
	default:
		res = s.invalid("dispatch", fmt.Errorf("unsupported action %T", a))
	}

	if a != nil {
		res.Action = a.Type()
	}
	res.Phase = s.phase
	if res.Error != "" {
		s.deps.Logger.Warn(ctx, "Session %s: %s failed: %s", s.id, res.Action, res.Status)
	} else {
		s.deps.Logger.Info(ctx, "Session %s: %s -> %s", s.id, res.Action, s.phase)
	}
	return res
}

func (s *Session) fetch(ctx context.Context, act Fetch) Result {
	if act.URL == "" {
		return s.invalid("fetch", errors.New("url is required"))
	}

	text, err := s.deps.Fetcher.Fetch(ctx, act.URL)
	if err != nil {
		s.url = act.URL
		s.article = ArticleUnavailable
		s.hasArticle = false
		return failure(err, apperr.KindFetch)
	}

	s.url = act.URL
	s.article = text
	s.hasArticle = true
	s.raw, s.title, s.editable = "", "", ""
	s.hasSummary = false
	s.phase = PhaseArticleLoaded
	return Result{Status: fmt.Sprintf("Article loaded (%d chars).", len([]rune(text)))}
}

func (s *Session) summarize(ctx context.Context, act Summarize) Result {
	if !s.hasArticle {
		return s.invalid("summarize", errors.New("no article loaded"))
	}
	if !s.knownCategory(act.Category) {
		return s.invalid("summarize", fmt.Errorf("unknown category %q", act.Category))
	}

	raw, err := s.deps.Summarizer.Summarize(ctx, s.article, act.Category)
	if err != nil {
		s.setPlaceholder(summary.Placeholder())
		return failure(err, apperr.KindSummarize)
	}

	parsed, err := summary.ParseOrPlaceholder(raw)
	if err != nil {
		s.setPlaceholder(parsed)
		return failure(err, apperr.KindMalformedSummary)
	}

	s.category = act.Category
	s.raw = raw
	s.title = parsed.Title
	s.editable = parsed.Body
	s.hasSummary = true
	s.phase = PhaseSummarized
	return Result{Status: "Summary ready: " + parsed.Title}
}

// setPlaceholder shows the fallback text in both summary views. Phase and
// history are left alone, but the placeholder can never be saved.
func (s *Session) setPlaceholder(p summary.Summary) {
	s.raw = p.Title
	s.title = ""
	s.editable = p.Body
	s.hasSummary = false
}

func (s *Session) edit(act Edit) Result {
	if !s.hasSummary {
		return s.invalid("edit", errors.New("no summary to edit"))
	}
	if act.Text == s.editable {
		return Result{Status: StatusNoop}
	}
	s.editable = act.Text
	s.phase = PhaseEdited
	return Result{Status: "Summary edited."}
}

func (s *Session) setAnchors(act SetAnchors) Result {
	intro, closing := act.Intro, act.Closing
	s.intro = &intro
	s.closing = &closing
	return Result{Status: "Anchors updated."}
}

func (s *Session) save(ctx context.Context) Result {
	if !s.hasSummary || (s.phase != PhaseSummarized && s.phase != PhaseEdited) {
		return Result{Status: StatusNoop}
	}

	entry := s.history.Append(s.title, s.editable)
	s.phase = PhaseSaved
	s.deps.Logger.Debug(ctx, "Session %s: history now %d entries", s.id, s.history.Len())
	return Result{Status: "Saved: " + entry.Title, Entry: &entry}
}

func (s *Session) listen(ctx context.Context) Result {
	if !s.hasSummary {
		return s.invalid("listen", errors.New("no summary to narrate"))
	}

	intro, closing := s.anchors()
	n := s.deps.Composer.ComposeSingle(intro, s.editable, closing)
	return s.render(ctx, n, narration.Single)
}

func (s *Session) synthesizeAll(ctx context.Context) Result {
	intro, closing := s.anchors()
	n := s.deps.Composer.ComposeBatch(intro, s.history.Snapshot(), closing)
	return s.render(ctx, n, narration.Batch)
}

func (s *Session) render(ctx context.Context, n narration.Narration, mode narration.Mode) Result {
	artifact, err := s.deps.Renderer.Render(ctx, n, mode)
	if err != nil {
		return failure(err, apperr.KindSynthesis)
	}
	return Result{
		Status: "Audio ready: " + artifact.Name,
		Audio: &AudioRef{
			Name: artifact.Name,
			Path: artifact.Path,
			URL:  s.deps.AssetsURL + artifact.Name,
		},
	}
}

func (s *Session) export(ctx context.Context, act Export) Result {
	if s.history.Len() == 0 {
		return Result{Status: StatusNoHistory}
	}

	format := act.Format
	if format == "" {
		format = s.deps.ExportFormat
	}
	exp, err := s.deps.Exporters(format)
	if err != nil {
		return s.invalid("export", err)
	}

	intro, closing := s.anchors()
	out, err := exp.Export(exporter.PathFor(s.deps.ExportPath, format), intro, s.history.Snapshot(), closing)
	if err != nil {
		s.deps.Logger.Error(ctx, "Session %s: export failed: %v", s.id, err)
		return failure(err, apperr.KindExportIO)
	}
	return Result{Status: fmt.Sprintf("History exported to %s.", out.Path), Export: out.Path}
}

func (s *Session) anchors() (string, string) {
	var intro, closing string
	if s.deps.Anchors != nil {
		intro, closing = s.deps.Anchors.Anchors()
	}
	if s.intro != nil {
		intro = *s.intro
	}
	if s.closing != nil {
		closing = *s.closing
	}
	return intro, closing
}

func (s *Session) knownCategory(category string) bool {
	if len(s.deps.Categories) == 0 {
		return category != ""
	}
	for _, c := range s.deps.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *Session) invalid(op string, err error) Result {
	e := apperr.InvalidAction(op, err)
	return Result{Status: e.Error(), Error: apperr.KindInvalidAction}
}

// failure reports err, keeping its own kind when it carries one.
func failure(err error, fallback apperr.Kind) Result {
	kind := apperr.KindOf(err)
	if kind == "" {
		kind = fallback
	}
	return Result{Status: err.Error(), Error: kind}
}
