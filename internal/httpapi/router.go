// Package httpapi exposes sessions and their actions over HTTP.
package httpapi

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/briefcast/internal/logger"
	"github.com/nguyentantai21042004/briefcast/internal/session"
)

// AssetsPrefix is the URL prefix audio artifacts are served under.
const AssetsPrefix = "/assets/"

// maxActionBody caps action payloads; edits carry whole summaries.
const maxActionBody = 1 << 20

// Options configure the router.
type Options struct {
	AssetsDir  string
	Categories []string
}

type handler struct {
	sessions   *session.Manager
	categories []string
	logger     logger.Logger
}

// NewRouter builds the gin engine serving the session API and audio assets.
func NewRouter(sessions *session.Manager, opts Options, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	h := &handler{sessions: sessions, categories: opts.Categories, logger: log}

	r.GET("/healthz", h.health)
	if opts.AssetsDir != "" {
		r.Static(AssetsPrefix, opts.AssetsDir)
	}

	api := r.Group("/api")
	{
		api.GET("/categories", h.listCategories)
		api.POST("/sessions", h.createSession)
		api.GET("/sessions/:id", h.getSession)
		api.POST("/sessions/:id/actions", h.dispatch)
	}
	return r
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) listCategories(c *gin.Context) {
	success(c, http.StatusOK, gin.H{"categories": h.categories})
}

func (h *handler) createSession(c *gin.Context) {
	s := h.sessions.Create(c.Request.Context())
	success(c, http.StatusCreated, gin.H{"session_id": s.ID()})
}

func (h *handler) getSession(c *gin.Context) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		notFound(c, "session")
		return
	}
	success(c, http.StatusOK, s.View())
}

// dispatch always answers 200 once the action decodes; the outcome of the
// action itself is in the Result. A started action runs to completion even
// if the client goes away.
func (h *handler) dispatch(c *gin.Context) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		notFound(c, "session")
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxActionBody))
	if err != nil {
		failure(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	action, err := session.DecodeAction(body)
	if err != nil {
		failure(c, http.StatusBadRequest, "invalid_action", err.Error())
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	success(c, http.StatusOK, s.Dispatch(ctx, action))
}
