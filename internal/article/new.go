package article

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

// Options configures the HTTP article fetcher.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Selector is the CSS selector of the element holding the article body.
	Selector string
	// ReadabilityFallback extracts the main content heuristically when the
	// selector matches nothing instead of failing.
	ReadabilityFallback bool
}

type implFetcher struct {
	client *http.Client
	opts   Options
	logger logger.Logger
}

// New creates a Fetcher. A nil client gets one with opts.Timeout.
func New(client *http.Client, opts Options, log logger.Logger) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &implFetcher{
		client: client,
		opts:   opts,
		logger: log,
	}
}
