package article

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
)

const maxBodyBytes = 5 << 20

// ErrContainerNotFound is returned when the page has no element matching
// the configured selector.
var ErrContainerNotFound = errors.New("article container not found")

// Fetch downloads rawURL and extracts the article body text.
func (f *implFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperr.Fetch("parse url", fmt.Errorf("invalid article url %q", rawURL))
	}

	f.logger.Info(ctx, "Fetching article: %s", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", apperr.Fetch("build request", err)
	}
	if f.opts.UserAgent != "" {
		req.Header.Set("User-Agent", f.opts.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", apperr.Fetch("get article", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperr.Fetch("get article", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", apperr.Fetch("read article", err)
	}

	text, err := f.extract(ctx, string(body))
	if err != nil {
		return "", apperr.Fetch("extract article", err)
	}

	f.logger.Info(ctx, "Article extracted: %d characters", len([]rune(text)))
	return text, nil
}
