package article

import "context"

// Fetcher resolves a news article URL to its plain body text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
