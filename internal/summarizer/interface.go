package summarizer

import "context"

// Summarizer turns article text into a raw broadcast summary: a title line
// followed by the body.
type Summarizer interface {
	Summarize(ctx context.Context, articleText, category string) (string, error)
}
