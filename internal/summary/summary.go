// Package summary splits raw language model output into a broadcast title and body.
package summary

import (
	"errors"
	"strings"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
)

// MaxTitleLength is the title limit in characters (runes, not bytes).
const MaxTitleLength = 30

// Unavailable is shown in place of a summary that could not be produced.
const Unavailable = "요약을 진행할 수 없습니다."

// ErrEmptySummary is the cause of the malformed-summary error for empty input.
var ErrEmptySummary = errors.New("summary payload is empty")

// Summary is a parsed model response.
type Summary struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Placeholder is the fallback pair used whenever summarizing fails.
func Placeholder() Summary {
	return Summary{Title: Unavailable, Body: Unavailable}
}

// Parse splits raw on its first line break. The first line becomes the title,
// truncated to MaxTitleLength; the rest, trimmed, becomes the body. Without a
// line break the whole payload is the title and the body is empty.
func Parse(raw string) (Summary, error) {
	if raw == "" {
		return Summary{}, apperr.MalformedSummary("parse summary", ErrEmptySummary)
	}

	title, body, found := strings.Cut(raw, "\n")
	title = strings.TrimSuffix(title, "\r")
	if !found {
		body = ""
	}

	return Summary{
		Title: TruncateTitle(title),
		Body:  strings.TrimSpace(body),
	}, nil
}

// ParseOrPlaceholder never fails; malformed input yields Placeholder and the error.
func ParseOrPlaceholder(raw string) (Summary, error) {
	s, err := Parse(raw)
	if err != nil {
		return Placeholder(), err
	}
	return s, nil
}

// TruncateTitle cuts s to at most MaxTitleLength characters.
func TruncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxTitleLength {
		return s
	}
	return string(runes[:MaxTitleLength])
}
