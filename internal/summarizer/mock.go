package summarizer

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
)

// mockSummarizer is a local stand-in that never calls a model: the first
// sentence becomes the title and the next three sentences the body.
type mockSummarizer struct {
	prompts Prompts
}

func (m *mockSummarizer) Summarize(_ context.Context, articleText, category string) (string, error) {
	if _, err := m.prompts.SystemPrompt(category); err != nil {
		return "", apperr.Summarize("mock prompt", err)
	}

	sentences := splitSentences(articleText)
	if len(sentences) == 0 {
		return "", nil
	}

	body := sentences[1:]
	if len(body) > 3 {
		body = body[:3]
	}
	return sentences[0] + "\n" + strings.Join(body, "\n\n"), nil
}

func splitSentences(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for _, s := range strings.SplitAfter(line, ". ") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
