package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

type geminiSummarizer struct {
	apiKeys    []string
	mu         sync.Mutex
	currentKey int
	model      string
	prompts    Prompts
	logger     logger.Logger
}

func newGemini(apiKeys []string, model string, prompts Prompts, log logger.Logger) (*geminiSummarizer, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("gemini: at least one api key is required")
	}
	return &geminiSummarizer{
		apiKeys: apiKeys,
		model:   model,
		prompts: prompts,
		logger:  log,
	}, nil
}

// Summarize sends the article to Gemini. Rotates API keys on 429 / quota errors.
func (s *geminiSummarizer) Summarize(ctx context.Context, articleText, category string) (string, error) {
	system, err := s.prompts.SystemPrompt(category)
	if err != nil {
		return "", apperr.Summarize("gemini prompt", err)
	}

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	var lastErr error
	for range len(s.apiKeys) {
		idx, key := s.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(articleText), genCfg)
		if err != nil {
			if isQuotaError(err) {
				s.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", idx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", apperr.Summarize("gemini generate", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var sb strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				sb.WriteString(part.Text)
			}
			return sb.String(), nil
		}

		return "", apperr.Summarize("gemini generate", errors.New("empty response from Gemini"))
	}

	return "", apperr.Summarize("gemini generate", fmt.Errorf("all API keys exhausted: %w", lastErr))
}

func (s *geminiSummarizer) key() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

func (s *geminiSummarizer) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
