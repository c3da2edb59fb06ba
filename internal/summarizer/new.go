package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/briefcast/internal/config"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

// New builds the Summarizer selected by cfg.Provider.
func New(cfg config.SummarizerConfig, prompts Prompts, log logger.Logger) (Summarizer, error) {
	switch cfg.Provider {
	case "gemini":
		return newGemini(cfg.APIKeys, cfg.Model, prompts, log)
	case "openai":
		return newOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, prompts, log)
	case "mock":
		return &mockSummarizer{prompts: prompts}, nil
	default:
		return nil, fmt.Errorf("unsupported summarizer provider %q", cfg.Provider)
	}
}
