package summarizer

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

// openaiSummarizer uses chat completions. Any OpenAI-compatible endpoint
// works through baseURL.
type openaiSummarizer struct {
	model   string
	opts    []option.RequestOption
	prompts Prompts
	logger  logger.Logger
}

func newOpenAI(apiKey, baseURL, model string, prompts Prompts, log logger.Logger) (*openaiSummarizer, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	if model == "" {
		return nil, errors.New("openai: model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openaiSummarizer{model: model, opts: opts, prompts: prompts, logger: log}, nil
}

func (s *openaiSummarizer) Summarize(ctx context.Context, articleText, category string) (string, error) {
	system, err := s.prompts.SystemPrompt(category)
	if err != nil {
		return "", apperr.Summarize("openai prompt", err)
	}

	client := openai.NewClient(s.opts...)

	s.logger.Debug(ctx, "Requesting %s summary for %d characters", s.model, len([]rune(articleText)))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(articleText),
		},
	})
	if err != nil {
		return "", apperr.Summarize("openai chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.Summarize("openai chat completion", errors.New("empty choices"))
	}
	return resp.Choices[0].Message.Content, nil
}
