package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Fetcher    FetcherConfig    `yaml:"fetcher"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Speech     SpeechConfig     `yaml:"speech"`
	Paths      PathsConfig      `yaml:"paths"`
	Export     ExportConfig     `yaml:"export"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type FetcherConfig struct {
	Timeout             time.Duration `yaml:"timeout"`
	UserAgent           string        `yaml:"user_agent"`
	Selector            string        `yaml:"selector"`
	ReadabilityFallback bool          `yaml:"readability_fallback"`
}

type SummarizerConfig struct {
	Provider string   `yaml:"provider"`
	Model    string   `yaml:"model"`
	APIKey   string   `yaml:"api_key"`
	APIKeys  []string `yaml:"api_keys"`
	BaseURL  string   `yaml:"base_url"`
	// Categories extends or overrides the built-in category instructions.
	Categories map[string]string `yaml:"categories"`
}

type SpeechConfig struct {
	Language    string `yaml:"language"`
	VoiceGender string `yaml:"voice_gender"`
	Pause       string `yaml:"pause"`
	Normalize   bool   `yaml:"normalize"`
	FFmpegPath  string `yaml:"ffmpeg_path"`
}

type PathsConfig struct {
	Assets  string `yaml:"assets"`
	Export  string `yaml:"export"`
	Anchors string `yaml:"anchors"`
}

type ExportConfig struct {
	Format string `yaml:"format"`
}

// Validate checks required fields and fills in defaults.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8050"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Fetcher.Timeout == 0 {
		c.Fetcher.Timeout = 30 * time.Second
	}
	if c.Fetcher.UserAgent == "" {
		c.Fetcher.UserAgent = "Mozilla/5.0 (compatible; briefcast/1.0)"
	}
	if c.Fetcher.Selector == "" {
		c.Fetcher.Selector = "div.newsct_article._article_body"
	}

	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "gemini"
	}
	switch c.Summarizer.Provider {
	case "gemini":
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gemini-2.5-flash"
		}
		if len(c.Summarizer.APIKeys) == 0 && c.Summarizer.APIKey != "" {
			c.Summarizer.APIKeys = []string{c.Summarizer.APIKey}
		}
		if len(c.Summarizer.APIKeys) == 0 {
			return fmt.Errorf("summarizer.api_keys is required for gemini (set GEMINI_API_KEY)")
		}
	case "openai":
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gpt-4"
		}
		if c.Summarizer.APIKey == "" {
			return fmt.Errorf("summarizer.api_key is required for openai (set OPENAI_API_KEY)")
		}
	case "mock":
	default:
		return fmt.Errorf("unsupported summarizer.provider %q (supported: gemini, openai, mock)", c.Summarizer.Provider)
	}

	if c.Speech.Language == "" {
		c.Speech.Language = "ko-KR"
	}
	if c.Speech.VoiceGender == "" {
		c.Speech.VoiceGender = "NEUTRAL"
	}
	if c.Speech.Pause == "" {
		c.Speech.Pause = "2000ms"
	}
	if _, err := time.ParseDuration(c.Speech.Pause); err != nil {
		return fmt.Errorf("speech.pause %q is not a duration: %w", c.Speech.Pause, err)
	}
	if c.Speech.FFmpegPath == "" {
		c.Speech.FFmpegPath = "ffmpeg"
	}

	if c.Paths.Assets == "" {
		c.Paths.Assets = "Summarization/assets"
	}
	if c.Paths.Export == "" {
		c.Paths.Export = "Summarization/history_data.txt"
	}

	c.Export.Format = strings.ToLower(c.Export.Format)
	if c.Export.Format == "" {
		c.Export.Format = "txt"
	}
	if c.Export.Format != "txt" && c.Export.Format != "docx" {
		return fmt.Errorf("unsupported export.format %q (supported: txt, docx)", c.Export.Format)
	}

	return nil
}

// PauseDuration is the parsed batch pause. Call after Validate.
func (s SpeechConfig) PauseDuration() time.Duration {
	d, err := time.ParseDuration(s.Pause)
	if err != nil {
		return 0
	}
	return d
}
