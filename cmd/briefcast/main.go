package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/briefcast/internal/anchor"
	"github.com/nguyentantai21042004/briefcast/internal/article"
	"github.com/nguyentantai21042004/briefcast/internal/config"
	"github.com/nguyentantai21042004/briefcast/internal/exporter"
	"github.com/nguyentantai21042004/briefcast/internal/httpapi"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
	"github.com/nguyentantai21042004/briefcast/internal/narration"
	"github.com/nguyentantai21042004/briefcast/internal/session"
	"github.com/nguyentantai21042004/briefcast/internal/speech"
	"github.com/nguyentantai21042004/briefcast/internal/summarizer"
	"github.com/nguyentantai21042004/briefcast/internal/watcher"
	"github.com/nguyentantai21042004/briefcast/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Briefcast: news summary broadcaster")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Summarizer: %s (%s)", cfg.Summarizer.Provider, cfg.Summarizer.Model)
	log.Info(ctx, "Voice: %s %s, pause %s", cfg.Speech.Language, cfg.Speech.VoiceGender, cfg.Speech.Pause)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Collaborators
	fetcher := article.New(&http.Client{Timeout: cfg.Fetcher.Timeout}, article.Options{
		Timeout:             cfg.Fetcher.Timeout,
		UserAgent:           cfg.Fetcher.UserAgent,
		Selector:            cfg.Fetcher.Selector,
		ReadabilityFallback: cfg.Fetcher.ReadabilityFallback,
	}, log)

	prompts := summarizer.NewPrompts(cfg.Summarizer.Categories)
	summ, err := summarizer.New(cfg.Summarizer, prompts, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}

	synth, err := speech.NewGoogle(ctx, speech.VoiceOptions{
		Language: cfg.Speech.Language,
		Gender:   cfg.Speech.VoiceGender,
	}, log)
	if err != nil {
		log.Error(ctx, "Failed to create speech client: %v", err)
		os.Exit(1)
	}
	defer synth.Close()

	var normalizer speech.Normalizer
	if cfg.Speech.Normalize {
		normalizer = speech.NewFFmpegNormalizer(executor.New(), cfg.Speech.FFmpegPath)
	}
	renderer := speech.NewRenderer(synth, normalizer, speech.NewSink(cfg.Paths.Assets), log)

	anchors, stopAnchors, err := startAnchors(ctx, cfg.Paths.Anchors, log)
	if err != nil {
		log.Error(ctx, "Failed to load anchors: %v", err)
		os.Exit(1)
	}
	defer stopAnchors()

	sessions := session.NewManager(session.Deps{
		Fetcher:      fetcher,
		Summarizer:   summ,
		Categories:   prompts.Categories(),
		Composer:     narration.NewComposer(cfg.Speech.PauseDuration()),
		Renderer:     renderer,
		Exporters:    exporter.New,
		ExportPath:   cfg.Paths.Export,
		ExportFormat: cfg.Export.Format,
		Anchors:      anchors,
		AssetsURL:    httpapi.AssetsPrefix,
		Logger:       log,
	})

	router := httpapi.NewRouter(sessions, httpapi.Options{
		AssetsDir:  cfg.Paths.Assets,
		Categories: prompts.Categories(),
	}, log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on %s", cfg.Server.Addr)
	log.Info(ctx, "Audio assets: %s", cfg.Paths.Assets)
	log.Info(ctx, "Export path: %s (%s)", cfg.Paths.Export, cfg.Export.Format)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "Briefcast stopped")
}

// startAnchors loads the anchor directory and keeps it in sync. Without a
// directory the anchors are empty and nothing is watched.
func startAnchors(ctx context.Context, dir string, log logger.Logger) (*anchor.Book, func(), error) {
	if dir == "" {
		return anchor.NewBook("", ""), func() {}, nil
	}

	book, err := anchor.Load(ctx, dir, log)
	if err != nil {
		return nil, nil, err
	}

	w, err := watcher.New(dir, anchor.Files, book.Reload, log)
	if err != nil {
		return nil, nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Anchor watcher error: %v", err)
		}
	}()

	// The returned stop must run after ctx is cancelled.
	stop := func() {
		<-done
		w.Stop()
	}
	return book, stop, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{cfg.Paths.Assets}
	if cfg.Paths.Anchors != "" {
		dirs = append(dirs, cfg.Paths.Anchors)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
