package session

import (
	"context"

	"github.com/nguyentantai21042004/briefcast/internal/exporter"
	"github.com/nguyentantai21042004/briefcast/internal/narration"
	"github.com/nguyentantai21042004/briefcast/internal/speech"
)

// AudioRenderer turns a narration into a stored audio artifact.
type AudioRenderer interface {
	Render(ctx context.Context, n narration.Narration, mode narration.Mode) (speech.Artifact, error)
}

// AnchorSource provides the default intro and closing lines.
type AnchorSource interface {
	Anchors() (intro, closing string)
}

// ExporterFactory resolves an export format to its writer.
type ExporterFactory func(format string) (exporter.Exporter, error)
