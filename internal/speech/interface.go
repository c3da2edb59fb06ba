package speech

import (
	"context"

	"github.com/nguyentantai21042004/briefcast/internal/narration"
)

// Synthesizer renders narration text (plain or markup) into MP3 bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, n narration.Narration) ([]byte, error)
}

// Normalizer post-processes encoded audio.
type Normalizer interface {
	Normalize(ctx context.Context, audio []byte) ([]byte, error)
}

// Artifact is a written audio file.
type Artifact struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
