package speech

import (
	"context"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
	"github.com/nguyentantai21042004/briefcast/internal/narration"
)

// Renderer runs synthesis, the optional normalization pass and the sink write.
type Renderer struct {
	synth      Synthesizer
	normalizer Normalizer
	sink       *Sink
	logger     logger.Logger
}

// NewRenderer wires a renderer. normalizer may be nil.
func NewRenderer(synth Synthesizer, normalizer Normalizer, sink *Sink, log logger.Logger) *Renderer {
	return &Renderer{synth: synth, normalizer: normalizer, sink: sink, logger: log}
}

// Render synthesizes n and writes one artifact. On any failure no file is written.
func (r *Renderer) Render(ctx context.Context, n narration.Narration, mode narration.Mode) (Artifact, error) {
	audio, err := r.synth.Synthesize(ctx, n)
	if err != nil {
		return Artifact{}, apperr.Synthesis("render "+mode.String(), err)
	}
	if len(audio) == 0 {
		return Artifact{}, apperr.Synthesis("render "+mode.String(), errEmptyAudio)
	}

	if r.normalizer != nil {
		normalized, err := r.normalizer.Normalize(ctx, audio)
		if err != nil {
			r.logger.Warn(ctx, "Loudness normalization failed, keeping original audio: %v", err)
		} else {
			audio = normalized
		}
	}

	artifact, err := r.sink.Write(mode, audio)
	if err != nil {
		return Artifact{}, apperr.Synthesis("write audio", err)
	}

	r.logger.Info(ctx, "Audio written: %s (%d bytes)", artifact.Path, len(audio))
	return artifact, nil
}
