package speech

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/briefcast/pkg/executor"
)

// FFmpegNormalizer runs a loudness normalization pass through ffmpeg,
// streaming MP3 in on stdin and out on stdout.
type FFmpegNormalizer struct {
	exec   executor.Executor
	binary string
}

func NewFFmpegNormalizer(exec executor.Executor, binary string) *FFmpegNormalizer {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &FFmpegNormalizer{exec: exec, binary: binary}
}

func (n *FFmpegNormalizer) Normalize(ctx context.Context, audio []byte) ([]byte, error) {
	// -af loudnorm: EBU R128 loudness normalization
	// -f mp3 pipe:1: keep the container, write to stdout
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-f", "mp3",
		"-i", "pipe:0",
		"-af", "loudnorm=I=-16:TP=-1.5:LRA=11",
		"-c:a", "libmp3lame",
		"-f", "mp3",
		"pipe:1",
	}

	out, err := n.exec.Run(ctx, executor.Command{Name: n.binary, Args: args, Stdin: audio})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("ffmpeg produced no audio")
	}
	return out, nil
}
