package speech

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/briefcast/internal/narration"
)

const fileTimestampLayout = "20060102150405"

var errEmptyAudio = errors.New("empty audio")

// Sink writes audio artifacts into one directory. File names embed the
// generation time: audio_<ts>.mp3 for single reads, all_audio_<ts>.mp3 for batches.
type Sink struct {
	dir string
	now func() time.Time
}

func NewSink(dir string) *Sink {
	return NewSinkWithClock(dir, time.Now)
}

func NewSinkWithClock(dir string, now func() time.Time) *Sink {
	return &Sink{dir: dir, now: now}
}

// FileName returns the artifact name for mode at t.
func FileName(mode narration.Mode, t time.Time) string {
	prefix := "audio_"
	if mode == narration.Batch {
		prefix = "all_audio_"
	}
	return prefix + t.Format(fileTimestampLayout) + ".mp3"
}

// Write stores audio and returns the artifact. Nothing is left on disk if
// the write fails. A name already taken within the same second gets a
// numeric suffix.
func (s *Sink) Write(mode narration.Mode, audio []byte) (Artifact, error) {
	if len(audio) == 0 {
		return Artifact{}, errEmptyAudio
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Artifact{}, fmt.Errorf("create assets dir: %w", err)
	}

	base := FileName(mode, s.now())
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	for i := 1; i < 100; i++ {
		name := base
		if i > 1 {
			name = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}
		path := filepath.Join(s.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return Artifact{}, fmt.Errorf("create %s: %w", path, err)
		}

		if _, err := f.Write(audio); err != nil {
			f.Close()
			os.Remove(path)
			return Artifact{}, fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return Artifact{}, fmt.Errorf("close %s: %w", path, err)
		}
		return Artifact{Name: name, Path: path}, nil
	}

	return Artifact{}, fmt.Errorf("no free file name for %s", base)
}
