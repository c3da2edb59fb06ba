package anchor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/briefcast/internal/logger"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		wantIntro   string
		wantClosing string
	}{
		{
			name:        "both files",
			files:       map[string]string{IntroFile: "안녕하세요\n", ClosingFile: "  감사합니다  "},
			wantIntro:   "안녕하세요",
			wantClosing: "감사합니다",
		},
		{
			name:        "closing missing",
			files:       map[string]string{IntroFile: "안녕하세요"},
			wantIntro:   "안녕하세요",
			wantClosing: "",
		},
		{
			name: "empty dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
			}

			b, err := Load(context.Background(), dir, logger.Nop())
			require.NoError(t, err)

			intro, closing := b.Anchors()
			assert.Equal(t, tt.wantIntro, intro)
			assert.Equal(t, tt.wantClosing, closing)
		})
	}
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	b, err := Load(context.Background(), dir, logger.Nop())
	require.NoError(t, err)

	path := filepath.Join(dir, ClosingFile)
	require.NoError(t, os.WriteFile(path, []byte("오늘 소식은 여기까지입니다."), 0644))
	require.NoError(t, b.Reload(context.Background(), path))

	_, closing := b.Anchors()
	assert.Equal(t, "오늘 소식은 여기까지입니다.", closing)

	require.NoError(t, b.Reload(context.Background(), filepath.Join(dir, "other.txt")))
	_, closing = b.Anchors()
	assert.Equal(t, "오늘 소식은 여기까지입니다.", closing)
}

func TestNewBook(t *testing.T) {
	b := NewBook("intro", "closing")
	intro, closing := b.Anchors()
	assert.Equal(t, "intro", intro)
	assert.Equal(t, "closing", closing)
}

func TestReloadAfterRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, IntroFile)
	require.NoError(t, os.WriteFile(path, []byte("안녕하세요"), 0644))

	b, err := Load(context.Background(), dir, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	require.NoError(t, b.Reload(context.Background(), path))

	intro, _ := b.Anchors()
	assert.Empty(t, intro)
}
