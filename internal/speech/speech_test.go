package speech

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
	"github.com/nguyentantai21042004/briefcast/internal/narration"
	"github.com/nguyentantai21042004/briefcast/pkg/executor"
)

type fakeTTSClient struct {
	req   *texttospeechpb.SynthesizeSpeechRequest
	audio []byte
	err   error
}

func (f *fakeTTSClient) SynthesizeSpeech(_ context.Context, req *texttospeechpb.SynthesizeSpeechRequest, _ ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &texttospeechpb.SynthesizeSpeechResponse{AudioContent: f.audio}, nil
}

func (f *fakeTTSClient) Close() error { return nil }

type fakeSynth struct {
	audio []byte
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(context.Context, narration.Narration) ([]byte, error) {
	f.calls++
	return f.audio, f.err
}

type fakeNormalizer struct {
	out []byte
	err error
}

func (f fakeNormalizer) Normalize(context.Context, []byte) ([]byte, error) {
	return f.out, f.err
}

type fakeExecutor struct {
	cmd executor.Command
	out []byte
	err error
}

func (f *fakeExecutor) Run(_ context.Context, cmd executor.Command) ([]byte, error) {
	f.cmd = cmd
	return f.out, f.err
}

var fixedNow = time.Date(2024, 3, 5, 9, 7, 30, 0, time.Local)

func clock() time.Time { return fixedNow }

func TestGoogleSynthesizerRequest(t *testing.T) {
	tests := []struct {
		name   string
		in     narration.Narration
		isSSML bool
	}{
		{"plain text", narration.Narration{Text: "안녕하세요\n\n본문"}, false},
		{"markup", narration.Narration{Text: "<speak>안녕하세요</speak>", Markup: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeTTSClient{audio: []byte("mp3")}
			g, err := newGoogleWithClient(client, VoiceOptions{Language: "ko-KR", Gender: "neutral"}, logger.Nop())
			require.NoError(t, err)

			audio, err := g.Synthesize(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, []byte("mp3"), audio)

			req := client.req
			require.NotNil(t, req)
			assert.Equal(t, "ko-KR", req.GetVoice().GetLanguageCode())
			assert.Equal(t, texttospeechpb.SsmlVoiceGender_NEUTRAL, req.GetVoice().GetSsmlGender())
			assert.Equal(t, texttospeechpb.AudioEncoding_MP3, req.GetAudioConfig().GetAudioEncoding())
			if tt.isSSML {
				assert.Equal(t, tt.in.Text, req.GetInput().GetSsml())
				assert.Empty(t, req.GetInput().GetText())
			} else {
				assert.Equal(t, tt.in.Text, req.GetInput().GetText())
				assert.Empty(t, req.GetInput().GetSsml())
			}
		})
	}
}

func TestGoogleSynthesizerErrors(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeTTSClient
	}{
		{"api error", &fakeTTSClient{err: errors.New("permission denied")}},
		{"empty audio", &fakeTTSClient{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := newGoogleWithClient(tt.client, VoiceOptions{Language: "ko-KR", Gender: "NEUTRAL"}, logger.Nop())
			require.NoError(t, err)

			_, err = g.Synthesize(context.Background(), narration.Narration{Text: "x"})
			assert.True(t, apperr.Is(err, apperr.KindSynthesis))
		})
	}
}

func TestGoogleSynthesizerUnknownGender(t *testing.T) {
	_, err := newGoogleWithClient(&fakeTTSClient{}, VoiceOptions{Language: "ko-KR", Gender: "robot"}, logger.Nop())
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "audio_20240305090730.mp3", FileName(narration.Single, fixedNow))
	assert.Equal(t, "all_audio_20240305090730.mp3", FileName(narration.Batch, fixedNow))
}

func TestSinkWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	sink := NewSinkWithClock(dir, clock)

	first, err := sink.Write(narration.Single, []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, "audio_20240305090730.mp3", first.Name)
	assert.Equal(t, filepath.Join(dir, first.Name), first.Path)

	second, err := sink.Write(narration.Single, []byte("two"))
	require.NoError(t, err)
	assert.Equal(t, "audio_20240305090730_2.mp3", second.Name)

	data, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
}

func TestSinkRejectsEmptyAudio(t *testing.T) {
	dir := t.TempDir()
	_, err := NewSinkWithClock(dir, clock).Write(narration.Batch, nil)
	require.Error(t, err)

	files, _ := os.ReadDir(dir)
	assert.Empty(t, files)
}

func TestRendererWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(&fakeSynth{audio: []byte("mp3")}, nil, NewSinkWithClock(dir, clock), logger.Nop())

	artifact, err := r.Render(context.Background(), narration.Narration{Text: "<speak></speak>", Markup: true}, narration.Batch)
	require.NoError(t, err)
	assert.Equal(t, "all_audio_20240305090730.mp3", artifact.Name)
	assert.FileExists(t, artifact.Path)
}

func TestRendererFailureLeavesNoFile(t *testing.T) {
	tests := []struct {
		name  string
		synth *fakeSynth
	}{
		{"synthesis error", &fakeSynth{err: apperr.Synthesis("synthesize", errors.New("quota"))}},
		{"empty audio", &fakeSynth{audio: []byte{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			r := NewRenderer(tt.synth, nil, NewSinkWithClock(dir, clock), logger.Nop())

			_, err := r.Render(context.Background(), narration.Narration{Text: "x"}, narration.Single)
			assert.True(t, apperr.Is(err, apperr.KindSynthesis))

			files, _ := os.ReadDir(dir)
			assert.Empty(t, files)
		})
	}
}

func TestRendererNormalization(t *testing.T) {
	dir := t.TempDir()

	r := NewRenderer(&fakeSynth{audio: []byte("raw")}, fakeNormalizer{out: []byte("loud")}, NewSinkWithClock(dir, clock), logger.Nop())
	artifact, err := r.Render(context.Background(), narration.Narration{Text: "x"}, narration.Single)
	require.NoError(t, err)
	data, _ := os.ReadFile(artifact.Path)
	assert.Equal(t, "loud", string(data))

	r = NewRenderer(&fakeSynth{audio: []byte("raw")}, fakeNormalizer{err: errors.New("ffmpeg missing")}, NewSinkWithClock(dir, clock), logger.Nop())
	artifact, err = r.Render(context.Background(), narration.Narration{Text: "x"}, narration.Batch)
	require.NoError(t, err)
	data, _ = os.ReadFile(artifact.Path)
	assert.Equal(t, "raw", string(data))
}

func TestFFmpegNormalizer(t *testing.T) {
	exec := &fakeExecutor{out: []byte("normalized")}
	n := NewFFmpegNormalizer(exec, "")

	out, err := n.Normalize(context.Background(), []byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, []byte("normalized"), out)
	assert.Equal(t, "ffmpeg", exec.cmd.Name)
	assert.Equal(t, []byte("raw"), exec.cmd.Stdin)
	assert.Contains(t, exec.cmd.Args, "pipe:0")
	assert.Contains(t, exec.cmd.Args, "pipe:1")

	_, err = NewFFmpegNormalizer(&fakeExecutor{}, "ffmpeg").Normalize(context.Background(), []byte("raw"))
	assert.Error(t, err)
}
