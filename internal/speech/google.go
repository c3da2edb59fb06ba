package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"

	"github.com/nguyentantai21042004/briefcast/internal/apperr"
	"github.com/nguyentantai21042004/briefcast/internal/logger"
	"github.com/nguyentantai21042004/briefcast/internal/narration"
)

// VoiceOptions selects the synthesis voice.
type VoiceOptions struct {
	Language string
	Gender   string
}

type ttsClient interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// GoogleSynthesizer calls Google Cloud Text-to-Speech. Credentials come from
// GOOGLE_APPLICATION_CREDENTIALS.
type GoogleSynthesizer struct {
	client ttsClient
	voice  *texttospeechpb.VoiceSelectionParams
	logger logger.Logger
}

// NewGoogle dials the Text-to-Speech API.
func NewGoogle(ctx context.Context, opts VoiceOptions, log logger.Logger) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create text-to-speech client: %w", err)
	}
	return newGoogleWithClient(client, opts, log)
}

func newGoogleWithClient(client ttsClient, opts VoiceOptions, log logger.Logger) (*GoogleSynthesizer, error) {
	gender, ok := texttospeechpb.SsmlVoiceGender_value[strings.ToUpper(opts.Gender)]
	if !ok {
		return nil, fmt.Errorf("unknown voice gender %q", opts.Gender)
	}
	return &GoogleSynthesizer{
		client: client,
		voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: opts.Language,
			SsmlGender:   texttospeechpb.SsmlVoiceGender(gender),
		},
		logger: log,
	}, nil
}

// Synthesize sends markup narrations as SSML and everything else as text.
func (g *GoogleSynthesizer) Synthesize(ctx context.Context, n narration.Narration) ([]byte, error) {
	input := &texttospeechpb.SynthesisInput{}
	if n.Markup {
		input.InputSource = &texttospeechpb.SynthesisInput_Ssml{Ssml: n.Text}
	} else {
		input.InputSource = &texttospeechpb.SynthesisInput_Text{Text: n.Text}
	}

	g.logger.Debug(ctx, "Synthesizing %d characters (markup=%t)", len([]rune(n.Text)), n.Markup)

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: input,
		Voice: g.voice,
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, apperr.Synthesis("synthesize speech", err)
	}
	if len(resp.GetAudioContent()) == 0 {
		return nil, apperr.Synthesis("synthesize speech", errors.New("empty audio content"))
	}
	return resp.GetAudioContent(), nil
}

// Close releases the underlying connection.
func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}
