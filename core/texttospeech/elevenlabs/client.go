package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/koscakluka/voiceops-core/core/audio"
	"github.com/koscakluka/voiceops-core/core/texttospeech"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultModelID = "eleven_turbo_v2_5"

// TextToSpeechClient synthesizes one utterance per call through the
// ElevenLabs REST endpoint.
type TextToSpeechClient struct {
	HTTPClient *http.Client

	apiKey  string
	voiceID string
	player  texttospeech.Player
}

func NewTextToSpeechClient(apiKey string, voiceID string, player texttospeech.Player) *TextToSpeechClient {
	return &TextToSpeechClient{
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		apiKey:     apiKey,
		voiceID:    voiceID,
		player:     player,
	}
}

func (c *TextToSpeechClient) Synthesize(ctx context.Context, text string, opts ...texttospeech.SynthesisOption) (texttospeech.Speech, error) {
	options := texttospeech.SynthesisOptions{EncodingInfo: audio.GetDefaultEncodingInfo()}
	for _, opt := range opts {
		opt(&options)
	}

	requestURL := url.URL{
		Scheme: "https",
		Host:   "api.elevenlabs.io",
		Path:   "/v1/text-to-speech/" + c.voiceID,
	}
	queryParams := requestURL.Query()
	queryParams.Set("output_format", outputFormat(options.EncodingInfo))
	requestURL.RawQuery = queryParams.Encode()

	body := map[string]any{
		"text":     text,
		"model_id": defaultModelID,
		"voice_settings": map[string]any{
			"stability":        0.5,
			"similarity_boost": 0.8,
		},
	}
	bodyBytes, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL.String(), bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", texttospeech.ErrSynthesisFailed, err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", texttospeech.ErrSynthesisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorText, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: non-OK HTTP status %d: %s", texttospeech.ErrSynthesisFailed, resp.StatusCode, string(errorText))
	}

	collected, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read audio: %v", texttospeech.ErrSynthesisFailed, err)
	}

	return texttospeech.NewBufferedSpeech(collected, options.EncodingInfo, c.player), nil
}

func outputFormat(encodingInfo audio.EncodingInfo) string {
	switch encodingInfo.Format {
	case audio.EncodingMulaw:
		return fmt.Sprintf("ulaw_%d", encodingInfo.SampleRate)
	case audio.EncodingALaw:
		return fmt.Sprintf("alaw_%d", encodingInfo.SampleRate)
	default:
		return fmt.Sprintf("pcm_%d", encodingInfo.SampleRate)
	}
}
