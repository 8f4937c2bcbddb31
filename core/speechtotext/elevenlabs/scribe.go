package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/koscakluka/voiceops-core/core/audio"
	"github.com/koscakluka/voiceops-core/core/speechtotext"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	speechToTextURL = "https://api.elevenlabs.io/v1/speech-to-text"
	scribeModelID   = "scribe_v1"
)

// TranscriptionClient transcribes one finalized audio segment per call
// through ElevenLabs Scribe.
type TranscriptionClient struct {
	HTTPClient *http.Client

	apiKey string
}

func NewTranscriptionClient(apiKey string) *TranscriptionClient {
	return &TranscriptionClient{
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		apiKey:     apiKey,
	}
}

func (c *TranscriptionClient) Transcribe(ctx context.Context, segment audio.Segment, opts ...speechtotext.TranscriptionOption) (string, error) {
	if segment.IsEmpty() {
		return "", speechtotext.ErrEmptyAudio
	}

	options := speechtotext.TranscriptionOptions{Model: scribeModelID}
	for _, opt := range opts {
		opt(&options)
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	file, err := form.CreateFormFile("file", "audio.raw")
	if err != nil {
		return "", fmt.Errorf("%w: failed to build form: %v", speechtotext.ErrTranscriptionFailed, err)
	}
	if _, err := file.Write(segment.Data); err != nil {
		return "", fmt.Errorf("%w: failed to build form: %v", speechtotext.ErrTranscriptionFailed, err)
	}
	_ = form.WriteField("model_id", options.Model)
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to build form: %v", speechtotext.ErrTranscriptionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, speechToTextURL, body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", speechtotext.ErrTranscriptionFailed, err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", speechtotext.ErrTranscriptionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorText, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: non-OK HTTP status %d: %s", speechtotext.ErrTranscriptionFailed, resp.StatusCode, string(errorText))
	}

	var response struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", speechtotext.ErrTranscriptionFailed, err)
	}

	return response.Text, nil
}
