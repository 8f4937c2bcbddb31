package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	api "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/rest/interfaces"
	"github.com/koscakluka/voiceops-core/core/audio"
	"github.com/koscakluka/voiceops-core/core/speechtotext"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const listenURL = "https://api.deepgram.com/v1/listen"

// TranscriptionClient transcribes one finalized audio segment per call
// through Deepgram's prerecorded endpoint.
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

	options := speechtotext.TranscriptionOptions{Model: "nova-3", Language: "en-US"}
	for _, opt := range opts {
		opt(&options)
	}

	encoding := segment.Encoding
	if encoding.IsZero() {
		encoding = audio.GetDefaultEncodingInfo()
	}

	listenUrl, _ := url.Parse(listenURL)
	queryParams := listenUrl.Query()
	queryParams.Set("model", options.Model)
	queryParams.Set("language", options.Language)
	queryParams.Set("encoding", encoding.Format.Name())
	queryParams.Set("sample_rate", strconv.Itoa(encoding.SampleRate))
	queryParams.Set("channels", "1")
	queryParams.Set("smart_format", "true")
	listenUrl.RawQuery = queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, listenUrl.String(), bytes.NewReader(segment.Data))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", speechtotext.ErrTranscriptionFailed, err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", speechtotext.ErrTranscriptionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: non-OK HTTP status %d: %s", speechtotext.ErrTranscriptionFailed, resp.StatusCode, string(body))
	}

	var response api.PreRecordedResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", speechtotext.ErrTranscriptionFailed, err)
	}

	if response.Results == nil || len(response.Results.Channels) == 0 ||
		len(response.Results.Channels[0].Alternatives) == 0 {
		return "", nil
	}

	return strings.TrimSpace(response.Results.Channels[0].Alternatives[0].Transcript), nil
}
