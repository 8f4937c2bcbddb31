package deepgram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/koscakluka/voiceops-core/core/audio"
	"github.com/koscakluka/voiceops-core/core/speechtotext"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func redirectTo(server *httptest.Server) *http.Client {
	return &http.Client{Timeout: time.Second, Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		req.URL.Scheme = "http"
		req.URL.Host = server.Listener.Addr().String()
		return http.DefaultTransport.RoundTrip(req)
	})}
}

func TestTranscribeRejectsEmptySegmentWithoutRequest(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := NewTranscriptionClient("key")
	client.HTTPClient = redirectTo(server)

	_, err := client.Transcribe(context.Background(), audio.Segment{})
	if !errors.Is(err, speechtotext.ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
	if requested {
		t.Fatal("empty segment still hit the network")
	}
}

func TestTranscribeReturnsTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Token key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if got := r.URL.Query().Get("sample_rate"); got != "16000" {
			t.Errorf("unexpected sample rate: %q", got)
		}
		_, _ = w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":" check system status "}]}]}}`))
	}))
	defer server.Close()

	client := NewTranscriptionClient("key")
	client.HTTPClient = redirectTo(server)

	segment := audio.NewSegment([]byte{1, 2, 3, 4}, audio.GetDefaultEncodingInfo())
	transcript, err := client.Transcribe(context.Background(), segment)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if transcript != "check system status" {
		t.Fatalf("unexpected transcript: %q", transcript)
	}
}

func TestTranscribeWrapsHTTPFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewTranscriptionClient("key")
	client.HTTPClient = redirectTo(server)

	segment := audio.NewSegment([]byte{1, 2, 3, 4}, audio.GetDefaultEncodingInfo())
	_, err := client.Transcribe(context.Background(), segment)
	if !errors.Is(err, speechtotext.ErrTranscriptionFailed) {
		t.Fatalf("expected ErrTranscriptionFailed, got %v", err)
	}
}
