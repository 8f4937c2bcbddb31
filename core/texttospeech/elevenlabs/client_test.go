package elevenlabs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/koscakluka/voiceops-core/core/texttospeech"
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

func TestSynthesizeReturnsPlayableSpeech(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("xi-api-key"); got != "xi-key" {
			t.Errorf("unexpected api key header: %q", got)
		}
		if got := r.URL.Query().Get("output_format"); got != "pcm_16000" {
			t.Errorf("unexpected output format: %q", got)
		}
		_, _ = w.Write([]byte{1, 2, 3, 4})
	}))
	defer server.Close()

	client := NewTextToSpeechClient("xi-key", "voice-id", nil)
	client.HTTPClient = redirectTo(server)

	speech, err := client.Synthesize(context.Background(), "all systems nominal")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	// A nil player completes playback immediately.
	if err := speech.Play(context.Background()); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	select {
	case <-speech.Done():
	default:
		t.Fatal("Done not closed after Play")
	}
}

func TestSynthesizeWrapsHTTPFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewTextToSpeechClient("xi-key", "voice-id", nil)
	client.HTTPClient = redirectTo(server)

	_, err := client.Synthesize(context.Background(), "anything")
	if !errors.Is(err, texttospeech.ErrSynthesisFailed) {
		t.Fatalf("expected ErrSynthesisFailed, got %v", err)
	}
}
