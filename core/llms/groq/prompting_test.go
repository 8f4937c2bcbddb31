package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/koscakluka/voiceops-core/core/llms"
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

func TestPromptRequiresAPIKey(t *testing.T) {
	client := NewClient("", "")
	if _, err := client.Prompt(context.Background(), "hi"); err == nil {
		t.Fatal("expected error with missing key")
	}
}

func TestPromptParsesContentAndToolCalls(t *testing.T) {
	var captured requestBody
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"On it.","tool_calls":[{"id":"call_1","type":"function","function":{"name":"openPage","arguments":"{\"pageName\":\"LOGS_VIEW\"}"}}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "")
	client.HTTPClient = redirectTo(server)

	tool := llms.NewTool("openPage", "Switch view.", nil, nil,
		func(ctx context.Context, _ struct{}) (string, error) { return "", nil })

	response, err := client.Prompt(context.Background(), "open the logs",
		llms.WithSystemPrompt("you are an operator"),
		llms.WithTools(tool),
	)
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}

	if response.Content != "On it." {
		t.Fatalf("unexpected content: %q", response.Content)
	}
	if len(response.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(response.ToolCalls))
	}
	if response.ToolCalls[0].Name != "openPage" || response.ToolCalls[0].ID != "call_1" {
		t.Fatalf("unexpected tool call: %+v", response.ToolCalls[0])
	}

	if captured.Model != defaultModel {
		t.Fatalf("expected default model, got %q", captured.Model)
	}
	if len(captured.Tools) != 1 || captured.Tools[0].Function.Name != "openPage" {
		t.Fatalf("tools not forwarded: %+v", captured.Tools)
	}
	if captured.ToolChoice == nil || *captured.ToolChoice != "auto" {
		t.Fatalf("expected auto tool choice, got %v", captured.ToolChoice)
	}
	if len(captured.Messages) == 0 || captured.Messages[0].Role != messageRoleSystem {
		t.Fatalf("system prompt not first message: %+v", captured.Messages)
	}
}

func TestPromptHTTPFailures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status_non_2xx", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(500); _, _ = w.Write([]byte("oops")) }},
		{"bad_json", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("not-json")) }},
		{"empty_choices", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"choices":[]}`)) }},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()

			client := NewClient("test-key", "")
			client.HTTPClient = redirectTo(server)

			if _, err := client.Prompt(context.Background(), "hi"); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
