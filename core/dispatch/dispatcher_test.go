package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStatusCheckFallsBackToSimulatedSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dispatcher := NewDispatcher(WithStatusEndpoint(server.URL))

	result, err := dispatcher.Execute(context.Background(), "runHealthCheck", "")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var snapshot StatusSnapshot
	if err := json.Unmarshal([]byte(result), &snapshot); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if !snapshot.Simulated {
		t.Fatal("expected simulated snapshot on HTTP 500")
	}
	if snapshot.Health != "Nominal (Simulated)" {
		t.Fatalf("unexpected health: %q", snapshot.Health)
	}
	if snapshot.LatencyMS != 42 {
		t.Fatalf("unexpected latency: %d", snapshot.LatencyMS)
	}

	if view := dispatcher.ActiveView(); view != ViewMetricsDashboard {
		t.Fatalf("expected metrics view, got %q", view)
	}
	if dispatcher.Busy() {
		t.Fatal("busy flag still set after Execute returned")
	}
}

func TestStatusCheckUsesEndpointSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(StatusSnapshot{
			Health:           "Degraded",
			LatencyMS:        230,
			ErrorRate:        0.12,
			LastDeployment:   "v3.0.0",
			DeploymentStatus: "Rolling back",
			IncidentActive:   true,
			UpdatedAt:        "2026-08-31T00:00:00Z",
		})
	}))
	defer server.Close()

	dispatcher := NewDispatcher(WithStatusEndpoint(server.URL))

	result, err := dispatcher.Execute(context.Background(), "checkSystemStatus", "")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var snapshot StatusSnapshot
	if err := json.Unmarshal([]byte(result), &snapshot); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if snapshot.Simulated {
		t.Fatal("live snapshot marked simulated")
	}
	if !snapshot.IncidentActive || snapshot.Health != "Degraded" {
		t.Fatalf("endpoint snapshot not used: %+v", snapshot)
	}

	latest := dispatcher.LastSnapshot()
	if latest == nil || latest.LatencyMS != 230 {
		t.Fatalf("latest-known snapshot not updated: %+v", latest)
	}
}

func TestOpenPageSwitchesView(t *testing.T) {
	dispatcher := NewDispatcher()

	result, err := dispatcher.Execute(context.Background(), "openPage", `{"pageName":"LOGS_VIEW"}`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(result), &payload); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if payload["status"] != "success" || payload["view"] != "LOGS_VIEW" {
		t.Fatalf("unexpected result payload: %v", payload)
	}

	if view := dispatcher.ActiveView(); view != ViewLogs {
		t.Fatalf("expected LOGS_VIEW, got %q", view)
	}
}

func TestAutomatedActionReturnsLogSequence(t *testing.T) {
	dispatcher := NewDispatcher(WithActionDelay(0))

	start := time.Now()
	result, err := dispatcher.Execute(context.Background(), "performAutomatedAction",
		`{"taskDescription":"restart ingest workers","targetRegion":"europe-west1"}`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("action delay not overridden, took %v", elapsed)
	}

	var payload struct {
		Status string   `json:"status"`
		Task   string   `json:"task"`
		Region string   `json:"region"`
		Log    []string `json:"log"`
	}
	if err := json.Unmarshal([]byte(result), &payload); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if payload.Status != "completed" {
		t.Fatalf("unexpected status: %q", payload.Status)
	}
	if payload.Task != "restart ingest workers" || payload.Region != "europe-west1" {
		t.Fatalf("arguments not echoed: %+v", payload)
	}
	if len(payload.Log) != 3 {
		t.Fatalf("expected 3 log lines, got %d", len(payload.Log))
	}

	if view := dispatcher.ActiveView(); view != ViewAutomatedAction {
		t.Fatalf("expected AUTOMATED_ACTION view, got %q", view)
	}
	if dispatcher.ActiveTask() != "restart ingest workers" {
		t.Fatalf("task not recorded: %q", dispatcher.ActiveTask())
	}
}

func TestUnknownToolFails(t *testing.T) {
	dispatcher := NewDispatcher()

	_, err := dispatcher.Execute(context.Background(), "deleteProduction", "{}")
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
	if dispatcher.Busy() {
		t.Fatal("busy flag still set after failed Execute")
	}
}

func TestToolsRouteThroughExecute(t *testing.T) {
	dispatcher := NewDispatcher()

	tools := dispatcher.Tools()
	if len(tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(tools))
	}

	for _, tool := range tools {
		if tool.Function.Name == "openPage" {
			result, err := tool.Execute(context.Background(), `{"pageName":"DEPLOYMENT_HISTORY"}`)
			if err != nil {
				t.Fatalf("openPage tool failed: %v", err)
			}
			if !json.Valid([]byte(result)) {
				t.Fatalf("tool result is not valid JSON: %q", result)
			}
			if dispatcher.ActiveView() != ViewDeploymentHistory {
				t.Fatalf("view not switched, got %q", dispatcher.ActiveView())
			}
			return
		}
	}
	t.Fatal("openPage tool not found")
}
