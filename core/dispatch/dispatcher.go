package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultStatusURL   = "https://status.voiceops.internal/api/v1/status"
	defaultActionDelay = 2 * time.Second
)

// ErrUnknownTool is returned when Execute is asked to run a tool name it does
// not recognize.
var ErrUnknownTool = errors.New("unknown tool")

// Dispatcher executes the named operations the agent may request and tracks
// the dashboard state those operations drive: the active view, the
// latest-known status snapshot, and a busy flag that is true for the duration
// of every Execute call.
type Dispatcher struct {
	HTTPClient *http.Client

	statusURL   string
	actionDelay time.Duration

	mu           sync.Mutex
	busy         bool
	activeView   View
	lastSnapshot *StatusSnapshot
	activeTask   string
}

type Option func(*Dispatcher)

// WithStatusEndpoint overrides the URL fetched by runHealthCheck and
// checkSystemStatus.
func WithStatusEndpoint(url string) Option {
	return func(d *Dispatcher) {
		d.statusURL = url
	}
}

// WithActionDelay overrides the simulated hold inside performAutomatedAction.
func WithActionDelay(delay time.Duration) Option {
	return func(d *Dispatcher) {
		d.actionDelay = delay
	}
}

func NewDispatcher(opts ...Option) *Dispatcher {
	dispatcher := &Dispatcher{
		HTTPClient:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		statusURL:   defaultStatusURL,
		actionDelay: defaultActionDelay,
		activeView:  ViewIdle,
	}
	for _, opt := range opts {
		opt(dispatcher)
	}
	return dispatcher
}

// Busy reports whether an Execute call is currently running.
func (d *Dispatcher) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy
}

// ActiveView returns the dashboard view most recently selected by a tool.
func (d *Dispatcher) ActiveView() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activeView
}

// LastSnapshot returns the latest-known status snapshot, or nil before the
// first status fetch.
func (d *Dispatcher) LastSnapshot() *StatusSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lastSnapshot == nil {
		return nil
	}
	snapshot := *d.lastSnapshot
	return &snapshot
}

// ActiveTask returns the task description recorded by the most recent
// performAutomatedAction call.
func (d *Dispatcher) ActiveTask() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activeTask
}

// Execute runs the named tool with raw JSON arguments and returns a JSON
// result. The busy flag is set for the whole call, including failures.
func (d *Dispatcher) Execute(ctx context.Context, name string, arguments string) (string, error) {
	ctx, span := tracer.Start(ctx, "dispatch tool")
	defer span.End()
	span.SetAttributes(attribute.String("tool.name", name))

	d.setBusy(true)
	defer d.setBusy(false)

	switch name {
	case "runHealthCheck", "checkSystemStatus":
		return d.executeStatusCheck(ctx)
	case "openPage":
		return d.executeOpenPage(arguments)
	case "performAutomatedAction":
		return d.executeAutomatedAction(ctx, arguments)
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownTool, name)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
}

func (d *Dispatcher) executeStatusCheck(ctx context.Context) (string, error) {
	snapshot := d.fetchStatus(ctx)

	d.mu.Lock()
	d.lastSnapshot = &snapshot
	d.activeView = ViewMetricsDashboard
	d.mu.Unlock()

	result, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to serialize status snapshot: %w", err)
	}
	return string(result), nil
}

// fetchStatus never fails: any network or non-2xx response substitutes the
// simulated snapshot so the dashboard always has something to show.
func (d *Dispatcher) fetchStatus(ctx context.Context) StatusSnapshot {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.statusURL, nil)
	if err != nil {
		return simulatedSnapshot(time.Now())
	}

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		logger.WarnContext(ctx, "status fetch failed, substituting simulated snapshot", "error", err)
		return simulatedSnapshot(time.Now())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WarnContext(ctx, "status endpoint returned non-2xx, substituting simulated snapshot", "status", resp.StatusCode)
		return simulatedSnapshot(time.Now())
	}

	var snapshot StatusSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		logger.WarnContext(ctx, "status body unreadable, substituting simulated snapshot", "error", err)
		return simulatedSnapshot(time.Now())
	}
	return snapshot
}

func (d *Dispatcher) executeOpenPage(arguments string) (string, error) {
	var args openPageArgs
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("failed to parse openPage arguments: %w", err)
		}
	}

	view := View(args.PageName)
	if !isKnownView(args.PageName) {
		view = ViewIncidentSummary
	}

	d.mu.Lock()
	d.activeView = view
	d.mu.Unlock()

	result, err := json.Marshal(map[string]string{
		"status": "success",
		"view":   string(view),
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize openPage result: %w", err)
	}
	return string(result), nil
}

func (d *Dispatcher) executeAutomatedAction(ctx context.Context, arguments string) (string, error) {
	var args automatedActionArgs
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("failed to parse performAutomatedAction arguments: %w", err)
		}
	}

	d.mu.Lock()
	d.activeView = ViewAutomatedAction
	d.activeTask = args.TaskDescription
	d.mu.Unlock()

	timer := time.NewTimer(d.actionDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	region := args.TargetRegion
	if region == "" {
		region = "us-central1"
	}
	result, err := json.Marshal(map[string]any{
		"status": "completed",
		"task":   args.TaskDescription,
		"region": region,
		"log": []string{
			"Navigating to GCP Console",
			"Verifying IAM permissions",
			"Executing script",
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize action result: %w", err)
	}
	return string(result), nil
}

func (d *Dispatcher) setBusy(busy bool) {
	d.mu.Lock()
	d.busy = busy
	d.mu.Unlock()
}
