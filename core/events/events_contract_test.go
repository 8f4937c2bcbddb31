package events

import (
	"testing"
	"time"
)

func TestConstructorsEmitExpectedKinds(t *testing.T) {
	testCases := []struct {
		name     string
		event    Event
		expected Kind
	}{
		{name: "session phase changed", event: NewSessionPhaseChanged("Listening", "Idle"), expected: KindSessionPhaseChanged},
		{name: "session error raised", event: NewSessionErrorRaised("boom"), expected: KindSessionErrorRaised},
		{name: "transcript entry appended", event: NewTranscriptEntryAppended("id", "User", "hi", time.Now()), expected: KindTranscriptEntryAppended},
		{name: "transcript cleared", event: NewTranscriptCleared(), expected: KindTranscriptCleared},
		{name: "suggestions updated", event: NewSuggestionsUpdated([]string{"a"}, false), expected: KindSuggestionsUpdated},
		{name: "tool call started", event: NewToolCallStarted("id", "openPage", "{}"), expected: KindToolCallStarted},
		{name: "tool call completed", event: NewToolCallCompleted("id", "openPage", "{}"), expected: KindToolCallCompleted},
		{name: "tool call failed", event: NewToolCallFailed("id", "openPage", "boom"), expected: KindToolCallFailed},
		{name: "dashboard view changed", event: NewDashboardViewChanged("LOGS_VIEW"), expected: KindDashboardViewChanged},
		{name: "dispatch busy changed", event: NewDispatchBusyChanged(true), expected: KindDispatchBusyChanged},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.event.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestTimestampsAreSet(t *testing.T) {
	event := NewTranscriptCleared()
	if event.Timestamp().IsZero() {
		t.Fatal("expected timestamp to be set")
	}
}
