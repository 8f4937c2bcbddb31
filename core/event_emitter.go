package orchestration

import "github.com/koscakluka/voiceops-core/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(opts OrchestrateOptions) eventEmitter {
	return func(event events.Event) {
		switch typedEvent := event.(type) {
		case events.SessionPhaseChanged:
			if opts.onPhaseChanged != nil {
				opts.onPhaseChanged(Phase(typedEvent.Phase))
			}
		case events.SessionErrorRaised:
			if opts.onError != nil {
				opts.onError(typedEvent.Error)
			}
		case events.TranscriptEntryAppended:
			if opts.onTranscriptEntry != nil {
				opts.onTranscriptEntry(TranscriptEntry{
					ID:         typedEvent.ID,
					Speaker:    Speaker(typedEvent.Speaker),
					Text:       typedEvent.Text,
					CapturedAt: typedEvent.CapturedAt,
				})
			}
		case events.TranscriptCleared:
			if opts.onTranscriptCleared != nil {
				opts.onTranscriptCleared()
			}
		case events.SuggestionsUpdated:
			if opts.onSuggestionsUpdated != nil {
				opts.onSuggestionsUpdated(typedEvent.Suggestions, typedEvent.Visible)
			}
		case events.ToolCallStarted:
			if opts.onToolCallStarted != nil {
				opts.onToolCallStarted(typedEvent.Name, typedEvent.Arguments)
			}
		case events.ToolCallCompleted:
			if opts.onToolCallResolved != nil {
				opts.onToolCallResolved(typedEvent.Name, typedEvent.Response, false)
			}
		case events.ToolCallFailed:
			if opts.onToolCallResolved != nil {
				opts.onToolCallResolved(typedEvent.Name, typedEvent.Error, true)
			}
		case events.DashboardViewChanged:
			if opts.onViewChanged != nil {
				opts.onViewChanged(typedEvent.View)
			}
		case events.DispatchBusyChanged:
			if opts.onDispatchBusyChanged != nil {
				opts.onDispatchBusyChanged(typedEvent.Busy)
			}
		}
	}
}
