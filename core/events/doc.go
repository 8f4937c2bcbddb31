// Package events defines the typed orchestration event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - session.*
//   - transcript.*
//   - suggestions.*
//   - tool_call.*
//   - dashboard.*
//
// session events
//
//   - SessionPhaseChanged (session.phase_changed): the session moved to a new
//     phase.
//   - SessionErrorRaised (session.error_raised): an unrecoverable step failure
//     drove the session into its error phase.
//
// transcript events
//
//   - TranscriptEntryAppended (transcript.entry_appended): a resolved user or
//     assistant utterance was committed to the log.
//   - TranscriptCleared (transcript.cleared): the log was emptied by an
//     explicit user action.
//
// suggestions events
//
//   - SuggestionsUpdated (suggestions.updated): the suggestion set was
//     replaced; Visible reports whether it may be shown yet.
//
// tool_call events
//
//   - ToolCallStarted (tool_call.started): tool execution started.
//   - ToolCallCompleted (tool_call.completed): tool execution completed.
//   - ToolCallFailed (tool_call.failed): tool execution failed.
//
// dashboard events
//
//   - DashboardViewChanged (dashboard.view_changed): a tool switched the
//     active dashboard view.
//   - DispatchBusyChanged (dashboard.dispatch_busy_changed): tool execution
//     began or ended; drives the dashboard loading indicator.
package events
