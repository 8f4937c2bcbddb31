package orchestration

import (
	"context"
	"time"

	"github.com/koscakluka/voiceops-core/core/audio"
	"github.com/koscakluka/voiceops-core/core/dispatch"
	"github.com/koscakluka/voiceops-core/core/llms"
	"github.com/koscakluka/voiceops-core/core/speechtotext"
	"github.com/koscakluka/voiceops-core/core/texttospeech"
)

type OrchestratorOption func(*Orchestrator)

type SpeechToText interface {
	Transcribe(ctx context.Context, segment audio.Segment, opts ...speechtotext.TranscriptionOption) (string, error)
}

func WithSpeechToTextClient(client SpeechToText) OrchestratorOption {
	return func(o *Orchestrator) {
		o.speechToText = client
	}
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, opts ...texttospeech.SynthesisOption) (texttospeech.Speech, error)
}

func WithSpeechSynthesizer(client SpeechSynthesizer) OrchestratorOption {
	return func(o *Orchestrator) {
		o.synthesizer = client
	}
}

type AudioInput interface {
	EncodingInfo() audio.EncodingInfo
	Start(ctx context.Context, onAudio func(chunk []byte)) error
	Stop() error
}

func WithAudioInput(client AudioInput) OrchestratorOption {
	return func(o *Orchestrator) {
		o.audioInput = client
	}
}

type AgentSession interface {
	SendTurn(ctx context.Context, text string) (*llms.Response, error)
	SendToolResults(ctx context.Context, content string, toolCalls []llms.ToolCall) (*llms.Response, error)
	CommitReply(text string)
}

func WithAgentSession(session AgentSession) OrchestratorOption {
	return func(o *Orchestrator) {
		o.session = session
	}
}

type ToolDispatcher interface {
	Execute(ctx context.Context, name string, arguments string) (string, error)
	ActiveView() dispatch.View
	Busy() bool
}

func WithDispatcher(dispatcher ToolDispatcher) OrchestratorOption {
	return func(o *Orchestrator) {
		o.dispatcher = dispatcher
	}
}

// WithErrorRecoveryDelay overrides how long the session stays in its error
// phase before auto-clearing back to idle.
func WithErrorRecoveryDelay(delay time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.errorRecoveryDelay = delay
	}
}

// WithMaxToolRounds overrides the cap on tool-call rounds within one turn.
func WithMaxToolRounds(rounds int) OrchestratorOption {
	return func(o *Orchestrator) {
		if rounds > 0 {
			o.maxToolRounds = rounds
		}
	}
}

type OrchestrateOptions struct {
	onPhaseChanged        func(Phase)
	onTranscriptEntry     func(TranscriptEntry)
	onTranscriptCleared   func()
	onSuggestionsUpdated  func(suggestions []string, visible bool)
	onToolCallStarted     func(name string, arguments string)
	onToolCallResolved    func(name string, response string, failed bool)
	onViewChanged         func(view string)
	onDispatchBusyChanged func(busy bool)
	onError               func(message string)
}

type OrchestrateOption func(*OrchestrateOptions)

func OnPhaseChanged(callback func(Phase)) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onPhaseChanged = callback }
}

func OnTranscriptEntry(callback func(TranscriptEntry)) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onTranscriptEntry = callback }
}

func OnTranscriptCleared(callback func()) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onTranscriptCleared = callback }
}

func OnSuggestionsUpdated(callback func(suggestions []string, visible bool)) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onSuggestionsUpdated = callback }
}

func OnToolCallStarted(callback func(name string, arguments string)) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onToolCallStarted = callback }
}

func OnToolCallResolved(callback func(name string, response string, failed bool)) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onToolCallResolved = callback }
}

func OnViewChanged(callback func(view string)) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onViewChanged = callback }
}

func OnDispatchBusyChanged(callback func(busy bool)) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onDispatchBusyChanged = callback }
}

func OnError(callback func(message string)) OrchestrateOption {
	return func(opts *OrchestrateOptions) { opts.onError = callback }
}
