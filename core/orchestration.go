package orchestration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/koscakluka/voiceops-core/core/audio"
	"github.com/koscakluka/voiceops-core/core/events"
)

const (
	defaultErrorRecoveryDelay = 3 * time.Second
	defaultMaxToolRounds      = 8
)

// Orchestrator owns the session state machine and drives one full cycle per
// user utterance: capture, transcribe, agent exchange with bounded tool
// resolution, then spoken playback. At most one cycle is in flight at a time.
type Orchestrator struct {
	speechToText SpeechToText
	synthesizer  SpeechSynthesizer
	audioInput   AudioInput
	session      AgentSession
	dispatcher   ToolDispatcher

	errorRecoveryDelay time.Duration
	maxToolRounds      int

	emit        eventEmitter
	baseContext context.Context
	closeOnce   sync.Once

	mu                 sync.Mutex
	phase              Phase
	inFlight           bool
	phaseGeneration    uint64
	suggestions        []string
	suggestionsVisible bool
	captured           []byte

	transcript transcriptLog
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		errorRecoveryDelay: defaultErrorRecoveryDelay,
		maxToolRounds:      defaultMaxToolRounds,
		emit:               noopEventEmitter,
		baseContext:        context.Background(),
		phase:              PhaseIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Orchestrate wires presentation callbacks and the base context used by
// every subsequent cycle.
//
// Contract: call Orchestrate at most once per orchestrator instance, before
// any capture starts.
func (o *Orchestrator) Orchestrate(ctx context.Context, opts ...OrchestrateOption) {
	options := OrchestrateOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	o.baseContext = ctx
	o.emit = newCallbackEventEmitter(options)
}

func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		if o.audioInput == nil {
			return
		}
		if err := o.audioInput.Stop(); err != nil {
			recordedErr := fmt.Errorf("failed to stop audio input: %w", err)
			span := trace.SpanFromContext(o.baseContext)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
		}
	})
}

// Phase returns the session's current phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// Transcript returns a copy of the committed transcript log.
func (o *Orchestrator) Transcript() []TranscriptEntry {
	return o.transcript.snapshot()
}

// Suggestions returns the current suggestion set and whether it may be
// shown yet.
func (o *Orchestrator) Suggestions() ([]string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	suggestions := make([]string, len(o.suggestions))
	copy(suggestions, o.suggestions)
	return suggestions, o.suggestionsVisible
}

// StartCapture begins microphone capture and enters the listening phase.
// Attempts while a cycle is already in flight are silently dropped.
func (o *Orchestrator) StartCapture() {
	o.mu.Lock()
	if o.inFlight {
		o.mu.Unlock()
		return
	}
	o.inFlight = true
	o.captured = nil
	o.mu.Unlock()

	if o.audioInput == nil {
		o.failCycle(fmt.Errorf("%w: no audio input configured", audio.ErrPermissionDenied))
		return
	}

	if err := o.audioInput.Start(o.baseContext, func(chunk []byte) {
		o.mu.Lock()
		o.captured = append(o.captured, chunk...)
		o.mu.Unlock()
	}); err != nil {
		o.failCycle(fmt.Errorf("failed to start audio capture: %w", err))
		return
	}

	o.setPhase(PhaseListening)
}

// StopCapture finalizes the captured segment and runs the rest of the cycle.
// A no-op unless the session is listening.
func (o *Orchestrator) StopCapture() {
	o.mu.Lock()
	if o.phase != PhaseListening {
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()

	// The microphone is released exactly once, before the cycle continues.
	if err := o.audioInput.Stop(); err != nil {
		o.failCycle(fmt.Errorf("failed to stop audio capture: %w", err))
		return
	}

	o.mu.Lock()
	data := o.captured
	o.captured = nil
	o.mu.Unlock()

	segment := audio.NewSegment(data, o.audioInput.EncodingInfo())

	o.setPhase(PhaseThinking)
	go o.runCycle(o.baseContext, &segment, "")
}

// SendPrompt runs a turn from literal text, bypassing capture and
// transcription. Used for suggestion chip selection. Attempts while a cycle
// is in flight are silently dropped.
func (o *Orchestrator) SendPrompt(prompt string) {
	o.mu.Lock()
	if o.inFlight {
		o.mu.Unlock()
		return
	}
	o.inFlight = true
	o.mu.Unlock()

	o.setPhase(PhaseThinking)
	go o.runCycle(o.baseContext, nil, prompt)
}

// ClearTranscript empties the transcript log. Idempotent.
func (o *Orchestrator) ClearTranscript() {
	o.transcript.clear()
	o.emit(events.NewTranscriptCleared())
}

func (o *Orchestrator) setPhase(phase Phase) {
	o.mu.Lock()
	previous := o.phase
	o.phase = phase
	o.phaseGeneration++
	o.mu.Unlock()

	if previous != phase {
		o.emit(events.NewSessionPhaseChanged(string(phase), string(previous)))
	}
}

// settleCycle releases the in-flight guard and returns to idle.
func (o *Orchestrator) settleCycle() {
	o.mu.Lock()
	o.inFlight = false
	o.mu.Unlock()
	o.setPhase(PhaseIdle)
}

// failCycle surfaces an unrecoverable step failure: the session enters the
// error phase, the guard is released, and the phase auto-clears back to idle
// after the recovery delay. No retry is attempted.
func (o *Orchestrator) failCycle(err error) {
	logger.ErrorContext(o.baseContext, "turn cycle failed", "error", err)
	o.emit(events.NewSessionErrorRaised(err.Error()))

	o.mu.Lock()
	o.inFlight = false
	o.mu.Unlock()
	o.setPhase(PhaseError)

	o.mu.Lock()
	generation := o.phaseGeneration
	o.mu.Unlock()

	time.AfterFunc(o.errorRecoveryDelay, func() {
		o.mu.Lock()
		stale := o.phaseGeneration != generation || o.phase != PhaseError
		o.mu.Unlock()
		if stale {
			return
		}
		o.setPhase(PhaseIdle)
	})
}
