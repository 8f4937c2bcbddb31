package orchestration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/koscakluka/voiceops-core/core/audio"
	"github.com/koscakluka/voiceops-core/core/events"
	"github.com/koscakluka/voiceops-core/core/llms"
	"github.com/koscakluka/voiceops-core/core/speechtotext"
)

// toolReportPrefix is the fixed wrapper around serialized tool results sent
// back into the dialogue as follow-up turns.
const toolReportPrefix = "Grounded Report: "

// minSpokenLength is the shortest transcript or reply treated as real
// content. Anything shorter aborts the cycle silently.
const minSpokenLength = 2

// runCycle drives one turn from resolved input to settled phase. Steps are
// strictly sequential; the in-flight guard set by the caller keeps two
// cycles from interleaving.
func (o *Orchestrator) runCycle(ctx context.Context, segment *audio.Segment, literal string) {
	ctx, span := tracer.Start(ctx, "turn cycle")
	defer span.End()

	// A new turn invalidates whatever suggestions were showing.
	o.replaceSuggestions(nil, false)

	text := literal
	if segment != nil {
		transcript, err := o.speechToText.Transcribe(ctx, *segment)
		if err != nil {
			if errors.Is(err, speechtotext.ErrEmptyAudio) {
				o.settleCycle()
				return
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			o.failCycle(err)
			return
		}
		text = transcript
	}

	if len(strings.TrimSpace(text)) < minSpokenLength {
		o.settleCycle()
		return
	}

	userEntry := o.transcript.append(SpeakerUser, text)
	o.emit(events.NewTranscriptEntryAppended(userEntry.ID, string(userEntry.Speaker), userEntry.Text, userEntry.CapturedAt))

	response, err := o.session.SendTurn(ctx, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.failCycle(err)
		return
	}

	response, err = o.resolveToolCalls(ctx, response)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.failCycle(err)
		return
	}

	spoken, suggestions := parseSuggestions(response.Content)
	if len(strings.TrimSpace(spoken)) < minSpokenLength {
		o.settleCycle()
		return
	}

	o.setPhase(PhaseResponding)

	agentEntry := o.transcript.append(SpeakerAgent, spoken)
	o.emit(events.NewTranscriptEntryAppended(agentEntry.ID, string(agentEntry.Speaker), agentEntry.Text, agentEntry.CapturedAt))
	o.session.CommitReply(response.Content)
	o.replaceSuggestions(suggestions, false)

	speech, err := o.synthesizer.Synthesize(ctx, spoken)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.failCycle(err)
		return
	}
	if err := speech.Play(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.failCycle(err)
		return
	}

	// Suggestions become selectable only once the reply finished playing.
	o.replaceSuggestions(suggestions, true)
	o.settleCycle()
}

// resolveToolCalls dispatches every requested tool in order, sending each
// serialized result back as its own follow-up turn, until a reply arrives
// with no further requests. That reply is the one spoken.
func (o *Orchestrator) resolveToolCalls(ctx context.Context, response *llms.Response) (*llms.Response, error) {
	ctx, span := tracer.Start(ctx, "resolve tool calls")
	defer span.End()

	rounds := 0
	for len(response.ToolCalls) > 0 {
		if rounds >= o.maxToolRounds {
			return nil, fmt.Errorf("%w: agent still requesting tools after %d rounds", ErrToolLoopExceeded, rounds)
		}
		rounds++

		calls := response.ToolCalls
		for _, call := range calls {
			o.emit(events.NewToolCallStarted(call.ID, call.Name, call.Arguments))
			result := o.dispatchToolCall(ctx, call)

			call.Response = toolReportPrefix + result
			followUp, err := o.session.SendToolResults(ctx, "", []llms.ToolCall{call})
			if err != nil {
				return nil, err
			}
			response = followUp
		}
	}

	span.SetAttributes(attribute.Int("tool_rounds", rounds))
	return response, nil
}

// dispatchToolCall executes one tool and always produces a serialized
// result: failures, unknown tool names included, are converted into an error
// payload so the follow-up turn still completes and the dialogue can comment
// on it.
func (o *Orchestrator) dispatchToolCall(ctx context.Context, call llms.ToolCall) string {
	o.emit(events.NewDispatchBusyChanged(true))
	defer o.emit(events.NewDispatchBusyChanged(false))

	if o.dispatcher == nil {
		payload, _ := json.Marshal(map[string]string{"status": "error", "error": "no tool dispatcher configured"})
		o.emit(events.NewToolCallFailed(call.ID, call.Name, "no tool dispatcher configured"))
		return string(payload)
	}

	previousView := o.dispatcher.ActiveView()

	result, err := o.dispatcher.Execute(ctx, call.Name, call.Arguments)
	if err != nil {
		payload, _ := json.Marshal(map[string]string{"status": "error", "error": err.Error()})
		result = string(payload)
		o.emit(events.NewToolCallFailed(call.ID, call.Name, err.Error()))
	} else {
		o.emit(events.NewToolCallCompleted(call.ID, call.Name, result))
	}

	if view := o.dispatcher.ActiveView(); view != previousView {
		o.emit(events.NewDashboardViewChanged(string(view)))
	}
	return result
}

func (o *Orchestrator) replaceSuggestions(suggestions []string, visible bool) {
	o.mu.Lock()
	o.suggestions = suggestions
	o.suggestionsVisible = visible
	o.mu.Unlock()
	o.emit(events.NewSuggestionsUpdated(suggestions, visible))
}
