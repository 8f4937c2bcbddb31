package conversations

import (
	"context"
	"errors"
	"testing"

	"github.com/koscakluka/voiceops-core/core/llms"
)

type stubAgent struct {
	responses []*llms.Response
	err       error

	prompts []llms.PromptOptions
}

func (a *stubAgent) Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Response, error) {
	options := llms.PromptOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	a.prompts = append(a.prompts, options)

	if a.err != nil {
		return nil, a.err
	}
	response := a.responses[0]
	if len(a.responses) > 1 {
		a.responses = a.responses[1:]
	}
	return response, nil
}

func TestSendTurnCommitsUserTurn(t *testing.T) {
	agent := &stubAgent{responses: []*llms.Response{{Content: "hello there"}}}
	session := NewSession(agent, WithInstructions("be brief"))

	response, err := session.SendTurn(context.Background(), "hello")
	if err != nil {
		t.Fatalf("SendTurn failed: %v", err)
	}
	if response.Content != "hello there" {
		t.Fatalf("unexpected response content: %q", response.Content)
	}

	history := session.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 turn in history, got %d", len(history))
	}
	if history[0].Role != llms.TurnRoleUser || history[0].Content != "hello" {
		t.Fatalf("unexpected first turn: %+v", history[0])
	}

	if len(agent.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(agent.prompts))
	}
	if agent.prompts[0].Instructions != "be brief" {
		t.Fatalf("instructions not forwarded: %q", agent.prompts[0].Instructions)
	}
	if len(agent.prompts[0].Turns) != 1 {
		t.Fatalf("expected prompt to carry 1 turn, got %d", len(agent.prompts[0].Turns))
	}
}

func TestSendTurnKeepsTurnOnFailure(t *testing.T) {
	agent := &stubAgent{err: errors.New("boom")}
	session := NewSession(agent)

	_, err := session.SendTurn(context.Background(), "hello")
	if !errors.Is(err, ErrAgentExchangeFailed) {
		t.Fatalf("expected ErrAgentExchangeFailed, got %v", err)
	}

	if history := session.History(); len(history) != 1 {
		t.Fatalf("expected user turn to stay committed, got %d turns", len(history))
	}
}

func TestSendToolResultsCarriesResolvedCalls(t *testing.T) {
	agent := &stubAgent{responses: []*llms.Response{{Content: "done"}}}
	session := NewSession(agent)

	calls := []llms.ToolCall{{ID: "call-1", Name: "runHealthCheck", Arguments: "{}", Response: `{"ok":true}`}}
	response, err := session.SendToolResults(context.Background(), "", calls)
	if err != nil {
		t.Fatalf("SendToolResults failed: %v", err)
	}
	if response.Content != "done" {
		t.Fatalf("unexpected response content: %q", response.Content)
	}

	history := session.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(history))
	}
	if history[0].Role != llms.TurnRoleAssistant {
		t.Fatalf("expected assistant turn, got %v", history[0].Role)
	}
	if len(history[0].ToolCalls) != 1 || history[0].ToolCalls[0].Response != `{"ok":true}` {
		t.Fatalf("tool call not committed with response: %+v", history[0].ToolCalls)
	}
}

func TestCommitReplyAppendsAssistantTurn(t *testing.T) {
	session := NewSession(&stubAgent{responses: []*llms.Response{{}}})
	session.CommitReply("final answer")

	history := session.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(history))
	}
	if history[0].Role != llms.TurnRoleAssistant || history[0].Content != "final answer" {
		t.Fatalf("unexpected turn: %+v", history[0])
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	session := NewSession(&stubAgent{responses: []*llms.Response{{}}})
	session.CommitReply("a")

	history := session.History()
	history[0].Content = "mutated"

	if session.History()[0].Content != "a" {
		t.Fatal("History exposed internal slice")
	}
}
