package conversations

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/koscakluka/voiceops-core/core/llms"
)

// ErrAgentExchangeFailed wraps any failure to obtain a model response for a
// turn. Turns already committed to history stay committed.
var ErrAgentExchangeFailed = errors.New("agent exchange failed")

// Agent produces one model round per Prompt call. Requested tool calls are
// returned in the response, not executed.
type Agent interface {
	Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Response, error)
}

// Session owns the ordered turn history of a single conversation and
// mediates every exchange with the agent. History only grows; there is no
// rewriting of past turns.
type Session struct {
	ID string

	agent        Agent
	instructions string
	tools        []llms.Tool

	mu    sync.Mutex
	turns []llms.Turn
}

type SessionOption func(*Session)

// WithInstructions sets the system prompt sent with every exchange.
func WithInstructions(instructions string) SessionOption {
	return func(s *Session) {
		s.instructions = instructions
	}
}

// WithTools sets the tools advertised on every exchange.
func WithTools(tools ...llms.Tool) SessionOption {
	return func(s *Session) {
		s.tools = append(s.tools, tools...)
	}
}

func NewSession(agent Agent, opts ...SessionOption) *Session {
	session := &Session{
		ID:    uuid.NewString(),
		agent: agent,
	}
	for _, opt := range opts {
		opt(session)
	}
	return session
}

// History returns a copy of the committed turns, oldest first.
func (s *Session) History() []llms.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := make([]llms.Turn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

// Tools returns the tools advertised to the agent.
func (s *Session) Tools() []llms.Tool {
	return s.tools
}

// SendTurn commits the user's text as a turn and requests the agent's
// response to the updated history. The user turn is committed even when the
// exchange fails, so a retry does not lose what was said.
func (s *Session) SendTurn(ctx context.Context, text string) (*llms.Response, error) {
	s.mu.Lock()
	s.turns = append(s.turns, llms.Turn{Role: llms.TurnRoleUser, Content: text})
	history := make([]llms.Turn, len(s.turns))
	copy(history, s.turns)
	s.mu.Unlock()

	return s.prompt(ctx, history)
}

// SendToolResults commits an assistant turn carrying resolved tool calls and
// requests the agent's follow-up response. Every tool call must have its
// Response populated.
func (s *Session) SendToolResults(ctx context.Context, content string, toolCalls []llms.ToolCall) (*llms.Response, error) {
	s.mu.Lock()
	s.turns = append(s.turns, llms.Turn{
		Role:      llms.TurnRoleAssistant,
		Content:   content,
		ToolCalls: toolCalls,
	})
	history := make([]llms.Turn, len(s.turns))
	copy(history, s.turns)
	s.mu.Unlock()

	return s.prompt(ctx, history)
}

// CommitReply appends the assistant's final spoken text to history.
func (s *Session) CommitReply(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, llms.Turn{Role: llms.TurnRoleAssistant, Content: text})
}

func (s *Session) prompt(ctx context.Context, history []llms.Turn) (*llms.Response, error) {
	response, err := s.agent.Prompt(ctx, "",
		llms.WithSystemPrompt(s.instructions),
		llms.WithTurns(history...),
		llms.WithTools(s.tools...),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAgentExchangeFailed, err)
	}
	if response == nil {
		return nil, fmt.Errorf("%w: agent returned no response", ErrAgentExchangeFailed)
	}
	return response, nil
}
