package llms

// Response is a single reply from an LLM. ToolCalls, when present, are the
// tool invocations the model requested; executing them and reporting the
// results back is the caller's job.
type Response struct {
	Content   string
	ToolCalls []ToolCall
}

// Turn is a single turn taken in the conversation.
type Turn struct {
	Role TurnRole

	// Content is the content of the turn.
	// In the user's turn it is the prompt, in the assistant's turn it is the
	// response.
	Content   string
	ToolCalls []ToolCall
}

type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// ToolCall is one tool invocation requested by the model, optionally carrying
// the response it was answered with.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
	Response  string
}
