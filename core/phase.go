package orchestration

// Phase is the session's current position in the turn cycle. Exactly one
// phase is active at a time and only the orchestrator mutates it.
type Phase string

const (
	PhaseIdle       Phase = "Idle"
	PhaseListening  Phase = "Listening"
	PhaseThinking   Phase = "Thinking"
	PhaseResponding Phase = "Responding"
	PhaseError      Phase = "Error"
)

func (p Phase) String() string {
	return string(p)
}
