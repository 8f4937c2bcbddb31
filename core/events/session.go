package events

const (
	// KindSessionPhaseChanged identifies a session phase transition.
	KindSessionPhaseChanged Kind = "session.phase_changed"
	// KindSessionErrorRaised identifies an unrecoverable step failure.
	KindSessionErrorRaised Kind = "session.error_raised"
)

// SessionPhaseChanged marks a transition of the session state machine.
type SessionPhaseChanged struct {
	Base
	Phase    string
	Previous string
}

// NewSessionPhaseChanged creates a session phase changed event.
func NewSessionPhaseChanged(phase, previous string) SessionPhaseChanged {
	return SessionPhaseChanged{Base: NewBase(KindSessionPhaseChanged), Phase: phase, Previous: previous}
}

// SessionErrorRaised marks the failure that drove the session into its error
// phase.
type SessionErrorRaised struct {
	Base
	Error string
}

// NewSessionErrorRaised creates a session error raised event.
func NewSessionErrorRaised(err string) SessionErrorRaised {
	return SessionErrorRaised{Base: NewBase(KindSessionErrorRaised), Error: err}
}
