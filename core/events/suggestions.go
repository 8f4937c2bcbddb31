package events

const (
	// KindSuggestionsUpdated identifies a wholesale suggestion set replacement.
	KindSuggestionsUpdated Kind = "suggestions.updated"
)

// SuggestionsUpdated marks the suggestion set being replaced. Visible is
// false while the reply is still being spoken and true once playback has
// finished.
type SuggestionsUpdated struct {
	Base
	Suggestions []string
	Visible     bool
}

// NewSuggestionsUpdated creates a suggestions updated event.
func NewSuggestionsUpdated(suggestions []string, visible bool) SuggestionsUpdated {
	return SuggestionsUpdated{Base: NewBase(KindSuggestionsUpdated), Suggestions: suggestions, Visible: visible}
}
