package llms

// PromptOptions is a struct that contains all the options for a prompt.
type PromptOptions struct {
	Instructions    string
	Turns           []Turn
	Tools           []Tool
	Stream          func(string)
	ForcedToolsCall bool
}

// PromptOption is a function that can be used to modify the prompt options.
type PromptOption func(*PromptOptions)

// WithSystemPrompt sets the system prompt. Repeating this option overwrites
// the previous system prompt.
func WithSystemPrompt(prompt string) PromptOption {
	return func(opts *PromptOptions) {
		opts.Instructions = prompt
	}
}

// WithTurns adds conversation turns to the prompt. Repeating this option
// sequentially adds more turns.
func WithTurns(turns ...Turn) PromptOption {
	return func(opts *PromptOptions) {
		opts.Turns = append(opts.Turns, turns...)
	}
}

// WithTools adds tools to the prompt.
func WithTools(tools ...Tool) PromptOption {
	return func(opts *PromptOptions) {
		opts.Tools = append(opts.Tools, tools...)
	}
}

// WithStream sets a callback invoked with response content as it arrives.
func WithStream(stream func(string)) PromptOption {
	return func(opts *PromptOptions) {
		opts.Stream = stream
	}
}

// WithForcedTools forces the model to call a tool on this prompt. Note that
// any available tool can be used, not just the ones passed into this option.
func WithForcedTools(tools ...Tool) PromptOption {
	return func(opts *PromptOptions) {
		opts.Tools = append(opts.Tools, tools...)
		opts.ForcedToolsCall = true
	}
}
