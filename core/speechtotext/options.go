package speechtotext

import "errors"

var (
	// ErrEmptyAudio rejects transcription of an empty segment before any
	// network round-trip happens.
	ErrEmptyAudio = errors.New("empty audio segment")
	// ErrTranscriptionFailed wraps provider failures during transcription.
	ErrTranscriptionFailed = errors.New("transcription failed")
)

type TranscriptionOptions struct {
	Model    string
	Language string
}

type TranscriptionOption func(*TranscriptionOptions)

func WithModel(model string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Model = model
	}
}

func WithLanguage(language string) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.Language = language
	}
}
