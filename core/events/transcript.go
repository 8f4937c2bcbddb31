package events

import "time"

const (
	// KindTranscriptEntryAppended identifies a committed transcript entry.
	KindTranscriptEntryAppended Kind = "transcript.entry_appended"
	// KindTranscriptCleared identifies an explicit transcript clear.
	KindTranscriptCleared Kind = "transcript.cleared"
)

// TranscriptEntryAppended marks a resolved utterance committed to the log.
type TranscriptEntryAppended struct {
	Base
	ID         string
	Speaker    string
	Text       string
	CapturedAt time.Time
}

// NewTranscriptEntryAppended creates a transcript entry appended event.
func NewTranscriptEntryAppended(id, speaker, text string, capturedAt time.Time) TranscriptEntryAppended {
	return TranscriptEntryAppended{
		Base:       NewBase(KindTranscriptEntryAppended),
		ID:         id,
		Speaker:    speaker,
		Text:       text,
		CapturedAt: capturedAt,
	}
}

// TranscriptCleared marks the log being emptied.
type TranscriptCleared struct {
	Base
}

// NewTranscriptCleared creates a transcript cleared event.
func NewTranscriptCleared() TranscriptCleared {
	return TranscriptCleared{Base: NewBase(KindTranscriptCleared)}
}
