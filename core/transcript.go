package orchestration

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Speaker string

const (
	SpeakerUser  Speaker = "User"
	SpeakerAgent Speaker = "Agent"
)

// TranscriptEntry is one resolved utterance. Entries are append-only and
// never mutated after commit.
type TranscriptEntry struct {
	ID         string
	Speaker    Speaker
	Text       string
	CapturedAt time.Time
}

type transcriptLog struct {
	mu      sync.Mutex
	entries []TranscriptEntry
}

func (l *transcriptLog) append(speaker Speaker, text string) TranscriptEntry {
	entry := TranscriptEntry{
		ID:         uuid.NewString(),
		Speaker:    speaker,
		Text:       text,
		CapturedAt: time.Now(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()
	return entry
}

// clear empties the log. Clearing an already empty log is a no-op.
func (l *transcriptLog) clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

func (l *transcriptLog) snapshot() []TranscriptEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]TranscriptEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}
