package orchestration

import "testing"

func TestTranscriptAppendsInOrder(t *testing.T) {
	log := &transcriptLog{}
	log.append(SpeakerUser, "first")
	log.append(SpeakerAgent, "second")

	entries := log.snapshot()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text != "first" || entries[1].Text != "second" {
		t.Fatalf("entries out of order: %v", entries)
	}
	if entries[0].ID == entries[1].ID {
		t.Fatal("expected distinct entry IDs")
	}
	if entries[0].CapturedAt.IsZero() {
		t.Fatal("expected CapturedAt to be set")
	}
}

func TestTranscriptClearIsIdempotent(t *testing.T) {
	log := &transcriptLog{}
	log.append(SpeakerUser, "something")

	log.clear()
	log.clear()

	if entries := log.snapshot(); len(entries) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(entries))
	}
}

func TestTranscriptSnapshotIsACopy(t *testing.T) {
	log := &transcriptLog{}
	log.append(SpeakerUser, "original")

	entries := log.snapshot()
	entries[0].Text = "mutated"

	if log.snapshot()[0].Text != "original" {
		t.Fatal("snapshot exposed internal slice")
	}
}
