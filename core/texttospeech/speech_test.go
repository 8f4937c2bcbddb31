package texttospeech

import (
	"context"
	"errors"
	"testing"

	"github.com/koscakluka/voiceops-core/core/audio"
)

type recordingPlayer struct {
	played   [][]byte
	encoding audio.EncodingInfo
	err      error
}

func (p *recordingPlayer) Play(ctx context.Context, data []byte, encoding audio.EncodingInfo) error {
	p.played = append(p.played, data)
	p.encoding = encoding
	return p.err
}

func TestBufferedSpeechPlaysThroughPlayer(t *testing.T) {
	player := &recordingPlayer{}
	encoding := audio.GetDefaultEncodingInfo()
	speech := NewBufferedSpeech([]byte{1, 2, 3}, encoding, player)

	if err := speech.Play(context.Background()); err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	if len(player.played) != 1 || len(player.played[0]) != 3 {
		t.Fatalf("audio not delivered to player: %v", player.played)
	}
	if player.encoding != encoding {
		t.Fatalf("encoding not forwarded: %+v", player.encoding)
	}

	select {
	case <-speech.Done():
	default:
		t.Fatal("Done not closed after Play returned")
	}
}

func TestBufferedSpeechDoneClosesEvenOnFailure(t *testing.T) {
	player := &recordingPlayer{err: errors.New("device gone")}
	speech := NewBufferedSpeech([]byte{1}, audio.GetDefaultEncodingInfo(), player)

	if err := speech.Play(context.Background()); err == nil {
		t.Fatal("expected playback error")
	}

	select {
	case <-speech.Done():
	default:
		t.Fatal("Done not closed after failed Play")
	}
}

func TestBufferedSpeechWithoutPlayerCompletesImmediately(t *testing.T) {
	speech := NewBufferedSpeech([]byte{1, 2}, audio.GetDefaultEncodingInfo(), nil)

	if err := speech.Play(context.Background()); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	select {
	case <-speech.Done():
	default:
		t.Fatal("Done not closed")
	}
}
