package texttospeech

import (
	"context"
	"sync"

	"github.com/koscakluka/voiceops-core/core/audio"
)

// Speech is a playable handle over one piece of synthesized audio. Play
// blocks until playback has fully finished; Done closes at that same moment
// for observers that are not driving playback themselves.
type Speech interface {
	Play(ctx context.Context) error
	Done() <-chan struct{}
}

// Player consumes one buffered audio segment and blocks until it has been
// delivered to the output device.
type Player interface {
	Play(ctx context.Context, data []byte, encoding audio.EncodingInfo) error
}

type bufferedSpeech struct {
	data     []byte
	encoding audio.EncodingInfo
	player   Player

	done     chan struct{}
	doneOnce sync.Once
}

// NewBufferedSpeech wraps fully synthesized audio bytes into a Speech handle
// backed by the passed player. A nil player completes playback immediately,
// which keeps text-only setups working.
func NewBufferedSpeech(data []byte, encoding audio.EncodingInfo, player Player) Speech {
	return &bufferedSpeech{
		data:     data,
		encoding: encoding,
		player:   player,
		done:     make(chan struct{}),
	}
}

func (s *bufferedSpeech) Play(ctx context.Context) error {
	defer s.doneOnce.Do(func() { close(s.done) })

	if s.player == nil || len(s.data) == 0 {
		return nil
	}
	return s.player.Play(ctx, s.data, s.encoding)
}

func (s *bufferedSpeech) Done() <-chan struct{} {
	return s.done
}
