package texttospeech

import (
	"errors"

	"github.com/koscakluka/voiceops-core/core/audio"
)

// ErrSynthesisFailed wraps provider failures during speech synthesis.
var ErrSynthesisFailed = errors.New("speech synthesis failed")

type SynthesisOptions struct {
	EncodingInfo audio.EncodingInfo
}

type SynthesisOption func(*SynthesisOptions)

func WithEncodingInfo(encodingInfo audio.EncodingInfo) SynthesisOption {
	return func(o *SynthesisOptions) {
		o.EncodingInfo = encodingInfo
	}
}
