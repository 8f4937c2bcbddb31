package deepgram

import (
	"slices"

	"github.com/koscakluka/voiceops-core/core/texttospeech"
)

type deepgramVoice string

const (
	VoiceThalia  deepgramVoice = "aura-2-thalia-en"
	VoiceOrion   deepgramVoice = "aura-2-orion-en"
	VoiceAsteria deepgramVoice = "aura-asteria-en"
	VoiceOrpheus deepgramVoice = "aura-orpheus-en"

	defaultVoice = VoiceThalia
)

func GetAvailableVoices() []deepgramVoice {
	return []deepgramVoice{VoiceThalia, VoiceOrion, VoiceAsteria, VoiceOrpheus}
}

// TextToSpeechClient synthesizes one utterance per call over Deepgram's
// speak websocket and hands back a playable handle.
type TextToSpeechClient struct {
	apiKey string
	voice  deepgramVoice
	player texttospeech.Player
}

func NewTextToSpeechClient(apiKey string, voice deepgramVoice, player texttospeech.Player) (*TextToSpeechClient, error) {
	client := &TextToSpeechClient{apiKey: apiKey, voice: defaultVoice, player: player}

	if voice != "" {
		if !slices.Contains(GetAvailableVoices(), voice) {
			return nil, errInvalidVoice
		}
		client.voice = voice
	}

	return client, nil
}

func (c *TextToSpeechClient) SetVoice(voice deepgramVoice) {
	c.voice = voice
}
