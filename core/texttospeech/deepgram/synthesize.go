package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/koscakluka/voiceops-core/core/audio"
	"github.com/koscakluka/voiceops-core/core/texttospeech"
)

var errInvalidVoice = fmt.Errorf("%w: invalid voice", texttospeech.ErrSynthesisFailed)

// Synthesize speaks one utterance: it opens the websocket, sends the text
// followed by a flush, collects audio frames until the server reports the
// buffer flushed, and returns the collected audio as a playable handle.
func (c *TextToSpeechClient) Synthesize(ctx context.Context, text string, opts ...texttospeech.SynthesisOption) (texttospeech.Speech, error) {
	options := texttospeech.SynthesisOptions{EncodingInfo: audio.GetDefaultEncodingInfo()}
	for _, opt := range opts {
		opt(&options)
	}

	conn, err := c.connectWebsocket(options.EncodingInfo)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open websocket: %v", texttospeech.ErrSynthesisFailed, err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(sendTextMsg(text)); err != nil {
		return nil, fmt.Errorf("%w: failed to send text: %v", texttospeech.ErrSynthesisFailed, err)
	}
	if err := conn.WriteJSON(flushMsg); err != nil {
		return nil, fmt.Errorf("%w: failed to flush: %v", texttospeech.ErrSynthesisFailed, err)
	}

	var collected []byte
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code == websocket.CloseNormalClosure {
				break
			}
			return nil, fmt.Errorf("%w: websocket read error: %v", texttospeech.ErrSynthesisFailed, err)
		}

		switch msgType {
		case websocket.BinaryMessage:
			collected = append(collected, msg...)

		case websocket.TextMessage:
			var parsedMsg struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(msg, &parsedMsg); err != nil {
				continue
			}
			if parsedMsg.Type == "Flushed" {
				_ = conn.WriteJSON(closeMsg)
				return texttospeech.NewBufferedSpeech(collected, options.EncodingInfo, c.player), nil
			}
		}
	}

	return texttospeech.NewBufferedSpeech(collected, options.EncodingInfo, c.player), nil
}

func (c *TextToSpeechClient) connectWebsocket(encodingInfo audio.EncodingInfo) (*websocket.Conn, error) {
	urlValues := url.Values{}
	urlValues.Set("encoding", encodingInfo.Format.Name())
	urlValues.Set("sample_rate", strconv.Itoa(encodingInfo.SampleRate))
	urlValues.Set("model", string(c.voice))
	urlValues.Set("container", "none")

	conn, _, err := websocket.DefaultDialer.Dial(
		(&url.URL{
			Scheme: "wss",
			Host:   "api.deepgram.com", Path: "/v1/speak",
			RawQuery: urlValues.Encode(),
		}).String(),
		http.Header{"Authorization": {"token " + c.apiKey}})
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to deepgram: %w", err)
	}

	return conn, nil
}

type websocketMessage struct {
	Type string `json:"type"`
}

var (
	sendTextMsg = func(text string) struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} {
		return struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}{Type: "Speak", Text: text}
	}
	flushMsg = websocketMessage{Type: "Flush"}
	closeMsg = websocketMessage{Type: "Close"}
)
