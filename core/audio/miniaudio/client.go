package miniaudio

import (
	"context"
	"fmt"

	"github.com/gen2brain/malgo"
	"github.com/koscakluka/voiceops-core/core/audio"
)

// Client bundles a capture and a playback device sharing one miniaudio
// context. Capture feeds the orchestrator's segment buffer, playback drains
// synthesized speech.
type Client struct {
	// audioContext is only saved to be able to uninitialize it, it is an
	// ownership thing
	audioContext *malgo.AllocatedContext
	playbackClient
	captureClient
}

func NewClient() (*Client, error) {
	audioCtx, err := malgo.InitContext(
		nil,
		malgo.ContextConfig{},
		func(message string) {},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize miniaudio context: %w", err)
	}

	client := Client{audioContext: audioCtx}
	client.playbackClient.audioContext = audioCtx
	client.captureClient.audioContext = audioCtx

	return &client, nil
}

func (c *Client) EncodingInfo() audio.EncodingInfo {
	return audio.GetDefaultEncodingInfo()
}

// Start acquires the capture device exclusively and begins streaming chunks
// into onAudio. Device acquisition failures surface as
// [audio.ErrPermissionDenied].
func (c *Client) Start(ctx context.Context, onAudio func(chunk []byte)) error {
	return c.captureClient.Start(onAudio)
}

// Stop releases the capture device.
func (c *Client) Stop() error {
	return c.captureClient.Stop()
}

// Play writes one buffered segment to the playback device and blocks until it
// has fully drained or ctx is cancelled.
func (c *Client) Play(ctx context.Context, data []byte, encoding audio.EncodingInfo) error {
	return c.playbackClient.Play(ctx, data, encoding)
}

func (c *Client) Close() error {
	var firstErr error
	if err := c.captureClient.Uninit(); err != nil {
		firstErr = err
	}
	if err := c.playbackClient.Uninit(); err != nil && firstErr == nil {
		firstErr = err
	}
	if c.audioContext != nil {
		if err := c.audioContext.Uninit(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to uninitialize miniaudio context: %w", err)
		}
		c.audioContext.Free()
		c.audioContext = nil
	}
	return firstErr
}
