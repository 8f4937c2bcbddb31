package portaudio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/koscakluka/voiceops-core/core/audio"
)

// Client is the portaudio-backed alternative to the miniaudio client. It
// exposes the same capture and playback surface, backed by one full-duplex
// stream.
type Client struct {
	bufferSize int
	stream     *portaudio.Stream

	in  []int16
	out []int16

	capturing bool
	onAudio   func(chunk []byte)

	mu sync.Mutex
}

func NewClient(bufferSize int) (*Client, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	in := make([]int16, bufferSize)
	out := make([]int16, bufferSize)
	stream, err := portaudio.OpenDefaultStream(1, 1, audio.DefaultSampleRate, bufferSize, in, out)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: failed to open portaudio stream: %v", audio.ErrPermissionDenied, err)
	}

	return &Client{
		bufferSize: bufferSize,
		stream:     stream,
		in:         in,
		out:        out,
	}, nil
}

func (c *Client) EncodingInfo() audio.EncodingInfo {
	return audio.EncodingInfo{
		SampleRate: audio.DefaultSampleRate,
		Format:     audio.EncodingLinear16,
	}
}

// Start begins pulling capture frames into onAudio until Stop is called.
func (c *Client) Start(ctx context.Context, onAudio func(chunk []byte)) error {
	c.mu.Lock()
	if c.capturing {
		c.mu.Unlock()
		return nil
	}
	if err := c.stream.Start(); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: failed to start portaudio stream: %v", audio.ErrPermissionDenied, err)
	}
	c.capturing = true
	c.onAudio = onAudio
	c.mu.Unlock()

	go func() {
		for {
			c.mu.Lock()
			capturing := c.capturing
			callback := c.onAudio
			c.mu.Unlock()
			if !capturing || ctx.Err() != nil {
				return
			}

			if err := c.stream.Read(); err != nil {
				continue
			}

			audioBuffer := bytes.Buffer{}
			binary.Write(&audioBuffer, binary.LittleEndian, c.in)
			if callback != nil {
				callback(audioBuffer.Bytes())
			}
		}
	}()

	return nil
}

func (c *Client) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.capturing {
		return nil
	}
	c.capturing = false
	c.onAudio = nil

	if err := c.stream.Stop(); err != nil {
		return fmt.Errorf("failed to stop portaudio stream: %w", err)
	}
	return nil
}

// Play writes one segment to the output stream, blocking until written.
func (c *Client) Play(ctx context.Context, data []byte, _ audio.EncodingInfo) error {
	// Start is a no-op error when the stream is already running for capture.
	_ = c.stream.Start()

	frameBytes := c.bufferSize * 2
	for offset := 0; offset < len(data); offset += frameBytes {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		end := offset + frameBytes
		chunk := data[offset:min(end, len(data))]
		if len(chunk) < frameBytes {
			padded := make([]byte, frameBytes)
			copy(padded, chunk)
			chunk = padded
		}

		binary.Read(bytes.NewBuffer(chunk), binary.LittleEndian, c.out)
		if err := c.stream.Write(); err != nil {
			return fmt.Errorf("failed to write to portaudio stream: %w", err)
		}
	}

	return nil
}

func (c *Client) Close() error {
	err := c.stream.Close()
	portaudio.Terminate()
	return err
}
