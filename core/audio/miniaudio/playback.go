package miniaudio

import (
	"context"
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/koscakluka/voiceops-core/core/audio"
)

type playbackClient struct {
	audioContext *malgo.AllocatedContext
	device       *malgo.Device
	config       malgo.DeviceConfig

	pending []byte
	drained chan struct{}

	mu      sync.Mutex
	audioMu sync.Mutex
}

func (c *playbackClient) init() error {
	sampleRate := uint32(audio.DefaultSampleRate)
	channels := 1
	format := malgo.FormatS16
	bytesPerFrame := malgo.SampleSizeInBytes(format) * channels

	c.config = malgo.DefaultDeviceConfig(malgo.Playback)
	c.config.SampleRate = sampleRate
	c.config.Playback.Format = format
	c.config.Playback.Channels = uint32(channels)
	c.config.Alsa.NoMMap = 1
	c.config.PeriodSizeInFrames = sampleRate / 10 // ~100ms of audio
	c.config.Periods = 4

	var err error
	if c.device, err = malgo.InitDevice(
		c.audioContext.Context,
		c.config,
		malgo.DeviceCallbacks{Data: c.processAudio(bytesPerFrame)},
	); err != nil {
		return fmt.Errorf("failed to initialize playback device: %w", err)
	}

	return nil
}

func (c *playbackClient) processAudio(bytesPerFrame int) func(pOutput, _ []byte, frameCount uint32) {
	return func(pOutput, _ []byte, frameCount uint32) {
		n := int(frameCount) * bytesPerFrame

		c.audioMu.Lock()
		defer c.audioMu.Unlock()

		copied := copy(pOutput[:n], c.pending)
		c.pending = c.pending[copied:]
		for i := copied; i < n; i++ {
			pOutput[i] = 0
		}

		if len(c.pending) == 0 && c.drained != nil {
			close(c.drained)
			c.drained = nil
		}
	}
}

// Play queues one segment of audio and blocks until the device has consumed
// it or ctx is cancelled. Cancellation drops whatever is still queued.
func (c *playbackClient) Play(ctx context.Context, data []byte, _ audio.EncodingInfo) error {
	c.mu.Lock()
	if c.device == nil {
		if err := c.init(); err != nil {
			c.mu.Unlock()
			return err
		}
	}
	if !c.device.IsStarted() {
		if err := c.device.Start(); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to start playback device: %w", err)
		}
	}
	c.mu.Unlock()

	if len(data) == 0 {
		return nil
	}

	drained := make(chan struct{})
	c.audioMu.Lock()
	c.pending = append(c.pending, data...)
	c.drained = drained
	c.audioMu.Unlock()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		c.audioMu.Lock()
		c.pending = nil
		c.drained = nil
		c.audioMu.Unlock()
		return ctx.Err()
	}
}

func (c *playbackClient) Uninit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.device != nil {
		c.device.Uninit()
		c.device = nil
	}

	c.audioMu.Lock()
	c.pending = nil
	if c.drained != nil {
		close(c.drained)
		c.drained = nil
	}
	c.audioMu.Unlock()
	return nil
}
