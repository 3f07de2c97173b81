package hostaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// ringSeconds sizes the ring buffer relative to the sample rate. Half a
// second of stereo 16-bit audio absorbs pacing jitter without adding
// noticeable drift.
const ringSeconds = 0.5

// oto context singleton. oto allows one context per process, so all
// players share it; the first NewPlayer call fixes the sample rate.
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

// ensureOtoContext initializes the oto audio context on first use.
func ensureOtoContext(sampleRate int) (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var readyChan chan struct{}
		otoCtx, readyChan, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-readyChan
	})
	return otoCtx, otoInitErr
}

// Player plays interleaved stereo int16 sample blocks through the OS audio
// device. It satisfies the sample-sink role a Host's PlaySamples needs.
type Player struct {
	player     *oto.Player
	ring       *RingBuffer
	audioBytes []byte // reused int16-to-byte conversion buffer
}

// NewPlayer opens the audio device at the given sample rate. The volume
// parameter sets the initial volume before playback starts, preventing
// audio pops when muted.
func NewPlayer(sampleRate int, volume float64) (*Player, error) {
	ctx, err := ensureOtoContext(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("oto audio not available: %w", err)
	}

	ring := NewRingBuffer(int(float64(sampleRate) * 4 * ringSeconds))
	player := ctx.NewPlayer(ring)
	// Set volume before Play() to avoid pop when muted
	player.SetVolume(volume)
	player.Play()

	return &Player{
		player:     player,
		ring:       ring,
		audioBytes: make([]byte, 0, 4096),
	}, nil
}

// QueueSamples converts int16 stereo samples to bytes and writes them to
// the ring buffer for oto to consume. Safe to pass as a Host's PlaySamples.
func (p *Player) QueueSamples(samples []int16) {
	if len(samples) == 0 {
		return
	}

	needed := len(samples) * 2
	if cap(p.audioBytes) < needed {
		p.audioBytes = make([]byte, 0, needed)
	}
	p.audioBytes = p.audioBytes[:0]
	for _, sample := range samples {
		p.audioBytes = append(p.audioBytes, byte(sample), byte(sample>>8))
	}

	p.ring.Write(p.audioBytes)
}

// BufferedBytes returns the total audio bytes queued but not yet played
// (ring buffer plus the device's internal buffer).
func (p *Player) BufferedBytes() int {
	return p.ring.Buffered() + p.player.BufferedSize()
}

// Clear flushes all queued audio, e.g. after a reset.
func (p *Player) Clear() {
	p.ring.Clear()
}

// SetVolume sets the playback volume (0.0 = silent, 1.0 = normal, 2.0 = max).
// Values are clamped to [0.0, 2.0].
func (p *Player) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 2.0 {
		vol = 2.0
	}
	p.player.SetVolume(vol)
}

// Close releases the audio device.
func (p *Player) Close() {
	if p.ring != nil {
		p.ring.Close()
	}
	if p.player != nil {
		p.player.Close()
	}
}
