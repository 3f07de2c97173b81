// Package audiosync adapts the engine's variable, engine-paced audio
// output to the fixed cadence of the host frame loop. The engine emits a
// different number of sample frames every video frame; the pacer tracks
// the long-run rate with an exponential moving average and drains exactly
// that many frames per step, so the host sink receives steadily sized
// blocks without underrun or overrun.
package audiosync

import "github.com/user-none/gbcore/engine"

// smoothing is the moving-average weight of a single frame's reading.
// At ~60 steps per second this gives a time constant of about three
// seconds: single-frame jitter cannot thrash the buffer size, while
// sustained drift (fast-forward, catch-up bursts) is tracked within a
// few seconds.
const smoothing = 1.0 / 180.0

// Pacer estimates the per-frame sample rate and drains the engine's
// accumulator into a reusable output buffer. One pacer per adapter
// instance; all calls happen on the frame-loop thread.
type Pacer struct {
	estimate float64
	buf      []int16
}

// NewPacer creates a pacer with the estimate seeded to the platform's
// nominal sample frames per video frame, so the first few frames drain at
// roughly the right rate instead of ramping up from zero.
func NewPacer(nominalFrames int) *Pacer {
	if nominalFrames < 0 {
		nominalFrames = 0
	}
	return &Pacer{estimate: float64(nominalFrames)}
}

// Estimate returns the current smoothed sample-frames-per-step estimate.
func (p *Pacer) Estimate() float64 {
	return p.estimate
}

// BufferCapacity returns the output buffer size in int16 samples. It only
// ever grows.
func (p *Pacer) BufferCapacity() int {
	return len(p.buf)
}

// OnFrameStepped is called exactly once per video frame, after the engine
// steps. It folds the accumulator's available count into the estimate,
// drains up to the estimated frame count, and returns the drained block of
// interleaved stereo samples. The returned slice is borrowed: it is valid
// only until the next call.
//
// An empty accumulator returns nil without touching the estimate, so
// consecutive silent frames (warm-up, push-style engines that staged
// nothing) do not decay the estimate toward zero.
func (p *Pacer) OnFrameStepped(acc engine.Accumulator) []int16 {
	if acc == nil {
		return nil
	}

	available := acc.AvailableSampleFrames()
	if available <= 0 {
		return nil
	}

	p.estimate = smoothing*float64(available) + (1-smoothing)*p.estimate

	toRead := int(p.estimate)
	if toRead <= 0 {
		return nil
	}

	// Grow to exact fit, never shrink; transient spikes must not cause
	// reallocation on the way back down.
	if len(p.buf) < toRead*2 {
		p.buf = make([]int16, toRead*2)
	}

	maxFrames := toRead
	if available < maxFrames {
		maxFrames = available
	}

	drained := acc.ReadSamples(p.buf[:maxFrames*2], maxFrames)
	if drained <= 0 {
		return nil
	}
	return p.buf[:drained*2]
}
