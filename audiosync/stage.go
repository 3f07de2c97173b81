package audiosync

import "github.com/user-none/gbcore/engine"

// Compile-time interface check.
var _ engine.Accumulator = (*StageBuffer)(nil)

// StageBuffer unifies push-style audio delivery with the accumulator-drain
// contract. Engines without a drainable accumulator invoke an audio
// callback synchronously from inside their frame step; the adapter points
// that callback at Push, and the pacer then drains the staged frames
// through the ordinary engine.Accumulator interface, making its drain step
// a passthrough of the already-staged data.
type StageBuffer struct {
	samples []int16
}

// Push appends a block of interleaved stereo samples. An odd trailing
// sample (half a frame) is dropped. Called from inside the engine's
// RunFrame, on the same thread as the eventual drain.
func (b *StageBuffer) Push(samples []int16) {
	n := len(samples) &^ 1
	b.samples = append(b.samples, samples[:n]...)
}

// AvailableSampleFrames returns the number of staged stereo frames.
func (b *StageBuffer) AvailableSampleFrames() int {
	return len(b.samples) / 2
}

// ReadSamples drains up to maxFrames staged frames into dst and returns
// the number of frames drained. Frames not drained stay staged for the
// next step.
func (b *StageBuffer) ReadSamples(dst []int16, maxFrames int) int {
	frames := len(b.samples) / 2
	if maxFrames < frames {
		frames = maxFrames
	}
	if len(dst)/2 < frames {
		frames = len(dst) / 2
	}
	if frames <= 0 {
		return 0
	}

	n := frames * 2
	copy(dst, b.samples[:n])
	remaining := copy(b.samples, b.samples[n:])
	b.samples = b.samples[:remaining]
	return frames
}

// Clear drops all staged frames. Used on reset and ROM unload.
func (b *StageBuffer) Clear() {
	b.samples = b.samples[:0]
}
