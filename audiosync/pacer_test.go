package audiosync

import (
	"math"
	"testing"
)

// syntheticAccumulator reports a scripted availability per call and fills
// drained frames with a ramp so tests can verify the drained prefix.
type syntheticAccumulator struct {
	available []int // per-call availability; last value repeats
	call      int
	next      int16 // ramp counter across drains
	drained   []int // frames drained per call
}

func (s *syntheticAccumulator) AvailableSampleFrames() int {
	idx := s.call
	if idx >= len(s.available) {
		idx = len(s.available) - 1
	}
	s.call++
	return s.available[idx]
}

func (s *syntheticAccumulator) ReadSamples(dst []int16, maxFrames int) int {
	idx := s.call - 1
	if idx >= len(s.available) {
		idx = len(s.available) - 1
	}
	frames := s.available[idx]
	if maxFrames < frames {
		frames = maxFrames
	}
	if len(dst)/2 < frames {
		frames = len(dst) / 2
	}
	for i := 0; i < frames*2; i++ {
		dst[i] = s.next
		s.next++
	}
	s.drained = append(s.drained, frames)
	return frames
}

func TestPacer_ConvergesToConstantRate(t *testing.T) {
	const rate = 800
	acc := &syntheticAccumulator{available: []int{rate}}
	p := NewPacer(512)

	for i := 0; i < 1080; i++ {
		before := p.Estimate()
		block := p.OnFrameStepped(acc)

		want := int(smoothing*rate + (1-smoothing)*before)
		if len(block) != want*2 {
			t.Fatalf("call %d: block length %d, want %d (floor of estimate x2)", i, len(block), want*2)
		}
		if drained := acc.drained[len(acc.drained)-1]; drained > rate {
			t.Fatalf("call %d: drained %d frames, more than available %d", i, drained, rate)
		}
	}

	if err := math.Abs(p.Estimate()-rate) / rate; err > 0.01 {
		t.Errorf("estimate %f not within 1%% of %d after 1080 calls", p.Estimate(), rate)
	}
}

func TestPacer_AlternatingAvailability(t *testing.T) {
	avail := make([]int, 600)
	for i := range avail {
		if i%2 == 1 {
			avail[i] = 1600
		}
	}
	acc := &syntheticAccumulator{available: avail}
	p := NewPacer(512)

	var maxCapacity int
	for i := 0; i < len(avail); i++ {
		block := p.OnFrameStepped(acc)

		if i%2 == 0 && len(block) != 0 {
			t.Fatalf("call %d: zero availability returned %d samples, want empty", i, len(block))
		}
		if c := p.BufferCapacity(); c < maxCapacity {
			t.Fatalf("call %d: buffer capacity shrank from %d to %d", i, maxCapacity, c)
		} else {
			maxCapacity = c
		}
	}

	if maxCapacity == 0 {
		t.Error("buffer never grew despite non-zero availability")
	}
}

func TestPacer_WarmupZerosDoNotDecayEstimate(t *testing.T) {
	acc := &syntheticAccumulator{available: []int{0}}
	p := NewPacer(512)

	for i := 0; i < 120; i++ {
		if block := p.OnFrameStepped(acc); block != nil {
			t.Fatalf("call %d: got samples from empty accumulator", i)
		}
	}

	if p.Estimate() != 512 {
		t.Errorf("estimate decayed to %f during warm-up, want 512", p.Estimate())
	}
}

func TestPacer_ZeroEstimateYieldsEmpty(t *testing.T) {
	// Nominal 0 and a single available frame: the smoothed estimate stays
	// below 1, so floor(estimate) is 0 and no drain happens.
	acc := &syntheticAccumulator{available: []int{1}}
	p := NewPacer(0)

	if block := p.OnFrameStepped(acc); block != nil {
		t.Errorf("got %d samples, want empty block for floor(estimate)==0", len(block))
	}
	if len(acc.drained) != 0 {
		t.Error("accumulator was drained despite zero read target")
	}
}

func TestPacer_DrainedPrefixIsContiguous(t *testing.T) {
	acc := &syntheticAccumulator{available: []int{400}}
	p := NewPacer(400)

	block := p.OnFrameStepped(acc)
	if len(block) == 0 {
		t.Fatal("expected a non-empty block")
	}
	for i, s := range block {
		if s != int16(i) {
			t.Fatalf("sample %d = %d, want %d (drained prefix must be contiguous)", i, s, i)
		}
	}
}

func TestPacer_NilAccumulator(t *testing.T) {
	p := NewPacer(512)
	if block := p.OnFrameStepped(nil); block != nil {
		t.Error("expected nil block for nil accumulator")
	}
}

func TestStageBuffer_PushAndDrain(t *testing.T) {
	var b StageBuffer

	b.Push([]int16{1, 2, 3, 4})
	b.Push([]int16{5, 6})

	if b.AvailableSampleFrames() != 3 {
		t.Fatalf("expected 3 staged frames, got %d", b.AvailableSampleFrames())
	}

	dst := make([]int16, 4)
	if n := b.ReadSamples(dst, 2); n != 2 {
		t.Fatalf("expected 2 frames drained, got %d", n)
	}
	for i, want := range []int16{1, 2, 3, 4} {
		if dst[i] != want {
			t.Errorf("sample %d = %d, want %d", i, dst[i], want)
		}
	}

	// Undrained frames persist to the next step.
	if b.AvailableSampleFrames() != 1 {
		t.Fatalf("expected 1 frame remaining, got %d", b.AvailableSampleFrames())
	}
	if n := b.ReadSamples(dst, 4); n != 1 {
		t.Fatalf("expected 1 frame drained, got %d", n)
	}
	if dst[0] != 5 || dst[1] != 6 {
		t.Errorf("remaining frame = {%d %d}, want {5 6}", dst[0], dst[1])
	}
}

func TestStageBuffer_OddSampleDropped(t *testing.T) {
	var b StageBuffer
	b.Push([]int16{1, 2, 3})
	if b.AvailableSampleFrames() != 1 {
		t.Errorf("expected half frame dropped, got %d frames", b.AvailableSampleFrames())
	}
}

func TestStageBuffer_AsPacerSource(t *testing.T) {
	var b StageBuffer
	p := NewPacer(4)

	// Engine pushes synchronously during its step; the pacer drains after.
	b.Push([]int16{10, 11, 12, 13, 14, 15, 16, 17})

	block := p.OnFrameStepped(&b)
	if len(block) != 8 {
		t.Fatalf("expected passthrough of 4 staged frames (8 samples), got %d", len(block))
	}
	for i, want := range []int16{10, 11, 12, 13, 14, 15, 16, 17} {
		if block[i] != want {
			t.Errorf("sample %d = %d, want %d", i, block[i], want)
		}
	}
	if b.AvailableSampleFrames() != 0 {
		t.Errorf("expected stage buffer drained, %d frames remain", b.AvailableSampleFrames())
	}
}

func TestStageBuffer_Clear(t *testing.T) {
	var b StageBuffer
	b.Push([]int16{1, 2, 3, 4})
	b.Clear()
	if b.AvailableSampleFrames() != 0 {
		t.Errorf("expected empty buffer after Clear, got %d frames", b.AvailableSampleFrames())
	}
}
