// Package adapter drives a Game-Boy-family emulation engine on behalf of a
// host frontend. It translates host lifecycle calls (load ROM, run frame,
// poll input, save and load state) into engine calls, and engine outputs
// (video buffer, audio samples, log messages, rumble) back into host
// primitives. Hardware-model resolution and audio pacing live in the
// gbmodel and audiosync packages; everything here is the wiring around
// them.
package adapter

import (
	"errors"
	"fmt"
	"os"

	gbcore "github.com/user-none/gbcore/api"
	"github.com/user-none/gbcore/audiosync"
	"github.com/user-none/gbcore/engine"
	"github.com/user-none/gbcore/gbmodel"
	"github.com/user-none/gbcore/romloader"
)

// Audio constants carried over from the engine's native buffer sizing.
const (
	// GBSamples is the engine accumulator size for Game Boy cores.
	GBSamples = 512

	// GBASamples is the engine accumulator size for Game Boy Advance cores.
	GBASamples = 1024

	// DefaultSampleRate is the output rate the engine resamples to.
	DefaultSampleRate = 32768
)

// Options configures a new adapter instance.
type Options struct {
	// Model is the model selection policy for ROM loads. The zero value
	// is automatic resolution preferring CGB.
	Model gbcore.ModelRequest

	// SampleRate overrides DefaultSampleRate when non-zero.
	SampleRate int
}

// Adapter connects one engine instance to one host. All methods are
// called synchronously from the thread driving the frame loop; the
// adapter neither locks nor spawns goroutines.
type Adapter struct {
	eng  engine.Engine
	host gbcore.Host

	request    gbcore.ModelRequest
	sampleRate int

	pacer *audiosync.Pacer
	stage *audiosync.StageBuffer // set when the engine pushes audio

	video    gbcore.VideoContext
	resolved *gbcore.ResolvedModel
	loaded   bool
}

// New creates an adapter for the given engine and host. Logger and rumble
// callbacks are registered here, capturing this instance; push-style
// engines additionally get their audio callback pointed at the adapter's
// stage buffer.
func New(eng engine.Engine, host gbcore.Host, opts Options) (*Adapter, error) {
	if eng == nil {
		return nil, errors.New("adapter: nil engine")
	}
	if host == nil {
		return nil, errors.New("adapter: nil host")
	}

	a := &Adapter{
		eng:        eng,
		host:       host,
		request:    opts.Model,
		sampleRate: opts.SampleRate,
	}
	if a.sampleRate <= 0 {
		a.sampleRate = DefaultSampleRate
	}

	eng.SetLogger(a.logMessage)
	eng.SetRumbleCallback(a.host.Rumble)

	if eng.Audio() == nil {
		a.stage = &audiosync.StageBuffer{}
		eng.SetAudioCallback(a.stage.Push)
	}

	return a, nil
}

// LoadROM configures the engine for the given cartridge and resets it.
// For Game Boy engines the hardware model is resolved first — once per
// load — and pushed into engine configuration before the reset. save may
// be nil when the cartridge has no existing battery save.
func (a *Adapter) LoadROM(rom []byte, save []byte) error {
	if len(rom) == 0 {
		return errors.New("adapter: empty ROM")
	}

	if a.eng.Platform() == gbcore.PlatformGameBoy {
		resolved := gbmodel.Resolve(rom, a.request, a.eng.Overrides())
		a.resolved = &resolved
		a.applyModel(resolved)
	}

	a.eng.SetAudioRate(a.sampleRate)
	if a.eng.Platform() == gbcore.PlatformGameBoyAdvance {
		a.eng.SetAudioBufferSize(GBASamples)
	} else {
		a.eng.SetAudioBufferSize(GBSamples)
	}

	width, height := a.eng.BaseVideoSize()
	a.video = a.host.CreateVideoContext(width, height)
	a.eng.SetVideoBuffer(a.video.Framebuffer(), width)

	if err := a.eng.LoadROM(rom); err != nil {
		return fmt.Errorf("adapter: failed to load ROM: %w", err)
	}

	a.eng.Reset()

	if len(save) > 0 {
		a.eng.LoadSave(save)
	}

	a.pacer = audiosync.NewPacer(a.nominalSampleFrames())
	a.refreshScreenArea()
	a.loaded = true

	return nil
}

// LoadROMFile loads a cartridge from disk, extracting it from a compressed
// archive when needed, and verifies it matches the engine's platform.
// savePath may be empty or point to a file that does not exist yet.
func (a *Adapter) LoadROMFile(romPath, savePath string) error {
	rom, name, err := romloader.Load(romPath)
	if err != nil {
		return err
	}

	platform, err := romloader.PlatformForName(name)
	if err != nil {
		return err
	}
	if platform != a.eng.Platform() {
		return fmt.Errorf("adapter: %s is a %s cartridge, engine is %s",
			name, platform, a.eng.Platform())
	}

	var save []byte
	if savePath != "" {
		save, err = os.ReadFile(savePath)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("adapter: failed to read save: %w", err)
		}
	}

	return a.LoadROM(rom, save)
}

// Reset restarts emulation, dropping any staged audio.
func (a *Adapter) Reset() {
	a.eng.Reset()
	if a.stage != nil {
		a.stage.Clear()
	}
	if a.video != nil {
		a.refreshScreenArea()
	}
}

// Stop releases the video context. The adapter can load another ROM
// afterwards.
func (a *Adapter) Stop() {
	a.video = nil
	a.loaded = false
	if a.stage != nil {
		a.stage.Clear()
	}
}

// RunFrame steps the engine one video frame, paces the produced audio,
// and forwards the resulting block to the host sink. The returned slice
// is borrowed: the host must not retain it past the call, as the backing
// buffer is reused next frame.
func (a *Adapter) RunFrame() []int16 {
	if !a.loaded {
		return nil
	}

	a.eng.RunFrame()

	acc := a.eng.Audio()
	if acc == nil {
		acc = a.stage
	}

	block := a.pacer.OnFrameStepped(acc)
	if len(block) > 0 {
		a.host.PlaySamples(block)
	}
	return block
}

// ResolvedModel returns the model chosen at the last ROM load, and false
// when no Game Boy ROM has been loaded.
func (a *Adapter) ResolvedModel() (gbcore.ResolvedModel, bool) {
	if a.resolved == nil {
		return gbcore.ResolvedModel{}, false
	}
	return *a.resolved, true
}

// FrameRate returns the engine's video frame rate in Hz.
func (a *Adapter) FrameRate() float64 {
	return float64(a.eng.Frequency()) / float64(a.eng.FrameCycles())
}

// AspectRatio returns the current display aspect ratio.
func (a *Adapter) AspectRatio() float64 {
	width, height := a.eng.CurrentVideoSize()
	return float64(width) / float64(height)
}

// SampleRate returns the audio output rate in Hz.
func (a *Adapter) SampleRate() int {
	return a.sampleRate
}

// nominalSampleFrames is the expected sample frames per video frame,
// seeding the pacer's estimate.
func (a *Adapter) nominalSampleFrames() int {
	rate := a.FrameRate()
	if rate <= 0 {
		return 0
	}
	return int(float64(a.sampleRate) / rate)
}

// refreshScreenArea narrows the video context to the engine's current
// video size, which changes when SGB borders toggle.
func (a *Adapter) refreshScreenArea() {
	width, height := a.eng.CurrentVideoSize()
	a.video.SetArea(gbcore.Rectangle{Width: width, Height: height})
}

// logMessage bridges engine log output to the host's log sink.
func (a *Adapter) logMessage(category string, level engine.LogLevel, message string) {
	var hostLevel gbcore.LogLevel
	switch level {
	case engine.LogFatal, engine.LogError:
		hostLevel = gbcore.LogCritical
	case engine.LogWarn:
		hostLevel = gbcore.LogWarning
	case engine.LogInfo:
		hostLevel = gbcore.LogInfo
	default:
		hostLevel = gbcore.LogDebug
	}
	a.host.Log(hostLevel, category+": "+message)
}
