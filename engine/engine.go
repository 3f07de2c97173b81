// Package engine defines the interfaces a Game-Boy-family emulation engine
// must provide for the adapter to drive it. The engine owns instruction
// execution, pixel and sound synthesis, and the persistent game-override
// table; the adapter only calls through these surfaces.
package engine

import gbcore "github.com/user-none/gbcore/api"

// Accumulator is the engine-owned store of interleaved stereo int16 sample
// frames produced since the last drain. The engine's frame step is the
// producer; the adapter's audio pacer is the sole consumer.
type Accumulator interface {
	// AvailableSampleFrames returns the number of stereo frames ready to
	// be drained.
	AvailableSampleFrames() int

	// ReadSamples drains up to maxFrames stereo frames into dst as
	// interleaved L,R int16 pairs and returns the number of frames
	// actually drained. Drained frames are gone; reads never exceed
	// what AvailableSampleFrames reported.
	ReadSamples(dst []int16, maxFrames int) int
}

// Overrides is the engine's persistent per-game override table, keyed by
// the CRC32 of the cartridge header window. The color and super queries
// are independent: a game may carry both kinds of override.
type Overrides interface {
	// HasColorOverride reports whether the game is forced CGB-colorized.
	HasColorOverride(headerCRC uint32) bool

	// HasSuperOverride reports whether the game is forced SGB-enhanced.
	HasSuperOverride(headerCRC uint32) bool
}

// Config is the engine's string key/value configuration surface. Values
// set here take effect at the next reset unless reloaded explicitly.
type Config interface {
	// SetDefaultValue sets a string config default.
	SetDefaultValue(key, value string)

	// SetUintValue sets an unsigned integer config value.
	SetUintValue(key string, value uint)

	// ReloadOption asks the engine to re-read one config key immediately.
	ReloadOption(key string)
}

// LogLevel is the engine-side log severity scale.
type LogLevel int

const (
	LogFatal LogLevel = iota
	LogError
	LogWarn
	LogInfo
	LogDebug
	LogStub
	LogGameError
)

// LogFunc receives engine log messages. The adapter registers one per
// instance; the engine must not assume a process-wide logger.
type LogFunc func(category string, level LogLevel, message string)

// Engine is the emulation engine collaborator. All methods are called
// synchronously from the thread driving the frame loop.
type Engine interface {
	// Platform reports which hardware family this engine emulates.
	Platform() gbcore.Platform

	// LoadROM loads cartridge data. Called after model configuration,
	// before Reset.
	LoadROM(rom []byte) error

	// LoadSave loads battery-backed save data, if the cartridge has any.
	LoadSave(data []byte)

	// Reset restarts emulation with the current configuration.
	Reset()

	// RunFrame steps the engine for one video frame.
	RunFrame()

	// SetKeys sets the pressed-key bitmask in engine key-bit order.
	SetKeys(keys uint32)

	// Frequency returns the emulated clock rate in Hz.
	Frequency() int

	// FrameCycles returns the clock cycles per video frame.
	FrameCycles() int

	// BaseVideoSize returns the largest video dimensions the engine can
	// produce; the adapter sizes the framebuffer from it.
	BaseVideoSize() (width, height int)

	// CurrentVideoSize returns the dimensions currently being rendered.
	CurrentVideoSize() (width, height int)

	// SetVideoBuffer points the engine at the pixel storage it renders
	// into, with the given stride in pixels.
	SetVideoBuffer(pixels []byte, stride int)

	// SetAudioRate sets the output sample rate the engine resamples to.
	SetAudioRate(sampleRate int)

	// SetAudioBufferSize sets the engine-side accumulator size in sample
	// frames.
	SetAudioBufferSize(frames int)

	// Audio returns the engine's sample accumulator, or nil when the
	// engine delivers samples through SetAudioCallback instead.
	Audio() Accumulator

	// SetAudioCallback registers a function the engine calls synchronously
	// from inside RunFrame with each produced block of interleaved stereo
	// samples. Only used when Audio returns nil.
	SetAudioCallback(fn func(samples []int16))

	// Overrides returns the engine's override table, or nil if it has none.
	Overrides() Overrides

	// Config returns the engine's configuration surface.
	Config() Config

	// SetHardwareModel selects the hardware variant to initialize as.
	// Applied before Reset.
	SetHardwareModel(model gbcore.Model)

	// SetColorMode selects monochrome-tile color handling. Applied
	// before Reset.
	SetColorMode(mode gbcore.ColorMode)

	// SetLogger registers the per-instance log sink.
	SetLogger(fn LogFunc)

	// SetRumbleCallback registers a function the engine calls when the
	// cartridge toggles the rumble motor. Like SetLogger, registration is
	// per instance; engines must not dispatch through process globals.
	SetRumbleCallback(fn func(enabled bool))

	// SaveState captures the complete engine state.
	SaveState() ([]byte, error)

	// LoadState restores engine state from previously captured data.
	LoadState(data []byte) error

	// BatterySave returns a copy of battery-backed save data and whether
	// the cartridge has any.
	BatterySave() ([]byte, bool)
}
