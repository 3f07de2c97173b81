package gbcore

// Rectangle describes the active screen area within a video context.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// VideoContext is a host-owned software framebuffer the adapter renders
// into. The adapter writes XRGB8888 pixels directly into Framebuffer and
// narrows the visible region through SetArea when the engine's video size
// changes (e.g. SGB borders on and off).
type VideoContext interface {
	// Framebuffer returns the pixel storage, 4 bytes per pixel.
	Framebuffer() []byte

	// SetArea sets the active screen area within the framebuffer.
	SetArea(area Rectangle)
}

// Host is the frontend collaborator the adapter reports back to. All calls
// happen synchronously on the frame-loop thread.
type Host interface {
	// CreateVideoContext allocates a software framebuffer of the given
	// dimensions. Called once per ROM load.
	CreateVideoContext(width, height int) VideoContext

	// PlaySamples delivers one frame's block of interleaved stereo int16
	// samples. The slice is borrowed for the duration of the call only;
	// the adapter reuses the backing buffer next frame.
	PlaySamples(samples []int16)

	// Rumble turns the controller rumble motor on or off.
	Rumble(enabled bool)

	// Log delivers an engine log message at the given level.
	Log(level LogLevel, message string)
}
