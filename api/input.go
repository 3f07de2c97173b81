package gbcore

// Host-side button bit positions. The d-pad occupies bits 0-3 on both
// platforms; L and R exist only on Game Boy Advance.
const (
	ButtonUp = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonL
	ButtonR
)

// Button counts per platform, for iterating mapping tables.
const (
	GameBoyButtons        = 8
	GameBoyAdvanceButtons = 10
)

// InputState carries the host's controller state for one frame as a button
// bitmask in host bit order. The adapter translates it to engine key bits.
type InputState struct {
	Buttons uint32
}

// Pressed reports whether the given host button bit is set.
func (s InputState) Pressed(button int) bool {
	return s.Buttons&(1<<uint(button)) != 0
}
