package adapter

import gbcore "github.com/user-none/gbcore/api"

// gbButtonMapping maps host button indices (Up, Down, Left, Right, A, B,
// Select, Start) to engine key bits (A, B, Select, Start, Right, Left,
// Up, Down).
var gbButtonMapping = [gbcore.GameBoyButtons]uint{6, 7, 5, 4, 0, 1, 2, 3}

// gbaButtonMapping extends gbButtonMapping with the shoulder buttons:
// host L and R map to engine bits 9 and 8.
var gbaButtonMapping = [gbcore.GameBoyAdvanceButtons]uint{6, 7, 5, 4, 0, 1, 2, 3, 9, 8}

// PollInput translates a host input state into the engine's key bitmask
// and applies it. Call once per frame before RunFrame.
func (a *Adapter) PollInput(state gbcore.InputState) {
	mapping := gbButtonMapping[:]
	if a.eng.Platform() == gbcore.PlatformGameBoyAdvance {
		mapping = gbaButtonMapping[:]
	}

	var keys uint32
	for host, engineBit := range mapping {
		if state.Pressed(host) {
			keys |= 1 << engineBit
		}
	}
	a.eng.SetKeys(keys)
}
