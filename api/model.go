// Package gbcore defines the host-facing types and collaborator interfaces
// for Game-Boy-family core adapters. The host frontend drives the adapter
// through these types; the adapter translates them into engine calls.
package gbcore

import "fmt"

// Platform identifies which engine family an adapter instance drives.
type Platform int

const (
	PlatformGameBoy Platform = iota
	PlatformGameBoyAdvance
)

// String returns the display name of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformGameBoy:
		return "Game Boy"
	case PlatformGameBoyAdvance:
		return "Game Boy Advance"
	default:
		return "Unknown"
	}
}

// Model is a concrete Game-Boy-family hardware variant. The variants are
// mutually incompatible at engine-reset time: exactly one must be chosen
// before the engine initializes.
type Model int

const (
	ModelDMG Model = iota // original Game Boy
	ModelMGB              // Game Boy Pocket
	ModelCGB              // Game Boy Color
	ModelAGB              // Game Boy Advance (running GB carts)
	ModelSGB              // Super Game Boy
	ModelSGB2             // Super Game Boy 2
)

// String returns the engine-side name of the model.
func (m Model) String() string {
	switch m {
	case ModelDMG:
		return "DMG"
	case ModelMGB:
		return "MGB"
	case ModelCGB:
		return "CGB"
	case ModelAGB:
		return "AGB"
	case ModelSGB:
		return "SGB"
	case ModelSGB2:
		return "SGB2"
	default:
		panic(fmt.Sprintf("gbcore: invalid model %d", int(m)))
	}
}

// ColorMode controls how the engine renders monochrome tiles: not at all
// enhanced, colorized through CGB palettes, or colorized through SGB
// palettes and borders.
type ColorMode int

const (
	ColorModeNone ColorMode = iota
	ColorModeCGB
	ColorModeSGB
)

// String returns the display name of the color mode.
func (c ColorMode) String() string {
	switch c {
	case ColorModeNone:
		return "None"
	case ColorModeCGB:
		return "CGB"
	case ColorModeSGB:
		return "SGB"
	default:
		return "Unknown"
	}
}

// ColorModeFor returns the color mode implied by a hardware model.
// An out-of-range model is a caller contract violation and panics rather
// than letting the engine configure an undefined variant.
func ColorModeFor(m Model) ColorMode {
	switch m {
	case ModelDMG, ModelMGB:
		return ColorModeNone
	case ModelCGB, ModelAGB:
		return ColorModeCGB
	case ModelSGB, ModelSGB2:
		return ColorModeSGB
	default:
		panic(fmt.Sprintf("gbcore: invalid model %d", int(m)))
	}
}

// requestMode distinguishes the three ways a host can ask for a model.
type requestMode int

// The zero value is requestAutoColor so a zero ModelRequest resolves
// automatically with the common preference.
const (
	requestAutoColor requestMode = iota
	requestAutoSuper
	requestFixed
)

// ModelRequest is the host's model selection policy for a ROM load: either
// a fixed hardware variant, or automatic resolution from the cartridge
// header with a stated preference for when a cart supports both CGB and
// SGB enhancement.
type ModelRequest struct {
	mode  requestMode
	model Model
}

// FixedModel requests a specific hardware variant with no header inspection.
func FixedModel(m Model) ModelRequest {
	return ModelRequest{mode: requestFixed, model: m}
}

// AutoPreferColor requests header-driven resolution, preferring CGB when a
// cartridge is both CGB- and SGB-enhanced.
func AutoPreferColor() ModelRequest {
	return ModelRequest{mode: requestAutoColor}
}

// AutoPreferSuper requests header-driven resolution, preferring SGB when a
// cartridge is both CGB- and SGB-enhanced.
func AutoPreferSuper() ModelRequest {
	return ModelRequest{mode: requestAutoSuper}
}

// IsFixed reports whether the request names a fixed model, returning it.
func (r ModelRequest) IsFixed() (Model, bool) {
	return r.model, r.mode == requestFixed
}

// PrefersColor reports whether an automatic request resolves enhancement
// conflicts toward CGB.
func (r ModelRequest) PrefersColor() bool {
	return r.mode == requestAutoColor
}

// ResolvedModel is the outcome of model resolution: the hardware variant
// the engine must initialize as, and the derived color-handling mode.
// It is computed at most once per ROM load and is immutable afterwards.
type ResolvedModel struct {
	Model     Model
	ColorMode ColorMode
}

// String returns a compact description, e.g. "SGB2 (SGB)".
func (r ResolvedModel) String() string {
	return fmt.Sprintf("%s (%s)", r.Model, r.ColorMode)
}
