package adapter

import (
	"fmt"

	gbcore "github.com/user-none/gbcore/api"
)

// modelConfigKeys are the engine configuration keys that all carry the
// resolved model name. The engine consults a different key depending on
// which variant family it initializes, so every key is set.
var modelConfigKeys = []string{
	"gb.model",
	"sgb.model",
	"cgb.model",
	"cgb.hybridModel",
	"cgb.sgbModel",
}

// applyModel pushes the resolved model into engine configuration. Must
// run before Reset, since the engine reads these keys at reset time.
func (a *Adapter) applyModel(resolved gbcore.ResolvedModel) {
	cfg := a.eng.Config()
	name := resolved.Model.String()
	for _, key := range modelConfigKeys {
		cfg.SetDefaultValue(key, name)
	}
	a.eng.SetHardwareModel(resolved.Model)
	a.eng.SetColorMode(resolved.ColorMode)
}

// SetPalette sets the monochrome display palette. colors holds XRGB8888
// values: either 4 (applied to background, both sprite layers and the
// window) or 12 (4 per layer). Takes effect on the next frame.
func (a *Adapter) SetPalette(colors []uint32) error {
	if len(colors) != 4 && len(colors) != 12 {
		return fmt.Errorf("adapter: palette must have 4 or 12 colors, got %d", len(colors))
	}
	cfg := a.eng.Config()
	for i := 0; i < 12; i++ {
		cfg.SetUintValue(fmt.Sprintf("gb.pal[%d]", i), uint(colors[i%len(colors)]))
	}
	cfg.ReloadOption("gb.pal")
	return nil
}

// SetShowSGBBorders toggles Super Game Boy border rendering. The engine's
// video size changes with the border, so the screen area is refreshed.
func (a *Adapter) SetShowSGBBorders(show bool) {
	cfg := a.eng.Config()
	value := "0"
	if show {
		value = "1"
	}
	cfg.SetDefaultValue("sgb.borders", value)
	cfg.ReloadOption("sgb.borders")
	if a.video != nil {
		a.refreshScreenArea()
	}
}
