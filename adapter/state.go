package adapter

import (
	"fmt"
	"os"
)

// SaveState captures the engine state and writes it to path.
func (a *Adapter) SaveState(path string) error {
	data, err := a.eng.SaveState()
	if err != nil {
		return fmt.Errorf("adapter: failed to capture state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("adapter: failed to write state: %w", err)
	}
	return nil
}

// LoadState restores engine state from path. The screen area is refreshed
// afterwards, since the restored state may have a different video size.
func (a *Adapter) LoadState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("adapter: failed to read state: %w", err)
	}
	if err := a.eng.LoadState(data); err != nil {
		return fmt.Errorf("adapter: failed to restore state: %w", err)
	}
	if a.video != nil {
		a.refreshScreenArea()
	}
	return nil
}

// BatterySave returns the cartridge's battery-backed save data, if any.
func (a *Adapter) BatterySave() ([]byte, bool) {
	return a.eng.BatterySave()
}

// SaveBattery writes battery-backed save data to path. It is a no-op for
// cartridges without battery saves.
func (a *Adapter) SaveBattery(path string) error {
	data, ok := a.eng.BatterySave()
	if !ok {
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("adapter: failed to write battery save: %w", err)
	}
	return nil
}
