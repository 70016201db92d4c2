// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// TankLibrary is a map to hold all tank definitions, keyed by their ID.
var TankLibrary map[string]TankDefinition

// LoadTankDefinitions reads the tank configuration file and populates the TankLibrary.
func LoadTankDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tank definitions file: %w", err)
	}

	var tankDefs []TankDefinition
	if err := json.Unmarshal(file, &tankDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tank definitions: %w", err)
	}

	library := make(map[string]TankDefinition)
	for _, def := range tankDefs {
		if def.ID == "" {
			return fmt.Errorf("tank definition without id in %s", path)
		}
		library[def.ID] = def.withDefaults()
	}
	TankLibrary = library

	log.Info("loaded tank definitions", "count", len(TankLibrary), "path", path)
	return nil
}

// Lookup возвращает определение по ID или DefaultTank, если его нет.
func Lookup(id string) (TankDefinition, bool) {
	if def, ok := TankLibrary[id]; ok {
		return def, true
	}
	return DefaultTank(), false
}
