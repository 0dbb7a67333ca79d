// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDifficultyDefinitions reads a JSON array of difficulty presets and
// replaces the matching entries of DifficultyLibrary. Tiers absent from the
// file keep their built-in values.
func LoadDifficultyDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read difficulty definitions file: %w", err)
	}

	var difficultyDefs []DifficultyDefinition
	if err := json.Unmarshal(file, &difficultyDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal difficulty definitions: %w", err)
	}

	for _, def := range difficultyDefs {
		if _, err := ParseDifficulty(string(def.ID)); err != nil {
			return 0, err
		}
		if def.QuotaMultiplier <= 0 || def.AttackerHealth <= 0 {
			return 0, fmt.Errorf("invalid difficulty definition %q", def.ID)
		}
	}
	for _, def := range difficultyDefs {
		DifficultyLibrary[def.ID] = def
	}
	return len(difficultyDefs), nil
}

// LoadDefenderDefinitions reads a JSON array of defender definitions and
// replaces the matching entries of DefenderLibrary.
func LoadDefenderDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read defender definitions file: %w", err)
	}

	var defenderDefs []DefenderDefinition
	if err := json.Unmarshal(file, &defenderDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal defender definitions: %w", err)
	}

	for _, def := range defenderDefs {
		if _, ok := DefenderLibrary[def.Kind]; !ok {
			return 0, fmt.Errorf("unknown defender kind %q", def.Kind)
		}
	}
	for _, def := range defenderDefs {
		DefenderLibrary[def.Kind] = def
	}
	return len(defenderDefs), nil
}
