// internal/defs/difficulty.go
package defs

// DifficultyDefinition holds the preset that a difficulty tier applies to a
// session: attacker stats, spawn pressure and the per-level quota multiplier.
type DifficultyDefinition struct {
	ID              Difficulty `json:"id"`
	SpawnRate       float64    `json:"spawn_rate"` // вероятность появления врага за тик
	AttackerHealth  int        `json:"attacker_health"`
	AttackerSpeed   float64    `json:"attacker_speed"`
	QuotaMultiplier int        `json:"quota_multiplier"`
}

// DifficultyLibrary is keyed by tier. LoadDifficultyDefinitions may replace
// entries from a JSON file.
var DifficultyLibrary = map[Difficulty]DifficultyDefinition{
	Easy:   {ID: Easy, SpawnRate: 0.003, AttackerHealth: 80, AttackerSpeed: 0.3, QuotaMultiplier: 5},
	Normal: {ID: Normal, SpawnRate: 0.005, AttackerHealth: 100, AttackerSpeed: 0.5, QuotaMultiplier: 15},
	Hard:   {ID: Hard, SpawnRate: 0.008, AttackerHealth: 150, AttackerSpeed: 0.7, QuotaMultiplier: 25},
}

// DifficultyFor returns the preset for d. Unknown tiers get the normal preset.
func DifficultyFor(d Difficulty) DifficultyDefinition {
	if def, ok := DifficultyLibrary[d]; ok {
		return def
	}
	return DifficultyLibrary[Normal]
}

// QuotaFor — сколько врагов нужно убить на уровне.
func QuotaFor(d Difficulty, level int) int {
	return level * DifficultyFor(d).QuotaMultiplier
}
