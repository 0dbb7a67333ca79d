// internal/defs/defenders.go
package defs

import "go-lawn-defense/internal/config"

// DefenderDefinition is the behaviour table entry for one defender kind.
type DefenderDefinition struct {
	Kind            DefenderKind `json:"kind"`
	Name            string       `json:"name"`
	Cost            int          `json:"cost"`
	Health          int          `json:"health"`
	CooldownTicks   int          `json:"cooldown_ticks"`
	InitialCooldown int          `json:"initial_cooldown"`
	Damage          int          `json:"damage,omitempty"`           // только стрелок
	ProjectileSpeed float64      `json:"projectile_speed,omitempty"` // только стрелок
	ResourceValue   int          `json:"resource_value,omitempty"`   // только генератор
}

// DefenderLibrary maps each kind to its definition.
var DefenderLibrary = map[DefenderKind]DefenderDefinition{
	KindShooter: {
		Kind:            KindShooter,
		Name:            "Peashooter",
		Cost:            config.PlacementCost,
		Health:          config.DefenderHealth,
		CooldownTicks:   config.ShooterCooldownTicks,
		InitialCooldown: config.ShooterCooldownTicks,
		Damage:          config.ProjectileDamage,
		ProjectileSpeed: config.ProjectileSpeed,
	},
	KindGenerator: {
		Kind:            KindGenerator,
		Name:            "Sunflower",
		Cost:            config.PlacementCost,
		Health:          config.DefenderHealth,
		CooldownTicks:   config.GeneratorCooldownTicks,
		InitialCooldown: config.GeneratorCooldownTicks,
		ResourceValue:   config.ResourceValue,
	},
}

// DefenderKinds lists the kinds in seed-bar order.
var DefenderKinds = []DefenderKind{KindShooter, KindGenerator}

// AttackerDefinition — параметры врага, не зависящие от сложности.
type AttackerDefinition struct {
	MeleeDamage   int
	CooldownTicks int
}

// Attacker is the single attacker kind; health and speed come from the
// difficulty preset.
var Attacker = AttackerDefinition{
	MeleeDamage:   config.MeleeDamage,
	CooldownTicks: config.MeleeCooldownTicks,
}
