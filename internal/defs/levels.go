package defs

import (
	"fmt"

	"go-lawn-defense/internal/config"
)

// LevelDefinition описывает один уровень кампании.
type LevelDefinition struct {
	Number      int
	Description string
	Defenders   []DefenderKind // что можно сажать на уровне, в порядке панели
}

var levelDescriptions = [config.MaxLevel]string{
	"Welcome to the lawn! Learn the basics",
	"More attackers are coming, get your shooters ready",
	"Generators help you gather more resources",
	"Attackers start getting tougher",
	"The first real challenge",
	"Learn to lay out your defence line",
	"More rows, more trouble",
	"The attackers speed up",
	"Hold on, victory is close",
	"The first milestone level!",
	"A new challenge begins",
	"Noticeably more attackers",
	"A test of your layout",
	"Time for quick reactions",
	"Half-time break",
	"The second half begins",
	"Attackers get harder to handle",
	"Optimise your defender layout",
	"Persistence wins",
	"The second milestone!",
	"The final challenge begins",
	"Pushing the limits",
	"Strategy against speed",
	"Do not give up hope",
	"Three quarters of the way",
	"The final sprint",
	"A test of patience",
	"Victory in sight",
	"Final preparations",
	"The final level! Become a true lawn master",
}

// Level returns the catalog entry for n. Levels outside 1..MaxLevel get a
// generic description.
func Level(n int) LevelDefinition {
	def := LevelDefinition{
		Number:    n,
		Defenders: DefenderKinds,
	}
	if n >= 1 && n <= config.MaxLevel {
		def.Description = levelDescriptions[n-1]
	} else {
		def.Description = fmt.Sprintf("Level %d", n)
	}
	return def
}
