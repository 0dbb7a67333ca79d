// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

// DefenderKind — тег варианта защитника.
type DefenderKind string

const (
	KindShooter   DefenderKind = "shooter"   // стреляет вдоль своего ряда
	KindGenerator DefenderKind = "generator" // периодически выдаёт ресурс
)

// Difficulty — уровень сложности.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// ErrUnknownDifficulty is returned for a difficulty outside easy/normal/hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties lists the tiers in menu order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// ParseDifficulty accepts the tier name in any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Easy, Normal, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

func (d Difficulty) String() string { return string(d) }
