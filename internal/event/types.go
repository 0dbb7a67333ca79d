// internal/event/types.go
package event

import "go-lawn-defense/internal/types"

const (
	AttackerSpawned   EventType = "AttackerSpawned"
	AttackerKilled    EventType = "AttackerKilled" // Data: Kill
	DefenderPlaced    EventType = "DefenderPlaced" // Data: Placement
	DefenderDestroyed EventType = "DefenderDestroyed"
	ProjectileFired   EventType = "ProjectileFired"
	ProjectileHit     EventType = "ProjectileHit" // Data: Hit
	ResourceSpawned   EventType = "ResourceSpawned"
	ResourceCollected EventType = "ResourceCollected" // Data: Collection
	ResourceExpired   EventType = "ResourceExpired"
	SessionOver       EventType = "SessionOver"    // враг дошёл до края
	LevelCompleted    EventType = "LevelCompleted" // Data: Completion
	SessionPaused     EventType = "SessionPaused"
	SessionResumed    EventType = "SessionResumed"
	SessionReset      EventType = "SessionReset"
)

// Kill — данные события AttackerKilled.
type Kill struct {
	AttackerID types.EntityID
	Score      int
}

// Hit — данные события ProjectileHit.
type Hit struct {
	ProjectileID types.EntityID
	DefenderID   types.EntityID // кто стрелял
	AttackerID   types.EntityID
	Damage       int
}

// Placement — данные события DefenderPlaced.
type Placement struct {
	DefenderID types.EntityID
	Kind       string
	Row, Col   int
	Currency   int
}

// Collection — данные события ResourceCollected.
type Collection struct {
	ResourceID types.EntityID
	Value      int
	Currency   int
}

// Completion — данные события LevelCompleted.
type Completion struct {
	Level      int
	Difficulty string
	Score      int
	Err        error // ошибка записи прогресса, если была
}
