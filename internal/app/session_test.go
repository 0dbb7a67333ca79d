package app

import (
	"errors"
	"testing"
	"time"

	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/logging"
	"go-lawn-defense/internal/progress"
)

const frame = time.Second / 60

func newTestSession(t *testing.T, d defs.Difficulty, level int, store progress.Store) *LevelSession {
	t.Helper()
	cfg := DefaultSessionConfig(d, level)
	cfg.Seed = 7
	cfg.Store = store
	cfg.Logger = logging.Noop()
	s, err := NewLevelSession(cfg)
	if err != nil {
		t.Fatalf("NewLevelSession: %v", err)
	}
	return s
}

func checkCounters(t *testing.T, s *LevelSession) {
	t.Helper()
	snap := s.Snapshot()
	alive := len(s.World.Attackers)
	if snap.Killed+alive > snap.Spawned || snap.Spawned > snap.Quota {
		t.Fatalf("tick %d: killed=%d alive=%d spawned=%d quota=%d", snap.Ticks, snap.Killed, alive, snap.Spawned, snap.Quota)
	}
}

func TestNewLevelSessionValidates(t *testing.T) {
	cfg := DefaultSessionConfig("nightmare", 1)
	if _, err := NewLevelSession(cfg); !errors.Is(err, defs.ErrUnknownDifficulty) {
		t.Errorf("unknown difficulty: err = %v", err)
	}
	cfg = DefaultSessionConfig(defs.Easy, 0)
	if _, err := NewLevelSession(cfg); !errors.Is(err, progress.ErrLevelOutOfRange) {
		t.Errorf("level 0: err = %v", err)
	}

	s := newTestSession(t, defs.Easy, 2, nil)
	snap := s.Snapshot()
	if snap.Currency != config.StartingCurrency || snap.Quota != 10 || snap.Status != component.StatusActive {
		t.Errorf("fresh session: %+v", snap)
	}
}

func TestPlacementCostAndOccupancy(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)

	if !s.PlaceDefender(2, 3, defs.KindShooter) {
		t.Fatal("first placement failed")
	}
	if got := s.Snapshot().Currency; got != 50 {
		t.Fatalf("currency = %d, want 50", got)
	}
	if s.PlaceDefender(2, 3, defs.KindGenerator) {
		t.Error("placement on an occupied cell succeeded")
	}
	if got := s.Snapshot().Currency; got != 50 {
		t.Errorf("failed placement changed currency to %d", got)
	}
	if len(s.World.Defenders) != 1 {
		t.Errorf("defenders = %d", len(s.World.Defenders))
	}
}

func TestPlacementRejections(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)

	tests := []struct {
		name     string
		row, col int
		kind     defs.DefenderKind
	}{
		{"row outside grid", config.GridRows, 0, defs.KindShooter},
		{"negative column", 0, -1, defs.KindShooter},
		{"unknown kind", 0, 0, "wallnut"},
	}
	for _, tt := range tests {
		if s.PlaceDefender(tt.row, tt.col, tt.kind) {
			t.Errorf("%s: placement succeeded", tt.name)
		}
	}

	s.PlaceDefender(0, 0, defs.KindShooter)
	s.PlaceDefender(0, 1, defs.KindShooter)
	if s.PlaceDefender(0, 2, defs.KindShooter) {
		t.Error("placement without enough currency succeeded")
	}
	if s.Snapshot().Currency != 0 {
		t.Errorf("currency = %d", s.Snapshot().Currency)
	}
}

func TestCollectResource(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	s.ResourceSystem.SpawnAt(300, 300, config.ResourceValue)

	id, ok := s.ResourceAt(305, 305)
	if !ok {
		t.Fatal("ResourceAt missed the resource")
	}
	if !s.CollectResource(id) {
		t.Fatal("CollectResource failed")
	}
	snap := s.Snapshot()
	if snap.Currency != 125 || snap.ResourcesCollected != 25 {
		t.Errorf("after collect: %+v", snap)
	}
	if s.CollectResource(id) {
		t.Error("collecting the same resource twice succeeded")
	}
	if s.CollectResource(9999) {
		t.Error("collecting an unknown id succeeded")
	}
}

func TestSkyResourceEveryInterval(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	for i := 0; i < 4; i++ {
		s.Tick(time.Second)
	}
	if n := len(s.World.Resources); n != 0 {
		t.Fatalf("resource fell after 4s: %d", n)
	}
	s.Tick(time.Second)
	if n := len(s.World.Resources); n != 1 {
		t.Fatalf("resources after 5s = %d, want 1", n)
	}
	if v := s.Resources()[0]; v.Kind != ViewResource || v.Pos.X() < config.ResourceMinX || v.Pos.X() > config.ResourceMaxX {
		t.Errorf("unexpected view %+v", v)
	}
}

func TestGeneratorFeedsField(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	s.PlaceDefender(1, 1, defs.KindGenerator)

	for i := 0; i < config.GeneratorCooldownTicks; i++ {
		s.Tick(0)
	}
	var fromGenerator int
	for _, r := range s.World.Resources {
		if r.Source == component.FromGenerator {
			fromGenerator++
		}
	}
	if fromGenerator != 1 {
		t.Errorf("generator resources = %d, want 1", fromGenerator)
	}
}

func TestQuotaKilledCompletesLevel(t *testing.T) {
	store := progress.NewMemoryStore()
	s := newTestSession(t, defs.Normal, 1, store)

	var completed []event.Completion
	s.EventDispatcher.Subscribe(event.LevelCompleted, event.ListenerFunc(func(e event.Event) {
		completed = append(completed, e.Data.(event.Completion))
	}))

	for i := 0; i < 15; i++ {
		id, ok := s.SpawnAttacker(i % config.GridRows)
		if !ok {
			t.Fatalf("spawn %d failed", i)
		}
		s.World.Attacker(id).Health = component.Health{Value: 1, Max: 1}
		if !s.DamageAttacker(id, 1) {
			t.Fatalf("damage %d failed", i)
		}
	}
	if _, ok := s.SpawnAttacker(0); ok {
		t.Fatal("spawn beyond the quota succeeded")
	}

	if err := s.Tick(frame); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	snap := s.Snapshot()
	if !snap.Completed || snap.Score != 150 || snap.Killed != 15 {
		t.Fatalf("after kills: %+v", snap)
	}
	if len(completed) != 1 || completed[0].Err != nil {
		t.Errorf("completion events: %+v", completed)
	}
	if p := store.Load(defs.Normal); p.CurrentLevel != 2 || p.UnlockedLevels != 2 || p.TotalAttackersKilled != 15 || p.Score != 150 {
		t.Errorf("stored progress: %+v", p)
	}
}

func TestBreachEndsSession(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	id, ok := s.SpawnAttacker(2)
	if !ok {
		t.Fatal("spawn failed")
	}
	if got := s.World.Attacker(id).Speed; got != 0.5 {
		t.Fatalf("normal attacker speed = %v", got)
	}

	field := s.Field()
	ticks := int((field.Width - field.Boundary) / 0.5)
	for i := 0; i < ticks-1; i++ {
		s.Tick(frame)
	}
	if st := s.Status(); st != component.StatusActive {
		t.Fatalf("status %v before the attacker reached the boundary", st)
	}
	s.Tick(frame)
	if !s.Snapshot().Over {
		t.Errorf("status %v after %d ticks, want over", s.Status(), ticks)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	id, _ := s.SpawnAttacker(0)
	s.Tick(frame)

	s.Pause()
	x := s.World.Attacker(id).Pos.X()
	before := s.Snapshot()
	for i := 0; i < 100; i++ {
		if err := s.Tick(frame); err != nil {
			t.Fatal(err)
		}
	}
	if s.Snapshot() != before || s.World.Attacker(id).Pos.X() != x {
		t.Error("paused session advanced")
	}

	s.TogglePause()
	s.Tick(frame)
	if s.Snapshot().Ticks != before.Ticks+1 {
		t.Error("resumed session did not advance")
	}
}

func TestPlaceAndCollectWhilePaused(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	s.Pause()
	r := s.ResourceSystem.SpawnAt(300, 300, config.ResourceValue)
	start := s.Snapshot().Currency

	if !s.CollectResource(r.ID) {
		t.Fatal("collect while paused refused")
	}
	if !s.PlaceDefender(0, 0, defs.KindShooter) {
		t.Fatal("placement while paused refused")
	}
	cost := defs.DefenderLibrary[defs.KindShooter].Cost
	snap := s.Snapshot()
	if snap.Currency != start+config.ResourceValue-cost {
		t.Errorf("currency = %d, want %d", snap.Currency, start+config.ResourceValue-cost)
	}
	if snap.Status != component.StatusPaused || snap.Ticks != 0 {
		t.Errorf("place/collect changed the clock: %+v", snap)
	}
}

func TestTerminalStateNeedsReset(t *testing.T) {
	s := newTestSession(t, defs.Hard, 1, nil)
	id, _ := s.SpawnAttacker(0)
	s.World.Attacker(id).Pos[0] = s.Field().Boundary
	s.Tick(frame)
	if !s.Snapshot().Over {
		t.Fatal("session not over")
	}

	ticks := s.Snapshot().Ticks
	s.Resume()
	s.Pause()
	s.Tick(frame)
	if s.Status() != component.StatusOver || s.Snapshot().Ticks != ticks {
		t.Error("terminal session changed without reset")
	}
	if s.PlaceDefender(1, 1, defs.KindShooter) {
		t.Error("placement after game over succeeded")
	}

	s.Reset()
	snap := s.Snapshot()
	if snap.Status != component.StatusActive || snap.Currency != config.StartingCurrency || snap.Killed != 0 || s.World.Count() != 0 {
		t.Errorf("after reset: %+v count=%d", snap, s.World.Count())
	}
	if snap.Level != 1 || snap.Difficulty != defs.Hard {
		t.Error("reset must keep level and difficulty")
	}
}

type failingStore struct {
	progress.MemoryStore
	err error
}

func (f *failingStore) Save(defs.Difficulty, progress.Progress) error { return f.err }

func (f *failingStore) CompleteLevel(int, defs.Difficulty) error { return f.err }

func TestStoreFailureIsReportedWithoutRollback(t *testing.T) {
	errDisk := errors.New("disk full")
	s := newTestSession(t, defs.Easy, 1, &failingStore{MemoryStore: *progress.NewMemoryStore(), err: errDisk})

	for i := 0; i < 5; i++ {
		id, _ := s.SpawnAttacker(i)
		s.DamageAttacker(id, 1000)
	}
	err := s.Tick(frame)
	if !errors.Is(err, errDisk) {
		t.Fatalf("Tick error = %v, want disk error", err)
	}
	if !s.Snapshot().Completed {
		t.Error("completion rolled back after store failure")
	}
	if err := s.Tick(frame); err != nil {
		t.Errorf("completed session ticked again: %v", err)
	}
}

func TestSetLevelAndDifficulty(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	s.PlaceDefender(0, 0, defs.KindShooter)

	if err := s.SetLevel(3); err != nil {
		t.Fatal(err)
	}
	if snap := s.Snapshot(); snap.Quota != 45 || snap.Level != 3 || len(s.World.Defenders) != 0 {
		t.Errorf("after SetLevel: %+v", snap)
	}
	if err := s.SetLevel(config.MaxLevel + 1); !errors.Is(err, progress.ErrLevelOutOfRange) {
		t.Errorf("SetLevel(31) = %v", err)
	}
	if err := s.SetDifficulty("HARD"); err != nil {
		t.Fatal(err)
	}
	if snap := s.Snapshot(); snap.Quota != 75 || snap.Difficulty != defs.Hard {
		t.Errorf("after SetDifficulty: %+v", snap)
	}
	if err := s.SetDifficulty("impossible"); !errors.Is(err, defs.ErrUnknownDifficulty) {
		t.Errorf("SetDifficulty(impossible) = %v", err)
	}
}

func TestCellAt(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	cell, ok := s.CellAt(config.LawnLeft+config.CellSize*2+5, config.LawnTop+config.CellSize+5)
	if !ok || cell.Row != 1 || cell.Col != 2 {
		t.Errorf("CellAt = %+v,%v", cell, ok)
	}
	if _, ok := s.CellAt(10, 10); ok {
		t.Error("point above the lawn mapped to a cell")
	}
}

func TestEventsArePublished(t *testing.T) {
	s := newTestSession(t, defs.Normal, 1, nil)
	var placed []event.Placement
	s.EventDispatcher.Subscribe(event.DefenderPlaced, event.ListenerFunc(func(e event.Event) {
		placed = append(placed, e.Data.(event.Placement))
	}))

	s.PlaceDefender(4, 8, defs.KindGenerator)
	if len(placed) != 1 {
		t.Fatalf("placements = %d", len(placed))
	}
	if p := placed[0]; p.Row != 4 || p.Col != 8 || p.Kind != "generator" || p.Currency != 50 {
		t.Errorf("payload %+v", p)
	}
}

// Полная игра с защитой во всех рядах: счётчики согласованы на каждом тике,
// а уровень в итоге проходится.
func TestCountersHoldThroughFullLevel(t *testing.T) {
	store := progress.NewMemoryStore()
	cfg := DefaultSessionConfig(defs.Normal, 1)
	cfg.Seed = 20240611
	cfg.StartingCurrency = 1000
	cfg.Store = store
	cfg.Logger = logging.Noop()
	s, err := NewLevelSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < config.GridRows; row++ {
		s.PlaceDefender(row, 0, defs.KindShooter)
		s.PlaceDefender(row, 1, defs.KindShooter)
	}

	for i := 0; i < 30000 && !s.Status().Terminal(); i++ {
		if err := s.Tick(frame); err != nil {
			t.Fatal(err)
		}
		checkCounters(t, s)
		for _, r := range s.Resources() {
			s.CollectResource(r.ID)
		}
	}
	if !s.Snapshot().Completed {
		t.Fatalf("level not completed: %+v", s.Snapshot())
	}
	if store.Load(defs.Normal).UnlockedLevels != 2 {
		t.Error("completion not recorded")
	}
}
