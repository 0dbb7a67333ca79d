package progress

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)
	if got := s.Load(defs.Normal); got != Default() {
		t.Errorf("Load = %+v, want defaults", got)
	}
	if s.UnlockedLevels(defs.Hard) != 1 || s.CurrentLevel(defs.Hard) != 1 {
		t.Error("fresh store must unlock exactly level 1")
	}
}

func TestLoadCorruptFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, nil)
	if err := os.WriteFile(s.Path(defs.Easy), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(defs.Easy); got != Default() {
		t.Errorf("Load(corrupt) = %+v, want defaults", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "saves"), nil)
	want := Progress{CurrentLevel: 4, Score: 1230, UnlockedLevels: 5, TotalResourceCollected: 875, TotalAttackersKilled: 123}

	if err := s.Save(defs.Hard, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := s.Load(defs.Hard); got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
	// сложности не смешиваются
	if got := s.Load(defs.Easy); got != Default() {
		t.Errorf("easy progress leaked: %+v", got)
	}
	if _, err := os.Stat(s.Path(defs.Hard) + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

func TestSaveFileUsesSnakeCaseKeys(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)
	if err := s.Save(defs.Normal, Default()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(s.Path(defs.Normal))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"current_level", "score", "unlocked_levels", "total_resource_collected", "total_attackers_killed"} {
		if !strings.Contains(string(data), `"`+key+`"`) {
			t.Errorf("save file lacks key %q:\n%s", key, data)
		}
	}
}

func TestCompleteLevel(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)

	if err := s.CompleteLevel(1, defs.Normal); err != nil {
		t.Fatalf("CompleteLevel: %v", err)
	}
	p := s.Load(defs.Normal)
	if p.CurrentLevel != 2 || p.UnlockedLevels != 2 {
		t.Fatalf("after level 1: %+v", p)
	}

	// повторное прохождение старого уровня не закрывает открытые
	if err := s.Save(defs.Normal, Progress{CurrentLevel: 7, UnlockedLevels: 7}); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteLevel(3, defs.Normal); err != nil {
		t.Fatal(err)
	}
	p = s.Load(defs.Normal)
	if p.CurrentLevel != 4 || p.UnlockedLevels != 7 {
		t.Errorf("replaying level 3: %+v", p)
	}
}

func TestCompleteLevelOutOfRange(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)
	for _, level := range []int{0, config.MaxLevel + 1} {
		if err := s.CompleteLevel(level, defs.Easy); !errors.Is(err, ErrLevelOutOfRange) {
			t.Errorf("CompleteLevel(%d) = %v, want ErrLevelOutOfRange", level, err)
		}
	}
	if err := s.CompleteLevel(config.MaxLevel, defs.Easy); err != nil {
		t.Errorf("last level must be completable: %v", err)
	}
}

func TestResetProgress(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)
	if err := s.Save(defs.Easy, Progress{CurrentLevel: 9, UnlockedLevels: 9, Score: 10}); err != nil {
		t.Fatal(err)
	}
	if err := s.ResetProgress(defs.Easy); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(defs.Easy); got != Default() {
		t.Errorf("after reset: %+v", got)
	}
}

func TestRecordAddsStats(t *testing.T) {
	s := NewMemoryStore()
	stats := Stats{Score: 150, ResourcesCollected: 200, AttackersKilled: 15}
	if err := Record(s, defs.Normal, 1, stats); err != nil {
		t.Fatal(err)
	}
	if err := Record(s, defs.Normal, 2, stats); err != nil {
		t.Fatal(err)
	}
	want := Progress{CurrentLevel: 3, UnlockedLevels: 3, Score: 300, TotalResourceCollected: 400, TotalAttackersKilled: 30}
	if got := s.Load(defs.Normal); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSaveRejectsRecordsLoadWouldChange(t *testing.T) {
	bad := []Progress{
		{CurrentLevel: 0, UnlockedLevels: 0, Score: 5},
		{CurrentLevel: 2, UnlockedLevels: 0},
		{CurrentLevel: 1, UnlockedLevels: 1, TotalAttackersKilled: -1},
	}
	for _, p := range bad {
		fs := NewFileStore(t.TempDir(), nil)
		if err := fs.Save(defs.Normal, p); !errors.Is(err, ErrInvalidProgress) {
			t.Errorf("FileStore.Save(%+v) = %v, want ErrInvalidProgress", p, err)
		}
		if _, err := os.Stat(fs.Path(defs.Normal)); !os.IsNotExist(err) {
			t.Errorf("invalid record %+v was written", p)
		}
		if err := NewMemoryStore().Save(defs.Normal, p); !errors.Is(err, ErrInvalidProgress) {
			t.Errorf("MemoryStore.Save(%+v) = %v, want ErrInvalidProgress", p, err)
		}
	}
}

type countingStore struct {
	*MemoryStore
	completed []int
}

func (c *countingStore) CompleteLevel(level int, d defs.Difficulty) error {
	c.completed = append(c.completed, level)
	return c.MemoryStore.CompleteLevel(level, d)
}

func TestRecordGoesThroughCompleteLevel(t *testing.T) {
	s := &countingStore{MemoryStore: NewMemoryStore()}
	if err := Record(s, defs.Easy, 4, Stats{Score: 40}); err != nil {
		t.Fatal(err)
	}
	if len(s.completed) != 1 || s.completed[0] != 4 {
		t.Errorf("CompleteLevel calls = %v, want [4]", s.completed)
	}
	want := Progress{CurrentLevel: 5, UnlockedLevels: 5, Score: 40}
	if got := s.Load(defs.Easy); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLevelInfo(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Save(defs.Hard, Progress{CurrentLevel: 3, UnlockedLevels: 3}); err != nil {
		t.Fatal(err)
	}

	info, err := Info(s, 3, defs.Hard)
	if err != nil {
		t.Fatal(err)
	}
	if info.Quota != 75 || !info.Unlocked || info.Description == "" {
		t.Errorf("level 3 hard: %+v", info)
	}
	if _, err := Info(s, 31, defs.Hard); !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("Info(31) error = %v", err)
	}

	all := AllLevels(s, defs.Hard)
	if len(all) != config.MaxLevel {
		t.Fatalf("AllLevels returned %d levels", len(all))
	}
	unlocked := 0
	for _, li := range all {
		if li.Unlocked {
			unlocked++
		}
	}
	if unlocked != 3 {
		t.Errorf("unlocked = %d, want 3", unlocked)
	}
}
