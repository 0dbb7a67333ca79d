// internal/progress/file_store.go
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/logging"
)

// FileStore пишет по одному JSON-файлу на сложность: <dir>/game_save_<difficulty>.json.
// Не потокобезопасен, вызывается из игрового цикла.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logging.OrNoop(logger).With("component", "progress"),
	}
}

// Path — файл сохранения для сложности d.
func (s *FileStore) Path(d defs.Difficulty) string {
	return filepath.Join(s.dir, fmt.Sprintf("game_save_%s.json", d))
}

// Load читает сохранение. Отсутствующий файл даёт Default молча,
// нечитаемый или битый — Default с предупреждением в лог.
func (s *FileStore) Load(d defs.Difficulty) Progress {
	path := s.Path(d)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default()
	}
	if err != nil {
		s.logger.Warn("failed to read save file, using defaults", "path", path, "error", err)
		return Default()
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("corrupt save file, using defaults", "path", path, "error", err)
		return Default()
	}
	p.normalize()
	return p
}

// Save пишет файл через временный файл и rename, чтобы не оставить
// обрезанное сохранение. Запись, не прошедшая Validate, не пишется.
func (s *FileStore) Save(d defs.Difficulty, p Progress) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	path := s.Path(d)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

func (s *FileStore) CompleteLevel(level int, d defs.Difficulty) error {
	p := s.Load(d)
	if err := p.Complete(level); err != nil {
		return err
	}
	if err := s.Save(d, p); err != nil {
		return err
	}
	s.logger.Info("level completed", "difficulty", d, "level", level, "unlocked", p.UnlockedLevels)
	return nil
}

// ResetProgress перезаписывает сохранение значениями по умолчанию.
func (s *FileStore) ResetProgress(d defs.Difficulty) error {
	return s.Save(d, Default())
}

func (s *FileStore) UnlockedLevels(d defs.Difficulty) int { return s.Load(d).UnlockedLevels }

func (s *FileStore) CurrentLevel(d defs.Difficulty) int { return s.Load(d).CurrentLevel }
