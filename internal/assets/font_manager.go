// internal/assets/font_manager.go
package assets

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"go-lawn-defense/internal/logging"
)

// DefaultFontPath — TTF рядом с бинарником.
const DefaultFontPath = "assets/fonts/arial.ttf"

// FontManager загружает TTF один раз и кэширует начертания по размеру.
// Если файла нет, все размеры отдаются встроенным basicfont.
type FontManager struct {
	path   string
	parsed *opentype.Font
	faces  map[float64]font.Face
	logger *slog.Logger
}

func NewFontManager(path string, logger *slog.Logger) *FontManager {
	m := &FontManager{
		path:   path,
		faces:  make(map[float64]font.Face),
		logger: logging.OrNoop(logger).With("component", "assets"),
	}
	tt, err := parseFont(path)
	if err != nil {
		m.logger.Warn("falling back to built-in font", "path", path, "error", err)
		return m
	}
	m.parsed = tt
	return m
}

func parseFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return tt, nil
}

// Face возвращает начертание нужного размера.
func (m *FontManager) Face(size float64) font.Face {
	if m.parsed == nil {
		return basicfont.Face7x13
	}
	if f, ok := m.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(m.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		m.logger.Warn("failed to create font face", "size", size, "error", err)
		return basicfont.Face7x13
	}
	m.faces[size] = f
	return f
}

// Fallback — шрифт не загружен, используется basicfont.
func (m *FontManager) Fallback() bool { return m.parsed == nil }

// Close освобождает начертания.
func (m *FontManager) Close() {
	for size, f := range m.faces {
		f.Close()
		delete(m.faces, size)
	}
}
