// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/progress"
	"go-lawn-defense/internal/ui"
	"go-lawn-defense/pkg/render"
)

const (
	menuButtonWidth  = 140
	menuButtonHeight = 40
	levelButtonSize  = 50
	levelButtonGap   = 10
	levelsPerRow     = 10
)

// MenuState — выбор сложности и уровня.
type MenuState struct {
	sm         *StateMachine
	ctx        *Context
	difficulty defs.Difficulty
	selected   int

	difficultyButtons []*ui.Button
	levels            *ui.LevelGrid
	playButton        *ui.Button
	resetButton       *ui.Button
}

func NewMenuState(sm *StateMachine, ctx *Context, d defs.Difficulty) *MenuState {
	return &MenuState{sm: sm, ctx: ctx, difficulty: d}
}

func (m *MenuState) Enter() {
	face := m.ctx.Fonts.Face(20)
	m.difficultyButtons = m.difficultyButtons[:0]
	total := len(defs.Difficulties)*menuButtonWidth + (len(defs.Difficulties)-1)*20
	x := (config.ScreenWidth - total) / 2
	for i, d := range defs.Difficulties {
		min := image.Pt(x+i*(menuButtonWidth+20), 100)
		m.difficultyButtons = append(m.difficultyButtons,
			ui.NewButton(image.Rectangle{Min: min, Max: min.Add(image.Pt(menuButtonWidth, menuButtonHeight))}, d.String(), face))
	}
	m.playButton = ui.NewButton(image.Rect(config.ScreenWidth/2-100, 440, config.ScreenWidth/2+100, 490), "", face)
	m.resetButton = ui.NewButton(image.Rect(config.ScreenWidth/2-100, 520, config.ScreenWidth/2+100, 560), "Reset progress", face)
	m.reload()
}

// reload перечитывает прогресс для текущей сложности.
func (m *MenuState) reload() {
	p := m.ctx.Store.Load(m.difficulty)
	m.selected = min(p.CurrentLevel, p.UnlockedLevels, config.MaxLevel)

	gridWidth := levelsPerRow*levelButtonSize + (levelsPerRow-1)*levelButtonGap
	m.levels = ui.NewLevelGrid(progress.AllLevels(m.ctx.Store, m.difficulty),
		(config.ScreenWidth-gridWidth)/2, 180, levelButtonSize, levelButtonGap, levelsPerRow, m.ctx.Fonts.Face(18))
	m.playButton.Text = fmt.Sprintf("Play level %d", m.selected)
}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.start()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		m.ctx.Audio.ToggleMusic()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.ctx.Audio.ToggleSound()
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for i, b := range m.difficultyButtons {
		if b.IsClicked(mx, my) {
			m.difficulty = defs.Difficulties[i]
			m.reload()
			return
		}
	}
	if level, ok := m.levels.LevelAt(mx, my); ok {
		m.selected = level
		m.playButton.Text = fmt.Sprintf("Play level %d", level)
		return
	}
	if m.playButton.IsClicked(mx, my) {
		m.start()
		return
	}
	if m.resetButton.IsClicked(mx, my) {
		if err := m.ctx.Store.Save(m.difficulty, progress.Default()); err != nil {
			m.ctx.Logger.Error("failed to reset progress", "difficulty", m.difficulty.String(), "error", err)
		}
		m.reload()
	}
}

func (m *MenuState) start() {
	gs, err := NewGameState(m.sm, m.ctx, m.difficulty, m.selected)
	if err != nil {
		m.ctx.Logger.Error("failed to start level", "level", m.selected, "error", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.SkyColor)
	mx, my := ebiten.CursorPosition()

	render.DrawOutlinedText(screen, "LAWN DEFENSE", m.ctx.Fonts.Face(40), config.ScreenWidth/2-150, 70, 2,
		config.LawnAltColor, config.TextLightColor)

	for i, b := range m.difficultyButtons {
		if defs.Difficulties[i] == m.difficulty {
			b.BgColor = config.GeneratorColor
		} else {
			b.BgColor = config.ButtonColor
		}
		b.Draw(screen, mx, my)
	}
	for i, b := range m.levels.Buttons {
		if m.levels.Levels[i].Level == m.selected {
			b.BgColor = config.GeneratorColor
		} else {
			b.BgColor = config.ButtonColor
		}
		b.Draw(screen, mx, my)
	}
	if info, err := progress.Info(m.ctx.Store, m.selected, m.difficulty); err == nil {
		render.DrawCenteredText(screen, fmt.Sprintf("%s  (quota %d)", info.Description, info.Quota),
			m.ctx.Fonts.Face(18), config.ScreenWidth/2, 410, config.TextDarkColor)
	}
	m.playButton.Draw(screen, mx, my)
	m.resetButton.Draw(screen, mx, my)
}

func (m *MenuState) Exit() {}
