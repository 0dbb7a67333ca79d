// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		unpause = unpause || s.game.pauseButton.IsClicked(mx, my)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.game.ctx, s.game.session.Difficulty()))
		return
	}
	if unpause {
		s.game.session.Resume()
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	render.DrawOutlinedText(screen, "PAUSED", s.game.bigFace, config.ScreenWidth/2-55, config.ScreenHeight/2, 2,
		config.TextLightColor, config.TextDarkColor)
	render.DrawCenteredText(screen, "P: resume   Q: menu", s.game.face, config.ScreenWidth/2, config.ScreenHeight/2+40, config.TextLightColor)
	s.game.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
