// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lawn-defense/internal/app"
	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/ui"
	"go-lawn-defense/pkg/grid"
	"go-lawn-defense/pkg/render"
)

// GameState — экран уровня.
type GameState struct {
	sm          *StateMachine
	ctx         *Context
	session     *app.LevelSession
	renderer    *render.LawnRenderer
	hud         *ui.HUD
	seedBar     *ui.SeedBar
	pauseButton *ui.PauseButton
	face        font.Face
	bigFace     font.Face
	frame       uint64
	lastErr     error
}

func NewGameState(sm *StateMachine, ctx *Context, d defs.Difficulty, level int) (*GameState, error) {
	cfg := app.DefaultSessionConfig(d, level)
	cfg.Seed = ctx.Seed
	cfg.Logger = ctx.Logger
	cfg.Store = ctx.Store
	cfg.Dispatcher = event.NewDispatcher()
	ctx.listen(cfg.Dispatcher)

	session, err := app.NewLevelSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	face := ctx.Fonts.Face(18)
	gs := &GameState{
		sm:          sm,
		ctx:         ctx,
		session:     session,
		renderer:    render.NewLawnRenderer(session.Field().Grid, config.ScreenWidth, config.ScreenHeight, face, render.DefaultLawnColors()),
		hud:         ui.NewHUD(),
		seedBar:     ui.NewSeedBar(int(config.LawnLeft), 25, defs.Level(level).Defenders),
		pauseButton: ui.NewPauseButton(float32(config.ScreenWidth-40), 40, 12, config.PauseColor, config.PlayColor),
		face:        face,
		bigFace:     ctx.Fonts.Face(32),
	}
	session.EventDispatcher.SubscribeAll(event.ListenerFunc(gs.onStatus),
		event.SessionPaused, event.SessionResumed, event.SessionOver, event.LevelCompleted, event.SessionReset)
	return gs, nil
}

// onStatus держит кнопку паузы и индикатор в согласии с сессией.
func (g *GameState) onStatus(e event.Event) {
	g.pauseButton.SetPaused(e.Type == event.SessionPaused)
	g.hud.Indicator.HandleClick()
	if e.Type == event.LevelCompleted {
		if c, ok := e.Data.(event.Completion); ok && c.Err != nil {
			g.lastErr = c.Err
		}
	}
}

func (g *GameState) Enter() {
	g.ctx.Audio.PlayMusic()
}

func (g *GameState) Update(deltaTime float64) {
	g.frame++
	g.handleKeys()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}
	if g.sm.Current() != g {
		return
	}

	start := time.Now()
	if err := g.session.Tick(time.Duration(deltaTime * float64(time.Second))); err != nil {
		g.ctx.Logger.Error("tick failed", "error", err)
	}
	g.ctx.Metrics.ObserveTick(time.Since(start))
}

func (g *GameState) handleKeys() {
	snap := g.session.Snapshot()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.seedBar.Select(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.seedBar.Select(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.ctx.Audio.ToggleMusic()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.ctx.Audio.ToggleSound()
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if snap.Over || snap.Completed {
			g.sm.SetState(NewMenuState(g.sm, g.ctx, snap.Difficulty))
			return
		}
		g.pause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if snap.Over || snap.Completed {
			g.restart()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if snap.Completed && snap.Level < config.MaxLevel {
			g.nextLevel()
		}
	}
}

// handleClick: ресурс, панель семян, пауза, газон.
func (g *GameState) handleClick(mx, my int) {
	x, y := float64(mx), float64(my)
	if id, ok := g.session.ResourceAt(x, y); ok {
		g.session.CollectResource(id)
		return
	}
	if i, ok := g.seedBar.SlotAt(mx, my); ok {
		g.seedBar.Select(i)
		return
	}
	if g.pauseButton.IsClicked(mx, my) {
		g.pause()
		return
	}
	kind, ok := g.seedBar.SelectedKind()
	if !ok {
		return
	}
	if cell, ok := g.session.CellAt(x, y); ok && g.session.PlaceDefender(cell.Row, cell.Col, kind) {
		g.seedBar.Clear()
	}
}

func (g *GameState) pause() {
	if g.session.Status() != component.StatusActive {
		return
	}
	g.session.Pause()
	g.sm.Push(NewPauseState(g.sm, g))
}

func (g *GameState) restart() {
	g.lastErr = nil
	g.seedBar.Clear()
	g.session.Reset()
}

func (g *GameState) nextLevel() {
	g.lastErr = nil
	g.seedBar.Clear()
	if err := g.session.SetLevel(g.session.Level() + 1); err != nil {
		g.ctx.Logger.Error("failed to switch level", "error", err)
		return
	}
	g.seedBar.Kinds = defs.Level(g.session.Level()).Defenders
}

// hover — клетка под курсором при выбранном защитнике.
func (g *GameState) hover() *grid.Cell {
	if _, ok := g.seedBar.SelectedKind(); !ok {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	cell, ok := g.session.CellAt(float64(mx), float64(my))
	if !ok {
		return nil
	}
	return &cell
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.renderer.Draw(screen, render.Scene{
		Defenders:   g.session.Defenders(),
		Attackers:   g.session.Attackers(),
		Projectiles: g.session.Projectiles(),
		Resources:   g.session.Resources(),
		Hover:       g.hover(),
		Frame:       g.frame,
	})
	g.seedBar.Draw(screen, g.face, snap.Currency)
	g.hud.Draw(screen, snap, g.face, g.bigFace)
	g.pauseButton.Draw(screen)

	switch {
	case snap.Over:
		g.drawBanner(screen, "GAME OVER", "R: retry   Esc: menu")
	case snap.Completed:
		hint := "N: next level   R: replay   Esc: menu"
		if snap.Level >= config.MaxLevel {
			hint = "Campaign complete!   Esc: menu"
		}
		g.drawBanner(screen, fmt.Sprintf("LEVEL %d COMPLETE  score %d", snap.Level, snap.Score), hint)
	}
}

func (g *GameState) drawBanner(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	cx := config.ScreenWidth / 2
	render.DrawOutlinedText(screen, title, g.bigFace, cx-len(title)*8, config.ScreenHeight/2-20, 2,
		config.TextLightColor, config.TextDarkColor)
	render.DrawCenteredText(screen, hint, g.face, cx, config.ScreenHeight/2+20, config.TextLightColor)
	if g.lastErr != nil {
		render.DrawCenteredText(screen, "Progress was not saved", g.face, cx, config.ScreenHeight/2+50, config.UIColorRed)
	}
}

func (g *GameState) Exit() {
	g.ctx.Audio.StopMusic()
}
