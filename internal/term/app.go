// Package term — терминальный интерфейс к LevelSession на tcell.
package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-lawn-defense/internal/app"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/logging"
	"go-lawn-defense/pkg/grid"
)

// tickPeriod — один тик симуляции, ~60 в секунду.
const tickPeriod = time.Second / config.FPS

// App — цикл ввода и симуляции в терминале.
type App struct {
	screen   tcell.Screen
	session  *app.LevelSession
	renderer *Renderer
	layout   Layout
	logger   *slog.Logger

	cursor   grid.Cell
	selected defs.DefenderKind
	message  string
	frames   uint64

	// OnTick вызывается после каждого тика с его длительностью.
	OnTick func(time.Duration)
}

// NewApp привязывает экран к сессии. Экран должен быть инициализирован.
func NewApp(screen tcell.Screen, session *app.LevelSession, logger *slog.Logger) *App {
	layout := NewLayout(session.Field().Grid)
	return &App{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(screen, layout),
		layout:   layout,
		logger:   logging.OrNoop(logger).With("component", "term"),
	}
}

// Run крутит симуляцию до выхода пользователя или отмены ctx.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			eventChan <- ev
		}
	}()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		case <-ticker.C:
			a.Step(tickPeriod)
			a.Draw()
		}
	}
}

// Step продвигает сессию на один тик.
func (a *App) Step(elapsed time.Duration) {
	a.frames++
	start := time.Now()
	if err := a.session.Tick(elapsed); err != nil {
		a.message = err.Error()
		a.logger.Error("tick failed", "error", err)
	}
	if a.OnTick != nil {
		a.OnTick(time.Since(start))
	}
}

// HandleEvent обрабатывает ввод. false — пора выходить.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyEnter:
		a.plant()
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	snap := a.session.Snapshot()
	switch r {
	case 'q':
		return false
	case 'h':
		a.moveCursor(0, -1)
	case 'j':
		a.moveCursor(1, 0)
	case 'k':
		a.moveCursor(-1, 0)
	case 'l':
		a.moveCursor(0, 1)
	case '1':
		a.toggleSeed(defs.KindShooter)
	case '2':
		a.toggleSeed(defs.KindGenerator)
	case ' ':
		a.plant()
	case 'c':
		a.collect()
	case 'p':
		a.session.TogglePause()
	case 'r':
		if snap.Over || snap.Completed {
			a.message = ""
			a.session.Reset()
		}
	case 'n':
		if snap.Completed && snap.Level < config.MaxLevel {
			a.message = ""
			if err := a.session.SetLevel(snap.Level + 1); err != nil {
				a.logger.Error("failed to switch level", "error", err)
			}
		}
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if cell, ok := a.layout.CellAt(x, y); ok {
		a.cursor = cell
		if !a.collect() {
			a.plant()
		}
	}
}

func (a *App) moveCursor(dRow, dCol int) {
	g := a.layout.Grid
	a.cursor.Row = min(max(a.cursor.Row+dRow, 0), g.Rows-1)
	a.cursor.Col = min(max(a.cursor.Col+dCol, 0), g.Cols-1)
}

func (a *App) toggleSeed(kind defs.DefenderKind) {
	if a.selected == kind {
		a.selected = ""
		return
	}
	a.selected = kind
}

// plant сажает выбранного защитника в клетку под курсором.
func (a *App) plant() {
	if a.selected == "" {
		a.message = "select a seed first: 1 or 2"
		return
	}
	if !a.session.PlaceDefender(a.cursor.Row, a.cursor.Col, a.selected) {
		a.message = "cannot plant here"
		return
	}
	a.message = ""
	a.selected = ""
}

// collect собирает все ресурсы внутри клетки под курсором.
func (a *App) collect() bool {
	if a.session.Status().Terminal() {
		return false
	}
	x0, y0 := a.layout.Grid.CellOrigin(a.cursor.Row, a.cursor.Col)
	size := a.layout.Grid.CellSize
	collected := false
	for _, r := range a.session.Resources() {
		px, py := r.Pos.X(), r.Pos.Y()
		if px >= x0 && px < x0+size && py >= y0 && py < y0+size {
			collected = a.session.CollectResource(r.ID) || collected
		}
	}
	return collected
}

func (a *App) Draw() {
	a.renderer.Draw(Frame{
		Snapshot:    a.session.Snapshot(),
		Defenders:   a.session.Defenders(),
		Attackers:   a.session.Attackers(),
		Projectiles: a.session.Projectiles(),
		Resources:   a.session.Resources(),
		Cursor:      a.cursor,
		Selected:    a.selected,
		Message:     a.message,
		Blink:       (a.frames/15)%2 == 1,
	})
}
