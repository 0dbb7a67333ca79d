package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"go-lawn-defense/internal/app"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/logging"
	"go-lawn-defense/pkg/grid"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg := app.DefaultSessionConfig(defs.Normal, 1)
	cfg.Seed = 3
	cfg.Logger = logging.Noop()
	session, err := app.NewLevelSession(cfg)
	if err != nil {
		t.Fatalf("NewLevelSession: %v", err)
	}
	return NewApp(screen, session, nil), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLayoutMapping(t *testing.T) {
	l := NewLayout(grid.New(5, 9, 80, 100, 100))

	x, y := l.ToScreen(mgl64.Vec2{100, 100})
	if x != l.OriginX || y != l.OriginY {
		t.Errorf("lawn origin maps to (%d,%d)", x, y)
	}
	x, y = l.ToScreen(mgl64.Vec2{180, 260})
	if x != l.OriginX+l.CellW || y != l.OriginY+2*l.CellH {
		t.Errorf("(180,260) maps to (%d,%d)", x, y)
	}
	if x, _ := l.ToScreen(mgl64.Vec2{90, 100}); x != l.OriginX-1 {
		t.Errorf("left of the lawn should round down, got %d", x)
	}

	if c, ok := l.CellAt(l.OriginX+l.CellW*8+1, l.OriginY+l.CellH*4); !ok || c != (grid.Cell{Row: 4, Col: 8}) {
		t.Errorf("CellAt last = %+v, %v", c, ok)
	}
	if _, ok := l.CellAt(l.OriginX+l.Width(), l.OriginY); ok {
		t.Error("right of the lawn must miss")
	}
	if _, ok := l.CellAt(0, 0); ok {
		t.Error("HUD area must miss")
	}
}

func TestCursorIsClamped(t *testing.T) {
	a, _ := newTestApp(t)
	for i := 0; i < 20; i++ {
		a.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
		a.HandleEvent(key('l'))
	}
	if a.cursor != (grid.Cell{Row: config.GridRows - 1, Col: config.GridCols - 1}) {
		t.Errorf("cursor = %+v", a.cursor)
	}
	for i := 0; i < 20; i++ {
		a.HandleEvent(key('k'))
		a.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	}
	if a.cursor != (grid.Cell{}) {
		t.Errorf("cursor = %+v", a.cursor)
	}
}

func TestPlantWithKeyboard(t *testing.T) {
	a, screen := newTestApp(t)

	a.HandleEvent(key(' '))
	if a.message == "" {
		t.Error("planting without a seed should explain why")
	}

	a.HandleEvent(key('j'))
	a.HandleEvent(key('l'))
	a.HandleEvent(key('1'))
	a.HandleEvent(key(' '))

	if len(a.session.World.Defenders) != 1 {
		t.Fatalf("defenders = %d", len(a.session.World.Defenders))
	}
	if a.session.Snapshot().Currency != config.StartingCurrency-config.PlacementCost {
		t.Errorf("currency = %d", a.session.Snapshot().Currency)
	}
	if a.selected != "" {
		t.Error("selection should clear after planting")
	}

	a.Draw()
	x, y := a.layout.CellOrigin(1, 1)
	ch, _, _, _ := screen.GetContent(x+a.layout.CellW/2, y+a.layout.CellH/2)
	if ch != runeShooter {
		t.Errorf("cell shows %q, want %q", ch, runeShooter)
	}

	// та же клетка занята
	a.HandleEvent(key('1'))
	a.HandleEvent(key(' '))
	if a.message != "cannot plant here" {
		t.Errorf("message = %q", a.message)
	}
}

func TestCollectUnderCursor(t *testing.T) {
	a, _ := newTestApp(t)
	x, y := a.layout.Grid.CellCenter(0, 0)
	a.session.ResourceSystem.SpawnAt(x, y, config.ResourceValue)

	a.HandleEvent(key('c'))
	if got := a.session.Snapshot().Currency; got != config.StartingCurrency+config.ResourceValue {
		t.Errorf("currency = %d", got)
	}
	if len(a.session.World.Resources) != 0 {
		t.Error("collected resource should be gone")
	}
}

func TestPauseAndQuit(t *testing.T) {
	a, _ := newTestApp(t)
	a.HandleEvent(key('p'))
	if !a.session.Snapshot().Paused {
		t.Error("p should pause")
	}
	a.Step(tickPeriod)
	if a.session.Snapshot().Ticks != 0 {
		t.Error("paused session must not tick")
	}
	a.HandleEvent(key('p'))
	a.Step(tickPeriod)
	if a.session.Snapshot().Ticks != 1 {
		t.Error("resumed session should tick")
	}
	if a.HandleEvent(key('q')) {
		t.Error("q should quit")
	}
	if a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
}

func TestStepReportsDuration(t *testing.T) {
	a, _ := newTestApp(t)
	calls := 0
	a.OnTick = func(time.Duration) { calls++ }
	a.Step(tickPeriod)
	a.Step(tickPeriod)
	if calls != 2 {
		t.Errorf("OnTick calls = %d, want 2", calls)
	}
}
