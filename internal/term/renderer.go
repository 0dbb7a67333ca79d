package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-lawn-defense/internal/app"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/pkg/grid"
)

var (
	styleLawn       = tcell.StyleDefault.Background(tcell.NewRGBColor(100, 200, 100)).Foreground(tcell.ColorBlack)
	styleLawnAlt    = tcell.StyleDefault.Background(tcell.NewRGBColor(80, 180, 80)).Foreground(tcell.ColorBlack)
	styleShooter    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Bold(true)
	styleGenerator  = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleAttacker   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleResource   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFading     = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	runeShooter    = 'P'
	runeGenerator  = '@'
	runeAttacker   = 'Z'
	runeProjectile = 'o'
	runeResource   = '$'
)

// Renderer рисует сессию символами.
type Renderer struct {
	screen tcell.Screen
	layout Layout
}

func NewRenderer(screen tcell.Screen, layout Layout) *Renderer {
	return &Renderer{screen: screen, layout: layout}
}

// Frame — всё, что нужно для одного кадра.
type Frame struct {
	Snapshot    app.Snapshot
	Defenders   []app.EntityView
	Attackers   []app.EntityView
	Projectiles []app.EntityView
	Resources   []app.EntityView
	Cursor      grid.Cell
	Selected    defs.DefenderKind
	Message     string
	Blink       bool
}

func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	r.drawHUD(f)
	r.drawLawn(f.Cursor)

	for _, d := range f.Defenders {
		x, y := r.layout.CellOrigin(d.Row, d.Col)
		ch, st := runeShooter, styleShooter
		if defs.DefenderKind(d.Kind) == defs.KindGenerator {
			ch, st = runeGenerator, styleGenerator
		}
		r.put(x+r.layout.CellW/2, y+r.layout.CellH/2, ch, r.onLawn(x, y, st))
		r.drawBar(x+1, y, r.layout.CellW-2, d.HealthRatio)
	}
	for _, p := range f.Projectiles {
		x, y := r.layout.ToScreen(p.Pos)
		r.put(x, y, runeProjectile, r.onLawn(x, y, styleProjectile))
	}
	for _, a := range f.Attackers {
		x, y := r.layout.ToScreen(a.Pos)
		y = r.layout.OriginY + a.Row*r.layout.CellH + r.layout.CellH/2
		r.put(x, y, runeAttacker, r.onLawn(x, y, styleAttacker))
		r.drawBar(x, y-1, 3, a.HealthRatio)
	}
	for _, res := range f.Resources {
		st := styleResource
		if res.Fading && f.Blink {
			st = styleFading
		}
		x, y := r.layout.ToScreen(res.Pos)
		r.put(x, y, runeResource, r.onLawn(x, y, st))
	}

	r.drawStatus(f)
	r.screen.Show()
}

func (r *Renderer) drawHUD(f Frame) {
	s := f.Snapshot
	r.text(0, 0, fmt.Sprintf("Level %d (%s)  Sun %d  Score %d  Kills %d/%d",
		s.Level, s.Difficulty, s.Currency, s.Score, s.Killed, s.Quota), styleHUD)

	sel := "none"
	if f.Selected != "" {
		sel = fmt.Sprintf("%s (%d)", defs.DefenderLibrary[f.Selected].Name, defs.DefenderLibrary[f.Selected].Cost)
	}
	r.text(0, 1, "Seed: "+sel+"   [1] shooter [2] generator  [space] plant  [c] collect  [p] pause  [q] quit", styleHUD)
}

func (r *Renderer) drawLawn(cursor grid.Cell) {
	for row := 0; row < r.layout.Grid.Rows; row++ {
		for col := 0; col < r.layout.Grid.Cols; col++ {
			st := styleLawn
			if (row+col)%2 == 1 {
				st = styleLawnAlt
			}
			if row == cursor.Row && col == cursor.Col {
				st = st.Reverse(true)
			}
			x0, y0 := r.layout.CellOrigin(row, col)
			for dy := 0; dy < r.layout.CellH; dy++ {
				for dx := 0; dx < r.layout.CellW; dx++ {
					r.put(x0+dx, y0+dy, ' ', st)
				}
			}
		}
	}
}

// onLawn сохраняет фон клетки под символом.
func (r *Renderer) onLawn(x, y int, st tcell.Style) tcell.Style {
	_, _, cur, _ := r.screen.GetContent(x, y)
	_, bg, _ := cur.Decompose()
	return st.Background(bg)
}

func (r *Renderer) drawBar(x, y, w int, ratio float64) {
	if ratio >= 1 || w <= 0 {
		return
	}
	filled := int(ratio * float64(w))
	for i := 0; i < w; i++ {
		ch := '-'
		if i < filled {
			ch = '='
		}
		r.put(x+i, y, ch, r.onLawn(x+i, y, styleAlert))
	}
}

func (r *Renderer) drawStatus(f Frame) {
	y := r.layout.OriginY + r.layout.Height() + 1
	s := f.Snapshot
	switch {
	case s.Over:
		r.text(0, y, "GAME OVER  [r] retry  [q] quit", styleAlert)
	case s.Completed:
		r.text(0, y, fmt.Sprintf("LEVEL %d COMPLETE  [n] next  [r] replay  [q] quit", s.Level), styleResource)
	case s.Paused:
		r.text(0, y, "PAUSED  [p] resume", styleHUD)
	}
	if f.Message != "" {
		r.text(0, y+1, f.Message, styleAlert)
	}
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for i, ch := range []rune(s) {
		r.put(x+i, y, ch, st)
	}
}

func (r *Renderer) put(x, y int, ch rune, st tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, st)
}
