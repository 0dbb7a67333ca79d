// pkg/render/lawn_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lawn-defense/internal/app"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/pkg/grid"
)

// Scene — что нарисовать за кадр.
type Scene struct {
	Defenders   []app.EntityView
	Attackers   []app.EntityView
	Projectiles []app.EntityView
	Resources   []app.EntityView
	Hover       *grid.Cell // клетка под курсором, если выбран защитник
	Frame       uint64
}

type LawnRenderer struct {
	grid         grid.Grid
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	colors       LawnColors
	lawnImage    *ebiten.Image // предрендеренный фон
}

func NewLawnRenderer(g grid.Grid, screenWidth, screenHeight int, face font.Face, colors LawnColors) *LawnRenderer {
	r := &LawnRenderer{
		grid:         g,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     face,
		colors:       colors,
		lawnImage:    ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderLawnImage()
	return r
}

// RenderLawnImage рисует небо и шахматный газон один раз.
func (r *LawnRenderer) RenderLawnImage() {
	r.lawnImage.Fill(r.colors.SkyColor)
	cs := float32(r.grid.CellSize)
	for row := 0; row < r.grid.Rows; row++ {
		for col := 0; col < r.grid.Cols; col++ {
			x, y := r.grid.CellOrigin(row, col)
			c := r.colors.LawnColor
			if (row+col)%2 == 1 {
				c = r.colors.LawnAltColor
			}
			vector.DrawFilledRect(r.lawnImage, float32(x), float32(y), cs, cs, c, false)
		}
	}
	vector.StrokeRect(r.lawnImage, float32(r.grid.OriginX), float32(r.grid.OriginY),
		float32(r.grid.Right()-r.grid.OriginX), float32(r.grid.Bottom()-r.grid.OriginY),
		r.colors.StrokeWidth, DarkenColor(r.colors.LawnColor), true)
}

func (r *LawnRenderer) Draw(screen *ebiten.Image, scene Scene) {
	screen.DrawImage(r.lawnImage, nil)

	if scene.Hover != nil {
		x, y := r.grid.CellOrigin(scene.Hover.Row, scene.Hover.Col)
		cs := float32(r.grid.CellSize)
		vector.StrokeRect(screen, float32(x)+1, float32(y)+1, cs-2, cs-2, 2, r.colors.HoverColor, false)
	}
	for _, d := range scene.Defenders {
		r.drawDefender(screen, d)
	}
	for _, a := range scene.Attackers {
		r.drawAttacker(screen, a)
	}
	for _, p := range scene.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X()), float32(p.Pos.Y()), float32(r.grid.CellSize*0.075), r.colors.ProjectileColor, true)
	}
	for _, res := range scene.Resources {
		r.drawResource(screen, res, scene.Frame)
	}
}

func (r *LawnRenderer) drawDefender(screen *ebiten.Image, d app.EntityView) {
	cs := r.grid.CellSize
	cx, cy := float32(d.Pos.X()+cs/2), float32(d.Pos.Y()+cs/2)
	radius := float32(cs * 0.35)

	switch defs.DefenderKind(d.Kind) {
	case defs.KindShooter:
		vector.DrawFilledRect(screen, cx, cy-radius*0.25, radius*1.2, radius*0.5, DarkenColor(r.colors.ShooterColor), true)
		vector.DrawFilledCircle(screen, cx, cy, radius, r.colors.ShooterColor, true)
	case defs.KindGenerator:
		vector.DrawFilledCircle(screen, cx, cy, radius, r.colors.GeneratorColor, true)
		vector.DrawFilledCircle(screen, cx, cy, radius*0.45, DarkenColor(r.colors.GeneratorColor), true)
	}
	vector.StrokeCircle(screen, cx, cy, radius, 1, r.colors.TextDarkColor, true)
	r.drawHealthBar(screen, float32(d.Pos.X()+cs*0.1), float32(d.Pos.Y()+4), float32(cs*0.8), d.HealthRatio)
}

func (r *LawnRenderer) drawAttacker(screen *ebiten.Image, a app.EntityView) {
	cs := r.grid.CellSize
	// X врага — его передний край, Y — верх ряда
	x, y := float32(a.Pos.X()), float32(a.Pos.Y()+cs*0.15)
	w, h := float32(cs*0.5), float32(cs*0.75)
	vector.DrawFilledRect(screen, x, y, w, h, r.colors.AttackerColor, true)
	vector.StrokeRect(screen, x, y, w, h, 1, DarkenColor(r.colors.AttackerColor), true)
	r.drawHealthBar(screen, x, y-8, w, a.HealthRatio)
}

func (r *LawnRenderer) drawResource(screen *ebiten.Image, res app.EntityView, frame uint64) {
	c := r.colors.ResourceColor
	if res.Fading && (frame/8)%2 == 1 {
		c = WithAlpha(c, 96)
	}
	radius := float32(r.grid.CellSize * 0.19)
	vector.DrawFilledCircle(screen, float32(res.Pos.X()), float32(res.Pos.Y()), radius, c, true)
	vector.StrokeCircle(screen, float32(res.Pos.X()), float32(res.Pos.Y()), radius, 2, DarkenColor(r.colors.ResourceColor), true)
}

func (r *LawnRenderer) drawHealthBar(screen *ebiten.Image, x, y, w float32, ratio float64) {
	if ratio >= 1 {
		return
	}
	vector.DrawFilledRect(screen, x, y, w, 4, r.colors.HealthBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(ratio), 4, r.colors.HealthFront, false)
}

// DrawCenteredText рисует строку с центром по x.
func DrawCenteredText(dst *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-(b.Max.X-b.Min.X)/2, y, clr)
}

// DrawOutlinedText рисует текст с обводкой толщиной thickness.
func DrawOutlinedText(dst *ebiten.Image, s string, face font.Face, x, y, thickness int, fill, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(dst, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(dst, s, face, x, y, fill)
}
