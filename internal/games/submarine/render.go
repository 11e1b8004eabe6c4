package submarine

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-submarine/internal/core"
)

// Visual characters for rendering
const (
	HullChar     = '█'
	BowChar      = '▶'
	WreckChar    = '▒'
	RockChar     = '▓'
	RockEdgeTop  = '▀'
	RockEdgeBot  = '▄'
	SurfaceChar  = '~'
	SeabedChar   = '▁'
	BubbleChar   = '°'
	bubbleSpread = 7
)

// viewport maps world units to screen cells.
type viewport struct {
	kx, ky float64
	w, h   int
}

func newViewport(p Params, w, h int) viewport {
	return viewport{
		kx: float64(w) / p.WorldW,
		ky: float64(h) / p.WorldH,
		w:  w,
		h:  h,
	}
}

// col converts a world x to a screen column.
func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.kx))
}

// row converts a world y to a screen row.
func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.ky))
}

// span converts a world extent starting at a to a cell count of at least one.
func span(a, size, k float64) int {
	n := int(math.Floor((a+size)*k)) - int(math.Floor(a*k))
	return max(n, 1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	p := g.base
	v := newViewport(p, dst.Width(), dst.Height())

	// Water surface and seabed
	dst.DrawHLine(0, 0, v.w, SurfaceChar, core.ColorCyan)
	dst.DrawHLine(0, v.h-1, v.w, SeabedChar, core.ColorBrown)

	for _, o := range g.state.Obstacles {
		g.drawObstacle(dst, v, o, p.WorldH)
	}

	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.state.Phase == PhaseGameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Obstacles passed: %d  |  Fitness: %.1f", g.state.Score, Fitness(g.state)),
			"R restart  |  Q quit")
	}
}

// drawObstacle renders both rock columns of an obstacle.
func (g *Game) drawObstacle(dst *core.Screen, v viewport, o Obstacle, worldH float64) {
	x := v.col(o.X)
	w := span(o.X, o.W, v.kx)

	gapTop := v.row(o.GapY)
	gapBottom := v.row(o.GapY + o.GapH)
	if gapBottom <= gapTop {
		gapBottom = gapTop + 1
	}

	dst.FillArea(x, 0, w, gapTop, RockChar, core.ColorBrown)
	if gapTop > 0 {
		dst.DrawHLine(x, gapTop-1, w, RockEdgeTop, core.ColorOrange)
	}

	bottomH := v.row(worldH) - gapBottom
	dst.FillArea(x, gapBottom, w, bottomH, RockChar, core.ColorBrown)
	dst.DrawHLine(x, gapBottom, w, RockEdgeBot, core.ColorOrange)
}

// drawPlayer renders the submarine, or its sinking wreck after a crash.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	pl := g.state.Player
	y := pl.Y
	crashed := g.state.Phase == PhaseGameOver
	if crashed {
		y = g.wreckY
	}

	x := v.col(pl.X)
	row := v.row(y)
	w := span(pl.X, pl.W, v.kx)
	h := span(y, pl.H, v.ky)

	if crashed {
		dst.FillArea(x, row, w, h, WreckChar, core.ColorRed)
		return
	}

	dst.FillArea(x, row, w, h, HullChar, core.ColorYellow)
	dst.SetColored(x+w-1, row+h/2, BowChar, core.ColorBrightYellow)

	// Bubbles trail behind while swimming up
	if pl.VY < 0 && g.state.Distance%bubbleSpread < bubbleSpread/2 {
		dst.SetColored(x-1, row+h-1, BubbleChar, core.ColorBrightCyan)
	}
}

// drawHUD renders the score line.
func (g *Game) drawHUD(dst *core.Screen) {
	color := core.ColorBrightWhite
	if g.glow > 0.5 {
		color = core.ColorBrightGreen
	} else if g.glow > 0 {
		color = core.ColorGreen
	}
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.state.Score), color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	inner := len([]rune(title))
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	boxW := inner + 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
