package cannon

import (
	"fmt"
	"math"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"github.com/vovakirdan/kitty-cannon/internal/core"
)

// Visual characters for rendering
const (
	GroundChar  = '▀'
	DirtChar    = '░'
	CannonChar  = '█'
	ShellChar   = '●'
	TrailChar   = '·'
	PreviewChar = '∙'
	TargetChar  = '▓'
	WreckChar   = '▁'
	ImpactChar  = '✸'
)

const (
	hudRows       = 2
	viewMarginX   = 3.0 // Meters shown behind the cannon
	viewMarginBot = 3.0 // Meters shown below the ground line
)

// Viewport returns the side view mapping world X (downrange) and Y (up)
// onto the play area below the HUD.
func (g *Game) Viewport(w, h int) core.Viewport {
	base := g.cannon.Base()
	ground := g.cfg.Collision.GroundHeight
	return core.Viewport{
		Area: core.NewRect(0, hudRows, w, max(h-hudRows, 0)),
		MinX: base.X - viewMarginX,
		MaxX: base.X - viewMarginX + g.cfg.Arena.Width,
		MinY: ground - viewMarginBot,
		MaxY: ground + g.cfg.Arena.Height,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.cannon == nil {
		return
	}

	if g.phase == PhaseMenu {
		g.drawMenu(dst)
		return
	}

	vp := g.Viewport(dst.Width(), dst.Height())
	g.drawGround(dst, vp)
	g.drawTargets(dst, vp)
	if g.flight == nil {
		g.plot(dst, vp, g.Preview(), PreviewChar, core.ColorPreview)
	}
	g.plot(dst, vp, g.trail, TrailChar, core.ColorTrail)
	g.drawCannon(dst, vp)
	if g.world != nil {
		for _, f := range g.world.Positions() {
			g.plot(dst, vp, []ballistics.Vec3{f.Position}, ShellChar, core.ColorShell)
		}
	}
	if g.flashes > 0 {
		g.plot(dst, vp, []ballistics.Vec3{g.flash}, ImpactChar, core.ColorImpact)
	}
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.phase == PhaseGameOver {
		drawCenteredMessage(dst, "ROUND OVER", fmt.Sprintf("Score: %d  |  R to restart, B for menu", g.score))
	}
}

func (g *Game) drawGround(dst *core.Screen, vp core.Viewport) {
	_, row, ok := vp.ToScreen(vp.MinX, g.cfg.Collision.GroundHeight)
	if !ok {
		return
	}
	dst.DrawHLine(vp.Area.X, row, vp.Area.W, GroundChar, core.ColorGround)
	for y := row + 1; y < vp.Area.Bottom(); y++ {
		dst.DrawHLine(vp.Area.X, y, vp.Area.W, DirtChar, core.ColorGround)
	}
}

func (g *Game) drawTargets(dst *core.Screen, vp core.Viewport) {
	for _, t := range g.Targets() {
		b := t.Box.AABB
		x0, y0, ok0 := vp.ToScreen(b.Min.X, b.Max.Y)
		x1, y1, ok1 := vp.ToScreen(b.Max.X, b.Min.Y)
		if !ok0 || !ok1 {
			continue
		}
		if t.Hit {
			dst.DrawHLine(x0, y1, x1-x0+1, WreckChar, core.ColorTargetHit)
			continue
		}
		dst.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), TargetChar, core.ColorTarget)
	}
}

func (g *Game) drawCannon(dst *core.Screen, vp core.Viewport) {
	base := g.cannon.Base()
	x, y, ok := vp.ToScreen(base.X, base.Y)
	if !ok {
		return
	}
	dst.SetColor(x, y, CannonChar, core.ColorCannon)

	// Barrel glyph by elevation band
	switch e := g.cannon.Elevation(); {
	case e < 22.5:
		dst.SetColor(x+1, y, '━', core.ColorCannon)
	case e < 67.5:
		dst.SetColor(x+1, y-1, '╱', core.ColorCannon)
	default:
		dst.SetColor(x, y-1, '┃', core.ColorCannon)
	}
}

// plot draws one glyph per point, skipping points outside the view.
func (g *Game) plot(dst *core.Screen, vp core.Viewport, pts []ballistics.Vec3, r rune, c core.Color) {
	for _, p := range pts {
		if x, y, ok := vp.ToScreen(p.X, p.Y); ok {
			dst.SetColor(x, y, r, c)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	remaining, total := 0, 0
	if g.field != nil {
		remaining, total = g.field.Remaining(), len(g.field.Targets())
	}
	left := fmt.Sprintf(" Score: %d  Shots: %d/%d  Targets: %d/%d ",
		g.score, g.shotsLeft, g.cfg.Arena.Shots, total-remaining, total)
	dst.DrawTextColor(0, 0, left, core.ColorHUD)

	wind := windText(g.wind)
	dst.DrawTextColor(dst.Width()-len([]rune(wind))-1, 0, wind, core.ColorWind)

	aim := fmt.Sprintf(" Power %.1f m/s  Elev %.0f°  Yaw %.0f° ",
		g.cannon.Power(), g.cannon.Elevation(), g.cannon.Yaw())
	dst.DrawTextColor(0, 1, aim, core.ColorHUD)

	status, color := g.status, core.ColorHUD
	if g.recordErr != nil {
		status, color = "shot log unavailable", core.ColorWarning
	}
	if status != "" {
		dst.DrawTextColor(dst.Width()-len([]rune(status))-1, 1, status, color)
	}
}

// windText describes the horizontal wind with an arrow for the downrange
// component and a signed crosswind.
func windText(w ballistics.Vec3) string {
	if math.Hypot(w.X, w.Z) < 0.05 {
		return "Wind: calm"
	}
	arrow := "→"
	if w.X < 0 {
		arrow = "←"
	}
	return fmt.Sprintf("Wind: %s%.1f  cross %+.1f", arrow, math.Abs(w.X), w.Z)
}

func (g *Game) drawMenu(dst *core.Screen) {
	h := dst.Height()
	lines := []struct {
		text  string
		color core.Color
	}{
		{"K I T T Y   C A N N O N", core.ColorCannon},
		{"", core.ColorDefault},
		{g.title, core.ColorHUD},
		{fmt.Sprintf("%d shots, %d targets", g.cfg.Arena.Shots, g.cfg.Arena.Targets), core.ColorHUD},
		{"", core.ColorDefault},
		{"W/S elevation   A/D yaw   +/- power", core.ColorDefault},
		{"Space fire   F type power & angle   P pause", core.ColorDefault},
		{"", core.ColorDefault},
		{"Press Enter to start", core.ColorTarget},
	}
	top := (h - len(lines)) / 2
	for i, l := range lines {
		dst.DrawTextCentered(top+i, l.text, l.color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorWarning)
	dst.DrawTextColor(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorDefault)
}
