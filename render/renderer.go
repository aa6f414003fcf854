package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// Glyphs per entity kind; color distinguishes them further when enabled
const (
	glyphHead = '█'
	glyphBody = '▓'
	glyphFood = '●'
	glyphGrid = '·'
)

// Renderer draws the world onto a tcell screen
// Drawing reads the world only; it never mutates simulation state
type Renderer struct {
	screen tcell.Screen
	styles styles
}

// NewRenderer creates a renderer; color false draws monochrome
func NewRenderer(screen tcell.Screen, palette Palette, color bool) *Renderer {
	return &Renderer{
		screen: screen,
		styles: newStyles(palette, color),
	}
}

// Viewport returns the current arena transform for the screen size
// The visible span covers the inclusive food range [0, W] x [0, H]
func (r *Renderer) Viewport(w *engine.World) Viewport {
	sw, sh := r.screen.Size()
	cfg := w.Resources.Config
	return NewViewport(sw, sh, cfg.ArenaWidth+1, cfg.ArenaHeight+1, parameter.CellAspect, parameter.BottomMargin)
}

// Draw renders one frame
func (r *Renderer) Draw(w *engine.World) {
	r.screen.Clear()
	vp := r.Viewport(w)

	r.drawGrid(vp)

	for _, e := range w.Components.Food.GetAllEntities() {
		r.drawEntity(w, vp, e, glyphFood, r.styles.food)
	}

	// Tail first so the head stays on top where segments overlap
	chain := w.Resources.Snake.Chain.Entities()
	for i := len(chain) - 1; i >= 1; i-- {
		r.drawEntity(w, vp, chain[i], glyphBody, r.styles.body)
	}
	if len(chain) > 0 {
		r.drawEntity(w, vp, chain[0], glyphHead, r.styles.head)
	}

	r.drawStatus(w.Resources.Status)
	r.screen.Show()
}

func (r *Renderer) drawGrid(vp Viewport) {
	for y := 0; y < vp.SpanY; y++ {
		for x := 0; x < vp.SpanX; x++ {
			cx, cy, _, _ := vp.Rect(core.Point{X: x, Y: y}, 0, 0)
			r.screen.SetContent(cx, cy, glyphGrid, nil, r.styles.grid)
		}
	}
}

func (r *Renderer) drawEntity(w *engine.World, vp Viewport, e core.Entity, glyph rune, style tcell.Style) {
	p, ok := w.Positions.GetComponent(e)
	if !ok || !vp.Contains(p) {
		return
	}
	size, ok := w.Components.Size.GetComponent(e)
	if !ok {
		size.Width, size.Height = 1, 1
	}

	x, y, cols, rows := vp.Rect(p, size.Width, size.Height)
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			r.screen.SetContent(x+dx, y+dy, glyph, nil, style)
		}
	}
}

// StatusLine formats the bottom bar from the registry
func StatusLine(reg *status.Registry) string {
	var b strings.Builder

	if reg.Bools.Get(status.KeyMuted).Load() {
		b.WriteString(parameter.MutedStr)
	} else {
		b.WriteString(parameter.AudioStr)
	}

	fmt.Fprintf(&b, "len %d  food %d  eaten %d  tick %d",
		reg.Ints.Get(status.KeySnakeLength).Load(),
		reg.Ints.Get(status.KeyFoodActive).Load(),
		reg.Ints.Get(status.KeyFoodEaten).Load(),
		reg.Ints.Get(status.KeyTicks).Load(),
	)

	if session := reg.Strings.Get(status.KeySession).Load(); len(session) >= 8 {
		fmt.Fprintf(&b, "  [%s]", session[:8])
	}
	return b.String()
}

func (r *Renderer) drawStatus(reg *status.Registry) {
	sw, sh := r.screen.Size()
	row := sh - 1
	if row < 0 {
		return
	}

	col := 0
	if reg.Bools.Get(status.KeyPaused).Load() {
		col = r.drawText(col, row, sw, parameter.PausedText, r.styles.paused)
		col++
	}
	r.drawText(col, row, sw, StatusLine(reg), r.styles.status)
}

// drawText writes s from col and returns the column after it
func (r *Renderer) drawText(col, row, limit int, s string, style tcell.Style) int {
	for _, ch := range s {
		if col >= limit {
			break
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
	return col
}
