package render

import "github.com/lixenwraith/vi-snake/core"

// Viewport maps arena cells to terminal cells with a linear transform
// One arena cell spans CellCols x CellRows terminal cells; y is flipped so
// that higher arena rows render nearer the top of the screen
type Viewport struct {
	OriginX, OriginY   int // Top-left terminal cell of the visible arena
	CellCols, CellRows int
	SpanX, SpanY       int // Visible arena cells per axis
}

// NewViewport fits a square arena view of spanX x spanY cells inside the screen
// The bottom margin rows are reserved for the status line
func NewViewport(screenW, screenH, spanX, spanY, aspect, bottomMargin int) Viewport {
	rows := screenH - bottomMargin
	if rows < 1 {
		rows = 1
	}
	if spanX < 1 {
		spanX = 1
	}
	if spanY < 1 {
		spanY = 1
	}
	if aspect < 1 {
		aspect = 1
	}

	// Square in physical units: side measured in rows
	cellRows := min(rows/spanY, screenW/(spanX*aspect))
	if cellRows < 1 {
		cellRows = 1
	}
	cellCols := cellRows * aspect

	return Viewport{
		OriginX:  max(0, (screenW-spanX*cellCols)/2),
		OriginY:  max(0, (rows-spanY*cellRows)/2),
		CellCols: cellCols,
		CellRows: cellRows,
		SpanX:    spanX,
		SpanY:    spanY,
	}
}

// Contains reports whether p is inside the visible arena span
func (v Viewport) Contains(p core.Point) bool {
	return p.InBounds(v.SpanX, v.SpanY)
}

// CellOrigin returns the top-left terminal cell covering arena cell p
func (v Viewport) CellOrigin(p core.Point) (x, y int) {
	return v.OriginX + p.X*v.CellCols, v.OriginY + (v.SpanY-1-p.Y)*v.CellRows
}

// Rect returns the centered terminal rectangle for an entity of relative size w x h at p
// The rectangle is never smaller than one terminal cell
func (v Viewport) Rect(p core.Point, w, h float64) (x, y, cols, rows int) {
	x0, y0 := v.CellOrigin(p)
	cols = clampSpan(w, v.CellCols)
	rows = clampSpan(h, v.CellRows)
	return x0 + (v.CellCols-cols)/2, y0 + (v.CellRows-rows)/2, cols, rows
}

func clampSpan(rel float64, full int) int {
	n := int(rel*float64(full) + 0.5)
	if n < 1 {
		return 1
	}
	if n > full {
		return full
	}
	return n
}
