package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Palette holds hex colors for the three entity kinds
type Palette struct {
	Head string
	Body string
	Food string
}

// styles is the resolved tcell form of a Palette
type styles struct {
	head, body, food tcell.Style
	grid, status     tcell.Style
	paused           tcell.Style
}

// parseColor accepts "#rrggbb" or a named color
func parseColor(s string) (tcell.Color, error) {
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// ValidatePalette reports the first unparseable color
func ValidatePalette(p Palette) error {
	for _, s := range []string{p.Head, p.Body, p.Food} {
		if _, err := parseColor(s); err != nil {
			return err
		}
	}
	return nil
}

func newStyles(p Palette, color bool) styles {
	base := tcell.StyleDefault
	st := styles{
		head:   base,
		body:   base,
		food:   base,
		grid:   base.Dim(true),
		status: base,
		paused: base.Reverse(true),
	}
	if !color {
		return st
	}

	if c, err := parseColor(p.Head); err == nil {
		st.head = base.Foreground(c)
	}
	if c, err := parseColor(p.Body); err == nil {
		st.body = base.Foreground(c)
	}
	if c, err := parseColor(p.Food); err == nil {
		st.food = base.Foreground(c)
	}
	st.grid = base.Foreground(tcell.ColorGray)
	return st
}
