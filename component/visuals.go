package component

// SizeComponent is the rendered size relative to one arena cell
type SizeComponent struct {
	Width, Height float64
}

// Square returns a SizeComponent with equal sides
func Square(s float64) SizeComponent {
	return SizeComponent{Width: s, Height: s}
}
