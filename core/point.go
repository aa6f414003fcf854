package core

import "fmt"

// Point represents a discrete grid cell
type Point struct {
	X, Y int
}

// Add returns the point offset by delta
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Step returns the neighbouring cell in direction d
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

// InBounds reports whether p lies in [0,width) × [0,height)
func (p Point) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
