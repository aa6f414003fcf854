package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four grid headings
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every heading in input priority order
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse heading, Opposite(Opposite(d)) == d
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	panic(fmt.Sprintf("invalid direction %d", d))
}

// Delta returns the one-cell displacement, Up increases Y
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: 1}
	case DirDown:
		return Point{X: 0, Y: -1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	}
	panic(fmt.Sprintf("invalid direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a case-insensitive name into a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// UnmarshalText lets config decoders read direction names directly
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText writes the lowercase direction name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
