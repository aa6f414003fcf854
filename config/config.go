package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	ErrInvalidArena     = errors.New("invalid arena size")
	ErrInvalidFood      = errors.New("invalid food count")
	ErrInvalidTick      = errors.New("invalid tick interval")
	ErrInvalidDirection = errors.New("invalid start direction")
	ErrInvalidSnake     = errors.New("invalid snake layout")
	ErrInvalidColor     = errors.New("invalid color")
	ErrUnknownKey       = errors.New("unknown config key")
)

// Cell is a grid coordinate as written in TOML: { x = 3, y = 2 }
type Cell struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

func (c Cell) point() core.Point {
	return core.Point{X: c.X, Y: c.Y}
}

type ArenaConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type FoodConfig struct {
	InitialCount int `toml:"initial_count"`
}

type MovementConfig struct {
	TickInterval time.Duration `toml:"tick_interval"`
}

type SnakeConfig struct {
	StartDirection core.Direction `toml:"start_direction"`
	Head           Cell           `toml:"head"`
	Body           []Cell         `toml:"body"`
}

type RenderConfig struct {
	HeadColor string `toml:"head_color"`
	BodyColor string `toml:"body_color"`
	FoodColor string `toml:"food_color"`
	Color     bool   `toml:"color"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type RNGConfig struct {
	// Seed 0 selects a time based seed
	Seed uint64 `toml:"seed"`
}

// Config is the on-disk game configuration
type Config struct {
	Arena    ArenaConfig    `toml:"arena"`
	Food     FoodConfig     `toml:"food"`
	Movement MovementConfig `toml:"movement"`
	Snake    SnakeConfig    `toml:"snake"`
	Render   RenderConfig   `toml:"render"`
	Audio    AudioConfig    `toml:"audio"`
	RNG      RNGConfig      `toml:"rng"`
}

// Default returns the built-in configuration
func Default() Config {
	body := make([]Cell, len(parameter.StartBody))
	for i, p := range parameter.StartBody {
		body[i] = Cell{X: p.X, Y: p.Y}
	}

	return Config{
		Arena:    ArenaConfig{Width: parameter.ArenaWidth, Height: parameter.ArenaHeight},
		Food:     FoodConfig{InitialCount: parameter.InitialFoodCount},
		Movement: MovementConfig{TickInterval: parameter.MovementInterval},
		Snake: SnakeConfig{
			StartDirection: parameter.StartingDirection,
			Head:           Cell{X: parameter.StartHead.X, Y: parameter.StartHead.Y},
			Body:           body,
		},
		Render: RenderConfig{
			HeadColor: parameter.HeadColor,
			BodyColor: parameter.BodyColor,
			FoodColor: parameter.FoodColor,
			Color:     true,
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// Load reads a TOML file over the defaults and validates the result
// An empty path returns the defaults; a missing file is an error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load config %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the starting snake layout
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidArena, c.Arena.Width, c.Arena.Height)
	}
	if c.Food.InitialCount < 0 || c.Food.InitialCount > parameter.MaxInitialFood {
		return fmt.Errorf("%w: %d", ErrInvalidFood, c.Food.InitialCount)
	}
	if c.Movement.TickInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTick, c.Movement.TickInterval)
	}

	dir := c.Snake.StartDirection
	if int(dir) >= len(core.Directions) {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}

	// Each body cell must touch the one before it, head first
	prev := c.Snake.Head.point()
	for i, cell := range c.Snake.Body {
		p := cell.point()
		if !adjacent(prev, p) {
			return fmt.Errorf("%w: body[%d] %s not adjacent to %s", ErrInvalidSnake, i, p, prev)
		}
		prev = p
	}
	if len(c.Snake.Body) > 0 && c.Snake.Head.point().Step(dir) == c.Snake.Body[0].point() {
		return fmt.Errorf("%w: %s points into the body", ErrInvalidDirection, dir)
	}

	if err := render.ValidatePalette(c.Palette()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return nil
}

// ToResource converts the file form into the engine's session parameters
func (c Config) ToResource() engine.ConfigResource {
	body := make([]core.Point, len(c.Snake.Body))
	for i, cell := range c.Snake.Body {
		body[i] = cell.point()
	}

	return engine.ConfigResource{
		ArenaWidth:     c.Arena.Width,
		ArenaHeight:    c.Arena.Height,
		InitialFood:    c.Food.InitialCount,
		TickInterval:   c.Movement.TickInterval,
		StartDirection: c.Snake.StartDirection,
		StartHead:      c.Snake.Head.point(),
		StartBody:      body,
		Seed:           c.RNG.Seed,
	}
}

// Palette returns the render colors
func (c Config) Palette() render.Palette {
	return render.Palette{
		Head: c.Render.HeadColor,
		Body: c.Render.BodyColor,
		Food: c.Render.FoodColor,
	}
}

func adjacent(a, b core.Point) bool {
	for _, d := range core.Directions {
		if a.Step(d) == b {
			return true
		}
	}
	return false
}
