package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-snake.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultMatchesEngineDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got, want := cfg.ToResource(), engine.DefaultConfigResource(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToResource() = %+v, want %+v", got, want)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[arena]
width = 20
height = 15

[movement]
tick_interval = "120ms"

[snake]
start_direction = "right"
head = { x = 5, y = 5 }
body = [ { x = 4, y = 5 }, { x = 3, y = 5 } ]

[rng]
seed = 7
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	res := cfg.ToResource()
	if res.ArenaWidth != 20 || res.ArenaHeight != 15 {
		t.Errorf("arena = %dx%d", res.ArenaWidth, res.ArenaHeight)
	}
	if res.TickInterval != 120*time.Millisecond {
		t.Errorf("tick = %s", res.TickInterval)
	}
	if res.StartDirection != core.DirRight {
		t.Errorf("direction = %s", res.StartDirection)
	}
	if res.StartHead != (core.Point{X: 5, Y: 5}) || len(res.StartBody) != 2 || res.StartBody[1] != (core.Point{X: 3, Y: 5}) {
		t.Errorf("layout = %s %v", res.StartHead, res.StartBody)
	}
	if res.Seed != 7 {
		t.Errorf("seed = %d", res.Seed)
	}

	// Untouched sections keep defaults
	if res.InitialFood != 3 || cfg.Render.HeadColor != Default().Render.HeadColor {
		t.Errorf("defaults lost: food=%d head=%s", res.InitialFood, cfg.Render.HeadColor)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"zero width", "[arena]\nwidth = 0\n", ErrInvalidArena},
		{"negative food", "[food]\ninitial_count = -1\n", ErrInvalidFood},
		{"food beyond queue", "[food]\ninitial_count = 256\n", ErrInvalidFood},
		{"zero tick", "[movement]\ntick_interval = \"0s\"\n", ErrInvalidTick},
		{"into body", "[snake]\nstart_direction = \"down\"\n", ErrInvalidDirection},
		{"detached body", "[snake]\nbody = [ { x = 7, y = 7 } ]\n", ErrInvalidSnake},
		{"bad color", "[render]\nfood_color = \"nope\"\n", ErrInvalidColor},
		{"unknown key", "[arena]\ndepth = 3\n", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateFoodBound(t *testing.T) {
	cfg := Default()
	cfg.Food.InitialCount = parameter.MaxInitialFood
	if err := cfg.Validate(); err != nil {
		t.Fatalf("initial_count %d rejected: %v", parameter.MaxInitialFood, err)
	}

	cfg.Food.InitialCount++
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidFood) {
		t.Errorf("initial_count %d error = %v, want ErrInvalidFood", cfg.Food.InitialCount, err)
	}
}

func TestLoadRejectsBadSyntaxAndDirection(t *testing.T) {
	if _, err := Load(writeConfig(t, "[arena\nwidth = 1")); err == nil {
		t.Error("malformed TOML accepted")
	}

	_, err := Load(writeConfig(t, "[snake]\nstart_direction = \"sideways\"\n"))
	if err == nil || !strings.Contains(err.Error(), "sideways") {
		t.Errorf("unknown direction error = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}
