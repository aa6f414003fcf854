package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/service"
	"github.com/lixenwraith/vi-snake/system"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/vi-snake.log")
	seedFlag   = flag.Uint64("seed", 0, "Food RNG seed (0 keeps the config value)")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	colorFlag  = flag.Bool("color", true, "Draw in color (overrides [render] color when set)")
)

// app ties the terminal front end to the simulation; owned by the main goroutine
type app struct {
	screen   tcell.Screen
	game     *engine.Game
	keys     *input.KeyState
	renderer *render.Renderer
}

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.RNG.Seed = *seedFlag
	}
	color := cfg.Render.Color
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "color" {
			color = *colorFlag
		}
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Crash handler restores the terminal from any goroutine started via core.Go
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	game := engine.NewGame(cfg.ToResource(), engine.NewMonotonicTimeProvider())

	keys := input.NewKeyState(parameter.KeyHoldWindow, nil)
	game.World.Resources.Input.Provider = keys

	player := audio.NewEngine(*muteFlag || !cfg.Audio.Enabled)
	game.World.Resources.Audio.Player = player

	hub := service.NewHub()
	hub.Register(player)
	// Non-fatal, game can run without sound
	if err := hub.StartAll(); err != nil {
		log.Printf("Service start failed: %v (continuing)", err)
	}
	defer hub.StopAll()

	system.RegisterAll(game)
	game.Start()

	a := &app{
		screen:   screen,
		game:     game,
		keys:     keys,
		renderer: render.NewRenderer(screen, cfg.Palette(), color),
	}
	a.run()
	log.Printf("session %s ended", game.Session())
}

// run is the frame loop: input events, frame clock, tick clock, draw
func (a *app) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			// Frame before Advance so a tick sees the latest committed heading
			a.game.Frame()
			a.game.Advance()
			a.renderer.Draw(a.game.World)
		}
	}
}

// handleEvent applies one terminal event, returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a.keys.HandleKey(ev) {
		case input.ActionQuit:
			return false
		case input.ActionPause:
			a.game.TogglePause()
		case input.ActionRestart:
			a.keys.Clear()
			a.game.Reset()
		case input.ActionMute:
			if p := a.game.World.Resources.Audio.Player; p != nil {
				p.ToggleMute()
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}
