package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/config"
	"platformer/internal/env"
	"platformer/internal/game"
	"platformer/internal/level"
	"platformer/internal/logger"
	"platformer/internal/render"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "YAML config file; missing means defaults")
	levelPath := flag.String("level", "", "YAML level file; empty uses the built-in layout")
	difficulty := flag.String("difficulty", "", "difficulty preset, overrides the config file")
	logPath := flag.String("log", logger.DefaultPath, "event log file; empty keeps events in memory")
	flag.Parse()

	if err := run(*configPath, *levelPath, *difficulty, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, levelPath, difficulty, logPath string) error {
	log := logger.New(logPath)

	if err := env.Load(env.DefaultPath); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg, err = cfg.WithEnv(os.LookupEnv); err != nil {
		return err
	}
	if difficulty == "" {
		difficulty = cfg.Difficulty
	}
	if cfg, err = cfg.WithDifficulty(difficulty); err != nil {
		return err
	}

	lvl := level.Default(float32(cfg.World.ScreenWidth), float32(cfg.World.ScreenHeight))
	if levelPath != "" {
		if lvl, err = level.Load(levelPath); err != nil {
			return err
		}
	}

	session, err := game.NewSession(cfg, lvl, log)
	if err != nil {
		return err
	}
	log.Logf("started: difficulty %q, %d platforms", cfg.Difficulty, len(lvl.Platforms))

	bindings := render.DefaultBindings()
	keys := game.NewKeyTracker(bindings)
	dbg := render.NewDebug(cfg.Debug)

	var runErr error
	update := func(dt float32) {
		if runErr != nil {
			return
		}
		keys.Update(render.KeyDown)
		if rl.IsKeyPressed(render.DebugToggleKey) {
			dbg.ToggleBoxes()
		}
		runErr = session.Update(dt, keys.Intent(bindings))
	}
	draw := func() {
		render.DrawSession(session, dbg)
	}
	render.Run(render.Options{
		Title:     "Platformer",
		Width:     int32(cfg.World.ScreenWidth),
		Height:    int32(cfg.World.ScreenHeight),
		TargetFPS: int32(cfg.World.TargetFPS),
	}, update, draw)

	log.Logf("quit: score %d", session.Score)
	return runErr
}
