// Command physsim runs the physics core without a window and prints what happens.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"platformer/internal/commands"
	"platformer/internal/config"
	"platformer/internal/env"
	"platformer/internal/level"
	"platformer/internal/logger"
)

func main() {
	reg := registry(os.Stdout)
	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "physsim:", err)
		fmt.Fprintln(os.Stderr, "usage: physsim <command> [flags]")
		reg.Usage(os.Stderr)
		os.Exit(2)
	}
}

func registry(out io.Writer) *commands.Registry {
	reg := commands.NewRegistry()

	dropFS := flag.NewFlagSet("drop", flag.ContinueOnError)
	drop := dropOptions{}
	dropFS.Float64Var(&drop.Height, "height", 200, "gap between the body and the platform")
	dropFS.IntVar(&drop.Frames, "frames", 240, "maximum frames to simulate")
	dropFS.Float64Var(&drop.DT, "dt", 1.0/60, "seconds per frame")
	dropFS.BoolVar(&drop.Trace, "trace", false, "print every frame")
	reg.Register("drop", "drop a body onto a platform and report the landing", dropFS, func() error {
		return runDrop(out, drop)
	})

	sweepFS := flag.NewFlagSet("sweep", flag.ContinueOnError)
	sweep := sweepOptions{}
	sweepFS.Float64Var(&sweep.VX, "vx", 2000, "horizontal velocity toward the wall")
	sweepFS.Float64Var(&sweep.DT, "dt", 0.1, "seconds to sweep")
	sweepFS.Float64Var(&sweep.WallX, "wall-x", 100, "left edge of the wall")
	sweepFS.Float64Var(&sweep.WallW, "wall-w", 10, "wall thickness")
	reg.Register("sweep", "compare end-position prediction with a sampled sweep", sweepFS, func() error {
		return runSweep(out, sweep)
	})

	bounceFS := flag.NewFlagSet("bounce", flag.ContinueOnError)
	bounce := bounceOptions{}
	bounceFS.Float64Var(&bounce.Height, "height", 300, "drop height above the floor")
	bounceFS.Float64Var(&bounce.VX, "vx", 100, "initial horizontal velocity")
	bounceFS.Float64Var(&bounce.Restitution, "restitution", 0.6, "bounce energy kept, 0..1")
	bounceFS.Float64Var(&bounce.Friction, "friction", 0.1, "ground friction per contact, 0..1")
	bounceFS.IntVar(&bounce.Frames, "frames", 600, "maximum frames to simulate")
	reg.Register("bounce", "bounce a body on a floor until it rests", bounceFS, func() error {
		return runBounce(out, bounce)
	})

	runFS := flag.NewFlagSet("run", flag.ContinueOnError)
	headless := headlessOptions{}
	configPath := runFS.String("config", config.DefaultPath, "YAML config file; missing means defaults")
	levelPath := runFS.String("level", "", "YAML level file; empty uses the built-in layout")
	runFS.StringVar(&headless.Difficulty, "difficulty", "", "difficulty preset")
	runFS.IntVar(&headless.Frames, "frames", 600, "frames to simulate")
	runFS.BoolVar(&headless.Right, "right", true, "hold right the whole run")
	runFS.IntVar(&headless.JumpEvery, "jump-every", 45, "press jump every N frames, 0 never")
	reg.Register("run", "play a session headless with scripted input", runFS, func() error {
		if err := env.Load(env.DefaultPath); err != nil {
			return err
		}
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		if cfg, err = cfg.WithEnv(os.LookupEnv); err != nil {
			return err
		}
		var lvl *level.Level
		if *levelPath != "" {
			if lvl, err = level.Load(*levelPath); err != nil {
				return err
			}
		}
		log := logger.New("")
		if err := runHeadless(cfg, lvl, log, out, headless); err != nil {
			return err
		}
		for _, line := range log.Lines() {
			fmt.Fprintln(out, line)
		}
		return nil
	})

	return reg
}
