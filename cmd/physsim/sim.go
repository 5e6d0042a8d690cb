package main

import (
	"fmt"
	"io"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"platformer/internal/config"
	"platformer/internal/game"
	"platformer/internal/level"
	"platformer/internal/physics"
)

const bodySize = 32

type dropOptions struct {
	Height float64
	Frames int
	DT     float64
	Trace  bool
}

// runDrop drops a body from rest onto a wide platform Height below it.
func runDrop(out io.Writer, o dropOptions) error {
	if o.Height < 0 || o.DT <= 0 {
		return fmt.Errorf("drop: height must be >= 0 and dt > 0")
	}
	world := physics.NewWorld(physics.DefaultParams())
	body := physics.NewBody(0, 0, bodySize, bodySize)
	top := bodySize + float32(o.Height)
	floor := physics.NewBody(-100, top, 300, 20)
	obstacles := []*physics.Body{floor}
	dt := float32(o.DT)

	for i := 1; i <= o.Frames; i++ {
		res := world.Step(body, obstacles, dt)
		if o.Trace {
			fmt.Fprintf(out, "frame %3d  y=%8.3f  vy=%8.3f  ground=%v\n",
				i, body.Position[1], body.Velocity[1], body.OnGround)
		}
		if res.Landed {
			fmt.Fprintf(out, "landed on frame %d at y=%.3f (platform top %.3f)\n", i, body.Position[1], top)
			return nil
		}
	}
	fmt.Fprintf(out, "no landing after %d frames, y=%.3f\n", o.Frames, body.Position[1])
	return nil
}

type sweepOptions struct {
	VX, DT       float64
	WallX, WallW float64
}

// runSweep fires a body at a wall and reports what each detector sees.
func runSweep(out io.Writer, o sweepOptions) error {
	if o.WallW <= 0 {
		return fmt.Errorf("sweep: wall-w must be positive")
	}
	body := physics.NewBody(0, 0, bodySize, bodySize)
	wall := physics.NewBody(float32(o.WallX), -100, float32(o.WallW), 300)
	vel := mgl32.Vec2{float32(o.VX), 0}
	dt := float32(o.DT)

	if info, hit := physics.PredictCollision(body, wall, vel, dt); hit {
		fmt.Fprintf(out, "predict: hit on %s, overlap %.3f\n", info.Side, info.Overlap)
	} else {
		fmt.Fprintln(out, "predict: miss")
	}
	if t, info, hit := physics.SweepTest(body, wall, vel, dt); hit {
		fmt.Fprintf(out, "sweep:   hit on %s at t=%.4f\n", info.Side, t)
	} else {
		fmt.Fprintln(out, "sweep:   miss")
	}
	return nil
}

type bounceOptions struct {
	Height, VX            float64
	Restitution, Friction float64
	Frames                int
}

// minBounce is the rebound speed below which the body is considered at rest.
const minBounce = 20

// runBounce drops a body on a floor using the standalone detector and resolver,
// reflecting it on each contact until the rebound dies out.
func runBounce(out io.Writer, o bounceOptions) error {
	if o.Restitution < 0 || o.Restitution > 1 || o.Friction < 0 || o.Friction > 1 {
		return fmt.Errorf("bounce: restitution and friction must be within 0..1")
	}
	world := physics.NewWorld(physics.DefaultParams())
	body := physics.NewBody(0, 0, bodySize, bodySize)
	body.Velocity[0] = float32(o.VX)
	floor := physics.NewBody(-1e6, bodySize+float32(o.Height), 2e6, 40)
	const dt = float32(1) / 60

	bounces := 0
	for i := 1; i <= o.Frames; i++ {
		world.ApplyGravity(body, dt)
		world.Integrate(body, dt)
		info, hit := physics.Collide(body, floor)
		if !hit {
			continue
		}
		impact := body.Velocity[1]
		// Bounce before Separate: Separate clamps the into-floor component.
		physics.ApplyBounce(body, info, float32(o.Restitution))
		physics.Separate(body, floor, info)
		physics.ApplyFriction(body, float32(o.Friction))
		if math32.Abs(body.Velocity[1]) < minBounce {
			body.Velocity[1] = 0
			fmt.Fprintf(out, "rest on frame %d at x=%.2f after %d bounces\n", i, body.Position[0], bounces)
			return nil
		}
		bounces++
		fmt.Fprintf(out, "bounce %d on frame %d: impact %.2f, rebound %.2f, vx %.2f\n",
			bounces, i, impact, body.Velocity[1], body.Velocity[0])
		body.OnGround = false
	}
	fmt.Fprintf(out, "still bouncing after %d frames\n", o.Frames)
	return nil
}

type headlessOptions struct {
	Difficulty string
	Frames     int
	Right      bool
	JumpEvery  int
}

// runHeadless plays a session with scripted input. A nil lvl uses the built-in layout.
func runHeadless(cfg config.Config, lvl *level.Level, log game.Logger, out io.Writer, o headlessOptions) error {
	difficulty := o.Difficulty
	if difficulty == "" {
		difficulty = cfg.Difficulty
	}
	cfg, err := cfg.WithDifficulty(difficulty)
	if err != nil {
		return err
	}
	if lvl == nil {
		lvl = level.Default(float32(cfg.World.ScreenWidth), float32(cfg.World.ScreenHeight))
	}
	s, err := game.NewSession(cfg, lvl, log)
	if err != nil {
		return err
	}

	dt := float32(1) / float32(cfg.World.TargetFPS)
	frame := 0
	for ; frame < o.Frames && s.State == game.Playing; frame++ {
		in := game.Intent{Right: o.Right}
		if o.JumpEvery > 0 && frame%o.JumpEvery == 0 {
			in.Jump = true
		}
		if err := s.Update(dt, in); err != nil {
			return err
		}
	}

	collected := 0
	for _, c := range s.Level.Collectibles {
		if c.Collected {
			collected++
		}
	}
	b := s.Player.Body
	fmt.Fprintf(out, "%s after %d frames: pos (%.1f, %.1f), score %d, pickups %d/%d\n",
		s.State, frame, b.Position[0], b.Position[1], s.Score, collected, len(s.Level.Collectibles))
	return nil
}
