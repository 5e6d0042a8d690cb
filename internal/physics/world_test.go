package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestApplyGravityGroundedNoop(t *testing.T) {
	w := NewWorld(DefaultParams())
	b := NewBody(0, 0, 10, 10)
	b.OnGround = true
	b.Velocity = mgl32.Vec2{20, 7}
	for i := 0; i < 10; i++ {
		w.ApplyGravity(b, 1.0/60)
	}
	if b.Velocity[1] != 7 {
		t.Errorf("vy = %v, want 7", b.Velocity[1])
	}
}

func TestApplyGravityAccelerates(t *testing.T) {
	w := NewWorld(DefaultParams())
	b := NewBody(0, 0, 10, 10)
	w.ApplyGravity(b, 0.1)
	approxEqual(t, b.Velocity[1], 98, 1e-4, "vy")
}

func TestApplyGravityTerminalVelocity(t *testing.T) {
	w := NewWorld(DefaultParams())
	b := NewBody(0, 0, 10, 10)
	for i := 0; i < 200; i++ {
		w.ApplyGravity(b, 1.0/30)
		if b.Velocity[1] > w.Params.TerminalVelocity {
			t.Fatalf("step %d: vy = %v exceeds terminal velocity", i, b.Velocity[1])
		}
	}
	if b.Velocity[1] != w.Params.TerminalVelocity {
		t.Errorf("vy = %v, want %v after long fall", b.Velocity[1], w.Params.TerminalVelocity)
	}
}

func TestApplyGravityClampIsOneSided(t *testing.T) {
	w := NewWorld(DefaultParams())
	b := NewBody(0, 0, 10, 10)
	b.Velocity[1] = -1000
	w.ApplyGravity(b, 0.01)
	approxEqual(t, b.Velocity[1], -990.2, 1e-3, "vy")
}

func TestIntegrate(t *testing.T) {
	w := NewWorld(DefaultParams())
	b := NewBody(10, 20, 10, 10)
	for i := 0; i < 5; i++ {
		w.Integrate(b, 0.016)
	}
	if b.Position != (mgl32.Vec2{10, 20}) {
		t.Errorf("zero velocity moved body to %v", b.Position)
	}

	b.Velocity = mgl32.Vec2{100, -50}
	w.Integrate(b, 0.5)
	if b.Position != (mgl32.Vec2{60, -5}) {
		t.Errorf("Position = %v, want (60, -5)", b.Position)
	}
}

func TestLandingScenario(t *testing.T) {
	w := NewWorld(DefaultParams())
	body := NewBody(100, 50, 32, 32)
	body.Velocity = mgl32.Vec2{0, 500}
	platform := NewBody(0, 100, 200, 20)

	w.Integrate(body, 0.1)
	if body.Position[1] != 100 {
		t.Fatalf("y after integrate = %v, want 100", body.Position[1])
	}
	if !w.ResolveAgainst(body, platform) {
		t.Fatal("expected a correction")
	}
	if body.Position[1] != 68 {
		t.Errorf("y = %v, want 68", body.Position[1])
	}
	if body.Velocity[1] != 0 {
		t.Errorf("vy = %v, want 0", body.Velocity[1])
	}
	if !body.OnGround {
		t.Error("body should be grounded")
	}
}

func TestLandingProperty(t *testing.T) {
	w := NewWorld(DefaultParams())
	for _, depth := range []float32{0.5, 3, 9, 15} {
		platform := NewBody(0, 300, 400, 40)
		body := NewBody(150, 300-32+depth, 32, 32)
		body.Velocity[1] = 240
		w.ResolveAgainst(body, platform)
		if body.Position[1] != 300-32 {
			t.Errorf("depth %v: y = %v, want %v", depth, body.Position[1], 300-32)
		}
		if !body.OnGround {
			t.Errorf("depth %v: not grounded", depth)
		}
	}
}

func TestResolveAgainstStopsAxis(t *testing.T) {
	w := NewWorld(DefaultParams())
	wall := NewBody(100, 0, 20, 200)

	body := NewBody(90, 50, 20, 20)
	body.Velocity = mgl32.Vec2{-30, 60}
	w.ResolveAgainst(body, wall)
	if body.Position[0] != 80 {
		t.Errorf("x = %v, want 80", body.Position[0])
	}
	if body.Velocity != (mgl32.Vec2{0, 60}) {
		t.Errorf("velocity = %v, want (0, 60)", body.Velocity)
	}
	if body.OnGround {
		t.Error("a wall hit should not ground the body")
	}

	ceiling := NewBody(0, 0, 200, 20)
	head := NewBody(50, 15, 20, 20)
	head.Velocity[1] = -300
	w.ResolveAgainst(head, ceiling)
	if head.Position[1] != 20 || head.Velocity[1] != 0 {
		t.Errorf("head = %v / %v, want y=20 vy=0", head.Position, head.Velocity)
	}

	if w.ResolveAgainst(NewBody(500, 500, 10, 10), wall) {
		t.Error("ResolveAgainst reported a correction without overlap")
	}
}

func TestCheckBounds(t *testing.T) {
	w := NewWorld(DefaultParams())
	b := NewBody(-4, 900, 10, 10)
	b.Velocity = mgl32.Vec2{-200, 50}
	w.CheckBounds(b)
	if b.Position != (mgl32.Vec2{0, 900}) {
		t.Errorf("Position = %v, want (0, 900)", b.Position)
	}
	if b.Velocity != (mgl32.Vec2{0, 50}) {
		t.Errorf("Velocity = %v, want (0, 50)", b.Velocity)
	}

	far := NewBody(1e6, -1e6, 10, 10)
	far.Velocity[0] = 10
	w.CheckBounds(far)
	if far.Position != (mgl32.Vec2{1e6, -1e6}) || far.Velocity[0] != 10 {
		t.Errorf("right and vertical bounds should be open, got %v / %v", far.Position, far.Velocity)
	}
}

func TestStepOrderAndLanding(t *testing.T) {
	w := NewWorld(DefaultParams())
	ground := NewBody(0, 100, 200, 20)
	body := NewBody(100, 50, 32, 32)
	body.Velocity[1] = 500

	res := w.Step(body, []*Body{ground}, 0.1)
	if !res.Landed || res.Resolved != 1 {
		t.Errorf("StepResult = %+v, want landed with one correction", res)
	}
	if body.Position[1] != 68 || !body.OnGround {
		t.Errorf("body = %v grounded=%v, want y=68 grounded", body.Position, body.OnGround)
	}

	// Grounded and supported: stays put.
	res = w.Step(body, []*Body{ground}, 0.1)
	if res.Landed || res.LeftGround || res.Resolved != 0 {
		t.Errorf("resting StepResult = %+v, want zero", res)
	}
	if body.Position[1] != 68 {
		t.Errorf("resting y = %v, want 68", body.Position[1])
	}
}

func TestStepWalkOffLedge(t *testing.T) {
	w := NewWorld(DefaultParams())
	ledge := NewBody(0, 100, 100, 20)
	body := NewBody(90, 68, 32, 32)
	body.OnGround = true
	body.Velocity[0] = 200

	res := w.Step(body, []*Body{ledge}, 0.1)
	if !res.LeftGround {
		t.Errorf("StepResult = %+v, want LeftGround", res)
	}
	if body.OnGround {
		t.Error("body past the ledge should be airborne")
	}
	// Gravity was skipped this step because the body started grounded.
	if body.Velocity[1] != 0 {
		t.Errorf("vy = %v, want 0", body.Velocity[1])
	}
}

func TestStepObstacleOrderMatters(t *testing.T) {
	w := NewWorld(DefaultParams())
	// Overlaps both; whichever correction runs first decides the final position.
	floor := NewBody(0, 100, 300, 20)
	wall := NewBody(120, 90, 20, 12)
	body := NewBody(100, 75, 32, 32)

	w.Step(body, []*Body{floor, wall}, 1e-6)
	first := body.Position

	body2 := NewBody(100, 75, 32, 32)
	w.Step(body2, []*Body{wall, floor}, 1e-6)
	if first == body2.Position {
		t.Errorf("obstacle order had no effect: %v", first)
	}
}

func TestStepIgnoresBadDt(t *testing.T) {
	w := NewWorld(DefaultParams())
	b := NewBody(0, 0, 10, 10)
	b.Velocity = mgl32.Vec2{10, 10}
	for _, dt := range []float32{0, -0.1} {
		w.Step(b, nil, dt)
	}
	if b.Position != (mgl32.Vec2{0, 0}) || b.Velocity != (mgl32.Vec2{10, 10}) {
		t.Errorf("body changed on a rejected dt: %v / %v", b.Position, b.Velocity)
	}
}

func TestFellBelow(t *testing.T) {
	w := NewWorld(DefaultParams())
	b := NewBody(0, 700, 10, 10)
	if !w.FellBelow(b, 699) {
		t.Error("FellBelow(699) = false, want true")
	}
	if w.FellBelow(b, 700) {
		t.Error("FellBelow(700) = true, want false")
	}
}

func TestStepLandsWithZeroTolerance(t *testing.T) {
	p := DefaultParams()
	p.Tolerance = 0
	w := NewWorld(p)
	for i := 0; i < 200; i++ {
		top := float32(100.1) + float32(i)*0.37
		floor := NewBody(-100, top, 300, 20)
		b := NewBody(0, top-60, 32.3, 32.7)
		landings := 0
		for f := 0; f < 120; f++ {
			res := w.Step(b, []*Body{floor}, 1.0/60)
			if res.Landed {
				landings++
			}
			if landings > 0 && res.LeftGround {
				t.Errorf("top=%v: left ground on frame %d after landing", top, f)
				break
			}
		}
		if landings != 1 || !b.OnGround {
			t.Errorf("top=%v: landings=%d onGround=%v y+h=%v", top, landings, b.OnGround, b.Position[1]+b.Size[1])
		}
	}
}
