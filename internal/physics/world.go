package physics

import "github.com/chewxy/math32"

// Params holds the tunable constants of the simulation.
type Params struct {
	Gravity          float32 // downward acceleration, pixels/s²
	TerminalVelocity float32 // ceiling applied to velocity.y after gravity
	Friction         float32 // coefficient for ApplyFriction
	Tolerance        float32 // how far a bottom edge may sit from a top edge and still count as standing
	Restitution      float32 // bounce coefficient for ApplyBounce
}

// DefaultParams returns the platformer's stock tuning.
func DefaultParams() Params {
	return Params{
		Gravity:          980,
		TerminalVelocity: 500,
		Friction:         0.8,
		Tolerance:        5,
		Restitution:      0,
	}
}

// World advances one body per call against a caller-owned, ordered set of
// obstacles. It owns no bodies. Obstacles are never moved.
type World struct {
	Params Params
}

// NewWorld returns a world using p.
func NewWorld(p Params) *World {
	return &World{Params: p}
}

// StepResult summarizes what a Step did to the body.
type StepResult struct {
	Landed     bool // airborne at the start of the step, grounded at the end
	LeftGround bool // grounded at the start of the step, airborne at the end
	Resolved   int  // number of obstacle corrections applied
}

// ApplyGravity accelerates an airborne body and caps velocity.y at the terminal
// velocity. Upward velocity is never reduced by the cap.
func (w *World) ApplyGravity(b *Body, dt float32) {
	if b.OnGround {
		return
	}
	b.Velocity[1] += w.Params.Gravity * dt
	if b.Velocity[1] > w.Params.TerminalVelocity {
		b.Velocity[1] = w.Params.TerminalVelocity
	}
}

// Integrate moves the body by velocity*dt in a single Euler step.
func (w *World) Integrate(b *Body, dt float32) {
	b.Position[0] += b.Velocity[0] * dt
	b.Position[1] += b.Velocity[1] * dt
}

// ResolveAgainst pushes b out of obstacle along the axis of least penetration and
// stops its motion on that axis. Bounds are recomputed on every call. It reports
// whether a correction was applied.
func (w *World) ResolveAgainst(b, obstacle *Body) bool {
	info, ok := Collide(b, obstacle)
	if !ok {
		return false
	}
	resolve(b, obstacle, info, Stop)
	return true
}

// CheckBounds keeps the body right of x = 0. The right edge and the vertical
// axis are unbounded.
func (w *World) CheckBounds(b *Body) {
	if b.Position[0] < 0 {
		b.Position[0] = 0
		b.Velocity[0] = 0
	}
}

// supportSlack is the smallest tolerance Supported uses. It absorbs the float32
// rounding of y + height after a body is snapped onto a top edge.
const supportSlack = 1e-3

// Supported reports whether b stands on any of the obstacles within Params.Tolerance,
// or within supportSlack when the tolerance is smaller.
func (w *World) Supported(b *Body, obstacles []*Body) bool {
	tol := math32.Max(w.Params.Tolerance, supportSlack)
	for _, o := range obstacles {
		if IsOnPlatform(b, o, tol) {
			return true
		}
	}
	return false
}

// FellBelow reports whether the body's top edge is past threshold.
func (w *World) FellBelow(b *Body, threshold float32) bool {
	return b.Position[1] > threshold
}

// Step advances b by dt seconds: gravity, integration, then resolution against
// each obstacle in slice order. A correction against one obstacle changes the
// bounds tested against the next. A grounded body left without support becomes
// airborne; a body that landed during this step keeps its footing.
// Non-positive or NaN dt leaves b untouched.
func (w *World) Step(b *Body, obstacles []*Body, dt float32) StepResult {
	var res StepResult
	if !(dt > 0) || math32.IsInf(dt, 0) {
		return res
	}
	wasGrounded := b.OnGround

	w.ApplyGravity(b, dt)
	w.Integrate(b, dt)
	landedNow := false
	for _, o := range obstacles {
		info, ok := Collide(b, o)
		if !ok {
			continue
		}
		resolve(b, o, info, Stop)
		res.Resolved++
		if info.Side == SideBottom {
			landedNow = true
		}
	}
	if b.OnGround && !landedNow && !w.Supported(b, obstacles) {
		b.OnGround = false
	}

	res.Landed = !wasGrounded && b.OnGround
	res.LeftGround = wasGrounded && !b.OnGround
	return res
}
