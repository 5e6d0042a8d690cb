package physics

import "github.com/chewxy/math32"

// Response selects what happens to the velocity component on the resolved axis.
type Response uint8

const (
	// Stop zeroes the axis velocity. The per-frame integrator uses it.
	Stop Response = iota
	// Clamp removes only the part of the axis velocity pointing into the obstacle.
	Clamp
)

// resolve snaps moving so that the contacted face touches the opposing face
// of obstacle along info.Side. Only moving is mutated.
func resolve(moving, obstacle *Body, info CollisionInfo, resp Response) {
	o := obstacle.Bounds()
	switch info.Side {
	case SideBottom:
		moving.Position[1] = o.Top - moving.Size[1]
		moving.Velocity[1] = respond(moving.Velocity[1], resp, math32.Min)
		moving.OnGround = true
	case SideTop:
		moving.Position[1] = o.Bottom
		moving.Velocity[1] = respond(moving.Velocity[1], resp, math32.Max)
		moving.OnGround = false
	case SideRight:
		moving.Position[0] = o.Left - moving.Size[0]
		moving.Velocity[0] = respond(moving.Velocity[0], resp, math32.Min)
	case SideLeft:
		moving.Position[0] = o.Right
		moving.Velocity[0] = respond(moving.Velocity[0], resp, math32.Max)
	}
}

func respond(v float32, resp Response, clamp func(a, b float32) float32) float32 {
	if resp == Stop {
		return 0
	}
	return clamp(v, 0)
}

// Separate moves moving out of obstacle along info.Side and drops the velocity
// component that still points into the obstacle. A landing marks the body grounded.
func Separate(moving, obstacle *Body, info CollisionInfo) {
	resolve(moving, obstacle, info, Clamp)
}

// ApplyBounce reflects the velocity component on the collision axis, scaled by
// restitution (0 absorbs, 1 is perfectly elastic). Position is left alone.
func ApplyBounce(body *Body, info CollisionInfo, restitution float32) {
	if info.Side.Vertical() {
		body.Velocity[1] = -body.Velocity[1] * restitution
		return
	}
	body.Velocity[0] = -body.Velocity[0] * restitution
}

// ApplyFriction scales horizontal velocity by (1 - coefficient) while the body is grounded.
func ApplyFriction(body *Body, coefficient float32) {
	if body.OnGround {
		body.Velocity[0] *= 1 - coefficient
	}
}
