package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SweepSamples is the number of equally spaced times SweepTest checks within a step.
const SweepSamples = 10

// Side names the face of the moving body that made contact.
type Side uint8

const (
	// SideTop: the body's top hit the obstacle's underside (ceiling).
	SideTop Side = iota
	// SideBottom: the body's bottom rests on the obstacle's top (landing).
	SideBottom
	// SideLeft: the body's left face hit the obstacle's right face.
	SideLeft
	// SideRight: the body's right face hit the obstacle's left face.
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Vertical reports whether the side lies on the Y axis.
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// CollisionInfo describes one overlap. It is produced by a query and consumed
// right away by a resolver call.
type CollisionInfo struct {
	Side    Side
	Overlap float32 // penetration depth along the resolved axis
	// Contact is the midpoint of the moving body's own bounds, not the center
	// of the intersection rectangle.
	Contact mgl32.Vec2
}

// AABBOverlap reports whether two rectangles intersect with positive area on both axes.
// Touching edges do not count, and empty rectangles never overlap.
func AABBOverlap(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.Left < b.Right && a.Right > b.Left && a.Top < b.Bottom && a.Bottom > b.Top
}

// penetration returns the overlap depth of a into b on each axis.
func penetration(a, b Rect) (x, y float32) {
	x = math32.Min(a.Right-b.Left, b.Right-a.Left)
	y = math32.Min(a.Bottom-b.Top, b.Bottom-a.Top)
	return x, y
}

// classify picks the separating axis with the smaller depth. An exact tie goes
// to the vertical axis. On the vertical axis a body whose top is level with the
// obstacle's top resolves as a landing, not a ceiling hit.
func classify(a, b Rect) CollisionInfo {
	overlapX, overlapY := penetration(a, b)
	info := CollisionInfo{
		Contact: mgl32.Vec2{(a.Left + a.Right) / 2, (a.Top + a.Bottom) / 2},
	}
	if overlapX < overlapY {
		info.Overlap = overlapX
		if a.Left < b.Left {
			info.Side = SideRight
		} else {
			info.Side = SideLeft
		}
		return info
	}
	info.Overlap = overlapY
	if a.Top <= b.Top {
		info.Side = SideBottom
	} else {
		info.Side = SideTop
	}
	return info
}

// Collide returns the collision between moving body a and obstacle b, or false
// when they do not overlap.
func Collide(a, b *Body) (CollisionInfo, bool) {
	ra, rb := a.Bounds(), b.Bounds()
	if !AABBOverlap(ra, rb) {
		return CollisionInfo{}, false
	}
	return classify(ra, rb), true
}

// PointInRect reports whether p lies inside r, edges included.
func PointInRect(p mgl32.Vec2, r Rect) bool {
	return p[0] >= r.Left && p[0] <= r.Right && p[1] >= r.Top && p[1] <= r.Bottom
}

// at returns a copy of b moved to pos.
func at(b *Body, pos mgl32.Vec2) *Body {
	moved := *b
	moved.Position = pos
	return &moved
}

// PredictCollision checks only the position body would reach after moving with
// velocity for dt. Obstacles crossed entirely within the step are missed.
func PredictCollision(body, obstacle *Body, velocity mgl32.Vec2, dt float32) (CollisionInfo, bool) {
	if !(dt > 0) {
		return CollisionInfo{}, false
	}
	return Collide(at(body, body.Position.Add(velocity.Mul(dt))), obstacle)
}

// SweepTest samples SweepSamples times t = dt/n, 2dt/n, ..., dt and returns the
// first one at which body overlaps obstacle. t is the sample time, not the exact
// time of first contact.
func SweepTest(body, obstacle *Body, velocity mgl32.Vec2, dt float32) (float32, CollisionInfo, bool) {
	if !(dt > 0) {
		return 0, CollisionInfo{}, false
	}
	step := dt / SweepSamples
	for i := 1; i <= SweepSamples; i++ {
		t := step * float32(i)
		if info, ok := Collide(at(body, body.Position.Add(velocity.Mul(t))), obstacle); ok {
			return t, info, true
		}
	}
	return 0, CollisionInfo{}, false
}

// IsOnPlatform reports whether body overlaps platform horizontally and its bottom
// edge is within tolerance of the platform's top. Velocity is ignored.
func IsOnPlatform(body, platform *Body, tolerance float32) bool {
	b, p := body.Bounds(), platform.Bounds()
	if b.Empty() || p.Empty() {
		return false
	}
	horizontal := b.Left < p.Right && b.Right > p.Left
	return horizontal && math32.Abs(b.Bottom-p.Top) <= tolerance
}

// DistanceBetween returns the Euclidean distance between the two body centers.
func DistanceBetween(a, b *Body) float32 {
	return b.Center().Sub(a.Center()).Len()
}

// WithinDistance reports whether the body centers are at most d apart.
func WithinDistance(a, b *Body, d float32) bool {
	return DistanceBetween(a, b) <= d
}
