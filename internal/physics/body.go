package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rect is an axis-aligned rectangle in screen space (Y grows downward).
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Width returns Right - Left.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no area or carries a NaN edge.
// Empty rectangles never overlap anything.
func (r Rect) Empty() bool {
	if math32.IsNaN(r.Left) || math32.IsNaN(r.Top) || math32.IsNaN(r.Right) || math32.IsNaN(r.Bottom) {
		return true
	}
	return !(r.Right > r.Left) || !(r.Bottom > r.Top)
}

// Body is the kinematic state shared by every simulated entity: top-left position,
// velocity in pixels per second, and extent. Size must stay fixed after construction.
type Body struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Size     mgl32.Vec2
	OnGround bool
	Mass     float32 // reserved; not used by any force computation
}

// NewBody returns a body at (x, y) with the given extent. Velocity is zero and mass is 1.
func NewBody(x, y, width, height float32) *Body {
	return &Body{
		Position: mgl32.Vec2{x, y},
		Size:     mgl32.Vec2{width, height},
		Mass:     1,
	}
}

// Bounds returns [position, position+size] as a rectangle.
func (b *Body) Bounds() Rect {
	return Rect{
		Left:   b.Position[0],
		Top:    b.Position[1],
		Right:  b.Position[0] + b.Size[0],
		Bottom: b.Position[1] + b.Size[1],
	}
}

// Center returns the geometric center of the body.
func (b *Body) Center() mgl32.Vec2 {
	return b.Position.Add(b.Size.Mul(0.5))
}

// Degenerate reports whether the body has a non-positive or NaN extent.
func (b *Body) Degenerate() bool {
	return b.Bounds().Empty()
}

// Overlaps reports whether the two bodies intersect with positive area.
// Bodies that only share an edge do not overlap.
func (b *Body) Overlaps(other *Body) bool {
	return AABBOverlap(b.Bounds(), other.Bounds())
}
