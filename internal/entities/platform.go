package entities

import (
	"fmt"
	"strings"

	"platformer/internal/physics"
)

// PlatformKind is a rendering tag. Physics never looks at it.
type PlatformKind uint8

const (
	Normal PlatformKind = iota
	Ground
	Breakable
	Moving
)

var platformKindNames = [...]string{
	Normal:    "normal",
	Ground:    "ground",
	Breakable: "breakable",
	Moving:    "moving",
}

func (k PlatformKind) String() string {
	if int(k) < len(platformKindNames) {
		return platformKindNames[k]
	}
	return fmt.Sprintf("PlatformKind(%d)", k)
}

// ParsePlatformKind maps a name such as "ground" to its kind. The empty string is Normal.
func ParsePlatformKind(s string) (PlatformKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Normal, nil
	}
	for i, name := range platformKindNames {
		if name == s {
			return PlatformKind(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown platform kind %q", s)
}

// Platform is an obstacle the player collides with.
type Platform struct {
	Body *physics.Body
	Kind PlatformKind
}

// NewPlatform returns a normal platform.
func NewPlatform(x, y, width, height float32) *Platform {
	return &Platform{Body: physics.NewBody(x, y, width, height), Kind: Normal}
}

// NewGround returns a ground strip.
func NewGround(x, y, width, height float32) *Platform {
	return &Platform{Body: physics.NewBody(x, y, width, height), Kind: Ground}
}

// NewBreakable returns a breakable platform. Breaking is not simulated.
func NewBreakable(x, y, width, height float32) *Platform {
	return &Platform{Body: physics.NewBody(x, y, width, height), Kind: Breakable}
}

// Kinematic reports whether the platform is meant to move on its own.
// The resolver still treats every platform as immovable.
func (p *Platform) Kinematic() bool {
	return p.Kind == Moving
}

// Bounds returns the platform rectangle.
func (p *Platform) Bounds() physics.Rect {
	return p.Body.Bounds()
}

// IsLandingOn reports whether body is coming down onto the platform's top: its
// bottom was at or above top+margin on the previous frame (prevY is the previous
// top edge), it is now at or below top-margin, and it is not moving up.
func (p *Platform) IsLandingOn(body *physics.Body, prevY, margin float32) bool {
	top := p.Bounds().Top
	bottom := body.Bounds().Bottom
	return prevY+body.Size[1] <= top+margin &&
		bottom >= top-margin &&
		body.Velocity[1] >= 0
}

// Bodies returns the platform bodies in order, ready for physics.World.Step.
func Bodies(platforms []*Platform) []*physics.Body {
	out := make([]*physics.Body, len(platforms))
	for i, p := range platforms {
		out[i] = p.Body
	}
	return out
}
