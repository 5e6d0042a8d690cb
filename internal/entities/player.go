package entities

import (
	"github.com/chewxy/math32"

	"platformer/internal/physics"
)

// PlayerTuning holds the player's movement constants.
type PlayerTuning struct {
	Width, Height float32
	MoveSpeed     float32 // horizontal speed while a direction is held
	JumpForce     float32 // velocity.y set by a jump; negative is up
	MaxJumps      int     // jumps allowed before landing again (2 = double jump)
	Damping       float32 // per-frame multiplier on velocity.x
	RestSpeed     float32 // |velocity.x| below this snaps to zero
}

// DefaultPlayerTuning returns the stock player tuning.
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Width:     32,
		Height:    32,
		MoveSpeed: 200,
		JumpForce: -400,
		MaxJumps:  2,
		Damping:   0.8,
		RestSpeed: 1,
	}
}

// Player is the controllable body.
type Player struct {
	Body   *physics.Body
	Tuning PlayerTuning
	jumps  int
}

// NewPlayer places a player with the given tuning at (x, y).
func NewPlayer(x, y float32, tuning PlayerTuning) *Player {
	return &Player{
		Body:   physics.NewBody(x, y, tuning.Width, tuning.Height),
		Tuning: tuning,
	}
}

// MoveLeft sets velocity.x to -MoveSpeed.
func (p *Player) MoveLeft() {
	p.Body.Velocity[0] = -p.Tuning.MoveSpeed
}

// MoveRight sets velocity.x to MoveSpeed.
func (p *Player) MoveRight() {
	p.Body.Velocity[0] = p.Tuning.MoveSpeed
}

// Jump launches the player if any jumps remain and reports whether it did.
// It works in the air too, up to MaxJumps.
func (p *Player) Jump() bool {
	if p.jumps >= p.Tuning.MaxJumps {
		return false
	}
	p.Body.Velocity[1] = p.Tuning.JumpForce
	p.Body.OnGround = false
	p.jumps++
	return true
}

// JumpsUsed returns the number of jumps since the last landing.
func (p *Player) JumpsUsed() int {
	return p.jumps
}

// Land grounds the player and restores all jumps.
func (p *Player) Land() {
	p.Body.OnGround = true
	p.jumps = 0
}

// Update damps horizontal motion once per frame.
func (p *Player) Update() {
	p.Body.Velocity[0] *= p.Tuning.Damping
	if math32.Abs(p.Body.Velocity[0]) < p.Tuning.RestSpeed {
		p.Body.Velocity[0] = 0
	}
}
