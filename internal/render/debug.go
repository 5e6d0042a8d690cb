package render

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/config"
	"platformer/internal/game"
)

const (
	debugFontSize   = 20
	debugPadding    = 12
	debugLineHeight = debugFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	// velocityScale shortens velocity arrows to screen length.
	velocityScale = 0.1
)

// Debug holds the developer overlays. Which ones show comes from config.DebugConfig.
type Debug struct {
	config.DebugConfig
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// NewDebug returns an overlay with the given toggles.
func NewDebug(cfg config.DebugConfig) *Debug {
	return &Debug{DebugConfig: cfg}
}

// ToggleBoxes flips the collision box overlay.
func (d *Debug) ToggleBoxes() {
	d.ShowBoxes = !d.ShowBoxes
}

// DrawWorld draws collision boxes and the velocity arrow in world space.
// Call between BeginMode2D and EndMode2D.
func (d *Debug) DrawWorld(s *game.Session) {
	if d.ShowBoxes {
		for _, o := range s.Obstacles() {
			rl.DrawRectangleLinesEx(rect(o.Bounds()), 1, rl.Red)
		}
		for _, c := range s.Level.Collectibles {
			if !c.Collected {
				rl.DrawRectangleLinesEx(rect(c.Body.Bounds()), 1, rl.Orange)
			}
		}
		box := rl.Lime
		if s.Player.Body.OnGround {
			box = rl.Green
		}
		rl.DrawRectangleLinesEx(rect(s.Player.Body.Bounds()), 2, box)
	}
	if d.ShowVelocity {
		b := s.Player.Body
		c := b.Center()
		v := b.Velocity.Mul(velocityScale)
		rl.DrawLineV(rl.NewVector2(c[0], c[1]), rl.NewVector2(c[0]+v[0], c[1]+v[1]), rl.Maroon)
	}
}

// Draw renders the screen-space overlays: FPS and memory at the top-right in green,
// player position and velocity under them.
// FPS and memory text is only recomputed every updateInterval frames.
func (d *Debug) Draw(s *game.Session) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(debugPadding)
	line := func(text string) {
		w := rl.MeasureText(text, debugFontSize)
		rl.DrawText(text, screenW-w-debugPadding, y, debugFontSize, rl.Green)
		y += debugLineHeight
	}

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		line(d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		line(d.lastMemText)
	}
	b := s.Player.Body
	if d.ShowPlayerPos {
		line(fmt.Sprintf("Pos: %.1f, %.1f", b.Position[0], b.Position[1]))
	}
	if d.ShowVelocity {
		line(fmt.Sprintf("Vel: %.1f, %.1f", b.Velocity[0], b.Velocity[1]))
		line(fmt.Sprintf("Ground: %v", b.OnGround))
	}
}
