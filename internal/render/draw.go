package render

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/entities"
	"platformer/internal/game"
	"platformer/internal/physics"
)

var (
	background  = rl.NewColor(135, 206, 235, 255) // sky
	playerColor = rl.Blue
)

const (
	hudFontSize = 20
	hudPadding  = 10
	hudLine     = hudFontSize + 4
)

// PlatformColor returns the fill color for a platform kind.
func PlatformColor(k entities.PlatformKind) rl.Color {
	switch k {
	case entities.Ground:
		return rl.DarkGreen
	case entities.Breakable:
		return rl.Brown
	case entities.Moving:
		return rl.Purple
	default:
		return rl.DarkGray
	}
}

// CollectibleColor returns the fill color for a collectible kind.
func CollectibleColor(k entities.CollectibleKind) rl.Color {
	switch k {
	case entities.Gem:
		return rl.SkyBlue
	case entities.PowerUp:
		return rl.Red
	default:
		return rl.Gold
	}
}

// Follow centers the camera horizontally on focus. The view never scrolls left of
// the world origin and never scrolls vertically.
func Follow(focus physics.Rect, screenW, screenH float32) rl.Camera2D {
	half := screenW / 2
	x := math32.Max((focus.Left+focus.Right)/2, half)
	return rl.Camera2D{
		Offset: rl.NewVector2(half, screenH/2),
		Target: rl.NewVector2(x, screenH/2),
		Zoom:   1,
	}
}

func rect(r physics.Rect) rl.Rectangle {
	return rl.NewRectangle(r.Left, r.Top, r.Width(), r.Height())
}

// DrawSession draws the level and player through a camera following the player,
// then the HUD or the game over screen.
func DrawSession(s *game.Session, dbg *Debug) {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	cam := Follow(s.Player.Body.Bounds(), screenW, screenH)

	rl.BeginMode2D(cam)
	for _, p := range s.Level.Platforms {
		rl.DrawRectangleRec(rect(p.Bounds()), PlatformColor(p.Kind))
	}
	for _, c := range s.Level.Collectibles {
		if !c.Collected {
			rl.DrawRectangleRec(rect(c.Body.Bounds()), CollectibleColor(c.Kind))
		}
	}
	rl.DrawRectangleRec(rect(s.Player.Body.Bounds()), playerColor)
	if dbg != nil {
		dbg.DrawWorld(s)
	}
	rl.EndMode2D()

	if s.State == game.GameOver {
		drawGameOver(s, int32(screenW), int32(screenH))
	} else {
		drawHUD(s)
	}
	if dbg != nil {
		dbg.Draw(s)
	}
}

func drawHUD(s *game.Session) {
	y := int32(hudPadding)
	for _, line := range []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Time: %.1f", s.TimeSurvived),
		fmt.Sprintf("Jumps: %d/%d", s.Player.JumpsUsed(), s.Player.Tuning.MaxJumps),
	} {
		rl.DrawText(line, hudPadding, y, hudFontSize, rl.Black)
		y += hudLine
	}
}

func drawGameOver(s *game.Session, w, h int32) {
	rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.Black, 0.6))
	centered := func(text string, y, size int32, c rl.Color) {
		rl.DrawText(text, (w-rl.MeasureText(text, size))/2, y, size, c)
	}
	centered("GAME OVER", h/2-60, 40, rl.Red)
	centered(fmt.Sprintf("Score: %d", s.Score), h/2, hudFontSize, rl.RayWhite)
	centered("Press SPACE or ENTER to restart", h/2+30, hudFontSize, rl.RayWhite)
}
