package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/game"
)

// DefaultBindings maps arrows/WASD to movement, up/W/space to jump, R to reset
// and space/enter to confirm on the game over screen.
func DefaultBindings() game.Bindings {
	return game.Bindings{
		Left:    []game.Key{key(rl.KeyLeft), key(rl.KeyA)},
		Right:   []game.Key{key(rl.KeyRight), key(rl.KeyD)},
		Jump:    []game.Key{key(rl.KeyUp), key(rl.KeyW), key(rl.KeySpace)},
		Reset:   []game.Key{key(rl.KeyR)},
		Confirm: []game.Key{key(rl.KeySpace), key(rl.KeyEnter)},
	}
}

func key(k int32) game.Key { return game.Key(k) }

// KeyDown polls raylib for a key. Pass it to game.KeyTracker.Update.
func KeyDown(k game.Key) bool {
	return rl.IsKeyDown(int32(k))
}

// DebugToggleKey flips the collision box overlay.
const DebugToggleKey = rl.KeyF3
