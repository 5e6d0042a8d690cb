package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window.
type Options struct {
	Title         string
	Width, Height int32
	TargetFPS     int32
}

// Run opens the window and drives the main loop. Each frame it calls update with
// the last frame's duration in seconds, then clears the screen and calls draw.
// The loop ends when the window is closed or ESC is pressed.
func Run(opts Options, update func(dt float32), draw func()) {
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(opts.TargetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
