package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Minimum window size; below this the portal layout stops making sense.
const (
	MinWidth  = 360
	MinHeight = 480
)

// Window describes the window Run opens.
type Window struct {
	Width, Height int
	Title         string
	FPS           int
}

// Run opens a resizable, antialiased window and drives the frame loop. Each frame it
// calls update (input and state), then clears to background and calls draw.
// ESC belongs to the developer console, so the window only closes via its button.
// setup runs once after the GL context exists; teardown runs before it closes.
func Run(w Window, background rl.Color, setup func(), update, draw func(), teardown func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetWindowMinSize(MinWidth, MinHeight)
	rl.SetExitKey(rl.KeyNull)
	if w.FPS > 0 {
		rl.SetTargetFPS(int32(w.FPS))
	}

	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
