package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// Text is only refreshed every updateInterval frames.
	updateInterval = 30
)

var (
	textColor = rl.NewColor(5, 150, 105, 255)
	backColor = rl.NewColor(255, 255, 255, 200)
)

// Debug draws the developer overlays: frame rate and heap size, top-right.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
}

// New returns the overlays with the given initial visibility.
func New(showFPS, showMem bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowMemAlloc: showMem}
}

func (d *Debug) SetShowFPS(show bool)      { d.ShowFPS = show }
func (d *Debug) SetShowMemAlloc(show bool) { d.ShowMemAlloc = show }

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

func (d *Debug) measure(text string) float32 {
	if d.font.Texture.ID != 0 {
		return rl.MeasureTextEx(d.font, text, fontSize, 1).X
	}
	return float32(rl.MeasureText(text, fontSize))
}

func (d *Debug) drawRight(text string, y float32) {
	if text == "" {
		return
	}
	w := d.measure(text)
	x := float32(rl.GetScreenWidth()) - w - padding
	rl.DrawRectangleRec(rl.NewRectangle(x-4, y-2, w+8, fontSize+4), backColor)
	if d.font.Texture.ID != 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(x, y), fontSize, 1, textColor)
		return
	}
	rl.DrawText(text, int32(x), int32(y), fontSize, textColor)
}

// Draw renders the enabled overlays starting at top (below any navigation bar).
func (d *Debug) Draw(top float32) {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.fpsText == "" || d.ShowMemAlloc && d.memText == "" {
		refresh = true
	}

	y := top + padding
	if d.ShowFPS {
		if refresh {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		d.drawRight(d.memText, y)
	}
}
