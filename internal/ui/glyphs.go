package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/icons"
)

// pen draws strokes in a glyph's unit frame: (-1,-1) top-left to (1,1) bottom-right.
type pen struct {
	c     rl.Vector2
	r     float32
	thick float32
	col   rl.Color
}

func (p pen) at(x, y float32) rl.Vector2 {
	return rl.NewVector2(p.c.X+x*p.r, p.c.Y+y*p.r)
}

func (p pen) line(x0, y0, x1, y1 float32) {
	rl.DrawLineEx(p.at(x0, y0), p.at(x1, y1), p.thick, p.col)
}

func (p pen) poly(pts ...float32) {
	for i := 0; i+3 < len(pts); i += 2 {
		p.line(pts[i], pts[i+1], pts[i+2], pts[i+3])
	}
}

func (p pen) rect(x0, y0, x1, y1 float32) {
	p.poly(x0, y0, x1, y0, x1, y1, x0, y1, x0, y0)
}

// arc strokes a circle segment; angles in degrees, 0 = +X, clockwise on screen.
func (p pen) arc(x, y, radius, from, to float32) {
	r := radius * p.r
	rl.DrawRing(p.at(x, y), r-p.thick/2, r+p.thick/2, from, to, 24, p.col)
}

func (p pen) circle(x, y, radius float32) { p.arc(x, y, radius, 0, 360) }

func (p pen) dot(x, y, radius float32) {
	rl.DrawCircleV(p.at(x, y), radius*p.r, p.col)
}

// DrawGlyph draws g centered on c, size pixels across, stroked in col.
func DrawGlyph(g icons.Glyph, c rl.Vector2, size float32, col rl.Color) {
	if size <= 0 {
		return
	}
	p := pen{c: c, r: size / 2, thick: max(1.5, size/12), col: col}
	switch g {
	case icons.Cpu:
		p.rect(-0.6, -0.6, 0.6, 0.6)
		p.rect(-0.25, -0.25, 0.25, 0.25)
		for _, o := range []float32{-0.3, 0.3} {
			p.line(o, -0.6, o, -0.9)
			p.line(o, 0.6, o, 0.9)
			p.line(-0.6, o, -0.9, o)
			p.line(0.6, o, 0.9, o)
		}
	case icons.Battery:
		p.rect(-0.9, -0.45, 0.7, 0.45)
		p.line(0.9, -0.2, 0.9, 0.2)
		p.line(-0.5, -0.15, -0.5, 0.15)
		p.line(-0.2, -0.15, -0.2, 0.15)
	case icons.Fan:
		p.dot(0, 0, 0.12)
		p.arc(0.3, -0.45, 0.35, 180, 360)
		p.arc(0.45, 0.3, 0.35, 270, 450)
		p.arc(-0.3, 0.45, 0.35, 0, 180)
		p.arc(-0.45, -0.3, 0.35, 90, 270)
	case icons.Satellite:
		p.rect(-0.2, -0.2, 0.2, 0.2)
		p.rect(-0.9, -0.35, -0.4, 0.35)
		p.rect(0.4, -0.35, 0.9, 0.35)
		p.line(-0.4, 0, -0.2, 0)
		p.line(0.2, 0, 0.4, 0)
		p.line(0, -0.2, 0, -0.55)
		p.dot(0, -0.65, 0.1)
	case icons.Camera:
		p.rect(-0.9, -0.45, 0.9, 0.7)
		p.poly(-0.35, -0.45, -0.2, -0.7, 0.2, -0.7, 0.35, -0.45)
		p.circle(0, 0.12, 0.3)
	case icons.Sun:
		p.circle(0, 0, 0.35)
		for _, d := range [][4]float32{
			{0, -0.6, 0, -0.9}, {0, 0.6, 0, 0.9}, {-0.6, 0, -0.9, 0}, {0.6, 0, 0.9, 0},
			{-0.42, -0.42, -0.64, -0.64}, {0.42, 0.42, 0.64, 0.64},
			{-0.42, 0.42, -0.64, 0.64}, {0.42, -0.42, 0.64, -0.64},
		} {
			p.line(d[0], d[1], d[2], d[3])
		}
	case icons.Wifi:
		p.arc(0, 0.6, 0.35, 225, 315)
		p.arc(0, 0.6, 0.75, 225, 315)
		p.arc(0, 0.6, 1.15, 235, 305)
		p.dot(0, 0.6, 0.1)
	case icons.Umbrella:
		p.arc(0, 0, 0.85, 180, 360)
		p.line(-0.85, 0, 0.85, 0)
		p.line(0, 0, 0, 0.7)
		p.arc(-0.2, 0.7, 0.2, 0, 180)
	case icons.Cylinder:
		rl.DrawEllipseLines(int32(c.X), int32(c.Y-0.55*p.r), 0.7*p.r, 0.25*p.r, col)
		p.line(-0.7, -0.55, -0.7, 0.55)
		p.line(0.7, -0.55, 0.7, 0.55)
		rl.DrawEllipseLines(int32(c.X), int32(c.Y+0.55*p.r), 0.7*p.r, 0.25*p.r, col)
	case icons.Activity:
		p.poly(-0.9, 0, -0.5, 0, -0.25, -0.7, 0.2, 0.7, 0.45, 0, 0.9, 0)
	case icons.Map:
		p.poly(-0.9, -0.6, -0.3, -0.85, 0.3, -0.6, 0.9, -0.85, 0.9, 0.6, 0.3, 0.85, -0.3, 0.6, -0.9, 0.85, -0.9, -0.6)
		p.line(-0.3, -0.85, -0.3, 0.6)
		p.line(0.3, -0.6, 0.3, 0.85)
	case icons.Wind:
		p.line(-0.9, -0.3, 0.3, -0.3)
		p.arc(0.3, -0.55, 0.25, 270, 450)
		p.line(-0.9, 0.05, 0.55, 0.05)
		p.arc(0.55, 0.3, 0.25, 270, 90+360)
		p.line(-0.9, 0.4, -0.1, 0.4)
	case icons.Plane:
		p.line(0, -0.9, 0, 0.8)
		p.poly(-0.9, 0.15, 0, -0.3, 0.9, 0.15)
		p.poly(-0.35, 0.85, 0, 0.65, 0.35, 0.85)
	case icons.BookOpen:
		p.poly(0, -0.5, -0.4, -0.75, -0.9, -0.75, -0.9, 0.65, -0.4, 0.65, 0, 0.85)
		p.poly(0, -0.5, 0.4, -0.75, 0.9, -0.75, 0.9, 0.65, 0.4, 0.65, 0, 0.85)
		p.line(0, -0.5, 0, 0.85)
	case icons.Settings:
		p.circle(0, 0, 0.6)
		p.circle(0, 0, 0.22)
		for _, d := range [][4]float32{
			{0, -0.6, 0, -0.9}, {0, 0.6, 0, 0.9}, {-0.6, 0, -0.9, 0}, {0.6, 0, 0.9, 0},
			{-0.42, -0.42, -0.64, -0.64}, {0.42, 0.42, 0.64, 0.64},
			{-0.42, 0.42, -0.64, 0.64}, {0.42, -0.42, 0.64, -0.64},
		} {
			p.line(d[0], d[1], d[2], d[3])
		}
	case icons.Info:
		p.circle(0, 0, 0.85)
		p.line(0, -0.05, 0, 0.45)
		p.dot(0, -0.35, 0.09)
	case icons.Close:
		p.line(-0.6, -0.6, 0.6, 0.6)
		p.line(-0.6, 0.6, 0.6, -0.6)
	case icons.Expand:
		p.poly(0.2, -0.8, 0.8, -0.8, 0.8, -0.2)
		p.line(0.8, -0.8, 0.15, -0.15)
		p.poly(-0.2, 0.8, -0.8, 0.8, -0.8, 0.2)
		p.line(-0.8, 0.8, -0.15, 0.15)
	case icons.Collapse:
		p.poly(0.15, -0.75, 0.15, -0.15, 0.75, -0.15)
		p.line(0.15, -0.15, 0.8, -0.8)
		p.poly(-0.15, 0.75, -0.15, 0.15, -0.75, 0.15)
		p.line(-0.15, 0.15, -0.8, 0.8)
	case icons.ArrowRight:
		p.line(-0.8, 0, 0.8, 0)
		p.poly(0.2, -0.55, 0.8, 0, 0.2, 0.55)
	case icons.Menu:
		p.line(-0.8, -0.55, 0.8, -0.55)
		p.line(-0.8, 0, 0.8, 0)
		p.line(-0.8, 0.55, 0.8, 0.55)
	default:
		p.poly(0, -0.9, 0.8, -0.45, 0.8, 0.45, 0, 0.9, -0.8, 0.45, -0.8, -0.45, 0, -0.9)
		p.poly(-0.8, -0.45, 0, 0, 0.8, -0.45)
		p.line(0, 0, 0, 0.9)
	}
}
