package viewer

import (
	"github.com/chewxy/math32"

	"space-lab/internal/vmath"
)

// Orbit camera defaults.
const (
	// AutoRotateSpeed is one turn every 30 seconds.
	AutoRotateSpeed = 2 * math32.Pi / 30
	CameraFovY      = 45

	minDistance = 2
	maxDistance = 20
	zoomStep    = 0.95
	polarMargin = 0.01
)

// Orbit is a camera circling a target. Dragging turns it directly with no
// inertia.
type Orbit struct {
	Target   vmath.Vec3
	Azimuth  float32 // around Y, from +Z toward +X
	Polar    float32 // from +Y
	Distance float32
}

// NewOrbit places the camera at pos looking at target.
func NewOrbit(pos, target vmath.Vec3) Orbit {
	d := pos.Sub(target)
	r := d.Len()
	o := Orbit{Target: target, Distance: r}
	if r > 0 {
		o.Azimuth = math32.Atan2(d.X(), d.Z())
		o.Polar = math32.Acos(clamp(d.Y()/r, -1, 1))
	}
	return o
}

// DefaultOrbit is the opening view: from (4, 4, 4) toward the origin.
func DefaultOrbit() Orbit {
	return NewOrbit(vmath.V3(4, 4, 4), vmath.Vec3{})
}

// Position is the camera's location.
func (o Orbit) Position() vmath.Vec3 {
	sp, cp := math32.Sincos(o.Polar)
	sa, ca := math32.Sincos(o.Azimuth)
	return o.Target.Add(vmath.V3(sp*sa, cp, sp*ca).Scale(o.Distance))
}

// Drag turns the camera by a pointer movement of (dx, dy) pixels on a surface
// the given number of pixels tall. A full-height drag is one turn.
func (o *Orbit) Drag(dx, dy, height float32) {
	if height <= 0 {
		return
	}
	o.Azimuth -= 2 * math32.Pi * dx / height
	o.Polar -= 2 * math32.Pi * dy / height
	o.Polar = clamp(o.Polar, polarMargin, math32.Pi-polarMargin)
}

// Zoom moves the camera in (positive steps) or out.
func (o *Orbit) Zoom(steps float32) {
	o.Distance = clamp(o.Distance*math32.Pow(zoomStep, steps), minDistance, maxDistance)
}

// Advance spins the camera when auto-rotation is on.
func (o *Orbit) Advance(dt float32, autoRotate bool) {
	if autoRotate {
		o.Azimuth += AutoRotateSpeed * dt
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
