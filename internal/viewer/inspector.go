package viewer

import (
	"space-lab/internal/catalog"
)

// Slide spring: stiff and slightly underdamped, so the panel arrives with a
// small settle.
const (
	slideStiffness = 300
	slideDamping   = 30
	slideStep      = float32(1.0 / 240)
	slideRest      = 0.001
)

// InspectorWidth is the panel width on wide surfaces. Narrow surfaces use the
// full width.
const InspectorWidth = 320

// Inspector is the part detail panel. Offset is the slide position as a fraction
// of the panel width: 0 fully shown, 1 fully off the trailing edge.
type Inspector struct {
	part     *catalog.Part
	open     bool
	offset   float32
	velocity float32
}

func newInspector() Inspector {
	return Inspector{offset: 1}
}

// Show slides the panel in with p. If it is already open the contents swap in
// place.
func (in *Inspector) Show(p *catalog.Part) {
	in.part = p
	in.open = true
}

// Hide slides the panel out. It keeps drawing its last part until it is gone.
func (in *Inspector) Hide() {
	in.open = false
}

// Open reports whether the panel is shown or sliding in.
func (in *Inspector) Open() bool { return in.open }

// Visible reports whether any of the panel is on screen.
func (in *Inspector) Visible() bool { return in.part != nil }

// Part is the part on display, nil once the panel has slid out.
func (in *Inspector) Part() *catalog.Part { return in.part }

// Rows are the specification rows on display, in catalog order.
func (in *Inspector) Rows() catalog.Specs {
	if in.part == nil {
		return nil
	}
	return in.part.Specs
}

// Offset is the current slide position.
func (in *Inspector) Offset() float32 { return in.offset }

// Advance integrates the slide spring over dt seconds.
func (in *Inspector) Advance(dt float32) {
	if in.part == nil {
		return
	}
	target := float32(1)
	if in.open {
		target = 0
	}
	for dt > 0 {
		h := dt
		if h > slideStep {
			h = slideStep
		}
		accel := slideStiffness*(target-in.offset) - slideDamping*in.velocity
		in.velocity += accel * h
		in.offset += in.velocity * h
		dt -= h
	}
	if abs(target-in.offset) < slideRest && abs(in.velocity) < slideRest*10 {
		in.offset, in.velocity = target, 0
		if !in.open {
			in.part = nil
		}
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
