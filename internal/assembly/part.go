// Package assembly animates a model's parts between the assembled and exploded
// layouts. It is renderer-agnostic: each frame the stage advances the Scene and
// then draws whatever transforms it reports.
package assembly

import (
	"space-lab/internal/catalog"
	"space-lab/internal/geometry"
	"space-lab/internal/palette"
	"space-lab/internal/vmath"
)

// State is the layout a model is shown in.
type State int

const (
	Assembled State = iota
	Exploded
)

// Toggle returns the other state.
func (s State) Toggle() State {
	if s == Exploded {
		return Assembled
	}
	return Exploded
}

func (s State) String() string {
	if s == Exploded {
		return "exploded"
	}
	return "assembled"
}

// Animation rates, per second. A rate r closes 1-exp(-r*t) of the gap after t
// seconds, so position closes 90% in about 0.58s.
const (
	PositionRate = 4
	RotationRate = 2
	ScaleRate    = 10

	HoverScale    = 1.15
	HoverEmissive = 0.3

	// Idle jitter on the X axis while assembled.
	JitterAmplitude = 0.02
)

// Cue is the pointer glyph shown over the viewer surface.
type Cue int

const (
	CueDefault Cue = iota
	CuePointer
)

// PointerCue sets the pointer glyph for the whole viewer surface. The last call
// wins.
type PointerCue interface {
	SetCue(Cue)
}

// PickFunc receives the part a user picked.
type PickFunc func(*catalog.Part)

// PartRenderer holds the animated pose of one part.
type PartRenderer struct {
	part  *catalog.Part
	desc  catalog.GeometryDescriptor
	shape geometry.Shape
	mesh  *geometry.Mesh
	color palette.RGBA

	pos   vmath.Vec3
	rot   vmath.Vec3
	scale float32

	hovered bool
	onPick  PickFunc
	cue     PointerCue
}

// NewPartRenderer places the part at its assembled slot in its rest pose. mesh is
// the part's shape, used for picking.
func NewPartRenderer(p *catalog.Part, mesh *geometry.Mesh, onPick PickFunc, cue PointerCue) *PartRenderer {
	r := &PartRenderer{mesh: mesh, onPick: onPick, cue: cue, scale: 1}
	r.bind(p)
	r.pos = r.desc.Position
	r.rot = r.desc.RestRotation()
	return r
}

// bind resolves the drawable geometry of p.
func (r *PartRenderer) bind(p *catalog.Part) {
	r.part = p
	r.desc = p.Descriptor()
	r.shape = geometry.ShapeOf(r.desc)
	r.color = palette.Material(r.desc.Color)
}

// Part is the catalog entry this renderer draws.
func (r *PartRenderer) Part() *catalog.Part { return r.part }

// Descriptor is the geometry in use, the fallback box included.
func (r *PartRenderer) Descriptor() catalog.GeometryDescriptor { return r.desc }

// Shape is the primitive the part is drawn with.
func (r *PartRenderer) Shape() geometry.Shape { return r.shape }

// Target is where the part heads in state s.
func (r *PartRenderer) Target(s State) vmath.Vec3 {
	if s == Exploded && r.desc.HasExploded() {
		return *r.desc.Exploded
	}
	return r.desc.Position
}

// Phase offsets the idle jitter so parts do not move in lockstep.
func (r *PartRenderer) Phase() float32 {
	return r.desc.Position.X() + 2*r.desc.Position.Z()
}

// Advance steps the animation by dt seconds at clock time t.
func (r *PartRenderer) Advance(dt, t float32, s State) {
	r.pos = vmath.ApproachVec3(r.pos, r.Target(s), PositionRate, dt)

	rest := r.desc.RestRotation()
	if s == Assembled {
		r.rot = rest
		r.rot[0] += vmath.Oscillate(t, 1, r.Phase(), JitterAmplitude)
	} else {
		r.rot = vmath.ApproachVec3(r.rot, rest, RotationRate, dt)
	}

	target := float32(1)
	if r.hovered {
		target = HoverScale
	}
	r.scale = vmath.Approach(r.scale, target, ScaleRate, dt)
}

// Enter marks the pointer as over the part.
func (r *PartRenderer) Enter() {
	r.hovered = true
	if r.cue != nil {
		r.cue.SetCue(CuePointer)
	}
}

// Leave clears hover.
func (r *PartRenderer) Leave() {
	r.hovered = false
	if r.cue != nil {
		r.cue.SetCue(CueDefault)
	}
}

// Hovered reports whether the pointer is over the part.
func (r *PartRenderer) Hovered() bool { return r.hovered }

// Pick hands the part to the pick callback.
func (r *PartRenderer) Pick() {
	if r.onPick != nil {
		r.onPick(r.part)
	}
}

// Position is the current animated position in group space.
func (r *PartRenderer) Position() vmath.Vec3 { return r.pos }

// Rotation is the current Euler rotation.
func (r *PartRenderer) Rotation() vmath.Vec3 { return r.rot }

// Scale is the current uniform scale.
func (r *PartRenderer) Scale() float32 { return r.scale }

// Transform is the part's pose within the group.
func (r *PartRenderer) Transform() vmath.Transform {
	return vmath.Transform{Position: r.pos, Rotation: r.rot, Scale: vmath.Splat(r.scale)}
}

// Emissive is the highlight intensity.
func (r *PartRenderer) Emissive() float32 {
	if r.hovered {
		return HoverEmissive
	}
	return 0
}

// Color is the base material color.
func (r *PartRenderer) Color() palette.RGBA { return r.color }

// Tint is the material color with the hover highlight applied.
func (r *PartRenderer) Tint() palette.RGBA {
	return palette.Emissive(r.color, r.Emissive())
}

// Intersect tests a group-space ray against the part's current pose.
func (r *PartRenderer) Intersect(ray geometry.Ray) (float32, bool) {
	if r.mesh == nil {
		return 0, false
	}
	tr := r.Transform()
	if !ray.HitsSphere(r.pos, r.shape.Radius()*r.scale) {
		return 0, false
	}
	return r.mesh.Intersect(ray.Into(tr))
}
