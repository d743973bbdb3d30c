package assembly

import (
	"github.com/chewxy/math32"

	"space-lab/internal/catalog"
	"space-lab/internal/geometry"
	"space-lab/internal/vmath"
)

// Group idle motion.
const (
	BobAmplitude = 0.1
	BobFrequency = 0.5
	BobSettle    = 6    // per second, toward zero while exploded
	YawSpeed     = 0.06 // radians per second while assembled

	// GroupOffset lowers the model so it sits in the middle of the view.
	GroupOffset = -0.5
)

// MeshSource hands out the triangle mesh for a shape.
type MeshSource interface {
	Mesh(geometry.Shape) *geometry.Mesh
}

// Scene composes the part renderers and connectors of the active model and owns
// the whole group's idle motion.
type Scene struct {
	meshes MeshSource
	onPick PickFunc
	cue    PointerCue

	parts      []*PartRenderer
	byID       map[string]*PartRenderer
	connectors *ConnectorSet

	bob, yaw float32
	hovered  *PartRenderer
}

// NewScene returns an empty scene. Picks are forwarded to onPick; hover changes
// go to cue.
func NewScene(meshes MeshSource, onPick PickFunc, cue PointerCue) *Scene {
	if meshes == nil {
		meshes = geometry.NewCache()
	}
	return &Scene{meshes: meshes, onPick: onPick, cue: cue, byID: map[string]*PartRenderer{}}
}

// SetParts swaps the whole child set, keyed by part id. Every renderer is new
// and starts at its assembled slot, so nothing of the previous model's poses
// carries over. Connectors are rebuilt and the old set released.
func (s *Scene) SetParts(parts []catalog.Part) {
	if s.hovered != nil {
		s.hovered.Leave()
		s.hovered = nil
	}
	s.parts = make([]*PartRenderer, 0, len(parts))
	s.byID = make(map[string]*PartRenderer, len(parts))
	for i := range parts {
		p := &parts[i]
		r := NewPartRenderer(p, s.meshes.Mesh(geometry.ShapeOf(p.Descriptor())), s.pick, s.cue)
		s.parts = append(s.parts, r)
		s.byID[p.ID] = r
	}

	s.connectors.Release()
	s.connectors = BuildConnectors(parts)
}

func (s *Scene) pick(p *catalog.Part) {
	if s.onPick != nil {
		s.onPick(p)
	}
}

// Parts returns the renderers in catalog order.
func (s *Scene) Parts() []*PartRenderer { return s.parts }

// Part looks up a renderer by part id.
func (s *Scene) Part(id string) (*PartRenderer, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Connectors is the current connector set.
func (s *Scene) Connectors() *ConnectorSet { return s.connectors }

// Advance steps the group motion and every part by dt seconds at clock time t.
func (s *Scene) Advance(dt, t float32, st State) {
	if st == Assembled {
		target := BobAmplitude * math32.Sin(t*BobFrequency)
		s.bob = vmath.Approach(s.bob, target, BobSettle, dt)
		s.yaw += YawSpeed * dt
	} else {
		s.bob = vmath.Approach(s.bob, 0, BobSettle, dt)
	}
	for _, r := range s.parts {
		r.Advance(dt, t, st)
	}
}

// Bob is the group's vertical idle offset.
func (s *Scene) Bob() float32 { return s.bob }

// Yaw is the group's accumulated idle rotation.
func (s *Scene) Yaw() float32 { return s.yaw }

// Group is the transform from group space to the stage.
func (s *Scene) Group() vmath.Transform {
	return vmath.NewTransform(vmath.V3(0, GroupOffset+s.bob, 0), vmath.V3(0, s.yaw, 0))
}

// World is the stage transform of one part, group included.
func (s *Scene) World(r *PartRenderer) vmath.Mat4 {
	return s.Group().Matrix().Mul(r.Transform().Matrix())
}

// HitTest returns the part nearest along a stage-space ray.
func (s *Scene) HitTest(ray geometry.Ray) (*PartRenderer, bool) {
	local := ray.Into(s.Group())
	var best *PartRenderer
	var bestT float32
	for _, r := range s.parts {
		t, ok := r.Intersect(local)
		if ok && (best == nil || t < bestT) {
			best, bestT = r, t
		}
	}
	return best, best != nil
}

// Hover updates hover from the pointer ray; nil means the pointer is off the
// viewer. The part being left is told before the part being entered.
func (s *Scene) Hover(ray *geometry.Ray) {
	var next *PartRenderer
	if ray != nil {
		next, _ = s.HitTest(*ray)
	}
	if next == s.hovered {
		return
	}
	if s.hovered != nil {
		s.hovered.Leave()
	}
	if next != nil {
		next.Enter()
	}
	s.hovered = next
}

// Hovered is the part under the pointer, if any.
func (s *Scene) Hovered() *PartRenderer { return s.hovered }

// Click picks the part under the ray. It reports whether a part took the click,
// in which case the camera must not start a drag.
func (s *Scene) Click(ray geometry.Ray) bool {
	r, ok := s.HitTest(ray)
	if !ok {
		return false
	}
	r.Pick()
	return true
}

// Release drops the connectors and clears hover.
func (s *Scene) Release() {
	if s.hovered != nil {
		s.hovered.Leave()
		s.hovered = nil
	}
	s.connectors.Release()
	s.connectors = nil
}
