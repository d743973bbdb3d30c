// Package scene draws the viewer's 3D stage: the animated part set, the connector
// lines and the floor grid, seen through the orbit camera. It also turns mouse
// input over the stage into hover, pick and camera motion.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/assembly"
	"space-lab/internal/geometry"
	"space-lab/internal/primitives"
	"space-lab/internal/viewer"
	"space-lab/internal/vmath"
)

const (
	gridExtent     = 6
	gridMinorStep  = 1
	gridMajorStep  = 3
	gridMinorAlpha = 40
	gridMajorAlpha = 90
	axisLineAlpha  = 140
	floorY         = -1.5
)

// Background is the stage clear color (slate-100).
var Background = rl.NewColor(241, 245, 249, 255)

// Scene renders a viewer into an offscreen target sized to its container. Update
// handles input and camera; Draw renders the target and blits it at Bounds.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	viewer *viewer.Viewer
	meshes *primitives.Registry
	bounds rl.Rectangle

	target      rl.RenderTexture2D
	targetW     int32
	targetH     int32
	dragging    bool
	lastMouse   rl.Vector2
	cursorSeen  int
	pointerOver bool
}

// New returns a stage for v drawing with meshes. The grid is visible by default.
func New(v *viewer.Viewer, meshes *primitives.Registry) *Scene {
	s := &Scene{viewer: v, meshes: meshes, GridVisible: true}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = viewer.CameraFovY
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

// SetGridVisible sets whether the floor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetBounds places the stage on screen. The viewer is told the new container width.
func (s *Scene) SetBounds(r rl.Rectangle) {
	if r == s.bounds {
		return
	}
	s.bounds = r
	s.viewer.Resize(r.Width)
}

// Bounds is the stage rectangle on screen.
func (s *Scene) Bounds() rl.Rectangle { return s.bounds }

func (s *Scene) syncCamera() {
	o := s.viewer.Orbit()
	s.Camera.Position = primitives.Vector3(o.Position())
	s.Camera.Target = primitives.Vector3(o.Target)
}

// localMouse returns the mouse relative to the stage and whether it is over it.
// Raylib keeps the last position once the cursor leaves the window, so a cursor
// off screen is never over the stage.
func (s *Scene) localMouse() (rl.Vector2, bool) {
	return s.local(rl.GetMousePosition(), rl.IsCursorOnScreen())
}

func (s *Scene) local(m rl.Vector2, onScreen bool) (rl.Vector2, bool) {
	in := onScreen && rl.CheckCollisionPointRec(m, s.bounds)
	return rl.NewVector2(m.X-s.bounds.X, m.Y-s.bounds.Y), in
}

// Ray is the picking ray under a stage-local point.
func (s *Scene) Ray(local rl.Vector2) geometry.Ray {
	r := rl.GetScreenToWorldRayEx(local, s.Camera, int32(s.bounds.Width), int32(s.bounds.Height))
	return geometry.Ray{
		Origin: vmath.V3(r.Position.X, r.Position.Y, r.Position.Z),
		Dir:    vmath.V3(r.Direction.X, r.Direction.Y, r.Direction.Z),
	}
}

// Update runs once per frame before Draw. blocked is true when something drawn
// above the stage (panel, console) owns the pointer this frame.
func (s *Scene) Update(blocked bool) {
	scene := s.viewer.Scene()
	local, in := s.localMouse()
	active := in && !blocked && !s.viewer.ShowGrid() && s.bounds.Width > 0

	if active {
		ray := s.Ray(local)
		scene.Hover(&ray)
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !scene.Click(ray) {
			s.dragging = true
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			s.viewer.Orbit().Zoom(wheel)
		}
	} else {
		scene.Hover(nil)
	}

	if s.dragging {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			d := rl.Vector2Subtract(local, s.lastMouse)
			s.viewer.Orbit().Drag(d.X, d.Y, s.bounds.Height)
		} else {
			s.dragging = false
		}
	}
	s.lastMouse = local
	s.pointerOver = active
	s.syncCamera()
	s.syncCursor()
}

// PointerOver reports whether the pointer was over the live 3D view last Update.
func (s *Scene) PointerOver() bool { return s.pointerOver }

// Dragging reports whether an orbit drag is in progress.
func (s *Scene) Dragging() bool { return s.dragging }

// syncCursor mirrors the viewer's pointer cue onto the OS cursor.
func (s *Scene) syncCursor() {
	c := s.viewer.Cursor()
	if c.Changes() == s.cursorSeen {
		return
	}
	s.cursorSeen = c.Changes()
	if c.Cue() == assembly.CuePointer {
		rl.SetMouseCursor(int32(rl.MouseCursorPointingHand))
		return
	}
	rl.SetMouseCursor(int32(rl.MouseCursorDefault))
}

// ensureTarget (re)allocates the offscreen target when the stage size changes.
// Runs from Draw so GPU work happens after the window exists.
func (s *Scene) ensureTarget() bool {
	w, h := int32(s.bounds.Width), int32(s.bounds.Height)
	if w <= 0 || h <= 0 {
		return false
	}
	if w == s.targetW && h == s.targetH {
		return true
	}
	if s.targetW > 0 {
		rl.UnloadRenderTexture(s.target)
	}
	s.target = rl.LoadRenderTexture(w, h)
	s.targetW, s.targetH = w, h
	return true
}

// Draw renders the stage into its target and blits it at Bounds. Nothing is drawn
// while the grid fallback replaces the 3D view.
func (s *Scene) Draw() {
	if s.viewer.ShowGrid() || !s.ensureTarget() {
		return
	}
	pos := s.Camera.Position
	s.meshes.SetView([3]float32{pos.X, pos.Y, pos.Z}, [3]float32{0.4, 1, 0.6})

	rl.BeginTextureMode(s.target)
	rl.ClearBackground(Background)
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawFloorGrid()
	}
	s.drawParts()
	s.drawConnectors()
	rl.EndMode3D()
	rl.EndTextureMode()

	src := rl.NewRectangle(0, 0, float32(s.targetW), -float32(s.targetH))
	rl.DrawTextureRec(s.target.Texture, src, rl.NewVector2(s.bounds.X, s.bounds.Y), rl.White)
}

func (s *Scene) drawParts() {
	scene := s.viewer.Scene()
	for _, r := range scene.Parts() {
		s.meshes.Draw(r.Shape(), scene.World(r), r.Color(), r.Emissive())
	}
}

// drawConnectors draws the assembled-to-exploded guide lines in group space.
func (s *Scene) drawConnectors() {
	scene := s.viewer.Scene()
	lines := scene.Connectors().Visible(s.viewer.State())
	if len(lines) == 0 {
		return
	}
	group := scene.Group()
	c := primitives.Color(assembly.ConnectorColor)
	for _, l := range lines {
		rl.DrawLine3D(primitives.Vector3(group.Apply(l.From)), primitives.Vector3(group.Apply(l.To)), c)
	}
}

// Unload frees the offscreen target.
func (s *Scene) Unload() {
	if s.targetW > 0 {
		rl.UnloadRenderTexture(s.target)
		s.targetW, s.targetH = 0, 0
	}
}

// drawFloorGrid draws a small grid on the floor plane with major/minor lines and
// the X and Z axes. Reuses start/end vectors to avoid per-frame allocations.
func drawFloorGrid() {
	minor := rl.NewColor(148, 163, 184, gridMinorAlpha)
	major := rl.NewColor(148, 163, 184, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), floorY, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), floorY, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), floorY, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), floorY, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), floorY, 0
	end.X, end.Y, end.Z = float32(gridExtent), floorY, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, floorY, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, floorY, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
