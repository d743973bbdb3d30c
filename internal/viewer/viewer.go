// Package viewer holds the interactive model viewer's state: which model is shown,
// whether it is assembled, what is selected and how the surface is laid out.
// Drawing lives elsewhere; everything here runs headless.
package viewer

import (
	"github.com/pkg/errors"

	"space-lab/internal/assembly"
	"space-lab/internal/catalog"
	"space-lab/internal/icons"
	"space-lab/internal/palette"
)

// DefaultBreakpoint is the container width, in pixels, below which the viewer
// counts as narrow.
const DefaultBreakpoint = 768

// Hint is shown at the bottom of the 3D view.
const Hint = "Click a part to inspect • Drag to rotate"

// Options configure a viewer.
type Options struct {
	Breakpoint float32
	Meshes     assembly.MeshSource
}

// Tile is one entry of the narrow-surface part grid.
type Tile struct {
	Part   *catalog.Part
	Name   string
	Glyph  icons.Glyph
	Swatch palette.RGBA
}

// Viewer is the viewer shell state. Initially it shows the catalog's first model,
// assembled, with nothing selected.
type Viewer struct {
	catalog    *catalog.Catalog
	model      *catalog.Model
	state      assembly.State
	selected   *catalog.Part
	narrow     bool
	width      float32
	breakpoint float32

	scene     *assembly.Scene
	inspector Inspector
	cursor    Cursor
	orbit     Orbit
}

// New mounts the viewer on c.
func New(c *catalog.Catalog, opts Options) *Viewer {
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	v := &Viewer{
		catalog:    c,
		breakpoint: opts.Breakpoint,
		inspector:  newInspector(),
		orbit:      DefaultOrbit(),
	}
	v.scene = assembly.NewScene(opts.Meshes, v.Pick, &v.cursor)
	v.model = c.First()
	v.scene.SetParts(v.model.Parts)
	return v
}

// Model is the active model.
func (v *Viewer) Model() *catalog.Model { return v.model }

// SetModel switches to the model with the given id. The selection is cleared
// and the scene is rebuilt from the new model's parts. The assembly state
// carries over.
func (v *Viewer) SetModel(id string) error {
	m, ok := v.catalog.Model(id)
	if !ok {
		return errors.Errorf("unknown model %q", id)
	}
	if m == v.model {
		return nil
	}
	v.model = m
	v.scene.SetParts(m.Parts)
	v.Dismiss()
	return nil
}

// State is the assembly state.
func (v *Viewer) State() assembly.State { return v.state }

// Toggle flips between assembled and exploded.
func (v *Viewer) Toggle() {
	v.state = v.state.Toggle()
}

// ToggleLabel names the state the toggle leads to.
func (v *Viewer) ToggleLabel() string {
	if v.state == assembly.Exploded {
		return "Assemble"
	}
	return "Dismantle"
}

// ToggleGlyph pairs with ToggleLabel.
func (v *Viewer) ToggleGlyph() icons.Glyph {
	if v.state == assembly.Exploded {
		return icons.Collapse
	}
	return icons.Expand
}

// Pick selects p and opens the inspector. Picking another part while one is
// selected replaces it.
func (v *Viewer) Pick(p *catalog.Part) {
	if p == nil {
		return
	}
	v.selected = p
	v.inspector.Show(p)
}

// PickID selects a part of the active model by id.
func (v *Viewer) PickID(id string) error {
	p, ok := v.model.Part(id)
	if !ok {
		return errors.Errorf("model %s has no part %q", v.model.ID, id)
	}
	v.Pick(p)
	return nil
}

// Dismiss clears the selection and closes the inspector.
func (v *Viewer) Dismiss() {
	v.selected = nil
	v.inspector.Hide()
}

// Selected is the selected part, nil for none.
func (v *Viewer) Selected() *catalog.Part { return v.selected }

// Resize re-evaluates narrowness for a container width in pixels.
func (v *Viewer) Resize(width float32) {
	v.width = width
	v.narrow = width < v.breakpoint
}

// Narrow reports whether the container is below the breakpoint.
func (v *Viewer) Narrow() bool { return v.narrow }

// ShowGrid reports whether the flat part grid replaces the 3D view.
func (v *Viewer) ShowGrid() bool {
	return v.narrow && v.state == assembly.Exploded
}

// Tiles lists the grid entries in part order.
func (v *Viewer) Tiles() []Tile {
	tiles := make([]Tile, len(v.model.Parts))
	for i := range v.model.Parts {
		p := &v.model.Parts[i]
		tiles[i] = Tile{Part: p, Name: p.Name, Glyph: icons.Resolve(p.IconName), Swatch: palette.Swatch(p.Color)}
	}
	return tiles
}

// TapTile opens the inspector on grid tile k.
func (v *Viewer) TapTile(k int) error {
	if k < 0 || k >= len(v.model.Parts) {
		return errors.Errorf("tile %d out of range", k)
	}
	v.Pick(&v.model.Parts[k])
	return nil
}

// Inspector is the part detail panel.
func (v *Viewer) Inspector() *Inspector { return &v.inspector }

// InspectorWidth is the panel width for the current container.
func (v *Viewer) InspectorWidth() float32 {
	if v.narrow {
		return v.width
	}
	return InspectorWidth
}

// EducationalNote is the canned note under the inspector's specs.
func (v *Viewer) EducationalNote() string {
	return "Understanding this component is crucial for passing the " + Topic(v.model.Type) + " module."
}

// Topic is the course module a model type belongs to.
func Topic(t catalog.ModelType) string {
	if t == catalog.TypeDrone {
		return "flight dynamics"
	}
	return "orbital mechanics"
}

// Scene is the animated part set.
func (v *Viewer) Scene() *assembly.Scene { return v.scene }

// Orbit is the camera.
func (v *Viewer) Orbit() *Orbit { return &v.orbit }

// AutoRotate reports whether the camera spins on its own.
func (v *Viewer) AutoRotate() bool { return v.state == assembly.Assembled }

// Cursor is the pointer cue the parts write to.
func (v *Viewer) Cursor() *Cursor { return &v.cursor }

// Advance steps every animation by dt seconds at clock time t. The 3D scene
// keeps animating under the grid so it is settled when the grid goes away.
func (v *Viewer) Advance(dt, t float32) {
	v.scene.Advance(dt, t, v.state)
	v.orbit.Advance(dt, v.AutoRotate())
	v.inspector.Advance(dt)
}
