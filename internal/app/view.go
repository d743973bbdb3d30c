package app

import (
	"space-lab/internal/catalog"
	"space-lab/internal/icons"
	"space-lab/internal/palette"
	"space-lab/internal/primitives"
	"space-lab/internal/ui"
	"space-lab/internal/viewer"
)

// ModelGlyph is the sidebar glyph for a model type.
func ModelGlyph(t catalog.ModelType) icons.Glyph {
	switch t {
	case catalog.TypeDrone:
		return icons.Plane
	case catalog.TypeCubeSat:
		return icons.Satellite
	}
	return icons.Cpu
}

// labView snapshots the viewer for this frame's layout.
func (a *App) labView() ui.LabView {
	v := a.viewer
	m := v.Model()

	a.models = a.models[:0]
	for i := range a.catalog.Models {
		mm := &a.catalog.Models[i]
		a.models = append(a.models, ui.ModelEntry{ID: mm.ID, Name: mm.Name, Glyph: ModelGlyph(mm.Type), Active: mm == m})
	}

	lab := ui.LabView{
		Models:      a.models,
		Title:       m.Name,
		Description: m.Description,
		ToggleLabel: v.ToggleLabel(),
		ToggleGlyph: v.ToggleGlyph(),
		ShowGrid:    v.ShowGrid(),
		Hint:        viewer.Hint,
	}

	a.tiles = a.tiles[:0]
	if lab.ShowGrid {
		for _, t := range v.Tiles() {
			a.tiles = append(a.tiles, ui.TileView{Name: t.Name, Glyph: t.Glyph, Swatch: primitives.Color(t.Swatch)})
		}
		lab.Tiles = a.tiles
	}

	in := v.Inspector()
	if p := in.Part(); p != nil {
		a.rows = a.rows[:0]
		for _, s := range in.Rows() {
			a.rows = append(a.rows, ui.SpecRow{Label: s.Label, Value: s.Value})
		}
		lab.Inspector = ui.InspectorView{
			Visible:     true,
			Name:        p.Name,
			Description: p.Description,
			Glyph:       icons.Resolve(p.IconName),
			Swatch:      primitives.Color(palette.Swatch(p.Color)),
			Rows:        a.rows,
			Note:        v.EducationalNote(),
			Width:       v.InspectorWidth(),
			Offset:      in.Offset(),
		}
	}
	return lab
}

// dispatch applies a clicked UI action.
func (a *App) dispatch(action string) {
	a.log.WithField("action", action).Debug("ui action")
	if a.portal.Handle(action) {
		return
	}
	switch action {
	case ui.ActionToggle:
		a.viewer.Toggle()
		return
	case ui.ActionDismiss:
		a.viewer.Dismiss()
		return
	}
	if id, ok := ui.ParseArg(action, ui.ActionModel); ok {
		if err := a.viewer.SetModel(id); err != nil {
			a.log.WithError(err).Warn("switch model")
		}
		return
	}
	if k, ok := ui.ParseIndex(action, ui.ActionTile); ok {
		if err := a.viewer.TapTile(k); err != nil {
			a.log.WithError(err).Warn("grid tile")
		}
		return
	}
	a.log.WithField("action", action).Warn("unhandled ui action")
}
