package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/icons"
)

// ModelEntry is one sidebar row.
type ModelEntry struct {
	ID     string
	Name   string
	Glyph  icons.Glyph
	Active bool
}

// TileView is one part tile of the flat grid.
type TileView struct {
	Name   string
	Glyph  icons.Glyph
	Swatch rl.Color
}

// SpecRow is one label/value line of the inspector's specification table.
type SpecRow struct {
	Label, Value string
}

// InspectorView is the part panel's content and slide position. Offset is 0 when
// fully shown and 1 when fully off the trailing edge.
type InspectorView struct {
	Visible     bool
	Name        string
	Description string
	Glyph       icons.Glyph
	Swatch      rl.Color
	Rows        []SpecRow
	Note        string
	Width       float32
	Offset      float32
}

// LabView is everything the lab page shows for one frame.
type LabView struct {
	Models      []ModelEntry
	Title       string
	Description string
	ToggleLabel string
	ToggleGlyph icons.Glyph
	ShowGrid    bool
	Tiles       []TileView
	Hint        string
	Inspector   InspectorView
}

// layoutLab places the sidebar, model header and viewer; returns the bottom edge.
func (p *Portal) layoutLab(x, y, w float32, main rl.Rectangle, narrow bool, lab LabView) float32 {
	const itemH = 40
	const headH = 52

	sideW := float32(sidebarWidth)
	if narrow {
		sideW = w
	}
	sideH := headH + 8 + float32(len(lab.Models))*(itemH+4) + 4
	side := p.node("panel", "sidebar", "").At(rl.NewRectangle(x, y, sideW, sideH))
	head := p.node("label", "sidebar-head", "Lab Models").At(rl.NewRectangle(x, y, sideW, headH))
	p.body.nodes = append(p.body.nodes, side, head)
	iy := y + headH + 8
	for _, m := range lab.Models {
		class := "model-item"
		if m.Active {
			class = "model-item-active"
		}
		item := p.node("button", class, m.Name).WithGlyph(m.Glyph).OnClick(ActionModel + m.ID).
			At(rl.NewRectangle(x+8, iy, sideW-16, itemH))
		p.body.nodes = append(p.body.nodes, item)
		iy += itemH + 4
	}

	ax, ay, aw := x+sideW+cardGap, y, w-sideW-cardGap
	if narrow {
		ax, ay, aw = x, y+sideH+cardGap, w
	}

	const pad = 16
	desc := p.node("label", "model-desc", lab.Description)
	descH := p.engine.TextHeight(desc, aw-2*pad)
	headerH := pad + 28 + descH + pad
	header := p.node("panel", "card", "").At(rl.NewRectangle(ax, ay, aw, headerH))
	title := p.node("label", "model-title", lab.Title).At(rl.NewRectangle(ax+pad, ay+pad, aw-2*pad, 28))
	desc.At(rl.NewRectangle(ax+pad, ay+pad+28, aw-2*pad, descH))
	p.body.nodes = append(p.body.nodes, header, title, desc)

	vy := ay + headerH + pad
	vh := max(minStage, main.Y+main.Height-pageMargin-vy)
	if narrow {
		vh = max(minStage, main.Height-2*pageMargin)
	}
	frame := p.node("panel", "viewer", "").At(rl.NewRectangle(ax, vy, aw, vh))
	p.body.nodes = append(p.body.nodes, frame)
	p.stage = rl.NewRectangle(ax+1, vy+1, aw-2, vh-2)
	p.overlay.clip, p.overlay.clipped = p.stage, true

	if lab.ShowGrid {
		p.layoutGrid(lab.Tiles)
	}
	p.layoutToolbar(lab)
	p.layoutInspector(lab.Inspector)
	return vy + vh
}

func (p *Portal) layoutToolbar(lab LabView) {
	btn := p.node("button", "toggle", lab.ToggleLabel).WithGlyph(lab.ToggleGlyph).OnClick(ActionToggle)
	bw := p.engine.Measure(btn, lab.ToggleLabel).X + 2*16 + 24
	btn.At(rl.NewRectangle(p.stage.X+16, p.stage.Y+16, bw, 40))
	p.overlay.nodes = append(p.overlay.nodes, btn)
	p.blockers = append(p.blockers, btn.Bounds)

	if lab.ShowGrid || lab.Hint == "" {
		return
	}
	hint := p.node("label", "hint", lab.Hint)
	hw := p.engine.Measure(hint, lab.Hint).X + 24
	hint.At(rl.NewRectangle(p.stage.X+(p.stage.Width-hw)/2, p.stage.Y+p.stage.Height-16-24, hw, 24))
	p.overlay.nodes = append(p.overlay.nodes, hint)
}

// layoutGrid places the two-column part tiles that replace the 3D view.
func (p *Portal) layoutGrid(tiles []TileView) {
	const pad = 16
	const top = 72
	const tileH = 112
	s := p.stage
	bg := p.node("panel", "grid", "").At(s)
	p.overlay.nodes = append(p.overlay.nodes, bg)
	p.blockers = append(p.blockers, s)

	colW := (s.Width - 2*pad - pad) / 2
	for k, t := range tiles {
		tx := s.X + pad + float32(k%2)*(colW+pad)
		ty := s.Y + top + float32(k/2)*(tileH+pad)
		card := p.node("button", "tile", "").OnClick(ActionTile + strconv.Itoa(k)).
			At(rl.NewRectangle(tx, ty, colW, tileH))
		sw := p.node("icon", "tile-swatch", "").WithGlyph(t.Glyph).WithFill(t.Swatch).
			At(rl.NewRectangle(tx+(colW-48)/2, ty+16, 48, 48))
		name := p.node("label", "tile-name", t.Name).At(rl.NewRectangle(tx+8, ty+72, colW-16, 32))
		p.overlay.nodes = append(p.overlay.nodes, card, sw, name)
	}
}
