package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/icons"
)

// layoutInspector places the part panel against the stage's trailing edge, pushed
// out by the slide offset. It draws nothing when the view is not visible.
func (p *Portal) layoutInspector(v InspectorView) {
	if !v.Visible || v.Width <= 0 {
		return
	}
	const pad = 24
	s := p.stage
	w := min(v.Width, s.Width)
	x := s.X + s.Width - w + v.Offset*w
	panel := p.node("panel", "inspector", "").At(rl.NewRectangle(x, s.Y, w, s.Height))
	closeBtn := p.node("button", "inspector-close", "").WithGlyph(icons.Close).OnClick(ActionDismiss).
		At(rl.NewRectangle(x+w-16-32, s.Y+16, 32, 32))
	swatch := p.node("icon", "inspector-swatch", "").WithGlyph(v.Glyph).WithFill(v.Swatch).
		At(rl.NewRectangle(x+pad, s.Y+pad, 64, 64))
	p.overlay.nodes = append(p.overlay.nodes, panel, swatch)
	p.blockers = append(p.blockers, panel.Bounds)

	inner := w - 2*pad
	y := s.Y + pad + 64 + 16
	name := p.node("label", "inspector-name", v.Name)
	nameH := p.engine.TextHeight(name, inner)
	name.At(rl.NewRectangle(x+pad, y, inner, nameH))
	y += nameH + 8
	desc := p.node("label", "inspector-desc", v.Description)
	descH := p.engine.TextHeight(desc, inner)
	desc.At(rl.NewRectangle(x+pad, y, inner, descH))
	y += descH + pad
	p.overlay.nodes = append(p.overlay.nodes, name, desc)

	if len(v.Rows) > 0 {
		y = p.specTable(v.Rows, x+pad, y, inner) + pad
	}

	const notePad = 16
	text := p.node("label", "note-text", v.Note)
	textH := p.engine.TextHeight(text, inner-2*notePad)
	note := p.node("panel", "note", "").At(rl.NewRectangle(x+pad, y, inner, notePad+20+8+textH+notePad))
	head := p.node("label", "note-head", "Educational Note").WithGlyph(icons.Info).
		At(rl.NewRectangle(x+pad+notePad, y+notePad, inner-2*notePad, 20))
	text.At(rl.NewRectangle(x+pad+notePad, y+notePad+28, inner-2*notePad, textH))
	p.overlay.nodes = append(p.overlay.nodes, note, head, text)

	// Close button last so it stays on top.
	p.overlay.nodes = append(p.overlay.nodes, closeBtn)
}

// specTable places the technical specifications box; returns its bottom edge.
func (p *Portal) specTable(rows []SpecRow, x, y, w float32) float32 {
	const pad = 16
	const rowH = 22
	const rowGap = 12
	box := p.node("panel", "specs", "")
	head := p.node("label", "specs-head", "TECHNICAL SPECIFICATIONS").WithGlyph(icons.Settings).
		At(rl.NewRectangle(x+1, y+1, w-2, 36))
	p.overlay.nodes = append(p.overlay.nodes, box, head)

	ry := y + 36 + pad
	for i, r := range rows {
		label := p.node("label", "spec-label", r.Label).At(rl.NewRectangle(x+pad, ry, w/2-pad, rowH))
		value := p.node("label", "spec-value", r.Value).At(rl.NewRectangle(x+w/2, ry, w/2-pad, rowH))
		p.overlay.nodes = append(p.overlay.nodes, label, value)
		ry += rowH
		if i < len(rows)-1 {
			sep := p.node("panel", "spec-sep", "").At(rl.NewRectangle(x+pad, ry+rowGap/2-1, w-2*pad, 1))
			p.overlay.nodes = append(p.overlay.nodes, sep)
			ry += rowGap
		}
	}
	bottom := ry + pad
	box.At(rl.NewRectangle(x, y, w, bottom-y))
	return bottom
}
