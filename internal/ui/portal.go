package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/catalog"
	"space-lab/internal/icons"
)

// Tab is a top-level page of the portal.
type Tab int

const (
	TabCourse Tab = iota
	TabLab
)

// Click actions reported by Portal.Hit. Model and tile actions carry an argument
// after the colon.
const (
	ActionTabCourse = "tab:course"
	ActionTabLab    = "tab:lab"
	ActionMenu      = "menu"
	ActionToggle    = "toggle"
	ActionDismiss   = "dismiss"
	ActionModel     = "model:"
	ActionTile      = "tile:"
)

// NarrowWidth is the window width below which the navigation and page grids collapse.
const NarrowWidth = 768

// NavHeight is the height of the navigation bar across the top of the window.
const NavHeight = navHeight

const (
	navHeight    = 64
	footerHeight = 48
	pageMargin   = 16
	maxPageWidth = 1280
	sectionGap   = 40
	cardGap      = 24
	sidebarWidth = 256
	minStage     = 320
	scrollStep   = 48
)

// layer is a draw batch, optionally clipped.
type layer struct {
	nodes   []*Node
	clip    rl.Rectangle
	clipped bool
}

// Portal lays out and draws the whole window: navigation, the course page or the
// lab page, and the footer. The lab's 3D stage is drawn by the caller between the
// page body and the overlays, into the rectangle Stage returns.
type Portal struct {
	engine  *Engine
	content catalog.Portal
	courses []catalog.CourseModule

	Tab      Tab
	menuOpen bool
	scroll   float32
	maxLimit float32

	pool []*Node
	used int

	body, overlay, chrome layer
	blockers              []rl.Rectangle
	stage                 rl.Rectangle
}

// NewPortal builds a portal over the catalog's course content. It opens on the course tab.
func NewPortal(e *Engine, c *catalog.Catalog) *Portal {
	return &Portal{engine: e, content: c.Portal, courses: c.Courses}
}

// node hands out a reset node from the pool so layout does not allocate per frame.
func (p *Portal) node(typ, class, text string) *Node {
	if p.used == len(p.pool) {
		p.pool = append(p.pool, &Node{})
	}
	n := p.pool[p.used]
	p.used++
	*n = Node{Type: typ, Class: class, Text: text}
	return n
}

// SetTab switches page and resets scrolling.
func (p *Portal) SetTab(t Tab) {
	if p.Tab != t {
		p.scroll = 0
	}
	p.Tab = t
	p.menuOpen = false
}

// MenuOpen reports whether the narrow navigation menu is expanded.
func (p *Portal) MenuOpen() bool { return p.menuOpen }

// Scroll moves the page body by wheel steps (positive scrolls up).
func (p *Portal) Scroll(wheel float32) {
	p.scroll -= wheel * scrollStep
	p.clampScroll()
}

func (p *Portal) clampScroll() {
	if p.scroll > p.maxLimit {
		p.scroll = p.maxLimit
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
}

// Handle applies the portal's own actions (tabs, menu) and reports whether it did.
func (p *Portal) Handle(action string) bool {
	switch action {
	case ActionTabCourse:
		p.SetTab(TabCourse)
	case ActionTabLab:
		p.SetTab(TabLab)
	case ActionMenu:
		p.menuOpen = !p.menuOpen
	default:
		return false
	}
	return true
}

// Stage is the lab viewer's 3D rectangle from the last Layout; zero on the course tab.
func (p *Portal) Stage() rl.Rectangle { return p.stage }

// Layout rebuilds every node for a w×h window. lab is only read on the lab tab.
func (p *Portal) Layout(w, h float32, lab LabView) {
	p.used = 0
	p.body.nodes = p.body.nodes[:0]
	p.overlay.nodes = p.overlay.nodes[:0]
	p.chrome.nodes = p.chrome.nodes[:0]
	p.blockers = p.blockers[:0]
	p.stage = rl.Rectangle{}
	p.overlay.clipped = false

	narrow := w < NarrowWidth
	if !narrow {
		p.menuOpen = false
	}
	main := rl.NewRectangle(0, navHeight, w, h-navHeight-footerHeight)
	p.body.clip, p.body.clipped = main, true

	page := p.node("panel", "page", "").At(main)
	p.body.nodes = append(p.body.nodes, page)

	cw := min(w-2*pageMargin, maxPageWidth)
	cx := (w - cw) / 2
	top := main.Y + pageMargin - p.scroll

	var bottom float32
	if p.Tab == TabLab {
		bottom = p.layoutLab(cx, top, cw, main, narrow, lab)
	} else {
		bottom = p.layoutCourse(cx, top, cw, narrow)
	}
	p.maxLimit = max(0, bottom+p.scroll+pageMargin-main.Y-main.Height)
	p.clampScroll()

	p.layoutNav(w, narrow)
	footer := p.node("label", "footer", fmt.Sprintf("© %d %s", time.Now().Year(), p.content.Footer)).
		At(rl.NewRectangle(-1, h-footerHeight, w+2, footerHeight+1))
	p.chrome.nodes = append(p.chrome.nodes, footer)
	p.blockers = append(p.blockers, footer.Bounds)
}

func (p *Portal) layoutNav(w float32, narrow bool) {
	nav := p.node("panel", "nav", "").At(rl.NewRectangle(-1, -1, w+2, navHeight+1))
	logo := p.node("icon", "logo", "").WithGlyph(icons.Satellite).At(rl.NewRectangle(pageMargin, 14, 36, 36))
	title := p.node("label", "brand-title", p.content.Title).At(rl.NewRectangle(64, 12, 240, 22))
	sub := p.node("label", "brand-sub", p.content.Subtitle).At(rl.NewRectangle(64, 36, 240, 16))
	p.chrome.nodes = append(p.chrome.nodes, nav, logo, title, sub)
	p.blockers = append(p.blockers, nav.Bounds)

	if narrow {
		g := icons.Menu
		if p.menuOpen {
			g = icons.Close
		}
		btn := p.node("button", "menu-button", "").WithGlyph(g).OnClick(ActionMenu).
			At(rl.NewRectangle(w-pageMargin-40, 12, 40, 40))
		p.chrome.nodes = append(p.chrome.nodes, btn)
		if p.menuOpen {
			menu := p.node("panel", "menu", "").At(rl.NewRectangle(-1, navHeight-1, w+2, 2*44+16))
			course := p.node("button", "menu-item", "Course Material").OnClick(ActionTabCourse).
				At(rl.NewRectangle(pageMargin, navHeight+8, w-2*pageMargin, 44))
			lab := p.node("button", "menu-item", "Virtual Lab").OnClick(ActionTabLab).
				At(rl.NewRectangle(pageMargin, navHeight+52, w-2*pageMargin, 44))
			p.chrome.nodes = append(p.chrome.nodes, menu, course, lab)
			p.blockers = append(p.blockers, menu.Bounds)
		}
		return
	}

	x := w - pageMargin
	note := p.node("label", "nav-note", "ISL Internal")
	nw := p.engine.Measure(note, note.Text).X
	x -= nw
	note.At(rl.NewRectangle(x, 16, nw, 32))
	tabs := []struct {
		tab    Tab
		text   string
		action string
	}{{TabLab, "Virtual Lab", ActionTabLab}, {TabCourse, "Course Material", ActionTabCourse}}
	p.chrome.nodes = append(p.chrome.nodes, note)
	for _, t := range tabs {
		class := "tab"
		if p.Tab == t.tab {
			class = "tab-active"
		}
		n := p.node("button", class, t.text).OnClick(t.action)
		tw := p.engine.Measure(n, t.text).X + 24
		x -= cardGap + tw
		n.At(rl.NewRectangle(x, 16, tw, 32))
		p.chrome.nodes = append(p.chrome.nodes, n)
	}
}

// layoutCourse places the hero, feature cards and curriculum; returns the bottom edge.
func (p *Portal) layoutCourse(x, y, w float32, narrow bool) float32 {
	const heroPad = 40
	hero := p.node("panel", "hero", "")
	headline := p.node("label", "headline", p.content.Headline)
	intro := p.node("label", "intro", p.content.Intro)
	cta := p.node("button", "cta", "Open Virtual Lab").WithGlyph(icons.ArrowRight).OnClick(ActionTabLab)

	introW := min(w-2*heroPad, 672)
	introH := p.engine.TextHeight(intro, introW)
	headH := p.engine.TextHeight(headline, w-2*heroPad)
	ctaW := p.engine.Measure(cta, cta.Text).X + 2*24 + 26

	cy := y + heroPad
	headline.At(rl.NewRectangle(x+heroPad, cy, w-2*heroPad, headH))
	cy += headH + 16
	intro.At(rl.NewRectangle(x+(w-introW)/2, cy, introW, introH))
	cy += introH + 24
	cta.At(rl.NewRectangle(x+(w-ctaW)/2, cy, ctaW, 44))
	cy += 44 + heroPad
	hero.At(rl.NewRectangle(x, y, w, cy-y))
	p.body.nodes = append(p.body.nodes, hero, headline, intro, cta)
	y = cy + sectionGap

	y = p.layoutFeatures(x, y, w, narrow) + sectionGap

	title := p.node("label", "section-title", "Course Curriculum").WithGlyph(icons.BookOpen).
		At(rl.NewRectangle(x, y, w, 36))
	p.body.nodes = append(p.body.nodes, title)
	y += 36 + cardGap

	cols := 2
	if narrow {
		cols = 1
	}
	colW := (w - float32(cols-1)*cardGap) / float32(cols)
	for i := 0; i < len(p.courses); i += cols {
		rowH := float32(0)
		for k := 0; k < cols && i+k < len(p.courses); k++ {
			rowH = max(rowH, p.moduleCard(p.courses[i+k], x+float32(k)*(colW+cardGap), y, colW))
		}
		y += rowH + cardGap
	}
	return y - cardGap
}

func (p *Portal) layoutFeatures(x, y, w float32, narrow bool) float32 {
	const pad = 24
	feats := p.content.Features
	if len(feats) == 0 {
		return y - sectionGap
	}
	cols := len(feats)
	if narrow {
		cols = 1
	}
	colW := (w - float32(cols-1)*cardGap) / float32(cols)
	for i := 0; i < len(feats); i += cols {
		// Cards in a row share the tallest card's height.
		rowH := float32(0)
		texts := make([]*Node, 0, cols)
		for k := 0; k < cols && i+k < len(feats); k++ {
			t := p.node("label", "feature-text", feats[i+k].Text)
			texts = append(texts, t)
			rowH = max(rowH, p.engine.TextHeight(t, colW-2*pad))
		}
		cardH := pad + 28 + 12 + 22 + 4 + rowH + pad
		for k, t := range texts {
			f := feats[i+k]
			cx := x + float32(k)*(colW+cardGap)
			card := p.node("panel", "card", "").At(rl.NewRectangle(cx, y, colW, cardH))
			icon := p.node("icon", "feature-icon", "").WithGlyph(icons.Resolve(f.Icon)).
				At(rl.NewRectangle(cx+pad, y+pad, 28, 28))
			title := p.node("label", "feature-title", f.Title).At(rl.NewRectangle(cx+pad, y+pad+40, colW-2*pad, 22))
			t.At(rl.NewRectangle(cx+pad, y+pad+66, colW-2*pad, rowH))
			p.body.nodes = append(p.body.nodes, card, icon, title, t)
		}
		y += cardH + cardGap
	}
	return y - cardGap
}

// moduleCard places one curriculum card and returns its height.
func (p *Portal) moduleCard(m catalog.CourseModule, x, y, w float32) float32 {
	const pad = 24
	const topicH = 24
	card := p.node("panel", "card", "")
	title := p.node("label", "module-title", m.Title)
	dur := p.node("label", "module-duration", m.Duration)
	durW := p.engine.Measure(dur, m.Duration).X
	titleW := w - 2*pad - durW - 12
	titleH := p.engine.TextHeight(title, titleW)
	title.At(rl.NewRectangle(x+pad, y+pad, titleW, titleH))
	dur.At(rl.NewRectangle(x+w-pad-durW, y+pad+2, durW, 16))
	p.body.nodes = append(p.body.nodes, card, title, dur)

	ty := y + pad + titleH + 12
	for _, topic := range m.Topics {
		bullet := p.node("panel", "bullet", "").At(rl.NewRectangle(x+pad, ty+7, 6, 6))
		label := p.node("label", "topic", topic).At(rl.NewRectangle(x+pad+14, ty, w-2*pad-14, topicH))
		p.body.nodes = append(p.body.nodes, bullet, label)
		ty += topicH
	}
	h := ty - y + pad
	card.At(rl.NewRectangle(x, y, w, h))
	return h
}

// Draw draws the page body, then drawStage (the 3D view, lab tab only), then the
// stage overlays and the navigation chrome on top.
func (p *Portal) Draw(drawStage func()) {
	p.engine.DrawClipped(p.body.nodes, p.body.clip)
	if p.Tab == TabLab && drawStage != nil {
		rl.BeginScissorMode(int32(p.body.clip.X), int32(p.body.clip.Y), int32(p.body.clip.Width), int32(p.body.clip.Height))
		drawStage()
		rl.EndScissorMode()
	}
	if p.overlay.clipped {
		clip := rl.GetCollisionRec(p.overlay.clip, p.body.clip)
		p.engine.DrawClipped(p.overlay.nodes, clip)
	}
	p.engine.Draw(p.chrome.nodes)
}

// Hit returns the action under pt: chrome first, then stage overlays, then the page body.
func (p *Portal) Hit(pt rl.Vector2) string {
	if n := Hit(p.chrome.nodes, pt); n != nil {
		return n.Action
	}
	if p.overlay.clipped && rl.CheckCollisionPointRec(pt, rl.GetCollisionRec(p.overlay.clip, p.body.clip)) {
		if n := Hit(p.overlay.nodes, pt); n != nil {
			return n.Action
		}
	}
	if rl.CheckCollisionPointRec(pt, p.body.clip) {
		if n := Hit(p.body.nodes, pt); n != nil {
			return n.Action
		}
	}
	return ""
}

// Blocks reports whether something drawn over the stage owns pt.
func (p *Portal) Blocks(pt rl.Vector2) bool {
	if !rl.CheckCollisionPointRec(pt, p.body.clip) {
		return true
	}
	for _, r := range p.blockers {
		if rl.CheckCollisionPointRec(pt, r) {
			return true
		}
	}
	return false
}

// ParseArg splits "model:cubesat" style actions. ok is false when action lacks prefix.
func ParseArg(action, prefix string) (string, bool) {
	if !strings.HasPrefix(action, prefix) {
		return "", false
	}
	return action[len(prefix):], true
}

// ParseIndex is ParseArg for numeric arguments.
func ParseIndex(action, prefix string) (int, bool) {
	arg, ok := ParseArg(action, prefix)
	if !ok {
		return 0, false
	}
	k, err := strconv.Atoi(arg)
	if err != nil {
		return 0, false
	}
	return k, true
}
