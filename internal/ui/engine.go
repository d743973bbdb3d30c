package ui

import (
	_ "embed"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const (
	defaultFontSize = 16
	fontAtlasSize   = 48
	glyphGap        = 8
	lineSpacing     = 1.35
)

//go:embed lab.css
var defaultCSS string

// Engine holds the current stylesheet and draws node lists with raylib.
// Draw order is slice order (first node drawn first, then on top the next).
// Resolved styles are cached per class/id/hover and only recomputed when the sheet changes.
// If a font is loaded (LoadFont), text is drawn with it; otherwise raylib's default font is used.
type Engine struct {
	sheet  *Stylesheet
	styles map[string]ComputedStyle
	font   rl.Font
	mono   rl.Font
}

// New creates an engine with the built-in lab stylesheet.
func New() *Engine {
	e := &Engine{styles: make(map[string]ComputedStyle)}
	sheet, err := ParseCSS(defaultCSS)
	if err == nil {
		e.sheet = sheet
	}
	return e
}

// LoadCSS loads and parses a CSS file from path and appends its rules to the
// current stylesheet, so a file only needs to name what it overrides.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read stylesheet")
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}
	if e.sheet != nil {
		sheet.Rules = append(append([]Rule{}, e.sheet.Rules...), sheet.Rules...)
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.styles = make(map[string]ComputedStyle)
}

// HasStylesheet returns whether any rules are loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f, err := loadFont(path)
	if err != nil {
		return err
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// LoadMonoFont loads the font used for monospace styled text (spec values).
func (e *Engine) LoadMonoFont(path string) error {
	f, err := loadFont(path)
	if err != nil {
		return err
	}
	if e.mono.Texture.ID != 0 {
		rl.UnloadFont(e.mono)
	}
	e.mono = f
	return nil
}

// atlasRunes is printable ASCII and Latin-1 plus the bullet used in hints.
var atlasRunes = func() []rune {
	var rs []rune
	for r := rune(32); r < 127; r++ {
		rs = append(rs, r)
	}
	for r := rune(160); r < 256; r++ {
		rs = append(rs, r)
	}
	return append(rs, '•', '–')
}()

func loadFont(path string) (rl.Font, error) {
	f := rl.LoadFontEx(path, fontAtlasSize, atlasRunes)
	if f.Texture.ID == 0 {
		return f, errors.Wrapf(os.ErrNotExist, "load font %s", path)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f, nil
}

// Font is the UI font (zero texture ID = raylib default).
func (e *Engine) Font() rl.Font { return e.font }

// Unload frees loaded fonts.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
	if e.mono.Texture.ID != 0 {
		rl.UnloadFont(e.mono)
		e.mono = rl.Font{}
	}
}

// matches reports whether sel applies to n. Hover selectors only apply when hover is true.
func matches(sel string, n *Node, hover bool) bool {
	base, pseudo, _ := strings.Cut(sel, ":")
	if pseudo != "" && (pseudo != "hover" || !hover) {
		return false
	}
	switch base[0] {
	case '.':
		return n.Class != "" && n.Class == base[1:]
	case '#':
		return n.ID != "" && n.ID == base[1:]
	}
	return false
}

// Style resolves the computed style of n (class and id matched; last wins).
func (e *Engine) Style(n *Node, hover bool) ComputedStyle {
	key := n.Class + "#" + n.ID
	if hover {
		key += ":hover"
	}
	if st, ok := e.styles[key]; ok {
		return st
	}
	merged := make(map[string]string)
	if e.sheet != nil {
		for _, rule := range e.sheet.Rules {
			if matches(rule.Selector, n, hover) {
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	st := ResolveProps(merged)
	e.styles[key] = st
	return st
}

func (e *Engine) fontFor(st ComputedStyle) rl.Font {
	if st.Mono && e.mono.Texture.ID != 0 {
		return e.mono
	}
	if e.font.Texture.ID != 0 {
		return e.font
	}
	return rl.GetFontDefault()
}

func spacing(size float32) float32 {
	if size < 10 {
		return 1
	}
	return size / 10
}

// Measure returns the size of text in the style of n.
func (e *Engine) Measure(n *Node, text string) rl.Vector2 {
	st := e.Style(n, false)
	size := float32(st.FontSize)
	return rl.MeasureTextEx(e.fontFor(st), text, size, spacing(size))
}

// Wrap breaks text into lines no wider than width in the style of n.
func (e *Engine) Wrap(n *Node, text string, width float32) []string {
	st := e.Style(n, false)
	font := e.fontFor(st)
	size := float32(st.FontSize)
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			try := word
			if line != "" {
				try = line + " " + word
			}
			if line != "" && rl.MeasureTextEx(font, try, size, spacing(size)).X > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = try
		}
		lines = append(lines, line)
	}
	return lines
}

// LineHeight is the distance between wrapped lines in the style of n.
func (e *Engine) LineHeight(n *Node) float32 {
	return float32(e.Style(n, false).FontSize) * lineSpacing
}

// TextHeight is the height n needs to show its text wrapped to width, padding included.
func (e *Engine) TextHeight(n *Node, width float32) float32 {
	st := e.Style(n, false)
	pad := float32(st.Padding)
	inner := width - 2*pad
	if n.HasGlyph {
		inner -= float32(st.FontSize) + glyphGap
	}
	lines := 1
	if st.Wrap {
		lines = len(e.Wrap(n, n.Text, inner))
	}
	return float32(lines)*e.LineHeight(n) + 2*pad
}

// Hit returns the topmost clickable node under p, or nil.
func Hit(nodes []*Node, p rl.Vector2) *Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		if n := nodes[i]; n.Action != "" && n.Contains(p) {
			return n
		}
	}
	return nil
}

// Draw draws nodes in order: background, border, glyph, then text.
func (e *Engine) Draw(nodes []*Node) {
	mouse := rl.GetMousePosition()
	for _, n := range nodes {
		hover := n.Action != "" && n.Contains(mouse)
		e.drawNode(n, e.Style(n, hover))
	}
}

// DrawClipped draws nodes with everything outside clip cut away.
func (e *Engine) DrawClipped(nodes []*Node, clip rl.Rectangle) {
	rl.BeginScissorMode(int32(clip.X), int32(clip.Y), int32(clip.Width), int32(clip.Height))
	e.Draw(nodes)
	rl.EndScissorMode()
}

func (e *Engine) drawNode(n *Node, st ComputedStyle) {
	b := n.Bounds
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	roundness := float32(0)
	if st.Radius > 0 {
		roundness = 2 * st.Radius / min(b.Width, b.Height)
		if roundness > 1 {
			roundness = 1
		}
	}
	bg := st.Background
	if n.Fill.A > 0 {
		bg = n.Fill
	}
	if bg.A > 0 {
		if roundness > 0 {
			rl.DrawRectangleRounded(b, roundness, 8, bg)
		} else {
			rl.DrawRectangleRec(b, bg)
		}
	}
	if st.HasBorder {
		if roundness > 0 {
			rl.DrawRectangleRoundedLinesEx(b, roundness, 8, 1, st.Border)
		} else {
			rl.DrawRectangleLinesEx(b, 1, st.Border)
		}
	}

	pad := float32(st.Padding)
	size := float32(st.FontSize)
	if n.Text == "" {
		if n.HasGlyph {
			gs := min(b.Width, b.Height) - 2*pad
			DrawGlyph(n.Glyph, rl.NewVector2(b.X+b.Width/2, b.Y+b.Height/2), gs, st.Color)
		}
		return
	}

	font := e.fontFor(st)
	sp := spacing(size)
	lineH := size * lineSpacing
	x := b.X + pad
	inner := b.Width - 2*pad
	gs := float32(0)
	if n.HasGlyph {
		gs = size + 2
		inner -= gs + glyphGap
	}

	lines := []string{n.Text}
	if st.Wrap {
		lines = e.Wrap(n, n.Text, inner)
	}
	y := b.Y + pad
	if st.Middle {
		y = b.Y + (b.Height-float32(len(lines))*lineH)/2 + (lineH-size)/2
	}

	for i, line := range lines {
		w := rl.MeasureTextEx(font, line, size, sp).X
		lx := x
		switch st.Align {
		case AlignCenter:
			lx = b.X + (b.Width-w-gs-boolf(n.HasGlyph)*glyphGap)/2
		case AlignRight:
			lx = b.X + b.Width - pad - w - gs - boolf(n.HasGlyph)*glyphGap
		}
		if i == 0 && n.HasGlyph {
			DrawGlyph(n.Glyph, rl.NewVector2(lx+gs/2, y+size/2), gs, st.Color)
		}
		if n.HasGlyph {
			lx += gs + glyphGap
		}
		rl.DrawTextEx(font, line, rl.NewVector2(lx, y+float32(i)*lineH), size, sp, st.Color)
	}
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
