package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/palette"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel", "#menu" or ".tab:hover"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Align is horizontal text placement inside a node.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ComputedStyle holds resolved values used for drawing (raylib types where applicable).
// Padding is the offset (in pixels) from the node's left/top when drawing text.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Radius     float32 // corner radius in pixels
	FontSize   int32
	Padding    int32
	Align      Align
	Middle     bool // center text vertically
	Wrap       bool
	Mono       bool
}

// DefaultComputedStyle returns a minimal style (transparent background, dark text, no border).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.NewColor(15, 23, 42, 255),
		Border:     rl.Black,
		FontSize:   defaultFontSize,
		Padding:    4,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA into rl.Color. Returns rl.Black and false on parse error.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return rl.Black, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, ok := palette.Hex(s)
	if !ok {
		return rl.Black, false
	}
	return rl.NewColor(c.R, c.G, c.B, alpha), true
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "border-radius":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Radius = float32(n)
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "text-align":
			switch v {
			case "center":
				out.Align = AlignCenter
			case "right":
				out.Align = AlignRight
			}
		case "vertical-align":
			out.Middle = v == "middle"
		case "white-space":
			out.Wrap = v == "normal"
		case "font-family":
			out.Mono = v == "monospace"
		}
	}
	return out
}
