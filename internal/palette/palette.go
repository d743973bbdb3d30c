// Package palette resolves the catalog's color strings: hex material colors for 3D
// parts and utility-class swatch tokens ("bg-blue-500") for the 2D UI.
package palette

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit color, convertible to the renderer's color type.
type RGBA struct {
	R, G, B, A uint8
}

// Neutral is used for anything that does not resolve.
var Neutral = RGBA{100, 116, 139, 255} // slate-500

// swatches maps "<hue>-<shade>" to hex for the tokens the catalog uses.
var swatches = map[string]string{
	"slate-100":  "#f1f5f9",
	"slate-200":  "#e2e8f0",
	"slate-400":  "#94a3b8",
	"slate-500":  "#64748b",
	"slate-600":  "#475569",
	"slate-700":  "#334155",
	"slate-800":  "#1e293b",
	"slate-900":  "#0f172a",
	"gray-400":   "#9ca3af",
	"gray-500":   "#6b7280",
	"blue-50":    "#eff6ff",
	"blue-100":   "#dbeafe",
	"blue-500":   "#3b82f6",
	"blue-600":   "#2563eb",
	"blue-700":   "#1d4ed8",
	"blue-800":   "#1e40af",
	"green-500":  "#22c55e",
	"green-600":  "#16a34a",
	"red-500":    "#ef4444",
	"yellow-500": "#eab308",
	"purple-500": "#a855f7",
	"orange-400": "#fb923c",
	"orange-500": "#f97316",
}

// Hex parses "#rgb" or "#rrggbb". ok is false for anything else.
func Hex(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return RGBA{}, false
	}
	if len(s) == 4 {
		s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	if len(s) != 7 {
		return RGBA{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, false
	}
	return fromColorful(c), true
}

// Swatch resolves a UI token such as "bg-blue-500", "blue-500" or a hex string.
// Unknown tokens resolve to Neutral.
func Swatch(token string) RGBA {
	if c, ok := Hex(token); ok {
		return c
	}
	t := strings.TrimPrefix(strings.TrimSpace(token), "bg-")
	if hex, ok := swatches[t]; ok {
		c, _ := Hex(hex)
		return c
	}
	return Neutral
}

// Material resolves a 3D material color; hex first, then swatch tokens.
func Material(s string) RGBA {
	return Swatch(s)
}

// Emissive brightens c as if it glowed with its own color at the given
// intensity (0 = unchanged). Alpha is kept.
func Emissive(c RGBA, intensity float32) RGBA {
	if intensity <= 0 {
		return c
	}
	base := toColorful(c)
	lit := colorful.Color{
		R: clamp(base.R * (1 + float64(intensity))),
		G: clamp(base.G * (1 + float64(intensity))),
		B: clamp(base.B * (1 + float64(intensity))),
	}
	out := fromColorful(lit)
	out.A = c.A
	return out
}

// Mix blends a toward b by t in Lab space.
func Mix(a, b RGBA, t float64) RGBA {
	out := fromColorful(toColorful(a).BlendLab(toColorful(b), t).Clamped())
	out.A = a.A
	return out
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c RGBA, a uint8) RGBA {
	c.A = a
	return c
}

func toColorful(c RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGBA {
	r, g, b := c.RGB255()
	return RGBA{r, g, b, 255}
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
