// Package icons maps the catalog's symbolic icon names to the glyphs the UI can draw.
package icons

// Glyph identifies a drawable icon.
type Glyph int

const (
	Box Glyph = iota // fallback
	Cpu
	Battery
	Fan
	Satellite
	Camera
	Sun
	Wifi
	Umbrella
	Cylinder
	Activity
	Map
	Wind
	Plane
	BookOpen
	Settings
	Info
	Close
	Expand
	Collapse
	ArrowRight
	Menu
)

var byName = map[string]Glyph{
	"Box":        Box,
	"Cpu":        Cpu,
	"Battery":    Battery,
	"Fan":        Fan,
	"Satellite":  Satellite,
	"Camera":     Camera,
	"Sun":        Sun,
	"Wifi":       Wifi,
	"Umbrella":   Umbrella,
	"Cylinder":   Cylinder,
	"Activity":   Activity,
	"Map":        Map,
	"Wind":       Wind,
	"Plane":      Plane,
	"BookOpen":   BookOpen,
	"Settings":   Settings,
	"Info":       Info,
	"X":          Close,
	"Maximize2":  Expand,
	"Minimize2":  Collapse,
	"ArrowRight": ArrowRight,
	"Menu":       Menu,
}

// Resolve returns the glyph for name. It never fails: unknown names give Box.
func Resolve(name string) Glyph {
	if g, ok := byName[name]; ok {
		return g
	}
	return Box
}

// Known reports whether name maps to a glyph of its own.
func Known(name string) bool {
	_, ok := byName[name]
	return ok
}

func (g Glyph) String() string {
	for name, v := range byName {
		if v == g {
			return name
		}
	}
	return "Box"
}
