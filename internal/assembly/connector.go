package assembly

import (
	"space-lab/internal/catalog"
	"space-lab/internal/palette"
	"space-lab/internal/vmath"
)

// ConnectorColor is the thin guide line color (slate-400 at 30%).
var ConnectorColor = palette.RGBA{R: 148, G: 163, B: 184, A: 77}

// Connector links a part's assembled slot to its exploded slot.
type Connector struct {
	PartID string
	From   vmath.Vec3
	To     vmath.Vec3
}

// ConnectorSet owns the connectors of one part set. The segments are fixed
// points, computed once when the set is built.
type ConnectorSet struct {
	items    []Connector
	released bool
}

// BuildConnectors derives one connector per part whose catalog geometry moves
// when exploded. Parts drawn with the fallback box get none.
func BuildConnectors(parts []catalog.Part) *ConnectorSet {
	set := &ConnectorSet{}
	for i := range parts {
		g := parts[i].Geometry
		if g == nil || !g.HasExploded() {
			continue
		}
		set.items = append(set.items, Connector{PartID: parts[i].ID, From: g.Position, To: *g.Exploded})
	}
	return set
}

// Visible returns the connectors to draw in state s: all of them while exploded,
// none otherwise.
func (c *ConnectorSet) Visible(s State) []Connector {
	if c == nil || c.released || s != Exploded {
		return nil
	}
	return c.items
}

// All returns every connector regardless of state.
func (c *ConnectorSet) All() []Connector {
	if c == nil || c.released {
		return nil
	}
	return c.items
}

// Len is the number of connectors in the set.
func (c *ConnectorSet) Len() int {
	return len(c.All())
}

// Released reports whether Release has run.
func (c *ConnectorSet) Released() bool { return c != nil && c.released }

// Release drops the connectors. Releasing twice is a no-op.
func (c *ConnectorSet) Release() {
	if c == nil || c.released {
		return
	}
	c.items = nil
	c.released = true
}
