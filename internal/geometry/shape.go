// Package geometry builds triangle meshes for the catalog's primitive kinds and
// answers ray queries against them. It holds no GPU state; the renderer uploads
// the vertex data it produces.
package geometry

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"space-lab/internal/catalog"
	"space-lab/internal/vmath"
)

// Shape is a primitive kind with its dimensions. Parts with equal shapes share one
// mesh.
type Shape struct {
	Kind catalog.Kind
	Dims []float32
}

// ShapeOf extracts the shape from a descriptor.
func ShapeOf(g catalog.GeometryDescriptor) Shape {
	return Shape{Kind: g.Kind, Dims: append([]float32(nil), g.Dimensions...)}
}

// Key identifies the shape for mesh caching.
func (s Shape) Key() string {
	var b strings.Builder
	b.WriteString(string(s.Kind))
	for _, d := range s.Dims {
		fmt.Fprintf(&b, ":%g", d)
	}
	return b.String()
}

func (s Shape) dim(i int, def float32) float32 {
	if i < len(s.Dims) {
		return s.Dims[i]
	}
	return def
}

func (s Shape) segments(i, least int) int {
	n := int(math32.Round(s.dim(i, float32(least))))
	if n < least {
		return least
	}
	return n
}

// HalfExtents is half the size of the shape's local bounding box.
func (s Shape) HalfExtents() vmath.Vec3 {
	switch s.Kind {
	case catalog.KindSphere:
		return vmath.Splat(s.dim(0, 0.5))
	case catalog.KindCylinder:
		r := math32.Max(s.dim(0, 0.5), s.dim(1, 0.5))
		return vmath.V3(r, s.dim(2, 1)/2, r)
	case catalog.KindCapsule:
		top, bottom := s.dim(0, 0.5), s.dim(1, 0.5)
		r := math32.Max(top, bottom)
		return vmath.V3(r, s.dim(2, 1)/2+r, r)
	default:
		return vmath.V3(s.dim(0, 1)/2, s.dim(1, 1)/2, s.dim(2, 1)/2)
	}
}

// Radius bounds the shape from its local origin.
func (s Shape) Radius() float32 {
	return s.HalfExtents().Len()
}

// Build generates the shape's mesh.
func (s Shape) Build() *Mesh {
	switch s.Kind {
	case catalog.KindSphere:
		return Sphere(s.dim(0, 0.5), s.segments(1, 3), s.segments(2, 2))
	case catalog.KindCylinder:
		return Frustum(s.dim(0, 0.5), s.dim(1, 0.5), s.dim(2, 1), s.segments(3, 3))
	case catalog.KindCapsule:
		return Capsule(s.dim(0, 0.5), s.dim(1, 0.5), s.dim(2, 1), s.segments(3, 3))
	default:
		return Box(s.dim(0, 1), s.dim(1, 1), s.dim(2, 1))
	}
}

// Cache builds each distinct shape once.
type Cache struct {
	meshes map[string]*Mesh
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{meshes: make(map[string]*Mesh)}
}

// Mesh returns the mesh for s, building it on first use.
func (c *Cache) Mesh(s Shape) *Mesh {
	key := s.Key()
	if m, ok := c.meshes[key]; ok {
		return m
	}
	m := s.Build()
	c.meshes[key] = m
	return m
}

// Len is the number of distinct shapes built.
func (c *Cache) Len() int { return len(c.meshes) }
