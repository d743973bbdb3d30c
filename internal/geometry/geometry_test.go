package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-lab/internal/catalog"
	"space-lab/internal/vmath"
)

// assertOutward checks every non-degenerate triangle of a convex mesh around the
// origin winds counter-clockwise seen from outside.
func assertOutward(t *testing.T, m *Mesh) {
	t.Helper()
	for i := 0; i+2 < m.VertexCount(); i += 3 {
		a, b, c := m.Vertex(i), m.Vertex(i+1), m.Vertex(i+2)
		n := cross(b.Sub(a), c.Sub(a))
		if n.Len() < 1e-7 {
			continue
		}
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if !assert.Greater(t, dot(n, centroid), float32(0), "triangle %d faces inward", i/3) {
			return
		}
	}
}

func assertBounds(t *testing.T, m *Mesh, half vmath.Vec3) {
	t.Helper()
	lo, hi := m.Bounds()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, -half[k], lo[k], 1e-5, "min axis %d", k)
		assert.InDelta(t, half[k], hi[k], 1e-5, "max axis %d", k)
	}
}

func TestBox(t *testing.T) {
	m := Box(0.8, 0.1, 0.8)
	assert.Equal(t, 12, m.TriangleCount())
	assert.Len(t, m.Normals, len(m.Vertices))
	assert.Len(t, m.Texcoords, m.VertexCount()*2)
	assertBounds(t, m, vmath.V3(0.4, 0.05, 0.4))
	assertOutward(t, m)
}

func TestFrustum(t *testing.T) {
	m := Frustum(0.3, 0.3, 0.2, 16)
	assert.Equal(t, 16*2+16*2, m.TriangleCount())
	assertBounds(t, m, vmath.V3(0.3, 0.1, 0.3))
	assertOutward(t, m)

	cone := Frustum(0, 0.2, 0.4, 12)
	assert.Equal(t, 12*2+12, cone.TriangleCount(), "zero radius end has no cap")
	assertOutward(t, cone)
	// Side normals tilt up on a cone.
	assert.Greater(t, cone.Normals[1], float32(0))
}

func TestSphere(t *testing.T) {
	m := Sphere(0.5, 16, 16)
	assert.Equal(t, 16*16*2, m.TriangleCount())
	assertBounds(t, m, vmath.Splat(0.5))
	assertOutward(t, m)
	for i := 0; i < m.VertexCount(); i++ {
		assert.InDelta(t, 0.5, m.Vertex(i).Len(), 1e-5)
	}
}

func TestCapsule(t *testing.T) {
	m := Capsule(0.2, 0.2, 1, 8)
	assertBounds(t, m, vmath.V3(0.2, 0.7, 0.2))
	assertOutward(t, m)
}

func TestShapeFromDescriptor(t *testing.T) {
	d := catalog.GeometryDescriptor{Kind: catalog.KindCylinder, Dimensions: []float32{0.05, 0.05, 1.4, 8}}
	s := ShapeOf(d)
	assert.Equal(t, "cylinder:0.05:0.05:1.4:8", s.Key())
	assert.Equal(t, s.Key(), ShapeOf(d).Key())

	d.Dimensions[0] = 9
	assert.Equal(t, float32(0.05), s.Dims[0], "shape owns its dimensions")

	m := s.Build()
	assert.Equal(t, 8*2+8*2, m.TriangleCount())
	assert.Equal(t, vmath.V3(0.05, 0.7, 0.05), s.HalfExtents())
}

func TestShapeHalfExtentsHoldMesh(t *testing.T) {
	shapes := []Shape{
		{Kind: catalog.KindBox, Dims: []float32{0.2, 0.2, 0.4}},
		{Kind: catalog.KindSphere, Dims: []float32{0.1, 16, 16}},
		{Kind: catalog.KindCylinder, Dims: []float32{0.15, 0.25, 0.3, 16}},
		{Kind: catalog.KindCapsule, Dims: []float32{0.1, 0.2, 0.5, 12}},
	}
	for _, s := range shapes {
		t.Run(s.Key(), func(t *testing.T) {
			half := s.HalfExtents()
			lo, hi := s.Build().Bounds()
			for k := 0; k < 3; k++ {
				assert.LessOrEqual(t, hi[k], half[k]+1e-5)
				assert.GreaterOrEqual(t, lo[k], -half[k]-1e-5)
			}
		})
	}
}

func TestShapeSegmentFloor(t *testing.T) {
	s := Shape{Kind: catalog.KindSphere, Dims: []float32{0.5, 1, 1}}
	assert.Equal(t, 3*2*2, s.Build().TriangleCount(), "segments are raised to the minimum")
}

func TestIntersect(t *testing.T) {
	box := Box(1, 1, 1)

	at, ok := box.Intersect(Ray{Origin: vmath.V3(-5, 0, 0), Dir: vmath.V3(1, 0, 0)})
	require.True(t, ok)
	assert.InDelta(t, 4.5, at, 1e-5)

	_, ok = box.Intersect(Ray{Origin: vmath.V3(-5, 2, 0), Dir: vmath.V3(1, 0, 0)})
	assert.False(t, ok)

	_, ok = box.Intersect(Ray{Origin: vmath.V3(-5, 0, 0), Dir: vmath.V3(-1, 0, 0)})
	assert.False(t, ok, "hits behind the origin do not count")

	inside, ok := box.Intersect(Ray{Origin: vmath.Vec3{}, Dir: vmath.V3(0, 1, 0)})
	require.True(t, ok)
	assert.InDelta(t, 0.5, inside, 1e-5)
}

func TestIntersectInLocalSpace(t *testing.T) {
	box := Box(1, 1, 1)
	tr := vmath.Transform{Position: vmath.V3(2, 0, 0), Rotation: vmath.V3(0, 0.7, 0), Scale: vmath.Splat(2)}
	world := Ray{Origin: vmath.V3(-5, 0, 0), Dir: vmath.V3(1, 0, 0)}

	at, ok := box.Intersect(world.Into(tr))
	require.True(t, ok)
	hit := world.At(at)
	local := tr.Inverse(hit)
	assert.InDelta(t, 0.5, max3(local), 1e-4, "hit lies on the box surface")
	assert.Less(t, hit.X(), float32(2))
}

func TestHitsSphere(t *testing.T) {
	r := Ray{Origin: vmath.V3(0, 0, -10), Dir: vmath.V3(0, 0, 1)}
	assert.True(t, r.HitsSphere(vmath.V3(0.4, 0, 0), 0.5))
	assert.False(t, r.HitsSphere(vmath.V3(0.6, 0, 0), 0.5))
	assert.False(t, r.HitsSphere(vmath.V3(0, 0, -20), 0.5), "sphere behind the ray")
}

func max3(v vmath.Vec3) float32 {
	m := float32(0)
	for _, c := range v {
		if c < 0 {
			c = -c
		}
		if c > m {
			m = c
		}
	}
	return m
}

func TestCacheSharesShapes(t *testing.T) {
	c := NewCache()
	a := c.Mesh(Shape{Kind: catalog.KindCylinder, Dims: []float32{0.3, 0.3, 0.2, 16}})
	b := c.Mesh(Shape{Kind: catalog.KindCylinder, Dims: []float32{0.3, 0.3, 0.2, 16}})
	assert.Same(t, a, b)
	c.Mesh(Shape{Kind: catalog.KindBox, Dims: []float32{0.5, 0.5, 0.5}})
	assert.Equal(t, 2, c.Len())
}
