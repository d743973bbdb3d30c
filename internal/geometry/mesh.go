package geometry

import (
	"github.com/chewxy/math32"

	"space-lab/internal/vmath"
)

// Mesh is an unindexed triangle list with per-vertex normals and texture
// coordinates, laid out the way the GPU upload expects (xyz, xyz, uv).
// Front faces wind counter-clockwise seen from outside.
type Mesh struct {
	Vertices  []float32
	Normals   []float32
	Texcoords []float32
}

// TriangleCount is the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 9
}

// VertexCount is the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) vmath.Vec3 {
	return vmath.V3(m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2])
}

// Bounds returns the smallest box holding every vertex.
func (m *Mesh) Bounds() (lo, hi vmath.Vec3) {
	if m.VertexCount() == 0 {
		return
	}
	lo, hi = m.Vertex(0), m.Vertex(0)
	for i := 1; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		for k := 0; k < 3; k++ {
			lo[k] = math32.Min(lo[k], v[k])
			hi[k] = math32.Max(hi[k], v[k])
		}
	}
	return lo, hi
}

func (m *Mesh) add(p, n vmath.Vec3, u, v float32) {
	m.Vertices = append(m.Vertices, p[0], p[1], p[2])
	m.Normals = append(m.Normals, n[0], n[1], n[2])
	m.Texcoords = append(m.Texcoords, u, v)
}

// Box builds an axis-aligned box centered on the origin.
func Box(w, h, d float32) *Mesh {
	half := vmath.V3(w/2, h/2, d/2)
	faces := [6][3]vmath.Vec3{
		// normal, u, v with u x v = normal
		{vmath.V3(1, 0, 0), vmath.V3(0, 0, -1), vmath.V3(0, 1, 0)},
		{vmath.V3(-1, 0, 0), vmath.V3(0, 0, 1), vmath.V3(0, 1, 0)},
		{vmath.V3(0, 1, 0), vmath.V3(1, 0, 0), vmath.V3(0, 0, -1)},
		{vmath.V3(0, -1, 0), vmath.V3(1, 0, 0), vmath.V3(0, 0, 1)},
		{vmath.V3(0, 0, 1), vmath.V3(1, 0, 0), vmath.V3(0, 1, 0)},
		{vmath.V3(0, 0, -1), vmath.V3(-1, 0, 0), vmath.V3(0, 1, 0)},
	}
	m := &Mesh{}
	for _, f := range faces {
		n, u, v := f[0], f[1], f[2]
		corner := func(s, t float32) vmath.Vec3 {
			p := n.Add(u.Scale(s)).Add(v.Scale(t))
			return vmath.V3(p[0]*half[0], p[1]*half[1], p[2]*half[2])
		}
		uv := func(s, t float32) (float32, float32) { return (s + 1) / 2, (1 - t) / 2 }
		for _, st := range [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}} {
			tu, tv := uv(st[0], st[1])
			m.add(corner(st[0], st[1]), n, tu, tv)
		}
	}
	return m
}

// ring is one latitude of a surface of revolution around the Y axis.
type ring struct {
	r, y   float32 // radius and height
	nr, ny float32 // normal split into its radial and vertical parts
	v      float32 // texture row
}

// revolve sweeps the profile (ordered bottom to top) around the Y axis.
func (m *Mesh) revolve(profile []ring, segments int) {
	step := 2 * math32.Pi / float32(segments)
	at := func(q ring, i int) (vmath.Vec3, vmath.Vec3, float32) {
		s, c := math32.Sincos(float32(i) * step)
		return vmath.V3(q.r*c, q.y, q.r*s), vmath.V3(q.nr*c, q.ny, q.nr*s), float32(i) / float32(segments)
	}
	for j := 0; j+1 < len(profile); j++ {
		lo, hi := profile[j], profile[j+1]
		for i := 0; i < segments; i++ {
			b0, nb0, u0 := at(lo, i)
			b1, nb1, u1 := at(lo, i+1)
			t0, nt0, _ := at(hi, i)
			t1, nt1, _ := at(hi, i+1)
			m.add(b0, nb0, u0, lo.v)
			m.add(t0, nt0, u0, hi.v)
			m.add(b1, nb1, u1, lo.v)
			m.add(b1, nb1, u1, lo.v)
			m.add(t0, nt0, u0, hi.v)
			m.add(t1, nt1, u1, hi.v)
		}
	}
}

// disk adds a flat cap of radius r at height y facing up or down.
func (m *Mesh) disk(r, y float32, up bool, segments int) {
	if r <= 0 {
		return
	}
	step := 2 * math32.Pi / float32(segments)
	n := vmath.V3(0, -1, 0)
	if up {
		n = vmath.V3(0, 1, 0)
	}
	center := vmath.V3(0, y, 0)
	for i := 0; i < segments; i++ {
		s0, c0 := math32.Sincos(float32(i) * step)
		s1, c1 := math32.Sincos(float32(i+1) * step)
		p0 := vmath.V3(r*c0, y, r*s0)
		p1 := vmath.V3(r*c1, y, r*s1)
		m.add(center, n, 0.5, 0.5)
		if up {
			m.add(p1, n, (c1+1)/2, (s1+1)/2)
			m.add(p0, n, (c0+1)/2, (s0+1)/2)
		} else {
			m.add(p0, n, (c0+1)/2, (s0+1)/2)
			m.add(p1, n, (c1+1)/2, (s1+1)/2)
		}
	}
}

// Frustum builds a capped cylinder along Y, centered on the origin. Unequal radii
// give a truncated cone; a zero radius gives a cone with no cap on that end.
func Frustum(top, bottom, height float32, segments int) *Mesh {
	h := height / 2
	// Slanted side normal: radial part height, vertical part the radius drop.
	nr, ny := height, bottom-top
	l := math32.Hypot(nr, ny)
	nr, ny = nr/l, ny/l

	m := &Mesh{}
	m.revolve([]ring{
		{r: bottom, y: -h, nr: nr, ny: ny, v: 1},
		{r: top, y: h, nr: nr, ny: ny, v: 0},
	}, segments)
	m.disk(top, h, true, segments)
	m.disk(bottom, -h, false, segments)
	return m
}

// Sphere builds a UV sphere centered on the origin.
func Sphere(radius float32, widthSegments, heightSegments int) *Mesh {
	profile := make([]ring, 0, heightSegments+1)
	for j := 0; j <= heightSegments; j++ {
		phi := -math32.Pi/2 + math32.Pi*float32(j)/float32(heightSegments)
		s, c := math32.Sincos(phi)
		profile = append(profile, ring{r: radius * c, y: radius * s, nr: c, ny: s, v: 1 - float32(j)/float32(heightSegments)})
	}
	m := &Mesh{}
	m.revolve(profile, widthSegments)
	return m
}

// Capsule builds a cylinder of the given height with hemispherical ends. Each
// end's radius follows the matching cylinder radius.
func Capsule(top, bottom, height float32, segments int) *Mesh {
	h := height / 2
	rings := segments / 4
	if rings < 2 {
		rings = 2
	}
	span := height + top + bottom
	profile := make([]ring, 0, 2*rings+2)
	hemi := func(r, cy, from float32) {
		for j := 0; j <= rings; j++ {
			phi := from + (math32.Pi/2)*float32(j)/float32(rings)
			s, c := math32.Sincos(phi)
			y := cy + r*s
			profile = append(profile, ring{r: r * c, y: y, nr: c, ny: s, v: (h + top - y) / span})
		}
	}
	hemi(bottom, -h, -math32.Pi/2)
	hemi(top, h, 0)

	m := &Mesh{}
	m.revolve(profile, segments)
	return m
}
