package geometry

import (
	"github.com/chewxy/math32"

	"space-lab/internal/vmath"
)

const epsilon = 1e-6

// Ray is a half-line origin + t*dir, t >= 0. Dir need not be unit length.
type Ray struct {
	Origin vmath.Vec3
	Dir    vmath.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) vmath.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Into expresses the ray in the local space of tr. Parameters are preserved, so
// hits from different local spaces compare directly.
func (r Ray) Into(tr vmath.Transform) Ray {
	return Ray{Origin: tr.Inverse(r.Origin), Dir: tr.InverseDir(r.Dir)}
}

// HitsSphere reports whether the ray passes within radius of center.
func (r Ray) HitsSphere(center vmath.Vec3, radius float32) bool {
	oc := r.Origin.Sub(center)
	a := dot(r.Dir, r.Dir)
	if a == 0 {
		return false
	}
	b := dot(oc, r.Dir)
	c := dot(oc, oc) - radius*radius
	disc := b*b - a*c
	if disc < 0 {
		return false
	}
	return (-b+math32.Sqrt(disc))/a >= 0
}

// Intersect returns the nearest parameter at which the ray crosses a triangle of
// the mesh. Both faces count.
func (m *Mesh) Intersect(r Ray) (float32, bool) {
	best, hit := float32(0), false
	for i := 0; i+2 < m.VertexCount(); i += 3 {
		t, ok := triangle(r, m.Vertex(i), m.Vertex(i+1), m.Vertex(i+2))
		if ok && (!hit || t < best) {
			best, hit = t, true
		}
	}
	return best, hit
}

// triangle is the Moller-Trumbore test.
func triangle(r Ray, a, b, c vmath.Vec3) (float32, bool) {
	e1, e2 := b.Sub(a), c.Sub(a)
	p := cross(r.Dir, e2)
	det := dot(e1, p)
	if math32.Abs(det) < epsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u := dot(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := cross(s, e1)
	v := dot(r.Dir, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := dot(e2, q) * inv
	if t < epsilon {
		return 0, false
	}
	return t, true
}

func dot(a, b vmath.Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b vmath.Vec3) vmath.Vec3 {
	return vmath.V3(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}
