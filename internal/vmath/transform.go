package vmath

import "github.com/chewxy/math32"

// Mat3 is a row-major 3x3 rotation matrix.
type Mat3 [9]float32

// Identity3 returns the identity rotation.
func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// EulerXYZ builds Rx(e.x) * Ry(e.y) * Rz(e.z), the intrinsic XYZ order the
// catalog's rotations are authored in.
func EulerXYZ(e Vec3) Mat3 {
	a, b := math32.Cos(e[0]), math32.Sin(e[0])
	c, d := math32.Cos(e[1]), math32.Sin(e[1])
	ce, f := math32.Cos(e[2]), math32.Sin(e[2])
	ae, af, be, bf := a*ce, a*f, b*ce, b*f
	return Mat3{
		c * ce, -c * f, d,
		af + be*d, ae - bf*d, -b * c,
		bf - ae*d, be + af*d, a * c,
	}
}

// MulVec returns m*v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose is the inverse of a pure rotation.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Mat4 is a column-major 4x4 matrix (element [row r, col c] at index c*4+r), the
// layout the renderer's matrices use.
type Mat4 [16]float32

// Mul returns m*o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+r] * o[c*4+k]
			}
			out[c*4+r] = s
		}
	}
	return out
}

// Transform is translation * rotation (Euler XYZ) * scale.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// NewTransform returns a transform with unit scale.
func NewTransform(pos, rot Vec3) Transform {
	return Transform{Position: pos, Rotation: rot, Scale: Splat(1)}
}

// Apply maps a local point to the parent space.
func (t Transform) Apply(p Vec3) Vec3 {
	s := Vec3{p[0] * t.Scale[0], p[1] * t.Scale[1], p[2] * t.Scale[2]}
	return EulerXYZ(t.Rotation).MulVec(s).Add(t.Position)
}

// Inverse maps a parent-space point into local space.
func (t Transform) Inverse(p Vec3) Vec3 {
	return t.unscale(EulerXYZ(t.Rotation).Transpose().MulVec(p.Sub(t.Position)))
}

// InverseDir maps a parent-space direction into local space without normalizing,
// so ray parameters stay comparable across transforms.
func (t Transform) InverseDir(d Vec3) Vec3 {
	return t.unscale(EulerXYZ(t.Rotation).Transpose().MulVec(d))
}

func (t Transform) unscale(v Vec3) Vec3 {
	for i := range v {
		if t.Scale[i] != 0 {
			v[i] /= t.Scale[i]
		}
	}
	return v
}

// Matrix returns the transform as a column-major 4x4 matrix.
func (t Transform) Matrix() Mat4 {
	r := EulerXYZ(t.Rotation)
	sx, sy, sz := t.Scale[0], t.Scale[1], t.Scale[2]
	return Mat4{
		r[0] * sx, r[3] * sx, r[6] * sx, 0,
		r[1] * sy, r[4] * sy, r[7] * sy, 0,
		r[2] * sz, r[5] * sz, r[8] * sz, 0,
		t.Position[0], t.Position[1], t.Position[2], 1,
	}
}

// TransformPoint applies a column-major matrix to a point.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}
