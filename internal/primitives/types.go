package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/palette"
	"space-lab/internal/vmath"
)

// Matrix converts a column-major matrix to raylib's layout (M12..M14 is translation).
func Matrix(m vmath.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// Color converts a palette color.
func Color(c palette.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Vector3 converts a vector.
func Vector3(v vmath.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
