package math3

import "math"

// Mat4 is a 4x4 matrix in column-major order: element (row, col) is at
// index col*4+row.
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint applies m to p as a position (w = 1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// Translation returns the translation matrix for t.
func Translation(t Vec3) Mat4 {
	out := Identity()
	out[12], out[13], out[14] = t.X, t.Y, t.Z
	return out
}

// Scaling returns the scaling matrix for s.
func Scaling(s Vec3) Mat4 {
	out := Identity()
	out[0], out[5], out[10] = s.X, s.Y, s.Z
	return out
}

// RotationEuler returns the rotation matrix for Euler angles in degrees,
// applied in Z·Y·X order.
func RotationEuler(deg Vec3) Mat4 {
	rx, ry, rz := radians(deg.X), radians(deg.Y), radians(deg.Z)

	sx, cx := math.Sincos(rx)
	sy, cy := math.Sincos(ry)
	sz, cz := math.Sincos(rz)

	xRot := Mat4{
		1, 0, 0, 0,
		0, cx, sx, 0,
		0, -sx, cx, 0,
		0, 0, 0, 1,
	}
	yRot := Mat4{
		cy, 0, -sy, 0,
		0, 1, 0, 0,
		sy, 0, cy, 0,
		0, 0, 0, 1,
	}
	zRot := Mat4{
		cz, sz, 0, 0,
		-sz, cz, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return zRot.Mul(yRot).Mul(xRot)
}

// TRS composes translation, rotation (Euler degrees, Z·Y·X order) and scale
// into a single transform matrix: T * R * S.
func TRS(position, rotation, scale Vec3) Mat4 {
	return Translation(position).Mul(RotationEuler(rotation)).Mul(Scaling(scale))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
