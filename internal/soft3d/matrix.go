package soft3d

import "math"

// 4×4 matrix (row-major)
type Mat4 struct {
	M [4][4]Real
}

func I4() Mat4 {
	return Mat4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z + A.M[0][3]*v.W,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z + A.M[1][3]*v.W,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z + A.M[2][3]*v.W,
		A.M[3][0]*v.X + A.M[3][1]*v.Y + A.M[3][2]*v.Z + A.M[3][3]*v.W,
	}
}

// MulPoint transforms a world-space point (w=1) into clip space.
func (A Mat4) MulPoint(p Vec3) Vec4 {
	return A.MulVec(Vec4{p.X, p.Y, p.Z, 1})
}

func Translation(t Vec3) Mat4 {
	R := I4()
	R.M[0][3] = t.X
	R.M[1][3] = t.Y
	R.M[2][3] = t.Z
	return R
}

// RotationAxisAngle builds a rotation matrix around an arbitrary axis
// (Rodrigues form). The axis does not need to be unit-length.
func RotationAxisAngle(axis Vec3, angleRad Real) Mat4 {
	a := axis.Norm()
	c := math.Cos(angleRad)
	s := math.Sin(angleRad)
	t := 1 - c

	R := I4()
	R.M[0][0] = t*a.X*a.X + c
	R.M[0][1] = t*a.X*a.Y - s*a.Z
	R.M[0][2] = t*a.X*a.Z + s*a.Y

	R.M[1][0] = t*a.X*a.Y + s*a.Z
	R.M[1][1] = t*a.Y*a.Y + c
	R.M[1][2] = t*a.Y*a.Z - s*a.X

	R.M[2][0] = t*a.X*a.Z - s*a.Y
	R.M[2][1] = t*a.Y*a.Z + s*a.X
	R.M[2][2] = t*a.Z*a.Z + c
	return R
}

// LookAtRH builds a right-handed view matrix with forward = -Z.
func LookAtRH(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Norm()
	side := f.Cross(up)
	if side.Len() <= 1e-8 {
		// forward parallel to up (straight up/down view): any
		// perpendicular axis works, keep +Z as the fallback
		up = Vec3{0, 0, 1}
		side = f.Cross(up)
	}
	s := side.Norm()
	u := s.Cross(f)

	R := I4()

	R.M[0][0] = s.X
	R.M[0][1] = s.Y
	R.M[0][2] = s.Z
	R.M[0][3] = -s.Dot(eye)

	R.M[1][0] = u.X
	R.M[1][1] = u.Y
	R.M[1][2] = u.Z
	R.M[1][3] = -u.Dot(eye)

	R.M[2][0] = -f.X
	R.M[2][1] = -f.Y
	R.M[2][2] = -f.Z
	R.M[2][3] = f.Dot(eye)
	return R
}

// PerspectiveRH builds an OpenGL-style right-handed projection mapping
// depth to NDC z in [-1,1].
func PerspectiveRH(fovYRad, aspect, nearZ, farZ Real) Mat4 {
	f := 1 / math.Tan(math.Max(1e-6, fovYRad)*0.5)
	var R Mat4
	R.M[0][0] = f / math.Max(1e-6, aspect)
	R.M[1][1] = f
	R.M[2][2] = (farZ + nearZ) / (nearZ - farZ)
	R.M[2][3] = (2 * farZ * nearZ) / (nearZ - farZ)
	R.M[3][2] = -1
	return R
}

// OrthoRH builds an OpenGL-style right-handed orthographic projection
// sized by the view volume's half-height and aspect ratio.
func OrthoRH(halfHeight, aspect, nearZ, farZ Real) Mat4 {
	hh := math.Max(1e-6, halfHeight)
	hw := hh * math.Max(1e-6, aspect)

	R := I4()
	R.M[0][0] = 1 / hw
	R.M[1][1] = 1 / hh
	R.M[2][2] = -2 / (farZ - nearZ)
	R.M[2][3] = -(farZ + nearZ) / (farZ - nearZ)
	return R
}
