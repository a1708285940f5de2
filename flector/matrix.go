package flector

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/pga3d/primitive"
)

// Matrix bridge: a unitized flector and a homogeneous 4×4 matrix with an
// orthogonal determinant −1 upper block describe the same isometry. The
// conversions here are algebraic in both directions; no numeric inversion
// or decomposition is performed.

// GetTransformMatrix returns the 4×4 matrix acting on column points exactly
// as f does.
//
// Precondition: f must be unitized.
func (f Flector3D) GetTransformMatrix() mgl64.Mat4 {
	gx, gy, gz, gw := f.G.X, f.G.Y, f.G.Z, f.G.W
	px, py, pz, pw := f.P.X, f.P.Y, f.P.Z, f.P.W
	gx2, gy2, gz2, pw2 := gx*gx, gy*gy, gz*gz, pw*pw

	return mgl64.Mat4FromRows(
		mgl64.Vec4{1 - 2*(gx2+pw2), 2 * (gz*pw - gx*gy), -2 * (gx*gz + gy*pw),
			2 * (pw*px - gw*gx + gy*pz - gz*py)},
		mgl64.Vec4{-2 * (gx*gy + gz*pw), 1 - 2*(gy2+pw2), 2 * (gx*pw - gy*gz),
			2 * (pw*py - gw*gy + gz*px - gx*pz)},
		mgl64.Vec4{2 * (gy*pw - gx*gz), -2 * (gy*gz + gx*pw), 1 - 2*(gz2+pw2),
			2 * (pw*pz - gw*gz + gx*py - gy*px)},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// GetInverseTransformMatrix returns the matrix of the inverse isometry
// F̰ ⟇ x ⟇ F: the transpose of the upper 3×3 block with the back-rotated
// translation, built directly from the components of f.
//
// Precondition: f must be unitized.
func (f Flector3D) GetInverseTransformMatrix() mgl64.Mat4 {
	gx, gy, gz, gw := f.G.X, f.G.Y, f.G.Z, f.G.W
	px, py, pz, pw := f.P.X, f.P.Y, f.P.Z, f.P.W
	gx2, gy2, gz2, pw2 := gx*gx, gy*gy, gz*gz, pw*pw

	return mgl64.Mat4FromRows(
		mgl64.Vec4{1 - 2*(gx2+pw2), -2 * (gx*gy + gz*pw), 2 * (gy*pw - gx*gz),
			2 * (pw*px - gw*gx - gy*pz + gz*py)},
		mgl64.Vec4{2 * (gz*pw - gx*gy), 1 - 2*(gy2+pw2), -2 * (gy*gz + gx*pw),
			2 * (pw*py - gw*gy - gz*px + gx*pz)},
		mgl64.Vec4{-2 * (gx*gz + gy*pw), 2 * (gx*pw - gy*gz), 1 - 2*(gz2+pw2),
			2 * (pw*pz - gw*gz - gx*py + gy*px)},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// GetTransformMatrices returns the forward and inverse matrices of f in one
// call, sharing the intermediate products between the two.
//
// Precondition: f must be unitized.
func (f Flector3D) GetTransformMatrices() (m, inv mgl64.Mat4) {
	gx, gy, gz, gw := f.G.X, f.G.Y, f.G.Z, f.G.W
	px, py, pz, pw := f.P.X, f.P.Y, f.P.Z, f.P.W

	d00 := 1 - 2*(gx*gx+pw*pw)
	d11 := 1 - 2*(gy*gy+pw*pw)
	d22 := 1 - 2*(gz*gz+pw*pw)

	gxgy, gxgz, gygz := 2*gx*gy, 2*gx*gz, 2*gy*gz
	gxpw, gypw, gzpw := 2*gx*pw, 2*gy*pw, 2*gz*pw

	ax, ay, az := 2*(pw*px-gw*gx), 2*(pw*py-gw*gy), 2*(pw*pz-gw*gz)
	bx := 2 * (gy*pz - gz*py)
	by := 2 * (gz*px - gx*pz)
	bz := 2 * (gx*py - gy*px)

	m = mgl64.Mat4FromRows(
		mgl64.Vec4{d00, gzpw - gxgy, -(gxgz + gypw), ax + bx},
		mgl64.Vec4{-(gxgy + gzpw), d11, gxpw - gygz, ay + by},
		mgl64.Vec4{gypw - gxgz, -(gygz + gxpw), d22, az + bz},
		mgl64.Vec4{0, 0, 0, 1},
	)
	inv = mgl64.Mat4FromRows(
		mgl64.Vec4{d00, -(gxgy + gzpw), gypw - gxgz, ax - bx},
		mgl64.Vec4{gzpw - gxgy, d11, -(gygz + gxpw), ay - by},
		mgl64.Vec4{-(gxgz + gypw), gxpw - gygz, d22, az - bz},
		mgl64.Vec4{0, 0, 0, 1},
	)
	return m, inv
}

// SetTransformMatrix extracts the flector represented by m and stores it in
// f, returning f. The extraction reads the diagonal for the four weight
// squares, picks the largest as the division pivot, recovers the remaining
// weight components from off-diagonal sums and differences, and finally
// solves the translation column for the bulk. The result is unitized; its
// overall sign follows the chosen pivot.
//
// Precondition: the upper 3×3 block of m must be orthogonal with
// determinant −1 and the bottom row must be (0, 0, 0, 1).
func (f *Flector3D) SetTransformMatrix(m mgl64.Mat4) *Flector3D {
	m00, m01, m02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m10, m11, m12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m20, m21, m22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	// The four squares sum to exactly 1, so the largest is at least 1/4 and
	// its square root is safe as a divisor.
	sumPW := 1 - m00 - m11 - m22
	sumGX := 1 - m00 + m11 + m22
	sumGY := 1 + m00 - m11 + m22
	sumGZ := 1 + m00 + m11 - m22

	var gx, gy, gz, pw float64
	switch {
	case sumPW >= sumGX && sumPW >= sumGY && sumPW >= sumGZ:
		pw = 0.5 * math.Sqrt(sumPW)
		d := 0.25 / pw
		gx = (m12 - m21) * d
		gy = (m20 - m02) * d
		gz = (m01 - m10) * d
	case sumGX >= sumGY && sumGX >= sumGZ:
		gx = 0.5 * math.Sqrt(sumGX)
		d := 0.25 / gx
		gy = -(m01 + m10) * d
		gz = -(m02 + m20) * d
		pw = (m12 - m21) * d
	case sumGY >= sumGZ:
		gy = 0.5 * math.Sqrt(sumGY)
		d := 0.25 / gy
		gx = -(m01 + m10) * d
		gz = -(m12 + m21) * d
		pw = (m20 - m02) * d
	default:
		gz = 0.5 * math.Sqrt(sumGZ)
		d := 0.25 / gz
		gx = -(m02 + m20) * d
		gy = -(m12 + m21) * d
		pw = (m01 - m10) * d
	}

	// Half the translation column, back-solved through the orthonormal
	// weight system to recover the bulk.
	hx, hy, hz := 0.5*m.At(0, 3), 0.5*m.At(1, 3), 0.5*m.At(2, 3)

	f.P = primitive.Vector4D{
		X: pw*hx + gz*hy - gy*hz,
		Y: -gz*hx + pw*hy + gx*hz,
		Z: gy*hx - gx*hy + pw*hz,
		W: pw,
	}
	f.G = primitive.Plane3D{
		X: gx,
		Y: gy,
		Z: gz,
		W: -(gx*hx + gy*hy + gz*hz),
	}
	return f
}
