package motor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/pga3d/primitive"
)

// Motor3D is a proper isometry of 3D space: a rotation, a translation, or a
// screw motion combining the two. The eight scalars are split into a weight
// part V on e41, e42, e43, e1234 and a bulk part M on e23, e31, e12 plus the
// scalar, matching the dual-quaternion decomposition.
type Motor3D struct {
	V primitive.Vector4D
	M primitive.Vector4D
}

// Identity is the motor that leaves everything fixed.
var Identity = Motor3D{V: primitive.Vector4D{W: 1}}

// New returns the motor with explicit components (vx..vw on the weight,
// mx..mw on the bulk).
func New(vx, vy, vz, vw, mx, my, mz, mw float64) Motor3D {
	return Motor3D{
		V: primitive.Vector4D{X: vx, Y: vy, Z: vz, W: vw},
		M: primitive.Vector4D{X: mx, Y: my, Z: mz, W: mw},
	}
}

// MakeRotation returns the motor rotating by angle radians about the line
// through the origin whose direction is the dual of axis.
//
// Precondition: axis must be unitized.
func MakeRotation(angle float64, axis primitive.Bivector3D) Motor3D {
	c, s := primitive.CosSin(angle * 0.5)
	return Motor3D{
		V: primitive.Vector4D{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c},
	}
}

// MakeRotationLine returns the motor rotating by angle radians about an
// arbitrary line.
//
// Precondition: axis must be unitized.
func MakeRotationLine(angle float64, axis primitive.Line3D) Motor3D {
	c, s := primitive.CosSin(angle * 0.5)
	return Motor3D{
		V: primitive.Vector4D{X: axis.V.X * s, Y: axis.V.Y * s, Z: axis.V.Z * s, W: c},
		M: primitive.Vector4D{X: axis.M.X * s, Y: axis.M.Y * s, Z: axis.M.Z * s},
	}
}

// MakeTranslation returns the motor translating by offset.
func MakeTranslation(offset primitive.Vector3D) Motor3D {
	return Motor3D{
		V: primitive.Vector4D{W: 1},
		M: primitive.Vector4D{X: offset.X * 0.5, Y: offset.Y * 0.5, Z: offset.Z * 0.5},
	}
}

// Mul returns the motor composition a ⟇ b, the isometry that applies b
// first and a second.
func Mul(a, b Motor3D) Motor3D {
	return Motor3D{
		V: primitive.Vector4D{
			X: a.V.W*b.V.X + a.V.X*b.V.W + a.V.Y*b.V.Z - a.V.Z*b.V.Y,
			Y: a.V.W*b.V.Y - a.V.X*b.V.Z + a.V.Y*b.V.W + a.V.Z*b.V.X,
			Z: a.V.W*b.V.Z + a.V.X*b.V.Y - a.V.Y*b.V.X + a.V.Z*b.V.W,
			W: a.V.W*b.V.W - a.V.X*b.V.X - a.V.Y*b.V.Y - a.V.Z*b.V.Z,
		},
		M: primitive.Vector4D{
			X: a.M.W*b.V.X + a.M.X*b.V.W + a.M.Y*b.V.Z - a.M.Z*b.V.Y +
				a.V.W*b.M.X + a.V.X*b.M.W + a.V.Y*b.M.Z - a.V.Z*b.M.Y,
			Y: a.M.W*b.V.Y - a.M.X*b.V.Z + a.M.Y*b.V.W + a.M.Z*b.V.X +
				a.V.W*b.M.Y - a.V.X*b.M.Z + a.V.Y*b.M.W + a.V.Z*b.M.X,
			Z: a.M.W*b.V.Z + a.M.X*b.V.Y - a.M.Y*b.V.X + a.M.Z*b.V.W +
				a.V.W*b.M.Z + a.V.X*b.M.Y - a.V.Y*b.M.X + a.V.Z*b.M.W,
			W: a.M.W*b.V.W - a.M.X*b.V.X - a.M.Y*b.V.Y - a.M.Z*b.V.Z +
				a.V.W*b.M.W - a.V.X*b.M.X - a.V.Y*b.M.Y - a.V.Z*b.M.Z,
		},
	}
}

// Neg returns −q, which represents the same isometry.
func (q Motor3D) Neg() Motor3D {
	return Motor3D{V: q.V.Neg(), M: q.M.Neg()}
}

// Antireverse returns Q̰, the operator undoing q when q is unitized.
func (q Motor3D) Antireverse() Motor3D {
	return Motor3D{
		V: primitive.Vector4D{X: -q.V.X, Y: -q.V.Y, Z: -q.V.Z, W: q.V.W},
		M: primitive.Vector4D{X: -q.M.X, Y: -q.M.Y, Z: -q.M.Z, W: q.M.W},
	}
}

// BulkNorm returns the magnitude of the bulk part of q (the components
// carrying no projective factor).
func (q Motor3D) BulkNorm() float64 {
	m := q.M
	return math.Sqrt(m.X*m.X + m.Y*m.Y + m.Z*m.Z + m.W*m.W)
}

// WeightNorm returns the magnitude of the weight part of q; it is 1 for a
// unitized motor.
func (q Motor3D) WeightNorm() float64 {
	v := q.V
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// Unitize returns q scaled so that its weight norm is 1.
//
// Precondition: the weight of q must be nonzero.
func (q Motor3D) Unitize() Motor3D {
	v := q.V
	s := primitive.InverseSqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
	return Motor3D{V: q.V.Scale(s), M: q.M.Scale(s)}
}

// TransformPoint applies the sandwich q ⟇ p ⟇ q̰ to a point.
//
// Precondition: q must be unitized.
func (q Motor3D) TransformPoint(p primitive.Point3D) primitive.Point3D {
	h := q.TransformVector4D(p.Vector4D())
	return primitive.Point3D{X: h.X, Y: h.Y, Z: h.Z}
}

// TransformVector applies the linear part of q to a direction.
//
// Precondition: q must be unitized.
func (q Motor3D) TransformVector(v primitive.Vector3D) primitive.Vector3D {
	h := q.TransformVector4D(primitive.Vector4D{X: v.X, Y: v.Y, Z: v.Z})
	return primitive.Vector3D{X: h.X, Y: h.Y, Z: h.Z}
}

// TransformVector4D applies the sandwich q ⟇ v ⟇ q̰ to a homogeneous vector.
//
// Precondition: q must be unitized.
func (q Motor3D) TransformVector4D(v primitive.Vector4D) primitive.Vector4D {
	x, y, z, w := v.X, v.Y, v.Z, v.W
	return primitive.Vector4D{
		X: (q.V.W*q.V.W+q.V.X*q.V.X-q.V.Y*q.V.Y-q.V.Z*q.V.Z)*x +
			2*(-q.M.W*q.V.X*w+q.M.X*q.V.W*w-q.M.Y*q.V.Z*w+q.M.Z*q.V.Y*w+
				q.V.W*q.V.Y*z-q.V.W*q.V.Z*y+q.V.X*q.V.Y*y+q.V.X*q.V.Z*z),
		Y: (q.V.W*q.V.W-q.V.X*q.V.X+q.V.Y*q.V.Y-q.V.Z*q.V.Z)*y +
			2*(-q.M.W*q.V.Y*w+q.M.X*q.V.Z*w+q.M.Y*q.V.W*w-q.M.Z*q.V.X*w-
				q.V.W*q.V.X*z+q.V.W*q.V.Z*x+q.V.X*q.V.Y*x+q.V.Y*q.V.Z*z),
		Z: (q.V.W*q.V.W-q.V.X*q.V.X-q.V.Y*q.V.Y+q.V.Z*q.V.Z)*z +
			2*(-q.M.W*q.V.Z*w-q.M.X*q.V.Y*w+q.M.Y*q.V.X*w+q.M.Z*q.V.W*w+
				q.V.W*q.V.X*y-q.V.W*q.V.Y*x+q.V.X*q.V.Z*x+q.V.Y*q.V.Z*y),
		W: w,
	}
}

// GetTransformMatrix returns the 4×4 homogeneous matrix acting on column
// points exactly as q does.
//
// Precondition: q must be unitized.
func (q Motor3D) GetTransformMatrix() mgl64.Mat4 {
	vx, vy, vz, vw := q.V.X, q.V.Y, q.V.Z, q.V.W
	mx, my, mz, mw := q.M.X, q.M.Y, q.M.Z, q.M.W

	vx2, vy2, vz2 := vx*vx, vy*vy, vz*vz

	return mgl64.Mat4FromRows(
		mgl64.Vec4{1 - 2*(vy2+vz2), 2 * (vx*vy - vw*vz), 2 * (vw*vy + vx*vz),
			2 * (mx*vw - mw*vx + mz*vy - my*vz)},
		mgl64.Vec4{2 * (vw*vz + vx*vy), 1 - 2*(vx2+vz2), 2 * (vy*vz - vw*vx),
			2 * (my*vw - mw*vy + mx*vz - mz*vx)},
		mgl64.Vec4{2 * (vx*vz - vw*vy), 2 * (vw*vx + vy*vz), 1 - 2*(vx2+vy2),
			2 * (mz*vw - mw*vz + my*vx - mx*vy)},
		mgl64.Vec4{0, 0, 0, 1},
	)
}
