package primitive

import "math"

// Vector3D is a 3D direction: a vector with no position, transformed by the
// linear part of an isometry only. Equivalently, a point at infinity.
type Vector3D struct {
	X, Y, Z float64
}

// NewVector3D returns the direction (x, y, z).
func NewVector3D(x, y, z float64) Vector3D { return Vector3D{X: x, Y: y, Z: z} }

// Add returns v + u componentwise.
func (v Vector3D) Add(u Vector3D) Vector3D {
	return Vector3D{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns v − u componentwise.
func (v Vector3D) Sub(u Vector3D) Vector3D {
	return Vector3D{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Scale returns v scaled by s.
func (v Vector3D) Scale(s float64) Vector3D {
	return Vector3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns −v.
func (v Vector3D) Neg() Vector3D { return Vector3D{X: -v.X, Y: -v.Y, Z: -v.Z} }

// Dot returns the Euclidean dot product v · u.
func (v Vector3D) Dot(u Vector3D) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v × u.
func (v Vector3D) Cross(u Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vector3D) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length.
//
// Precondition: v must be nonzero.
func (v Vector3D) Normalize() Vector3D { return v.Scale(InverseSqrt(v.Dot(v))) }

// Bivector3D is a 3D bivector (an oriented plane element through the origin),
// stored by its dual axis on the basis e23, e31, e12. Under an isometry it
// transforms exactly like a Vector3D, but it represents the axis of a
// rotation or the moment of a line rather than a displacement.
type Bivector3D struct {
	X, Y, Z float64
}

// NewBivector3D returns the bivector with dual axis (x, y, z).
func NewBivector3D(x, y, z float64) Bivector3D { return Bivector3D{X: x, Y: y, Z: z} }

// Add returns b + c componentwise.
func (b Bivector3D) Add(c Bivector3D) Bivector3D {
	return Bivector3D{X: b.X + c.X, Y: b.Y + c.Y, Z: b.Z + c.Z}
}

// Scale returns b scaled by s.
func (b Bivector3D) Scale(s float64) Bivector3D {
	return Bivector3D{X: b.X * s, Y: b.Y * s, Z: b.Z * s}
}

// Neg returns −b.
func (b Bivector3D) Neg() Bivector3D { return Bivector3D{X: -b.X, Y: -b.Y, Z: -b.Z} }

// Dot returns the componentwise dot product b · c.
func (b Bivector3D) Dot(c Bivector3D) float64 {
	return b.X*c.X + b.Y*c.Y + b.Z*c.Z
}

// Norm returns the magnitude of b.
func (b Bivector3D) Norm() float64 { return math.Sqrt(b.Dot(b)) }

// Normalize returns b scaled to unit magnitude.
//
// Precondition: b must be nonzero.
func (b Bivector3D) Normalize() Bivector3D { return b.Scale(InverseSqrt(b.Dot(b))) }

// Vector4D is a homogeneous 4D vector on the basis e1, e2, e3, e4.
// With W = 1 it is a point, with W = 0 a direction; intermediate weights
// arise inside operator compositions and are removed by unitization.
type Vector4D struct {
	X, Y, Z, W float64
}

// NewVector4D returns the homogeneous vector (x, y, z, w).
func NewVector4D(x, y, z, w float64) Vector4D { return Vector4D{X: x, Y: y, Z: z, W: w} }

// Scale returns v with all four components scaled by s.
func (v Vector4D) Scale(s float64) Vector4D {
	return Vector4D{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Neg returns −v.
func (v Vector4D) Neg() Vector4D {
	return Vector4D{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Point3D is a 3D position: a homogeneous point with an implicit weight of 1.
type Point3D struct {
	X, Y, Z float64
}

// NewPoint3D returns the point (x, y, z).
func NewPoint3D(x, y, z float64) Point3D { return Point3D{X: x, Y: y, Z: z} }

// Vector4D widens p to its homogeneous form with W = 1.
func (p Point3D) Vector4D() Vector4D { return Vector4D{X: p.X, Y: p.Y, Z: p.Z, W: 1} }

// Vector3D drops the weight, treating p as a displacement from the origin.
func (p Point3D) Vector3D() Vector3D { return Vector3D{X: p.X, Y: p.Y, Z: p.Z} }

// Sub returns the direction from q to p.
func (p Point3D) Sub(q Point3D) Vector3D {
	return Vector3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add returns p displaced by v.
func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}
