package primitive

// Plane3D is a 3D plane on the trivector basis e234, e314, e124, e321:
// (X, Y, Z) is the normal direction and W the signed offset, so a point p
// lies on the plane when X·px + Y·py + Z·pz + W = 0 (for a unitized plane,
// that expression is the signed distance from p to the plane).
type Plane3D struct {
	X, Y, Z, W float64
}

// NewPlane3D returns the plane with normal (x, y, z) and offset w.
func NewPlane3D(x, y, z, w float64) Plane3D { return Plane3D{X: x, Y: y, Z: z, W: w} }

// MakePlane returns the plane with unit-candidate normal n passing through
// the point p: the offset is −n·p.
func MakePlane(n Vector3D, p Point3D) Plane3D {
	return Plane3D{X: n.X, Y: n.Y, Z: n.Z, W: -(n.X*p.X + n.Y*p.Y + n.Z*p.Z)}
}

// Normal returns the normal direction of g.
func (g Plane3D) Normal() Vector3D { return Vector3D{X: g.X, Y: g.Y, Z: g.Z} }

// Scale returns g with all four components scaled by s.
func (g Plane3D) Scale(s float64) Plane3D {
	return Plane3D{X: g.X * s, Y: g.Y * s, Z: g.Z * s, W: g.W * s}
}

// Neg returns −g, the same plane with reversed orientation.
func (g Plane3D) Neg() Plane3D {
	return Plane3D{X: -g.X, Y: -g.Y, Z: -g.Z, W: -g.W}
}

// Distance returns X·px + Y·py + Z·pz + W, the signed distance from p to g
// when g is unitized.
func (g Plane3D) Distance(p Point3D) float64 {
	return g.X*p.X + g.Y*p.Y + g.Z*p.Z + g.W
}

// Unitize returns g scaled so that its normal has unit length.
//
// Precondition: the normal of g must be nonzero.
func (g Plane3D) Unitize() Plane3D {
	return g.Scale(InverseSqrt(g.X*g.X + g.Y*g.Y + g.Z*g.Z))
}
