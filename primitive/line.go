package primitive

// Line3D is a 3D line in Plücker form: V is the direction (on e41, e42, e43)
// and M the moment about the origin (on e23, e31, e12). Every proper line
// satisfies V · M = 0; a line with zero direction is a line at infinity.
type Line3D struct {
	V Vector3D
	M Bivector3D
}

// NewLine3D returns the line with direction (vx, vy, vz) and moment
// (mx, my, mz).
func NewLine3D(vx, vy, vz, mx, my, mz float64) Line3D {
	return Line3D{
		V: Vector3D{X: vx, Y: vy, Z: vz},
		M: Bivector3D{X: mx, Y: my, Z: mz},
	}
}

// MakeLine returns the line through the points p and q, directed from p
// toward q. The moment is p × q.
func MakeLine(p, q Point3D) Line3D {
	return Line3D{
		V: q.Sub(p),
		M: Bivector3D{
			X: p.Y*q.Z - p.Z*q.Y,
			Y: p.Z*q.X - p.X*q.Z,
			Z: p.X*q.Y - p.Y*q.X,
		},
	}
}

// MakeLineDirection returns the line through the point p with direction v.
func MakeLineDirection(p Point3D, v Vector3D) Line3D {
	return Line3D{
		V: v,
		M: Bivector3D{
			X: p.Y*v.Z - p.Z*v.Y,
			Y: p.Z*v.X - p.X*v.Z,
			Z: p.X*v.Y - p.Y*v.X,
		},
	}
}

// Scale returns l with both direction and moment scaled by s.
func (l Line3D) Scale(s float64) Line3D {
	return Line3D{V: l.V.Scale(s), M: l.M.Scale(s)}
}

// Neg returns l with reversed orientation.
func (l Line3D) Neg() Line3D { return Line3D{V: l.V.Neg(), M: l.M.Neg()} }

// Unitize returns l scaled so that its direction has unit length.
//
// Precondition: the direction of l must be nonzero.
func (l Line3D) Unitize() Line3D {
	return l.Scale(InverseSqrt(l.V.Dot(l.V)))
}
