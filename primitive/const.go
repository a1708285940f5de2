package primitive

// Canonical directions, axes, and coordinate planes. All are unitized.
var (
	// Origin is the point (0, 0, 0).
	Origin = Point3D{}

	// UnitX, UnitY, UnitZ are the coordinate directions.
	UnitX = Vector3D{X: 1}
	UnitY = Vector3D{Y: 1}
	UnitZ = Vector3D{Z: 1}

	// AxisX, AxisY, AxisZ are the coordinate axes as lines through the origin.
	AxisX = Line3D{V: Vector3D{X: 1}}
	AxisY = Line3D{V: Vector3D{Y: 1}}
	AxisZ = Line3D{V: Vector3D{Z: 1}}

	// PlaneYZ, PlaneZX, PlaneXY are the coordinate planes through the origin,
	// each normal to the axis it omits.
	PlaneYZ = Plane3D{X: 1}
	PlaneZX = Plane3D{Y: 1}
	PlaneXY = Plane3D{Z: 1}

	// Horizon is the plane at infinity.
	Horizon = Plane3D{W: 1}
)
