package flector

import "github.com/katalvlaran/pga3d/primitive"

// MakeTransflection returns the flector that reflects through the plane g
// and then translates by offset. The offset component parallel to the
// normal of g folds into the plane placement; only the in-plane component
// produces a glide.
//
// Precondition: g must be unitized.
func MakeTransflection(offset primitive.Vector3D, g primitive.Plane3D) Flector3D {
	return Flector3D{
		P: primitive.Vector4D{
			X: (offset.Y*g.Z - offset.Z*g.Y) * 0.5,
			Y: (offset.Z*g.X - offset.X*g.Z) * 0.5,
			Z: (offset.X*g.Y - offset.Y*g.X) * 0.5,
		},
		G: primitive.Plane3D{
			X: g.X,
			Y: g.Y,
			Z: g.Z,
			W: g.W - (offset.X*g.X+offset.Y*g.Y+offset.Z*g.Z)*0.5,
		},
	}
}

// MakeRotoreflection returns the flector that reflects through the plane g
// and then rotates by angle radians about the axis direction through the
// origin.
//
// Precondition: axis and g must be unitized.
func MakeRotoreflection(angle float64, axis primitive.Bivector3D, g primitive.Plane3D) Flector3D {
	c, s := primitive.CosSin(angle * 0.5)
	vx, vy, vz := axis.X*s, axis.Y*s, axis.Z*s
	return Flector3D{
		P: primitive.Vector4D{
			X: vx * g.W,
			Y: vy * g.W,
			Z: vz * g.W,
			W: -(vx*g.X + vy*g.Y + vz*g.Z),
		},
		G: primitive.Plane3D{
			X: c*g.X + vy*g.Z - vz*g.Y,
			Y: c*g.Y + vz*g.X - vx*g.Z,
			Z: c*g.Z + vx*g.Y - vy*g.X,
			W: c * g.W,
		},
	}
}

// MakeRotoreflectionLine returns the flector that reflects through the
// plane g and then rotates by angle radians about an arbitrary line.
//
// Precondition: axis and g must be unitized.
func MakeRotoreflectionLine(angle float64, axis primitive.Line3D, g primitive.Plane3D) Flector3D {
	c, s := primitive.CosSin(angle * 0.5)
	vx, vy, vz := axis.V.X*s, axis.V.Y*s, axis.V.Z*s
	mx, my, mz := axis.M.X*s, axis.M.Y*s, axis.M.Z*s
	return Flector3D{
		P: primitive.Vector4D{
			X: vx*g.W + my*g.Z - mz*g.Y,
			Y: vy*g.W + mz*g.X - mx*g.Z,
			Z: vz*g.W + mx*g.Y - my*g.X,
			W: -(vx*g.X + vy*g.Y + vz*g.Z),
		},
		G: primitive.Plane3D{
			X: c*g.X + vy*g.Z - vz*g.Y,
			Y: c*g.Y + vz*g.X - vx*g.Z,
			Z: c*g.Z + vx*g.Y - vy*g.X,
			W: c*g.W - (mx*g.X + my*g.Y + mz*g.Z),
		},
	}
}
