package flector

import "github.com/katalvlaran/pga3d/primitive"

// Sandwich transforms x' = F ⟇ x ⟇ F̰, expanded to closed form per grade.
// Every function below requires f to be unitized.

// TransformVector3D applies f to a direction. Directions ignore the
// positional bulk of f entirely: only the reflection/rotation part acts.
//
// Precondition: f must be unitized.
func (f Flector3D) TransformVector3D(v primitive.Vector3D) primitive.Vector3D {
	gx2, gy2, gz2, pw2 := f.G.X*f.G.X, f.G.Y*f.G.Y, f.G.Z*f.G.Z, f.P.W*f.P.W
	return primitive.Vector3D{
		X: (-gx2+gy2+gz2-pw2)*v.X +
			2*(-f.G.X*f.G.Y*v.Y-f.G.X*f.G.Z*v.Z-f.G.Y*f.P.W*v.Z+f.G.Z*f.P.W*v.Y),
		Y: (gx2-gy2+gz2-pw2)*v.Y +
			2*(-f.G.X*f.G.Y*v.X+f.G.X*f.P.W*v.Z-f.G.Y*f.G.Z*v.Z-f.G.Z*f.P.W*v.X),
		Z: (gx2+gy2-gz2-pw2)*v.Z +
			2*(-f.G.X*f.G.Z*v.X-f.G.X*f.P.W*v.Y-f.G.Y*f.G.Z*v.Y+f.G.Y*f.P.W*v.X),
	}
}

// TransformBivector3D applies f to a bivector. The dual axis transforms by
// the same linear map as a direction.
//
// Precondition: f must be unitized.
func (f Flector3D) TransformBivector3D(b primitive.Bivector3D) primitive.Bivector3D {
	v := f.TransformVector3D(primitive.Vector3D{X: b.X, Y: b.Y, Z: b.Z})
	return primitive.Bivector3D{X: v.X, Y: v.Y, Z: v.Z}
}

// TransformVector4D applies f to a homogeneous vector. The weight is
// preserved; for w = 0 this reduces to TransformVector3D.
//
// Precondition: f must be unitized.
func (f Flector3D) TransformVector4D(v primitive.Vector4D) primitive.Vector4D {
	lin := f.TransformVector3D(primitive.Vector3D{X: v.X, Y: v.Y, Z: v.Z})
	w := v.W
	return primitive.Vector4D{
		X: lin.X + 2*w*(-f.G.W*f.G.X+f.G.Y*f.P.Z-f.G.Z*f.P.Y+f.P.W*f.P.X),
		Y: lin.Y + 2*w*(-f.G.W*f.G.Y-f.G.X*f.P.Z+f.G.Z*f.P.X+f.P.W*f.P.Y),
		Z: lin.Z + 2*w*(-f.G.W*f.G.Z+f.G.X*f.P.Y-f.G.Y*f.P.X+f.P.W*f.P.Z),
		W: w,
	}
}

// TransformPoint3D applies f to a point.
//
// Precondition: f must be unitized.
func (f Flector3D) TransformPoint3D(p primitive.Point3D) primitive.Point3D {
	h := f.TransformVector4D(p.Vector4D())
	return primitive.Point3D{X: h.X, Y: h.Y, Z: h.Z}
}

// TransformLine3D applies f to a line. The direction picks up the opposite
// sign convention from a plane normal; the moment mixes direction, moment,
// and the positional bulk of f. An improper isometry reverses a line's
// orientation: the image of the line from p to q is the same set of points
// as the line from f(p) to f(q), but directed from f(q) toward f(p).
//
// Precondition: f must be unitized.
func (f Flector3D) TransformLine3D(l primitive.Line3D) primitive.Line3D {
	gx, gy, gz, gw := f.G.X, f.G.Y, f.G.Z, f.G.W
	px, py, pz, pw := f.P.X, f.P.Y, f.P.Z, f.P.W
	gx2, gy2, gz2, pw2 := gx*gx, gy*gy, gz*gz, pw*pw
	vx, vy, vz := l.V.X, l.V.Y, l.V.Z
	mx, my, mz := l.M.X, l.M.Y, l.M.Z

	return primitive.Line3D{
		V: primitive.Vector3D{
			X: (gx2-gy2-gz2+pw2)*vx +
				2*(gx*gy*vy+gx*gz*vz+gy*pw*vz-gz*pw*vy),
			Y: (-gx2+gy2-gz2+pw2)*vy +
				2*(gx*gy*vx-gx*pw*vz+gy*gz*vz+gz*pw*vx),
			Z: (-gx2-gy2+gz2+pw2)*vz +
				2*(gx*gz*vx+gx*pw*vy+gy*gz*vy-gy*pw*vx),
		},
		M: primitive.Bivector3D{
			X: (-gx2+gy2+gz2-pw2)*mx +
				2*(gw*gy*vz-gw*gz*vy+gw*pw*vx-gx*gy*my-gx*gz*mz+
					gx*px*vx+gx*py*vy+gx*pz*vz-gy*pw*mz+gy*px*vy-gy*py*vx+
					gz*pw*my+gz*px*vz-gz*pz*vx+pw*py*vz-pw*pz*vy),
			Y: (gx2-gy2+gz2-pw2)*my +
				2*(-gw*gx*vz+gw*gz*vx+gw*pw*vy-gx*gy*mx+gx*pw*mz-
					gx*px*vy+gx*py*vx-gy*gz*mz+gy*px*vx+gy*py*vy+gy*pz*vz-
					gz*pw*mx+gz*py*vz-gz*pz*vy-pw*px*vz+pw*pz*vx),
			Z: (gx2+gy2-gz2-pw2)*mz +
				2*(gw*gx*vy-gw*gy*vx+gw*pw*vz-gx*gz*mx-gx*pw*my-
					gx*px*vz+gx*pz*vx-gy*gz*my+gy*pw*mx-gy*py*vz+gy*pz*vy+
					gz*px*vx+gz*py*vy+gz*pz*vz+pw*px*vy-pw*py*vx),
		},
	}
}

// TransformPlane3D applies f to a plane. The normal transforms with the
// sign opposite to a direction, and the offset mixes the full bulk of f.
//
// Precondition: f must be unitized.
func (f Flector3D) TransformPlane3D(g primitive.Plane3D) primitive.Plane3D {
	fgx, fgy, fgz, fgw := f.G.X, f.G.Y, f.G.Z, f.G.W
	px, py, pz, pw := f.P.X, f.P.Y, f.P.Z, f.P.W
	gx2, gy2, gz2, pw2 := fgx*fgx, fgy*fgy, fgz*fgz, pw*pw
	x, y, z, w := g.X, g.Y, g.Z, g.W

	return primitive.Plane3D{
		X: (gx2-gy2-gz2+pw2)*x +
			2*(fgx*fgy*y+fgx*fgz*z+fgy*pw*z-fgz*pw*y),
		Y: (-gx2+gy2-gz2+pw2)*y +
			2*(fgx*fgy*x-fgx*pw*z+fgy*fgz*z+fgz*pw*x),
		Z: (-gx2-gy2+gz2+pw2)*z +
			2*(fgx*fgz*x+fgx*pw*y+fgy*fgz*y-fgy*pw*x),
		W: -(gx2+gy2+gz2+pw2)*w +
			2*(fgw*fgx*x+fgw*fgy*y+fgw*fgz*z+
				fgx*py*z-fgx*pz*y-fgy*px*z+fgy*pz*x+fgz*px*y-fgz*py*x-
				pw*px*x-pw*py*y-pw*pz*z),
	}
}
