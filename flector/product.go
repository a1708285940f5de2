package flector

import (
	"github.com/katalvlaran/pga3d/motor"
	"github.com/katalvlaran/pga3d/primitive"
)

// Mul returns the geometric antiproduct a ⟇ b of two flectors. Two
// reflections compose into a proper isometry, so the result is a motor: the
// one that applies b first and a second.
func Mul(a, b Flector3D) motor.Motor3D {
	return motor.Motor3D{
		V: primitive.Vector4D{
			X: -a.G.X*b.P.W - a.G.Y*b.G.Z + a.G.Z*b.G.Y - a.P.W*b.G.X,
			Y: a.G.X*b.G.Z - a.G.Y*b.P.W - a.G.Z*b.G.X - a.P.W*b.G.Y,
			Z: -a.G.X*b.G.Y + a.G.Y*b.G.X - a.G.Z*b.P.W - a.P.W*b.G.Z,
			W: a.G.X*b.G.X + a.G.Y*b.G.Y + a.G.Z*b.G.Z - a.P.W*b.P.W,
		},
		M: primitive.Vector4D{
			X: -a.G.W*b.G.X + a.G.X*b.G.W + a.G.Y*b.P.Z - a.G.Z*b.P.Y +
				a.P.W*b.P.X - a.P.X*b.P.W - a.P.Y*b.G.Z + a.P.Z*b.G.Y,
			Y: -a.G.W*b.G.Y - a.G.X*b.P.Z + a.G.Y*b.G.W + a.G.Z*b.P.X +
				a.P.W*b.P.Y + a.P.X*b.G.Z - a.P.Y*b.P.W - a.P.Z*b.G.X,
			Z: -a.G.W*b.G.Z + a.G.X*b.P.Y - a.G.Y*b.P.X + a.G.Z*b.G.W +
				a.P.W*b.P.Z - a.P.X*b.G.Y + a.P.Y*b.G.X - a.P.Z*b.P.W,
			W: -a.G.W*b.P.W - a.G.X*b.P.X - a.G.Y*b.P.Y - a.G.Z*b.P.Z +
				a.P.W*b.G.W + a.P.X*b.G.X + a.P.Y*b.G.Y + a.P.Z*b.G.Z,
		},
	}
}

// MulMotor returns the geometric antiproduct a ⟇ b of a flector and a
// motor. An odd operator times an even one stays odd, so the result is the
// flector that applies b first and a second.
func MulMotor(a Flector3D, b motor.Motor3D) Flector3D {
	return Flector3D{
		P: primitive.Vector4D{
			X: a.G.W*b.V.X - a.G.X*b.M.W - a.G.Y*b.M.Z + a.G.Z*b.M.Y -
				a.P.W*b.M.X + a.P.X*b.V.W + a.P.Y*b.V.Z - a.P.Z*b.V.Y,
			Y: a.G.W*b.V.Y + a.G.X*b.M.Z - a.G.Y*b.M.W - a.G.Z*b.M.X -
				a.P.W*b.M.Y - a.P.X*b.V.Z + a.P.Y*b.V.W + a.P.Z*b.V.X,
			Z: a.G.W*b.V.Z - a.G.X*b.M.Y + a.G.Y*b.M.X - a.G.Z*b.M.W -
				a.P.W*b.M.Z + a.P.X*b.V.Y - a.P.Y*b.V.X + a.P.Z*b.V.W,
			W: -a.G.X*b.V.X - a.G.Y*b.V.Y - a.G.Z*b.V.Z + a.P.W*b.V.W,
		},
		G: primitive.Plane3D{
			X: a.G.X*b.V.W + a.G.Y*b.V.Z - a.G.Z*b.V.Y + a.P.W*b.V.X,
			Y: -a.G.X*b.V.Z + a.G.Y*b.V.W + a.G.Z*b.V.X + a.P.W*b.V.Y,
			Z: a.G.X*b.V.Y - a.G.Y*b.V.X + a.G.Z*b.V.W + a.P.W*b.V.Z,
			W: a.G.W*b.V.W + a.G.X*b.M.X + a.G.Y*b.M.Y + a.G.Z*b.M.Z -
				a.P.W*b.M.W - a.P.X*b.V.X - a.P.Y*b.V.Y - a.P.Z*b.V.Z,
		},
	}
}

// MotorMul returns the geometric antiproduct a ⟇ b of a motor and a
// flector: the flector that applies b first and a second.
func MotorMul(a motor.Motor3D, b Flector3D) Flector3D {
	return Flector3D{
		P: primitive.Vector4D{
			X: a.M.W*b.G.X + a.M.X*b.P.W + a.M.Y*b.G.Z - a.M.Z*b.G.Y +
				a.V.W*b.P.X + a.V.X*b.G.W + a.V.Y*b.P.Z - a.V.Z*b.P.Y,
			Y: a.M.W*b.G.Y - a.M.X*b.G.Z + a.M.Y*b.P.W + a.M.Z*b.G.X +
				a.V.W*b.P.Y - a.V.X*b.P.Z + a.V.Y*b.G.W + a.V.Z*b.P.X,
			Z: a.M.W*b.G.Z + a.M.X*b.G.Y - a.M.Y*b.G.X + a.M.Z*b.P.W +
				a.V.W*b.P.Z + a.V.X*b.P.Y - a.V.Y*b.P.X + a.V.Z*b.G.W,
			W: a.V.W*b.P.W - a.V.X*b.G.X - a.V.Y*b.G.Y - a.V.Z*b.G.Z,
		},
		G: primitive.Plane3D{
			X: a.V.W*b.G.X + a.V.X*b.P.W + a.V.Y*b.G.Z - a.V.Z*b.G.Y,
			Y: a.V.W*b.G.Y - a.V.X*b.G.Z + a.V.Y*b.P.W + a.V.Z*b.G.X,
			Z: a.V.W*b.G.Z + a.V.X*b.G.Y - a.V.Y*b.G.X + a.V.Z*b.P.W,
			W: a.M.W*b.P.W - a.M.X*b.G.X - a.M.Y*b.G.Y - a.M.Z*b.G.Z +
				a.V.W*b.G.W - a.V.X*b.P.X - a.V.Y*b.P.Y - a.V.Z*b.P.Z,
		},
	}
}
