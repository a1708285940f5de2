package motor_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pga3d/motor"
	"github.com/katalvlaran/pga3d/primitive"
)

const eps = 1e-12

func TestIdentity_LeavesPointsFixed(t *testing.T) {
	p := primitive.NewPoint3D(3, -1, 7)
	assert.Equal(t, p, motor.Identity.TransformPoint(p), "identity must leave points fixed")
}

func TestMakeRotation_QuarterTurnZ(t *testing.T) {
	q := motor.MakeRotation(math.Pi/2, primitive.NewBivector3D(0, 0, 1))
	got := q.TransformPoint(primitive.NewPoint3D(1, 0, 0))

	assert.InDelta(t, 0.0, got.X, eps, "quarter turn must map x-axis to y-axis")
	assert.InDelta(t, 1.0, got.Y, eps, "quarter turn must map x-axis to y-axis")
	assert.InDelta(t, 0.0, got.Z, eps, "rotation about z must not move z")
}

func TestMakeTranslation_MovesPointsNotDirections(t *testing.T) {
	q := motor.MakeTranslation(primitive.NewVector3D(1, 2, 3))

	p := q.TransformPoint(primitive.NewPoint3D(0, 0, 0))
	assert.InDelta(t, 1.0, p.X, eps, "translation must displace points")
	assert.InDelta(t, 2.0, p.Y, eps, "translation must displace points")
	assert.InDelta(t, 3.0, p.Z, eps, "translation must displace points")

	v := q.TransformVector(primitive.NewVector3D(5, 0, 0))
	assert.Equal(t, primitive.Vector3D{X: 5}, v, "translation must leave directions fixed")
}

func TestMakeRotationLine_OffOriginAxis(t *testing.T) {
	// Half turn about the vertical line through (1, 0, 0).
	axis := primitive.MakeLineDirection(primitive.NewPoint3D(1, 0, 0), primitive.UnitZ)
	q := motor.MakeRotationLine(math.Pi, axis)

	got := q.TransformPoint(primitive.NewPoint3D(0, 0, 5))
	assert.InDelta(t, 2.0, got.X, eps, "half turn must mirror x through the axis")
	assert.InDelta(t, 0.0, got.Y, eps, "point on the mirror plane keeps y")
	assert.InDelta(t, 5.0, got.Z, eps, "rotation about a vertical line keeps z")
}

func TestMul_ComposesRightToLeft(t *testing.T) {
	rot := motor.MakeRotation(math.Pi/2, primitive.NewBivector3D(0, 0, 1))
	tra := motor.MakeTranslation(primitive.NewVector3D(1, 0, 0))

	// Translate first, then rotate: (1,0,0) -> (2,0,0) -> (0,2,0).
	q := motor.Mul(rot, tra)
	got := q.TransformPoint(primitive.NewPoint3D(1, 0, 0))
	assert.InDelta(t, 0.0, got.X, eps, "composition must apply the right factor first")
	assert.InDelta(t, 2.0, got.Y, eps, "composition must apply the right factor first")
}

func TestAntireverse_InvertsUnitizedMotor(t *testing.T) {
	axis := primitive.MakeLine(primitive.NewPoint3D(1, 2, 0), primitive.NewPoint3D(1, 2, 4)).Unitize()
	q := motor.MakeRotationLine(0.7, axis)
	qq := motor.Mul(q, q.Antireverse())

	assert.InDelta(t, 1.0, qq.V.W, eps, "motor times its antireverse must be the identity")
	assert.InDelta(t, 0.0, qq.V.X, eps, "motor times its antireverse must be the identity")
	assert.InDelta(t, 0.0, qq.M.X, eps, "motor times its antireverse must be the identity")
	assert.InDelta(t, 0.0, qq.M.W, eps, "motor times its antireverse must be the identity")
}

func TestUnitize_RestoresWeightNorm(t *testing.T) {
	q := motor.MakeRotation(0.9, primitive.NewBivector3D(0, 1, 0))
	scaled := motor.Motor3D{V: q.V.Scale(3), M: q.M.Scale(3)}

	require.InDelta(t, 3.0, scaled.WeightNorm(), eps, "scaling must scale the weight norm")
	u := scaled.Unitize()
	assert.InDelta(t, 1.0, u.WeightNorm(), eps, "unitize must restore a unit weight")
	assert.InDelta(t, q.V.W, u.V.W, eps, "unitize must preserve the represented isometry")
}

func TestGetTransformMatrix_MatchesSandwich(t *testing.T) {
	axis := primitive.MakeLineDirection(primitive.NewPoint3D(0, 1, -2), primitive.NewVector3D(1, 1, 0).Normalize())
	q := motor.Mul(motor.MakeRotationLine(1.1, axis), motor.MakeTranslation(primitive.NewVector3D(0.5, -2, 3)))

	m := q.GetTransformMatrix()
	p := primitive.NewPoint3D(2, -1, 4)
	want := q.TransformPoint(p)
	got := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})

	assert.InDelta(t, want.X, got.X(), 1e-10, "matrix must act on points exactly as the sandwich")
	assert.InDelta(t, want.Y, got.Y(), 1e-10, "matrix must act on points exactly as the sandwich")
	assert.InDelta(t, want.Z, got.Z(), 1e-10, "matrix must act on points exactly as the sandwich")
	assert.InDelta(t, 1.0, got.W(), eps, "matrix must preserve the point weight")
}
