package flector_test

import (
	"testing"

	"github.com/katalvlaran/pga3d/flector"
	"github.com/katalvlaran/pga3d/motor"
	"github.com/katalvlaran/pga3d/primitive"
)

var (
	benchA = flector.MakeRotoreflectionLine(0.7,
		primitive.MakeLineDirection(primitive.NewPoint3D(1, 0, -2), primitive.NewVector3D(2, 1, 2).Normalize()),
		primitive.MakePlane(primitive.NewVector3D(0, 3, 4).Normalize(), primitive.NewPoint3D(0, 1, 1)))
	benchB = flector.MakeTransflection(primitive.NewVector3D(1, 2, -3),
		primitive.NewPlane3D(0, 0, 1, 5))
	benchQ = motor.MakeRotation(1.1, primitive.NewBivector3D(0, 1, 0))

	sinkMotor   motor.Motor3D
	sinkFlector flector.Flector3D
	sinkPoint   primitive.Point3D
	sinkLine    primitive.Line3D
)

func BenchmarkMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkMotor = flector.Mul(benchA, benchB)
	}
}

func BenchmarkMulMotor(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkFlector = flector.MulMotor(benchA, benchQ)
	}
}

func BenchmarkTransformPoint3D(b *testing.B) {
	p := primitive.NewPoint3D(1, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkPoint = benchA.TransformPoint3D(p)
	}
}

func BenchmarkTransformLine3D(b *testing.B) {
	l := primitive.MakeLine(primitive.NewPoint3D(0, 1, 2), primitive.NewPoint3D(3, -1, 0))
	for i := 0; i < b.N; i++ {
		sinkLine = benchA.TransformLine3D(l)
	}
}

func BenchmarkGetTransformMatrices(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m, inv := benchA.GetTransformMatrices()
		_ = m
		_ = inv
	}
}
