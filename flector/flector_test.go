package flector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pga3d/flector"
	"github.com/katalvlaran/pga3d/primitive"
)

const eps = 1e-12

func TestNew_ComponentOrder(t *testing.T) {
	f := flector.New(1, 2, 3, 4, 5, 6, 7, 8)
	assert.Equal(t, primitive.Vector4D{X: 1, Y: 2, Z: 3, W: 4}, f.P,
		"first four scalars must fill the point part")
	assert.Equal(t, primitive.Plane3D{X: 5, Y: 6, Z: 7, W: 8}, f.G,
		"last four scalars must fill the plane part")
}

func TestFromPlane_ReflectsThroughPlane(t *testing.T) {
	// Mirror through the plane z = 1.
	f := flector.FromPlane(primitive.NewPlane3D(0, 0, 1, -1))

	got := f.TransformPoint3D(primitive.NewPoint3D(2, -3, 4))
	assert.InDelta(t, 2.0, got.X, eps, "mirror must leave in-plane coordinates fixed")
	assert.InDelta(t, -3.0, got.Y, eps, "mirror must leave in-plane coordinates fixed")
	assert.InDelta(t, -2.0, got.Z, eps, "mirror must fold z across the plane z = 1")
}

func TestFromPoint_InvertsThroughPoint(t *testing.T) {
	f := flector.FromPoint(primitive.NewPoint3D(1, 2, 3))

	got := f.TransformPoint3D(primitive.NewPoint3D(4, 4, 4))
	assert.InDelta(t, -2.0, got.X, eps, "inversion must mirror every coordinate through the center")
	assert.InDelta(t, 0.0, got.Y, eps, "inversion must mirror every coordinate through the center")
	assert.InDelta(t, 2.0, got.Z, eps, "inversion must mirror every coordinate through the center")

	center := primitive.NewPoint3D(1, 2, 3)
	assert.Equal(t, center, f.TransformPoint3D(center), "the center must be a fixed point")
}

func TestFromPositionPlane_WidensThePoint(t *testing.T) {
	p := primitive.NewPoint3D(1, -2, 3)
	g := primitive.NewPlane3D(0, 1, 0, 4)

	f := flector.FromPositionPlane(p, g)
	assert.Equal(t, flector.FromPointPlane(p.Vector4D(), g), f,
		"the position form must match the homogeneous form at weight 1")
	assert.Equal(t, 1.0, f.P.W, "the point part must carry weight 1")
	assert.Equal(t, g, f.G, "the plane part must pass through unchanged")
}

func TestSetters_MatchConstructors(t *testing.T) {
	var f flector.Flector3D
	f.SetPlane(primitive.PlaneXY)
	assert.Equal(t, flector.FromPlane(primitive.PlaneXY), f, "SetPlane must match FromPlane")

	p := primitive.NewPoint3D(1, -2, 0)
	f.SetPoint(p)
	assert.Equal(t, flector.FromPoint(p), f, "SetPoint must match FromPoint")

	f.Set(1, 2, 3, 4, 5, 6, 7, 8)
	assert.Equal(t, flector.New(1, 2, 3, 4, 5, 6, 7, 8), f, "Set must match New")
}

func TestScaleDivideTimes(t *testing.T) {
	f := flector.New(1, 2, 3, 4, 5, 6, 7, 8)

	g := f.Times(2)
	assert.Equal(t, flector.New(2, 4, 6, 8, 10, 12, 14, 16), g, "Times must scale every component")
	assert.Equal(t, flector.New(1, 2, 3, 4, 5, 6, 7, 8), f, "Times must not modify the receiver")

	f.Scale(2)
	assert.Equal(t, g, f, "Scale must modify in place")

	f.Divide(2)
	assert.Equal(t, flector.New(1, 2, 3, 4, 5, 6, 7, 8), f, "Divide must undo Scale")
}

func TestNeg_RepresentsSameIsometry(t *testing.T) {
	f := flector.MakeTransflection(primitive.NewVector3D(1, 0, 2), primitive.NewPlane3D(0, 1, 0, -3))
	p := primitive.NewPoint3D(4, 1, -1)

	assert.Equal(t, f.TransformPoint3D(p), f.Neg().TransformPoint3D(p),
		"a flector and its negation must act identically")
}

func TestReverseEqualsAntireverse(t *testing.T) {
	f := flector.New(1, 2, 3, 4, 5, 6, 7, 8)
	assert.Equal(t, f.Antireverse(), f.Reverse(),
		"reverse and antireverse coincide on odd-grade operators")
	assert.Equal(t, flector.New(-1, -2, -3, -4, 5, 6, 7, 8), f.Reverse(),
		"reversal must negate the point part only")
}

func TestNorms(t *testing.T) {
	f := flector.New(1, 2, 2, 3, 0, 4, 0, 4)
	assert.InDelta(t, 5.0, f.BulkNorm(), eps, "bulk norm covers P.X, P.Y, P.Z, G.W")
	assert.InDelta(t, 5.0, f.WeightNorm(), eps, "weight norm covers P.W, G.X, G.Y, G.Z")
}

func TestUnitize_MethodAndFree(t *testing.T) {
	f := flector.New(1, 2, 3, 4, 5, 6, 7, 8)

	u := flector.Unitize(f)
	require.InDelta(t, 1.0, u.WeightNorm(), eps, "free Unitize must yield a unit weight")
	assert.Equal(t, flector.New(1, 2, 3, 4, 5, 6, 7, 8), f, "free Unitize must not modify its argument")

	f.Unitize()
	assert.Equal(t, u, f, "method Unitize must match the free function")

	// Unitization preserves component ratios.
	assert.InDelta(t, u.P.X/u.P.Y, 0.5, eps, "unitize must only rescale")
}

func TestAntireverse_UndoesUnitizedFlector(t *testing.T) {
	f := flector.MakeRotoreflectionLine(0.8,
		primitive.MakeLineDirection(primitive.NewPoint3D(0, 2, 1), primitive.NewVector3D(1, 0, 1).Normalize()),
		primitive.MakePlane(primitive.NewVector3D(0, 1, 0), primitive.NewPoint3D(0, -1, 0)))
	require.InDelta(t, 1.0, f.WeightNorm(), eps, "factory output must be unitized")

	p := primitive.NewPoint3D(3, 1, -2)
	back := f.Antireverse().TransformPoint3D(f.TransformPoint3D(p))
	assert.InDelta(t, p.X, back.X, 1e-10, "antireverse must invert the transform")
	assert.InDelta(t, p.Y, back.Y, 1e-10, "antireverse must invert the transform")
	assert.InDelta(t, p.Z, back.Z, 1e-10, "antireverse must invert the transform")
}

func TestTransform_PreservesDistances(t *testing.T) {
	f := flector.MakeRotoreflection(1.3, primitive.NewBivector3D(0, 1, 0),
		primitive.NewPlane3D(1, 0, 0, -2))

	p := primitive.NewPoint3D(1, 2, 3)
	q := primitive.NewPoint3D(-4, 0, 1)
	d := q.Sub(p).Norm()

	fp, fq := f.TransformPoint3D(p), f.TransformPoint3D(q)
	assert.InDelta(t, d, fq.Sub(fp).Norm(), 1e-10, "an isometry must preserve distances")
}

func TestTransform_ReversesOrientation(t *testing.T) {
	f := flector.MakeRotoreflection(0.6, primitive.NewBivector3D(0, 0, 1), primitive.PlaneXY)

	a := f.TransformVector3D(primitive.UnitX)
	b := f.TransformVector3D(primitive.UnitY)
	c := f.TransformVector3D(primitive.UnitZ)

	// The image frame must be left-handed: the triple product flips sign.
	triple := a.Cross(b).Dot(c)
	assert.InDelta(t, -1.0, triple, 1e-10, "an improper isometry must reverse orientation")
}

func TestWeightNorm_UnitizedEquivalence(t *testing.T) {
	f := flector.MakeTransflection(primitive.NewVector3D(3, -1, 2), primitive.NewPlane3D(0, 0, 1, 5))
	assert.InDelta(t, 1.0, f.WeightNorm(), eps, "transflection of a unitized plane must be unitized")
	assert.InDelta(t, f.WeightNorm(), math.Sqrt(
		f.P.W*f.P.W+f.G.X*f.G.X+f.G.Y*f.G.Y+f.G.Z*f.G.Z), eps,
		"weight norm must match its component definition")
}
