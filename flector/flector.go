package flector

import (
	"math"

	"github.com/katalvlaran/pga3d/primitive"
)

// Flector3D is an improper isometry of 3D space: a reflection through a
// plane, a point inversion, or a compound of a reflection with a rotation or
// translation. P is the grade-1 point part and G the grade-3 plane part.
type Flector3D struct {
	P primitive.Vector4D
	G primitive.Plane3D
}

// New returns the flector with explicit components (px..pw on the point
// part, gx..gw on the plane part).
func New(px, py, pz, pw, gx, gy, gz, gw float64) Flector3D {
	return Flector3D{
		P: primitive.Vector4D{X: px, Y: py, Z: pz, W: pw},
		G: primitive.Plane3D{X: gx, Y: gy, Z: gz, W: gw},
	}
}

// FromPointPlane returns the flector with point part p and plane part g.
func FromPointPlane(p primitive.Vector4D, g primitive.Plane3D) Flector3D {
	return Flector3D{P: p, G: g}
}

// FromPositionPlane returns the flector with the weight-1 point p as its
// point part and g as its plane part.
func FromPositionPlane(p primitive.Point3D, g primitive.Plane3D) Flector3D {
	return Flector3D{P: p.Vector4D(), G: g}
}

// FromPlane returns the mirror reflection through the plane g.
//
// Precondition: g must be unitized for the result to be an isometry.
func FromPlane(g primitive.Plane3D) Flector3D {
	return Flector3D{G: g}
}

// FromPoint returns the inversion through the point p (equivalently, a half
// turn about p combined with a reflection through any plane containing p).
func FromPoint(p primitive.Point3D) Flector3D {
	return Flector3D{P: p.Vector4D()}
}

// Set replaces all eight components of f and returns f for chaining.
func (f *Flector3D) Set(px, py, pz, pw, gx, gy, gz, gw float64) *Flector3D {
	f.P = primitive.Vector4D{X: px, Y: py, Z: pz, W: pw}
	f.G = primitive.Plane3D{X: gx, Y: gy, Z: gz, W: gw}
	return f
}

// SetPointPlane replaces the point and plane parts of f and returns f.
func (f *Flector3D) SetPointPlane(p primitive.Vector4D, g primitive.Plane3D) *Flector3D {
	f.P, f.G = p, g
	return f
}

// SetPlane makes f the mirror reflection through g and returns f.
func (f *Flector3D) SetPlane(g primitive.Plane3D) *Flector3D {
	f.P = primitive.Vector4D{}
	f.G = g
	return f
}

// SetPoint makes f the inversion through p and returns f.
func (f *Flector3D) SetPoint(p primitive.Point3D) *Flector3D {
	f.P = p.Vector4D()
	f.G = primitive.Plane3D{}
	return f
}

// Scale multiplies all eight components of f by s in place and returns f.
func (f *Flector3D) Scale(s float64) *Flector3D {
	f.P = f.P.Scale(s)
	f.G = f.G.Scale(s)
	return f
}

// Divide divides all eight components of f by s in place and returns f.
//
// Precondition: s must be nonzero.
func (f *Flector3D) Divide(s float64) *Flector3D {
	return f.Scale(1.0 / s)
}

// Times returns f scaled by s without modifying f.
func (f Flector3D) Times(s float64) Flector3D {
	return Flector3D{P: f.P.Scale(s), G: f.G.Scale(s)}
}

// Neg returns −f, which represents the same isometry.
func (f Flector3D) Neg() Flector3D {
	return Flector3D{P: f.P.Neg(), G: f.G.Neg()}
}

// Reverse returns the reverse of f. For a flector the reverse and
// antireverse coincide: the point part negates and the plane part is kept.
func (f Flector3D) Reverse() Flector3D {
	return Flector3D{P: f.P.Neg(), G: f.G}
}

// Antireverse returns F̰, the operator undoing f when f is unitized.
func (f Flector3D) Antireverse() Flector3D {
	return Flector3D{P: f.P.Neg(), G: f.G}
}

// BulkNorm returns the magnitude of the bulk of f: the point-part position
// and the plane-part offset. It measures how far the fixed geometry of f
// sits from the origin.
func (f Flector3D) BulkNorm() float64 {
	return math.Sqrt(f.P.X*f.P.X + f.P.Y*f.P.Y + f.P.Z*f.P.Z + f.G.W*f.G.W)
}

// WeightNorm returns the magnitude of the weight of f: the point-part
// weight and the plane-part normal. It is 1 exactly when f is unitized.
func (f Flector3D) WeightNorm() float64 {
	return math.Sqrt(f.P.W*f.P.W + f.G.X*f.G.X + f.G.Y*f.G.Y + f.G.Z*f.G.Z)
}

// Unitize scales f in place so that its weight norm is 1 and returns f.
//
// Precondition: the weight of f must be nonzero.
func (f *Flector3D) Unitize() *Flector3D {
	return f.Scale(primitive.InverseSqrt(
		f.P.W*f.P.W + f.G.X*f.G.X + f.G.Y*f.G.Y + f.G.Z*f.G.Z))
}

// Unitize returns f scaled so that its weight norm is 1, leaving f intact.
//
// Precondition: the weight of f must be nonzero.
func Unitize(f Flector3D) Flector3D {
	return f.Times(primitive.InverseSqrt(
		f.P.W*f.P.W + f.G.X*f.G.X + f.G.Y*f.G.Y + f.G.Z*f.G.Z))
}
