// Package pga3d is a compact toolkit for rigid-body transformations in the
// 3D projective geometric algebra (PGA) — planes, points, lines, and the
// two operator types that move them: motors and flectors.
//
// 🚀 What is pga3d?
//
//	A pure-value, allocation-free library built around one idea:
//	every rigid motion of 3D space is a composition of reflections.
//		• An even number of reflections → a Motor3D (rotation + translation)
//		• An odd number of reflections  → a Flector3D (reflection, transflection, rotoreflection)
//	Both operators act on geometry through the sandwich antiproduct and
//	convert exactly to and from 4×4 homogeneous matrices.
//
// ✨ Why choose pga3d?
//
//   - Closed-form everything — every product and transform is a direct
//     bilinear expansion of the PGA geometric antiproduct table; no generic
//     multivector loops, no allocation, no branching in hot paths
//   - Exact matrix bridge — the inverse transform matrix is computed
//     algebraically at the same cost as the forward matrix, never by
//     numeric inversion
//   - Honest preconditions — operators are plain float64 value types;
//     failure modes are documented caller obligations, not runtime checks
//
// Everything is organized under three subpackages:
//
//	primitive/ — Vector3D, Bivector3D, Point3D, Vector4D, Plane3D, Line3D
//	motor/     — Motor3D: proper isometries (rotations, translations)
//	flector/   — Flector3D: improper isometries (the core of the library)
//
// Quick sketch of the algebra:
//
//	reflect ∘ reflect            = rotate or translate  (flector ⟇ flector → motor)
//	reflect ∘ (rotate+translate) = reflect again        (flector ⟇ motor  → flector)
//
// All types are trivially copiable values. Distinct values may be used from
// any number of goroutines; a single value mutated in place needs external
// synchronization, exactly like any other Go struct.
//
//	go get github.com/katalvlaran/pga3d
package pga3d
