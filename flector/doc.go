// Package flector implements the Flector3D operator: the improper isometries
// of 3D space (reflections, transflections, and rotoreflections) in the
// projective geometric algebra.
//
// What & Why:
//
//	Where a motor carries the orientation-preserving rigid motions, a
//	flector carries the orientation-reversing ones — every isometry with
//	determinant −1 is exactly one flector (up to sign). A flector is an
//	eight-scalar odd-grade operator: a grade-1 point part P plus a grade-3
//	plane part G. The simplest flectors are a pure plane (a mirror
//	reflection) and a pure point (an inversion through that point).
//
// Storage:
//
//	P — e1, e2, e3, e4          (point part; bulk is x,y,z and weight is w)
//	G — e234, e314, e124, e321  (plane part; weight is x,y,z and bulk is w)
//
// A flector is unitized when P.W² + G.X² + G.Y² + G.Z² = 1; only unitized
// flectors are isometries, and factories and composition of unitized inputs
// always yield unitized outputs.
//
// Composition is closed-form and parity-typed: two flectors multiply into a
// motor, and a flector on either side of a motor is again a flector.
// Geometry moves through the sandwich x' = F ⟇ x ⟇ F̰ (Transform methods),
// or through an equivalent 4×4 matrix (matrix bridge, see matrix.go).
//
// ✨ No operation in this package returns an error: non-finite or
// non-unitized inputs produce non-finite or non-unitized outputs, and each
// operation documents its preconditions instead.
//
// Complexity: every operation is O(1) arithmetic; values are plain structs
// safe for concurrent read.
package flector
