// Package motor implements the Motor3D operator: the proper isometries of
// 3D space (rotations, translations, and screw motions) in the projective
// geometric algebra.
//
// What & Why:
//
//	A motor is an eight-scalar even-grade operator, the geometric-algebra
//	counterpart of a dual quaternion. It composes by a closed-form product
//	and moves geometry through the sandwich x' = Q ⟇ x ⟇ Q̰. This package
//	carries the minimal motor surface that reflection operators compose
//	with: two reflections multiply into a motor, and a motor times a
//	reflection is again a reflection (see the flector package).
//
// Storage:
//
//	V — e41, e42, e43, e1234  (weight: rotation axis direction and scalar-like part)
//	M — e23, e31, e12, 1      (bulk: moment and true scalar)
//
// The identity motor is V = (0,0,0,1), M = (0,0,0,0). A motor is unitized
// when ‖V‖ = 1; only unitized motors are isometries.
//
// Composition order follows matrix convention: Mul(b, a) applies a first
// and b second.
//
// Complexity: every operation is O(1) arithmetic; values are plain structs
// safe for concurrent read.
package motor
