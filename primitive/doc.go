// Package primitive defines the geometric value types that the operator
// packages (motor, flector) act upon: directions, points, planes, and lines
// in the 3D projective geometric algebra.
//
// What & Why:
//
//	The operator algebra needs a small, fixed vocabulary of primitives with
//	known grades — grade-1 points, grade-2 lines, grade-3 planes — plus the
//	handful of scalar helpers (combined cosine/sine, reciprocal square root)
//	that the closed-form operator constructors consume. Each primitive is a
//	plain comparable struct of float64 fields, created and passed by value:
//	no heap allocation, no shared state, no synchronization.
//
// Coordinate conventions (basis elements of the algebra):
//
//	Vector4D / Point3D  —  e1, e2, e3, e4          (w is the projective weight)
//	Plane3D             —  e234, e314, e124, e321  (x,y,z is the normal, w the offset)
//	Line3D              —  direction (e41,e42,e43) + moment (e23,e31,e12)
//
// A primitive whose weight components are all zero lies "at infinity":
// a Vector3D is exactly a Point3D at infinity, and a Bivector3D is the
// axis of a line at infinity.
//
// Complexity: every operation in this package is O(1) arithmetic.
package primitive
