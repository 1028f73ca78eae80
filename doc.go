// Package isometry implements 3D vector and 3x3 matrix values for rotations
// and rigid transforms.
//
// Vector3 and Matrix3 are plain arrays, so they copy by value and can be
// indexed directly:
//
//	m := isometry.Identity
//	m[0][1] = 2
//
// Direct indexing panics on a bad index. The At, Set, Ref, Row, Col, RowRef,
// Element and SetElement accessors check the index and return an error
// matching ErrIndexOutOfRange instead.
//
// Arithmetic follows two conventions that are easy to mix up:
//
//	Add, Sub, Mul, Div    element by element, on both types
//	Dot, Cross            vector products
//	Matrix3.MulVec        matrix-vector product, row i dotted with v
//	Matrix3.MatMul        row-by-column matrix product
//
// Division by zero is not an error: the result carries IEEE-754 infinities or
// NaNs. Equality is approximate, see Tolerance.
//
// Stack composes transforms with save and restore, for nested frames.
package isometry
