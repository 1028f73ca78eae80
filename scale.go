package isometry

type scalable[T any] interface {
	MulScalar(s float64) T
}

// Scale returns s·x. It is the scalar-on-the-left form of x.MulScalar(s) for
// both Vector3 and Matrix3, and always equals it.
func Scale[T scalable[T]](s float64, x T) T { return x.MulScalar(s) }
