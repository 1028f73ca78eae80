package isometry

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by checked indexed access when the index is
// not 0, 1 or 2.
var ErrIndexOutOfRange = errors.New("isometry: index out of range")

func checkIndex(i int) error {
	if i < 0 || i > 2 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return nil
}
