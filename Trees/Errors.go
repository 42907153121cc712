package Trees

import (
	"errors"
	"fmt"
)

// UnsupportedOperationError is returned by operations that the trees declare but
// don't perform. It matches errors.ErrUnsupported.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return "Trees: " + e.Op + " is not supported"
}

func (e *UnsupportedOperationError) Is(target error) bool {
	return target == errors.ErrUnsupported
}

// InvalidSliceError is the panic value of the Build functions when the given slice
// isn't sorted in strictly ascending order. A and B are adjacent values with A>=B.
type InvalidSliceError[T any] struct {
	A, B T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: slice isn't strictly ascending: %v is followed by %v", e.A, e.B)
}
