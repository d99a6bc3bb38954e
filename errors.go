package lazysets

import "errors"

var (
	// ErrDimensionMismatch is returned when an operand's dimension disagrees
	// with the dimension expected by the operation.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNotInvertible is returned at construction of an inverse linear map
	// when the supplied matrix fails the invertibility check.
	ErrNotInvertible = errors.New("matrix is not invertible")

	// ErrUnboundedSet is returned by norm, radius and diameter queries on an
	// unbounded set; no finite enclosing ball exists.
	ErrUnboundedSet = errors.New("set is unbounded")

	// ErrEmptySet is returned by queries that have no answer on an empty set,
	// such as support functions and witness elements.
	ErrEmptySet = errors.New("set is empty")

	// ErrMissingCapability is returned when a polyhedral-only operation is
	// invoked on a wrapped set that exposes neither a vertex nor a constraint
	// representation.
	ErrMissingCapability = errors.New("set does not expose the required polyhedral capability")
)
