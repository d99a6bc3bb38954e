package lazysets

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LazySet is the capability interface every set representation implements.
//
// A LazySet answers queries about a convex set without materializing an
// explicit geometric description. Implementations are immutable after
// construction and safe for concurrent use.
type LazySet interface {
	// Dim returns the ambient dimension of the set. It is constant for the
	// lifetime of the value.
	Dim() int

	// SupportFunction returns sup_{x ∈ S} d·x for a direction d of length
	// Dim. It may return math.Inf(1) for unbounded sets, and is exactly 0
	// when d is the zero vector regardless of boundedness.
	SupportFunction(d mat.Vector) (float64, error)

	// SupportVector returns a point achieving (or approaching, for unbounded
	// sets) the supremum of d·x over the set. Individual coordinates may be
	// ±Inf when the supremum is attained along unbounded directions.
	SupportVector(d mat.Vector) (*mat.VecDense, error)

	// Contains reports whether x belongs to the set. It returns
	// ErrDimensionMismatch when len(x) differs from Dim.
	Contains(x mat.Vector) (bool, error)

	// AnElement returns a witness point of the set. Whenever the set is
	// non-empty, Contains(AnElement()) is true.
	AnElement() (*mat.VecDense, error)

	// IsEmpty reports whether the set is empty.
	IsEmpty() bool

	// IsBounded reports whether the set is bounded.
	IsBounded() bool

	// IsUniversal reports whether the set is the whole ambient space.
	IsUniversal() bool
}

// HalfSpace is a linear constraint A·x ≤ B.
type HalfSpace struct {
	A *mat.VecDense
	B float64
}

// VertexEnumerable is the polyhedral capability of producing a finite vertex
// list. New set variants gain vertex-based algorithms (vertex mapping, convex
// hull pruning, concretization) by implementing it.
type VertexEnumerable interface {
	// VerticesList returns the vertices of the set. The order is
	// unspecified.
	VerticesList() ([]*mat.VecDense, error)
}

// ConstraintEnumerable is the polyhedral capability of producing a finite
// half-space constraint list.
type ConstraintEnumerable interface {
	// ConstraintsList returns half-space constraints whose intersection is
	// the set. The list is empty for an unconstrained set.
	ConstraintsList() ([]HalfSpace, error)
}

// checkDim returns ErrDimensionMismatch when got differs from want.
func checkDim(want, got int) error {
	if want != got {
		return fmt.Errorf("%w: expected dimension %d, got %d", ErrDimensionMismatch, want, got)
	}
	return nil
}
