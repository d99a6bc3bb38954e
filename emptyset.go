package lazysets

import (
	"gonum.org/v1/gonum/mat"
)

// EmptySet is the empty set of a given dimension. It is absorbing under
// every map in this package.
type EmptySet struct {
	dim int
}

// NewEmptySet returns the empty set of the given dimension. It panics if dim
// is negative.
func NewEmptySet(dim int) *EmptySet {
	if dim < 0 {
		panic("lazysets: negative dimension")
	}
	return &EmptySet{dim: dim}
}

// Dim returns the ambient dimension.
func (e *EmptySet) Dim() int { return e.dim }

// SupportFunction returns ErrEmptySet; the supremum over the empty set is
// undefined.
func (e *EmptySet) SupportFunction(d mat.Vector) (float64, error) {
	if err := checkDim(e.dim, d.Len()); err != nil {
		return 0, err
	}
	return 0, ErrEmptySet
}

// SupportVector returns ErrEmptySet.
func (e *EmptySet) SupportVector(d mat.Vector) (*mat.VecDense, error) {
	if err := checkDim(e.dim, d.Len()); err != nil {
		return nil, err
	}
	return nil, ErrEmptySet
}

// Contains reports false for every point of matching dimension.
func (e *EmptySet) Contains(x mat.Vector) (bool, error) {
	if err := checkDim(e.dim, x.Len()); err != nil {
		return false, err
	}
	return false, nil
}

// AnElement returns ErrEmptySet; there is no witness.
func (e *EmptySet) AnElement() (*mat.VecDense, error) {
	return nil, ErrEmptySet
}

// IsEmpty returns true.
func (e *EmptySet) IsEmpty() bool { return true }

// IsBounded returns true.
func (e *EmptySet) IsBounded() bool { return true }

// IsUniversal returns false.
func (e *EmptySet) IsUniversal() bool { return false }

// VerticesList returns the empty vertex list.
func (e *EmptySet) VerticesList() ([]*mat.VecDense, error) {
	return []*mat.VecDense{}, nil
}
