package lazysets

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/mat"
)

// Universe is the set of all points of a given dimension. It carries no
// geometric data beyond its dimension.
type Universe struct {
	dim int
}

// NewUniverse returns the universal set of the given dimension. It panics if
// dim is negative.
func NewUniverse(dim int) *Universe {
	if dim < 0 {
		panic("lazysets: negative dimension")
	}
	return &Universe{dim: dim}
}

// Dim returns the ambient dimension.
func (u *Universe) Dim() int { return u.dim }

// SupportFunction returns 0 for the zero direction and +Inf otherwise; the
// universe is unbounded in every non-trivial direction.
func (u *Universe) SupportFunction(d mat.Vector) (float64, error) {
	if err := checkDim(u.dim, d.Len()); err != nil {
		return 0, err
	}
	for i := 0; i < d.Len(); i++ {
		if d.AtVec(i) != 0 {
			return math.Inf(1), nil
		}
	}
	return 0, nil
}

// SupportVector returns, componentwise, 0 where d_i = 0, +Inf where d_i > 0
// and -Inf where d_i < 0.
func (u *Universe) SupportVector(d mat.Vector) (*mat.VecDense, error) {
	if err := checkDim(u.dim, d.Len()); err != nil {
		return nil, err
	}
	v := zeroVec(u.dim)
	for i := 0; i < u.dim; i++ {
		switch di := d.AtVec(i); {
		case di > 0:
			v.SetVec(i, math.Inf(1))
		case di < 0:
			v.SetVec(i, math.Inf(-1))
		}
	}
	return v, nil
}

// Contains reports true for every point of matching dimension.
func (u *Universe) Contains(x mat.Vector) (bool, error) {
	if err := checkDim(u.dim, x.Len()); err != nil {
		return false, err
	}
	return true, nil
}

// AnElement returns the origin.
func (u *Universe) AnElement() (*mat.VecDense, error) {
	return zeroVec(u.dim), nil
}

// IsEmpty returns false.
func (u *Universe) IsEmpty() bool { return false }

// IsBounded returns false.
func (u *Universe) IsBounded() bool { return false }

// IsUniversal returns true.
func (u *Universe) IsUniversal() bool { return true }

// Norm is undefined for an unbounded set and returns ErrUnboundedSet.
func (u *Universe) Norm() (float64, error) { return 0, ErrUnboundedSet }

// Radius is undefined for an unbounded set and returns ErrUnboundedSet.
func (u *Universe) Radius() (float64, error) { return 0, ErrUnboundedSet }

// Diameter is undefined for an unbounded set and returns ErrUnboundedSet.
func (u *Universe) Diameter() (float64, error) { return 0, ErrUnboundedSet }

// Translate returns the universe unchanged; translating an everything-set is
// a no-op. The translation vector is still dimension-checked.
func (u *Universe) Translate(v mat.Vector) (*Universe, error) {
	if err := checkDim(u.dim, v.Len()); err != nil {
		return nil, err
	}
	return u, nil
}

// InverseLinearMapOf returns the universe of dimension cols(minv); mapping
// the universe under any linear map yields the universe of the image
// dimension.
func (u *Universe) InverseLinearMapOf(minv *mat.Dense) (*Universe, error) {
	r, c := minv.Dims()
	if err := checkDim(u.dim, r); err != nil {
		return nil, err
	}
	return NewUniverse(c), nil
}

// ConstraintsList returns the empty constraint list; the universe is
// unconstrained.
func (u *Universe) ConstraintsList() ([]HalfSpace, error) {
	return []HalfSpace{}, nil
}

// ConstrainedDimensions returns the empty index set; no coordinate of the
// universe is constrained.
func (u *Universe) ConstrainedDimensions() *bitset.BitSet {
	return bitset.New(uint(u.dim))
}
