package lazysets

import (
	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/mat"
)

// ZeroSet is the singleton set containing only the origin.
type ZeroSet struct {
	dim int
}

// NewZeroSet returns the origin singleton of the given dimension. It panics
// if dim is negative.
func NewZeroSet(dim int) *ZeroSet {
	if dim < 0 {
		panic("lazysets: negative dimension")
	}
	return &ZeroSet{dim: dim}
}

// Dim returns the ambient dimension.
func (z *ZeroSet) Dim() int { return z.dim }

// SupportFunction returns 0 for every direction; d·0 = 0.
func (z *ZeroSet) SupportFunction(d mat.Vector) (float64, error) {
	if err := checkDim(z.dim, d.Len()); err != nil {
		return 0, err
	}
	return 0, nil
}

// SupportVector returns the origin for every direction.
func (z *ZeroSet) SupportVector(d mat.Vector) (*mat.VecDense, error) {
	if err := checkDim(z.dim, d.Len()); err != nil {
		return nil, err
	}
	return zeroVec(z.dim), nil
}

// Contains reports whether x is the origin.
func (z *ZeroSet) Contains(x mat.Vector) (bool, error) {
	if err := checkDim(z.dim, x.Len()); err != nil {
		return false, err
	}
	for i := 0; i < x.Len(); i++ {
		if x.AtVec(i) != 0 {
			return false, nil
		}
	}
	return true, nil
}

// AnElement returns the origin.
func (z *ZeroSet) AnElement() (*mat.VecDense, error) {
	return zeroVec(z.dim), nil
}

// IsEmpty returns false.
func (z *ZeroSet) IsEmpty() bool { return false }

// IsBounded returns true.
func (z *ZeroSet) IsBounded() bool { return true }

// IsUniversal returns false.
func (z *ZeroSet) IsUniversal() bool { return false }

// Norm returns 0; the origin is the only point.
func (z *ZeroSet) Norm() (float64, error) { return 0, nil }

// Radius returns 0.
func (z *ZeroSet) Radius() (float64, error) { return 0, nil }

// Diameter returns 0.
func (z *ZeroSet) Diameter() (float64, error) { return 0, nil }

// VerticesList returns the origin as the only vertex.
func (z *ZeroSet) VerticesList() ([]*mat.VecDense, error) {
	return []*mat.VecDense{zeroVec(z.dim)}, nil
}

// ConstraintsList returns the constraints e_i·x ≤ 0 and -e_i·x ≤ 0 for every
// coordinate, pinning each coordinate to zero.
func (z *ZeroSet) ConstraintsList() ([]HalfSpace, error) {
	cs := make([]HalfSpace, 0, 2*z.dim)
	for i := 0; i < z.dim; i++ {
		pos := zeroVec(z.dim)
		pos.SetVec(i, 1)
		neg := zeroVec(z.dim)
		neg.SetVec(i, -1)
		cs = append(cs, HalfSpace{A: pos}, HalfSpace{A: neg})
	}
	return cs, nil
}

// ConstrainedDimensions returns the full index set; every coordinate is
// pinned.
func (z *ZeroSet) ConstrainedDimensions() *bitset.BitSet {
	b := bitset.New(uint(z.dim))
	for i := 0; i < z.dim; i++ {
		b.Set(uint(i))
	}
	return b
}
