package lazysets

import (
	"fmt"

	"github.com/lazysets/lazysets/internal/hull"
	"gonum.org/v1/gonum/mat"
)

// LinearMap is the lazy set {M·x : x ∈ X}. The matrix may be rectangular;
// queries delegate to the wrapped set through transposed directions.
type LinearMap struct {
	m *mat.Dense
	x LazySet
}

// NewLinearMap returns the lazy image of x under m.
//
// Construction simplifies algebraically: nesting two forward maps fuses
// their matrices, mapping an InverseLinearMap collapses to a single forward
// map with matrix M·M_inner⁻¹, a ZeroSet operand yields the ZeroSet of the
// image dimension and an EmptySet operand the EmptySet of the image
// dimension.
func NewLinearMap(m *mat.Dense, x LazySet) (LazySet, error) {
	r, c := m.Dims()
	if err := checkDim(x.Dim(), c); err != nil {
		return nil, err
	}

	if inner, ok := x.(*LinearMap); ok {
		var prod mat.Dense
		prod.Mul(m, inner.m)
		return &LinearMap{m: &prod, x: inner.x}, nil
	}
	if inner, ok := x.(*InverseLinearMap); ok {
		return inner.LinearMapOf(m)
	}

	switch x.(type) {
	case *ZeroSet:
		return NewZeroSet(r), nil
	case *EmptySet:
		return NewEmptySet(r), nil
	}

	return &LinearMap{m: mat.DenseCopyOf(m), x: x}, nil
}

// NewLinearMapScalar returns the lazy image of x under the uniform scaling
// α·I. Scaling by 1 returns x itself with no wrapper allocated; scaling by 0
// collapses to the origin singleton.
func NewLinearMapScalar(alpha float64, x LazySet) (LazySet, error) {
	if alpha == 1 {
		return x, nil
	}
	if alpha == 0 {
		return NewZeroSet(x.Dim()), nil
	}
	n := x.Dim()
	if n == 0 {
		return x, nil
	}
	return NewLinearMap(scaleMatrix(alpha, n), x)
}

// Dim returns the ambient dimension of the image, rows(M).
func (lm *LinearMap) Dim() int {
	r, _ := lm.m.Dims()
	return r
}

// Matrix returns a copy of the map's matrix.
func (lm *LinearMap) Matrix() *mat.Dense {
	return mat.DenseCopyOf(lm.m)
}

// Set returns the wrapped set.
func (lm *LinearMap) Set() LazySet { return lm.x }

// SupportFunction evaluates ρ(d, M·X) = ρ(Mᵗ·d, X).
func (lm *LinearMap) SupportFunction(d mat.Vector) (float64, error) {
	if err := checkDim(lm.Dim(), d.Len()); err != nil {
		return 0, err
	}
	z := zeroVec(lm.x.Dim())
	z.MulVec(lm.m.T(), d)
	return lm.x.SupportFunction(z)
}

// SupportVector evaluates σ(d, M·X) = M·σ(Mᵗ·d, X). Non-finite coordinates
// in the wrapped support vector (an unbounded wrapped set) do not survive
// the product and surface as NaN.
func (lm *LinearMap) SupportVector(d mat.Vector) (*mat.VecDense, error) {
	if err := checkDim(lm.Dim(), d.Len()); err != nil {
		return nil, err
	}
	z := zeroVec(lm.x.Dim())
	z.MulVec(lm.m.T(), d)
	s, err := lm.x.SupportVector(z)
	if err != nil {
		return nil, err
	}
	y := zeroVec(lm.Dim())
	y.MulVec(lm.m, s)
	return y, nil
}

// Contains solves M·y = x and tests the preimage against the wrapped set.
// Membership through a forward map needs the map to be invertible; a
// rectangular or singular matrix is reported as ErrNotInvertible.
func (lm *LinearMap) Contains(x mat.Vector) (bool, error) {
	if err := checkDim(lm.Dim(), x.Len()); err != nil {
		return false, err
	}
	r, c := lm.m.Dims()
	if r != c {
		return false, fmt.Errorf("%w: membership through a %dx%d forward map", ErrNotInvertible, r, c)
	}
	y := zeroVec(c)
	if err := y.SolveVec(lm.m, x); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return false, fmt.Errorf("%w: %v", ErrNotInvertible, err)
		}
	}
	return lm.x.Contains(y)
}

// AnElement maps a witness of the wrapped set forward.
func (lm *LinearMap) AnElement() (*mat.VecDense, error) {
	e, err := lm.x.AnElement()
	if err != nil {
		return nil, err
	}
	y := zeroVec(lm.Dim())
	y.MulVec(lm.m, e)
	return y, nil
}

// IsEmpty delegates to the wrapped set; a linear image is empty exactly when
// the operand is.
func (lm *LinearMap) IsEmpty() bool { return lm.x.IsEmpty() }

// IsBounded delegates to the wrapped set. For an unbounded operand this is
// conservative: a map with a non-trivial kernel can still bound the image.
func (lm *LinearMap) IsBounded() bool { return lm.x.IsBounded() }

// IsUniversal reports whether the wrapped set is universal and the map is a
// square invertible matrix, which sends the whole space onto itself.
func (lm *LinearMap) IsUniversal() bool {
	if !lm.x.IsUniversal() {
		return false
	}
	r, c := lm.m.Dims()
	return r == c && mat.Det(lm.m) != 0
}

// VerticesList maps every vertex of the wrapped set forward. With prune set,
// points made redundant by the transform are removed by a convex-hull
// reduction. The wrapped set must be vertex enumerable.
func (lm *LinearMap) VerticesList(prune bool) ([]*mat.VecDense, error) {
	vx, ok := lm.x.(VertexEnumerable)
	if !ok {
		return nil, fmt.Errorf("%w: wrapped set %T has no vertex representation", ErrMissingCapability, lm.x)
	}
	vs, err := vx.VerticesList()
	if err != nil {
		return nil, err
	}
	out := make([]*mat.VecDense, len(vs))
	for i, v := range vs {
		y := zeroVec(lm.Dim())
		y.MulVec(lm.m, v)
		out[i] = y
	}
	if prune {
		out = hull.Vertices(out)
	}
	return out, nil
}

// ConstraintsList transforms each constraint a·x ≤ b of the wrapped set into
// (M⁻ᵗ·a)·y ≤ b, one transposed solve per constraint. It requires a square
// invertible map and a constraint-enumerable wrapped set.
func (lm *LinearMap) ConstraintsList() ([]HalfSpace, error) {
	cx, ok := lm.x.(ConstraintEnumerable)
	if !ok {
		return nil, fmt.Errorf("%w: wrapped set %T has no constraint representation", ErrMissingCapability, lm.x)
	}
	r, c := lm.m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: constraint transform through a %dx%d forward map", ErrNotInvertible, r, c)
	}
	var lu mat.LU
	lu.Factorize(lm.m)
	if cond := lu.Cond(); cond > mat.ConditionTolerance {
		return nil, fmt.Errorf("%w: condition number %.3e", ErrNotInvertible, cond)
	}

	cs, err := cx.ConstraintsList()
	if err != nil {
		return nil, err
	}
	out := make([]HalfSpace, len(cs))
	for i, hs := range cs {
		a := zeroVec(c)
		if err := lu.SolveVecTo(a, true, hs.A); err != nil {
			return nil, fmt.Errorf("lazysets: constraint solve: %w", err)
		}
		out[i] = HalfSpace{A: a, B: hs.B}
	}
	return out, nil
}

// Concretize materializes the image as an explicit polytope: a VPolytope
// from mapped vertices when the wrapped set enumerates vertices, otherwise
// an HPolytope from transformed constraints.
func (lm *LinearMap) Concretize() (LazySet, error) {
	if _, ok := lm.x.(VertexEnumerable); ok {
		vs, err := lm.VerticesList(true)
		if err != nil {
			return nil, err
		}
		if len(vs) == 0 {
			return NewEmptySet(lm.Dim()), nil
		}
		return NewVPolytope(vs)
	}
	if _, ok := lm.x.(ConstraintEnumerable); ok {
		cs, err := lm.ConstraintsList()
		if err != nil {
			return nil, err
		}
		return NewHPolytope(lm.Dim(), cs)
	}
	return nil, fmt.Errorf("%w: wrapped set %T has no polyhedral representation", ErrMissingCapability, lm.x)
}
