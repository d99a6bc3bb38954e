package lazysets

import (
	"fmt"

	"github.com/lazysets/lazysets/internal/hull"
	"github.com/lazysets/lazysets/logger"
	"gonum.org/v1/gonum/mat"
)

// InverseLinearMap is the lazy set {M⁻¹·x : x ∈ X} for an invertible square
// matrix M, equivalently {y : M·y ∈ X}. The matrix is LU-factorized once at
// construction; every query is answered with linear solves, never an
// explicit inverse, except for the three fallbacks ConstraintsList,
// LinearMapOf and Concretize.
type InverseLinearMap struct {
	m  *mat.Dense
	lu *mat.LU
	x  LazySet
}

// NewInverseLinearMap returns the lazy inverse image of x under m.
//
// Construction simplifies algebraically instead of always allocating a
// wrapper: composing with an inner InverseLinearMap fuses the two matrices
// into one, a ZeroSet operand collapses to a ZeroSet (the origin maps to the
// origin under any linear map), and an EmptySet operand is returned
// unchanged.
//
// The matrix must be square with as many rows as x has dimensions, and is
// checked for invertibility unless WithoutInvertibilityCheck is given.
func NewInverseLinearMap(m *mat.Dense, x LazySet, opts ...MapOption) (LazySet, error) {
	cfg, err := newMapConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("apply option: %w", err)
	}

	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: inverse linear map requires a square matrix, got %dx%d", ErrDimensionMismatch, r, c)
	}
	if err := checkDim(x.Dim(), c); err != nil {
		return nil, err
	}

	var lu mat.LU
	lu.Factorize(m)
	if !cfg.skipInvertibilityCheck {
		cond := lu.Cond()
		if cond > mat.ConditionTolerance {
			return nil, fmt.Errorf("%w: condition number %.3e", ErrNotInvertible, cond)
		}
		log := logger.Logger()
		log.Debug().Float64("cond", cond).Msg("inverse linear map invertibility check")
	}

	if inner, ok := x.(*InverseLinearMap); ok {
		// (M_inner·M)⁻¹ = M⁻¹·M_inner⁻¹, so the two wrappers fuse into one
		// and later queries pay a single solve. Both factors already passed
		// their invertibility checks.
		var prod mat.Dense
		prod.Mul(inner.m, m)
		var plu mat.LU
		plu.Factorize(&prod)
		return &InverseLinearMap{m: &prod, lu: &plu, x: inner.x}, nil
	}

	switch x := x.(type) {
	case *ZeroSet:
		return NewZeroSet(r), nil
	case *EmptySet:
		return x, nil
	}

	mm := mat.DenseCopyOf(m)
	return &InverseLinearMap{m: mm, lu: &lu, x: x}, nil
}

// NewInverseLinearMapScalar returns the lazy inverse image of x under the
// uniform scaling α·I. Scaling by 1 short-circuits and returns x itself with
// no wrapper allocated; any other scalar is promoted to a diagonal matrix
// and handed to NewInverseLinearMap.
func NewInverseLinearMapScalar(alpha float64, x LazySet, opts ...MapOption) (LazySet, error) {
	if alpha == 1 {
		return x, nil
	}
	n := x.Dim()
	if n == 0 {
		// every linear map on a zero-dimensional space is the identity
		return x, nil
	}
	return NewInverseLinearMap(scaleMatrix(alpha, n), x, opts...)
}

// scaleMatrix returns α·I_n.
func scaleMatrix(alpha float64, n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, alpha)
	}
	return d
}

// Dim returns the ambient dimension, rows(M).
func (ilm *InverseLinearMap) Dim() int {
	r, _ := ilm.m.Dims()
	return r
}

// Matrix returns a copy of the map's matrix.
func (ilm *InverseLinearMap) Matrix() *mat.Dense {
	return mat.DenseCopyOf(ilm.m)
}

// Set returns the wrapped set.
func (ilm *InverseLinearMap) Set() LazySet { return ilm.x }

// SupportFunction evaluates ρ(d, M⁻¹·X) = ρ((Mᵗ)⁻¹·d, X): the direction is
// transformed by one transposed solve and the query is delegated to the
// wrapped set.
func (ilm *InverseLinearMap) SupportFunction(d mat.Vector) (float64, error) {
	if err := checkDim(ilm.Dim(), d.Len()); err != nil {
		return 0, err
	}
	z := zeroVec(ilm.Dim())
	if err := ilm.lu.SolveVecTo(z, true, d); err != nil {
		return 0, fmt.Errorf("lazysets: transposed solve: %w", err)
	}
	return ilm.x.SupportFunction(z)
}

// SupportVector evaluates σ(d, M⁻¹·X) = M⁻¹·σ((Mᵗ)⁻¹·d, X) with two solves:
// one for the transformed direction, one to map the wrapped set's support
// vector back. Non-finite coordinates in the wrapped support vector (an
// unbounded wrapped set) do not survive the second solve and surface as NaN.
func (ilm *InverseLinearMap) SupportVector(d mat.Vector) (*mat.VecDense, error) {
	if err := checkDim(ilm.Dim(), d.Len()); err != nil {
		return nil, err
	}
	z := zeroVec(ilm.Dim())
	if err := ilm.lu.SolveVecTo(z, true, d); err != nil {
		return nil, fmt.Errorf("lazysets: transposed solve: %w", err)
	}
	s, err := ilm.x.SupportVector(z)
	if err != nil {
		return nil, err
	}
	y := zeroVec(ilm.Dim())
	if err := ilm.lu.SolveVecTo(y, false, s); err != nil {
		return nil, fmt.Errorf("lazysets: support vector solve: %w", err)
	}
	return y, nil
}

// Contains uses x ∈ M⁻¹·X ⟺ M·x ∈ X: one matrix-vector product and the
// wrapped set's membership test, no solve at all.
func (ilm *InverseLinearMap) Contains(x mat.Vector) (bool, error) {
	if err := checkDim(ilm.Dim(), x.Len()); err != nil {
		return false, err
	}
	v := zeroVec(ilm.Dim())
	v.MulVec(ilm.m, x)
	return ilm.x.Contains(v)
}

// AnElement solves M·y = e for a witness e of the wrapped set.
func (ilm *InverseLinearMap) AnElement() (*mat.VecDense, error) {
	e, err := ilm.x.AnElement()
	if err != nil {
		return nil, err
	}
	y := zeroVec(ilm.Dim())
	if err := ilm.lu.SolveVecTo(y, false, e); err != nil {
		return nil, fmt.Errorf("lazysets: witness solve: %w", err)
	}
	return y, nil
}

// IsEmpty delegates to the wrapped set; an invertible map preserves
// emptiness.
func (ilm *InverseLinearMap) IsEmpty() bool { return ilm.x.IsEmpty() }

// IsBounded delegates to the wrapped set; an invertible map preserves
// boundedness.
func (ilm *InverseLinearMap) IsBounded() bool { return ilm.x.IsBounded() }

// IsUniversal delegates to the wrapped set; an invertible map sends the
// universe to the universe.
func (ilm *InverseLinearMap) IsUniversal() bool { return ilm.x.IsUniversal() }

// VerticesList computes M⁻¹·v for every vertex v of the wrapped set, one
// solve per vertex. With prune set, points made redundant by the transform
// are removed by a convex-hull reduction. The wrapped set must be vertex
// enumerable.
func (ilm *InverseLinearMap) VerticesList(prune bool) ([]*mat.VecDense, error) {
	vx, ok := ilm.x.(VertexEnumerable)
	if !ok {
		return nil, fmt.Errorf("%w: wrapped set %T has no vertex representation", ErrMissingCapability, ilm.x)
	}
	vs, err := vx.VerticesList()
	if err != nil {
		return nil, err
	}
	out := make([]*mat.VecDense, len(vs))
	for i, v := range vs {
		y := zeroVec(ilm.Dim())
		if err := ilm.lu.SolveVecTo(y, false, v); err != nil {
			return nil, fmt.Errorf("lazysets: vertex solve: %w", err)
		}
		out[i] = y
	}
	if prune {
		out = hull.Vertices(out)
	}
	return out, nil
}

// ConstraintsList materializes the explicit inverse once and delegates to
// the forward linear-map constraint transform; expressing the new
// constraint system without the inverse is intractable. The wrapped set
// must be constraint enumerable.
func (ilm *InverseLinearMap) ConstraintsList() ([]HalfSpace, error) {
	if _, ok := ilm.x.(ConstraintEnumerable); !ok {
		return nil, fmt.Errorf("%w: wrapped set %T has no constraint representation", ErrMissingCapability, ilm.x)
	}
	lm, err := ilm.forwardMap()
	if err != nil {
		return nil, err
	}
	ce, ok := lm.(ConstraintEnumerable)
	if !ok {
		return nil, fmt.Errorf("%w: wrapped set %T has no constraint representation", ErrMissingCapability, ilm.x)
	}
	return ce.ConstraintsList()
}

// LinearMapOf returns the forward linear map L·M⁻¹ applied to the wrapped
// set; fusing a forward map with an inverse map collapses to a single
// forward map, at the cost of one explicit inversion.
func (ilm *InverseLinearMap) LinearMapOf(l *mat.Dense) (LazySet, error) {
	_, lc := l.Dims()
	if err := checkDim(ilm.Dim(), lc); err != nil {
		return nil, err
	}
	inv, err := ilm.inverse()
	if err != nil {
		return nil, err
	}
	var prod mat.Dense
	prod.Mul(l, inv)
	return NewLinearMap(&prod, ilm.x)
}

// Concretize materializes the set by inverting M once and concretizing the
// forward linear map of the wrapped set.
func (ilm *InverseLinearMap) Concretize() (LazySet, error) {
	lm, err := ilm.forwardMap()
	if err != nil {
		return nil, err
	}
	return Concretize(lm)
}

// forwardMap rewrites M⁻¹·X as the forward map (M⁻¹)·X with an explicit
// inverse.
func (ilm *InverseLinearMap) forwardMap() (LazySet, error) {
	inv, err := ilm.inverse()
	if err != nil {
		return nil, err
	}
	return NewLinearMap(inv, ilm.x)
}

// inverse computes the explicit inverse of the map's matrix. This is the
// one place the package pays for a dense inversion.
func (ilm *InverseLinearMap) inverse() (*mat.Dense, error) {
	n := ilm.Dim()
	log := logger.Logger()
	log.Debug().Int("dim", n).Msg("materializing explicit matrix inverse")
	var inv mat.Dense
	if err := inv.Inverse(ilm.m); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return nil, fmt.Errorf("%w: %v", ErrNotInvertible, err)
		}
	}
	return &inv, nil
}
