package lazysets

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// lpTol is the pivot tolerance handed to the simplex solver and the slack
// allowed when testing membership against LP-produced points.
const lpTol = 1e-9

// HPolytope is a polyhedron in constraint representation: the intersection
// of finitely many half-spaces A·x ≤ b. It may be unbounded or empty.
type HPolytope struct {
	dim         int
	constraints []HalfSpace
}

// NewHPolytope returns the intersection of the given half-spaces in the
// given ambient dimension. An empty constraint list yields the universe of
// that dimension in constraint form.
func NewHPolytope(dim int, constraints []HalfSpace) (*HPolytope, error) {
	if dim < 0 {
		return nil, fmt.Errorf("%w: negative dimension %d", ErrDimensionMismatch, dim)
	}
	cs := make([]HalfSpace, len(constraints))
	for i, c := range constraints {
		if err := checkDim(dim, c.A.Len()); err != nil {
			return nil, err
		}
		cs[i] = HalfSpace{A: cloneVec(c.A), B: c.B}
	}
	return &HPolytope{dim: dim, constraints: cs}, nil
}

// Dim returns the ambient dimension.
func (p *HPolytope) Dim() int { return p.dim }

// solve maximizes d·x over the polyhedron. It returns lp.ErrUnbounded or
// lp.ErrInfeasible unchanged for the callers to interpret.
func (p *HPolytope) solve(d mat.Vector) (float64, *mat.VecDense, error) {
	n := p.dim
	m := len(p.constraints)
	// Coordinates that appear in no constraint make the program unbounded
	// whenever the objective touches them, and leave all-zero columns the
	// simplex rejects, so they are eliminated before conversion.
	constrained := p.ConstrainedDimensions()
	cols := make([]int, 0, n)
	freeObjective := false
	for j := 0; j < n; j++ {
		if constrained.Test(uint(j)) {
			cols = append(cols, j)
		} else if d.AtVec(j) != 0 {
			// the objective touches an unconstrained coordinate; unbounded
			// unless the constrained part turns out infeasible
			freeObjective = true
		}
	}
	if len(cols) == 0 {
		// every constraint reduces to 0 ≤ b
		for _, c := range p.constraints {
			if c.B < 0 {
				return 0, nil, lp.ErrInfeasible
			}
		}
		if freeObjective {
			return 0, nil, lp.ErrUnbounded
		}
		return 0, zeroVec(n), nil
	}

	k := len(cols)
	g := mat.NewDense(m, k, nil)
	h := make([]float64, m)
	for i, cons := range p.constraints {
		for jj, j := range cols {
			g.Set(i, jj, cons.A.AtVec(j))
		}
		h[i] = cons.B
	}

	// the simplex minimizes, so negate the objective
	c := make([]float64, k)
	for jj, j := range cols {
		c[jj] = -d.AtVec(j)
	}
	cStd, aStd, bStd := lp.Convert(c, g, h, nil, nil)
	optF, optX, err := lp.Simplex(cStd, aStd, bStd, lpTol, nil)
	if err != nil {
		return 0, nil, err
	}
	if freeObjective {
		return 0, nil, lp.ErrUnbounded
	}

	// Convert splits every free variable into a positive pair: the standard
	// form variables are [x⁺, x⁻, slack], so x_j = optX[jj] - optX[k+jj].
	// Eliminated coordinates re-enter as zero.
	x := zeroVec(n)
	for jj, j := range cols {
		x.SetVec(j, optX[jj]-optX[k+jj])
	}
	return -optF, x, nil
}

// SupportFunction maximizes d·x by linear programming. It returns +Inf when
// the polyhedron is unbounded in direction d and ErrEmptySet when it is
// empty.
func (p *HPolytope) SupportFunction(d mat.Vector) (float64, error) {
	if err := checkDim(p.dim, d.Len()); err != nil {
		return 0, err
	}
	v, _, err := p.solve(d)
	switch {
	case errors.Is(err, lp.ErrUnbounded):
		return math.Inf(1), nil
	case errors.Is(err, lp.ErrInfeasible):
		return 0, ErrEmptySet
	case err != nil:
		return 0, fmt.Errorf("lazysets: support function LP: %w", err)
	}
	return v, nil
}

// SupportVector returns an optimal basic feasible point of the support LP.
// It returns ErrUnboundedSet when the supremum is not attained.
func (p *HPolytope) SupportVector(d mat.Vector) (*mat.VecDense, error) {
	if err := checkDim(p.dim, d.Len()); err != nil {
		return nil, err
	}
	_, x, err := p.solve(d)
	switch {
	case errors.Is(err, lp.ErrUnbounded):
		return nil, fmt.Errorf("%w: support is not attained in the given direction", ErrUnboundedSet)
	case errors.Is(err, lp.ErrInfeasible):
		return nil, ErrEmptySet
	case err != nil:
		return nil, fmt.Errorf("lazysets: support vector LP: %w", err)
	}
	return x, nil
}

// Contains reports whether x satisfies every constraint, up to the solver
// tolerance.
func (p *HPolytope) Contains(x mat.Vector) (bool, error) {
	if err := checkDim(p.dim, x.Len()); err != nil {
		return false, err
	}
	for _, c := range p.constraints {
		if mat.Dot(c.A, x) > c.B+lpTol {
			return false, nil
		}
	}
	return true, nil
}

// AnElement returns a feasible point found by the phase-one LP.
func (p *HPolytope) AnElement() (*mat.VecDense, error) {
	_, x, err := p.solve(zeroVec(p.dim))
	if errors.Is(err, lp.ErrInfeasible) {
		return nil, ErrEmptySet
	}
	if err != nil {
		return nil, fmt.Errorf("lazysets: feasibility LP: %w", err)
	}
	return x, nil
}

// IsEmpty solves the feasibility LP.
func (p *HPolytope) IsEmpty() bool {
	_, _, err := p.solve(zeroVec(p.dim))
	return errors.Is(err, lp.ErrInfeasible)
}

// IsBounded checks that the support function is finite along every positive
// and negative coordinate direction.
func (p *HPolytope) IsBounded() bool {
	d := zeroVec(p.dim)
	for i := 0; i < p.dim; i++ {
		for _, sign := range []float64{1, -1} {
			d.SetVec(i, sign)
			v, err := p.SupportFunction(d)
			if err == nil && math.IsInf(v, 1) {
				return false
			}
			d.SetVec(i, 0)
		}
	}
	return true
}

// IsUniversal reports whether no constraint cuts the space.
func (p *HPolytope) IsUniversal() bool {
	for _, c := range p.constraints {
		for j := 0; j < p.dim; j++ {
			if c.A.AtVec(j) != 0 {
				return false
			}
		}
		if c.B < 0 {
			return false
		}
	}
	return true
}

// ConstraintsList returns a copy of the constraint list.
func (p *HPolytope) ConstraintsList() ([]HalfSpace, error) {
	cs := make([]HalfSpace, len(p.constraints))
	for i, c := range p.constraints {
		cs[i] = HalfSpace{A: cloneVec(c.A), B: c.B}
	}
	return cs, nil
}

// ConstrainedDimensions returns the coordinates that appear with a non-zero
// coefficient in some constraint.
func (p *HPolytope) ConstrainedDimensions() *bitset.BitSet {
	b := bitset.New(uint(p.dim))
	for _, c := range p.constraints {
		for j := 0; j < p.dim; j++ {
			if c.A.AtVec(j) != 0 {
				b.Set(uint(j))
			}
		}
	}
	return b
}
