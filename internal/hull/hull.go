// Package hull reduces finite point sets to their convex-hull vertices.
//
// Dimensions one and two use exact combinatorial algorithms; higher
// dimensions fall back to linear-programming redundancy elimination, which
// is exact but one LP per point.
package hull

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const lpTol = 1e-10

// Vertices returns the subset of points that are vertices of the convex hull
// of points. The input is not modified; the order of the result is
// unspecified.
func Vertices(points []*mat.VecDense) []*mat.VecDense {
	pts := dedupe(points)
	if len(pts) <= 2 {
		return pts
	}
	switch pts[0].Len() {
	case 1:
		return interval(pts)
	case 2:
		return monotoneChain(pts)
	default:
		return eliminateRedundant(pts)
	}
}

func dedupe(points []*mat.VecDense) []*mat.VecDense {
	out := make([]*mat.VecDense, 0, len(points))
	for _, p := range points {
		dup := false
		for _, q := range out {
			if mat.EqualApprox(p, q, 0) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// interval keeps the minimum and maximum of a one-dimensional point set.
func interval(pts []*mat.VecDense) []*mat.VecDense {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.AtVec(0) < lo.AtVec(0) {
			lo = p
		}
		if p.AtVec(0) > hi.AtVec(0) {
			hi = p
		}
	}
	if lo == hi {
		return []*mat.VecDense{lo}
	}
	return []*mat.VecDense{lo, hi}
}

// monotoneChain is Andrew's monotone-chain hull in the plane. Collinear
// points are dropped.
func monotoneChain(pts []*mat.VecDense) []*mat.VecDense {
	sorted := make([]*mat.VecDense, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AtVec(0) != sorted[j].AtVec(0) {
			return sorted[i].AtVec(0) < sorted[j].AtVec(0)
		}
		return sorted[i].AtVec(1) < sorted[j].AtVec(1)
	})

	build := func(seq []*mat.VecDense) []*mat.VecDense {
		var chain []*mat.VecDense
		for _, p := range seq {
			for len(chain) >= 2 && cross(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}

	lower := build(sorted)
	reversed := make([]*mat.VecDense, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	upper := build(reversed)

	// each chain ends where the other begins; drop the shared endpoints
	return append(lower[:len(lower)-1:len(lower)-1], upper[:len(upper)-1]...)
}

func cross(o, a, b *mat.VecDense) float64 {
	return (a.AtVec(0)-o.AtVec(0))*(b.AtVec(1)-o.AtVec(1)) -
		(a.AtVec(1)-o.AtVec(1))*(b.AtVec(0)-o.AtVec(0))
}

// eliminateRedundant removes every point expressible as a convex combination
// of the others. Each test is a feasibility LP over the combination weights.
func eliminateRedundant(pts []*mat.VecDense) []*mat.VecDense {
	keep := make([]*mat.VecDense, 0, len(pts))
	for i, p := range pts {
		others := make([]*mat.VecDense, 0, len(pts)-1)
		others = append(others, pts[:i]...)
		others = append(others, pts[i+1:]...)
		if !InConvexHull(p, others) {
			keep = append(keep, p)
		}
	}
	return keep
}

// InConvexHull reports whether x is a convex combination of points.
func InConvexHull(x *mat.VecDense, points []*mat.VecDense) bool {
	if len(points) == 0 {
		return false
	}
	n := x.Len()
	m := len(points)

	// feasibility of P·λ = x, Σλ = 1, λ ≥ 0 in standard form
	a := mat.NewDense(n+1, m, nil)
	for j, p := range points {
		for i := 0; i < n; i++ {
			a.Set(i, j, p.AtVec(i))
		}
		a.Set(n, j, 1)
	}
	b := make([]float64, n+1)
	for i := 0; i < n; i++ {
		b[i] = x.AtVec(i)
	}
	b[n] = 1

	_, _, err := lp.Simplex(make([]float64, m), a, b, lpTol, nil)
	return err == nil
}
