package lazysets

import (
	"errors"
	"math"

	"github.com/lazysets/lazysets/internal/hull"
	"gonum.org/v1/gonum/mat"
)

// VPolytope is a polytope in vertex representation: the convex hull of a
// finite, non-empty list of points.
type VPolytope struct {
	vertices []*mat.VecDense
}

// NewVPolytope returns the convex hull of the given vertices. The list must
// be non-empty and dimensionally consistent; it is not pruned.
func NewVPolytope(vertices []*mat.VecDense) (*VPolytope, error) {
	if len(vertices) == 0 {
		return nil, errors.New("lazysets: a VPolytope requires at least one vertex")
	}
	dim := vertices[0].Len()
	vs := make([]*mat.VecDense, len(vertices))
	for i, v := range vertices {
		if err := checkDim(dim, v.Len()); err != nil {
			return nil, err
		}
		vs[i] = cloneVec(v)
	}
	return &VPolytope{vertices: vs}, nil
}

// Dim returns the ambient dimension.
func (p *VPolytope) Dim() int { return p.vertices[0].Len() }

// SupportFunction returns the maximum of d·v over the vertices; the
// supremum of a linear functional over a polytope is attained at a vertex.
func (p *VPolytope) SupportFunction(d mat.Vector) (float64, error) {
	if err := checkDim(p.Dim(), d.Len()); err != nil {
		return 0, err
	}
	best := math.Inf(-1)
	for _, v := range p.vertices {
		if s := mat.Dot(d, v); s > best {
			best = s
		}
	}
	return best, nil
}

// SupportVector returns a vertex maximizing d·v.
func (p *VPolytope) SupportVector(d mat.Vector) (*mat.VecDense, error) {
	if err := checkDim(p.Dim(), d.Len()); err != nil {
		return nil, err
	}
	best := math.Inf(-1)
	var arg *mat.VecDense
	for _, v := range p.vertices {
		if s := mat.Dot(d, v); s > best {
			best, arg = s, v
		}
	}
	return cloneVec(arg), nil
}

// Contains reports whether x is a convex combination of the vertices,
// decided by a feasibility linear program.
func (p *VPolytope) Contains(x mat.Vector) (bool, error) {
	if err := checkDim(p.Dim(), x.Len()); err != nil {
		return false, err
	}
	return hull.InConvexHull(cloneVec(x), p.vertices), nil
}

// AnElement returns the first vertex.
func (p *VPolytope) AnElement() (*mat.VecDense, error) {
	return cloneVec(p.vertices[0]), nil
}

// IsEmpty returns false; construction requires at least one vertex.
func (p *VPolytope) IsEmpty() bool { return false }

// IsBounded returns true.
func (p *VPolytope) IsBounded() bool { return true }

// IsUniversal returns false.
func (p *VPolytope) IsUniversal() bool { return false }

// VerticesList returns a copy of the vertex list.
func (p *VPolytope) VerticesList() ([]*mat.VecDense, error) {
	out := make([]*mat.VecDense, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = cloneVec(v)
	}
	return out, nil
}
