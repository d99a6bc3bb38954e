package lazysets

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/lazysets/lazysets/logger"
	"gonum.org/v1/gonum/mat"
)

// Hyperrectangle is an axis-aligned box given by a center and a per-axis
// radius vector. It is the minimal concrete polyhedral set the lazy wrappers
// interoperate with; the infinity-norm ball is the special case of a uniform
// radius, see NewBallInf.
type Hyperrectangle struct {
	center *mat.VecDense
	radius *mat.VecDense
}

// NewHyperrectangle returns the box centered at center with per-axis radius
// radius. Radii must be non-negative.
func NewHyperrectangle(center, radius mat.Vector) (*Hyperrectangle, error) {
	if err := checkDim(center.Len(), radius.Len()); err != nil {
		return nil, err
	}
	for i := 0; i < radius.Len(); i++ {
		if radius.AtVec(i) < 0 {
			return nil, fmt.Errorf("lazysets: negative radius %v in axis %d", radius.AtVec(i), i)
		}
	}
	return &Hyperrectangle{center: cloneVec(center), radius: cloneVec(radius)}, nil
}

// NewBallInf returns the infinity-norm ball of radius r centered at center.
func NewBallInf(center mat.Vector, r float64) (*Hyperrectangle, error) {
	radius := zeroVec(center.Len())
	for i := 0; i < center.Len(); i++ {
		radius.SetVec(i, r)
	}
	return NewHyperrectangle(center, radius)
}

// Dim returns the ambient dimension.
func (h *Hyperrectangle) Dim() int { return h.center.Len() }

// Center returns a copy of the center.
func (h *Hyperrectangle) Center() *mat.VecDense { return cloneVec(h.center) }

// SupportFunction returns d·c + Σ_i r_i·|d_i|.
func (h *Hyperrectangle) SupportFunction(d mat.Vector) (float64, error) {
	if err := checkDim(h.Dim(), d.Len()); err != nil {
		return 0, err
	}
	var s float64
	for i := 0; i < d.Len(); i++ {
		s += d.AtVec(i)*h.center.AtVec(i) + h.radius.AtVec(i)*math.Abs(d.AtVec(i))
	}
	return s, nil
}

// SupportVector returns c + r∘sign(d), taking the center coordinate on axes
// where d_i = 0.
func (h *Hyperrectangle) SupportVector(d mat.Vector) (*mat.VecDense, error) {
	if err := checkDim(h.Dim(), d.Len()); err != nil {
		return nil, err
	}
	v := zeroVec(h.Dim())
	for i := 0; i < h.Dim(); i++ {
		switch di := d.AtVec(i); {
		case di > 0:
			v.SetVec(i, h.center.AtVec(i)+h.radius.AtVec(i))
		case di < 0:
			v.SetVec(i, h.center.AtVec(i)-h.radius.AtVec(i))
		default:
			v.SetVec(i, h.center.AtVec(i))
		}
	}
	return v, nil
}

// Contains reports whether |x_i - c_i| ≤ r_i on every axis.
func (h *Hyperrectangle) Contains(x mat.Vector) (bool, error) {
	if err := checkDim(h.Dim(), x.Len()); err != nil {
		return false, err
	}
	for i := 0; i < x.Len(); i++ {
		if math.Abs(x.AtVec(i)-h.center.AtVec(i)) > h.radius.AtVec(i) {
			return false, nil
		}
	}
	return true, nil
}

// AnElement returns the center.
func (h *Hyperrectangle) AnElement() (*mat.VecDense, error) {
	return h.Center(), nil
}

// IsEmpty returns false; radii are non-negative so the center is always a
// member.
func (h *Hyperrectangle) IsEmpty() bool { return false }

// IsBounded returns true.
func (h *Hyperrectangle) IsBounded() bool { return true }

// IsUniversal returns false.
func (h *Hyperrectangle) IsUniversal() bool { return false }

// Norm returns the norm of the farthest vertex, ‖ |c| + r ‖₂.
func (h *Hyperrectangle) Norm() (float64, error) {
	var s float64
	for i := 0; i < h.Dim(); i++ {
		v := math.Abs(h.center.AtVec(i)) + h.radius.AtVec(i)
		s += v * v
	}
	return math.Sqrt(s), nil
}

// Radius returns the radius of the enclosing ball centered at the center,
// ‖r‖₂.
func (h *Hyperrectangle) Radius() (float64, error) {
	return mat.Norm(h.radius, 2), nil
}

// Diameter returns twice the radius.
func (h *Hyperrectangle) Diameter() (float64, error) {
	r, err := h.Radius()
	if err != nil {
		return 0, err
	}
	return 2 * r, nil
}

// Translate returns the box shifted by v.
func (h *Hyperrectangle) Translate(v mat.Vector) (*Hyperrectangle, error) {
	if err := checkDim(h.Dim(), v.Len()); err != nil {
		return nil, err
	}
	c := h.Center()
	c.AddVec(c, v)
	return &Hyperrectangle{center: c, radius: h.radius}, nil
}

// VerticesList returns the 2ⁿ corner points. Degenerate axes (zero radius)
// are not expanded, so flat boxes produce fewer points.
func (h *Hyperrectangle) VerticesList() ([]*mat.VecDense, error) {
	n := h.Dim()
	free := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if h.radius.AtVec(i) > 0 {
			free = append(free, i)
		}
	}
	if len(free) > 30 {
		return nil, fmt.Errorf("lazysets: vertex enumeration over %d non-degenerate axes is intractable", len(free))
	}
	count := 1 << len(free)
	if count >= 1<<16 {
		log := logger.Logger()
		log.Debug().Int("vertices", count).Msg("enumerating hyperrectangle corners")
	}
	out := make([]*mat.VecDense, 0, count)
	for mask := 0; mask < count; mask++ {
		v := h.Center()
		for j, i := range free {
			if mask&(1<<j) != 0 {
				v.SetVec(i, v.AtVec(i)+h.radius.AtVec(i))
			} else {
				v.SetVec(i, v.AtVec(i)-h.radius.AtVec(i))
			}
		}
		out = append(out, v)
	}
	return out, nil
}

// ConstraintsList returns the 2n axis constraints e_i·x ≤ c_i + r_i and
// -e_i·x ≤ r_i - c_i.
func (h *Hyperrectangle) ConstraintsList() ([]HalfSpace, error) {
	n := h.Dim()
	cs := make([]HalfSpace, 0, 2*n)
	for i := 0; i < n; i++ {
		pos := zeroVec(n)
		pos.SetVec(i, 1)
		neg := zeroVec(n)
		neg.SetVec(i, -1)
		cs = append(cs,
			HalfSpace{A: pos, B: h.center.AtVec(i) + h.radius.AtVec(i)},
			HalfSpace{A: neg, B: h.radius.AtVec(i) - h.center.AtVec(i)},
		)
	}
	return cs, nil
}

// ConstrainedDimensions returns the full index set; every axis is bounded.
func (h *Hyperrectangle) ConstrainedDimensions() *bitset.BitSet {
	b := bitset.New(uint(h.Dim()))
	for i := 0; i < h.Dim(); i++ {
		b.Set(uint(i))
	}
	return b
}
