package lazysets

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHyperrectangle(t *testing.T) {
	assert := require.New(t)

	h, err := NewHyperrectangle(
		mat.NewVecDense(2, []float64{1, 2}),
		mat.NewVecDense(2, []float64{1, 0.5}),
	)
	assert.NoError(err)
	assert.Equal(2, h.Dim())
	assert.False(h.IsEmpty())
	assert.True(h.IsBounded())
	assert.False(h.IsUniversal())

	// sup over [0,2]x[1.5,2.5] of x1 - x2 is 2 - 1.5
	s, err := h.SupportFunction(mat.NewVecDense(2, []float64{1, -1}))
	assert.NoError(err)
	assert.InDelta(0.5, s, 1e-12)

	v, err := h.SupportVector(mat.NewVecDense(2, []float64{1, -1}))
	assert.NoError(err)
	assert.InDelta(2.0, v.AtVec(0), 1e-12)
	assert.InDelta(1.5, v.AtVec(1), 1e-12)

	in, err := h.Contains(mat.NewVecDense(2, []float64{0, 1.5}))
	assert.NoError(err)
	assert.True(in)
	in, err = h.Contains(mat.NewVecDense(2, []float64{0, 1.4}))
	assert.NoError(err)
	assert.False(in)

	_, err = h.Contains(mat.NewVecDense(3, nil))
	assert.ErrorIs(err, ErrDimensionMismatch)

	_, err = NewHyperrectangle(
		mat.NewVecDense(2, []float64{0, 0}),
		mat.NewVecDense(2, []float64{1, -1}),
	)
	assert.Error(err)
}

func TestHyperrectangleMetrics(t *testing.T) {
	assert := require.New(t)

	h, err := NewBallInf(mat.NewVecDense(2, []float64{0, 0}), 1)
	assert.NoError(err)

	r, err := h.Radius()
	assert.NoError(err)
	assert.InDelta(math.Sqrt2, r, 1e-12)

	d, err := h.Diameter()
	assert.NoError(err)
	assert.InDelta(2*math.Sqrt2, d, 1e-12)

	n, err := h.Norm()
	assert.NoError(err)
	assert.InDelta(math.Sqrt2, n, 1e-12)
}

func TestHyperrectangleTranslate(t *testing.T) {
	assert := require.New(t)

	h, err := NewBallInf(mat.NewVecDense(2, []float64{0, 0}), 1)
	assert.NoError(err)
	h2, err := h.Translate(mat.NewVecDense(2, []float64{5, 5}))
	assert.NoError(err)

	in, err := h2.Contains(mat.NewVecDense(2, []float64{5.5, 4.5}))
	assert.NoError(err)
	assert.True(in)
	in, err = h2.Contains(mat.NewVecDense(2, []float64{0, 0}))
	assert.NoError(err)
	assert.False(in)

	_, err = h.Translate(mat.NewVecDense(1, []float64{1}))
	assert.ErrorIs(err, ErrDimensionMismatch)
}

func TestHyperrectanglePolyhedral(t *testing.T) {
	assert := require.New(t)

	h, err := NewBallInf(mat.NewVecDense(2, []float64{0, 0}), 1)
	assert.NoError(err)

	vs, err := h.VerticesList()
	assert.NoError(err)
	assert.Len(vs, 4)
	for _, v := range vs {
		assert.InDelta(1, math.Abs(v.AtVec(0)), 1e-12)
		assert.InDelta(1, math.Abs(v.AtVec(1)), 1e-12)
	}

	cs, err := h.ConstraintsList()
	assert.NoError(err)
	assert.Len(cs, 4)
	for _, c := range cs {
		// every vertex satisfies every constraint
		for _, v := range vs {
			assert.LessOrEqual(mat.Dot(c.A, v), c.B+1e-12)
		}
	}

	assert.Equal(uint(2), h.ConstrainedDimensions().Count())

	// a flat axis is not expanded
	flat, err := NewHyperrectangle(
		mat.NewVecDense(3, []float64{0, 0, 0}),
		mat.NewVecDense(3, []float64{1, 0, 1}),
	)
	assert.NoError(err)
	vs, err = flat.VerticesList()
	assert.NoError(err)
	assert.Len(vs, 4)
}

func TestHyperrectangleProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("support vector attains the support function", prop.ForAll(
		func(d []float64) bool {
			h, err := NewBallInf(mat.NewVecDense(3, []float64{1, -1, 0}), 2)
			if err != nil {
				return false
			}
			dv := mat.NewVecDense(3, d)
			s, err := h.SupportFunction(dv)
			if err != nil {
				return false
			}
			v, err := h.SupportVector(dv)
			if err != nil {
				return false
			}
			return math.Abs(mat.Dot(dv, v)-s) < 1e-9
		},
		gen.SliceOfN(3, gen.Float64Range(-10, 10)),
	))

	properties.Property("the center element is a member", prop.ForAll(
		func(c []float64) bool {
			h, err := NewBallInf(mat.NewVecDense(2, c), 0.5)
			if err != nil {
				return false
			}
			e, err := h.AnElement()
			if err != nil {
				return false
			}
			in, err := h.Contains(e)
			return err == nil && in
		},
		gen.SliceOfN(2, gen.Float64Range(-100, 100)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
