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

func TestUniverse(t *testing.T) {
	assert := require.New(t)

	u := NewUniverse(2)
	assert.Equal(2, u.Dim())
	assert.False(u.IsEmpty())
	assert.False(u.IsBounded())
	assert.True(u.IsUniversal())

	s, err := u.SupportFunction(mat.NewVecDense(2, []float64{0, 0}))
	assert.NoError(err)
	assert.Equal(0.0, s)

	s, err = u.SupportFunction(mat.NewVecDense(2, []float64{1, 0}))
	assert.NoError(err)
	assert.True(math.IsInf(s, 1))

	v, err := u.SupportVector(mat.NewVecDense(2, []float64{3, -2}))
	assert.NoError(err)
	assert.True(math.IsInf(v.AtVec(0), 1))
	assert.True(math.IsInf(v.AtVec(1), -1))

	v, err = u.SupportVector(mat.NewVecDense(2, []float64{0, 5}))
	assert.NoError(err)
	assert.Equal(0.0, v.AtVec(0))
	assert.True(math.IsInf(v.AtVec(1), 1))

	in, err := u.Contains(mat.NewVecDense(2, []float64{1e9, -1e9}))
	assert.NoError(err)
	assert.True(in)

	_, err = u.Contains(mat.NewVecDense(3, []float64{1, 2, 3}))
	assert.ErrorIs(err, ErrDimensionMismatch)

	e, err := u.AnElement()
	assert.NoError(err)
	in, err = u.Contains(e)
	assert.NoError(err)
	assert.True(in)
}

func TestUniverseZeroDimension(t *testing.T) {
	assert := require.New(t)

	u := NewUniverse(0)
	assert.Equal(0, u.Dim())
	assert.True(u.IsUniversal())
	assert.False(u.IsEmpty())

	// the only direction in dimension zero is the empty one
	s, err := u.SupportFunction(&mat.VecDense{})
	assert.NoError(err)
	assert.Equal(0.0, s)

	in, err := u.Contains(&mat.VecDense{})
	assert.NoError(err)
	assert.True(in)

	e, err := u.AnElement()
	assert.NoError(err)
	assert.Equal(0, e.Len())
}

func TestUniverseUnboundedQueries(t *testing.T) {
	assert := require.New(t)

	u := NewUniverse(3)
	_, err := u.Norm()
	assert.ErrorIs(err, ErrUnboundedSet)
	_, err = u.Radius()
	assert.ErrorIs(err, ErrUnboundedSet)
	_, err = u.Diameter()
	assert.ErrorIs(err, ErrUnboundedSet)
}

func TestUniverseTranslate(t *testing.T) {
	assert := require.New(t)

	u := NewUniverse(2)
	u2, err := u.Translate(mat.NewVecDense(2, []float64{1, -1}))
	assert.NoError(err)
	assert.Same(u, u2)

	_, err = u.Translate(mat.NewVecDense(3, []float64{1, 2, 3}))
	assert.ErrorIs(err, ErrDimensionMismatch)
}

func TestUniverseInverseLinearMapOf(t *testing.T) {
	assert := require.New(t)

	u := NewUniverse(2)
	img, err := u.InverseLinearMapOf(mat.NewDense(2, 3, nil))
	assert.NoError(err)
	assert.Equal(3, img.Dim())
	assert.True(img.IsUniversal())

	_, err = u.InverseLinearMapOf(mat.NewDense(3, 2, nil))
	assert.ErrorIs(err, ErrDimensionMismatch)
}

func TestUniverseConstraints(t *testing.T) {
	assert := require.New(t)

	u := NewUniverse(4)
	cs, err := u.ConstraintsList()
	assert.NoError(err)
	assert.Empty(cs)
	assert.Equal(uint(0), u.ConstrainedDimensions().Count())
}

func TestUniverseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("every point belongs to the universe", prop.ForAll(
		func(x []float64) bool {
			u := NewUniverse(len(x))
			in, err := u.Contains(mat.NewVecDense(len(x), x))
			return err == nil && in
		},
		gen.SliceOfN(3, gen.Float64Range(-1e6, 1e6)),
	))

	properties.Property("support function is +Inf along non-zero directions", prop.ForAll(
		func(d []float64) bool {
			u := NewUniverse(len(d))
			allZero := true
			for _, di := range d {
				if di != 0 {
					allZero = false
				}
			}
			s, err := u.SupportFunction(mat.NewVecDense(len(d), d))
			if err != nil {
				return false
			}
			if allZero {
				return s == 0
			}
			return math.IsInf(s, 1)
		},
		gen.SliceOfN(4, gen.Float64Range(-10, 10)),
	))

	properties.Property("support vector signs follow the direction", prop.ForAll(
		func(d []float64) bool {
			u := NewUniverse(len(d))
			v, err := u.SupportVector(mat.NewVecDense(len(d), d))
			if err != nil {
				return false
			}
			for i, di := range d {
				switch {
				case di > 0 && !math.IsInf(v.AtVec(i), 1):
					return false
				case di < 0 && !math.IsInf(v.AtVec(i), -1):
					return false
				case di == 0 && v.AtVec(i) != 0:
					return false
				}
			}
			return true
		},
		gen.SliceOfN(3, gen.Float64Range(-10, 10)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
