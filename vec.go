package lazysets

import "gonum.org/v1/gonum/mat"

// zeroVec returns the zero vector of length n. gonum cannot allocate a
// zero-length VecDense, so dimension-0 sets use the empty zero value.
func zeroVec(n int) *mat.VecDense {
	if n == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(n, nil)
}

// cloneVec returns a dense copy of v.
func cloneVec(v mat.Vector) *mat.VecDense {
	out := zeroVec(v.Len())
	for i := 0; i < v.Len(); i++ {
		out.SetVec(i, v.AtVec(i))
	}
	return out
}
