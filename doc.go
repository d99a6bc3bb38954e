// Package lazysets provides a lazy algebra of convex sets.
//
// A set is represented by a value implementing the [LazySet] interface: it
// answers dimension, support-function, support-vector, membership and witness
// queries without ever materializing an explicit geometric description.
// Operations that combine sets (linear maps, inverse linear maps) return new
// lazy values that defer computation and apply algebraic simplification at
// construction time: absorbing operands ([ZeroSet], [EmptySet]) collapse the
// wrapper, identity maps short-circuit, and nested maps fuse into a single
// matrix.
//
// Concrete representations ([Hyperrectangle], [VPolytope], [HPolytope]) are
// produced only on demand through [Concretize] or through the polyhedral
// capability interfaces [VertexEnumerable] and [ConstraintEnumerable].
//
// All values are immutable after construction; any number of goroutines may
// query the same set concurrently.
package lazysets

import (
	"github.com/blang/semver/v4"
)

// Version of the lazysets library
var Version = semver.MustParse("0.1.0")
