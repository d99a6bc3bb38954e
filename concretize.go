package lazysets

// Concretizable is implemented by lazy wrappers that can materialize an
// explicit polyhedral representation of themselves.
type Concretizable interface {
	Concretize() (LazySet, error)
}

// Concretize converts a lazy set into an explicit representation. Sets that
// are already concrete are returned unchanged; lazy wrappers delegate to
// their own Concretize method, which typically enumerates and transforms
// vertices or constraints of the wrapped set.
func Concretize(s LazySet) (LazySet, error) {
	if c, ok := s.(Concretizable); ok {
		return c.Concretize()
	}
	return s, nil
}
