//go:build debug

// Package debug exposes the compile-time debug mode of the library.
//
// Debug mode is enabled by building with the "debug" tag; it keeps the
// library logger active under "go test" and may enable extra sanity checks.
package debug

// Debug reports whether the library was built with the debug tag.
const Debug = true
