package symtable

import "slices"

// List is a symbol table keeping all bindings in a single chain, newest
// first. Every lookup is a linear scan, which makes it a fit for small
// tables only.
type List[V any] struct {
	table[V]
}

// Returns a new, empty list. WithCapacities has no effect on a list.
func NewList[V any](opts ...Option[V]) *List[V] {
	var sl List[V]
	sl.init(append(slices.Clone(opts), WithCapacities[V](listCapacities...))...)

	return &sl
}
