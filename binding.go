package symtable

// Binding is one key/value entry of a table. Allocators hand out zeroed
// bindings; once handed out, the fields belong to the table until the
// binding is released.
type Binding[V any] struct {
	// An owned copy of the key, never aliased to caller memory.
	key string

	// The caller's value. The table stores it as-is and never inspects it.
	value V

	// Next binding of the same bucket, or nil at the chain tail.
	next *Binding[V]
}

// reset drops the key copy and the value reference so neither outlives
// the binding.
func (b *Binding[V]) reset() {
	*b = Binding[V]{}
}
