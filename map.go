package symtable

// Table is a symbol table backed by a hash table with chained buckets.
// It starts with the first capacity of its sequence and, once it holds more
// bindings than buckets, grows one step at a time, rehashing every binding.
// It never shrinks. At the last step it keeps accepting bindings with
// longer chains.
type Table[V any] struct {
	table[V]
}

// Returns a new, empty table.
func New[V any](opts ...Option[V]) *Table[V] {
	var st Table[V]
	st.init(opts...)

	return &st
}
