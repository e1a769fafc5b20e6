package symtable

// Allocator supplies the memory a table is built from. Binding must return
// a zeroed binding, Release gets it back once the table is done with it,
// and Buckets returns a fresh, all-nil bucket array of length n.
//
// An error from Binding or Buckets is reported as ErrAllocation and leaves
// the table in its last consistent state.
type Allocator[V any] interface {
	Binding() (*Binding[V], error)
	Release(b *Binding[V])
	Buckets(n int) ([]*Binding[V], error)
}

// HeapAllocator allocates from the Go heap. It is the default.
type HeapAllocator[V any] struct{}

func (HeapAllocator[V]) Binding() (*Binding[V], error) {
	return new(Binding[V]), nil
}

func (HeapAllocator[V]) Release(b *Binding[V]) {
	b.reset()
}

func (HeapAllocator[V]) Buckets(n int) ([]*Binding[V], error) {
	return make([]*Binding[V], n), nil
}
