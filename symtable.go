// Package symtable provides symbol tables: containers mapping string keys
// to caller-owned values.
//
// Table is a hash table with chained buckets that grows through a fixed
// sequence of prime capacities, rehashing every binding at each step. List
// keeps all bindings in a single chain. Both implement SymTable and can be
// swapped freely.
//
// Tables are not safe for concurrent use.
package symtable

import "errors"

var (
	// ErrDuplicateKey is returned by Put when the key is already bound.
	ErrDuplicateKey = errors.New("symtable: duplicate key")

	// ErrAllocation is returned when the allocator cannot supply memory.
	ErrAllocation = errors.New("symtable: allocation failed")
)

// Visitor is called by Map for every binding. Writes through value update
// the stored value. extra is passed through from Map unchanged.
type Visitor[V any] func(key string, value *V, extra any)

// SymTable is the operation set shared by Table and List.
type SymTable[V any] interface {
	// Len returns the number of bindings.
	Len() int
	// Contains reports whether key is bound.
	Contains(key string) bool
	// Put binds key to value. It fails with ErrDuplicateKey if key is
	// already bound.
	Put(key string, value V) error
	// Replace rebinds an existing key and returns the previous value.
	Replace(key string, value V) (V, bool)
	// Get returns the value bound to key.
	Get(key string) (V, bool)
	// Remove unbinds key and returns its value.
	Remove(key string) (V, bool)
	// Map calls visit for every binding.
	Map(visit Visitor[V], extra any)
	// Free releases every binding. The table must not be used afterwards.
	Free()
}

var (
	_ SymTable[any] = (*Table[any])(nil)
	_ SymTable[any] = (*List[any])(nil)
)
