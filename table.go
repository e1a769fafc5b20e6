package symtable

import (
	"fmt"
	"iter"
	"strings"
)

type table[V any] struct {
	// Chain heads, one per bucket. Allocated on the first Put.
	buckets []*Binding[V]

	// Capacity sequence and the index of the current step into it.
	// step only ever increases.
	steps []int
	step  int

	size int

	hashFunc HashFunc
	alloc    Allocator[V]

	// Number of traversals in progress. Structural changes panic while
	// it is non-zero.
	visiting int
	freed    bool

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

// Override the capacity sequence. It must be non-empty and strictly
// ascending.
func WithCapacities[V any](steps ...int) Option[V] {
	return func(t *table[V]) {
		t.steps = append(make([]int, 0, len(steps)), steps...)
	}
}

// Override the allocator bindings and bucket arrays come from.
func WithAllocator[V any](a Allocator[V]) Option[V] {
	return func(t *table[V]) {
		t.alloc = a
	}
}

func (t *table[V]) init(opts ...Option[V]) {
	for _, opt := range opts {
		opt(t)
	}

	if t.steps == nil {
		t.steps = DefaultCapacities
	}
	if err := validateCapacities(t.steps); err != nil {
		panic("symtable: " + err.Error())
	}

	if t.hashFunc == nil {
		t.hashFunc = Polynomial
	}
	if t.alloc == nil {
		t.alloc = HeapAllocator[V]{}
	}
}

func (t *table[V]) mustLive() {
	if t == nil {
		panic("symtable: nil table")
	}
	if t.freed {
		panic("symtable: use of freed table")
	}
}

func (t *table[V]) mustMutable() {
	t.mustLive()
	if t.visiting > 0 {
		panic("symtable: table modified during traversal")
	}
}

func (t *table[V]) capacity() int {
	return t.steps[t.step]
}

func (t *table[V]) index(key string, capacity int) int {
	return int(t.hashFunc(key) % uint64(capacity))
}

func (t *table[V]) find(key string) *Binding[V] {
	if t.buckets == nil {
		return nil
	}

	for b := t.buckets[t.index(key, len(t.buckets))]; b != nil; b = b.next {
		if b.key == key {
			return b
		}
	}

	return nil
}

// grow moves every binding into a bucket array sized to the next capacity
// step. If the array cannot be allocated the table stays as it is.
func (t *table[V]) grow() error {
	capacity := t.steps[t.step+1]

	buckets, err := t.alloc.Buckets(capacity)
	if err != nil {
		return err
	}

	for i, head := range t.buckets {
		for b := head; b != nil; {
			next := b.next
			idx := t.index(b.key, capacity)
			b.next = buckets[idx]
			buckets[idx] = b
			b = next
		}
		t.buckets[i] = nil
	}

	t.buckets = buckets
	t.step++

	return nil
}

// release hands every binding back to the allocator, one successor at a
// time, and empties the bucket array.
func (t *table[V]) release() {
	for i, b := range t.buckets {
		for b != nil {
			next := b.next
			t.alloc.Release(b)
			b = next
		}
		t.buckets[i] = nil
	}

	t.size = 0
}

func (t *table[V]) each(visit func(b *Binding[V]) bool) {
	t.visiting++
	defer func() { t.visiting-- }()

	for _, head := range t.buckets {
		for b := head; b != nil; b = b.next {
			if !visit(b) {
				return
			}
		}
	}
}

// Len returns the number of bindings.
func (t *table[V]) Len() int {
	t.mustLive()
	return t.size
}

// Capacity returns the current number of buckets.
func (t *table[V]) Capacity() int {
	t.mustLive()
	return t.capacity()
}

// Contains reports whether key is bound.
func (t *table[V]) Contains(key string) bool {
	t.mustLive()
	return t.find(key) != nil
}

// Get returns the value bound to key. The second result is false if key is
// not bound.
func (t *table[V]) Get(key string) (V, bool) {
	t.mustLive()

	if b := t.find(key); b != nil {
		return b.value, true
	}

	return t.emptyV, false
}

// Put binds key to value. Before inserting, a table holding more bindings
// than buckets grows to the next capacity step, unless it is already at
// the last one.
//
// Put returns ErrDuplicateKey if key is already bound and ErrAllocation if
// the binding or the grown bucket array cannot be allocated. The table is
// unchanged in both cases.
func (t *table[V]) Put(key string, value V) error {
	t.mustMutable()

	if t.buckets == nil {
		buckets, err := t.alloc.Buckets(t.capacity())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAllocation, err)
		}
		t.buckets = buckets
	}

	if t.size > t.capacity() && t.step < len(t.steps)-1 {
		if err := t.grow(); err != nil {
			return fmt.Errorf("%w: %w", ErrAllocation, err)
		}
	}

	if t.find(key) != nil {
		return ErrDuplicateKey
	}

	b, err := t.alloc.Binding()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	idx := t.index(key, len(t.buckets))
	b.key = strings.Clone(key)
	b.value = value
	b.next = t.buckets[idx]
	t.buckets[idx] = b
	t.size++

	return nil
}

// Replace rebinds an existing key to value and returns the previous value.
// If key is not bound the table is unchanged and the second result is
// false.
func (t *table[V]) Replace(key string, value V) (V, bool) {
	t.mustLive()

	b := t.find(key)
	if b == nil {
		return t.emptyV, false
	}

	prev := b.value
	b.value = value

	return prev, true
}

// Remove unbinds key and returns its value. The second result is false if
// key is not bound.
func (t *table[V]) Remove(key string) (V, bool) {
	t.mustMutable()

	if t.buckets == nil {
		return t.emptyV, false
	}

	idx := t.index(key, len(t.buckets))
	for link := &t.buckets[idx]; *link != nil; link = &(*link).next {
		b := *link
		if b.key != key {
			continue
		}

		value := b.value
		*link = b.next
		t.alloc.Release(b)
		t.size--

		return value, true
	}

	return t.emptyV, false
}

// Map calls visit for every binding, bucket by bucket and then along each
// chain. visit may update values through its pointer argument but must not
// add or remove bindings; doing so panics.
func (t *table[V]) Map(visit Visitor[V], extra any) {
	t.mustLive()
	if visit == nil {
		panic("symtable: nil visitor")
	}

	t.each(func(b *Binding[V]) bool {
		visit(b.key, &b.value, extra)
		return true
	})
}

// All returns an iterator over all bindings in Map order.
func (t *table[V]) All() iter.Seq2[string, V] {
	t.mustLive()

	return func(yield func(string, V) bool) {
		t.mustLive()
		t.each(func(b *Binding[V]) bool {
			return yield(b.key, b.value)
		})
	}
}

// Keys returns every bound key in Map order.
func (t *table[V]) Keys() []string {
	t.mustLive()

	keys := make([]string, 0, t.size)
	t.each(func(b *Binding[V]) bool {
		keys = append(keys, b.key)
		return true
	})

	return keys
}

// Reset removes all bindings. The capacity is kept.
func (t *table[V]) Reset() {
	t.mustMutable()
	t.release()
}

// Free releases every binding and the bucket array. Values are left
// untouched. Any later use of the table panics.
func (t *table[V]) Free() {
	t.mustMutable()
	t.release()

	t.buckets = nil
	t.freed = true
}

// Stats reports the size and shape of the table.
func (t *table[V]) Stats() Stats {
	t.mustLive()

	s := Stats{
		Size:       t.size,
		Capacity:   t.capacity(),
		Step:       t.step,
		LoadFactor: float32(t.size) / float32(t.capacity()),
	}

	for _, head := range t.buckets {
		if head == nil {
			continue
		}

		s.UsedBuckets++
		n := 0
		for b := head; b != nil; b = b.next {
			n++
		}
		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}
