package symtable

import (
	"errors"
	"strconv"
)

var errOutOfMemory = errors.New("out of memory")

// countingAllocator tracks live bindings and can be told to fail.
type countingAllocator[V any] struct {
	HeapAllocator[V]

	live         int
	released     int
	bucketArrays int

	failBindings bool
	failBuckets  bool
}

func (a *countingAllocator[V]) Binding() (*Binding[V], error) {
	if a.failBindings {
		return nil, errOutOfMemory
	}

	a.live++
	return a.HeapAllocator.Binding()
}

func (a *countingAllocator[V]) Release(b *Binding[V]) {
	a.live--
	a.released++
	a.HeapAllocator.Release(b)
}

func (a *countingAllocator[V]) Buckets(n int) ([]*Binding[V], error) {
	if a.failBuckets {
		return nil, errOutOfMemory
	}

	a.bucketArrays++
	return a.HeapAllocator.Buckets(n)
}

// collisionHash sends every key to bucket 0.
func collisionHash(string) uint64 {
	return 0
}

func genKeys(start, end int) []string {
	keys := make([]string, end-start)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(start+i)
	}

	return keys
}
