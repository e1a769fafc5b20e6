package symtable

import (
	"context"

	pool "github.com/jolestar/go-commons-pool/v2"
)

// PoolAllocator recycles bindings through a bounded object pool. Once
// maxBindings bindings are live, further inserts fail with ErrAllocation
// instead of growing memory.
//
// The context given to NewPoolAllocator is used for every borrow and return,
// since Allocator calls carry none.
type PoolAllocator[V any] struct {
	HeapAllocator[V]

	ctx  context.Context
	pool *pool.ObjectPool
}

// NewPoolAllocator creates a pool holding at most maxBindings live
// bindings. A negative maxBindings means no limit.
func NewPoolAllocator[V any](ctx context.Context, maxBindings int) *PoolAllocator[V] {
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = maxBindings
	config.MaxIdle = maxBindings
	config.BlockWhenExhausted = false

	factory := pool.NewPooledObjectFactorySimple(func(context.Context) (interface{}, error) {
		return new(Binding[V]), nil
	})

	return &PoolAllocator[V]{
		ctx:  ctx,
		pool: pool.NewObjectPool(ctx, factory, config),
	}
}

func (p *PoolAllocator[V]) Binding() (*Binding[V], error) {
	obj, err := p.pool.BorrowObject(p.ctx)
	if err != nil {
		return nil, err
	}

	return obj.(*Binding[V]), nil
}

func (p *PoolAllocator[V]) Release(b *Binding[V]) {
	b.reset()
	if err := p.pool.ReturnObject(p.ctx, b); err != nil {
		panic("symtable: release of foreign binding: " + err.Error())
	}
}

// Live returns the number of bindings currently borrowed from the pool.
func (p *PoolAllocator[V]) Live() int {
	return p.pool.GetNumActive()
}

// Idle returns the number of released bindings kept for reuse.
func (p *PoolAllocator[V]) Idle() int {
	return p.pool.GetNumIdle()
}

// Close drops every idle binding. Tables using the allocator must be freed
// first.
func (p *PoolAllocator[V]) Close() {
	p.pool.Close(p.ctx)
}
