package atomic

import "sync/atomic"

// Ptr is the swap primitive behind updatable containers: a pointer that
// can be published, snapshotted, and replaced without locks. A pointee
// loaded by one goroutine stays alive however many swaps follow.
type Ptr[T any] struct {
	_ nocmp
	p atomic.Pointer[T]
}

func (z *Ptr[T]) Load() *T {
	return z.p.Load()
}

func (z *Ptr[T]) Store(val *T) {
	z.p.Store(val)
}

func (z *Ptr[T]) Swap(val *T) (old *T) {
	return z.p.Swap(val)
}

func (z *Ptr[T]) CompareAndSwap(old, new *T) (swapped bool) {
	return z.p.CompareAndSwap(old, new)
}
