package atomic

import "sync/atomic"

// V holds a value of type T with atomic Load/Store/Swap semantics.
// The zero V loads the zero value of T and never panics, unlike
// sync/atomic.Value.
type V[T any] struct {
	_ nocmp
	p atomic.Pointer[T]
}

func (z *V[T]) Load() T {
	return unpack(z.p.Load())
}

func (z *V[T]) Store(val T) {
	z.p.Store(&val)
}

func (z *V[T]) Swap(val T) (old T) {
	return unpack(z.p.Swap(&val))
}

func (z *V[T]) LoadOk() (val T, ok bool) {
	p := z.p.Load()
	if p == nil {
		return val, false
	}
	return *p, true
}
