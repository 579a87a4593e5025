package anycow

// Ref is a read-only view of a container's current value. For Updatable
// and Lazy containers it pins the snapshot that was current when Borrow
// was called, so later replacements never invalidate it.
type Ref[T any] struct {
	p *T
}

func (r Ref[T]) Val() T {
	if r.p == nil {
		var zero T
		return zero
	}
	return *r.p
}

func (r Ref[T]) Ptr() *T {
	return r.p
}
