// Package anycow provides Cow, a container that stores a single value
// under one of five strategies: a borrowed reference, an exclusively
// owned heap value, an immutably shared value, a lock-free atomically
// replaceable value, or a lazily initialized replaceable value.
package anycow

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/Azizi-X/anycow/atomic"
)

// Cow holds one value of type T. Which strategy is used is decided by
// the constructor and never changes; only the Updatable and Lazy
// variants are safe for concurrent use. The zero Cow is not usable,
// always construct via NewBorrowed, NewOwned, NewShared, NewUpdatable
// or NewLazy.
//
// Values are cloned during copy-on-write promotion and extraction. The
// default clone is a plain value copy; types with reference innards
// (slices, maps, pointers) need a deep clone via SetClone.
type Cow[T any] struct {
	variant  Variant
	ptr      *T            // Borrowed, Owned, Shared payload
	swap     atomic.Ptr[T] // Updatable, Lazy current snapshot
	init     func() T      // Lazy only, run at most once
	once     sync.Once
	consumed atomic.Bool
	watchers *broadcaster[T]
	clone    func(T) T
	equal    func(a, b T) bool
}

func NewBorrowed[T any](p *T) *Cow[T] {
	return &Cow[T]{variant: Borrowed, ptr: p}
}

func NewOwned[T any](v T) *Cow[T] {
	return &Cow[T]{variant: Owned, ptr: &v}
}

func NewShared[T any](p *T) *Cow[T] {
	return &Cow[T]{variant: Shared, ptr: p}
}

func NewUpdatable[T any](v T) *Cow[T] {
	c := &Cow[T]{variant: Updatable, watchers: &broadcaster[T]{}}
	c.swap.Store(&v)
	return c
}

// NewLazy defers producing the value to the first read. The init
// function runs at most once, even under concurrent first readers, and
// not at all if TryReplace lands first.
func NewLazy[T any](init func() T) *Cow[T] {
	return &Cow[T]{variant: Lazy, init: init, watchers: &broadcaster[T]{}}
}

func (c *Cow[T]) SetClone(fn func(T) T) *Cow[T] {
	c.clone = fn
	return c
}

func (c *Cow[T]) SetEqual(fn func(a, b T) bool) *Cow[T] {
	c.equal = fn
	return c
}

func (c *Cow[T]) Variant() Variant {
	if c == nil {
		return Borrowed
	}
	return c.variant
}

func (c *Cow[T]) IsBorrowed() bool  { return c != nil && c.variant == Borrowed }
func (c *Cow[T]) IsOwned() bool     { return c != nil && c.variant == Owned }
func (c *Cow[T]) IsShared() bool    { return c != nil && c.variant == Shared }
func (c *Cow[T]) IsUpdatable() bool { return c != nil && c.variant == Updatable }
func (c *Cow[T]) IsLazy() bool      { return c != nil && c.variant == Lazy }

// Borrow returns a read view of the current value. For Updatable and
// Lazy this is an atomically loaded snapshot: a replacement racing with
// the call yields either the old or the new value, never a mix, and the
// returned Ref keeps reading the same snapshot afterwards.
func (c *Cow[T]) Borrow() Ref[T] {
	if c == nil || c.consumed.Load() {
		return Ref[T]{}
	}

	switch c.variant {
	case Updatable:
		return Ref[T]{p: c.swap.Load()}
	case Lazy:
		c.ensureInit()
		return Ref[T]{p: c.swap.Load()}
	default:
		return Ref[T]{p: c.ptr}
	}
}

// ToMut returns a pointer through which the value may be mutated
// without affecting any other holder. Borrowed and Shared promote to
// Owned by cloning first; Owned hands out its payload directly.
// Updatable and Lazy refuse with ErrUnsupported: in-place mutation
// would break the snapshot guarantee for concurrent readers, use
// TryReplace instead.
func (c *Cow[T]) ToMut() (*T, error) {
	if c == nil || c.consumed.Load() {
		return nil, ErrConsumed
	}

	switch c.variant {
	case Borrowed, Shared:
		v := c.cloneVal(*c.ptr)
		c.ptr = &v
		c.variant = Owned
		return c.ptr, nil
	case Owned:
		return c.ptr, nil
	default:
		return nil, fmt.Errorf("%w: ToMut on %s", ErrUnsupported, c.variant)
	}
}

// IntoOwned moves the value out and retires the container: every later
// operation fails or returns zero values. Owned moves without cloning;
// Borrowed and Shared clone; Updatable and Lazy clone the current
// snapshot.
func (c *Cow[T]) IntoOwned() T {
	var zero T
	if c == nil || !c.consumed.CompareAndSwap(false, true) {
		return zero
	}

	switch c.variant {
	case Owned:
		return *c.ptr
	case Borrowed, Shared:
		return c.cloneVal(*c.ptr)
	case Lazy:
		c.ensureInit()
		fallthrough
	case Updatable:
		if p := c.swap.Load(); p != nil {
			return c.cloneVal(*p)
		}
		return zero
	default:
		return zero
	}
}

// ToShared returns a shared handle to an equivalent value. Shared
// aliases its existing handle; Borrowed clones into a fresh one; Owned
// hands over its payload and downgrades itself to Shared so the handle
// stays immutable; Updatable and Lazy freeze the current snapshot (the
// handle does not follow later replacements).
func (c *Cow[T]) ToShared() *T {
	if c == nil || c.consumed.Load() {
		return nil
	}

	switch c.variant {
	case Borrowed:
		v := c.cloneVal(*c.ptr)
		return &v
	case Owned:
		c.variant = Shared
		return c.ptr
	case Shared:
		return c.ptr
	case Lazy:
		c.ensureInit()
		return c.swap.Load()
	default:
		return c.swap.Load()
	}
}

// TryReplace atomically installs v as the current value of an Updatable
// or Lazy container with a single pointer swap. Readers holding earlier
// snapshots keep them; every Borrow that starts after TryReplace
// returns sees v or a later value. On any other variant it fails with
// ErrUnsupported and changes nothing.
func (c *Cow[T]) TryReplace(v T) error {
	if c == nil || c.consumed.Load() {
		return ErrConsumed
	}

	if c.variant != Updatable && c.variant != Lazy {
		return fmt.Errorf("%w: TryReplace on %s", ErrUnsupported, c.variant)
	}

	c.swap.Store(&v)
	c.watchers.broadcast(v)
	return nil
}

// Watch subscribes to values installed by TryReplace. Returns nil for
// variants that cannot be replaced.
func (c *Cow[T]) Watch() chan T {
	if c == nil || c.watchers == nil {
		return nil
	}
	return c.watchers.subscribe()
}

func (c *Cow[T]) Unwatch(ch chan T) {
	if c == nil || c.watchers == nil || ch == nil {
		return
	}
	c.watchers.unsubscribe(ch)
}

// Clone produces an independent container over the current value.
// Borrowed copies the reference, Owned deep-copies, Shared aliases the
// handle. Updatable and initialized Lazy clone into a Shared snapshot;
// an uninitialized Lazy clones into a fresh Lazy with the same init.
func (c *Cow[T]) Clone() *Cow[T] {
	if c == nil || c.consumed.Load() {
		return nil
	}

	var out *Cow[T]
	switch c.variant {
	case Borrowed:
		out = NewBorrowed(c.ptr)
	case Owned:
		out = NewOwned(c.cloneVal(*c.ptr))
	case Shared:
		out = NewShared(c.ptr)
	case Updatable:
		out = NewShared(c.swap.Load())
	case Lazy:
		if p := c.swap.Load(); p != nil {
			out = NewShared(p)
		} else {
			out = NewLazy(c.init)
		}
	}

	out.clone = c.clone
	out.equal = c.equal
	return out
}

// Equal compares current values regardless of variant. Uses the
// SetEqual hook when present, reflect.DeepEqual otherwise.
func (c *Cow[T]) Equal(other *Cow[T]) bool {
	if c == nil || other == nil {
		return c == other
	}

	a, b := c.Borrow(), other.Borrow()
	if a.p == nil || b.p == nil {
		return a.p == b.p
	}

	if c.equal != nil {
		return c.equal(*a.p, *b.p)
	}

	return reflect.DeepEqual(*a.p, *b.p)
}

func (c *Cow[T]) String() string {
	if c == nil {
		return "<nil>"
	}

	if c.consumed.Load() {
		return fmt.Sprintf("%s(consumed)", c.variant)
	}

	if c.variant == Lazy && c.swap.Load() == nil {
		return "Lazy(uninitialized)"
	}

	return fmt.Sprintf("%s(%v)", c.variant, c.Borrow().Val())
}

func (c *Cow[T]) cloneVal(v T) T {
	if c.clone != nil {
		return c.clone(v)
	}
	return v
}

// ensureInit runs the lazy init at most once. A replacement that landed
// before the first read wins: the init result is discarded unused.
func (c *Cow[T]) ensureInit() {
	c.once.Do(func() {
		if c.init == nil || c.swap.Load() != nil {
			return
		}
		v := c.init()
		c.swap.CompareAndSwap(nil, &v)
	})
}
