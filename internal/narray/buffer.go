package narray

import (
	"sync"
	"sync/atomic"
)

// AcquireMode controls how a buffer takes over a caller-provided slice.
type AcquireMode int

const (
	// Assume adopts the slice as backing storage; the buffer owns it and
	// drops it when the last reference releases.
	Assume AcquireMode = iota
	// Copy copies the slice contents into freshly allocated storage.
	Copy
	// Reference uses the slice without owning it; the final release leaves
	// the slice untouched.
	Reference
)

// buffer is reference-counted shared element storage. Views that address
// overlapping regions of the same data all hold a counted reference to
// one buffer; the storage is dropped exactly once, when the count
// reaches zero.
type buffer[T any] struct {
	data  []T
	refs  atomic.Int32
	mu    sync.Mutex // guards deallocation
	owned bool
}

// newBuffer creates zero-valued storage for n elements with refs = 1.
func newBuffer[T any](n int) *buffer[T] {
	b := &buffer[T]{data: make([]T, n), owned: true}
	b.refs.Store(1)
	return b
}

// newBufferFull creates storage for n copies of val with refs = 1.
func newBufferFull[T any](n int, val T) *buffer[T] {
	b := newBuffer[T](n)
	for i := range b.data {
		b.data[i] = val
	}
	return b
}

// newBufferSlice creates storage from a caller-provided slice according
// to the acquire mode.
func newBufferSlice[T any](data []T, mode AcquireMode) *buffer[T] {
	b := &buffer[T]{owned: mode != Reference}
	if mode == Copy {
		b.data = make([]T, len(data))
		copy(b.data, data)
	} else {
		b.data = data
	}
	b.refs.Store(1)
	return b
}

// newBufferFunc creates storage for n elements produced by gen, called
// once per element in order.
func newBufferFunc[T any](n int, gen func(i int) T) *buffer[T] {
	b := &buffer[T]{data: make([]T, n), owned: true}
	for i := range b.data {
		b.data[i] = gen(i)
	}
	b.refs.Store(1)
	return b
}

// retain increments the reference count (for views sharing the data).
func (b *buffer[T]) retain() {
	b.refs.Add(1)
}

// release decrements the reference count and drops the storage if it
// reaches zero and the buffer owns it.
func (b *buffer[T]) release() {
	if b.refs.Add(-1) == 0 && b.owned {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// unique returns true if this buffer has only one reference.
func (b *buffer[T]) unique() bool {
	return b.refs.Load() == 1
}
