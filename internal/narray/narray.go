// Package narray implements N-dimensional strided array views over
// shared reference-counted buffers.
//
// An NArray describes a rectangular index space with a size and a step
// value per dimension. The step is the element distance to the next
// value along that dimension, which is what allows slicing, flipping,
// transposing, skipping and windowing without copying data: slicing
// drops a dimension/step pair, flipping negates a step, transposing
// swaps two pairs, and so on. Each operation adjusts the base offset so
// the view still covers the proper segment of the shared data.
//
// Because the data is a shared reference, distinct views can address
// overlapping regions of one buffer; manipulating views is thread-safe
// but modification of the data itself is not protected.
package narray

import (
	"fmt"
	"strings"
)

// NArray accesses a shared sequence of elements in an N-dimensional
// manner. The dimensionality is the length of its sizes tuple; it is a
// runtime property of the value, not of the type.
//
// The element at location loc lives at offset off + Σ loc[i]*steps[i]
// in the shared buffer, valid when 0 ≤ loc[i] < sizes[i] for all i.
//
// An NArray is either empty (no data referenced, sizes and steps zero)
// or every size is positive. Steps may be negative (reversed traversal)
// or zero (repeated data).
type NArray[T any] struct {
	buf   *buffer[T] // shared data, nil when empty
	off   int        // base offset into the buffer
	sizes Point      // dimension sizes
	steps Point      // step values
	ro    bool       // write protection tag
}

// New creates an array of the given sizes with zero-valued elements.
// A zero size yields an empty array of that dimensionality; a negative
// size panics with ErrInvalidSize.
func New[T any](sizes ...int) *NArray[T] {
	size := Pt(sizes...)
	if hasNegative(size) {
		panic(fmt.Errorf("%w: New(sizes): sizes must be non-negative", ErrInvalidSize))
	}
	if hasZero(size) {
		return emptyLike[T](len(size))
	}
	return &NArray[T]{
		buf:   newBuffer[T](size.Product()),
		sizes: size,
		steps: computeSteps(size),
	}
}

// Full creates an array of the given sizes with every element set to val.
func Full[T any](val T, sizes ...int) *NArray[T] {
	size := Pt(sizes...)
	if hasNegative(size) {
		panic(fmt.Errorf("%w: Full(val, sizes): sizes must be non-negative", ErrInvalidSize))
	}
	if hasZero(size) {
		return emptyLike[T](len(size))
	}
	return &NArray[T]{
		buf:   newBufferFull(size.Product(), val),
		sizes: size,
		steps: computeSteps(size),
	}
}

// FromFunc creates an array of the given sizes with elements produced by
// gen, called once per element in canonical order with the linear index.
func FromFunc[T any](gen func(i int) T, sizes ...int) *NArray[T] {
	size := Pt(sizes...)
	if hasNegative(size) {
		panic(fmt.Errorf("%w: FromFunc(gen, sizes): sizes must be non-negative", ErrInvalidSize))
	}
	if hasZero(size) {
		return emptyLike[T](len(size))
	}
	return &NArray[T]{
		buf:   newBufferFunc(size.Product(), gen),
		sizes: size,
		steps: computeSteps(size),
	}
}

// FromSlice creates an array of the given sizes with elements copied
// from data. The slice must hold at least the total size; surplus
// elements are ignored.
func FromSlice[T any](data []T, sizes ...int) (*NArray[T], error) {
	return FromSliceMode(data, Copy, sizes...)
}

// FromSliceMode creates an array of the given sizes backed by data
// according to the acquire mode: Assume adopts the slice, Copy copies
// it, Reference borrows it without owning it. For Assume and Reference
// the caller must not use the slice in ways that violate the view's
// expectations. The slice must hold at least the total size.
func FromSliceMode[T any](data []T, mode AcquireMode, sizes ...int) (*NArray[T], error) {
	size := Pt(sizes...)
	if hasNegative(size) {
		return nil, fmt.Errorf("%w: sizes must be non-negative", ErrInvalidSize)
	}
	if hasZero(size) {
		return emptyLike[T](len(size)), nil
	}
	if len(data) < size.Product() {
		return nil, fmt.Errorf("%w: data length %d < total size %d", ErrInvalidSize, len(data), size.Product())
	}
	return &NArray[T]{
		buf:   newBufferSlice(data, mode),
		sizes: size,
		steps: computeSteps(size),
	}, nil
}

// emptyLike returns the empty array of the given dimensionality.
func emptyLike[T any](dims int) *NArray[T] {
	return &NArray[T]{sizes: make(Point, dims), steps: make(Point, dims)}
}

// share derives a new view over the same buffer, bumping the reference
// count. The read-only tag carries over. Transforming an empty view
// yields an empty view of the target dimensionality.
func (a *NArray[T]) share(off int, sizes, steps Point) *NArray[T] {
	if a.buf == nil {
		return &NArray[T]{sizes: make(Point, len(sizes)), steps: make(Point, len(steps)), ro: a.ro}
	}
	a.buf.retain()
	return &NArray[T]{buf: a.buf, off: off, sizes: sizes, steps: steps, ro: a.ro}
}

// Retain returns a new counted reference to the same view, like copying
// an array value. The data is shared, not duplicated.
func (a *NArray[T]) Retain() *NArray[T] {
	if a.Empty() {
		return emptyLike[T](a.Dims())
	}
	return a.share(a.off, a.sizes.Clone(), a.steps.Clone())
}

// Clear drops this view's reference to the data, destructing the
// storage if it was the last reference, and leaves the view empty.
func (a *NArray[T]) Clear() {
	if a.buf != nil {
		a.buf.release()
		a.buf = nil
	}
	a.off = 0
	a.sizes = make(Point, len(a.sizes))
	a.steps = make(Point, len(a.steps))
}

// Dims returns the dimensionality of the view.
func (a *NArray[T]) Dims() int {
	return len(a.sizes)
}

// Sizes returns the dimension sizes. The returned point must not be
// modified.
func (a *NArray[T]) Sizes() Point {
	return a.sizes
}

// Size returns the total count of accessible elements.
func (a *NArray[T]) Size() int {
	if a.Empty() {
		return 0
	}
	return a.sizes.Product()
}

// SizeAt returns the size along the given dimension.
func (a *NArray[T]) SizeAt(dim int) int {
	if dim < 0 || dim >= len(a.sizes) {
		panic(fmt.Errorf("%w: SizeAt(dim): dim out of bounds", ErrBounds))
	}
	return a.sizes[dim]
}

// Width returns the size of dimension 0.
func (a *NArray[T]) Width() int { return a.SizeAt(0) }

// Height returns the size of dimension 1.
func (a *NArray[T]) Height() int { return a.SizeAt(1) }

// Depth returns the size of dimension 2.
func (a *NArray[T]) Depth() int { return a.SizeAt(2) }

// Steps returns the step values. The returned point must not be
// modified.
func (a *NArray[T]) Steps() Point {
	return a.steps
}

// StepAt returns the step value along the given dimension.
func (a *NArray[T]) StepAt(dim int) int {
	if dim < 0 || dim >= len(a.steps) {
		panic(fmt.Errorf("%w: StepAt(dim): dim out of bounds", ErrBounds))
	}
	return a.steps[dim]
}

// Empty returns true if no data is referenced.
func (a *NArray[T]) Empty() bool {
	return a.buf == nil
}

// Unique returns true if data is referenced and this view holds the
// only reference.
func (a *NArray[T]) Unique() bool {
	return a.buf != nil && a.buf.unique()
}

// Shared returns true if data is referenced and other views reference
// it too.
func (a *NArray[T]) Shared() bool {
	return a.buf != nil && !a.buf.unique()
}

// ReadOnly returns true if mutating operations are rejected through
// this view.
func (a *NArray[T]) ReadOnly() bool {
	return a.ro
}

// IsContiguous returns true if the view accesses its data with no gaps:
// the signed address extent plus one equals the element count. A flipped
// view is not contiguous even though it covers a gapless region;
// AsAligned normalizes it first.
func (a *NArray[T]) IsContiguous() bool {
	span := 1
	for i := range a.sizes {
		span += a.steps[i] * (a.sizes[i] - 1)
	}
	return span == a.Size()
}

// IsAligned returns true if the view accesses its data linearly:
// visiting elements in canonical index order walks strictly increasing
// addresses. An empty view is not aligned.
func (a *NArray[T]) IsAligned() bool {
	if a.Empty() {
		return false
	}
	maxOffset := 0
	for i := len(a.sizes); i > 0; i-- {
		if a.sizes[i-1] == 1 {
			continue
		}
		if maxOffset > a.steps[i-1] {
			return false
		}
		maxOffset += (a.sizes[i-1] - 1) * a.steps[i-1]
	}
	return true
}

// At returns the element at that location, checking every axis.
func (a *NArray[T]) At(loc ...int) T {
	if a.Empty() {
		panic(fmt.Errorf("%w: At(loc): invalid when empty", ErrEmpty))
	}
	if len(loc) != len(a.sizes) {
		panic(fmt.Errorf("%w: At(loc): got %d indices for %d dimensions", ErrBounds, len(loc), len(a.sizes)))
	}
	for i := range loc {
		if loc[i] < 0 || loc[i] >= a.sizes[i] {
			panic(fmt.Errorf("%w: At(loc): index %d out of range for dimension %d", ErrBounds, loc[i], i))
		}
	}
	return a.buf.data[a.offsetOf(loc)]
}

// AtUnchecked returns the element at that location without bounds
// checks.
func (a *NArray[T]) AtUnchecked(loc Point) T {
	return a.buf.data[a.offsetOf(loc)]
}

// Set writes the element at that location, checking every axis.
func (a *NArray[T]) Set(val T, loc ...int) {
	if a.ro {
		panic(fmt.Errorf("%w: Set(val, loc)", ErrReadOnly))
	}
	if a.Empty() {
		panic(fmt.Errorf("%w: Set(val, loc): invalid when empty", ErrEmpty))
	}
	if len(loc) != len(a.sizes) {
		panic(fmt.Errorf("%w: Set(val, loc): got %d indices for %d dimensions", ErrBounds, len(loc), len(a.sizes)))
	}
	for i := range loc {
		if loc[i] < 0 || loc[i] >= a.sizes[i] {
			panic(fmt.Errorf("%w: Set(val, loc): index %d out of range for dimension %d", ErrBounds, loc[i], i))
		}
	}
	a.buf.data[a.offsetOf(loc)] = val
}

// Value dereferences a 0-dimensional view as its single element.
func (a *NArray[T]) Value() T {
	if len(a.sizes) != 0 {
		panic(fmt.Errorf("%w: Value(): invalid when dimensions > 0", ErrBounds))
	}
	if a.Empty() {
		panic(fmt.Errorf("%w: Value(): view references no data", ErrEmpty))
	}
	return a.buf.data[a.off]
}

// SetValue writes the single element a 0-dimensional view denotes.
func (a *NArray[T]) SetValue(val T) {
	if a.ro {
		panic(fmt.Errorf("%w: SetValue(val)", ErrReadOnly))
	}
	if len(a.sizes) != 0 {
		panic(fmt.Errorf("%w: SetValue(val): invalid when dimensions > 0", ErrBounds))
	}
	if a.Empty() {
		panic(fmt.Errorf("%w: SetValue(val): view references no data", ErrEmpty))
	}
	a.buf.data[a.off] = val
}

// Data returns the backing storage from this view's base onward. The
// whole segment may be accessed directly when IsContiguous and
// IsAligned, or by respecting Sizes and Steps.
func (a *NArray[T]) Data() []T {
	if a.Empty() {
		return nil
	}
	return a.buf.data[a.off:]
}

func (a *NArray[T]) offsetOf(loc Point) int {
	off := a.off
	for i := range loc {
		off += loc[i] * a.steps[i]
	}
	return off
}

// ForEach calls fn on every element in canonical index order.
func (a *NArray[T]) ForEach(fn func(val T)) {
	if a.Empty() {
		return
	}
	unaryWalk(a.sizes, a.buf.data, a.off, a.steps, func(p *T) { fn(*p) })
}

// Apply replaces every element with fn of its current value, in
// canonical index order.
func (a *NArray[T]) Apply(fn func(val T) T) {
	if a.ro {
		panic(fmt.Errorf("%w: Apply(fn)", ErrReadOnly))
	}
	if a.Empty() {
		return
	}
	unaryWalk(a.sizes, a.buf.data, a.off, a.steps, func(p *T) { *p = fn(*p) })
}

// SetTo writes the elements of src into the data this view references.
// The dimension sizes must match.
func (a *NArray[T]) SetTo(src *NArray[T]) {
	if a.ro {
		panic(fmt.Errorf("%w: SetTo(src)", ErrReadOnly))
	}
	if !a.sizes.Equal(src.sizes) {
		panic(fmt.Errorf("%w: SetTo(src): dimensions must match", ErrInvalidSize))
	}
	if a.Empty() {
		return
	}
	binaryWalk(a.sizes, a.buf.data, a.off, a.steps, src.buf.data, src.off, src.steps,
		func(dst, s *T) { *dst = *s })
}

// Fill writes val into every element this view references.
func (a *NArray[T]) Fill(val T) {
	if a.ro {
		panic(fmt.Errorf("%w: Fill(val)", ErrReadOnly))
	}
	if a.Empty() {
		return
	}
	unaryWalk(a.sizes, a.buf.data, a.off, a.steps, func(p *T) { *p = val })
}

// SetToMask writes the elements of src where mask is true, leaving
// other elements untouched. All dimension sizes must match.
func (a *NArray[T]) SetToMask(src *NArray[T], mask *NArray[bool]) {
	if a.ro {
		panic(fmt.Errorf("%w: SetToMask(src, mask)", ErrReadOnly))
	}
	if !a.sizes.Equal(src.sizes) || !a.sizes.Equal(mask.sizes) {
		panic(fmt.Errorf("%w: SetToMask(src, mask): dimensions must match", ErrInvalidSize))
	}
	if a.Empty() {
		return
	}
	ternaryWalk(a.sizes, a.buf.data, a.off, a.steps, src.buf.data, src.off, src.steps,
		mask.buf.data, mask.off, mask.steps,
		func(dst, s *T, m *bool) {
			if *m {
				*dst = *s
			}
		})
}

// FillMask writes val where mask is true, leaving other elements
// untouched. The mask sizes must match.
func (a *NArray[T]) FillMask(val T, mask *NArray[bool]) {
	if a.ro {
		panic(fmt.Errorf("%w: FillMask(val, mask)", ErrReadOnly))
	}
	if !a.sizes.Equal(mask.sizes) {
		panic(fmt.Errorf("%w: FillMask(val, mask): dimensions must match", ErrInvalidSize))
	}
	if a.Empty() {
		return
	}
	binaryWalk(a.sizes, a.buf.data, a.off, a.steps, mask.buf.data, mask.off, mask.steps,
		func(dst *T, m *bool) {
			if *m {
				*dst = val
			}
		})
}

// Clone copies the referenced data into a new array with its own
// buffer, reading this view in canonical index order. The result is
// contiguous, aligned, uniquely referenced, and writable.
func (a *NArray[T]) Clone() *NArray[T] {
	if a.Empty() {
		return emptyLike[T](a.Dims())
	}
	ret := &NArray[T]{
		buf:   newBuffer[T](a.sizes.Product()),
		sizes: a.sizes.Clone(),
		steps: computeSteps(a.sizes),
	}
	binaryWalk(a.sizes, ret.buf.data, 0, ret.steps, a.buf.data, a.off, a.steps,
		func(dst, src *T) { *dst = *src })
	return ret
}

// Convert maps src element-wise through fn into a new array of a
// possibly different element type. The paired source and destination
// strides are condensed together before traversal to reduce recursion
// depth.
func Convert[U, T any](src *NArray[T], fn func(T) U) *NArray[U] {
	if src.Empty() {
		return emptyLike[U](src.Dims())
	}
	ret := &NArray[U]{
		buf:   newBuffer[U](src.sizes.Product()),
		sizes: src.sizes.Clone(),
		steps: computeSteps(src.sizes),
	}
	if src.Dims() == 0 {
		ret.buf.data[0] = fn(src.buf.data[src.off])
		return ret
	}
	sizes := src.sizes.Clone()
	steps1 := src.steps.Clone()
	steps2 := ret.steps.Clone()
	n := condensePair(sizes, steps1, steps2)
	binaryWalk(sizes[:n], ret.buf.data, 0, steps2[:n], src.buf.data, src.off, steps1[:n],
		func(dst *U, s *T) { *dst = fn(*s) })
	return ret
}

// Compress folds the trailing dimensions of src into single elements:
// for every coordinate of the leading m dimensions, fn receives the
// sub-array of the remaining dimensions and produces one element of the
// m-dimensional result.
func Compress[T any](src *NArray[T], m int, fn func(sub *NArray[T]) T) *NArray[T] {
	if m <= 0 || m > src.Dims() {
		panic(fmt.Errorf("%w: Compress(src, m, fn): m out of bounds", ErrBounds))
	}
	if src.Empty() {
		return emptyLike[T](m)
	}
	ret := New[T](src.sizes.Low(m)...)
	cur := ret.Cursor()
	defer cur.Close()
	for sub := range src.Subarrays(src.Dims() - m) {
		cur.Set(fn(sub))
		cur.Next()
	}
	return ret
}

// ElemEqual reports whether two arrays have the same dimension sizes
// and eq holds for every corresponding element pair. Two empty arrays
// compare equal.
func ElemEqual[T any](a, b *NArray[T], eq func(x, y T) bool) bool {
	if !a.sizes.Equal(b.sizes) {
		return false
	}
	if a.Empty() || b.Empty() {
		return a.Empty() == b.Empty()
	}
	return every(a.sizes, a.buf.data, a.off, a.steps, b.buf.data, b.off, b.steps, eq)
}

// String renders the sizes and, for small arrays, the elements in
// canonical order.
func (a *NArray[T]) String() string {
	var sb strings.Builder
	sb.WriteString("NArray")
	fmt.Fprintf(&sb, "%v", []int(a.sizes))
	if a.Empty() {
		sb.WriteString("<empty>")
		return sb.String()
	}
	const maxElems = 64
	sb.WriteByte('{')
	n := 0
	a.ForEach(func(v T) {
		if n >= maxElems {
			return
		}
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v)
		n++
	})
	if a.Size() > maxElems {
		sb.WriteString(" ...")
	}
	sb.WriteByte('}')
	return sb.String()
}
