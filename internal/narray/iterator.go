package narray

import (
	"fmt"
	"iter"
)

// Cursor walks a view's elements in canonical index order: the last
// dimension varies fastest. The cursor keeps its own counted reference
// to the data, so it remains usable after the view it came from is
// cleared.
type Cursor[T any] struct {
	arr *NArray[T]
	pos Point
}

// Cursor returns a cursor positioned at the first element.
func (a *NArray[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{arr: a.Retain(), pos: make(Point, max(len(a.sizes), 1))}
}

// CursorAt returns a cursor positioned at pos.
func (a *NArray[T]) CursorAt(pos Point) *Cursor[T] {
	if len(pos) != max(len(a.sizes), 1) {
		panic(fmt.Errorf("%w: CursorAt(pos): pos dimensionality must match", ErrBounds))
	}
	return &Cursor[T]{arr: a.Retain(), pos: pos.Clone()}
}

// Valid reports whether the cursor is at an element; it turns false
// once the cursor advances past either end.
func (c *Cursor[T]) Valid() bool {
	if c.arr.Empty() {
		return false
	}
	if c.arr.Dims() == 0 {
		return c.pos[0] == 0
	}
	return c.pos[0] >= 0 && c.pos[0] < c.arr.sizes[0]
}

// Next advances the cursor by one position in canonical order.
func (c *Cursor[T]) Next() {
	c.Advance(1)
}

// Advance moves the cursor by n positions in canonical order; n may be
// negative.
func (c *Cursor[T]) Advance(n int) {
	sizes := c.arr.sizes
	if len(sizes) == 0 {
		c.pos[0] += n
		return
	}
	for i := len(sizes) - 1; i > 0; i-- {
		c.pos[i] += n
		n = 0
		for c.pos[i] < 0 {
			c.pos[i] += sizes[i]
			n--
		}
		for c.pos[i] >= sizes[i] {
			c.pos[i] -= sizes[i]
			n++
		}
		if n == 0 {
			return
		}
	}
	c.pos[0] += n
}

// Pos returns the location the cursor points at.
func (c *Cursor[T]) Pos() Point {
	return c.pos.Clone()
}

// Index returns the canonical-order linear index of the cursor.
func (c *Cursor[T]) Index() int {
	idx := 0
	for i := range c.arr.sizes {
		idx = idx*c.arr.sizes[i] + c.pos[i]
	}
	return idx
}

// Value returns the element at the cursor position. Invalid outside the
// view's bounds.
func (c *Cursor[T]) Value() T {
	if c.arr.Dims() == 0 {
		return c.arr.Value()
	}
	return c.arr.AtUnchecked(c.pos)
}

// Set writes the element at the cursor position.
func (c *Cursor[T]) Set(val T) {
	if c.arr.ro {
		panic(fmt.Errorf("%w: Cursor.Set(val)", ErrReadOnly))
	}
	if c.arr.Dims() == 0 {
		c.arr.SetValue(val)
		return
	}
	c.arr.buf.data[c.arr.offsetOf(c.pos)] = val
}

// Close drops the cursor's data reference.
func (c *Cursor[T]) Close() {
	c.arr.Clear()
}

// Values yields every element in canonical index order.
func (a *NArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if a.Empty() {
			return
		}
		walkValues(a.sizes, a.buf.data, a.off, a.steps, yield)
	}
}

// All yields every (location, element) pair in canonical index order.
// The yielded location is reused between iterations; clone it to keep
// it.
func (a *NArray[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		if a.Empty() {
			return
		}
		pos := make(Point, len(a.sizes))
		walkAll(a, 0, pos, yield)
	}
}

func walkValues[T any](sizes Point, data []T, off int, steps Point, yield func(T) bool) bool {
	if len(sizes) == 0 {
		return yield(data[off])
	}
	if len(sizes) == 1 {
		for i, o := 0, off; i < sizes[0]; i, o = i+1, o+steps[0] {
			if !yield(data[o]) {
				return false
			}
		}
		return true
	}
	for i, o := 0, off; i < sizes[0]; i, o = i+1, o+steps[0] {
		if !walkValues(sizes[1:], data, o, steps[1:], yield) {
			return false
		}
	}
	return true
}

func walkAll[T any](a *NArray[T], dim int, pos Point, yield func(Point, T) bool) bool {
	if dim == len(a.sizes) {
		return yield(pos, a.AtUnchecked(pos))
	}
	for i := 0; i < a.sizes[dim]; i++ {
		pos[dim] = i
		if !walkAll(a, dim+1, pos, yield) {
			return false
		}
	}
	return true
}

// Subarrays yields every distinct sub-array of the trailing m
// dimensions, fixing the leading dimensions to each legal coordinate in
// canonical order. m must be less than the view's dimensionality. Each
// yielded view is loaned for the duration of the loop body; call Retain
// to keep one past it.
func (a *NArray[T]) Subarrays(m int) iter.Seq[*NArray[T]] {
	if m < 0 || m >= a.Dims() {
		panic(fmt.Errorf("%w: Subarrays(m): m out of bounds", ErrBounds))
	}
	return func(yield func(*NArray[T]) bool) {
		if a.Empty() {
			return
		}
		lead := a.Dims() - m
		pos := make(Point, lead)
		for {
			sub := a.subarrayAt(pos)
			ok := yield(sub)
			sub.Clear()
			if !ok {
				return
			}
			i := lead - 1
			for ; i >= 0; i-- {
				pos[i]++
				if pos[i] < a.sizes[i] {
					break
				}
				pos[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
