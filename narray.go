// Copyright 2026 The NArray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package narray

import (
	"cmp"
	"io"

	"github.com/kmdreko/narray/internal/narray"
)

// NArray is an N-dimensional view over a shared buffer of T.
type NArray[T any] = narray.NArray[T]

// Point is a list of per-dimension values: a location, a set of sizes,
// or a set of steps.
type Point = narray.Point

// Cursor walks a view's elements in canonical index order.
type Cursor[T any] = narray.Cursor[T]

// Number covers the built-in numeric types usable with the arithmetic
// reductions and element-wise operators.
type Number = narray.Number

// AcquireMode selects how FromSliceMode takes ownership of caller data.
type AcquireMode = narray.AcquireMode

// Acquire mode constants.
const (
	Assume    AcquireMode = narray.Assume
	Copy      AcquireMode = narray.Copy
	Reference AcquireMode = narray.Reference
)

// Sentinel errors wrapped by the panics raised on contract violations.
var (
	ErrBounds      = narray.ErrBounds
	ErrInvalidSize = narray.ErrInvalidSize
	ErrShape       = narray.ErrShape
	ErrReadOnly    = narray.ErrReadOnly
	ErrEmpty       = narray.ErrEmpty
)

// Pt builds a Point from its arguments.
func Pt(vals ...int) Point {
	return narray.Pt(vals...)
}

// New creates an array of the given dimension sizes filled with the
// zero value of T. A zero size yields an empty view; a negative size
// is invalid.
func New[T any](sizes ...int) *NArray[T] {
	return narray.New[T](sizes...)
}

// Full creates an array of the given dimension sizes with every
// element set to val.
func Full[T any](val T, sizes ...int) *NArray[T] {
	return narray.Full(val, sizes...)
}

// FromFunc creates an array of the given dimension sizes, filling it
// by calling gen with each canonical-order linear index.
func FromFunc[T any](gen func(i int) T, sizes ...int) *NArray[T] {
	return narray.FromFunc(gen, sizes...)
}

// FromSlice creates an array over a copy of data, which must hold at
// least the product of the sizes; surplus elements are ignored.
func FromSlice[T any](data []T, sizes ...int) (*NArray[T], error) {
	return narray.FromSlice(data, sizes...)
}

// FromSliceMode creates an array over data according to mode: Assume
// takes ownership, Copy duplicates, and Reference shares without
// taking ownership.
func FromSliceMode[T any](data []T, mode AcquireMode, sizes ...int) (*NArray[T], error) {
	return narray.FromSliceMode(data, mode, sizes...)
}

// Convert maps src element-wise through fn into a new array of a
// possibly different element type.
func Convert[U, T any](src *NArray[T], fn func(T) U) *NArray[U] {
	return narray.Convert(src, fn)
}

// Compress folds the trailing dimensions of src into single elements,
// producing an array of the leading m dimensions.
func Compress[T any](src *NArray[T], m int, fn func(sub *NArray[T]) T) *NArray[T] {
	return narray.Compress(src, m, fn)
}

// ElemEqual reports whether two arrays have the same dimension sizes
// and eq holds for every corresponding element pair.
func ElemEqual[T any](a, b *NArray[T], eq func(x, y T) bool) bool {
	return narray.ElemEqual(a, b, eq)
}

// Save writes the array to w in the .narr format, in canonical index
// order. The element type must have a fixed byte size; int, uint and
// uintptr are rejected.
func Save[T Number](w io.Writer, a *NArray[T]) error {
	return narray.Save(w, a)
}

// Load reads a .narr stream written by Save, returning a fresh
// contiguous array. The stored element type must match T.
func Load[T Number](r io.Reader) (*NArray[T], error) {
	return narray.Load[T](r)
}

// Sum returns the sum of all elements.
func Sum[T Number](a *NArray[T]) T {
	return narray.Sum(a)
}

// Mean returns the arithmetic mean of all elements.
func Mean[T Number](a *NArray[T]) T {
	return narray.Mean(a)
}

// Min returns the smallest element.
func Min[T cmp.Ordered](a *NArray[T]) T {
	return narray.Min(a)
}

// Max returns the largest element.
func Max[T cmp.Ordered](a *NArray[T]) T {
	return narray.Max(a)
}

// MinAt returns the location of the smallest element.
func MinAt[T cmp.Ordered](a *NArray[T]) Point {
	return narray.MinAt(a)
}

// MaxAt returns the location of the largest element.
func MaxAt[T cmp.Ordered](a *NArray[T]) Point {
	return narray.MaxAt(a)
}

// Count returns how many elements satisfy pred.
func Count[T any](a *NArray[T], pred func(T) bool) int {
	return narray.Count(a, pred)
}

// Median returns the element of rank size/2 in sorted order, the lower
// middle for an even count.
func Median[T cmp.Ordered](a *NArray[T]) T {
	return narray.Median(a)
}

// Add returns the element-wise sum of a and b.
func Add[T Number](a, b *NArray[T]) *NArray[T] {
	return narray.Add(a, b)
}

// Sub returns the element-wise difference of a and b.
func Sub[T Number](a, b *NArray[T]) *NArray[T] {
	return narray.Sub(a, b)
}

// Mul returns the element-wise product of a and b.
func Mul[T Number](a, b *NArray[T]) *NArray[T] {
	return narray.Mul(a, b)
}

// Div returns the element-wise quotient of a and b.
func Div[T Number](a, b *NArray[T]) *NArray[T] {
	return narray.Div(a, b)
}

// AddAssign adds the elements of src into dst element-wise.
func AddAssign[T Number](dst, src *NArray[T]) {
	narray.AddAssign(dst, src)
}

// SubAssign subtracts the elements of src from dst element-wise.
func SubAssign[T Number](dst, src *NArray[T]) {
	narray.SubAssign(dst, src)
}

// MulAssign multiplies dst by the elements of src element-wise.
func MulAssign[T Number](dst, src *NArray[T]) {
	narray.MulAssign(dst, src)
}

// DivAssign divides dst by the elements of src element-wise.
func DivAssign[T Number](dst, src *NArray[T]) {
	narray.DivAssign(dst, src)
}

// AddScalar adds val to every element of dst in place.
func AddScalar[T Number](dst *NArray[T], val T) {
	narray.AddScalar(dst, val)
}

// SubScalar subtracts val from every element of dst in place.
func SubScalar[T Number](dst *NArray[T], val T) {
	narray.SubScalar(dst, val)
}

// MulScalar multiplies every element of dst by val in place.
func MulScalar[T Number](dst *NArray[T], val T) {
	narray.MulScalar(dst, val)
}

// DivScalar divides every element of dst by val in place.
func DivScalar[T Number](dst *NArray[T], val T) {
	narray.DivScalar(dst, val)
}
