package narray

import "fmt"

// Transformation functions. Each creates a new view that references the
// shared data, computing a new (base offset, sizes, steps) triple from
// the current one. No data is copied; the buffer reference count is
// incremented. Checked public operations validate their preconditions
// and delegate to an unchecked unexported counterpart.

// Slice returns the view of one fewer dimension at position n along the
// specified dimension.
func (a *NArray[T]) Slice(dim, n int) *NArray[T] {
	if dim < 0 || dim >= len(a.sizes) {
		panic(fmt.Errorf("%w: Slice(dim, n): dim out of bounds", ErrBounds))
	}
	if n < 0 || n >= a.sizes[dim] {
		panic(fmt.Errorf("%w: Slice(dim, n): n out of bounds", ErrBounds))
	}
	return a.slice(dim, n)
}

// SliceX returns the slice at position x along dimension 0.
func (a *NArray[T]) SliceX(x int) *NArray[T] {
	if x < 0 || x >= a.sizeOrZero(0) {
		panic(fmt.Errorf("%w: SliceX(x): x out of bounds", ErrBounds))
	}
	return a.slice(0, x)
}

// SliceY returns the slice at position y along dimension 1.
func (a *NArray[T]) SliceY(y int) *NArray[T] {
	a.requireDims("SliceY(y)", 2)
	if y < 0 || y >= a.sizes[1] {
		panic(fmt.Errorf("%w: SliceY(y): y out of bounds", ErrBounds))
	}
	return a.slice(1, y)
}

// SliceZ returns the slice at position z along dimension 2.
func (a *NArray[T]) SliceZ(z int) *NArray[T] {
	a.requireDims("SliceZ(z)", 3)
	if z < 0 || z >= a.sizes[2] {
		panic(fmt.Errorf("%w: SliceZ(z): z out of bounds", ErrBounds))
	}
	return a.slice(2, z)
}

// SliceW returns the slice at position w along dimension 3.
func (a *NArray[T]) SliceW(w int) *NArray[T] {
	a.requireDims("SliceW(w)", 4)
	if w < 0 || w >= a.sizes[3] {
		panic(fmt.Errorf("%w: SliceW(w): w out of bounds", ErrBounds))
	}
	return a.slice(3, w)
}

func (a *NArray[T]) slice(dim, n int) *NArray[T] {
	return a.share(a.off+a.steps[dim]*n, a.sizes.Removed(dim), a.steps.Removed(dim))
}

// Range returns the view restricted to length positions starting at
// start along the specified dimension.
func (a *NArray[T]) Range(dim, start, length int) *NArray[T] {
	if dim < 0 || dim >= len(a.sizes) {
		panic(fmt.Errorf("%w: Range(dim, start, length): dim out of bounds", ErrBounds))
	}
	a.checkRange("Range(dim, start, length)", dim, start, length)
	return a.rng(dim, start, length)
}

// RangeX restricts dimension 0 to [start, start+length).
func (a *NArray[T]) RangeX(start, length int) *NArray[T] {
	a.requireDims("RangeX(start, length)", 1)
	a.checkRange("RangeX(start, length)", 0, start, length)
	return a.rng(0, start, length)
}

// RangeY restricts dimension 1 to [start, start+length).
func (a *NArray[T]) RangeY(start, length int) *NArray[T] {
	a.requireDims("RangeY(start, length)", 2)
	a.checkRange("RangeY(start, length)", 1, start, length)
	return a.rng(1, start, length)
}

// RangeZ restricts dimension 2 to [start, start+length).
func (a *NArray[T]) RangeZ(start, length int) *NArray[T] {
	a.requireDims("RangeZ(start, length)", 3)
	a.checkRange("RangeZ(start, length)", 2, start, length)
	return a.rng(2, start, length)
}

// RangeW restricts dimension 3 to [start, start+length).
func (a *NArray[T]) RangeW(start, length int) *NArray[T] {
	a.requireDims("RangeW(start, length)", 4)
	a.checkRange("RangeW(start, length)", 3, start, length)
	return a.rng(3, start, length)
}

func (a *NArray[T]) checkRange(op string, dim, start, length int) {
	if start < 0 || start >= a.sizes[dim] {
		panic(fmt.Errorf("%w: %s: start out of bounds", ErrBounds, op))
	}
	if length <= 0 || start+length > a.sizes[dim] {
		panic(fmt.Errorf("%w: %s: length out of bounds", ErrBounds, op))
	}
}

func (a *NArray[T]) rng(dim, start, length int) *NArray[T] {
	sizes := a.sizes.Clone()
	sizes[dim] = length
	return a.share(a.off+a.steps[dim]*start, sizes, a.steps.Clone())
}

// Flip returns the view with the specified dimension reversed.
func (a *NArray[T]) Flip(dim int) *NArray[T] {
	if dim < 0 || dim >= len(a.sizes) {
		panic(fmt.Errorf("%w: Flip(dim): dim out of bounds", ErrBounds))
	}
	return a.flip(dim)
}

// FlipX reverses dimension 0.
func (a *NArray[T]) FlipX() *NArray[T] {
	a.requireDims("FlipX()", 1)
	return a.flip(0)
}

// FlipY reverses dimension 1.
func (a *NArray[T]) FlipY() *NArray[T] {
	a.requireDims("FlipY()", 2)
	return a.flip(1)
}

// FlipZ reverses dimension 2.
func (a *NArray[T]) FlipZ() *NArray[T] {
	a.requireDims("FlipZ()", 3)
	return a.flip(2)
}

// FlipW reverses dimension 3.
func (a *NArray[T]) FlipW() *NArray[T] {
	a.requireDims("FlipW()", 4)
	return a.flip(3)
}

func (a *NArray[T]) flip(dim int) *NArray[T] {
	steps := a.steps.Clone()
	off := a.off + steps[dim]*(a.sizes[dim]-1)
	steps[dim] = -steps[dim]
	return a.share(off, a.sizes.Clone(), steps)
}

// Skip returns the view that keeps every n-th position along the
// specified dimension, beginning at start.
func (a *NArray[T]) Skip(dim, n, start int) *NArray[T] {
	if dim < 0 || dim >= len(a.sizes) {
		panic(fmt.Errorf("%w: Skip(dim, n, start): dim out of bounds", ErrBounds))
	}
	a.checkSkip("Skip(dim, n, start)", dim, n, start)
	return a.skip(dim, n, start)
}

// SkipX keeps every n-th position along dimension 0, beginning at start.
func (a *NArray[T]) SkipX(n, start int) *NArray[T] {
	a.requireDims("SkipX(n, start)", 1)
	a.checkSkip("SkipX(n, start)", 0, n, start)
	return a.skip(0, n, start)
}

// SkipY keeps every n-th position along dimension 1, beginning at start.
func (a *NArray[T]) SkipY(n, start int) *NArray[T] {
	a.requireDims("SkipY(n, start)", 2)
	a.checkSkip("SkipY(n, start)", 1, n, start)
	return a.skip(1, n, start)
}

// SkipZ keeps every n-th position along dimension 2, beginning at start.
func (a *NArray[T]) SkipZ(n, start int) *NArray[T] {
	a.requireDims("SkipZ(n, start)", 3)
	a.checkSkip("SkipZ(n, start)", 2, n, start)
	return a.skip(2, n, start)
}

// SkipW keeps every n-th position along dimension 3, beginning at start.
func (a *NArray[T]) SkipW(n, start int) *NArray[T] {
	a.requireDims("SkipW(n, start)", 4)
	a.checkSkip("SkipW(n, start)", 3, n, start)
	return a.skip(3, n, start)
}

func (a *NArray[T]) checkSkip(op string, dim, n, start int) {
	if n < 1 {
		panic(fmt.Errorf("%w: %s: n out of bounds", ErrBounds, op))
	}
	if start < 0 || start >= a.sizes[dim] {
		panic(fmt.Errorf("%w: %s: start out of bounds", ErrBounds, op))
	}
}

func (a *NArray[T]) skip(dim, n, start int) *NArray[T] {
	sizes := a.sizes.Clone()
	steps := a.steps.Clone()
	sizes[dim] = (a.sizes[dim] - start + n - 1) / n
	steps[dim] = a.steps[dim] * n
	return a.share(a.off+a.steps[dim]*start, sizes, steps)
}

// Transpose returns the view with two dimensions swapped. With no
// arguments it swaps dimensions 0 and 1.
func (a *NArray[T]) Transpose(dims ...int) *NArray[T] {
	var d1, d2 int
	switch len(dims) {
	case 0:
		a.requireDims("Transpose()", 2)
		d1, d2 = 0, 1
	case 2:
		d1, d2 = dims[0], dims[1]
	default:
		panic(fmt.Errorf("%w: Transpose(dims): want zero or two dimensions", ErrBounds))
	}
	if d1 < 0 || d1 >= len(a.sizes) {
		panic(fmt.Errorf("%w: Transpose(dim1, dim2): dim1 out of bounds", ErrBounds))
	}
	if d2 < 0 || d2 >= len(a.sizes) {
		panic(fmt.Errorf("%w: Transpose(dim1, dim2): dim2 out of bounds", ErrBounds))
	}
	return a.share(a.off, a.sizes.Swapped(d1, d2), a.steps.Swapped(d1, d2))
}

// Subarray returns the view of the region of the given size at loc.
func (a *NArray[T]) Subarray(loc, size Point) *NArray[T] {
	if len(loc) != len(a.sizes) || len(size) != len(a.sizes) {
		panic(fmt.Errorf("%w: Subarray(loc, size): dimensions must match", ErrBounds))
	}
	off := a.off
	for i := range a.sizes {
		if size[i] <= 0 || loc[i] < 0 || loc[i]+size[i] > a.sizes[i] {
			panic(fmt.Errorf("%w: Subarray(loc, size): index out of bounds", ErrBounds))
		}
		off += a.steps[i] * loc[i]
	}
	return a.share(off, size.Clone(), a.steps.Clone())
}

// SubarrayAt returns the sub-array of the trailing dimensions obtained
// by fixing the leading len(pos) dimensions at pos. Fixing every
// dimension yields a 0-dimensional view of the single element.
func (a *NArray[T]) SubarrayAt(pos Point) *NArray[T] {
	if a.Empty() {
		panic(fmt.Errorf("%w: SubarrayAt(pos): invalid when empty", ErrEmpty))
	}
	if len(pos) == 0 || len(pos) > len(a.sizes) {
		panic(fmt.Errorf("%w: SubarrayAt(pos): pos dimensionality out of bounds", ErrBounds))
	}
	for i := range pos {
		if pos[i] < 0 || pos[i] >= a.sizes[i] {
			panic(fmt.Errorf("%w: SubarrayAt(pos): pos out of range", ErrBounds))
		}
	}
	return a.subarrayAt(pos)
}

func (a *NArray[T]) subarrayAt(pos Point) *NArray[T] {
	off := a.off
	for i := range pos {
		off += a.steps[i] * pos[i]
	}
	m := len(a.sizes) - len(pos)
	return a.share(off, a.sizes.High(m), a.steps.High(m))
}

// Reshape transforms the view into a new set of dimensions, typically
// to create sub-dimension splits, without creating a new data set. The
// current layout is condensed first; the condensed axes must then
// factor evenly into the requested sizes, keeping the element ordering.
// Contiguous and aligned views can be made into any shape of the same
// total size; others may fail with ErrShape.
func (a *NArray[T]) Reshape(sizes ...int) *NArray[T] {
	if a.Empty() {
		panic(fmt.Errorf("%w: Reshape(sizes): invalid when empty", ErrEmpty))
	}
	newSizes := Pt(sizes...)
	if !validSize(newSizes) {
		panic(fmt.Errorf("%w: Reshape(sizes): sizes must all be positive", ErrInvalidSize))
	}

	oldSizes := a.sizes.Clone()
	oldSteps := a.steps.Clone()
	newSteps := make(Point, len(newSizes))
	eff := condense(oldSizes, oldSteps)

	n := len(oldSizes)
	m := len(newSizes)
	i := n - eff
	j := 0
	for i < n && j < m {
		switch {
		case oldSizes[i]%newSizes[j] == 0:
			newSteps[j] = oldSizes[i] / newSizes[j] * oldSteps[i]
			oldSizes[i] /= newSizes[j]
			j++
		case oldSizes[i] == 1:
			i++
		default:
			panic(fmt.Errorf("%w: Reshape(sizes): size not compatible", ErrShape))
		}
	}
	for ; i < n; i++ {
		if oldSizes[i] != 1 {
			panic(fmt.Errorf("%w: Reshape(sizes): size not compatible", ErrShape))
		}
	}
	for ; j < m; j++ {
		if newSizes[j] != 1 {
			panic(fmt.Errorf("%w: Reshape(sizes): size not compatible", ErrShape))
		}
		newSteps[j] = 1
	}
	return a.share(a.off, newSizes, newSteps)
}

// Repeat returns a view with an additional trailing dimension of size n
// that repeats the same data, using a zero step.
func (a *NArray[T]) Repeat(n int) *NArray[T] {
	if a.Empty() {
		panic(fmt.Errorf("%w: Repeat(n): invalid when empty", ErrEmpty))
	}
	if n <= 0 {
		panic(fmt.Errorf("%w: Repeat(n): n must be positive", ErrInvalidSize))
	}
	d := len(a.sizes)
	return a.share(a.off, a.sizes.Inserted(d, n), a.steps.Inserted(d, 0))
}

// Window returns a view with a sliding window of width n along the
// specified dimension: that dimension shrinks by n-1 and a trailing
// dimension of size n with the same step is appended.
func (a *NArray[T]) Window(dim, n int) *NArray[T] {
	if dim < 0 || dim >= len(a.sizes) {
		panic(fmt.Errorf("%w: Window(dim, n): dim out of bounds", ErrBounds))
	}
	a.checkWindow("Window(dim, n)", dim, n)
	return a.window(dim, n)
}

// WindowX slides a window of width n along dimension 0.
func (a *NArray[T]) WindowX(n int) *NArray[T] {
	a.requireDims("WindowX(n)", 1)
	a.checkWindow("WindowX(n)", 0, n)
	return a.window(0, n)
}

// WindowY slides a window of width n along dimension 1.
func (a *NArray[T]) WindowY(n int) *NArray[T] {
	a.requireDims("WindowY(n)", 2)
	a.checkWindow("WindowY(n)", 1, n)
	return a.window(1, n)
}

// WindowZ slides a window of width n along dimension 2.
func (a *NArray[T]) WindowZ(n int) *NArray[T] {
	a.requireDims("WindowZ(n)", 3)
	a.checkWindow("WindowZ(n)", 2, n)
	return a.window(2, n)
}

// WindowW slides a window of width n along dimension 3.
func (a *NArray[T]) WindowW(n int) *NArray[T] {
	a.requireDims("WindowW(n)", 4)
	a.checkWindow("WindowW(n)", 3, n)
	return a.window(3, n)
}

func (a *NArray[T]) checkWindow(op string, dim, n int) {
	if n < 1 || n > a.sizes[dim] {
		panic(fmt.Errorf("%w: %s: n out of bounds", ErrBounds, op))
	}
}

func (a *NArray[T]) window(dim, n int) *NArray[T] {
	d := len(a.sizes)
	sizes := a.sizes.Inserted(d, n)
	steps := a.steps.Inserted(d, a.steps[dim])
	sizes[dim] -= n - 1
	return a.share(a.off, sizes, steps)
}

// AsReadOnly returns a view of the same data that rejects mutating
// operations. The data is not isolated: writes through other views
// remain observable. The conversion is allocation-free; recovering a
// writable array requires Clone.
func (a *NArray[T]) AsReadOnly() *NArray[T] {
	ret := a.share(a.off, a.sizes.Clone(), a.steps.Clone())
	ret.ro = true
	return ret
}

// AsAligned returns a view over the same elements that accesses data in
// increasing address order: negative steps are normalized away and the
// dimensions reordered by step.
func (a *NArray[T]) AsAligned() *NArray[T] {
	if a.Empty() {
		return emptyLike[T](a.Dims())
	}
	sizes := a.sizes.Clone()
	steps := a.steps.Clone()
	offset := align(sizes, steps)
	return a.share(a.off+offset, sizes, steps)
}

// AsCondensed returns a view with its dimension and step values merged
// to their most condensed form; a contiguous and aligned view condenses
// to a single effective dimension with the others set to 1. Mostly used
// internally to reduce recursive calls before elementwise loops.
func (a *NArray[T]) AsCondensed() *NArray[T] {
	if a.Empty() {
		return emptyLike[T](a.Dims())
	}
	sizes := a.sizes.Clone()
	steps := a.steps.Clone()
	condense(sizes, steps)
	return a.share(a.off, sizes, steps)
}

func (a *NArray[T]) requireDims(op string, n int) {
	if len(a.sizes) < n {
		panic(fmt.Errorf("%w: %s: invalid when dimensions < %d", ErrBounds, op, n))
	}
}

func (a *NArray[T]) sizeOrZero(dim int) int {
	if dim >= len(a.sizes) {
		return 0
	}
	return a.sizes[dim]
}
