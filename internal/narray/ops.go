package narray

import "fmt"

// AddAssign adds the elements of src into dst element-wise. The
// dimension sizes must match.
func AddAssign[T Number](dst, src *NArray[T]) {
	assignOp(dst, src, "AddAssign(dst, src)", func(d, s *T) { *d += *s })
}

// SubAssign subtracts the elements of src from dst element-wise. The
// dimension sizes must match.
func SubAssign[T Number](dst, src *NArray[T]) {
	assignOp(dst, src, "SubAssign(dst, src)", func(d, s *T) { *d -= *s })
}

// MulAssign multiplies dst by the elements of src element-wise. The
// dimension sizes must match.
func MulAssign[T Number](dst, src *NArray[T]) {
	assignOp(dst, src, "MulAssign(dst, src)", func(d, s *T) { *d *= *s })
}

// DivAssign divides dst by the elements of src element-wise. The
// dimension sizes must match.
func DivAssign[T Number](dst, src *NArray[T]) {
	assignOp(dst, src, "DivAssign(dst, src)", func(d, s *T) { *d /= *s })
}

func assignOp[T Number](dst, src *NArray[T], op string, fn func(d, s *T)) {
	if dst.ro {
		panic(fmt.Errorf("%w: %s", ErrReadOnly, op))
	}
	if !dst.sizes.Equal(src.sizes) {
		panic(fmt.Errorf("%w: %s: dimensions must match", ErrInvalidSize, op))
	}
	if dst.Empty() {
		return
	}
	binaryWalk(dst.sizes, dst.buf.data, dst.off, dst.steps, src.buf.data, src.off, src.steps, fn)
}

// AddScalar adds val to every element of dst in place.
func AddScalar[T Number](dst *NArray[T], val T) {
	scalarOp(dst, "AddScalar(dst, val)", func(d *T) { *d += val })
}

// SubScalar subtracts val from every element of dst in place.
func SubScalar[T Number](dst *NArray[T], val T) {
	scalarOp(dst, "SubScalar(dst, val)", func(d *T) { *d -= val })
}

// MulScalar multiplies every element of dst by val in place.
func MulScalar[T Number](dst *NArray[T], val T) {
	scalarOp(dst, "MulScalar(dst, val)", func(d *T) { *d *= val })
}

// DivScalar divides every element of dst by val in place.
func DivScalar[T Number](dst *NArray[T], val T) {
	scalarOp(dst, "DivScalar(dst, val)", func(d *T) { *d /= val })
}

func scalarOp[T Number](dst *NArray[T], op string, fn func(d *T)) {
	if dst.ro {
		panic(fmt.Errorf("%w: %s", ErrReadOnly, op))
	}
	if dst.Empty() {
		return
	}
	unaryWalk(dst.sizes, dst.buf.data, dst.off, dst.steps, fn)
}

// Add returns a new array holding the element-wise sum of a and b. The
// dimension sizes must match.
func Add[T Number](a, b *NArray[T]) *NArray[T] {
	return binaryOp(a, b, "Add(a, b)", func(x, y T) T { return x + y })
}

// Sub returns a new array holding the element-wise difference of a and
// b. The dimension sizes must match.
func Sub[T Number](a, b *NArray[T]) *NArray[T] {
	return binaryOp(a, b, "Sub(a, b)", func(x, y T) T { return x - y })
}

// Mul returns a new array holding the element-wise product of a and b.
// The dimension sizes must match.
func Mul[T Number](a, b *NArray[T]) *NArray[T] {
	return binaryOp(a, b, "Mul(a, b)", func(x, y T) T { return x * y })
}

// Div returns a new array holding the element-wise quotient of a and b.
// The dimension sizes must match.
func Div[T Number](a, b *NArray[T]) *NArray[T] {
	return binaryOp(a, b, "Div(a, b)", func(x, y T) T { return x / y })
}

func binaryOp[T Number](a, b *NArray[T], op string, fn func(x, y T) T) *NArray[T] {
	if !a.sizes.Equal(b.sizes) {
		panic(fmt.Errorf("%w: %s: dimensions must match", ErrInvalidSize, op))
	}
	if a.Empty() {
		return emptyLike[T](a.Dims())
	}
	ret := &NArray[T]{
		buf:   newBuffer[T](a.sizes.Product()),
		sizes: a.sizes.Clone(),
		steps: computeSteps(a.sizes),
	}
	ternaryWalk(a.sizes, ret.buf.data, 0, ret.steps, a.buf.data, a.off, a.steps,
		b.buf.data, b.off, b.steps,
		func(d, x, y *T) { *d = fn(*x, *y) })
	return ret
}
