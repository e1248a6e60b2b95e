package narray

// Recursive traversal engine. The walkers below generalize an
// arbitrary-depth nested loop over an index space described by a sizes
// tuple, without materializing index tuples. Each participating array is
// a (data, offset, steps) triple; negative steps walk addresses
// backwards and zero steps hold an address fixed (broadcast axes).
//
// The walkers make no validity checks on their inputs: every sizes value
// must be positive and every offset reachable. A zero-length sizes tuple
// denotes a single element.

// unaryWalk calls fn on every element of one array.
func unaryWalk[T any](sizes Point, data []T, off int, steps Point, fn func(*T)) {
	if len(sizes) == 0 {
		fn(&data[off])
		return
	}
	if len(sizes) == 1 {
		for i, o := 0, off; i < sizes[0]; i, o = i+1, o+steps[0] {
			fn(&data[o])
		}
		return
	}
	for i, o := 0, off; i < sizes[0]; i, o = i+1, o+steps[0] {
		unaryWalk(sizes[1:], data, o, steps[1:], fn)
	}
}

// binaryWalk calls fn on corresponding elements from two arrays of the same
// dimension sizes.
func binaryWalk[T, U any](sizes Point, d1 []T, off1 int, steps1 Point, d2 []U, off2 int, steps2 Point, fn func(*T, *U)) {
	if len(sizes) == 0 {
		fn(&d1[off1], &d2[off2])
		return
	}
	if len(sizes) == 1 {
		for i := 0; i < sizes[0]; i++ {
			fn(&d1[off1], &d2[off2])
			off1 += steps1[0]
			off2 += steps2[0]
		}
		return
	}
	for i := 0; i < sizes[0]; i++ {
		binaryWalk(sizes[1:], d1, off1, steps1[1:], d2, off2, steps2[1:], fn)
		off1 += steps1[0]
		off2 += steps2[0]
	}
}

// ternaryWalk calls fn on corresponding elements from three arrays of the
// same dimension sizes.
func ternaryWalk[T, U, V any](sizes Point, d1 []T, off1 int, steps1 Point, d2 []U, off2 int, steps2 Point, d3 []V, off3 int, steps3 Point, fn func(*T, *U, *V)) {
	if len(sizes) == 0 {
		fn(&d1[off1], &d2[off2], &d3[off3])
		return
	}
	if len(sizes) == 1 {
		for i := 0; i < sizes[0]; i++ {
			fn(&d1[off1], &d2[off2], &d3[off3])
			off1 += steps1[0]
			off2 += steps2[0]
			off3 += steps3[0]
		}
		return
	}
	for i := 0; i < sizes[0]; i++ {
		ternaryWalk(sizes[1:], d1, off1, steps1[1:], d2, off2, steps2[1:], d3, off3, steps3[1:], fn)
		off1 += steps1[0]
		off2 += steps2[0]
		off3 += steps3[0]
	}
}

// every calls pred on corresponding elements from two arrays and stops
// at the first false. Returns true if all calls returned true.
func every[T, U any](sizes Point, d1 []T, off1 int, steps1 Point, d2 []U, off2 int, steps2 Point, pred func(T, U) bool) bool {
	if len(sizes) == 0 {
		return pred(d1[off1], d2[off2])
	}
	if len(sizes) == 1 {
		for i := 0; i < sizes[0]; i++ {
			if !pred(d1[off1], d2[off2]) {
				return false
			}
			off1 += steps1[0]
			off2 += steps2[0]
		}
		return true
	}
	for i := 0; i < sizes[0]; i++ {
		if !every(sizes[1:], d1, off1, steps1[1:], d2, off2, steps2[1:], pred) {
			return false
		}
		off1 += steps1[0]
		off2 += steps2[0]
	}
	return true
}

// align adjusts sizes and steps in place so that the step values are
// positive and decreasing: negative steps are sign-flipped and axes are
// stable-sorted by ascending step. Visiting the result in canonical
// order then walks memory at increasing addresses. Returns the offset to
// apply to the original base.
func align(sizes, steps Point) int {
	offset := 0
	for i := range steps {
		if steps[i] < 0 {
			steps[i] = -steps[i]
			offset -= steps[i] * (sizes[i] - 1)
		}
	}
	// insertion sort, N is small
	for i := 1; i < len(steps); i++ {
		for j := i; j > 0 && steps[j] > steps[j-1]; j-- {
			steps[j], steps[j-1] = steps[j-1], steps[j]
			sizes[j], sizes[j-1] = sizes[j-1], sizes[j]
		}
	}
	return offset
}

// condense merges sizes and steps in place into their most condensed
// form: scanning from the innermost axis out, axis i-1 is folded into
// the current effective axis when its step equals the span of that axis
// (steps[j]*sizes[j] == steps[i-1]). The effective axes end up trailing;
// unused leading axes are set to size 1. Returns the effective axis
// count. Used before elementwise loops to reduce recursion depth, and by
// Reshape.
func condense(sizes, steps Point) int {
	n := len(sizes)
	if n == 0 {
		return 0
	}
	j := n - 1
	for i := n - 1; i > 0; i-- {
		if steps[j]*sizes[j] == steps[i-1] {
			sizes[j] *= sizes[i-1]
		} else {
			j--
			sizes[j] = sizes[i-1]
			steps[j] = steps[i-1]
		}
	}
	span := sizes[j] * steps[j]
	if span < 0 {
		span = -span
	}
	for i := 0; i < j; i++ {
		sizes[i] = 1
		steps[i] = span
	}
	return n - j
}

// condensePair merges sizes and two related step arrays in place,
// folding an axis only when the contiguity relation holds for both step
// arrays simultaneously. The effective axes end up leading. Returns the
// effective axis count. Used by Convert, where source and destination
// strides must co-collapse.
func condensePair(sizes, steps1, steps2 Point) int {
	n := len(sizes)
	j := 0
	for i := 1; i < n; i++ {
		if sizes[i]*steps1[i] == steps1[i-1] && sizes[i]*steps2[i] == steps2[i-1] {
			sizes[j] *= sizes[i]
		} else {
			steps1[j] = steps1[i-1]
			steps2[j] = steps2[i-1]
			j++
			sizes[j] = sizes[i]
		}
	}
	steps1[j] = steps1[n-1]
	steps2[j] = steps2[n-1]
	return j + 1
}
