package narray

// Point is a tuple of integer positions. It is used for dimension sizes,
// step values, and element locations. The length of a Point is the
// dimensionality it describes.
type Point []int

// Pt builds a Point from its arguments.
func Pt(vals ...int) Point {
	p := make(Point, len(vals))
	copy(p, vals)
	return p
}

// Clone returns a copy of the point.
func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// Equal checks if two points have the same length and values.
func (p Point) Equal(other Point) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Product returns the compound of all values. An zero-length point
// yields 1, matching the single element a 0-dimensional view denotes.
func (p Point) Product() int {
	n := 1
	for _, v := range p {
		n *= v
	}
	return n
}

// Removed returns a new point with the value at index n dropped.
func (p Point) Removed(n int) Point {
	ret := make(Point, 0, len(p)-1)
	for i, v := range p {
		if i != n {
			ret = append(ret, v)
		}
	}
	return ret
}

// Inserted returns a new point with v added at index n.
func (p Point) Inserted(n, v int) Point {
	ret := make(Point, 0, len(p)+1)
	ret = append(ret, p[:n]...)
	ret = append(ret, v)
	ret = append(ret, p[n:]...)
	return ret
}

// Swapped returns a new point with the values at a and b exchanged.
func (p Point) Swapped(a, b int) Point {
	ret := p.Clone()
	ret[a], ret[b] = ret[b], ret[a]
	return ret
}

// Low returns a new point with the first m values.
func (p Point) Low(m int) Point {
	return Pt(p[:m]...)
}

// High returns a new point with the last m values.
func (p Point) High(m int) Point {
	return Pt(p[len(p)-m:]...)
}

// validSize reports whether every dimension is positive.
func validSize(sizes Point) bool {
	for _, v := range sizes {
		if v <= 0 {
			return false
		}
	}
	return true
}

// hasZero reports whether any dimension is zero.
func hasZero(sizes Point) bool {
	for _, v := range sizes {
		if v == 0 {
			return true
		}
	}
	return false
}

// hasNegative reports whether any dimension is negative.
func hasNegative(sizes Point) bool {
	for _, v := range sizes {
		if v < 0 {
			return true
		}
	}
	return false
}

// computeSteps calculates row-major step values for the sizes.
// Steps for {..., a, b, c, d} are {..., b*c*d, c*d, d, 1}.
func computeSteps(sizes Point) Point {
	steps := make(Point, len(sizes))
	if len(sizes) == 0 {
		return steps
	}
	steps[len(sizes)-1] = 1
	for i := len(sizes) - 2; i >= 0; i-- {
		steps[i] = steps[i+1] * sizes[i+1]
	}
	return steps
}

// idxToPos converts a canonical-order linear index into a location.
func idxToPos(sizes Point, idx int) Point {
	pos := make(Point, len(sizes))
	for i := len(sizes) - 1; i >= 0; i-- {
		pos[i] = idx % sizes[i]
		idx /= sizes[i]
	}
	return pos
}
