package narray

import (
	"cmp"
	"fmt"
)

// Number covers the built-in numeric types usable with the arithmetic
// reductions and element-wise operators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum returns the sum of all elements. An empty view sums to zero.
func Sum[T Number](a *NArray[T]) T {
	var total T
	a.ForEach(func(val T) { total += val })
	return total
}

// Mean returns the arithmetic mean of all elements. Invalid when empty.
func Mean[T Number](a *NArray[T]) T {
	if a.Empty() {
		panic(fmt.Errorf("%w: Mean(a): invalid when empty", ErrEmpty))
	}
	return Sum(a) / T(a.Size())
}

// Min returns the smallest element. Invalid when empty.
func Min[T cmp.Ordered](a *NArray[T]) T {
	if a.Empty() {
		panic(fmt.Errorf("%w: Min(a): invalid when empty", ErrEmpty))
	}
	best := a.AtUnchecked(make(Point, a.Dims()))
	a.ForEach(func(val T) {
		if val < best {
			best = val
		}
	})
	return best
}

// Max returns the largest element. Invalid when empty.
func Max[T cmp.Ordered](a *NArray[T]) T {
	if a.Empty() {
		panic(fmt.Errorf("%w: Max(a): invalid when empty", ErrEmpty))
	}
	best := a.AtUnchecked(make(Point, a.Dims()))
	a.ForEach(func(val T) {
		if val > best {
			best = val
		}
	})
	return best
}

// MinAt returns the location of the smallest element, taking the
// first occurrence in canonical order. Invalid when empty.
func MinAt[T cmp.Ordered](a *NArray[T]) Point {
	if a.Empty() {
		panic(fmt.Errorf("%w: MinAt(a): invalid when empty", ErrEmpty))
	}
	at := make(Point, a.Dims())
	best := a.AtUnchecked(at)
	idx, bestIdx := 0, 0
	a.ForEach(func(val T) {
		if val < best {
			best, bestIdx = val, idx
		}
		idx++
	})
	return idxToPos(a.sizes, bestIdx)
}

// MaxAt returns the location of the largest element, taking the
// first occurrence in canonical order. Invalid when empty.
func MaxAt[T cmp.Ordered](a *NArray[T]) Point {
	if a.Empty() {
		panic(fmt.Errorf("%w: MaxAt(a): invalid when empty", ErrEmpty))
	}
	at := make(Point, a.Dims())
	best := a.AtUnchecked(at)
	idx, bestIdx := 0, 0
	a.ForEach(func(val T) {
		if val > best {
			best, bestIdx = val, idx
		}
		idx++
	})
	return idxToPos(a.sizes, bestIdx)
}

// Count returns how many elements satisfy pred.
func Count[T any](a *NArray[T], pred func(T) bool) int {
	n := 0
	a.ForEach(func(val T) {
		if pred(val) {
			n++
		}
	})
	return n
}

// Median returns the element of rank size/2, the lower middle for an
// even count. Elements are not averaged. Invalid when empty.
func Median[T cmp.Ordered](a *NArray[T]) T {
	if a.Empty() {
		panic(fmt.Errorf("%w: Median(a): invalid when empty", ErrEmpty))
	}
	vals := make([]T, 0, a.Size())
	a.ForEach(func(val T) { vals = append(vals, val) })
	return quickselect(vals, len(vals)/2)
}

// quickselect finds the k-th smallest element by repeated Hoare
// partitioning. Mutates vals.
func quickselect[T cmp.Ordered](vals []T, k int) T {
	lo, hi := 0, len(vals)-1
	for lo < hi {
		pivot := vals[(lo+hi)/2]
		i, j := lo-1, hi+1
		for {
			for {
				i++
				if vals[i] >= pivot {
					break
				}
			}
			for {
				j--
				if vals[j] <= pivot {
					break
				}
			}
			if i >= j {
				break
			}
			vals[i], vals[j] = vals[j], vals[i]
		}
		if k <= j {
			hi = j
		} else {
			lo = j + 1
		}
	}
	return vals[k]
}
