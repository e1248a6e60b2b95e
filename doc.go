// Copyright 2026 The NArray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package narray provides N-dimensional strided array views over
// shared reference-counted buffers.
//
// # Overview
//
// An NArray is a lightweight view: a pointer into a shared buffer plus
// per-dimension sizes and steps. Transformations such as slicing,
// flipping, skipping, transposing, and reshaping never copy data; they
// produce new views over the same buffer in constant time. Explicit
// copies are made only by Clone and the value-producing operators.
//
// # Basic Usage
//
//	import "github.com/kmdreko/narray"
//
//	func main() {
//	    a := narray.FromFunc(func(i int) int { return i }, 4, 3, 2)
//
//	    row := a.SliceX(1)             // 3x2 view of the second plane
//	    rev := a.FlipY()               // y axis reversed, same data
//	    t := a.Transpose()             // first two axes swapped
//
//	    row.Fill(7)                    // writes through to a
//	    total := narray.Sum(a)
//	    _ = rev
//	    _ = t
//	    _ = total
//	}
//
// # Sharing and Ownership
//
// Views referencing the same buffer observe each other's writes. Unique
// reports whether a view holds the only reference, Clone detaches a
// view into fresh storage, and AsReadOnly produces a view whose
// mutating operations are rejected.
package narray
