package narray

import (
	"fmt"

	"github.com/kmdreko/narray/internal/parallel"
)

// ApplyParallel replaces every element with fn of its current value,
// splitting the leading dimension across worker goroutines for large
// views. fn must be safe to call concurrently. The element visit order
// is unspecified.
func (a *NArray[T]) ApplyParallel(fn func(val T) T) {
	a.ApplyParallelConfig(fn, parallel.DefaultConfig())
}

// ApplyParallelConfig is ApplyParallel with explicit execution limits.
func (a *NArray[T]) ApplyParallelConfig(fn func(val T) T, cfg parallel.Config) {
	if a.ro {
		panic(fmt.Errorf("%w: ApplyParallel(fn)", ErrReadOnly))
	}
	if a.Empty() {
		return
	}
	if a.Dims() == 0 {
		a.buf.data[a.off] = fn(a.buf.data[a.off])
		return
	}

	// chunk on the leading dimension; each slab is an independent
	// strided walk
	inner := a.sizes[1:].Product()
	if inner > 0 {
		cfg.MinChunkSize = (cfg.MinChunkSize + inner - 1) / inner
	}
	parallel.ForRanges(a.sizes[0], func(start, end int) {
		sizes := a.sizes.Clone()
		sizes[0] = end - start
		unaryWalk(sizes, a.buf.data, a.off+start*a.steps[0], a.steps,
			func(p *T) { *p = fn(*p) })
	}, cfg)
}
