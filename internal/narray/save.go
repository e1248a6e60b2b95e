package narray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/kmdreko/narray/internal/serialization"
)

// Save writes the array to w in the .narr format. Elements are written
// in canonical index order, so the stored form of any view is the same
// as that of its Clone. The element type must have a fixed byte size:
// int, uint and uintptr are rejected, use their sized counterparts.
func Save[T Number](w io.Writer, a *NArray[T]) error {
	var zero T
	var data bytes.Buffer

	if !a.Empty() {
		if a.IsContiguous() && a.IsAligned() {
			if err := binary.Write(&data, binary.LittleEndian, a.buf.data[a.off:a.off+a.Size()]); err != nil {
				return fmt.Errorf("encoding elements: %w", err)
			}
		} else {
			vals := make([]T, 0, a.Size())
			a.ForEach(func(v T) { vals = append(vals, v) })
			if err := binary.Write(&data, binary.LittleEndian, vals); err != nil {
				return fmt.Errorf("encoding elements: %w", err)
			}
		}
	}

	hdr := serialization.Header{
		ElementType: fmt.Sprintf("%T", zero),
		Sizes:       a.Sizes(),
		CreatedAt:   time.Now().UTC(),
	}
	return serialization.Write(w, hdr, data.Bytes())
}

// Load reads a .narr stream written by Save, returning a fresh
// contiguous array. The stored element type must match T.
func Load[T Number](r io.Reader) (*NArray[T], error) {
	var zero T

	elemSize := binary.Size(zero)
	if elemSize < 0 {
		return nil, fmt.Errorf("%w: element type %T has no fixed byte size",
			serialization.ErrElementType, zero)
	}

	hdr, err := serialization.ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if want := fmt.Sprintf("%T", zero); hdr.ElementType != want {
		return nil, fmt.Errorf("%w: stored %q, requested %q",
			serialization.ErrElementType, hdr.ElementType, want)
	}

	sizes := Pt(hdr.Sizes...)
	n := 0
	if !hasZero(sizes) {
		n = 1
		for _, s := range sizes {
			if n > math.MaxInt/s {
				return nil, fmt.Errorf("%w: element count overflows", serialization.ErrHeader)
			}
			n *= s
		}
		if n > math.MaxInt/elemSize {
			return nil, fmt.Errorf("%w: element count overflows", serialization.ErrHeader)
		}
	}

	raw, err := serialization.ReadData(r, n*elemSize)
	if err != nil {
		return nil, err
	}

	vals := make([]T, n)
	if n > 0 {
		if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, vals); err != nil {
			return nil, fmt.Errorf("decoding elements: %w", err)
		}
	}
	return FromSliceMode(vals, Assume, sizes...)
}
