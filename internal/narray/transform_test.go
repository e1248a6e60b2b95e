package narray

import (
	"testing"
)

func TestSliceDropsDimension(t *testing.T) {
	a := seqArray(t, 4, 3, 2)
	b := a.SliceX(1)

	if !b.Sizes().Equal(Pt(3, 2)) {
		t.Errorf("Sizes() = %v, want [3 2]", b.Sizes())
	}
	if !b.Steps().Equal(Pt(2, 1)) {
		t.Errorf("Steps() = %v, want [2 1]", b.Steps())
	}
	if b.At(0, 0) != a.At(1, 0, 0) {
		t.Error("slice should start at the fixed position")
	}

	// writes go through to the shared data
	b.Set(99, 2, 1)
	if a.At(1, 2, 1) != 99 {
		t.Error("slice should share data with its source")
	}

	mustPanic(t, ErrBounds, func() { a.SliceX(4) })
	mustPanic(t, ErrBounds, func() { a.Slice(3, 0) })
}

func TestSliceAxisVariants(t *testing.T) {
	a := seqArray(t, 4, 3, 2)

	if got, want := a.SliceY(2).At(1, 0), a.At(1, 2, 0); got != want {
		t.Errorf("SliceY(2).At(1,0) = %d, want %d", got, want)
	}
	if got, want := a.SliceZ(1).At(3, 2), a.At(3, 2, 1); got != want {
		t.Errorf("SliceZ(1).At(3,2) = %d, want %d", got, want)
	}
	mustPanic(t, ErrBounds, func() { a.SliceW(0) })
}

func TestRangeRestrictsDimension(t *testing.T) {
	a := seqArray(t, 10)
	b := a.RangeX(2, 5)

	if !b.Sizes().Equal(Pt(5)) {
		t.Errorf("Sizes() = %v, want [5]", b.Sizes())
	}
	if b.At(0) != 2 || b.At(4) != 6 {
		t.Errorf("range = [%d..%d], want [2..6]", b.At(0), b.At(4))
	}

	mustPanic(t, ErrBounds, func() { a.RangeX(8, 3) })
	mustPanic(t, ErrBounds, func() { a.RangeX(0, 0) })
}

func TestFlipReversesDimension(t *testing.T) {
	a := seqArray(t, 4)
	b := a.FlipX()

	if !b.Sizes().Equal(Pt(4)) {
		t.Errorf("Sizes() = %v, want [4]", b.Sizes())
	}
	if !b.Steps().Equal(Pt(-1)) {
		t.Errorf("Steps() = %v, want [-1]", b.Steps())
	}
	for i := 0; i < 4; i++ {
		if b.At(i) != a.At(3-i) {
			t.Fatalf("At(%d) = %d, want %d", i, b.At(i), a.At(3-i))
		}
	}
}

func TestFlipTwiceIsIdentity(t *testing.T) {
	a := seqArray(t, 3, 4)
	b := a.FlipY().FlipY()

	if !b.Sizes().Equal(a.Sizes()) || !b.Steps().Equal(a.Steps()) {
		t.Error("double flip should restore the geometry")
	}
	if !ElemEqual(a, b, func(x, y int) bool { return x == y }) {
		t.Error("double flip should restore the elements")
	}
}

func TestSkipKeepsEveryNth(t *testing.T) {
	a := seqArray(t, 5)

	b := a.SkipX(2, 0)
	if !b.Sizes().Equal(Pt(3)) || !b.Steps().Equal(Pt(2)) {
		t.Errorf("skip(2) geometry = %v/%v, want [3]/[2]", b.Sizes(), b.Steps())
	}

	c := a.SkipX(2, 1)
	if !c.Sizes().Equal(Pt(2)) || !c.Steps().Equal(Pt(2)) {
		t.Errorf("skip(2,1) geometry = %v/%v, want [2]/[2]", c.Sizes(), c.Steps())
	}
	if c.At(0) != 1 || c.At(1) != 3 {
		t.Errorf("skip(2,1) = [%d %d], want [1 3]", c.At(0), c.At(1))
	}

	d := a.SkipX(1, 0)
	if !d.Sizes().Equal(Pt(5)) || !d.Steps().Equal(Pt(1)) {
		t.Errorf("skip(1) geometry = %v/%v, want [5]/[1]", d.Sizes(), d.Steps())
	}

	e := a.SkipX(1, 2)
	if !e.Sizes().Equal(Pt(3)) || !e.Steps().Equal(Pt(1)) {
		t.Errorf("skip(1,2) geometry = %v/%v, want [3]/[1]", e.Sizes(), e.Steps())
	}

	mustPanic(t, ErrBounds, func() { a.SkipX(0, 0) })
	mustPanic(t, ErrBounds, func() { a.SkipX(2, 5) })
}

func TestSkipOnMultipleAxes(t *testing.T) {
	a := seqArray(t, 3, 3, 3)
	b := a.SkipY(2, 0).SkipZ(2, 0)

	if !b.Sizes().Equal(Pt(3, 2, 2)) {
		t.Errorf("Sizes() = %v, want [3 2 2]", b.Sizes())
	}
	if !b.Steps().Equal(Pt(9, 6, 2)) {
		t.Errorf("Steps() = %v, want [9 6 2]", b.Steps())
	}
}

func TestHalvedScanKeepsEveryOther(t *testing.T) {
	a := seqArray(t, 10)
	b := a.SkipX(2, 0)

	if b.Size() != 5 {
		t.Errorf("Size() = %d, want 5", b.Size())
	}
	if b.StepAt(0) != 2*a.StepAt(0) {
		t.Errorf("StepAt(0) = %d, want %d", b.StepAt(0), 2*a.StepAt(0))
	}
}

func TestTransposeSwapsDimensions(t *testing.T) {
	a := seqArray(t, 4, 3, 2)

	b := a.Transpose()
	if !b.Sizes().Equal(Pt(3, 4, 2)) {
		t.Errorf("Sizes() = %v, want [3 4 2]", b.Sizes())
	}
	if b.At(2, 3, 1) != a.At(3, 2, 1) {
		t.Error("transpose should remap positions")
	}

	c := a.Transpose(0, 2)
	if !c.Sizes().Equal(Pt(2, 3, 4)) {
		t.Errorf("Sizes() = %v, want [2 3 4]", c.Sizes())
	}

	d := b.Transpose()
	if !d.Sizes().Equal(a.Sizes()) || !d.Steps().Equal(a.Steps()) {
		t.Error("transposing twice should restore the geometry")
	}

	mustPanic(t, ErrBounds, func() { a.Transpose(0) })
	mustPanic(t, ErrBounds, func() { a.Transpose(0, 3) })
}

func TestChainedTransforms(t *testing.T) {
	a := seqArray(t, 4, 3, 2)
	b := a.RangeX(1, 3).FlipY().Transpose(1, 2)

	if !b.Sizes().Equal(Pt(3, 2, 3)) {
		t.Errorf("Sizes() = %v, want [3 2 3]", b.Sizes())
	}
	if !b.Steps().Equal(Pt(6, 1, -2)) {
		t.Errorf("Steps() = %v, want [6 1 -2]", b.Steps())
	}

	// spot-check the remapping: b[x][z][y'] == a[x+1][2-y'][z]
	if b.At(0, 0, 0) != a.At(1, 2, 0) {
		t.Errorf("At(0,0,0) = %d, want %d", b.At(0, 0, 0), a.At(1, 2, 0))
	}
	if b.At(2, 1, 2) != a.At(3, 0, 1) {
		t.Errorf("At(2,1,2) = %d, want %d", b.At(2, 1, 2), a.At(3, 0, 1))
	}
}

func TestSubarray(t *testing.T) {
	a := seqArray(t, 4, 4)
	b := a.Subarray(Pt(1, 1), Pt(2, 2))

	if !b.Sizes().Equal(Pt(2, 2)) {
		t.Errorf("Sizes() = %v, want [2 2]", b.Sizes())
	}
	if b.At(0, 0) != a.At(1, 1) || b.At(1, 1) != a.At(2, 2) {
		t.Error("subarray should view the inner region")
	}

	mustPanic(t, ErrBounds, func() { a.Subarray(Pt(3, 3), Pt(2, 2)) })
	mustPanic(t, ErrBounds, func() { a.Subarray(Pt(0), Pt(2)) })
}

func TestSubarrayAtFixesLeadingDimensions(t *testing.T) {
	a := seqArray(t, 4, 3, 2)
	b := a.SubarrayAt(Pt(2))

	if !b.Sizes().Equal(Pt(3, 2)) {
		t.Errorf("Sizes() = %v, want [3 2]", b.Sizes())
	}
	if b.At(1, 1) != a.At(2, 1, 1) {
		t.Error("SubarrayAt should fix the leading position")
	}

	mustPanic(t, ErrBounds, func() { a.SubarrayAt(Pt(4)) })
	mustPanic(t, ErrBounds, func() { a.SubarrayAt(Pt(0, 0, 0, 0)) })
}

func TestReshapeSplitsCondensedAxes(t *testing.T) {
	a := seqArray(t, 14, 14)

	b := a.Subarray(Pt(1, 1), Pt(12, 12)).Reshape(4, 3, 4, 3)
	if !b.Sizes().Equal(Pt(4, 3, 4, 3)) {
		t.Errorf("Sizes() = %v, want [4 3 4 3]", b.Sizes())
	}
	if !b.Steps().Equal(Pt(42, 14, 3, 1)) {
		t.Errorf("Steps() = %v, want [42 14 3 1]", b.Steps())
	}

	c := a.Reshape(98, 2)
	if !c.Sizes().Equal(Pt(98, 2)) {
		t.Errorf("Sizes() = %v, want [98 2]", c.Sizes())
	}
	if !c.Steps().Equal(Pt(2, 1)) {
		t.Errorf("Steps() = %v, want [2 1]", c.Steps())
	}

	d := a.Reshape(1, 98, 1, 2, 1)
	if !d.Sizes().Equal(Pt(1, 98, 1, 2, 1)) {
		t.Errorf("Sizes() = %v, want [1 98 1 2 1]", d.Sizes())
	}
	if !d.Steps().Equal(Pt(196, 2, 2, 1, 1)) {
		t.Errorf("Steps() = %v, want [196 2 2 1 1]", d.Steps())
	}

	e := a.FlipX().FlipY().Reshape(98, 2)
	if !e.Sizes().Equal(Pt(98, 2)) {
		t.Errorf("Sizes() = %v, want [98 2]", e.Sizes())
	}
	if !e.Steps().Equal(Pt(-2, -1)) {
		t.Errorf("Steps() = %v, want [-2 -1]", e.Steps())
	}
}

func TestReshapeRoundTrip(t *testing.T) {
	a := seqArray(t, 6, 4)
	b := a.Reshape(2, 3, 4).Reshape(6, 4)

	if !b.Sizes().Equal(a.Sizes()) || !b.Steps().Equal(a.Steps()) {
		t.Error("reshape round trip should restore the geometry")
	}
	if !ElemEqual(a, b, func(x, y int) bool { return x == y }) {
		t.Error("reshape round trip should restore the elements")
	}
}

func TestReshapeIncompatible(t *testing.T) {
	a := seqArray(t, 6, 4)

	// a gapped view cannot be re-split across the gap
	gapped := a.RangeY(0, 3)
	mustPanic(t, ErrShape, func() { gapped.Reshape(9, 2) })

	mustPanic(t, ErrShape, func() { a.Reshape(5, 5) })
	mustPanic(t, ErrInvalidSize, func() { a.Reshape(24, 0) })
	mustPanic(t, ErrEmpty, func() { New[int](0).Reshape(1) })
}

func TestRepeatBroadcastsTrailingDimension(t *testing.T) {
	a := seqArray(t, 3)
	b := a.Repeat(4)

	if !b.Sizes().Equal(Pt(3, 4)) {
		t.Errorf("Sizes() = %v, want [3 4]", b.Sizes())
	}
	if !b.Steps().Equal(Pt(1, 0)) {
		t.Errorf("Steps() = %v, want [1 0]", b.Steps())
	}
	for j := 0; j < 4; j++ {
		if b.At(2, j) != a.At(2) {
			t.Fatalf("At(2,%d) = %d, want %d", j, b.At(2, j), a.At(2))
		}
	}

	mustPanic(t, ErrInvalidSize, func() { a.Repeat(0) })
}

func TestWindowSlidesOverDimension(t *testing.T) {
	a := seqArray(t, 5)
	b := a.WindowX(3)

	if !b.Sizes().Equal(Pt(3, 3)) {
		t.Errorf("Sizes() = %v, want [3 3]", b.Sizes())
	}
	if !b.Steps().Equal(Pt(1, 1)) {
		t.Errorf("Steps() = %v, want [1 1]", b.Steps())
	}
	// row i is the window starting at i
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if b.At(i, j) != i+j {
				t.Fatalf("At(%d,%d) = %d, want %d", i, j, b.At(i, j), i+j)
			}
		}
	}

	mustPanic(t, ErrBounds, func() { a.WindowX(6) })
	mustPanic(t, ErrBounds, func() { a.WindowX(0) })
}

func TestAsReadOnlyRejectsWrites(t *testing.T) {
	a := seqArray(t, 2, 2)
	r := a.AsReadOnly()

	if !r.ReadOnly() {
		t.Error("view should report read-only")
	}
	if r.At(1, 1) != a.At(1, 1) {
		t.Error("read access should still work")
	}

	mustPanic(t, ErrReadOnly, func() { r.Set(9, 0, 0) })
	mustPanic(t, ErrReadOnly, func() { r.Fill(9) })
	mustPanic(t, ErrReadOnly, func() { r.Apply(func(v int) int { return v }) })

	// the tag follows derived views
	mustPanic(t, ErrReadOnly, func() { r.SliceX(0).Fill(9) })

	// but writes through the original still land
	a.Set(9, 0, 0)
	if r.At(0, 0) != 9 {
		t.Error("read-only view should observe source writes")
	}

	// a clone is writable again
	c := r.Clone()
	c.Fill(0)
}

func TestAsAlignedNormalizesTraversal(t *testing.T) {
	a := seqArray(t, 2, 3)
	b := a.FlipX().Transpose().AsAligned()

	if !b.IsAligned() {
		t.Error("aligned view should report aligned")
	}
	if !b.Sizes().Equal(Pt(2, 3)) {
		t.Errorf("Sizes() = %v, want [2 3]", b.Sizes())
	}
	if !b.Steps().Equal(Pt(3, 1)) {
		t.Errorf("Steps() = %v, want [3 1]", b.Steps())
	}
	// same elements as the source, original order
	if !ElemEqual(a, b, func(x, y int) bool { return x == y }) {
		t.Error("aligning should not change the element set")
	}
}

func TestAsCondensed(t *testing.T) {
	a := seqArray(t, 12)

	b := a.AsCondensed()
	if !b.Sizes().Equal(Pt(12)) || !b.Steps().Equal(Pt(1)) {
		t.Errorf("geometry = %v/%v, want [12]/[1]", b.Sizes(), b.Steps())
	}

	c := a.FlipX().AsCondensed()
	if !c.Sizes().Equal(Pt(12)) || !c.Steps().Equal(Pt(-1)) {
		t.Errorf("geometry = %v/%v, want [12]/[-1]", c.Sizes(), c.Steps())
	}

	d := seqArray(t, 2, 3, 4).AsCondensed()
	if !d.Sizes().Equal(Pt(1, 1, 24)) {
		t.Errorf("Sizes() = %v, want [1 1 24]", d.Sizes())
	}
	if !d.Steps().Equal(Pt(24, 24, 1)) {
		t.Errorf("Steps() = %v, want [24 24 1]", d.Steps())
	}
}

func TestContiguityAndAlignment(t *testing.T) {
	a := seqArray(t, 4, 3, 2)

	if !a.IsContiguous() || !a.IsAligned() {
		t.Error("fresh array should be contiguous and aligned")
	}

	f := a.FlipX()
	if f.IsContiguous() {
		t.Error("flip walks addresses backwards, not contiguous")
	}
	if f.IsAligned() {
		t.Error("flip walks addresses backwards, not aligned")
	}
	if !f.AsAligned().IsContiguous() {
		t.Error("aligning the flip restores contiguity")
	}

	tr := a.Transpose()
	if !tr.IsContiguous() {
		t.Error("transpose covers the same span, still contiguous")
	}
	if tr.IsAligned() {
		t.Error("transpose reorders traversal, not aligned")
	}

	r := a.RangeX(1, 2)
	if !r.IsContiguous() || !r.IsAligned() {
		t.Error("a leading-axis range stays contiguous and aligned")
	}

	g := a.RangeY(0, 2)
	if g.IsContiguous() {
		t.Error("an inner-axis range leaves gaps, not contiguous")
	}
	if !g.IsAligned() {
		t.Error("an inner-axis range still walks forward, aligned")
	}
}

func TestTransformOnEmptyView(t *testing.T) {
	a := New[int](0, 3)

	b := a.Transpose()
	if !b.Empty() || b.Dims() != 2 {
		t.Error("transposing an empty view should stay empty")
	}

	c := a.AsReadOnly()
	if !c.Empty() {
		t.Error("AsReadOnly on an empty view should stay empty")
	}
	if !c.ReadOnly() {
		t.Error("AsReadOnly on an empty view should keep the tag")
	}
}

func TestCondenseOnZeroDimensionalView(t *testing.T) {
	a := seqArray(t, 2, 2)
	s := a.SubarrayAt(Pt(1, 1))

	c := s.AsCondensed()
	if c.Dims() != 0 || c.Value() != 3 {
		t.Error("condensing a 0-dimensional view keeps its single element")
	}

	r := s.Reshape(1)
	if got := r.At(0); got != 3 {
		t.Errorf("reshaping a 0-dimensional view to {1}: got %v, want 3", got)
	}

	mustPanic(t, ErrShape, func() { s.Reshape(2) })
}
