package narray

import (
	"testing"
)

func TestPointEqual(t *testing.T) {
	if !Pt(1, 2, 3).Equal(Pt(1, 2, 3)) {
		t.Error("identical points should be equal")
	}
	if Pt(1, 2, 3).Equal(Pt(1, 2)) {
		t.Error("points of different length should not be equal")
	}
	if Pt(1, 2, 3).Equal(Pt(1, 2, 4)) {
		t.Error("points with different values should not be equal")
	}
	if !Pt().Equal(Pt()) {
		t.Error("zero-length points should be equal")
	}
}

func TestPointCloneIsIndependent(t *testing.T) {
	p := Pt(1, 2, 3)
	c := p.Clone()
	c[0] = 9

	if p[0] != 1 {
		t.Errorf("p[0] = %d, want 1", p[0])
	}
}

func TestPointProduct(t *testing.T) {
	if got := Pt(2, 3, 4).Product(); got != 24 {
		t.Errorf("Product() = %d, want 24", got)
	}
	if got := Pt(5).Product(); got != 5 {
		t.Errorf("Product() = %d, want 5", got)
	}

	// a 0-dimensional view denotes one element
	if got := Pt().Product(); got != 1 {
		t.Errorf("Product() = %d, want 1", got)
	}
}

func TestPointRemovedInserted(t *testing.T) {
	if got := Pt(1, 2, 3).Removed(1); !got.Equal(Pt(1, 3)) {
		t.Errorf("Removed(1) = %v, want [1 3]", got)
	}
	if got := Pt(1, 2, 3).Removed(0); !got.Equal(Pt(2, 3)) {
		t.Errorf("Removed(0) = %v, want [2 3]", got)
	}
	if got := Pt(1, 3).Inserted(1, 2); !got.Equal(Pt(1, 2, 3)) {
		t.Errorf("Inserted(1, 2) = %v, want [1 2 3]", got)
	}
	if got := Pt(2, 3).Inserted(2, 4); !got.Equal(Pt(2, 3, 4)) {
		t.Errorf("Inserted(2, 4) = %v, want [2 3 4]", got)
	}
}

func TestPointSwapped(t *testing.T) {
	if got := Pt(1, 2, 3).Swapped(0, 2); !got.Equal(Pt(3, 2, 1)) {
		t.Errorf("Swapped(0, 2) = %v, want [3 2 1]", got)
	}
}

func TestPointLowHigh(t *testing.T) {
	p := Pt(1, 2, 3, 4)

	if got := p.Low(2); !got.Equal(Pt(1, 2)) {
		t.Errorf("Low(2) = %v, want [1 2]", got)
	}
	if got := p.High(2); !got.Equal(Pt(3, 4)) {
		t.Errorf("High(2) = %v, want [3 4]", got)
	}
	if got := p.Low(0); len(got) != 0 {
		t.Errorf("Low(0) = %v, want []", got)
	}
	if got := p.High(4); !got.Equal(p) {
		t.Errorf("High(4) = %v, want %v", got, p)
	}
}

func TestComputeSteps(t *testing.T) {
	if got := computeSteps(Pt(2, 3, 4)); !got.Equal(Pt(12, 4, 1)) {
		t.Errorf("computeSteps({2,3,4}) = %v, want [12 4 1]", got)
	}
	if got := computeSteps(Pt(5)); !got.Equal(Pt(1)) {
		t.Errorf("computeSteps({5}) = %v, want [1]", got)
	}
	if got := computeSteps(Pt()); len(got) != 0 {
		t.Errorf("computeSteps({}) = %v, want []", got)
	}
}

func TestIdxToPos(t *testing.T) {
	sizes := Pt(4, 3, 2)

	if got := idxToPos(sizes, 0); !got.Equal(Pt(0, 0, 0)) {
		t.Errorf("idxToPos(0) = %v, want [0 0 0]", got)
	}
	if got := idxToPos(sizes, 7); !got.Equal(Pt(1, 0, 1)) {
		t.Errorf("idxToPos(7) = %v, want [1 0 1]", got)
	}
	if got := idxToPos(sizes, 23); !got.Equal(Pt(3, 2, 1)) {
		t.Errorf("idxToPos(23) = %v, want [3 2 1]", got)
	}
}
