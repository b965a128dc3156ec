package windowing

import (
	"math"
	"testing"
)

func TestTukeyCoefficients(t *testing.T) {
	// alpha 0.5 over 9 samples tapers two samples per edge
	want := []float64{0, 0.5, 1, 1, 1, 1, 1, 0.5, 0}

	w := NewTukey(9, 0.5)
	got := w.Coefficients()
	if len(got) != len(want) {
		t.Fatalf("got %d coefficients, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("coefficient %d = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestTukeySymmetry(t *testing.T) {
	for _, size := range []int{16, 17, 64} {
		for _, alpha := range []float64{0.03, 0.25, 1} {
			c := NewTukey(size, alpha).Coefficients()
			for i := 0; i < size/2; i++ {
				if math.Abs(c[i]-c[size-1-i]) > 1e-12 {
					t.Fatalf("size %d alpha %g: asymmetric at %d (%g vs %g)",
						size, alpha, i, c[i], c[size-1-i])
				}
			}
		}
	}
}

func TestTukeyRectangularDegenerate(t *testing.T) {
	for _, alpha := range []float64{0, -0.5} {
		for _, c := range NewTukey(32, alpha).Coefficients() {
			if c != 1 {
				t.Fatalf("alpha %g: coefficient %g, want all-ones", alpha, c)
			}
		}
	}
}

func TestTukeyHannDegenerate(t *testing.T) {
	// alpha 1 collapses to a Hann window
	const n = 32
	c := NewTukey(n, 1).Coefficients()
	for i := 0; i < n; i++ {
		hann := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		if math.Abs(c[i]-hann) > 1e-12 {
			t.Fatalf("coefficient %d = %g, want Hann %g", i, c[i], hann)
		}
	}
}

func TestTukeySingleSample(t *testing.T) {
	c := NewTukey(1, 0.5).Coefficients()
	if len(c) != 1 || c[0] != 1 {
		t.Fatalf("single-sample window = %v, want [1]", c)
	}
}

func TestTukeyApply(t *testing.T) {
	w := NewTukey(8, 0.25)
	signal := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	windowed := w.Apply(signal)
	if windowed == nil {
		t.Fatal("Apply returned nil for a matching length")
	}
	for i, c := range w.Coefficients() {
		if windowed[i] != c {
			t.Errorf("sample %d = %g, want %g", i, windowed[i], c)
		}
	}
	if signal[0] != 1 {
		t.Error("Apply mutated its input")
	}

	if w.Apply(make([]float64, 5)) != nil {
		t.Error("Apply accepted a mismatched length")
	}
}

func TestTukeyApplyRows(t *testing.T) {
	w := NewTukey(4, 0.5)
	matrix := [][]float64{
		{2, 2, 2, 2},
		{1, 1, 1, 1},
	}
	if err := w.ApplyRows(matrix); err != nil {
		t.Fatalf("ApplyRows: %v", err)
	}
	c := w.Coefficients()
	for i, row := range matrix {
		scale := float64(2 - i)
		for j, v := range row {
			if math.Abs(v-scale*c[j]) > 1e-12 {
				t.Errorf("row %d sample %d = %g, want %g", i, j, v, scale*c[j])
			}
		}
	}

	ragged := [][]float64{{1, 1, 1, 1}, {1, 1}}
	if err := w.ApplyRows(ragged); err == nil {
		t.Error("expected error for a ragged row")
	}
}
