package common

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %g, want 2.5", got)
	}
}

func TestPopVariance(t *testing.T) {
	// Population variance of [1..5] around mean 3 is 2
	if got := PopVariance([]float64{1, 2, 3, 4, 5}); math.Abs(got-2) > 1e-12 {
		t.Errorf("PopVariance = %g, want 2", got)
	}
	if got := PopVariance([]float64{7, 7, 7}); got != 0 {
		t.Errorf("constant PopVariance = %g, want 0", got)
	}
}

func TestPopStdDev(t *testing.T) {
	if got := PopStdDev([]float64{1, 2, 3, 4, 5}); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("PopStdDev = %g, want sqrt(2)", got)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, -4}); math.Abs(got-math.Sqrt(12.5)) > 1e-12 {
		t.Errorf("RMS = %g, want %g", got, math.Sqrt(12.5))
	}
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS of empty input = %g, want 0", got)
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs([]float64{1, -5, 3}); got != 5 {
		t.Errorf("MaxAbs = %g, want 5", got)
	}
}

func TestDemean(t *testing.T) {
	m := [][]float64{
		{1, 2, 3},
		{10, 10, 10},
	}
	Demean(m)
	for i, row := range m {
		if math.Abs(Mean(row)) > 1e-12 {
			t.Errorf("row %d mean after Demean = %g, want 0", i, Mean(row))
		}
	}
	if m[0][0] != -1 || m[0][2] != 1 {
		t.Errorf("row 0 = %v, want [-1 0 1]", m[0])
	}
	if m[1][0] != 0 {
		t.Errorf("constant row not zeroed: %v", m[1])
	}
}
