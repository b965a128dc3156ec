package fk

import (
	"math"
	"testing"
)

func testSelection() ChannelSelection {
	return ChannelSelection{Start: 0, Stop: 4, Step: 1}
}

// The small-geometry scenario: 4 channels x 8 samples, fs=10 Hz, dx=1 m,
// speed band (1, 2, 3, 4) m/s.
func TestRectangularSmallGeometry(t *testing.T) {
	band := SpeedBand{CsMin: 1, CpMin: 2, CpMax: 3, CsMax: 4}
	mask, err := DesignRectangular(4, 8, testSelection(), 1, 10, band, DefaultDesignConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dense, ok := mask.(*Dense)
	if !ok {
		t.Fatalf("expected dense mask, got %T", mask)
	}

	nx, ns := dense.Shape()
	if nx != 4 || ns != 8 {
		t.Fatalf("shape = (%d, %d), want (4, 8)", nx, ns)
	}

	freq, _ := FrequencyAxis(8, 10)
	knum, _ := WavenumberAxis(4, 1, 1)

	for i := 0; i < nx; i++ {
		for j := 0; j < ns; j++ {
			v := dense.At(i, j)
			if v < 0 || v > 1 {
				t.Fatalf("gain[%d][%d] = %g outside [0, 1]", i, j, v)
			}

			if math.Abs(knum[i]) < 0.005 {
				if v != 0 {
					t.Errorf("near-zero wavenumber row %d has gain %g at col %d, want 0", i, v, j)
				}
				continue
			}

			// Strictly fractional gains only inside the transition bands
			if v > 0 && v < 1 {
				speed := math.Abs(freq[j] / knum[i])
				inRampUp := speed >= band.CsMin && speed <= band.CpMin
				inRampDown := speed >= band.CpMax && speed <= band.CsMax
				if !inRampUp && !inRampDown {
					t.Errorf("fractional gain %g at speed %g outside transition bands", v, speed)
				}
			}
		}
	}
}

func TestRectangularRampValues(t *testing.T) {
	// Odd axes so every wavenumber has an exact mirror
	band := SpeedBand{CsMin: 1000, CpMin: 1500, CpMax: 3000, CsMax: 3500}
	mask, err := DesignRectangular(11, 101, testSelection(), 2, 100, band, DefaultDesignConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dense := mask.(*Dense)

	freq, _ := FrequencyAxis(101, 100)
	knum, _ := WavenumberAxis(11, 2, 1)

	for i, k := range knum {
		if math.Abs(k) < 0.005 {
			continue
		}
		for j, f := range freq {
			speed := math.Abs(f / k)
			var want float64
			switch {
			case speed < band.CsMin || speed > band.CsMax:
				want = 0
			case speed <= band.CpMin:
				want = math.Sin(0.5 * math.Pi * (speed - band.CsMin) / (band.CpMin - band.CsMin))
			case speed < band.CpMax:
				want = 1
			default:
				want = 1 - math.Sin(0.5*math.Pi*(speed-band.CpMax)/(band.CsMax-band.CpMax))
			}
			if !almostEqual(dense.At(i, j), want, 1e-12) {
				t.Fatalf("gain[%d][%d] = %g, want %g (speed %g)", i, j, dense.At(i, j), want, speed)
			}
		}
	}
}

// The speed metric is symmetric under (f, k) -> (-f, -k); with odd axis
// lengths the index mirror is exact.
func TestRectangularPointSymmetry(t *testing.T) {
	mask, err := DesignRectangular(11, 41, testSelection(), 2, 50, DefaultSpeedBand(), DefaultDesignConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dense := mask.(*Dense)
	nx, ns := dense.Shape()

	for i := 0; i < nx; i++ {
		for j := 0; j < ns; j++ {
			a := dense.At(i, j)
			b := dense.At(nx-1-i, ns-1-j)
			if !almostEqual(a, b, 1e-12) {
				t.Fatalf("mask[%d][%d] = %g but mirror = %g", i, j, a, b)
			}
		}
	}
}

func TestRectangularZeroWidthRampCollapses(t *testing.T) {
	// cs_min == cp_min and cp_max == cs_max: hard cutoffs, no NaNs
	band := SpeedBand{CsMin: 1450, CpMin: 1450, CpMax: 3400, CsMax: 3400}
	mask, err := DesignRectangular(9, 33, testSelection(), 4, 100, band, DefaultDesignConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dense := mask.(*Dense)
	nx, ns := dense.Shape()

	for i := 0; i < nx; i++ {
		for j := 0; j < ns; j++ {
			v := dense.At(i, j)
			if math.IsNaN(v) {
				t.Fatalf("NaN gain at [%d][%d]", i, j)
			}
			if v != 0 && v != 1 {
				t.Fatalf("gain[%d][%d] = %g, want hard 0/1 cutoffs", i, j, v)
			}
		}
	}
}

func TestRectangularInvalidBand(t *testing.T) {
	cases := []SpeedBand{
		{CsMin: 1500, CpMin: 1450, CpMax: 3400, CsMax: 3500}, // cs_min > cp_min
		{CsMin: 1400, CpMin: 1450, CpMax: 3600, CsMax: 3500}, // cp_max > cs_max
		{CsMin: -1, CpMin: 1450, CpMax: 3400, CsMax: 3500},   // negative speed
	}
	for _, band := range cases {
		if _, err := DesignRectangular(4, 8, testSelection(), 1, 10, band, DefaultDesignConfig()); err == nil {
			t.Errorf("expected invalid-band error for %+v", band)
		}
	}
}

func TestRectangularSparseAgreesWithDense(t *testing.T) {
	cfg := DefaultDesignConfig()
	denseMask, err := DesignRectangular(8, 32, testSelection(), 2, 100, DefaultSpeedBand(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Sparse = true
	sparseMask, err := DesignRectangular(8, 32, testSelection(), 2, 100, DefaultSpeedBand(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sparse, ok := sparseMask.(*Sparse)
	if !ok {
		t.Fatalf("expected sparse mask, got %T", sparseMask)
	}

	dense := denseMask.(*Dense)
	back := sparse.ToDense()
	nx, ns := dense.Shape()
	for i := 0; i < nx; i++ {
		for j := 0; j < ns; j++ {
			if dense.At(i, j) != back.At(i, j) {
				t.Fatalf("sparse round trip differs at [%d][%d]: %g vs %g", i, j, dense.At(i, j), back.At(i, j))
			}
		}
	}
}
