package spectral

import (
	"math"
	"testing"
)

func TestSNRArrayPureTone(t *testing.T) {
	// Unit sine over integer cycles, sampled through its exact peak:
	// population variance 0.5, so the peak sample sits at
	// 10*log10(1/0.5) ~ 3.01 dB
	x := make([]float64, 400)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 5 * float64(i) / 100)
	}

	s := &SNR{}
	out := s.Array([][]float64{x})
	if len(out) != 1 || len(out[0]) != len(x) {
		t.Fatalf("shape (%d, %d), want (1, %d)", len(out), len(out[0]), len(x))
	}

	peak := math.Inf(-1)
	for _, v := range out[0] {
		if math.IsNaN(v) {
			t.Fatal("NaN in SNR of a non-degenerate channel")
		}
		peak = math.Max(peak, v)
	}
	if math.Abs(peak-10*math.Log10(2)) > 0.1 {
		t.Errorf("peak SNR %g dB, want about %g dB", peak, 10*math.Log10(2))
	}

	// Zero crossings have zero numerator
	if !math.IsInf(out[0][0], -1) {
		t.Errorf("SNR at a zero sample = %g, want -Inf", out[0][0])
	}
}

func TestSNRArrayEnvelopeMode(t *testing.T) {
	x := make([]float64, 400)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 10 * float64(i) / 100)
	}

	s := &SNR{Envelope: true}
	out := s.Array([][]float64{x})

	// The unit envelope flattens the tone, so every sample lands at the
	// same ratio against the 0.5 variance floor
	want := 10 * math.Log10(2)
	for j, v := range out[0] {
		if math.Abs(v-want) > 0.01 {
			t.Fatalf("envelope SNR %g dB at %d, want %g", v, j, want)
		}
	}
}

func TestSNRArrayDegenerateChannels(t *testing.T) {
	constant := make([]float64, 64)
	for i := range constant {
		constant[i] = 3
	}
	silent := make([]float64, 64)

	s := &SNR{}
	out := s.Array([][]float64{constant, silent})

	for j, v := range out[0] {
		if !math.IsInf(v, 1) {
			t.Fatalf("constant channel SNR %g at %d, want +Inf", v, j)
		}
	}
	for j, v := range out[1] {
		if !math.IsNaN(v) {
			t.Fatalf("silent channel SNR %g at %d, want NaN", v, j)
		}
	}
}
