package spectral

import (
	"math"
	"math/cmplx"
)

// AnalyticSignal computes the analytic signal of a real channel via
// quadrature completion in the frequency domain: positive-frequency
// bins are doubled, DC (and Nyquist for even lengths) kept, and
// negative-frequency bins zeroed before the inverse transform. The
// magnitude of the result is the signal envelope, its phase the
// instantaneous phase.
func AnalyticSignal(x []float64) []complex128 {
	n := len(x)
	if n == 0 {
		return []complex128{}
	}

	f := NewFFT()
	spec := f.Compute(x)

	half := n / 2
	for i := 1; i < half; i++ {
		spec[i] *= 2
	}
	if n%2 != 0 && half >= 1 {
		spec[half] *= 2
	}
	for i := half + 1; i < n; i++ {
		spec[i] = 0
	}

	return f.ComputeInverse(spec)
}

// Envelope computes the instantaneous amplitude of each row of a trace
// as the magnitude of the analytic signal
func Envelope(trace [][]float64) [][]float64 {
	out := make([][]float64, len(trace))
	for i, row := range trace {
		analytic := AnalyticSignal(row)
		out[i] = make([]float64, len(analytic))
		for j, v := range analytic {
			out[i][j] = cmplx.Abs(v)
		}
	}
	return out
}

// InstantFreq computes the instantaneous frequency of a channel as the
// first difference of the unwrapped analytic-signal phase, scaled by
// fs/2pi. The output has one sample fewer than the input.
func InstantFreq(channel []float64, fs float64) []float64 {
	if len(channel) < 2 {
		return []float64{}
	}

	analytic := AnalyticSignal(channel)
	phase := make([]float64, len(analytic))
	for i, v := range analytic {
		phase[i] = cmplx.Phase(v)
	}
	unwrap(phase)

	fi := make([]float64, len(phase)-1)
	for i := range fi {
		fi[i] = (phase[i+1] - phase[i]) / (2.0 * math.Pi) * fs
	}
	return fi
}

// unwrap corrects phase jumps larger than pi in place
func unwrap(phase []float64) {
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] + offset - phase[i-1]
		for d > math.Pi {
			offset -= 2 * math.Pi
			d -= 2 * math.Pi
		}
		for d < -math.Pi {
			offset += 2 * math.Pi
			d += 2 * math.Pi
		}
		phase[i] += offset
	}
}
