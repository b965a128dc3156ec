package spectral

import (
	"math"

	"github.com/quietocean/strainwave/algorithms/common"
)

// SNR estimates per-sample signal-to-noise ratios against each
// channel's temporal noise floor
type SNR struct {
	// Envelope selects the squared analytic-signal magnitude as the
	// numerator instead of the squared raw amplitude
	Envelope bool
}

// Array computes the per-sample SNR of a trace in dB: the squared
// amplitude of each sample over the population variance of its channel.
// The variance is a per-channel noise-floor estimate, not a single
// scalar.
//
// A zero-variance (constant) channel is defined, not a crash: nonzero
// samples map to +Inf, zero samples to NaN.
func (s *SNR) Array(trace [][]float64) [][]float64 {
	out := make([][]float64, len(trace))

	var numerator [][]float64
	if s.Envelope {
		numerator = Envelope(trace)
	} else {
		numerator = trace
	}

	for i, row := range trace {
		variance := common.PopVariance(row)
		out[i] = make([]float64, len(row))
		for j := range row {
			v := numerator[i][j]
			out[i][j] = 10 * math.Log10(v*v/variance)
		}
	}
	return out
}
