package filtering

import (
	"fmt"
	"math/cmplx"

	"github.com/quietocean/strainwave/algorithms/spectral"
)

// ChannelSpectra transforms each channel of a strain trace to the
// frequency domain and returns the center-shifted single-sided
// magnitudes in nanostrain: 2|X(f)|/nfft scaled by 1e9. Channels
// shorter than nfft are zero-padded, longer ones truncated.
func ChannelSpectra(trace Trace, nfft int) ([][]float64, error) {
	if len(trace) == 0 {
		return nil, fmt.Errorf("empty trace")
	}
	if nfft < 1 {
		return nil, fmt.Errorf("nfft must be >= 1, got %d", nfft)
	}

	const nano = 1e9

	f := spectral.NewFFT()
	out := make([][]float64, len(trace))
	buf := make([]float64, nfft)

	for i, channel := range trace {
		for j := range buf {
			if j < len(channel) {
				buf[j] = channel[j]
			} else {
				buf[j] = 0
			}
		}

		spec := f.Compute(buf)
		mags := make([]float64, nfft)
		// Center-shift so the row aligns with a zero-centered axis
		off := (nfft + 1) / 2
		for j := range mags {
			mags[j] = 2 * cmplx.Abs(spec[(j+off)%nfft]) / float64(nfft) * nano
		}
		out[i] = mags
	}
	return out, nil
}
