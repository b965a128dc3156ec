package fk

import (
	"fmt"

	"github.com/quietocean/strainwave/algorithms/spectral"
	"github.com/quietocean/strainwave/algorithms/windowing"
)

// Apply runs a designed mask over a trace: 2-D transform with the zero
// component shifted to the center, elementwise mask multiply, inverse
// shift and transform, real part out. The output has the trace's shape;
// the imaginary residual is numerical noise and is discarded, so
// callers must not expect it for diagnostics.
//
// The trace is copied before any mutation unless opts.InPlace is set.
// The mask is read-only here; one mask may serve many concurrent Apply
// calls.
func Apply(trace [][]float64, mask Mask, opts ApplyOptions) ([][]float64, error) {
	nx, ns := mask.Shape()
	if len(trace) != nx {
		return nil, fmt.Errorf("shape mismatch: trace has %d channels, mask has %d", len(trace), nx)
	}
	for i, row := range trace {
		if len(row) != ns {
			return nil, fmt.Errorf("shape mismatch: trace row %d has %d samples, mask has %d", i, len(row), ns)
		}
	}

	work := trace
	if !opts.InPlace {
		work = make([][]float64, nx)
		for i, row := range trace {
			work[i] = make([]float64, ns)
			copy(work[i], row)
		}
	}

	if opts.Tapering {
		alpha := opts.TaperAlpha
		if alpha == 0 {
			alpha = DefaultTaperAlpha
		}
		taper := windowing.NewTukey(ns, alpha)
		if err := taper.ApplyRows(work); err != nil {
			return nil, err
		}
	}

	f := spectral.NewFFT()
	fkSpec := spectral.Shift2D(f.Compute2D(work))

	filtered, err := mask.MultiplySpectrum(fkSpec)
	if err != nil {
		return nil, err
	}

	restored := f.ComputeInverse2D(spectral.InverseShift2D(filtered))
	for i := range work {
		for j := range work[i] {
			work[i][j] = real(restored[i][j])
		}
	}
	return work, nil
}
