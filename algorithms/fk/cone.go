package fk

import (
	"fmt"
	"math"
)

// DesignCone builds the broadband speed-cone mask: unity inside the
// cMin speed cone, minus the cMax cone, mirrored, Gaussian-blurred and
// min-max renormalized into [0, 1]. Unlike the band designers it has no
// transition ramps of its own; all smoothing comes from the blur. tint
// and xint are the temporal and spatial decimation intervals already
// applied to the trace.
func DesignCone(nx, ns int, tint, fs, xint, dx, cMin, cMax float64, cfg DesignConfig) (Mask, error) {
	if cMin <= 0 || cMax <= cMin {
		return nil, fmt.Errorf("speed cone: require 0 < c_min < c_max, got (%g, %g)", cMin, cMax)
	}
	if tint <= 0 || xint <= 0 {
		return nil, fmt.Errorf("speed cone: decimation intervals must be positive, got (%g, %g)", tint, xint)
	}

	freq, err := FrequencyAxis(ns, fs/tint)
	if err != nil {
		return nil, err
	}
	knum, err := WavenumberAxis(nx, xint*dx, 1)
	if err != nil {
		return nil, err
	}

	gain := make([][]float64, nx)
	outer := make([][]float64, nx)
	for i, k := range knum {
		gain[i] = make([]float64, ns)
		outer[i] = make([]float64, ns)
		for j, f := range freq {
			if f < k*cMin && f < -k*cMin {
				gain[i][j] = 1
			}
			if f < k*cMax && f < -k*cMax {
				outer[i][j] = 1
			}
		}
	}

	// Mirror the inner cone, subtract both images of the outer cone to
	// leave the band between the two speeds
	addMirrorLR(gain)
	addMirrorLR(outer)
	for i := range gain {
		for j := range gain[i] {
			gain[i][j] -= outer[i][j]
		}
	}

	gaussianSmooth(gain, cfg.SmoothingSigma)

	// Renormalize the blurred gains to span [0, 1]
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range gain {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi > lo {
		for _, row := range gain {
			for j := range row {
				row[j] = (row[j] - lo) / (hi - lo)
			}
		}
	}

	return finishMask(gain, cfg.Sparse), nil
}
