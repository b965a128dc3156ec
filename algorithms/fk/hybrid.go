package fk

import (
	"fmt"
	"math"
)

// The hybrid designers combine a raised-cosine frequency passband with
// a wavenumber-domain speed cutoff applied inside the passband's index
// range. The ramps are constructed on the positive-frequency half only;
// mirror symmetrization fills in the negative-frequency image
// afterwards.

// DesignHybrid builds the single-sided hybrid bandpass mask: inside
// [fmin, fmax] it passes wavenumbers below kp = f/cpMin (apparent
// speeds above cpMin), with half-sine ramps between ks = f/csMin and
// kp on both wavenumber signs. Only CsMin and CpMin of the speed band
// are consulted.
func DesignHybrid(nx, ns int, sel ChannelSelection, dx, fs float64, band SpeedBand, fband FrequencyBand, cfg DesignConfig) (Mask, error) {
	g, err := newHybridGrid(nx, ns, sel, dx, fs, band, fband, true)
	if err != nil {
		return nil, err
	}

	for i := g.fminIdx; i < g.fmaxIdx; i++ {
		f := g.freq[i]
		col := make([]float64, nx)

		ks := f / band.CsMin
		kp := f / band.CpMin

		// Zero-width ramp: skip, leaving the ramp region at zero
		if ks != kp {
			for r, k := range g.knum {
				// f+ k+ quadrant
				if k >= -ks && k <= -kp {
					col[r] = -math.Sin(0.5 * math.Pi * (k + ks) / (kp - ks))
				}
			}
			for r, k := range g.knum {
				// f+ k- quadrant
				if -k >= -ks && -k <= -kp {
					col[r] = math.Sin(0.5 * math.Pi * (k - ks) / (kp - ks))
				}
			}
		}

		// Passband between -kp and kp
		for r, k := range g.knum {
			if k < kp && k > -kp {
				col[r] = 1
			}
		}

		g.multiplyColumn(i, col)
	}

	addMirrorLR(g.gain)
	return finishMask(g.gain, cfg.Sparse), nil
}

// DesignHybridNinf builds the double-sided ("ninf") hybrid bandpass
// mask. On top of the low-speed cutoff it also rejects wavenumbers
// near zero, i.e. implausibly high apparent speeds: the pass region is
// the annulus between kpMax = f/cpMax and kpMin = f/cpMin, ramped
// toward ksMax = f/csMax and ksMin = f/csMin.
//
// Symmetrization adds the horizontal then the vertical mirror
// cumulatively, so gains near overlapping images can exceed unity.
// That over-unity behavior is inherited and intentionally not clamped;
// treat it as under review rather than a guarantee.
func DesignHybridNinf(nx, ns int, sel ChannelSelection, dx, fs float64, band SpeedBand, fband FrequencyBand, cfg DesignConfig) (Mask, error) {
	if err := band.Validate(); err != nil {
		return nil, err
	}
	g, err := newHybridGrid(nx, ns, sel, dx, fs, band, fband, true)
	if err != nil {
		return nil, err
	}

	for i := g.fminIdx; i < g.fmaxIdx; i++ {
		f := g.freq[i]
		col := make([]float64, nx)

		ksMin := f / band.CsMin
		kpMin := f / band.CpMin
		ksMax := f / band.CsMax
		kpMax := f / band.CpMax

		if ksMin != kpMin {
			for r, k := range g.knum {
				// Outer edge, ramping up toward the annulus
				if k >= -ksMin && k <= -kpMin {
					col[r] = -math.Sin(0.5 * math.Pi * (k + ksMin) / (kpMin - ksMin))
				}
			}
		}
		if ksMax != kpMax {
			for r, k := range g.knum {
				// Inner edge, ramping down toward k = 0
				if k >= -kpMax && k <= -ksMax {
					col[r] = math.Cos(0.5 * math.Pi * (k + kpMax) / (ksMax - kpMax))
				}
			}
		}

		// Annulus passband
		for r, k := range g.knum {
			if k > -kpMin && k < -kpMax {
				col[r] = 1
			}
		}

		g.multiplyColumn(i, col)
	}

	addMirrorLR(g.gain)
	addMirrorUD(g.gain)
	return finishMask(g.gain, cfg.Sparse), nil
}

// DesignHybridSmoothed is the Gaussian-smoothed single-sided variant:
// hard frequency and wavenumber cutoffs (no half-sine ramps), mirrored,
// then blurred with cfg.SmoothingSigma. Smoothing rounds the transition
// edges at the cost of passband ripple, and the blurred gains are not
// clamped back into [0, 1].
func DesignHybridSmoothed(nx, ns int, sel ChannelSelection, dx, fs float64, band SpeedBand, fband FrequencyBand, cfg DesignConfig) (Mask, error) {
	g, err := newHybridGrid(nx, ns, sel, dx, fs, band, fband, false)
	if err != nil {
		return nil, err
	}

	for i := g.fminIdx; i < g.fmaxIdx; i++ {
		col := make([]float64, nx)
		kp := g.freq[i] / band.CpMin
		for r, k := range g.knum {
			if k < kp && k > -kp {
				col[r] = 1
			}
		}
		g.multiplyColumn(i, col)
	}

	addMirrorLR(g.gain)
	gaussianSmooth(g.gain, cfg.SmoothingSigma)
	return finishMask(g.gain, cfg.Sparse), nil
}

// DesignHybridNinfSmoothed is the Gaussian-smoothed double-sided
// variant: hard annulus cutoffs, blurred first, then mirrored
// cumulatively (the inherited order; over-unity overlaps are kept).
func DesignHybridNinfSmoothed(nx, ns int, sel ChannelSelection, dx, fs float64, band SpeedBand, fband FrequencyBand, cfg DesignConfig) (Mask, error) {
	if err := band.Validate(); err != nil {
		return nil, err
	}
	g, err := newHybridGrid(nx, ns, sel, dx, fs, band, fband, false)
	if err != nil {
		return nil, err
	}

	for i := g.fminIdx; i < g.fmaxIdx; i++ {
		col := make([]float64, nx)
		kpMin := g.freq[i] / band.CpMin
		kpMax := g.freq[i] / band.CpMax
		for r, k := range g.knum {
			if k > -kpMin && k < -kpMax {
				col[r] = 1
			}
		}
		g.multiplyColumn(i, col)
	}

	gaussianSmooth(g.gain, cfg.SmoothingSigma)
	addMirrorLR(g.gain)
	addMirrorUD(g.gain)
	return finishMask(g.gain, cfg.Sparse), nil
}

// hybridGrid holds the axes and the frequency-initialized gain matrix
// shared by the hybrid designers
type hybridGrid struct {
	freq, knum []float64
	fminIdx    int
	fmaxIdx    int
	gain       [][]float64
}

// newHybridGrid validates the low-speed edge and frequency band, builds
// the axes, and initializes every wavenumber row to the frequency
// response H(f). With ramps disabled H(f) is the hard indicator of
// [fmin, fmax].
func newHybridGrid(nx, ns int, sel ChannelSelection, dx, fs float64, band SpeedBand, fband FrequencyBand, ramps bool) (*hybridGrid, error) {
	if band.CsMin <= 0 {
		return nil, fmt.Errorf("speed band: cs_min must be positive, got %g", band.CsMin)
	}
	if band.CsMin > band.CpMin {
		return nil, fmt.Errorf("speed band: require cs_min <= cp_min, got (%g, %g)", band.CsMin, band.CpMin)
	}
	if err := fband.Validate(); err != nil {
		return nil, err
	}

	freq, err := FrequencyAxis(ns, fs)
	if err != nil {
		return nil, err
	}
	knum, err := WavenumberAxis(nx, dx, sel.Step)
	if err != nil {
		return nil, err
	}

	fpMin := fband.Fmin - fband.Taper
	fpMax := fband.Fmax + fband.Taper

	h := make([]float64, ns)
	for j, f := range freq {
		switch {
		case f >= fband.Fmin && f <= fband.Fmax:
			h[j] = 1
		case !ramps:
			// Smoothed variants skip the transition ramps entirely
		case f >= fpMin && f <= fband.Fmin:
			h[j] = math.Sin(0.5 * math.Pi * (f - fpMin) / (fband.Fmin - fpMin))
		case f >= fband.Fmax && f <= fpMax:
			h[j] = math.Cos(0.5 * math.Pi * (f - fband.Fmax) / (fband.Fmax - fpMax))
		}
	}

	gain := make([][]float64, nx)
	for i := range gain {
		gain[i] = make([]float64, ns)
		copy(gain[i], h)
	}

	return &hybridGrid{
		freq:    freq,
		knum:    knum,
		fminIdx: firstIndexGE(freq, fpMin),
		fmaxIdx: firstIndexGE(freq, fpMax),
		gain:    gain,
	}, nil
}

// multiplyColumn scales frequency column i of the gain matrix by the
// per-wavenumber gains in col
func (g *hybridGrid) multiplyColumn(i int, col []float64) {
	for r := range g.gain {
		g.gain[r][i] *= col[r]
	}
}

// firstIndexGE returns the first index whose value is >= v, or 0 when
// no value qualifies
func firstIndexGE(values []float64, v float64) int {
	for i, x := range values {
		if x >= v {
			return i
		}
	}
	return 0
}

// addMirrorLR adds the horizontal (frequency) mirror of the matrix to
// itself, filling in the negative-frequency image
func addMirrorLR(m [][]float64) {
	for _, row := range m {
		ns := len(row)
		orig := make([]float64, ns)
		copy(orig, row)
		for j := range row {
			row[j] += orig[ns-1-j]
		}
	}
}

// addMirrorUD adds the vertical (wavenumber) mirror of the matrix to
// itself
func addMirrorUD(m [][]float64) {
	nx := len(m)
	orig := make([][]float64, nx)
	for i, row := range m {
		orig[i] = make([]float64, len(row))
		copy(orig[i], row)
	}
	for i, row := range m {
		for j := range row {
			row[j] += orig[nx-1-i][j]
		}
	}
}
