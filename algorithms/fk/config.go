package fk

import "fmt"

// ChannelSelection is the (start, stop, step) triple over raw channel
// indices. Step controls spatial decimation and therefore the Nyquist
// wavenumber a filter can reach: kNyquist = 1/(2*step*dx).
type ChannelSelection struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
	Step  int `json:"step"`
}

// SpeedBand defines the trapezoidal pass region in apparent propagation
// speed (m/s), speed = |frequency/wavenumber|. The ordering
// CsMin <= CpMin <= CpMax <= CsMax is required: gains ramp up between
// CsMin and CpMin, pass between CpMin and CpMax, and ramp down between
// CpMax and CsMax.
type SpeedBand struct {
	CsMin float64 `json:"cs_min"`
	CpMin float64 `json:"cp_min"`
	CpMax float64 `json:"cp_max"`
	CsMax float64 `json:"cs_max"`
}

// DefaultSpeedBand keeps apparent speeds in [1450, 3400] m/s with
// 50 m/s transition bands, the waterborne-call range the system was
// tuned for.
func DefaultSpeedBand() SpeedBand {
	return SpeedBand{
		CsMin: 1400,
		CpMin: 1450,
		CpMax: 3400,
		CsMax: 3500,
	}
}

// Validate rejects bands that would produce a degenerate mask
func (b SpeedBand) Validate() error {
	if b.CsMin <= 0 {
		return fmt.Errorf("speed band: cs_min must be positive, got %g", b.CsMin)
	}
	if !(b.CsMin <= b.CpMin && b.CpMin <= b.CpMax && b.CpMax <= b.CsMax) {
		return fmt.Errorf("speed band: require cs_min <= cp_min <= cp_max <= cs_max, got (%g, %g, %g, %g)",
			b.CsMin, b.CpMin, b.CpMax, b.CsMax)
	}
	return nil
}

// FrequencyBand defines a raised-cosine passband along the frequency
// axis: unity inside [Fmin, Fmax], half-sine/cosine ramps over Taper Hz
// on either side, zero beyond.
type FrequencyBand struct {
	Fmin  float64 `json:"fmin"`
	Fmax  float64 `json:"fmax"`
	Taper float64 `json:"taper_width"`
}

// DefaultFrequencyBand covers the 15-25 Hz fin whale call band with
// 4 Hz tapers
func DefaultFrequencyBand() FrequencyBand {
	return FrequencyBand{
		Fmin:  15,
		Fmax:  25,
		Taper: 4,
	}
}

// Validate rejects empty passbands
func (b FrequencyBand) Validate() error {
	if b.Fmin >= b.Fmax {
		return fmt.Errorf("frequency band: require fmin < fmax, got (%g, %g)", b.Fmin, b.Fmax)
	}
	if b.Taper < 0 {
		return fmt.Errorf("frequency band: taper width must be >= 0, got %g", b.Taper)
	}
	return nil
}

// DesignConfig carries the empirical design knobs. Both defaults are
// inherited tuning values without a stated derivation; revalidate
// before trusting them on a very different geometry.
type DesignConfig struct {
	// KEpsilon rejects near-zero-wavenumber rows where speed = f/k is
	// numerically unstable
	KEpsilon float64 `json:"k_epsilon"`
	// SmoothingSigma is the Gaussian kernel scale of the smoothed
	// designer variants
	SmoothingSigma float64 `json:"smoothing_sigma"`
	// Sparse selects the coordinate mask representation, bounding
	// memory on high channel counts
	Sparse bool `json:"sparse"`
}

// DefaultDesignConfig returns the inherited design constants
func DefaultDesignConfig() DesignConfig {
	return DesignConfig{
		KEpsilon:       0.005,
		SmoothingSigma: 20,
		Sparse:         false,
	}
}

// ApplyOptions controls mask application
type ApplyOptions struct {
	// Tapering applies a Tukey edge window along the time axis before
	// transforming
	Tapering bool `json:"tapering"`
	// TaperAlpha is the Tukey taper fraction; zero selects the default
	TaperAlpha float64 `json:"taper_alpha"`
	// InPlace lets Apply mutate the caller's trace buffer instead of a
	// private copy. Only set this when the input is disposable.
	InPlace bool `json:"in_place"`
}

// DefaultTaperAlpha is the edge-taper ratio used when ApplyOptions
// leaves TaperAlpha unset
const DefaultTaperAlpha = 0.03
