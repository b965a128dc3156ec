package filtering

import (
	"fmt"

	"github.com/quietocean/strainwave/algorithms/fk"
)

// Variant selects the filter design the processor builds
type Variant string

const (
	// VariantRectangular is the plain speed-band mask over the whole
	// frequency axis
	VariantRectangular Variant = "rectangular"
	// VariantHybrid combines the frequency passband with a single-sided
	// low-speed cutoff
	VariantHybrid Variant = "hybrid"
	// VariantHybridNinf additionally rejects near-zero wavenumbers
	// (implausibly high apparent speeds)
	VariantHybridNinf Variant = "hybrid-ninf"
	// VariantHybridSmoothed is the Gaussian-smoothed single-sided mask
	VariantHybridSmoothed Variant = "hybrid-gs"
	// VariantHybridNinfSmoothed is the Gaussian-smoothed double-sided
	// mask
	VariantHybridNinfSmoothed Variant = "hybrid-ninf-gs"
)

// ButterworthSpec configures the optional per-channel bandpass stage
type ButterworthSpec struct {
	Order int     `json:"order"`
	Low   float64 `json:"low"`  // Lower corner (Hz)
	High  float64 `json:"high"` // Upper corner (Hz)
}

// Config is the full filter configuration surface
type Config struct {
	Variant       Variant          `json:"variant"`
	SpeedBand     fk.SpeedBand     `json:"speed_band"`
	FrequencyBand fk.FrequencyBand `json:"frequency_band"`
	Design        fk.DesignConfig  `json:"design"`
	Tapering      bool             `json:"tapering"`
	TaperAlpha    float64          `json:"taper_alpha,omitempty"`
	Butterworth   *ButterworthSpec `json:"butterworth,omitempty"`
}

// DefaultConfig returns the fin-whale tuning: hybrid mask over
// 15-25 Hz keeping apparent speeds above 1450 m/s, stored sparse, with
// edge tapering on apply.
func DefaultConfig() Config {
	return Config{
		Variant:       VariantHybrid,
		SpeedBand:     fk.DefaultSpeedBand(),
		FrequencyBand: fk.DefaultFrequencyBand(),
		Design: fk.DesignConfig{
			KEpsilon:       0.005,
			SmoothingSigma: 20,
			Sparse:         true,
		},
		Tapering: true,
	}
}

// Validate checks the parts of the configuration the selected variant
// will consult
func (c Config) Validate() error {
	switch c.Variant {
	case VariantRectangular:
		if err := c.SpeedBand.Validate(); err != nil {
			return err
		}
	case VariantHybrid, VariantHybridSmoothed:
		if c.SpeedBand.CsMin <= 0 || c.SpeedBand.CsMin > c.SpeedBand.CpMin {
			return fmt.Errorf("speed band: require 0 < cs_min <= cp_min, got (%g, %g)",
				c.SpeedBand.CsMin, c.SpeedBand.CpMin)
		}
		if err := c.FrequencyBand.Validate(); err != nil {
			return err
		}
	case VariantHybridNinf, VariantHybridNinfSmoothed:
		if err := c.SpeedBand.Validate(); err != nil {
			return err
		}
		if err := c.FrequencyBand.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown filter variant %q", c.Variant)
	}

	if b := c.Butterworth; b != nil {
		if b.Order < 1 {
			return fmt.Errorf("butterworth: order must be >= 1, got %d", b.Order)
		}
		if b.Low <= 0 || b.Low >= b.High {
			return fmt.Errorf("butterworth: require 0 < low < high, got (%g, %g)", b.Low, b.High)
		}
	}
	return nil
}
