package filters

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Butterworth IIR design. The analog prototype poles are band
// transformed, mapped to the z-plane with the bilinear transform and
// paired into cascaded second-order sections, which keep high orders
// numerically stable. Application is zero phase (forward-backward), so
// the effective attenuation order doubles and no net phase shift is
// introduced.

// SOSSection is one normalized biquad (a0 = 1) of the cascade
type SOSSection struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// SOSFilter is a cascade of second-order sections. The filter itself is
// stateless; per-call state lives on the stack of each application.
type SOSFilter struct {
	sections []SOSSection
}

// Sections returns a copy of the cascade coefficients
func (f *SOSFilter) Sections() []SOSSection {
	out := make([]SOSSection, len(f.sections))
	copy(out, f.sections)
	return out
}

// DesignButterworth designs a digital Butterworth filter of the given
// order. kind is "lowpass", "highpass" or "bandpass"; critical holds
// one corner frequency in Hz for the single-sided kinds and [low, high]
// for bandpass. Corner frequencies are normalized to the Nyquist
// frequency fs/2 and must lie strictly inside (0, fs/2).
func DesignButterworth(order int, critical []float64, kind string, fs float64) (*SOSFilter, error) {
	if order < 1 {
		return nil, fmt.Errorf("butterworth: order must be >= 1, got %d", order)
	}
	if fs <= 0 {
		return nil, fmt.Errorf("butterworth: sampling frequency must be positive, got %g", fs)
	}

	nyquist := fs / 2
	warped := make([]float64, len(critical))
	for i, fc := range critical {
		if fc <= 0 || fc >= nyquist {
			return nil, fmt.Errorf("butterworth: critical frequency %g Hz outside (0, %g)", fc, nyquist)
		}
		// Bilinear prewarp at the internal rate of 2 samples/s
		warped[i] = 4 * math.Tan(math.Pi*(fc/nyquist)/2)
	}

	// Analog lowpass prototype: poles on the left unit semicircle
	poles := make([]complex128, order)
	for i := range poles {
		m := float64(2*(i+1) - 1 - order)
		poles[i] = -cmplx.Exp(complex(0, math.Pi*m/(2*float64(order))))
	}
	gain := 1.0
	var zeros []complex128

	switch kind {
	case "lowpass":
		if len(critical) != 1 {
			return nil, fmt.Errorf("butterworth: lowpass needs one critical frequency, got %d", len(critical))
		}
		wo := warped[0]
		for i := range poles {
			poles[i] *= complex(wo, 0)
		}
		gain *= math.Pow(wo, float64(order))

	case "highpass":
		if len(critical) != 1 {
			return nil, fmt.Errorf("butterworth: highpass needs one critical frequency, got %d", len(critical))
		}
		wo := warped[0]
		prod := complex(1, 0)
		for i := range poles {
			prod *= -poles[i]
			poles[i] = complex(wo, 0) / poles[i]
		}
		gain *= 1 / real(prod)
		zeros = make([]complex128, order) // order zeros at s = 0

	case "bandpass":
		if len(critical) != 2 {
			return nil, fmt.Errorf("butterworth: bandpass needs [low, high] critical frequencies, got %d", len(critical))
		}
		w1, w2 := warped[0], warped[1]
		if w1 >= w2 {
			return nil, fmt.Errorf("butterworth: band edges must satisfy low < high, got (%g, %g)", critical[0], critical[1])
		}
		bw := w2 - w1
		wo := math.Sqrt(w1 * w2)

		transformed := make([]complex128, 0, 2*order)
		for _, p := range poles {
			scaled := p * complex(bw/2, 0)
			d := cmplx.Sqrt(scaled*scaled - complex(wo*wo, 0))
			transformed = append(transformed, scaled+d, scaled-d)
		}
		poles = transformed
		gain *= math.Pow(bw, float64(order))
		zeros = make([]complex128, order) // order zeros at s = 0

	default:
		return nil, fmt.Errorf("butterworth: unknown filter kind %q", kind)
	}

	zDigital, pDigital, kDigital := bilinear(zeros, poles, gain)
	return pairSections(zDigital, pDigital, kDigital)
}

// bilinear maps an analog zpk system to the z-plane at the internal
// rate (fs = 2), padding the numerator with zeros at z = -1 up to the
// pole count
func bilinear(zeros, poles []complex128, gain float64) ([]complex128, []complex128, float64) {
	const fs2 = 4.0 // 2 * internal sampling rate

	num := complex(1, 0)
	den := complex(1, 0)
	zd := make([]complex128, 0, len(poles))
	pd := make([]complex128, 0, len(poles))

	for _, z := range zeros {
		num *= complex(fs2, 0) - z
		zd = append(zd, (complex(fs2, 0)+z)/(complex(fs2, 0)-z))
	}
	for _, p := range poles {
		den *= complex(fs2, 0) - p
		pd = append(pd, (complex(fs2, 0)+p)/(complex(fs2, 0)-p))
	}
	for len(zd) < len(pd) {
		zd = append(zd, -1)
	}

	return zd, pd, gain * real(num/den)
}

// pairSections groups conjugate pole pairs (and stray real poles) with
// the +/-1 digital zeros into normalized biquads, folding the overall
// gain into the first section
func pairSections(zeros, poles []complex128, gain float64) (*SOSFilter, error) {
	const tol = 1e-10

	var complexPoles []complex128
	var realPoles []float64
	for _, p := range poles {
		if math.Abs(imag(p)) > tol {
			if imag(p) > 0 {
				complexPoles = append(complexPoles, p)
			}
		} else {
			realPoles = append(realPoles, real(p))
		}
	}

	// Count the zeros at +1 and -1; the design places them nowhere else
	var zPlus, zMinus int
	for _, z := range zeros {
		if real(z) >= 0 {
			zPlus++
		} else {
			zMinus++
		}
	}

	var sections []SOSSection
	firstOrderIdx := -1

	for _, p := range complexPoles {
		sections = append(sections, SOSSection{
			A1: -2 * real(p),
			A2: real(p)*real(p) + imag(p)*imag(p),
		})
	}
	for len(realPoles) >= 2 {
		p1, p2 := realPoles[0], realPoles[1]
		realPoles = realPoles[2:]
		sections = append(sections, SOSSection{
			A1: -(p1 + p2),
			A2: p1 * p2,
		})
	}
	if len(realPoles) == 1 {
		firstOrderIdx = len(sections)
		sections = append(sections, SOSSection{A1: -realPoles[0]})
	}

	take := func() (float64, bool) {
		if zPlus > 0 && zPlus >= zMinus {
			zPlus--
			return 1, true
		}
		if zMinus > 0 {
			zMinus--
			return -1, true
		}
		return 0, false
	}

	// Distribute the numerator roots, a balanced pair per biquad
	for i := range sections {
		s := &sections[i]
		r1, ok1 := take()
		if i == firstOrderIdx {
			s.B0 = 1
			if ok1 {
				s.B1 = -r1
			}
			continue
		}
		r2, ok2 := take()
		switch {
		case ok1 && ok2:
			// (z - r1)(z - r2)
			s.B0, s.B1, s.B2 = 1, -(r1 + r2), r1*r2
		case ok1:
			s.B0, s.B1 = 1, -r1
		default:
			s.B0 = 1
		}
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("butterworth: design produced no sections")
	}

	sections[0].B0 *= gain
	sections[0].B1 *= gain
	sections[0].B2 *= gain

	return &SOSFilter{sections: sections}, nil
}
