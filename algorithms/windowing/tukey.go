package windowing

import (
	"fmt"
	"math"
)

// Tukey represents a Tukey (tapered cosine) window: rectangular in the
// middle with cosine roll-off over a fraction alpha of the window at
// the edges. It is the edge taper applied to each channel's time series
// before 2-D spectral transforms, where a small alpha (0.03) suppresses
// wrap-around leakage while leaving the record essentially untouched.
type Tukey struct {
	size         int
	alpha        float64
	coefficients []float64
}

// NewTukey creates a new Tukey window of the given size. alpha is the
// total fraction of the window inside the cosine tapers; alpha <= 0
// degenerates to a rectangular window, alpha >= 1 to a Hann window.
func NewTukey(size int, alpha float64) *Tukey {
	t := &Tukey{
		size:  size,
		alpha: alpha,
	}
	t.generate()
	return t
}

func (t *Tukey) generate() {
	t.coefficients = make([]float64, t.size)

	if t.size == 1 {
		t.coefficients[0] = 1.0
		return
	}

	alpha := math.Min(math.Max(t.alpha, 0.0), 1.0)
	// Taper spans alpha*(N-1)/2 samples on each side
	edge := alpha * float64(t.size-1) / 2.0

	for i := 0; i < t.size; i++ {
		n := float64(i)
		switch {
		case alpha == 0:
			t.coefficients[i] = 1.0
		case n < edge:
			t.coefficients[i] = 0.5 * (1 + math.Cos(math.Pi*(n/edge-1)))
		case n > float64(t.size-1)-edge:
			t.coefficients[i] = 0.5 * (1 + math.Cos(math.Pi*((n-float64(t.size-1))/edge+1)))
		default:
			t.coefficients[i] = 1.0
		}
	}
}

// Apply applies the window to a signal, returning a new slice. Returns
// nil if the signal length doesn't match the window size.
func (t *Tukey) Apply(signal []float64) []float64 {
	if len(signal) != t.size {
		return nil
	}

	windowed := make([]float64, t.size)
	for i := range signal {
		windowed[i] = signal[i] * t.coefficients[i]
	}

	return windowed
}

// ApplyInPlace applies the window to a signal in-place
func (t *Tukey) ApplyInPlace(signal []float64) error {
	if len(signal) != t.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), t.size)
	}

	for i := range signal {
		signal[i] *= t.coefficients[i]
	}

	return nil
}

// ApplyRows applies the window to every row of a matrix in-place. Each
// row is a channel's time series.
func (t *Tukey) ApplyRows(matrix [][]float64) error {
	for i, row := range matrix {
		if err := t.ApplyInPlace(row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// Coefficients returns a copy of the window coefficients
func (t *Tukey) Coefficients() []float64 {
	coeffs := make([]float64, len(t.coefficients))
	copy(coeffs, t.coefficients)
	return coeffs
}

// Size returns the window size
func (t *Tukey) Size() int {
	return t.size
}

// Alpha returns the Tukey taper fraction
func (t *Tukey) Alpha() float64 {
	return t.alpha
}
