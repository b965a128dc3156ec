package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fourier transform functionality for one channel (1-D)
// and whole traces (2-D), backed by mjibson/go-dsp
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the FFT of a real signal
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// go-dsp handles all sizes efficiently, including non-power-of-2
	return fft.FFTReal(x)
}

// ComputeInverse computes the inverse FFT
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.IFFT(x)
}

// Compute2D computes the 2-D FFT of a real matrix (rows = channels,
// columns = time samples)
func (f *FFT) Compute2D(x [][]float64) [][]complex128 {
	if len(x) == 0 {
		return [][]complex128{}
	}

	return fft.FFT2Real(x)
}

// ComputeInverse2D computes the inverse 2-D FFT
func (f *FFT) ComputeInverse2D(x [][]complex128) [][]complex128 {
	if len(x) == 0 {
		return [][]complex128{}
	}

	return fft.IFFT2(x)
}

// Shift2D moves the zero-frequency/zero-wavenumber component to the
// center of the matrix, returning a new matrix. Rows are rolled by
// rows/2 and columns by cols/2, matching the fftshift convention the
// zero-centered axes use.
func Shift2D(x [][]complex128) [][]complex128 {
	rows := len(x)
	if rows == 0 {
		return [][]complex128{}
	}
	cols := len(x[0])

	rowOff := (rows + 1) / 2
	colOff := (cols + 1) / 2

	out := make([][]complex128, rows)
	for i := range out {
		out[i] = make([]complex128, cols)
		src := x[(i+rowOff)%rows]
		for j := range out[i] {
			out[i][j] = src[(j+colOff)%cols]
		}
	}
	return out
}

// InverseShift2D undoes Shift2D
func InverseShift2D(x [][]complex128) [][]complex128 {
	rows := len(x)
	if rows == 0 {
		return [][]complex128{}
	}
	cols := len(x[0])

	rowOff := rows / 2
	colOff := cols / 2

	out := make([][]complex128, rows)
	for i := range out {
		out[i] = make([]complex128, cols)
		src := x[(i+rowOff)%rows]
		for j := range out[i] {
			out[i][j] = src[(j+colOff)%cols]
		}
	}
	return out
}
