package fk

import "fmt"

// Mask is a 2-D gain matrix over the center-shifted
// (wavenumber, frequency) grid. Masks are immutable after construction
// and safe to share across concurrent Apply calls.
type Mask interface {
	// Shape returns (channels, samples)
	Shape() (nx, ns int)
	// MultiplySpectrum applies the mask elementwise to a center-shifted
	// spectrum, returning a new dense spectrum
	MultiplySpectrum(spec [][]complex128) ([][]complex128, error)
}

// Dense stores every gain explicitly
type Dense struct {
	gain [][]float64
}

// NewDense wraps a gain matrix as a dense mask. Rows must share one
// length.
func NewDense(gain [][]float64) (*Dense, error) {
	if len(gain) == 0 || len(gain[0]) == 0 {
		return nil, fmt.Errorf("dense mask: empty gain matrix")
	}
	ns := len(gain[0])
	for i, row := range gain {
		if len(row) != ns {
			return nil, fmt.Errorf("dense mask: row %d has %d columns, want %d", i, len(row), ns)
		}
	}
	return &Dense{gain: gain}, nil
}

// Shape returns (channels, samples)
func (m *Dense) Shape() (int, int) {
	return len(m.gain), len(m.gain[0])
}

// At returns the gain at wavenumber row i, frequency column j
func (m *Dense) At(i, j int) float64 {
	return m.gain[i][j]
}

// MultiplySpectrum applies the mask elementwise
func (m *Dense) MultiplySpectrum(spec [][]complex128) ([][]complex128, error) {
	nx, ns := m.Shape()
	if err := checkSpectrumShape(spec, nx, ns); err != nil {
		return nil, err
	}

	out := make([][]complex128, nx)
	for i := range out {
		out[i] = make([]complex128, ns)
		for j := range out[i] {
			out[i][j] = spec[i][j] * complex(m.gain[i][j], 0)
		}
	}
	return out, nil
}

// ToSparse converts the mask to its coordinate representation
func (m *Dense) ToSparse() *Sparse {
	nx, ns := m.Shape()
	s := &Sparse{nx: nx, ns: ns}
	for i, row := range m.gain {
		for j, v := range row {
			if v != 0 {
				s.rows = append(s.rows, i)
				s.cols = append(s.cols, j)
				s.vals = append(s.vals, v)
			}
		}
	}
	return s
}

// Sparse stores only nonzero gains as coordinate triplets, bounding
// memory when a mask over a large channel count is mostly zero
type Sparse struct {
	nx, ns int
	rows   []int
	cols   []int
	vals   []float64
}

// Shape returns (channels, samples)
func (m *Sparse) Shape() (int, int) {
	return m.nx, m.ns
}

// NNZ returns the number of stored nonzero gains
func (m *Sparse) NNZ() int {
	return len(m.vals)
}

// MultiplySpectrum applies the mask against the stored coordinates and
// materializes a dense spectrum, since the inverse transform that
// follows needs the full grid anyway.
func (m *Sparse) MultiplySpectrum(spec [][]complex128) ([][]complex128, error) {
	if err := checkSpectrumShape(spec, m.nx, m.ns); err != nil {
		return nil, err
	}

	out := make([][]complex128, m.nx)
	for i := range out {
		out[i] = make([]complex128, m.ns)
	}
	for n, v := range m.vals {
		i, j := m.rows[n], m.cols[n]
		out[i][j] = spec[i][j] * complex(v, 0)
	}
	return out, nil
}

// ToDense materializes the mask
func (m *Sparse) ToDense() *Dense {
	gain := make([][]float64, m.nx)
	for i := range gain {
		gain[i] = make([]float64, m.ns)
	}
	for n, v := range m.vals {
		gain[m.rows[n]][m.cols[n]] = v
	}
	return &Dense{gain: gain}
}

func checkSpectrumShape(spec [][]complex128, nx, ns int) error {
	if len(spec) != nx {
		return fmt.Errorf("shape mismatch: spectrum has %d channels, mask has %d", len(spec), nx)
	}
	for i, row := range spec {
		if len(row) != ns {
			return fmt.Errorf("shape mismatch: spectrum row %d has %d samples, mask has %d", i, len(row), ns)
		}
	}
	return nil
}

// finishMask applies the configured storage mode to a freshly built
// gain matrix
func finishMask(gain [][]float64, sparse bool) Mask {
	dense := &Dense{gain: gain}
	if sparse {
		return dense.ToSparse()
	}
	return dense
}
