package filters

import "fmt"

// Filter runs the cascade forward over a signal once (zero initial
// state). Most callers want FiltFilt instead; a single pass carries the
// cascade's full phase distortion.
func (f *SOSFilter) Filter(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	state := make([][2]float64, len(f.sections))
	f.run(out, state)
	return out
}

// FiltFilt applies the cascade forward and backward for zero net phase
// shift. The signal is extended on both ends with odd reflections and
// each pass starts from the steady-state response to the edge value,
// suppressing startup transients. The signal must be longer than the
// pad length 3*(2*sections+1); shorter input is rejected.
func (f *SOSFilter) FiltFilt(x []float64) ([]float64, error) {
	padlen := 3 * (2*len(f.sections) + 1)
	if len(x) <= padlen {
		return nil, fmt.Errorf("filtfilt: signal length %d must exceed pad length %d", len(x), padlen)
	}

	n := len(x)
	ext := make([]float64, n+2*padlen)
	for i := 0; i < padlen; i++ {
		ext[i] = 2*x[0] - x[padlen-i]
		ext[padlen+n+i] = 2*x[n-1] - x[n-2-i]
	}
	copy(ext[padlen:], x)

	// Forward
	f.run(ext, f.steadyState(ext[0]))

	// Backward
	reverse(ext)
	f.run(ext, f.steadyState(ext[0]))
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[padlen:padlen+n])
	return out, nil
}

// FiltFiltTrace applies FiltFilt to every channel of a trace along the
// time axis, returning a new matrix
func (f *SOSFilter) FiltFiltTrace(trace [][]float64) ([][]float64, error) {
	out := make([][]float64, len(trace))
	for i, channel := range trace {
		filtered, err := f.FiltFilt(channel)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out[i] = filtered
	}
	return out, nil
}

// run filters the buffer in place through the cascade, Direct Form II
// Transposed per section
func (f *SOSFilter) run(buf []float64, state [][2]float64) {
	for si := range f.sections {
		s := &f.sections[si]
		z1, z2 := state[si][0], state[si][1]
		for i, x := range buf {
			y := s.B0*x + z1
			z1 = s.B1*x - s.A1*y + z2
			z2 = s.B2*x - s.A2*y
			buf[i] = y
		}
		state[si][0], state[si][1] = z1, z2
	}
}

// steadyState returns per-section DF2T state equal to the cascade's
// steady-state response to a constant input x0
func (f *SOSFilter) steadyState(x0 float64) [][2]float64 {
	state := make([][2]float64, len(f.sections))
	level := x0
	for i, s := range f.sections {
		den := 1 + s.A1 + s.A2
		var g float64
		if den != 0 {
			g = (s.B0 + s.B1 + s.B2) / den
		}
		state[i][0] = (s.B1 + s.B2 - (s.A1+s.A2)*g) * level
		state[i][1] = (s.B2 - s.A2*g) * level
		level *= g
	}
	return state
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
