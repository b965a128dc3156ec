package filtering

// Trace is the strain-rate matrix convention used throughout the
// library: rows are spatial channels ordered by position along the
// cable, columns are time samples at a uniform 1/fs interval. The core
// never resizes a trace.
type Trace = [][]float64

// AcquisitionMetadata is the immutable acquisition record produced by
// the ingestion layer. The filtering core reads only Fs and Dx (plus
// the trace shape); refractive index, gauge length and scale factor
// belong to ingestion and are carried through untouched.
type AcquisitionMetadata struct {
	Fs              float64 `json:"fs"`           // Sampling frequency (Hz)
	Dx              float64 `json:"dx"`           // Channel spacing (m)
	Nx              int     `json:"nx"`           // Channel count
	Ns              int     `json:"ns"`           // Sample count
	RefractiveIndex float64 `json:"n"`            // Fiber refractive index
	GaugeLength     float64 `json:"gauge_length"` // Gauge length (m)
	ScaleFactor     float64 `json:"scale_factor"` // Raw-to-strain conversion
}

// NewTrace allocates a zeroed channels-by-samples matrix
func NewTrace(nx, ns int) Trace {
	t := make(Trace, nx)
	for i := range t {
		t[i] = make([]float64, ns)
	}
	return t
}

// CloneTrace deep-copies a trace
func CloneTrace(t Trace) Trace {
	out := make(Trace, len(t))
	for i, row := range t {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}
