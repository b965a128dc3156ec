package fk

import "fmt"

// FrequencyAxis returns the zero-centered frequency axis (Hz) for a
// trace of ns time samples at sampling frequency fs. Index 0 holds the
// most negative frequency and values increase strictly; the zero bin
// sits at index ns/2, matching the center-shifted spectra the masks
// are multiplied against.
func FrequencyAxis(ns int, fs float64) ([]float64, error) {
	if ns < 1 {
		return nil, fmt.Errorf("frequency axis: need at least one sample, got %d", ns)
	}
	if fs <= 0 {
		return nil, fmt.Errorf("frequency axis: sampling frequency must be positive, got %g", fs)
	}

	axis := make([]float64, ns)
	for i := range axis {
		axis[i] = float64(i-ns/2) * fs / float64(ns)
	}
	return axis, nil
}

// WavenumberAxis returns the zero-centered wavenumber axis (1/m) for nx
// spatial channels spaced step*dx meters apart. The channel step limits
// the reachable Nyquist wavenumber to 1/(2*step*dx).
func WavenumberAxis(nx int, dx float64, step int) ([]float64, error) {
	if nx < 1 {
		return nil, fmt.Errorf("wavenumber axis: need at least one channel, got %d", nx)
	}
	if dx <= 0 {
		return nil, fmt.Errorf("wavenumber axis: channel spacing must be positive, got %g", dx)
	}
	if step < 1 {
		return nil, fmt.Errorf("wavenumber axis: channel step must be >= 1, got %d", step)
	}

	spacing := float64(step) * dx
	axis := make([]float64, nx)
	for i := range axis {
		axis[i] = float64(i-nx/2) / (float64(nx) * spacing)
	}
	return axis, nil
}
