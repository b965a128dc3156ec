package fk

import (
	"math"
	"runtime"
	"sync"
)

// DesignRectangular builds the rectangular f-k mask for a trace of nx
// channels by ns samples: each wavenumber row passes only the
// frequencies whose apparent speed |f/k| falls inside the speed band,
// with half-sine ramps across the two transition bands. Rows whose
// wavenumber magnitude is below cfg.KEpsilon are zeroed outright, since
// the speed ratio is numerically unstable there; that rejection is a
// designed degeneracy, not an error.
//
// The mask is built once per (shape, selection, geometry, band)
// combination and reused across every trace segment sharing that
// geometry. All gains lie in [0, 1].
func DesignRectangular(nx, ns int, sel ChannelSelection, dx, fs float64, band SpeedBand, cfg DesignConfig) (Mask, error) {
	if err := band.Validate(); err != nil {
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

	gain := make([][]float64, nx)

	// Rows are independent; fan out over the wavenumber axis
	rows := make(chan int, nx)
	var wg sync.WaitGroup
	for w := 0; w < designWorkers(nx); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				gain[i] = rectangularRow(freq, knum[i], band, cfg.KEpsilon)
			}
		}()
	}
	for i := 0; i < nx; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return finishMask(gain, cfg.Sparse), nil
}

// rectangularRow builds the gain line of one wavenumber row
func rectangularRow(freq []float64, k float64, band SpeedBand, kEpsilon float64) []float64 {
	line := make([]float64, len(freq))

	// Near-zero wavenumber: zero division guard, reject the whole row
	if math.Abs(k) < kEpsilon {
		return line
	}

	for j, f := range freq {
		speed := math.Abs(f / k)
		switch {
		case speed < band.CsMin || speed > band.CsMax:
			line[j] = 0
		case speed <= band.CpMin:
			// Ramping up from cs_min to cp_min
			line[j] = rampGain(speed, band.CsMin, band.CpMin)
		case speed < band.CpMax:
			line[j] = 1
		default:
			// Ramping down from cp_max to cs_max
			line[j] = 1 - rampGain(speed, band.CpMax, band.CsMax)
		}
	}
	return line
}

// rampGain is the half-sine transition from 0 at lo to 1 at hi. A
// zero-width ramp collapses to the passband value.
func rampGain(v, lo, hi float64) float64 {
	if hi == lo {
		return 1
	}
	return math.Sin(0.5 * math.Pi * (v - lo) / (hi - lo))
}

func designWorkers(rows int) int {
	numCPU := runtime.NumCPU()
	if rows < numCPU {
		return max(rows, 1)
	}
	return numCPU
}
