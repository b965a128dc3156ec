package fk

import (
	"math"
	"sync"
)

// gaussianSmooth blurs a gain matrix in place with a separable
// truncated Gaussian kernel (radius 4 sigma, reflected boundaries).
// sigma <= 0 leaves the matrix untouched.
func gaussianSmooth(m [][]float64, sigma float64) {
	if sigma <= 0 || len(m) == 0 {
		return
	}

	kernel := gaussianKernel(sigma)

	// Horizontal pass, one row per worker job
	var wg sync.WaitGroup
	rows := make(chan int, len(m))
	for w := 0; w < designWorkers(len(m)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				m[i] = correlate1D(m[i], kernel)
			}
		}()
	}
	for i := range m {
		rows <- i
	}
	close(rows)
	wg.Wait()

	// Vertical pass over extracted columns
	nx, ns := len(m), len(m[0])
	cols := make(chan int, ns)
	for w := 0; w < designWorkers(ns); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			column := make([]float64, nx)
			for j := range cols {
				for i := range column {
					column[i] = m[i][j]
				}
				blurred := correlate1D(column, kernel)
				for i := range blurred {
					m[i][j] = blurred[i]
				}
			}
		}()
	}
	for j := 0; j < ns; j++ {
		cols <- j
	}
	close(cols)
	wg.Wait()
}

// gaussianKernel builds a normalized Gaussian of radius 4 sigma
func gaussianKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// correlate1D applies the kernel with reflected boundaries
func correlate1D(line, kernel []float64) []float64 {
	radius := len(kernel) / 2
	out := make([]float64, len(line))
	for i := range line {
		acc := 0.0
		for t, w := range kernel {
			acc += w * line[reflectIndex(i+t-radius, len(line))]
		}
		out[i] = acc
	}
	return out
}

// reflectIndex folds an out-of-range index back into [0, n) using the
// half-sample symmetric reflection (d c b a | a b c d), repeatedly for
// kernels wider than the line
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
