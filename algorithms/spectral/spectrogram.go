package spectral

import (
	"fmt"
	"math"
	"math/cmplx"
	"runtime"
	"sync"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
)

// SpectrogramResult holds a single-channel magnitude spectrogram
type SpectrogramResult struct {
	PowerDB   [][]float64 `json:"power_db"`  // Frequency x Time, dB relative to segment max
	Times     []float64   `json:"times"`     // Frame times (s)
	Freqs     []float64   `json:"freqs"`     // Bin frequencies (Hz)
	FreqBins  int         `json:"freq_bins"` // Number of frequency bins
	Frames    int         `json:"frames"`    // Number of time frames
	NFFT      int         `json:"nfft"`      // Transform length
	HopSize   int         `json:"hop_size"`  // Hop between frames
	SampleFs  float64     `json:"fs"`        // Sampling frequency (Hz)
	OverlapPc float64     `json:"overlap"`   // Overlap fraction
}

// Spectrogram computes the short-time magnitude spectrum of a single
// channel using Hann-windowed frames of length nfft with the given
// overlap fraction. Magnitudes are returned in dB normalized to the
// segment maximum, so the loudest bin sits at 0 dB. Empty bins map to
// -Inf; an all-zero waveform yields NaN throughout.
func Spectrogram(waveform []float64, fs float64, nfft int, overlap float64) (*SpectrogramResult, error) {
	if len(waveform) == 0 {
		return nil, fmt.Errorf("empty waveform")
	}
	if nfft <= 0 {
		return nil, fmt.Errorf("nfft must be positive")
	}
	if overlap < 0 || overlap >= 1 {
		return nil, fmt.Errorf("overlap must be in [0, 1)")
	}
	if len(waveform) < nfft {
		return nil, fmt.Errorf("waveform length (%d) shorter than nfft (%d)", len(waveform), nfft)
	}

	hopSize := int(math.Floor(float64(nfft) * (1 - overlap)))
	if hopSize < 1 {
		hopSize = 1
	}

	numFrames := (len(waveform)-nfft)/hopSize + 1
	freqBins := nfft/2 + 1

	win := window.Hann(nfft)
	f := NewFFT()

	magnitude := make([][]float64, freqBins)
	for i := range magnitude {
		magnitude[i] = make([]float64, numFrames)
	}

	jobs := make(chan int, numFrames)
	var wg sync.WaitGroup

	for w := 0; w < workerCount(numFrames); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			frame := make([]float64, nfft)
			for idx := range jobs {
				start := idx * hopSize
				copy(frame, waveform[start:start+nfft])
				for i := range frame {
					frame[i] *= win[i]
				}

				spec := f.Compute(frame)
				for i := 0; i < freqBins; i++ {
					magnitude[i][idx] = cmplx.Abs(spec[i])
				}
			}
		}()
	}

	for idx := 0; idx < numFrames; idx++ {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	// Normalize to the segment maximum and convert to dB
	peak := 0.0
	for _, row := range magnitude {
		peak = math.Max(peak, floats.Max(row))
	}
	for _, row := range magnitude {
		for j, v := range row {
			row[j] = 20 * math.Log10(v/peak)
		}
	}

	duration := float64(len(waveform)) / fs
	times := linspace(0, duration, numFrames)
	freqs := linspace(0, fs/2, freqBins)

	return &SpectrogramResult{
		PowerDB:   magnitude,
		Times:     times,
		Freqs:     freqs,
		FreqBins:  freqBins,
		Frames:    numFrames,
		NFFT:      nfft,
		HopSize:   hopSize,
		SampleFs:  fs,
		OverlapPc: overlap,
	}, nil
}

// linspace returns n evenly spaced values over [start, stop]
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// workerCount sizes the frame worker pool to the workload
func workerCount(numJobs int) int {
	numCPU := runtime.NumCPU()
	if numJobs < numCPU {
		return max(numJobs, 1)
	}
	return numCPU
}
