package spectral

import (
	"math"
	"testing"
)

func TestSpectrogramPureTone(t *testing.T) {
	const (
		fs      = 100.0
		n       = 1000
		nfft    = 64
		overlap = 0.5
	)
	waveform := make([]float64, n)
	for i := range waveform {
		waveform[i] = math.Sin(2 * math.Pi * 10 * float64(i) / fs)
	}

	result, err := Spectrogram(waveform, fs, nfft, overlap)
	if err != nil {
		t.Fatalf("Spectrogram: %v", err)
	}

	wantFrames := (n-nfft)/32 + 1
	if result.Frames != wantFrames || result.HopSize != 32 {
		t.Fatalf("frames/hop = %d/%d, want %d/32", result.Frames, result.HopSize, wantFrames)
	}
	if result.FreqBins != nfft/2+1 {
		t.Fatalf("freq bins %d, want %d", result.FreqBins, nfft/2+1)
	}
	if len(result.PowerDB) != result.FreqBins || len(result.PowerDB[0]) != result.Frames {
		t.Fatalf("power matrix (%d, %d), want (%d, %d)",
			len(result.PowerDB), len(result.PowerDB[0]), result.FreqBins, result.Frames)
	}
	if len(result.Times) != result.Frames || len(result.Freqs) != result.FreqBins {
		t.Fatal("axis lengths do not match the matrix")
	}
	if result.Freqs[0] != 0 || result.Freqs[result.FreqBins-1] != fs/2 {
		t.Fatalf("frequency axis spans [%g, %g], want [0, %g]",
			result.Freqs[0], result.Freqs[result.FreqBins-1], fs/2)
	}

	// The loudest bin is pinned to 0 dB and sits at the tone frequency
	peak := math.Inf(-1)
	peakBin := -1
	mid := result.Frames / 2
	for i := 0; i < result.FreqBins; i++ {
		if v := result.PowerDB[i][mid]; v > peak {
			peak, peakBin = v, i
		}
	}
	if peak > 0 {
		t.Fatalf("normalized peak %g dB, want <= 0", peak)
	}
	binFreq := result.Freqs[peakBin]
	if math.Abs(binFreq-10) > fs/float64(nfft) {
		t.Fatalf("peak at %g Hz, want within one bin of 10 Hz", binFreq)
	}

	globalPeak := math.Inf(-1)
	for _, row := range result.PowerDB {
		for _, v := range row {
			globalPeak = math.Max(globalPeak, v)
		}
	}
	if globalPeak != 0 {
		t.Fatalf("global peak %g dB, want exactly 0 after normalization", globalPeak)
	}
}

func TestSpectrogramValidation(t *testing.T) {
	waveform := make([]float64, 128)

	if _, err := Spectrogram(nil, 100, 64, 0.5); err == nil {
		t.Error("expected error for empty waveform")
	}
	if _, err := Spectrogram(waveform, 100, 0, 0.5); err == nil {
		t.Error("expected error for non-positive nfft")
	}
	if _, err := Spectrogram(waveform, 100, 64, 1); err == nil {
		t.Error("expected error for overlap >= 1")
	}
	if _, err := Spectrogram(waveform, 100, 64, -0.1); err == nil {
		t.Error("expected error for negative overlap")
	}
	if _, err := Spectrogram(waveform, 100, 256, 0.5); err == nil {
		t.Error("expected error for waveform shorter than nfft")
	}
}

func TestSpectrogramSingleFrame(t *testing.T) {
	waveform := make([]float64, 64)
	for i := range waveform {
		waveform[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}

	result, err := Spectrogram(waveform, 100, 64, 0)
	if err != nil {
		t.Fatalf("Spectrogram: %v", err)
	}
	if result.Frames != 1 {
		t.Fatalf("frames %d, want 1", result.Frames)
	}
}
