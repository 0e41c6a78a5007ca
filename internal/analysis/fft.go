package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT returns the discrete Fourier transform of a real signal of any length.
func FFT(data []float64) []complex128 {
	if len(data) == 0 {
		return nil
	}
	return fft.FFTReal(data)
}

// PowerSpectrum returns the magnitudes of the first half of the spectrum.
func PowerSpectrum(data []float64) []float64 {
	bins := FFT(data)
	ps := make([]float64, len(bins)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}

	return ps
}
