// Package audio synthesizes the brown-noise focus track and plays it.
package audio

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/dsp/fourier"
)

// GenerateBrownNoise synthesizes a clip of 1/f-shaped noise meant to loop
// behind focus sessions. The clip is built in the frequency domain: complex
// Gaussian white noise per bin, attenuated by 1/k, then inverse-transformed
// and peak-normalized to volume. The DC bin stays zero. Sample count is
// sampleRate*seconds rounded up to an even number.
func GenerateBrownNoise(seconds, sampleRate int, volume float64) []float64 {
	n := sampleRate * seconds
	if n%2 != 0 {
		n++
	}

	coeffs := make([]complex128, n/2+1)
	for k := 1; k < len(coeffs); k++ {
		scale := 1 / float64(k)
		coeffs[k] = complex(rand.NormFloat64()*scale, rand.NormFloat64()*scale)
	}

	fft := fourier.NewFFT(n)
	return NormalizePeak(fft.Sequence(nil, coeffs), volume)
}

// NormalizePeak scales buf so its peak absolute value equals target. An
// all-zero buffer passes through untouched so silence never divides by zero.
func NormalizePeak(buf []float64, target float64) []float64 {
	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	out := make([]float64, len(buf))
	for i, v := range buf {
		if peak > 0 {
			v /= peak
		}
		out[i] = v * target
	}
	return out
}
