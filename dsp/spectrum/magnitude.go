package spectrum

import "github.com/cwbudde/algo-vecmath"

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// partsOf splits the first count complex bins into real and imaginary slices.
func partsOf(bins []complex128, count int) (re, im []float64) {
	re = make([]float64, count)
	im = make([]float64, count)
	for k := 0; k < count && k < len(bins); k++ {
		re[k] = real(bins[k])
		im[k] = imag(bins[k])
	}
	return re, im
}
