package spectrum

import "math"

// dft evaluates the first count bins of the discrete Fourier transform of x
// by direct summation.
func dft(x []float64, count int) (re, im []float64) {
	n := len(x)
	re = make([]float64, count)
	im = make([]float64, count)
	for k := 0; k < count; k++ {
		var sr, si float64
		for i, v := range x {
			angle := (2 * math.Pi * float64(k) * float64(i)) / float64(n)
			sr += v * math.Cos(angle)
			si -= v * math.Sin(angle)
		}
		re[k] = sr
		im[k] = si
	}
	return re, im
}
