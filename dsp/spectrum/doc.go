// Package spectrum estimates the magnitude spectrum of the most recent window
// of signal samples.
//
// The reference estimator is a direct discrete Fourier transform: for each bin
// k below N/2 the real and imaginary sums are accumulated over all N samples,
// which costs O(N^2). N is capped at 128 by default, so the cost stays small
// and bin k is always labelled k*sampleRate/N regardless of whether N is a
// power of two.
//
// Alternative backends (Goertzel recurrence, algo-fft, gonum and go-dsp) can
// be selected with [WithMethod]. They produce the same bins, the same labels
// and the same cutoff filtering; only rounding differs.
//
// Magnitudes are normalized by N and are not windowed.
package spectrum
