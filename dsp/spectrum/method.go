package spectrum

import (
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/eegscope/dsp/core"
)

// Method selects how bins are evaluated.
type Method int

const (
	// MethodDFT sums every bin directly. It is the reference backend.
	MethodDFT Method = iota
	// MethodGoertzel evaluates each bin with a Goertzel recurrence.
	MethodGoertzel
	// MethodAlgoFFT uses an algo-fft plan. Windows whose length is not a
	// power of two fall back to MethodDFT.
	MethodAlgoFFT
	// MethodGonum uses gonum's real FFT.
	MethodGonum
	// MethodGoDSP uses go-dsp's mixed-radix FFT.
	MethodGoDSP
)

var methodNames = map[Method]string{
	MethodDFT:      "dft",
	MethodGoertzel: "goertzel",
	MethodAlgoFFT:  "algofft",
	MethodGonum:    "gonum",
	MethodGoDSP:    "godsp",
}

// Methods lists all backends in declaration order.
func Methods() []Method {
	return []Method{MethodDFT, MethodGoertzel, MethodAlgoFFT, MethodGonum, MethodGoDSP}
}

// String returns the short backend name.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a backend by its short name.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unsupported spectrum method: %q", name)
}

// transform returns the real and imaginary parts of the first count bins of
// the DFT of x.
func (m Method) transform(x []float64, count int) (re, im []float64, err error) {
	switch m {
	case MethodDFT:
		re, im = dft(x, count)
		return re, im, nil
	case MethodGoertzel:
		return goertzelBins(x, count)
	case MethodAlgoFFT:
		if !core.IsPowerOfTwo(len(x)) {
			re, im = dft(x, count)
			return re, im, nil
		}
		return algoFFTBins(x, count)
	case MethodGonum:
		coeffs := fourier.NewFFT(len(x)).Coefficients(nil, x)
		re, im = partsOf(coeffs, count)
		return re, im, nil
	case MethodGoDSP:
		re, im = partsOf(dspfft.FFTReal(x), count)
		return re, im, nil
	default:
		return nil, nil, fmt.Errorf("unsupported spectrum method: %v", m)
	}
}

func algoFFTBins(x []float64, count int) (re, im []float64, err error) {
	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum init fft plan: %w", err)
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, len(x))
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("spectrum forward fft: %w", err)
	}

	re, im = partsOf(out, count)
	return re, im, nil
}
