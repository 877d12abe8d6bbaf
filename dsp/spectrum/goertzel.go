package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT bin with a second-order recurrence.
//
// After ProcessBlock has consumed exactly N samples, Magnitude equals |X[k]|
// of an N-point DFT whose bin k sits at the target frequency. The analyzer is
// stateful; call Reset before reusing it on another block.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	omega      float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel creates an analyzer for frequency, which must lie in
// [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}
	if !(frequency >= 0) || frequency > sampleRate/2 {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	g := &Goertzel{frequency: frequency, sampleRate: sampleRate}
	g.omega = 2 * math.Pi * frequency / sampleRate
	g.coeff = 2 * math.Cos(g.omega)
	return g, nil
}

// Frequency returns the target frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// Reset clears the recurrence state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessBlock feeds samples into the recurrence.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

// Parts returns a complex value with the bin's magnitude. Its phase is offset
// from the DFT phase by the block length and must not be used directly.
func (g *Goertzel) Parts() (re, im float64) {
	return g.s0 - g.s1*math.Cos(g.omega), g.s1 * math.Sin(g.omega)
}

// Power returns |X[k]|^2.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X[k]|.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// goertzelBins runs one recurrence per bin. Bin frequencies are expressed as
// k cycles per block so no sample rate is needed.
func goertzelBins(x []float64, count int) (re, im []float64, err error) {
	n := float64(len(x))
	re = make([]float64, count)
	im = make([]float64, count)
	for k := 0; k < count; k++ {
		g, err := NewGoertzel(float64(k), n)
		if err != nil {
			return nil, nil, err
		}
		g.ProcessBlock(x)
		re[k], im[k] = g.Parts()
	}
	return re, im, nil
}
