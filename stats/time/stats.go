// Package time summarizes a sampled signal in the time domain.
//
// EEG-like signals ride on a large baseline, so crossings are counted around
// the mean rather than around zero.
package time

import (
	"math"

	"github.com/cwbudde/eegscope/dsp/signal"
)

// Stats holds time-domain statistics of a sample sequence.
type Stats struct {
	Count int
	// Duration is the time between the first and last sample in seconds.
	Duration   float64
	Mean       float64
	RMS        float64
	StdDev     float64 // population
	Min        float64
	MinTime    float64
	Max        float64
	MaxTime    float64
	PeakToPeak float64
	// MeanCrossings counts sign changes of value - Mean.
	MeanCrossings int
	Skewness      float64
	Kurtosis      float64 // excess
}

// moments is a Welford accumulator for the first four central moments.
type moments struct {
	n          int
	mean       float64
	m2, m3, m4 float64
}

func (m *moments) add(x float64) {
	m.n++
	ni := float64(m.n)
	delta := x - m.mean
	deltaN := delta / ni
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * float64(m.n-1)

	// M4 must be updated before M3, and M3 before M2.
	m.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m.m2 - 4*deltaN*m.m3
	m.m3 += term1*deltaN*(float64(m.n-1)-1) - 3*deltaN*m.m2
	m.m2 += term1
	m.mean += deltaN
}

func (m *moments) shape() (variance, skewness, kurtosis float64) {
	if m.n == 0 {
		return 0, 0, 0
	}
	nf := float64(m.n)
	variance = m.m2 / nf
	if variance > 0 {
		skewness = (m.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m.m4/nf)/(variance*variance) - 3
	}
	return variance, skewness, kurtosis
}

// Calculate computes all statistics of samples. An empty input yields the
// zero Stats.
func Calculate(samples []signal.Sample) Stats {
	var acc Accumulator
	for _, s := range samples {
		acc.Add(s)
	}
	st := acc.Result()
	st.MeanCrossings = MeanCrossings(samples)
	return st
}

// MeanCrossings returns how often consecutive values fall on opposite sides
// of the sequence mean.
func MeanCrossings(samples []signal.Sample) int {
	if len(samples) < 2 {
		return 0
	}
	mean := Mean(samples)
	count := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1].Value-mean)*(samples[i].Value-mean) < 0 {
			count++
		}
	}
	return count
}

// Mean returns the average value using Kahan summation.
func Mean(samples []signal.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum, c float64
	for _, s := range samples {
		y := s.Value - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum / float64(len(samples))
}

// RMS returns the root-mean-square of the values.
func RMS(samples []signal.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSq float64
	for _, s := range samples {
		sumSq += s.Value * s.Value
	}
	return math.Sqrt(sumSq / float64(len(samples)))
}

// Accumulator updates statistics one sample at a time, for histories that
// grow without bound. Its results match Calculate except for
// MeanCrossings, which needs the final mean and is always zero here.
type Accumulator struct {
	mom              moments
	sumSq            float64
	first            float64
	last             float64
	min, max         float64
	minTime, maxTime float64
}

// Add folds s into the running statistics.
func (a *Accumulator) Add(s signal.Sample) {
	if a.mom.n == 0 {
		a.first = s.Time
		a.min, a.max = s.Value, s.Value
		a.minTime, a.maxTime = s.Time, s.Time
	} else {
		if s.Value < a.min {
			a.min, a.minTime = s.Value, s.Time
		}
		if s.Value > a.max {
			a.max, a.maxTime = s.Value, s.Time
		}
	}
	a.last = s.Time
	a.sumSq += s.Value * s.Value
	a.mom.add(s.Value)
}

// Count returns the number of samples added since the last Reset.
func (a *Accumulator) Count() int { return a.mom.n }

// Result returns the statistics of everything added so far.
func (a *Accumulator) Result() Stats {
	n := a.mom.n
	if n == 0 {
		return Stats{}
	}
	variance, skew, kurt := a.mom.shape()
	return Stats{
		Count:      n,
		Duration:   a.last - a.first,
		Mean:       a.mom.mean,
		RMS:        math.Sqrt(a.sumSq / float64(n)),
		StdDev:     math.Sqrt(variance),
		Min:        a.min,
		MinTime:    a.minTime,
		Max:        a.max,
		MaxTime:    a.maxTime,
		PeakToPeak: a.max - a.min,
		Skewness:   skew,
		Kurtosis:   kurt,
	}
}

// Reset clears the accumulator.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
