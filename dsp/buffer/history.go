package buffer

import "github.com/cwbudde/eegscope/dsp/signal"

// History is an ordered, append-only sample sequence truncated from the front
// to at most Capacity samples. A History is not safe for concurrent use.
type History struct {
	samples  []signal.Sample
	capacity int
}

// NewHistory returns an empty history. capacity <= 0 means unbounded.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{capacity: capacity}
}

// Capacity returns the retention limit, or 0 if unbounded.
func (h *History) Capacity() int {
	return h.capacity
}

// Len returns the number of retained samples.
func (h *History) Len() int {
	return len(h.samples)
}

// Append adds s as the newest sample, dropping the oldest one if the history
// is full.
func (h *History) Append(s signal.Sample) {
	h.samples = append(h.samples, s)
	if h.capacity > 0 && len(h.samples) > h.capacity {
		// Reslicing keeps the append amortized; the next growth copies only
		// the retained tail.
		h.samples = h.samples[len(h.samples)-h.capacity:]
	}
}

// Samples returns a copy of all retained samples, oldest first.
func (h *History) Samples() []signal.Sample {
	return append([]signal.Sample(nil), h.samples...)
}

// Last returns a copy of the newest n samples, oldest first. Fewer are
// returned if the history is shorter.
func (h *History) Last(n int) []signal.Sample {
	if n <= 0 {
		return []signal.Sample{}
	}
	n = min(n, len(h.samples))
	return append([]signal.Sample(nil), h.samples[len(h.samples)-n:]...)
}

// Newest returns the most recent sample. ok is false for an empty history.
func (h *History) Newest() (s signal.Sample, ok bool) {
	if len(h.samples) == 0 {
		return signal.Sample{}, false
	}
	return h.samples[len(h.samples)-1], true
}

// Reset discards all samples but keeps the capacity.
func (h *History) Reset() {
	h.samples = nil
}
