package signal

// ReplaySample returns seq[cursor] with its value scaled by gain and the
// advanced cursor. Past the end it returns ErrEndOfStream and cursor unchanged.
func ReplaySample(seq []Sample, cursor int, gain float64) (Sample, int, error) {
	if cursor < 0 || cursor >= len(seq) {
		return Sample{}, cursor, ErrEndOfStream
	}
	s := seq[cursor]
	s.Value *= gain
	return s, cursor + 1, nil
}

// Replay plays back a fixed sequence one sample per call.
type Replay struct {
	seq    []Sample
	cursor int
}

// NewReplay copies seq and positions the cursor at its start.
func NewReplay(seq []Sample) *Replay {
	return &Replay{seq: append([]Sample(nil), seq...)}
}

// Next returns the next sample scaled by gain, or ErrEndOfStream once the
// sequence is exhausted.
func (r *Replay) Next(gain float64) (Sample, error) {
	s, next, err := ReplaySample(r.seq, r.cursor, gain)
	if err != nil {
		return Sample{}, err
	}
	r.cursor = next
	return s, nil
}

// Cursor returns the index of the next sample to be played.
func (r *Replay) Cursor() int { return r.cursor }

// Len returns the sequence length.
func (r *Replay) Len() int { return len(r.seq) }

// Remaining returns how many samples are left.
func (r *Replay) Remaining() int { return len(r.seq) - r.cursor }

// Done reports whether the sequence is exhausted.
func (r *Replay) Done() bool { return r.cursor >= len(r.seq) }

// Rewind moves the cursor back to the first sample.
func (r *Replay) Rewind() { r.cursor = 0 }

// Sequence returns a copy of the loaded samples.
func (r *Replay) Sequence() []Sample {
	return append([]Sample(nil), r.seq...)
}
