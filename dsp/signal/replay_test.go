package signal

import (
	"errors"
	"testing"
)

func TestReplaySampleSequence(t *testing.T) {
	seq := []Sample{{0, 100}, {0.01, 101}, {0.02, 102}}
	gain := 2.0
	cursor := 0
	for i := range seq {
		s, next, err := ReplaySample(seq, cursor, gain)
		if err != nil {
			t.Fatalf("call %d error = %v", i, err)
		}
		if next != cursor+1 {
			t.Fatalf("cursor = %d, want %d", next, cursor+1)
		}
		if s.Time != seq[i].Time || s.Value != seq[i].Value*gain {
			t.Fatalf("sample %d = %v, want {%v %v}", i, s, seq[i].Time, seq[i].Value*gain)
		}
		cursor = next
	}

	_, next, err := ReplaySample(seq, cursor, gain)
	if !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("call %d error = %v, want ErrEndOfStream", len(seq)+1, err)
	}
	if next != cursor {
		t.Fatalf("cursor moved on end of stream: %d", next)
	}
}

func TestReplaySampleNegativeCursor(t *testing.T) {
	if _, _, err := ReplaySample([]Sample{{0, 1}}, -1, 1); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("error = %v, want ErrEndOfStream", err)
	}
}

func TestReplaySampleDoesNotMutateInput(t *testing.T) {
	seq := []Sample{{0, 3}}
	if _, _, err := ReplaySample(seq, 0, 10); err != nil {
		t.Fatal(err)
	}
	if seq[0].Value != 3 {
		t.Fatalf("input mutated: %v", seq[0])
	}
}

func TestReplayState(t *testing.T) {
	src := []Sample{{0, 1}, {0.01, 2}}
	r := NewReplay(src)
	src[0].Value = 99

	if r.Len() != 2 || r.Remaining() != 2 || r.Done() {
		t.Fatalf("unexpected initial state: len=%d remaining=%d done=%v", r.Len(), r.Remaining(), r.Done())
	}
	s, err := r.Next(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if s.Value != 0.5 {
		t.Fatalf("value = %v, want 0.5 (sequence must be copied)", s.Value)
	}
	if _, err := r.Next(1); err != nil {
		t.Fatal(err)
	}
	if !r.Done() || r.Cursor() != 2 {
		t.Fatalf("expected exhausted replay, cursor=%d", r.Cursor())
	}
	if _, err := r.Next(1); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("error = %v, want ErrEndOfStream", err)
	}
	r.Rewind()
	if r.Cursor() != 0 || r.Remaining() != 2 {
		t.Fatalf("rewind failed: cursor=%d", r.Cursor())
	}
}
