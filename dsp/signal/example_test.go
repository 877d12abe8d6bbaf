package signal_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/eegscope/dsp/signal"
)

func ExampleGenerator_SampleAt() {
	g := signal.NewGenerator(nil, signal.WithNoise(func() float64 { return 0.5 }))
	s := g.SampleAt(0.025, 1)

	fmt.Printf("t=%.3f v=%.2f\n", s.Time, s.Value)

	// Output:
	// t=0.025 v=296.18
}

func ExampleReplay() {
	r := signal.NewReplay([]signal.Sample{{Time: 0, Value: 100}, {Time: 0.01, Value: 102}})
	for {
		s, err := r.Next(0.5)
		if errors.Is(err, signal.ErrEndOfStream) {
			fmt.Println("end of stream")
			break
		}
		fmt.Printf("%.2f %.1f\n", s.Time, s.Value)
	}

	// Output:
	// 0.00 50.0
	// 0.01 51.0
	// end of stream
}
