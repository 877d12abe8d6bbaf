package tui

import "github.com/charmbracelet/harmonica"

// springField eases a row of bar levels toward new targets.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(fps int, frequency, damping float64) springField {
	return springField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *springField) resize(n int) {
	if len(s.pos) == n {
		return
	}
	s.pos = make([]float64, n)
	s.vel = make([]float64, n)
}

func (s *springField) reset() {
	for i := range s.pos {
		s.pos[i] = 0
		s.vel[i] = 0
	}
}

// update steps every bar toward targets and returns the eased levels.
func (s *springField) update(targets []float64) []float64 {
	s.resize(len(targets))
	out := make([]float64, len(targets))
	for i, target := range targets {
		p, v := s.spring.Update(s.pos[i], s.vel[i], target)
		s.pos[i] = p
		s.vel[i] = v
		out[i] = p
	}
	return out
}
