package rng

import "sync"

// Sequence replays a scripted list of draws. Tests use it to force specific
// outcomes; the replay tooling uses it to re-run a recorded game. Intn values
// are taken modulo n so a script can mix draws for differently-sized ranges.
type Sequence struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
	i, f   int

	// Calls counts every draw, letting tests assert that validation
	// rejections never consume randomness.
	calls int
}

// NewSequence builds a scripted source. Either slice may be nil if the
// consumer only draws the other kind.
func NewSequence(ints []int, floats []float64) *Sequence {
	return &Sequence{ints: ints, floats: floats}
}

func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.i >= len(s.ints) {
		panic("rng: sequence exhausted (ints)")
	}
	v := s.ints[s.i] % n
	s.i++
	return v
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.f >= len(s.floats) {
		panic("rng: sequence exhausted (floats)")
	}
	v := s.floats[s.f]
	s.f++
	return v
}

// Calls reports how many draws have been consumed so far.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
