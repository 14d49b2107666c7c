package dice

import "sync"

// Scripted is a Source that replays fixed sequences. Once a sequence is
// exhausted the last value repeats; an empty sequence yields zero values.
//
// Intended for tests that need to force boundary outcomes such as a critical
// hit or a guaranteed drop.
type Scripted struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewScripted returns a Scripted source replaying floats for Float64.
func NewScripted(floats ...float64) *Scripted {
	return &Scripted{floats: floats}
}

// WithInts sets the sequence replayed by Intn. Values are reduced modulo n.
func (s *Scripted) WithInts(ints ...int) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = ints
	s.ii = 0
	return s
}

// Float64 returns the next scripted float.
func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	if s.fi >= len(s.floats) {
		return s.floats[len(s.floats)-1]
	}
	v := s.floats[s.fi]
	s.fi++
	return v
}

// Intn returns the next scripted int reduced into [0, n).
func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	var v int
	if s.ii >= len(s.ints) {
		v = s.ints[len(s.ints)-1]
	} else {
		v = s.ints[s.ii]
		s.ii++
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
