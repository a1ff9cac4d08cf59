package dice

// Sequence is a deterministic Source for tests. Intn consumes from Ints and
// Float64 from Floats, each in order, wrapping around when exhausted.
//
// Invariant: an empty script yields zeros.
type Sequence struct {
	Ints   []int
	Floats []float64

	intIdx   int
	floatIdx int
}

// Intn returns the next scripted int clamped into [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.intIdx%len(s.Ints)]
	s.intIdx++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the next scripted float.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.floatIdx%len(s.Floats)]
	s.floatIdx++
	return v
}
