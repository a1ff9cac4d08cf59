package dice

// IntBetween returns a uniform random int in [min, max] inclusive.
//
// Precondition: min <= max; src must be non-nil.
// Postcondition: result is in [min, max].
func IntBetween(src Source, min, max int) int {
	if min > max {
		panic("dice: IntBetween called with min > max")
	}
	if min == max {
		return min
	}
	return min + src.Intn(max-min+1)
}

// RealBetween returns a uniform random float64 in [min, max).
//
// Precondition: min <= max; src must be non-nil.
// Postcondition: result is in [min, max).
func RealBetween(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Chance reports a success with probability p.
//
// A draw succeeds when it is <= p, so p >= 1 always succeeds and p = 0
// succeeds only on an exact zero draw.
//
// Precondition: src must be non-nil.
func Chance(src Source, p float64) bool {
	return src.Float64() <= p
}
