package fracdex

import "math/rand"

// Jitter interface for testability (use math/rand.Rand).
type Jitter interface {
	// Uniform integer in [min, max], inclusive. Callers always pass a range
	// containing 0.
	IntnRange(min, max int) int
}

// NoJitter implements Jitter but returns 0 offset.
type NoJitter struct{}

func (NoJitter) IntnRange(min, max int) int {
	switch {
	case min > 0:
		return min
	case max < 0:
		return max
	}
	return 0
}

// RandJitter is a helper backed by *rand.Rand. It is safe for concurrent
// use only if R is.
type RandJitter struct{ R *rand.Rand }

func (j RandJitter) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + j.R.Intn(max-min+1)
}

// KeyBetweenJitter picks a key strictly between a and b, with randomization.
// This provides collision resistance when multiple writers generate keys
// between the same (a,b) at the same time.
//
// jitterRange bounds how many digit steps the chosen digit may move away
// from the one KeyBetween would pick. With jitterRange <= 0 the result is
// the same as KeyBetween.
func KeyBetweenJitter(a, b string, j Jitter, jitterRange int) (string, error) {
	return keyBetween(a, b, j, jitterRange)
}

// NKeysBetweenJitter generates n keys between a and b with randomization.
// This provides collision resistance when multiple writers generate keys
// between the same (a,b) at the same time.
func NKeysBetweenJitter(a, b string, n uint, j Jitter, jitterRange int) ([]string, error) {
	return nKeysBetween(a, b, n, j, jitterRange)
}
