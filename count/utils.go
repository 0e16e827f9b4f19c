package count

import (
	"errors"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// SuggestLgNumBuckets returns the smallest power-of-two bucket
// exponent whose expected relative error does not exceed the target.
func SuggestLgNumBuckets(relativeError float64) (int, error) {
	if relativeError <= 0 {
		return 0, errors.New("relative error must be greater than 0.0")
	}
	numBuckets := math.Ceil(math.E / relativeError)
	lg := bits.Len64(uint64(numBuckets) - 1) // round up to a power of two
	if lg < 1 {
		lg = 1
	}
	return lg, nil
}

// SuggestNumHashes returns the number of rows needed for the estimate
// to hold with the given confidence.
func SuggestNumHashes(confidence float64) (int, error) {
	if confidence < 0 || confidence > 1.0 {
		return 0, errors.New("confidence must be between 0 and 1.0 (inclusive)")
	}
	numHashesF := math.Ceil(math.Log(1.0 / (1.0 - confidence)))
	if !(numHashesF < math.MaxInt8) { // confidence of exactly 1.0 drives this to +Inf
		return math.MaxInt8, nil
	}
	if numHashesF < 1 {
		return 1, nil
	}
	return int(numHashesF), nil
}
