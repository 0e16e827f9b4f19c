package count

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, int64(-5), Min(int64(3), int64(-5)))
	assert.Equal(t, 0.5, Min(0.5, 0.5))
}

func TestSuggestLgNumBuckets(t *testing.T) {
	_, err := SuggestLgNumBuckets(0)
	assert.Error(t, err)
	_, err = SuggestLgNumBuckets(-0.1)
	assert.Error(t, err)

	// e/0.1 = 27.18 buckets, rounded up to 2^5
	lg, err := SuggestLgNumBuckets(0.1)
	assert.NoError(t, err)
	assert.Equal(t, 5, lg)

	// very loose error still yields a valid exponent
	lg, err = SuggestLgNumBuckets(10.0)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, lg, 1)
}

func TestSuggestNumHashes(t *testing.T) {
	_, err := SuggestNumHashes(-0.1)
	assert.Error(t, err)
	_, err = SuggestNumHashes(1.1)
	assert.Error(t, err)

	numHashes, err := SuggestNumHashes(0.99)
	assert.NoError(t, err)
	assert.Equal(t, 5, numHashes)

	numHashes, err = SuggestNumHashes(0)
	assert.NoError(t, err)
	assert.Equal(t, 1, numHashes)

	numHashes, err = SuggestNumHashes(1.0)
	assert.NoError(t, err)
	assert.Equal(t, math.MaxInt8, numHashes)
}