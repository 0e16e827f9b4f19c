// Package count implements the Count-Min sketch, a probabilistic
// frequency table whose estimates never fall below the true occurrence
// count. Overcounting comes only from hash collisions, so the estimate
// tightens as the bucket count grows relative to the number of
// distinct keys.
package count

import (
	"errors"
	"fmt"
	"math"

	"github.com/szymonkaube/streamsketch-go/common"
	"github.com/szymonkaube/streamsketch-go/internal"
)

// CountMinSketch is built once from a multiset of items and is
// read-only afterwards. The grid has numHashes rows of numBuckets
// counters, stored as a single flat slice; each occurrence of an item
// increments one counter per row, and a query reads the minimum across
// rows.
type CountMinSketch[C comparable] struct {
	numBuckets   int32
	numHashes    int
	sketchSlice  []int64
	totalWeights int64
	hasher       common.ItemHasher[C]
}

// NewCountMinSketch builds a sketch over items with 2^lgNumBuckets
// buckets per row and numHashes rows.
//
// items must be non-empty; duplicates are meaningful, each occurrence
// counts once. Parameters are validated before the grid is allocated,
// so construction either returns a fully populated sketch or an error.
func NewCountMinSketch[C comparable](items []C, lgNumBuckets int, numHashes int, hasher common.ItemHasher[C]) (*CountMinSketch[C], error) {
	if len(items) == 0 {
		return nil, errors.New("items must not be empty")
	}
	if lgNumBuckets < 1 {
		return nil, fmt.Errorf("lgNumBuckets must be at least 1: %d", lgNumBuckets)
	}
	if numHashes < 1 {
		return nil, fmt.Errorf("numHashes must be at least 1: %d", numHashes)
	}
	// Comparing against the shifted-down cap avoids shifting numHashes,
	// which could wrap for huge values and slip past the guard.
	if lgNumBuckets > 30 || int64(numHashes) >= (int64(1)<<30)>>lgNumBuckets {
		return nil, errors.New("these parameters generate a sketch that exceeds 2^30 cells")
	}

	numBuckets := int32(1) << lgNumBuckets
	c := &CountMinSketch[C]{
		numBuckets:  numBuckets,
		numHashes:   numHashes,
		sketchSlice: make([]int64, int(numBuckets)*numHashes),
		hasher:      hasher,
	}
	for _, item := range items {
		c.update(item)
	}
	return c, nil
}

// NewStringCountMinSketch builds a string sketch using the default
// murmur3 hasher.
func NewStringCountMinSketch(items []string, lgNumBuckets int, numHashes int) (*CountMinSketch[string], error) {
	return NewCountMinSketch(items, lgNumBuckets, numHashes, common.StringMurmur3Hasher{})
}

func (c *CountMinSketch[C]) update(item C) {
	c.totalWeights++
	hash := c.hasher.Hash(item)
	for r := 0; r < c.numHashes; r++ {
		column := internal.HashFamilyIndex(hash, r) % uint32(c.numBuckets)
		c.sketchSlice[r*int(c.numBuckets)+int(column)]++
	}
}

// GetEstimate returns the estimated occurrence count of item: the
// minimum counter across rows. The estimate is always at least the
// true count.
func (c *CountMinSketch[C]) GetEstimate(item C) int64 {
	hash := c.hasher.Hash(item)
	estimate := int64(math.MaxInt64)
	for r := 0; r < c.numHashes; r++ {
		column := internal.HashFamilyIndex(hash, r) % uint32(c.numBuckets)
		estimate = Min(estimate, c.sketchSlice[r*int(c.numBuckets)+int(column)])
	}
	return estimate
}

// Query estimates each distinct element once, regardless of
// multiplicity in elements, and returns the estimates keyed by
// element.
func (c *CountMinSketch[C]) Query(elements []C) map[C]int64 {
	estimates := make(map[C]int64, len(elements))
	for _, item := range elements {
		if _, seen := estimates[item]; seen {
			continue
		}
		estimates[item] = c.GetEstimate(item)
	}
	return estimates
}

// GetNumBuckets returns the number of counters per row.
func (c *CountMinSketch[C]) GetNumBuckets() int32 {
	return c.numBuckets
}

// GetNumHashes returns the number of rows.
func (c *CountMinSketch[C]) GetNumHashes() int {
	return c.numHashes
}

// GetTotalWeight returns the number of occurrences the sketch was
// built from.
func (c *CountMinSketch[C]) GetTotalWeight() int64 {
	return c.totalWeights
}

// GetRelativeError returns the expected overcount bound as a fraction
// of the total weight: e / numBuckets.
func (c *CountMinSketch[C]) GetRelativeError() float64 {
	return math.E / float64(c.numBuckets)
}
