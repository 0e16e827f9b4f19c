/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package filters

import (
	"fmt"
	"math"

	"github.com/szymonkaube/streamsketch-go/common"
)

const maxNumHashes = math.MaxUint16

var maxFilterBits = uint64(math.MaxInt32) * 64

// bloomFilterOptions holds optional parameters for string filter
// construction.
type bloomFilterOptions struct {
	hasher common.ItemHasher[string]
}

// BloomFilterOption is a functional option for configuring a string
// BloomFilter.
type BloomFilterOption func(*bloomFilterOptions)

// WithStringHasher replaces the default murmur3 string hasher.
func WithStringHasher(hasher common.ItemHasher[string]) BloomFilterOption {
	return func(opts *bloomFilterOptions) {
		opts.hasher = hasher
	}
}

// NewBloomFilter builds a filter over baseSet sized for the target
// false positive probability epsilon.
//
// The number of hash functions is k = ceil(-log2(epsilon)) and the bit
// table holds m = ceil(-n*ln(epsilon)/(ln 2)^2) bits, each clamped to
// at least 1. Parameters are validated before any table is allocated:
// epsilon outside [0,1] is an invalid parameter, and an epsilon small
// enough to demand an unrepresentable table (epsilon = 0 included) is
// rejected by the size guard. Either the returned filter is fully
// populated and queryable, or the error is non-nil.
func NewBloomFilter[C comparable](baseSet []C, epsilon float64, hasher common.ItemHasher[C]) (*BloomFilter[C], error) {
	if epsilon < 0.0 || epsilon > 1.0 {
		return nil, fmt.Errorf("epsilon must be between 0 and 1, inclusive: %v", epsilon)
	}

	n := float64(len(baseSet))
	hashesF := math.Max(1.0, math.Ceil(-math.Log2(epsilon)))
	bitsF := math.Max(1.0, math.Ceil(-n*math.Log(epsilon)/(math.Ln2*math.Ln2)))
	if !(hashesF <= maxNumHashes) || !(bitsF <= float64(maxFilterBits)) {
		return nil, fmt.Errorf("epsilon %v requires a filter exceeding the maximum allowed size", epsilon)
	}

	numBits := uint64(bitsF)
	bf := &BloomFilter[C]{
		numBits:   numBits,
		numHashes: int(hashesF),
		bitArray:  make([]uint64, (numBits+63)/64),
		hasher:    hasher,
	}
	for _, item := range baseSet {
		bf.add(item)
	}
	return bf, nil
}

// NewStringBloomFilter builds a string filter with the default murmur3
// hasher unless overridden by WithStringHasher.
func NewStringBloomFilter(baseSet []string, epsilon float64, opts ...BloomFilterOption) (*BloomFilter[string], error) {
	options := &bloomFilterOptions{
		hasher: common.StringMurmur3Hasher{},
	}
	for _, opt := range opts {
		opt(options)
	}
	return NewBloomFilter(baseSet, epsilon, options.hasher)
}

// SuggestNumHashes returns the number of hash functions used for the
// given target false positive probability: k = ceil(-log2(epsilon)),
// at least 1.
func SuggestNumHashes(epsilon float64) int {
	return int(math.Max(1.0, math.Ceil(-math.Log2(epsilon))))
}

// SuggestNumFilterBits returns the bit table size used for n base
// items at the given target false positive probability:
// m = ceil(-n*ln(epsilon)/(ln 2)^2), at least 1.
func SuggestNumFilterBits(numDistinctItems uint64, epsilon float64) uint64 {
	n := float64(numDistinctItems)
	return uint64(math.Max(1.0, math.Ceil(-n*math.Log(epsilon)/(math.Ln2*math.Ln2))))
}
