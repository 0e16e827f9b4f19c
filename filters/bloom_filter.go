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

// Package filters provides a probabilistic membership structure for
// efficient set membership testing with a controlled false positive
// rate.
//
// The Bloom filter here is built once from an in-memory base set sized
// for a target false positive probability epsilon, and is read-only
// afterwards. False positives are possible; false negatives are not.
// Bit indexes are derived from the shared double-hashing index family,
// so a base hash whose low 16 bits are zero collapses all k probes to
// one position and degrades accuracy for that item.
package filters

import (
	"github.com/szymonkaube/streamsketch-go/common"
	"github.com/szymonkaube/streamsketch-go/internal"
)

// BloomFilter answers membership queries against the base set it was
// built from, with no false negatives. The bit table is fixed at
// construction; queries are pure reads.
type BloomFilter[C comparable] struct {
	numBits   uint64
	numHashes int
	bitArray  []uint64
	hasher    common.ItemHasher[C]
}

// Contains reports whether the item is judged a member of the base
// set. A true result may be a false positive at roughly the configured
// epsilon rate; a false result is always correct.
func (bf *BloomFilter[C]) Contains(item C) bool {
	hash := bf.hasher.Hash(item)
	for j := 0; j < bf.numHashes; j++ {
		index := uint64(internal.HashFamilyIndex(hash, j)) % bf.numBits
		if !getBit(bf.bitArray, index) {
			return false
		}
	}
	return true
}

// Query returns the subset of querySet judged present, in the input
// order. Only set equality of the result is guaranteed.
func (bf *BloomFilter[C]) Query(querySet []C) []C {
	present := make([]C, 0, len(querySet))
	for _, item := range querySet {
		if bf.Contains(item) {
			present = append(present, item)
		}
	}
	return present
}

// Capacity returns the number of addressable bits in the filter.
func (bf *BloomFilter[C]) Capacity() uint64 {
	return bf.numBits
}

// NumHashes returns the number of hash functions used per item.
func (bf *BloomFilter[C]) NumHashes() int {
	return bf.numHashes
}

// BitsUsed returns the number of bits set to 1.
func (bf *BloomFilter[C]) BitsUsed() uint64 {
	return countBitsSet(bf.bitArray)
}

// IsEmpty returns true if no bits are set, i.e. the base set was empty.
func (bf *BloomFilter[C]) IsEmpty() bool {
	return bf.BitsUsed() == 0
}

func (bf *BloomFilter[C]) add(item C) {
	hash := bf.hasher.Hash(item)
	for j := 0; j < bf.numHashes; j++ {
		index := uint64(internal.HashFamilyIndex(hash, j)) % bf.numBits
		setBit(bf.bitArray, index)
	}
}
