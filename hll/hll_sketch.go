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

// Package hll implements Flajolet's HyperLogLog algorithm for
// estimating the number of distinct items in a stream.
//
// The sketch keeps 2^lgConfigK registers; each update routes the item's
// 32-bit hash to one register by its top lgConfigK bits and records the
// maximum observed rank (1 + leading zeros) of the remaining hash bits.
// The estimate is the bias-corrected harmonic mean of the register
// values, with linear counting in the small range and a logarithmic
// correction in the large range.
package hll

import (
	"math"
	"math/bits"

	"github.com/szymonkaube/streamsketch-go/common"
)

// HllSketch estimates the cardinality of a stream of items. Registers
// only ever grow, so updates are order-independent and a sketch built
// from the same items and hasher is always identical.
//
// The zero value is not usable; construct with NewHllSketch.
type HllSketch[C comparable] struct {
	lgConfigK int
	alpha     float64
	registers []uint8
	hasher    common.ItemHasher[C]
}

// NewHllSketch creates an empty sketch with 2^lgConfigK registers that
// hashes items through the given hasher.
func NewHllSketch[C comparable](lgConfigK int, hasher common.ItemHasher[C]) (*HllSketch[C], error) {
	if err := checkLgConfigK(lgConfigK); err != nil {
		return nil, err
	}
	return &HllSketch[C]{
		lgConfigK: lgConfigK,
		alpha:     alphaFor(lgConfigK),
		registers: make([]uint8, uint32(1)<<lgConfigK),
		hasher:    hasher,
	}, nil
}

// NewStringHllSketch creates an empty string sketch using the default
// murmur3 hasher.
func NewStringHllSketch(lgConfigK int) (*HllSketch[string], error) {
	return NewHllSketch[string](lgConfigK, common.StringMurmur3Hasher{})
}

// Update presents the given item as a potential unique item.
func (s *HllSketch[C]) Update(item C) {
	hash := s.hasher.Hash(item)
	bucket := hash >> (32 - s.lgConfigK)
	remainder := hash << s.lgConfigK

	// LeadingZeros32(0) == 32, so an all-zero remainder ranks 33. That
	// convention matters at the tail of the register distribution.
	rank := uint8(1 + bits.LeadingZeros32(remainder))
	if rank > s.registers[bucket] {
		s.registers[bucket] = rank
	}
}

// GetEstimate returns the cardinality estimate. An empty sketch
// estimates zero.
func (s *HllSketch[C]) GetEstimate() float64 {
	m := float64(len(s.registers))

	harmonicSum := 0.0
	zeroRegisters := 0
	for _, rank := range s.registers {
		harmonicSum += 1.0 / float64(uint64(1)<<rank)
		if rank == 0 {
			zeroRegisters++
		}
	}
	estimate := s.alpha * m * m / harmonicSum

	const two32 = float64(1 << 32)
	if estimate <= 2.5*m {
		// Small range: linear counting on empty registers.
		if zeroRegisters > 0 {
			estimate = m * math.Log(m/float64(zeroRegisters))
		}
	} else if estimate > two32/30.0 {
		// Large range: correct for 32-bit hash collisions.
		estimate = -two32 * math.Log(1.0-estimate/two32)
	}
	return estimate
}

// GetLgConfigK returns the configured log-base-2 of the register count.
func (s *HllSketch[C]) GetLgConfigK() int {
	return s.lgConfigK
}

// IsEmpty returns true if no item has been presented to the sketch.
func (s *HllSketch[C]) IsEmpty() bool {
	for _, rank := range s.registers {
		if rank != 0 {
			return false
		}
	}
	return true
}

// EstimateCardinality builds a sketch with 2^lgConfigK registers over
// the given items and returns its estimate.
func EstimateCardinality[C comparable](items []C, lgConfigK int, hasher common.ItemHasher[C]) (float64, error) {
	sketch, err := NewHllSketch(lgConfigK, hasher)
	if err != nil {
		return 0, err
	}
	for _, item := range items {
		sketch.Update(item)
	}
	return sketch.GetEstimate(), nil
}

// EstimateStringCardinality estimates the number of distinct strings in
// items using the default murmur3 hasher.
func EstimateStringCardinality(items []string, lgConfigK int) (float64, error) {
	return EstimateCardinality(items, lgConfigK, common.StringMurmur3Hasher{})
}
