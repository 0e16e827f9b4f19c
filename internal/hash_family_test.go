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

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashFamilyFormula(t *testing.T) {
	// high = 0x1234, low = 0x0567
	hash := uint32(0x12340567)
	high := uint32(0x1234)
	low := uint32(0x0567)

	indexes := HashFamilyIndexes(hash, 5)
	assert.Len(t, indexes, 5)
	for j, v := range indexes {
		expected := (high + uint32(j)*low) % 65536
		assert.Equal(t, expected, v)
		assert.Equal(t, expected, HashFamilyIndex(hash, j))
	}
}

func TestHashFamilyWrapsAt16Bits(t *testing.T) {
	// high + j*low exceeds 2^16 for j >= 1
	hash := uint32(0xFFFFFFFF)
	indexes := HashFamilyIndexes(hash, 4)
	for _, v := range indexes {
		assert.Less(t, v, uint32(1<<16))
	}
	assert.Equal(t, uint32(0xFFFF), indexes[0])
	assert.Equal(t, uint32((0xFFFF+0xFFFF)%65536), indexes[1])
}

func TestHashFamilyZeroLowHalfCollapses(t *testing.T) {
	// low 16 bits all zero: every member degenerates to the high half
	hash := uint32(0xABCD0000)
	indexes := HashFamilyIndexes(hash, 8)
	for _, v := range indexes {
		assert.Equal(t, uint32(0xABCD), v)
	}
}

func TestHashFamilyZeroCount(t *testing.T) {
	assert.Empty(t, HashFamilyIndexes(0x12345678, 0))
}
