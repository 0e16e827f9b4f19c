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

package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHashersAreDeterministic(t *testing.T) {
	hashers := []ItemHasher[string]{StringMurmur3Hasher{}, StringXxHasher{}}
	for _, hasher := range hashers {
		assert.Equal(t, hasher.Hash("hello"), hasher.Hash("hello"))
		assert.Equal(t, hasher.Hash(""), hasher.Hash(""))
	}
}

func TestStringHashersDisagree(t *testing.T) {
	// The two capabilities are genuinely different hash functions.
	murmur := StringMurmur3Hasher{}
	xx := StringXxHasher{}
	differing := 0
	for i := 0; i < 100; i++ {
		item := fmt.Sprintf("item_%d", i)
		if murmur.Hash(item) != xx.Hash(item) {
			differing++
		}
	}
	assert.Greater(t, differing, 90)
}

func TestStringHasherSpread(t *testing.T) {
	// Coarse uniformity check: distinct inputs should rarely collide
	// across a 32-bit range.
	seen := map[uint32]bool{}
	hasher := StringMurmur3Hasher{}
	for i := 0; i < 10000; i++ {
		seen[hasher.Hash(fmt.Sprintf("key_%d", i))] = true
	}
	assert.Greater(t, len(seen), 9990)
}
