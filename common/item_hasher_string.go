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
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// defaultHashSeed keeps string hashing stable across builds of the same
// input, which the sketches rely on for deterministic construction.
const defaultHashSeed = uint32(9001)

// StringMurmur3Hasher is the default string hasher, backed by 32-bit
// murmur3 with a fixed seed.
type StringMurmur3Hasher struct{}

func (StringMurmur3Hasher) Hash(item string) uint32 {
	datum := unsafe.Slice(unsafe.StringData(item), len(item))
	return murmur3.SeedSum32(defaultHashSeed, datum[:])
}

// StringXxHasher is an alternative string hasher backed by XXHash64,
// truncated to the 32-bit base hash the sketches expect. It exists to
// demonstrate that swapping the hash capability is the only change
// needed to re-base a sketch on a different hash function.
type StringXxHasher struct{}

func (StringXxHasher) Hash(item string) uint32 {
	return uint32(xxhash.Sum64String(item))
}
