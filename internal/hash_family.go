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

// Package internal provides the double-hashing index family shared by
// the Bloom filter and the Count-Min sketch.
package internal

// The family follows the Kirsch-Mitzenmacher construction: the 32-bit
// base hash is split into 16-bit halves and the j-th member is
// (high + j*low) mod 2^16. When the low half is zero every member
// collapses to high, which silently reduces the effective number of
// independent hash functions. That degeneracy is a known accuracy
// weakness of the construction and is deliberately left uncorrected.

const familyIndexMask = (1 << 16) - 1

// HashFamilyIndex derives the j-th member of the hash family for the
// given base hash. Useful in hot loops where the full slice from
// HashFamilyIndexes would allocate.
func HashFamilyIndex(hash uint32, j int) uint32 {
	high := hash >> 16
	low := hash & familyIndexMask
	return (high + uint32(j)*low) & familyIndexMask
}

// HashFamilyIndexes derives the first k members of the hash family.
func HashFamilyIndexes(hash uint32, k int) []uint32 {
	high := hash >> 16
	low := hash & familyIndexMask
	indexes := make([]uint32, k)
	for j := range indexes {
		indexes[j] = (high + uint32(j)*low) & familyIndexMask
	}
	return indexes
}
