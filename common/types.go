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

// Package common holds the hashing capability shared by every sketch in
// this module.
package common

// ItemHasher maps an item to an approximately uniform 32-bit code. No
// statistical guarantee is required beyond approximate uniformity and
// approximate independence across distinct inputs.
//
// Every sketch consumes items only through an ItemHasher, so supporting
// a new element type means supplying a hasher for it and nothing else.
type ItemHasher[C comparable] interface {
	Hash(item C) uint32
}
