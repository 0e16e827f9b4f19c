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

package hll

import "fmt"

const (
	// MinLgConfigK and MaxLgConfigK bound the register-array precision.
	// The top lgConfigK bits of the 32-bit base hash select a register,
	// so the precision is capped at half the hash width to leave a
	// usable remainder for the leading-zero rank.
	MinLgConfigK = 1
	MaxLgConfigK = 16

	// DefaultLgConfigK gives 4096 registers, roughly 1.6% relative
	// standard error.
	DefaultLgConfigK = 12
)

func checkLgConfigK(lgConfigK int) error {
	if lgConfigK < MinLgConfigK || lgConfigK > MaxLgConfigK {
		return fmt.Errorf("lgConfigK must be between %d and %d, inclusive: %d", MinLgConfigK, MaxLgConfigK, lgConfigK)
	}
	return nil
}

// alphaFor returns the bias-correction constant for a register array of
// the given size. The closed-form value is used everywhere except the
// three small sizes with empirically determined constants.
func alphaFor(lgConfigK int) float64 {
	switch lgConfigK {
	case 4:
		return 0.673
	case 5:
		return 0.697
	case 6:
		return 0.709
	default:
		m := float64(uint32(1) << lgConfigK)
		return 0.7213 / (1.0 + 1.079/m)
	}
}
