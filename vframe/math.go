// Copyright 2025 go-vframe Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vframe

import "math/bits"

// AlignPowerOfTwo rounds x up to the next multiple of 1<<n.
//
// For example, AlignPowerOfTwo(100, 3) == 104.
func AlignPowerOfTwo(x int, n uint) int {
	mask := (1 << n) - 1
	return (x + mask) &^ mask
}

// AlignPowerOfTwoAndShift rounds x up to a multiple of 1<<n and divides the
// result by 1<<n, i.e. the number of 1<<n blocks needed to cover x.
func AlignPowerOfTwoAndShift(x int, n uint) int {
	return (x + (1 << n) - 1) >> n
}

// ilog2 returns floor(log2(x)) for x > 0.
func ilog2(x int) uint {
	return uint(bits.Len(uint(x)) - 1)
}
