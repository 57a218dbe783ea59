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

import "os"

// DispatchLevel is the widest vector extension detected on the host. It
// decides how plane rows are aligned in memory.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
	DispatchSVE
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// minDataAlignment is the alignment used in scalar mode.
const minDataAlignment = 16

var (
	currentLevel     DispatchLevel
	currentAlignment = minDataAlignment
)

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

// NoSimdEnv reports whether VFRAME_NO_SIMD is set to a non-empty value.
func NoSimdEnv() bool {
	return os.Getenv("VFRAME_NO_SIMD") != ""
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentAlignment = minDataAlignment
}

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// DataAlignment returns the byte alignment of plane rows allocated by
// NewPlane. It is a power of two and at least 16.
func DataAlignment() int {
	return currentAlignment
}
