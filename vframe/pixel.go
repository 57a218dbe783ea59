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

import (
	"fmt"
	"strings"
	"unsafe"
)

// Pixel is the set of sample types a Plane can hold: 8-bit samples for
// 8-bit video and 16-bit samples for high bit depth.
type Pixel interface {
	~uint8 | ~uint16
}

// PixelType identifies the storage width of a Pixel type at runtime.
type PixelType uint8

const (
	// U8 is an 8-bit sample.
	U8 PixelType = iota + 1
	// U16 is a 16-bit sample holding up to 16 significant bits.
	U16
)

// String returns "u8" or "u16".
func (p PixelType) String() string {
	switch p {
	case U8:
		return "u8"
	case U16:
		return "u16"
	default:
		return "unknown"
	}
}

// Bytes returns the storage width of one sample of type p, or 0 for an
// unknown type.
func (p PixelType) Bytes() int {
	switch p {
	case U8:
		return 1
	case U16:
		return 2
	default:
		return 0
	}
}

// ParsePixelType parses "u8"/"8" or "u16"/"16", case-insensitively.
func ParsePixelType(s string) (PixelType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u8", "8", "uint8":
		return U8, nil
	case "u16", "16", "uint16":
		return U16, nil
	}
	return 0, fmt.Errorf("vframe: unknown pixel type %q", s)
}

// PixelBytes returns the storage width of one sample of type T in bytes.
func PixelBytes[T Pixel]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// TypeOf returns the PixelType of T.
func TypeOf[T Pixel]() PixelType {
	if PixelBytes[T]() == 1 {
		return U8
	}
	return U16
}

// CastPixel converts v to T, truncating to the width of T.
func CastPixel[T Pixel](v uint32) T {
	return T(v)
}
