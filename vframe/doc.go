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

// Package vframe provides the frame-geometry layer of a video codec's pixel
// storage: three color planes sized, aligned and padded for a chroma
// subsampling format.
//
// A Frame is built either by allocation:
//
//	f := vframe.NewFrame[uint8](1920, 1080, vframe.Cs420, 64)
//	luma := f.Luma()
//	for y := 0; y < luma.Cfg.Height; y++ {
//	    row := luma.Row(y)
//	    // row[0:luma.Cfg.Width] is the visible part of line y
//	}
//
// or by aliasing caller-owned buffers without copying:
//
//	f := vframe.UnsafeNewZeroCopy[uint8]([3][]byte{y, u, v}, w, h, vframe.Cs420)
//
// # Geometry
//
// NewFrame rounds the luma size up to a multiple of 8 samples, derives the
// chroma size from the subsampling format (rounding up, so odd luma sizes
// lose no samples) and shrinks the padding of the chroma planes by the same
// decimation. ComputeGeometry returns the same numbers without allocating.
//
// # Plane layout
//
// Each allocated plane stores its rows with a stride aligned to the data
// alignment detected at startup (64 bytes with AVX-512, 32 with AVX2, 16
// otherwise). Set VFRAME_NO_SIMD to force the 16-byte alignment.
//
// # Zero-copy ingestion
//
// UnsafeNewZeroCopy and UnsafePlaneFromBytes reinterpret a []byte as plane
// storage. The caller must not touch the source buffer again while the Frame
// is alive; the library cannot check this.
package vframe
