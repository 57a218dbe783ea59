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

// Package snapshot writes frames to a compact, portable file format and
// reads them back.
//
// A snapshot stores the plane geometry and the samples of each plane's
// padded area (working area plus requested padding, without the extra
// columns added for row alignment), so it can be read on a host with a
// different data alignment. Each plane is compressed separately with zstd.
//
// Layout, all integers little-endian:
//
//	magic     [4]byte "VFRM"
//	version   uint8   (1)
//	pixel     uint8   (vframe.PixelType)
//	sampling  uint8   (vframe.ChromaSampling)
//	reserved  uint8
//	planes    3 x { width, height, xdec, ydec, xpad, ypad uint32 }
//	data      3 x { length uint64, zstd stream of length bytes }
package snapshot
