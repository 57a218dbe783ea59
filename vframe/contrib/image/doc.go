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

// Package image bridges vframe frames and the standard library's image
// types.
//
// 8-bit frames convert to and from *image.YCbCr (4:2:0, 4:2:2 and 4:4:4)
// and *image.Gray (4:0:0). Conversions copy the visible area only; frames
// built from images are padded by edge replication.
//
//	f, err := image.FromImage(img, 64)
//	...
//	out, err := image.ToImage(f, w, h)
package image
