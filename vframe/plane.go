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
	"encoding/binary"
	"fmt"
	"iter"
	"unsafe"
)

// PlaneConfig describes the memory layout of a Plane. All values are in
// samples of the plane, not bytes and not luma units.
type PlaneConfig struct {
	// Stride is the distance between vertically adjacent samples.
	Stride int
	// AllocHeight is the number of allocated rows, padding included.
	AllocHeight int
	// Width and Height are the size of the area the codec works on.
	Width  int
	Height int
	// XDec and YDec are the decimation of this plane relative to luma,
	// as right-shift amounts.
	XDec int
	YDec int
	// XPad and YPad are the padding requested on each side.
	XPad int
	YPad int
	// XOrigin and YOrigin locate sample (0, 0) inside the allocation.
	XOrigin int
	YOrigin int
}

// NewPlaneConfig computes the layout of a plane whose samples are
// bytesPerSample wide. Rows start on a DataAlignment boundary: the left
// padding and the stride are rounded up to whole alignment units.
func NewPlaneConfig(width, height, xdec, ydec, xpad, ypad, bytesPerSample int) PlaneConfig {
	if width < 0 || height < 0 || xpad < 0 || ypad < 0 || xdec < 0 || ydec < 0 {
		panic(fmt.Sprintf("vframe: invalid plane geometry %dx%d dec %d/%d pad %d/%d",
			width, height, xdec, ydec, xpad, ypad))
	}
	if bytesPerSample != 1 && bytesPerSample != 2 {
		panic(fmt.Sprintf("vframe: unsupported sample width %d", bytesPerSample))
	}
	alignLog2 := ilog2(DataAlignment() / bytesPerSample)
	xorigin := AlignPowerOfTwo(xpad, alignLog2)
	return PlaneConfig{
		Stride:      AlignPowerOfTwo(xorigin+width+xpad, alignLog2),
		AllocHeight: ypad + height + ypad,
		Width:       width,
		Height:      height,
		XDec:        xdec,
		YDec:        ydec,
		XPad:        xpad,
		YPad:        ypad,
		XOrigin:     xorigin,
		YOrigin:     ypad,
	}
}

// Len returns the number of samples in the allocation.
func (c PlaneConfig) Len() int {
	return c.Stride * c.AllocHeight
}

// Plane is one 2D grid of samples with padding around the working area.
//
// Data holds the whole allocation, padding included. Sample (x, y) of the
// working area lives at Data[(y+YOrigin)*Stride + x+XOrigin]; x and y may be
// negative to reach into the padding.
type Plane[T Pixel] struct {
	Data []T
	Cfg  PlaneConfig

	borrowed bool
}

// NewPlane allocates a zeroed plane of width x height samples with xpad and
// ypad samples of padding on each side. A zero-sized plane is valid and
// represents an absent channel; it allocates nothing.
func NewPlane[T Pixel](width, height, xdec, ydec, xpad, ypad int) *Plane[T] {
	cfg := NewPlaneConfig(width, height, xdec, ydec, xpad, ypad, PixelBytes[T]())
	return &Plane[T]{
		Data: alignedSlice[T](cfg.Len(), DataAlignment()),
		Cfg:  cfg,
	}
}

// alignedSlice returns n zeroed samples whose first element sits on an
// align-byte boundary.
func alignedSlice[T Pixel](n, align int) []T {
	if n == 0 {
		return nil
	}
	bytes := PixelBytes[T]()
	buf := make([]T, n+align/bytes)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := int((uintptr(align)-addr%uintptr(align))%uintptr(align)) / bytes
	return buf[off : off+n : off+n]
}

// PlaneFromSlice copies data into a new plane with the given stride. The
// plane has no padding and its height is len(data)/stride.
func PlaneFromSlice[T Pixel](data []T, stride int) *Plane[T] {
	cfg := sliceConfig(len(data), stride)
	p := &Plane[T]{
		Data: alignedSlice[T](cfg.Len(), DataAlignment()),
		Cfg:  cfg,
	}
	copy(p.Data, data)
	return p
}

// UnsafePlaneFromBytes returns a plane whose storage is buf itself,
// reinterpreted as samples of type T. Nothing is copied or allocated for the
// samples.
//
// The plane has no padding, a width of stride samples and a height of
// len(buf)/(stride*PixelBytes[T]()) rows.
//
// Safety: the plane reads and writes buf as if it owned it. The caller must
// not use buf, or any slice sharing its backing array, for any purpose while
// the plane is reachable. This cannot be checked.
//
// Panics if len(buf) is not a whole number of rows, or if buf is not aligned
// for T.
func UnsafePlaneFromBytes[T Pixel](buf []byte, stride int) *Plane[T] {
	bytes := PixelBytes[T]()
	if len(buf)%bytes != 0 {
		panic(fmt.Sprintf("vframe: %d bytes is not a whole number of %d-byte samples", len(buf), bytes))
	}
	n := len(buf) / bytes
	cfg := sliceConfig(n, stride)
	p := &Plane[T]{Cfg: cfg, borrowed: true}
	if n == 0 {
		return p
	}
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%uintptr(bytes) != 0 {
		panic(fmt.Sprintf("vframe: buffer at %p is not aligned for %d-byte samples", ptr, bytes))
	}
	p.Data = unsafe.Slice((*T)(ptr), n)
	return p
}

func sliceConfig(n, stride int) PlaneConfig {
	if n == 0 {
		stride = max(stride, 0)
		return PlaneConfig{Stride: stride, Width: stride}
	}
	if stride <= 0 || n%stride != 0 {
		panic(fmt.Sprintf("vframe: %d samples is not a whole number of rows of stride %d", n, stride))
	}
	return PlaneConfig{
		Stride:      stride,
		AllocHeight: n / stride,
		Width:       stride,
		Height:      n / stride,
	}
}

// IsBorrowed reports whether the plane aliases caller memory.
func (p *Plane[T]) IsBorrowed() bool {
	return p.borrowed
}

// IsEmpty reports whether the plane has no samples.
func (p *Plane[T]) IsEmpty() bool {
	return p.Cfg.Width == 0 || p.Cfg.Height == 0
}

func (p *Plane[T]) index(x, y int) int {
	return (y+p.Cfg.YOrigin)*p.Cfg.Stride + x + p.Cfg.XOrigin
}

// DataOrigin returns the allocation starting at sample (0, 0).
func (p *Plane[T]) DataOrigin() []T {
	if len(p.Data) == 0 {
		return nil
	}
	return p.Data[p.index(0, 0):]
}

// Row returns the Width samples of row y.
func (p *Plane[T]) Row(y int) []T {
	start := p.index(0, y)
	return p.Data[start : start+p.Cfg.Width]
}

// PaddedRow returns the full allocated row y, starting at x = -XOrigin and
// spanning Stride samples.
func (p *Plane[T]) PaddedRow(y int) []T {
	start := (y + p.Cfg.YOrigin) * p.Cfg.Stride
	return p.Data[start : start+p.Cfg.Stride]
}

// Rows iterates over the rows of the working area.
func (p *Plane[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := range p.Cfg.Height {
			if !yield(y, p.Row(y)) {
				return
			}
		}
	}
}

// At returns sample (x, y).
func (p *Plane[T]) At(x, y int) T {
	return p.Data[p.index(x, y)]
}

// Set stores v at sample (x, y).
func (p *Plane[T]) Set(x, y int, v T) {
	p.Data[p.index(x, y)] = v
}

// Fill sets every allocated sample, padding included, to v.
func (p *Plane[T]) Fill(v T) {
	for i := range p.Data {
		p.Data[i] = v
	}
}

// Clone returns a deep copy of the plane. The copy always owns its storage.
func (p *Plane[T]) Clone() *Plane[T] {
	c := &Plane[T]{
		Data: alignedSlice[T](len(p.Data), DataAlignment()),
		Cfg:  p.Cfg,
	}
	copy(c.Data, p.Data)
	return c
}

// Equal reports whether both planes have the same layout and samples.
func (p *Plane[T]) Equal(o *Plane[T]) bool {
	if p.Cfg != o.Cfg || len(p.Data) != len(o.Data) {
		return false
	}
	for i, v := range p.Data {
		if o.Data[i] != v {
			return false
		}
	}
	return true
}

// Pad replicates the edge samples of the visible area into the padding.
// w and h are the visible frame size in luma samples; the plane applies its
// own decimation.
func (p *Plane[T]) Pad(w, h int) {
	cfg := p.Cfg
	width := min((w+cfg.XDec)>>cfg.XDec, cfg.Stride-cfg.XOrigin)
	height := min((h+cfg.YDec)>>cfg.YDec, cfg.AllocHeight-cfg.YOrigin)
	if width <= 0 || height <= 0 {
		return
	}

	// Left and right.
	for y := range height {
		row := p.PaddedRow(y)
		left := row[cfg.XOrigin]
		for x := 0; x < cfg.XOrigin; x++ {
			row[x] = left
		}
		right := row[cfg.XOrigin+width-1]
		for x := cfg.XOrigin + width; x < cfg.Stride; x++ {
			row[x] = right
		}
	}

	// Above and below, full stride so the corners are covered.
	top := p.PaddedRow(0)
	for y := -cfg.YOrigin; y < 0; y++ {
		copy(p.PaddedRow(y), top)
	}
	bottom := p.PaddedRow(height - 1)
	for y := height; y < cfg.AllocHeight-cfg.YOrigin; y++ {
		copy(p.PaddedRow(y), bottom)
	}
}

// CopyFromRaw fills the working area from src, a packed buffer of rows
// srcStride bytes apart holding samples bytesPerSample wide. 16-bit samples
// are little-endian. Rows or columns beyond either side are left untouched.
//
// Panics if bytesPerSample is not 1 or 2, or if 16-bit samples are copied
// into an 8-bit plane.
func (p *Plane[T]) CopyFromRaw(src []byte, srcStride, bytesPerSample int) {
	checkRawSampleWidth[T](bytesPerSample)
	if srcStride <= 0 {
		return
	}
	rows := min(p.Cfg.Height, len(src)/srcStride)
	cols := min(p.Cfg.Width, srcStride/bytesPerSample)
	for y := range rows {
		line := src[y*srcStride : y*srcStride+srcStride]
		dst := p.Row(y)[:cols]
		if bytesPerSample == 1 {
			for x := range dst {
				dst[x] = T(line[x])
			}
			continue
		}
		for x := range dst {
			dst[x] = T(binary.LittleEndian.Uint16(line[2*x:]))
		}
	}
}

// CopyToRaw writes the working area into dst as rows dstStride bytes apart,
// each sample bytesPerSample wide. 16-bit samples are little-endian.
func (p *Plane[T]) CopyToRaw(dst []byte, dstStride, bytesPerSample int) {
	checkRawSampleWidth[T](bytesPerSample)
	if dstStride <= 0 {
		return
	}
	rows := min(p.Cfg.Height, len(dst)/dstStride)
	cols := min(p.Cfg.Width, dstStride/bytesPerSample)
	for y := range rows {
		line := dst[y*dstStride : y*dstStride+dstStride]
		src := p.Row(y)[:cols]
		if bytesPerSample == 1 {
			for x, v := range src {
				line[x] = byte(v)
			}
			continue
		}
		for x, v := range src {
			binary.LittleEndian.PutUint16(line[2*x:], uint16(v))
		}
	}
}

func checkRawSampleWidth[T Pixel](bytesPerSample int) {
	switch {
	case bytesPerSample != 1 && bytesPerSample != 2:
		panic(fmt.Sprintf("vframe: unsupported raw sample width %d", bytesPerSample))
	case bytesPerSample > PixelBytes[T]():
		panic("vframe: cannot copy 16-bit samples into an 8-bit plane")
	}
}

// Downsampled returns a new plane at half resolution in both directions,
// each sample the rounded mean of a 2x2 block. The result is padded for a
// visible frame of frameWidth x frameHeight luma samples.
//
// Panics if the source does not have enough padding to the right or below to
// cover the 2x2 blocks of an odd-sized working area.
func (p *Plane[T]) Downsampled(frameWidth, frameHeight int) *Plane[T] {
	src := p.Cfg
	dst := NewPlane[T]((src.Width+1)/2, (src.Height+1)/2, src.XDec+1, src.YDec+1, src.XPad/2, src.YPad/2)
	width, height := dst.Cfg.Width, dst.Cfg.Height
	if width*2 > src.Stride-src.XOrigin {
		panic("vframe: downsample source too narrow")
	}
	if height*2 > src.AllocHeight-src.YOrigin {
		panic("vframe: downsample source too short")
	}
	for y := range height {
		top := p.PaddedRow(2 * y)[src.XOrigin:]
		bottom := p.PaddedRow(2*y + 1)[src.XOrigin:]
		out := dst.Row(y)
		for x := range width {
			sum := uint32(top[2*x]) + uint32(top[2*x+1]) + uint32(bottom[2*x]) + uint32(bottom[2*x+1])
			out[x] = T((sum + 2) >> 2)
		}
	}
	dst.Pad(frameWidth, frameHeight)
	return dst
}
