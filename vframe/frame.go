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

import "fmt"

// Plane indices within a Frame.
const (
	PlaneY = iota
	PlaneCb
	PlaneCr
)

// blockSizeLog2 is the block alignment applied to allocated luma planes.
const blockSizeLog2 = 3

// PlaneGeometry is the size, decimation and padding of one plane.
type PlaneGeometry struct {
	Width, Height int
	XDec, YDec    int
	XPad, YPad    int
}

// Config returns the memory layout of the plane for samples of
// bytesPerSample bytes.
func (g PlaneGeometry) Config(bytesPerSample int) PlaneConfig {
	return NewPlaneConfig(g.Width, g.Height, g.XDec, g.YDec, g.XPad, g.YPad, bytesPerSample)
}

// Geometry is the layout of the three planes of a frame.
type Geometry struct {
	Sampling ChromaSampling
	Planes   [3]PlaneGeometry
}

// AllocatedBytes returns the total allocation of a frame with this geometry,
// padding and alignment included.
func (g Geometry) AllocatedBytes(bytesPerSample int) int {
	total := 0
	for _, pg := range g.Planes {
		total += pg.Config(bytesPerSample).Len() * bytesPerSample
	}
	return total
}

// Validate checks that g is a layout a Frame can have: a known sampling, an
// undecimated luma plane, and two identical chroma planes carrying the
// sampling's decimation. Monochrome geometries must have empty chroma planes.
func (g Geometry) Validate() error {
	if int(g.Sampling) >= len(AllSamplings) {
		return fmt.Errorf("vframe: invalid chroma sampling %d", g.Sampling)
	}
	for i, pg := range g.Planes {
		if pg.Width < 0 || pg.Height < 0 || pg.XDec < 0 || pg.YDec < 0 || pg.XPad < 0 || pg.YPad < 0 {
			return fmt.Errorf("vframe: plane %d has negative geometry %+v", i, pg)
		}
	}
	if luma := g.Planes[PlaneY]; luma.XDec != 0 || luma.YDec != 0 {
		return fmt.Errorf("vframe: luma plane decimated by %d/%d", luma.XDec, luma.YDec)
	}
	cb, cr := g.Planes[PlaneCb], g.Planes[PlaneCr]
	if cb != cr {
		return fmt.Errorf("vframe: chroma planes differ: Cb %+v, Cr %+v", cb, cr)
	}
	xdec, ydec, ok := g.Sampling.Decimation()
	if !ok {
		if cb != (PlaneGeometry{}) {
			return fmt.Errorf("vframe: %v geometry has chroma plane %+v", g.Sampling, cb)
		}
		return nil
	}
	if cb.XDec != xdec || cb.YDec != ydec {
		return fmt.Errorf("vframe: %v chroma decimated by %d/%d, want %d/%d", g.Sampling, cb.XDec, cb.YDec, xdec, ydec)
	}
	return nil
}

// ComputeGeometry returns the plane layout NewFrame allocates for a visible
// picture of width x height with lumaPadding samples of padding on each
// side of the luma plane.
//
// The luma size is rounded up to a multiple of 8. Chroma planes take their
// size from the aligned luma size and their padding is lumaPadding shifted
// by the decimation of each axis. Monochrome frames get empty chroma planes.
func ComputeGeometry(width, height int, cs ChromaSampling, lumaPadding int) Geometry {
	if width < 0 || height < 0 || lumaPadding < 0 {
		panic(fmt.Sprintf("vframe: invalid frame %dx%d padding %d", width, height, lumaPadding))
	}
	lumaWidth := AlignPowerOfTwo(width, blockSizeLog2)
	lumaHeight := AlignPowerOfTwo(height, blockSizeLog2)

	xdec, ydec, _ := cs.Decimation()
	chromaWidth, chromaHeight := cs.ChromaDimensions(lumaWidth, lumaHeight)
	chroma := PlaneGeometry{
		Width:  chromaWidth,
		Height: chromaHeight,
		XDec:   xdec,
		YDec:   ydec,
		XPad:   lumaPadding >> xdec,
		YPad:   lumaPadding >> ydec,
	}
	if !cs.HasChroma() {
		chroma = PlaneGeometry{}
	}

	return Geometry{
		Sampling: cs,
		Planes: [3]PlaneGeometry{
			{Width: lumaWidth, Height: lumaHeight, XPad: lumaPadding, YPad: lumaPadding},
			chroma,
			chroma,
		},
	}
}

// Frame is one video frame: a luma plane and two chroma planes. The chroma
// planes always share size, decimation and padding, and are empty for
// monochrome frames.
//
// The shape of a Frame is fixed at construction. Samples may be modified.
type Frame[T Pixel] struct {
	Planes [3]*Plane[T]

	sampling ChromaSampling
}

// NewFrame allocates a frame for a visible picture of width x height, as
// laid out by ComputeGeometry. The visible size itself is not stored; the
// caller keeps it.
//
// Allocation failure is not recoverable.
func NewFrame[T Pixel](width, height int, cs ChromaSampling, lumaPadding int) *Frame[T] {
	return NewFrameFromGeometry[T](ComputeGeometry(width, height, cs, lumaPadding))
}

// NewFrameFromGeometry allocates a frame with the given plane layout.
//
// Panics if g fails Validate.
func NewFrameFromGeometry[T Pixel](g Geometry) *Frame[T] {
	if err := g.Validate(); err != nil {
		panic(err.Error())
	}
	f := &Frame[T]{sampling: g.Sampling}
	for i, pg := range g.Planes {
		f.Planes[i] = NewPlane[T](pg.Width, pg.Height, pg.XDec, pg.YDec, pg.XPad, pg.YPad)
	}
	return f
}

// UnsafeNewZeroCopy builds a frame whose planes alias data[0], data[1] and
// data[2] (luma, Cb, Cr) instead of copying them. Each buffer holds tightly
// packed rows of the plane's width; samples wider than a byte are in native
// byte order. No block alignment is applied: the planes are exactly
// width x height and the chroma size derived from it.
//
// For Cs400 only data[0] is used. The chroma planes are empty and data[1]
// and data[2] are ignored whatever their length.
//
// Safety: the frame reads and writes the buffers as its own storage. The
// caller hands them over and must not read, write or retain them, or any
// slice sharing their memory, while the frame is reachable. This cannot be
// checked.
//
// Panics, naming the plane and the expected and actual byte counts, if a
// buffer that is used does not hold exactly one plane.
func UnsafeNewZeroCopy[T Pixel](data [3][]byte, width, height int, cs ChromaSampling) *Frame[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("vframe: invalid frame %dx%d", width, height))
	}
	bytes := PixelBytes[T]()
	checkZeroCopyLen(PlaneY, data[PlaneY], width*height*bytes)

	f := &Frame[T]{sampling: cs}
	f.Planes[PlaneY] = UnsafePlaneFromBytes[T](data[PlaneY], width)

	xdec, ydec, ok := cs.Decimation()
	if !ok {
		f.Planes[PlaneCb] = NewPlane[T](0, 0, 0, 0, 0, 0)
		f.Planes[PlaneCr] = NewPlane[T](0, 0, 0, 0, 0, 0)
		return f
	}

	chromaWidth, chromaHeight := cs.ChromaDimensions(width, height)
	for _, i := range []int{PlaneCb, PlaneCr} {
		checkZeroCopyLen(i, data[i], chromaWidth*chromaHeight*bytes)
	}
	for _, i := range []int{PlaneCb, PlaneCr} {
		p := UnsafePlaneFromBytes[T](data[i], chromaWidth)
		p.Cfg.XDec, p.Cfg.YDec = xdec, ydec
		f.Planes[i] = p
	}
	return f
}

func checkZeroCopyLen(plane int, buf []byte, want int) {
	if len(buf) != want {
		panic(fmt.Sprintf("vframe: zero-copy plane %d has %d bytes, want %d", plane, len(buf), want))
	}
}

// Sampling returns the chroma sampling the frame was built for.
func (f *Frame[T]) Sampling() ChromaSampling {
	return f.sampling
}

// Luma returns plane 0.
func (f *Frame[T]) Luma() *Plane[T] {
	return f.Planes[PlaneY]
}

// Cb returns plane 1.
func (f *Frame[T]) Cb() *Plane[T] {
	return f.Planes[PlaneCb]
}

// Cr returns plane 2.
func (f *Frame[T]) Cr() *Plane[T] {
	return f.Planes[PlaneCr]
}

// Geometry returns the size, decimation and padding of each plane.
func (f *Frame[T]) Geometry() Geometry {
	g := Geometry{Sampling: f.sampling}
	for i, p := range f.Planes {
		g.Planes[i] = PlaneGeometry{
			Width:  p.Cfg.Width,
			Height: p.Cfg.Height,
			XDec:   p.Cfg.XDec,
			YDec:   p.Cfg.YDec,
			XPad:   p.Cfg.XPad,
			YPad:   p.Cfg.YPad,
		}
	}
	return g
}

// Clone returns a deep copy that owns all of its storage, even when f
// aliases caller memory.
func (f *Frame[T]) Clone() *Frame[T] {
	c := &Frame[T]{sampling: f.sampling}
	for i, p := range f.Planes {
		c.Planes[i] = p.Clone()
	}
	return c
}

// Pad replicates edge samples into the padding of every plane for a visible
// picture of w x h luma samples.
func (f *Frame[T]) Pad(w, h int) {
	for _, p := range f.Planes {
		p.Pad(w, h)
	}
}

// Equal reports whether both frames have the same sampling, layout and
// samples.
func (f *Frame[T]) Equal(o *Frame[T]) bool {
	if f.sampling != o.sampling {
		return false
	}
	for i, p := range f.Planes {
		if !p.Equal(o.Planes[i]) {
			return false
		}
	}
	return true
}
