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

package image

import (
	"errors"
	"fmt"
	stdimage "image"

	"github.com/ajroetker/go-vframe/vframe"
)

// ErrUnsupported is returned for subsampling ratios and image types that
// have no vframe equivalent.
var ErrUnsupported = errors.New("image: unsupported format")

// SamplingOf returns the ChromaSampling matching a YCbCr subsample ratio.
func SamplingOf(r stdimage.YCbCrSubsampleRatio) (vframe.ChromaSampling, error) {
	switch r {
	case stdimage.YCbCrSubsampleRatio420:
		return vframe.Cs420, nil
	case stdimage.YCbCrSubsampleRatio422:
		return vframe.Cs422, nil
	case stdimage.YCbCrSubsampleRatio444:
		return vframe.Cs444, nil
	default:
		return 0, fmt.Errorf("%w: subsample ratio %v", ErrUnsupported, r)
	}
}

// RatioOf returns the YCbCr subsample ratio matching cs.
func RatioOf(cs vframe.ChromaSampling) (stdimage.YCbCrSubsampleRatio, error) {
	switch cs {
	case vframe.Cs420:
		return stdimage.YCbCrSubsampleRatio420, nil
	case vframe.Cs422:
		return stdimage.YCbCrSubsampleRatio422, nil
	case vframe.Cs444:
		return stdimage.YCbCrSubsampleRatio444, nil
	default:
		return 0, fmt.Errorf("%w: %v has no YCbCr ratio", ErrUnsupported, cs)
	}
}

// FromImage copies img into a new frame with lumaPadding samples of padding.
// img must be an *image.YCbCr or an *image.Gray.
func FromImage(img stdimage.Image, lumaPadding int) (*vframe.Frame[uint8], error) {
	switch m := img.(type) {
	case *stdimage.YCbCr:
		return FromYCbCr(m, lumaPadding)
	case *stdimage.Gray:
		return FromGray(m, lumaPadding), nil
	default:
		return nil, fmt.Errorf("%w: image type %T", ErrUnsupported, img)
	}
}

// ToImage copies the visible w x h area of f into an *image.YCbCr, or an
// *image.Gray for monochrome frames.
func ToImage(f *vframe.Frame[uint8], w, h int) (stdimage.Image, error) {
	if f.Sampling() == vframe.Cs400 {
		return ToGray(f, w, h)
	}
	return ToYCbCr(f, w, h)
}

// FromYCbCr copies m into a new frame sized for m's bounds.
func FromYCbCr(m *stdimage.YCbCr, lumaPadding int) (*vframe.Frame[uint8], error) {
	cs, err := SamplingOf(m.SubsampleRatio)
	if err != nil {
		return nil, err
	}
	b := m.Rect
	w, h := b.Dx(), b.Dy()
	f := vframe.NewFrame[uint8](w, h, cs, lumaPadding)

	luma := f.Luma()
	for y := range h {
		i := m.YOffset(b.Min.X, b.Min.Y+y)
		copy(luma.Row(y), m.Y[i:i+w])
	}

	cw, ch := cs.ChromaDimensions(w, h)
	cb, cr := f.Cb(), f.Cr()
	for y := range ch {
		ly := b.Min.Y + y<<chromaShiftY(cs)
		i := m.COffset(b.Min.X, ly)
		copy(cb.Row(y), m.Cb[i:i+cw])
		copy(cr.Row(y), m.Cr[i:i+cw])
	}

	f.Pad(w, h)
	return f, nil
}

func chromaShiftY(cs vframe.ChromaSampling) int {
	_, y, _ := cs.Decimation()
	return y
}

// ToYCbCr copies the visible w x h area of f into a new *image.YCbCr.
func ToYCbCr(f *vframe.Frame[uint8], w, h int) (*stdimage.YCbCr, error) {
	ratio, err := RatioOf(f.Sampling())
	if err != nil {
		return nil, err
	}
	if err := checkVisible(f.Luma(), w, h); err != nil {
		return nil, err
	}
	m := stdimage.NewYCbCr(stdimage.Rect(0, 0, w, h), ratio)

	luma := f.Luma()
	for y := range h {
		copy(m.Y[y*m.YStride:y*m.YStride+w], luma.Row(y))
	}

	cw, ch := f.Sampling().ChromaDimensions(w, h)
	cb, cr := f.Cb(), f.Cr()
	for y := range ch {
		copy(m.Cb[y*m.CStride:y*m.CStride+cw], cb.Row(y))
		copy(m.Cr[y*m.CStride:y*m.CStride+cw], cr.Row(y))
	}
	return m, nil
}

// FromGray copies m into the luma plane of a new monochrome frame.
func FromGray(m *stdimage.Gray, lumaPadding int) *vframe.Frame[uint8] {
	b := m.Rect
	w, h := b.Dx(), b.Dy()
	f := vframe.NewFrame[uint8](w, h, vframe.Cs400, lumaPadding)
	luma := f.Luma()
	for y := range h {
		i := m.PixOffset(b.Min.X, b.Min.Y+y)
		copy(luma.Row(y), m.Pix[i:i+w])
	}
	f.Pad(w, h)
	return f
}

// ToGray copies the visible w x h area of the luma plane into a new
// *image.Gray. Chroma planes, if any, are dropped.
func ToGray(f *vframe.Frame[uint8], w, h int) (*stdimage.Gray, error) {
	if err := checkVisible(f.Luma(), w, h); err != nil {
		return nil, err
	}
	m := stdimage.NewGray(stdimage.Rect(0, 0, w, h))
	luma := f.Luma()
	for y := range h {
		copy(m.Pix[y*m.Stride:y*m.Stride+w], luma.Row(y))
	}
	return m, nil
}

func checkVisible(p *vframe.Plane[uint8], w, h int) error {
	if w < 0 || h < 0 || w > p.Cfg.Width || h > p.Cfg.Height {
		return fmt.Errorf("image: visible area %dx%d exceeds luma plane %dx%d",
			w, h, p.Cfg.Width, p.Cfg.Height)
	}
	return nil
}
