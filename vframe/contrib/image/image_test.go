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
	stdimage "image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-vframe/vframe"
)

func testYCbCr(w, h int, ratio stdimage.YCbCrSubsampleRatio) *stdimage.YCbCr {
	m := stdimage.NewYCbCr(stdimage.Rect(0, 0, w, h), ratio)
	for i := range m.Y {
		m.Y[i] = byte(i * 7)
	}
	for i := range m.Cb {
		m.Cb[i] = byte(i * 3)
		m.Cr[i] = byte(255 - i)
	}
	return m
}

func TestYCbCrRoundTrip(t *testing.T) {
	ratios := []stdimage.YCbCrSubsampleRatio{
		stdimage.YCbCrSubsampleRatio420,
		stdimage.YCbCrSubsampleRatio422,
		stdimage.YCbCrSubsampleRatio444,
	}
	for _, ratio := range ratios {
		for _, size := range [][2]int{{16, 16}, {13, 7}, {1, 1}} {
			w, h := size[0], size[1]
			src := testYCbCr(w, h, ratio)

			f, err := FromImage(src, 8)
			require.NoError(t, err)
			assert.Equal(t, (w+7)/8*8, f.Luma().Cfg.Width)

			out, err := ToImage(f, w, h)
			require.NoError(t, err)
			got, ok := out.(*stdimage.YCbCr)
			require.True(t, ok)
			assert.Equal(t, src.SubsampleRatio, got.SubsampleRatio)
			for y := range h {
				for x := range w {
					require.Equal(t, src.YCbCrAt(x, y), got.YCbCrAt(x, y), "%v %dx%d at (%d, %d)", ratio, w, h, x, y)
				}
			}
		}
	}
}

func TestFromYCbCrPadsEdges(t *testing.T) {
	src := testYCbCr(5, 3, stdimage.YCbCrSubsampleRatio420)
	f, err := FromYCbCr(src, 4)
	require.NoError(t, err)
	// Aligned luma plane is 8x8; columns past 4 replicate column 4.
	luma := f.Luma()
	assert.Equal(t, luma.At(4, 0), luma.At(7, 0))
	assert.Equal(t, luma.At(4, 2), luma.At(4, 7))
	assert.Equal(t, luma.At(0, 0), luma.At(-4, -4))
}

func TestSubImage(t *testing.T) {
	full := testYCbCr(16, 16, stdimage.YCbCrSubsampleRatio420)
	sub := full.SubImage(stdimage.Rect(4, 2, 12, 10)).(*stdimage.YCbCr)
	f, err := FromYCbCr(sub, 0)
	require.NoError(t, err)
	for y := range 8 {
		for x := range 8 {
			want := full.YCbCrAt(x+4, y+2)
			assert.Equal(t, want.Y, f.Luma().At(x, y))
			assert.Equal(t, want.Cb, f.Cb().At(x/2, y/2))
		}
	}
}

func TestGrayRoundTrip(t *testing.T) {
	src := stdimage.NewGray(stdimage.Rect(0, 0, 9, 4))
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}
	f, err := FromImage(src, 16)
	require.NoError(t, err)
	assert.Equal(t, vframe.Cs400, f.Sampling())
	assert.True(t, f.Cb().IsEmpty())

	out, err := ToImage(f, 9, 4)
	require.NoError(t, err)
	got := out.(*stdimage.Gray)
	assert.Equal(t, src.Pix, got.Pix)
}

func TestToGrayFromColorFrame(t *testing.T) {
	f := vframe.NewFrame[uint8](8, 8, vframe.Cs420, 0)
	f.Luma().Set(3, 3, 99)
	g, err := ToGray(f, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, color.Gray{Y: 99}, g.GrayAt(3, 3))
}

func TestUnsupported(t *testing.T) {
	_, err := FromImage(stdimage.NewRGBA(stdimage.Rect(0, 0, 4, 4)), 0)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = FromYCbCr(stdimage.NewYCbCr(stdimage.Rect(0, 0, 4, 4), stdimage.YCbCrSubsampleRatio440), 0)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = ToYCbCr(vframe.NewFrame[uint8](8, 8, vframe.Cs400, 0), 8, 8)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = ToYCbCr(vframe.NewFrame[uint8](8, 8, vframe.Cs420, 0), 9, 8)
	assert.Error(t, err)
}

func TestZeroCopyFrameToImage(t *testing.T) {
	y := make([]byte, 6*4)
	u := make([]byte, 3*2)
	v := make([]byte, 3*2)
	for i := range y {
		y[i] = byte(100 + i)
	}
	u[5], v[5] = 1, 2
	f := vframe.UnsafeNewZeroCopy[uint8]([3][]byte{y, u, v}, 6, 4, vframe.Cs420)
	m, err := ToYCbCr(f, 6, 4)
	require.NoError(t, err)
	assert.Equal(t, color.YCbCr{Y: 123, Cb: 1, Cr: 2}, m.YCbCrAt(5, 3))
}
