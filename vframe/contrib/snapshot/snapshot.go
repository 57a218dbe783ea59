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

package snapshot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-vframe/vframe"
)

// Version is the format version written by Write.
const Version = 1

// Bounds applied to headers so a corrupt file cannot request huge
// allocations.
const (
	maxDimension  = 1 << 16
	maxDecimation = 4
	maxPlaneBytes = 1 << 30
)

var magic = [4]byte{'V', 'F', 'R', 'M'}

var (
	// ErrBadMagic is returned when the input is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupportedVersion is returned for snapshots from a newer writer.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	// ErrPixelType is returned when the snapshot's sample type differs from
	// the one requested.
	ErrPixelType = errors.New("snapshot: pixel type mismatch")
	// ErrCorrupt is returned for headers or plane data that are out of range.
	ErrCorrupt = errors.New("snapshot: corrupt data")
)

// Header describes a snapshot without its samples.
type Header struct {
	Version   uint8
	PixelType vframe.PixelType
	Geometry  vframe.Geometry
}

// PlaneBytes returns the uncompressed size of plane i's padded area.
func (h Header) PlaneBytes(i int) int {
	g := h.Geometry.Planes[i]
	w, rows := g.Width+2*g.XPad, g.Height+2*g.YPad
	if w == 0 || rows == 0 {
		return 0
	}
	return w * rows * h.PixelType.Bytes()
}

var (
	encoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithZeroFrames(true))
	})
	decoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(1<<32))
	})
)

// Write stores f, including the contents of its padding, to w.
func Write[T vframe.Pixel](w io.Writer, f *vframe.Frame[T]) error {
	enc, err := encoder()
	if err != nil {
		return fmt.Errorf("snapshot: zstd encoder: %w", err)
	}
	h := Header{Version: Version, PixelType: vframe.TypeOf[T](), Geometry: f.Geometry()}

	var compressed [3][]byte
	var g errgroup.Group
	for i, p := range f.Planes {
		g.Go(func() error {
			compressed[i] = enc.EncodeAll(planeBytes(p), nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, h); err != nil {
		return err
	}
	for i, c := range compressed {
		if err := binary.Write(bw, binary.LittleEndian, uint64(len(c))); err != nil {
			return fmt.Errorf("snapshot: plane %d length: %w", i, err)
		}
		if _, err := bw.Write(c); err != nil {
			return fmt.Errorf("snapshot: plane %d data: %w", i, err)
		}
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, h Header) error {
	buf := make([]byte, 0, 8+3*6*4)
	buf = append(buf, magic[:]...)
	buf = append(buf, h.Version, byte(h.PixelType), byte(h.Geometry.Sampling), 0)
	for _, pg := range h.Geometry.Planes {
		for _, v := range []int{pg.Width, pg.Height, pg.XDec, pg.YDec, pg.XPad, pg.YPad} {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
		}
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("snapshot: header: %w", err)
	}
	return nil
}

// ReadHeader reads and validates the header at the start of r, leaving r
// positioned at the first plane.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [8 + 3*6*4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("snapshot: header: %w", err)
	}
	if [4]byte(buf[:4]) != magic {
		return Header{}, ErrBadMagic
	}
	h := Header{Version: buf[4], PixelType: vframe.PixelType(buf[5])}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.PixelType.Bytes() == 0 {
		return Header{}, fmt.Errorf("%w: pixel type %d", ErrCorrupt, buf[5])
	}
	if int(buf[6]) >= len(vframe.AllSamplings) {
		return Header{}, fmt.Errorf("%w: chroma sampling %d", ErrCorrupt, buf[6])
	}
	h.Geometry.Sampling = vframe.ChromaSampling(buf[6])

	off := 8
	for i := range h.Geometry.Planes {
		var v [6]int
		for j := range v {
			v[j] = int(binary.LittleEndian.Uint32(buf[off:]))
			off += 4
			if v[j] > maxDimension {
				return Header{}, fmt.Errorf("%w: plane %d field %d is %d", ErrCorrupt, i, j, v[j])
			}
		}
		if v[2] > maxDecimation || v[3] > maxDecimation {
			return Header{}, fmt.Errorf("%w: plane %d decimation %d/%d", ErrCorrupt, i, v[2], v[3])
		}
		h.Geometry.Planes[i] = vframe.PlaneGeometry{
			Width: v[0], Height: v[1], XDec: v[2], YDec: v[3], XPad: v[4], YPad: v[5],
		}
		if h.PlaneBytes(i) > maxPlaneBytes {
			return Header{}, fmt.Errorf("%w: plane %d needs %d bytes", ErrCorrupt, i, h.PlaneBytes(i))
		}
	}
	if err := h.Geometry.Validate(); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return h, nil
}

// Read reads a snapshot written by Write for the same sample type. The
// returned frame owns freshly allocated storage.
func Read[T vframe.Pixel](r io.Reader) (*vframe.Frame[T], error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if h.PixelType != vframe.TypeOf[T]() {
		return nil, fmt.Errorf("%w: snapshot holds %v, want %v", ErrPixelType, h.PixelType, vframe.TypeOf[T]())
	}
	dec, err := decoder()
	if err != nil {
		return nil, fmt.Errorf("snapshot: zstd decoder: %w", err)
	}

	var compressed [3][]byte
	for i := range compressed {
		var n uint64
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("snapshot: plane %d length: %w", i, err)
		}
		if n > uint64(h.PlaneBytes(i))+1<<16 {
			return nil, fmt.Errorf("%w: plane %d compressed to %d bytes", ErrCorrupt, i, n)
		}
		compressed[i] = make([]byte, n)
		if _, err := io.ReadFull(r, compressed[i]); err != nil {
			return nil, fmt.Errorf("snapshot: plane %d data: %w", i, err)
		}
	}

	f := vframe.NewFrameFromGeometry[T](h.Geometry)
	var g errgroup.Group
	for i, p := range f.Planes {
		g.Go(func() error {
			raw, err := dec.DecodeAll(compressed[i], make([]byte, 0, h.PlaneBytes(i)))
			if err != nil {
				return fmt.Errorf("snapshot: plane %d: %w", i, err)
			}
			if len(raw) != h.PlaneBytes(i) {
				return fmt.Errorf("%w: plane %d has %d bytes, want %d", ErrCorrupt, i, len(raw), h.PlaneBytes(i))
			}
			fillPlane(p, raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}

// paddedArea is the working area plus the requested padding.
func paddedArea[T vframe.Pixel](p *vframe.Plane[T]) vframe.PlaneRegion[T] {
	c := p.Cfg
	if c.Width+2*c.XPad == 0 || c.Height+2*c.YPad == 0 {
		return p.Region(vframe.Rect{})
	}
	return p.Region(vframe.Rect{X0: -c.XPad, Y0: -c.YPad, X1: c.Width + c.XPad, Y1: c.Height + c.YPad})
}

func planeBytes[T vframe.Pixel](p *vframe.Plane[T]) []byte {
	area := paddedArea(p)
	bytes := vframe.PixelBytes[T]()
	out := make([]byte, 0, area.Width()*area.Height()*bytes)
	for y := range area.Height() {
		for _, v := range area.Row(y) {
			if bytes == 1 {
				out = append(out, byte(v))
			} else {
				out = binary.LittleEndian.AppendUint16(out, uint16(v))
			}
		}
	}
	return out
}

func fillPlane[T vframe.Pixel](p *vframe.Plane[T], raw []byte) {
	area := paddedArea(p)
	bytes := vframe.PixelBytes[T]()
	for y := range area.Height() {
		row := area.Row(y)
		line := raw[y*len(row)*bytes:]
		for x := range row {
			if bytes == 1 {
				row[x] = T(line[x])
			} else {
				row[x] = T(binary.LittleEndian.Uint16(line[2*x:]))
			}
		}
	}
}
