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

// Rect is a rectangle in plane sample coordinates relative to the origin of
// the working area. X1 and Y1 are exclusive.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		X0: max(r.X0, other.X0),
		Y0: max(r.Y0, other.Y0),
		X1: min(r.X1, other.X1),
		Y1: min(r.Y1, other.Y1),
	}
}

// Bounds returns the working area of the plane.
func (p *Plane[T]) Bounds() Rect {
	return Rect{X1: p.Cfg.Width, Y1: p.Cfg.Height}
}

// AllocBounds returns the whole allocation, padding included, in the same
// coordinates as Bounds.
func (p *Plane[T]) AllocBounds() Rect {
	return Rect{
		X0: -p.Cfg.XOrigin,
		Y0: -p.Cfg.YOrigin,
		X1: p.Cfg.Stride - p.Cfg.XOrigin,
		Y1: p.Cfg.AllocHeight - p.Cfg.YOrigin,
	}
}

// PlaneRegion is a rectangular view into a Plane. It shares the plane's
// storage; writes through the region are visible in the plane.
//
// Regions let a block-based stage address one tile of a plane with
// tile-local coordinates.
type PlaneRegion[T Pixel] struct {
	plane *Plane[T]
	rect  Rect
}

// Region returns the view of r in p. r may extend into the padding but not
// beyond the allocation.
func (p *Plane[T]) Region(r Rect) PlaneRegion[T] {
	if r.IsEmpty() {
		return PlaneRegion[T]{plane: p, rect: Rect{X0: r.X0, Y0: r.Y0, X1: r.X0, Y1: r.Y0}}
	}
	if r.Intersect(p.AllocBounds()) != r {
		panic(fmt.Sprintf("vframe: region %+v outside plane allocation %+v", r, p.AllocBounds()))
	}
	return PlaneRegion[T]{plane: p, rect: r}
}

// Rect returns the region's rectangle in plane coordinates.
func (r PlaneRegion[T]) Rect() Rect {
	return r.rect
}

// Width returns the region width.
func (r PlaneRegion[T]) Width() int {
	return r.rect.Width()
}

// Height returns the region height.
func (r PlaneRegion[T]) Height() int {
	return r.rect.Height()
}

// Row returns row y of the region, Width samples long.
// PRECONDITION: 0 <= y < Height().
func (r PlaneRegion[T]) Row(y int) []T {
	start := r.plane.index(r.rect.X0, r.rect.Y0+y)
	return r.plane.Data[start : start+r.rect.Width()]
}

// At returns the sample at region-local (x, y).
func (r PlaneRegion[T]) At(x, y int) T {
	return r.plane.At(r.rect.X0+x, r.rect.Y0+y)
}

// Set stores v at region-local (x, y).
func (r PlaneRegion[T]) Set(x, y int, v T) {
	r.plane.Set(r.rect.X0+x, r.rect.Y0+y, v)
}

// Subregion returns the view of sub, given in region-local coordinates.
func (r PlaneRegion[T]) Subregion(sub Rect) PlaneRegion[T] {
	abs := Rect{
		X0: r.rect.X0 + sub.X0,
		Y0: r.rect.Y0 + sub.Y0,
		X1: r.rect.X0 + sub.X1,
		Y1: r.rect.Y0 + sub.Y1,
	}
	if !sub.IsEmpty() && abs.Intersect(r.rect) != abs {
		panic(fmt.Sprintf("vframe: subregion %+v outside region of %dx%d", sub, r.Width(), r.Height()))
	}
	return r.plane.Region(abs)
}

// Fill sets every sample of the region to v.
func (r PlaneRegion[T]) Fill(v T) {
	for y := range r.Height() {
		row := r.Row(y)
		for x := range row {
			row[x] = v
		}
	}
}

// Tiles splits the working area of p into size x size regions in raster
// order. Tiles on the right and bottom edges are clipped to the working area.
func (p *Plane[T]) Tiles(size int) []PlaneRegion[T] {
	if size <= 0 {
		panic("vframe: tile size must be positive")
	}
	var tiles []PlaneRegion[T]
	for y := 0; y < p.Cfg.Height; y += size {
		for x := 0; x < p.Cfg.Width; x += size {
			tiles = append(tiles, p.Region(Rect{
				X0: x, Y0: y,
				X1: min(x+size, p.Cfg.Width),
				Y1: min(y+size, p.Cfg.Height),
			}))
		}
	}
	return tiles
}
