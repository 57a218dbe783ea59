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

import "testing"

func TestRect(t *testing.T) {
	r := Rect{X0: 2, Y0: 3, X1: 10, Y1: 7}
	if r.Width() != 8 || r.Height() != 4 || r.IsEmpty() {
		t.Errorf("rect %+v: %dx%d empty=%v", r, r.Width(), r.Height(), r.IsEmpty())
	}
	got := r.Intersect(Rect{X0: 5, Y0: 0, X1: 20, Y1: 5})
	want := Rect{X0: 5, Y0: 3, X1: 10, Y1: 5}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
	if !r.Intersect(Rect{X0: 20, Y0: 20, X1: 30, Y1: 30}).IsEmpty() {
		t.Error("disjoint intersection should be empty")
	}
}

func TestPlaneRegion(t *testing.T) {
	p := NewPlane[uint8](16, 16, 0, 0, 4, 4)
	r := p.Region(Rect{X0: 4, Y0: 8, X1: 12, Y1: 12})
	if r.Width() != 8 || r.Height() != 4 {
		t.Fatalf("region size = %dx%d, want 8x4", r.Width(), r.Height())
	}

	r.Set(1, 2, 42)
	if got := p.At(5, 10); got != 42 {
		t.Errorf("plane At(5, 10) = %d, want 42", got)
	}
	if got := r.At(1, 2); got != 42 {
		t.Errorf("region At(1, 2) = %d, want 42", got)
	}
	if got := r.Row(2)[1]; got != 42 {
		t.Errorf("region Row(2)[1] = %d, want 42", got)
	}
	if len(r.Row(0)) != 8 {
		t.Errorf("len(Row(0)) = %d, want 8", len(r.Row(0)))
	}

	r.Fill(7)
	for y := 8; y < 12; y++ {
		for x := 4; x < 12; x++ {
			if p.At(x, y) != 7 {
				t.Fatalf("At(%d, %d) = %d after Fill, want 7", x, y, p.At(x, y))
			}
		}
	}
	if p.At(3, 8) != 0 || p.At(12, 8) != 0 || p.At(4, 7) != 0 || p.At(4, 12) != 0 {
		t.Error("Fill wrote outside the region")
	}
}

func TestPlaneRegionIntoPadding(t *testing.T) {
	p := NewPlane[uint16](8, 8, 0, 0, 4, 4)
	r := p.Region(Rect{X0: -4, Y0: -4, X1: 0, Y1: 0})
	r.Fill(5)
	if got := p.PaddedRow(-4)[p.Cfg.XOrigin-4]; got != 5 {
		t.Errorf("padding sample = %d, want 5", got)
	}
}

func TestPlaneRegionOutOfBounds(t *testing.T) {
	p := NewPlane[uint8](8, 8, 0, 0, 0, 0)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	p.Region(Rect{X0: 0, Y0: 0, X1: 8, Y1: 9})
}

func TestSubregion(t *testing.T) {
	p := NewPlane[uint8](16, 16, 0, 0, 0, 0)
	r := p.Region(Rect{X0: 4, Y0: 4, X1: 12, Y1: 12})
	s := r.Subregion(Rect{X0: 2, Y0: 2, X1: 4, Y1: 4})
	if s.Rect() != (Rect{X0: 6, Y0: 6, X1: 8, Y1: 8}) {
		t.Errorf("Subregion rect = %+v", s.Rect())
	}
	s.Set(0, 0, 1)
	if p.At(6, 6) != 1 {
		t.Error("subregion write not visible in plane")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for subregion outside region")
		}
	}()
	r.Subregion(Rect{X0: 6, Y0: 6, X1: 10, Y1: 10})
}

func TestTiles(t *testing.T) {
	p := NewPlane[uint8](20, 10, 0, 0, 0, 0)
	tiles := p.Tiles(8)
	// 3 columns (8, 8, 4) x 2 rows (8, 2)
	if len(tiles) != 6 {
		t.Fatalf("len(tiles) = %d, want 6", len(tiles))
	}
	area := 0
	for _, tile := range tiles {
		area += tile.Width() * tile.Height()
	}
	if area != 200 {
		t.Errorf("tiles cover %d samples, want 200", area)
	}
	last := tiles[len(tiles)-1].Rect()
	if last != (Rect{X0: 16, Y0: 8, X1: 20, Y1: 10}) {
		t.Errorf("last tile = %+v", last)
	}
	if n := len(NewPlane[uint8](0, 0, 0, 0, 0, 0).Tiles(8)); n != 0 {
		t.Errorf("empty plane has %d tiles", n)
	}
}
