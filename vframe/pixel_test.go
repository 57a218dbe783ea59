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

type tenBit uint16

func TestPixelBytes(t *testing.T) {
	if got := PixelBytes[uint8](); got != 1 {
		t.Errorf("PixelBytes[uint8]() = %d, want 1", got)
	}
	if got := PixelBytes[uint16](); got != 2 {
		t.Errorf("PixelBytes[uint16]() = %d, want 2", got)
	}
	if got := PixelBytes[tenBit](); got != 2 {
		t.Errorf("PixelBytes[tenBit]() = %d, want 2", got)
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf[uint8](); got != U8 || got.String() != "u8" || got.Bytes() != 1 {
		t.Errorf("TypeOf[uint8]() = %v (%d bytes)", got, got.Bytes())
	}
	if got := TypeOf[tenBit](); got != U16 || got.String() != "u16" || got.Bytes() != 2 {
		t.Errorf("TypeOf[tenBit]() = %v (%d bytes)", got, got.Bytes())
	}
	if PixelType(0).Bytes() != 0 || PixelType(0).String() != "unknown" {
		t.Error("zero PixelType should be unknown")
	}
}

func TestCastPixel(t *testing.T) {
	if got := CastPixel[uint8](0x1ff); got != 0xff {
		t.Errorf("CastPixel[uint8](0x1ff) = %#x, want 0xff", got)
	}
	if got := CastPixel[uint16](1023); got != 1023 {
		t.Errorf("CastPixel[uint16](1023) = %d, want 1023", got)
	}
}

func TestParsePixelType(t *testing.T) {
	for in, want := range map[string]PixelType{"u8": U8, "8": U8, "U16": U16, " uint16 ": U16} {
		got, err := ParsePixelType(in)
		if err != nil || got != want {
			t.Errorf("ParsePixelType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParsePixelType("f32"); err == nil {
		t.Error("ParsePixelType(\"f32\") succeeded, want error")
	}
}
