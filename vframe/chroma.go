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
	"fmt"
	"strings"
)

// ChromaSampling is a chroma subsampling format.
type ChromaSampling uint8

const (
	// Cs420 halves chroma resolution both horizontally and vertically.
	Cs420 ChromaSampling = iota
	// Cs422 halves chroma resolution horizontally only.
	Cs422
	// Cs444 keeps chroma at full resolution.
	Cs444
	// Cs400 is monochrome: there are no chroma planes.
	Cs400
)

// AllSamplings lists every ChromaSampling in declaration order.
var AllSamplings = []ChromaSampling{Cs420, Cs422, Cs444, Cs400}

// samplingRule is the per-format geometry. A rule with hasChroma == false
// produces empty chroma planes.
type samplingRule struct {
	name      string
	hasChroma bool
	xdec      int
	ydec      int
}

var samplingRules = [...]samplingRule{
	Cs420: {name: "4:2:0", hasChroma: true, xdec: 1, ydec: 1},
	Cs422: {name: "4:2:2", hasChroma: true, xdec: 1, ydec: 0},
	Cs444: {name: "4:4:4", hasChroma: true, xdec: 0, ydec: 0},
	Cs400: {name: "4:0:0"},
}

func (cs ChromaSampling) rule() samplingRule {
	if int(cs) >= len(samplingRules) {
		panic(fmt.Sprintf("vframe: invalid chroma sampling %d", uint8(cs)))
	}
	return samplingRules[cs]
}

// String returns the format in "4:2:0" notation.
func (cs ChromaSampling) String() string {
	if int(cs) >= len(samplingRules) {
		return fmt.Sprintf("ChromaSampling(%d)", uint8(cs))
	}
	return samplingRules[cs].name
}

// HasChroma reports whether frames in this format carry chroma planes.
func (cs ChromaSampling) HasChroma() bool {
	return cs.rule().hasChroma
}

// Decimation returns the horizontal and vertical decimation of the chroma
// planes as right-shift amounts. ok is false for Cs400, which has no chroma
// planes.
func (cs ChromaSampling) Decimation() (x, y int, ok bool) {
	r := cs.rule()
	if !r.hasChroma {
		return 0, 0, false
	}
	return r.xdec, r.ydec, true
}

// ChromaDimensions returns the size of a chroma plane for a luma plane of
// lumaWidth x lumaHeight. Odd luma sizes round up so that every luma sample
// has a chroma sample. Cs400 returns (0, 0).
func (cs ChromaSampling) ChromaDimensions(lumaWidth, lumaHeight int) (width, height int) {
	r := cs.rule()
	if !r.hasChroma {
		return 0, 0
	}
	return (lumaWidth + r.xdec) >> r.xdec, (lumaHeight + r.ydec) >> r.ydec
}

// ParseChromaSampling parses a format name. It accepts "420", "4:2:0",
// "yuv420p" and "i420" style names, case-insensitively, plus "mono" and
// "gray" for Cs400.
func ParseChromaSampling(s string) (ChromaSampling, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, ":", "")
	key = strings.TrimPrefix(key, "yuv")
	key = strings.TrimPrefix(key, "cs")
	key = strings.TrimSuffix(key, "p")
	switch key {
	case "420", "i420":
		return Cs420, nil
	case "422", "i422":
		return Cs422, nil
	case "444", "i444":
		return Cs444, nil
	case "400", "mono", "monochrome", "gray", "grey":
		return Cs400, nil
	}
	return 0, fmt.Errorf("vframe: unknown chroma sampling %q", s)
}
