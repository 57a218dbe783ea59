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

// Package cpuinfo reports the CPU features that decide plane data alignment.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-vframe/vframe"
)

// Feature is one named CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Report is a snapshot of the host as seen by vframe.
type Report struct {
	GOOS          string
	GOARCH        string
	NumCPU        int
	Level         vframe.DispatchLevel
	DataAlignment int
	NoSimd        bool
	Features      []Feature
}

// Collect gathers the report for the running host.
func Collect() Report {
	r := Report{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		NumCPU:        runtime.NumCPU(),
		Level:         vframe.CurrentLevel(),
		DataAlignment: vframe.DataAlignment(),
		NoSimd:        vframe.NoSimdEnv(),
	}
	switch runtime.GOARCH {
	case "arm64":
		r.Features = arm64Features()
	case "amd64":
		r.Features = amd64Features()
	}
	return r
}

func arm64Features() []Feature {
	return []Feature{
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FP", cpu.ARM64.HasFP, "floating point"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"SVE", cpu.ARM64.HasSVE, "32-byte rows"},
		{"SVE2", cpu.ARM64.HasSVE2, ""},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, "16-byte rows"},
		{"SSE41", cpu.X86.HasSSE41, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, "32-byte rows"},
		{"AVX512F", cpu.X86.HasAVX512F, "64-byte rows with AVX512BW"},
		{"AVX512BW", cpu.X86.HasAVX512BW, ""},
	}
}
