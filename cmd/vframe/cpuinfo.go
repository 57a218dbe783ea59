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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vframe/internal/cpuinfo"
)

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print detected CPU features and the plane data alignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeCPUInfo(cmd.OutOrStdout(), cpuinfo.Collect())
		},
	}
}

func writeCPUInfo(w io.Writer, r cpuinfo.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "platform: %s/%s, %d CPUs\n", r.GOOS, r.GOARCH, r.NumCPU)
	fmt.Fprintf(&b, "dispatch level: %v\n", r.Level)
	fmt.Fprintf(&b, "data alignment: %d bytes\n", r.DataAlignment)
	if r.NoSimd {
		b.WriteString("VFRAME_NO_SIMD is set, SIMD detection skipped\n")
	}
	for _, f := range r.Features {
		fmt.Fprintf(&b, "  %-10s %s", f.Name+":", lo.Ternary(f.Present, "yes", "no"))
		if f.Note != "" {
			fmt.Fprintf(&b, "  (%s)", f.Note)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
